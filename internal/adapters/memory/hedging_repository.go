package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
)

// HedgingRepository is the in-memory hedging-position store.
type HedgingRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.HedgingPosition
}

// NewHedgingRepository creates an empty position store.
func NewHedgingRepository() *HedgingRepository {
	return &HedgingRepository{byID: make(map[string]domain.HedgingPosition)}
}

var _ portsrepo.HedgingRepositoryFacade = (*HedgingRepository)(nil)

func (r *HedgingRepository) SavePosition(ctx context.Context, position domain.HedgingPosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[position.PositionID]; exists {
		return fmt.Errorf("%w: position %s", apperrors.ErrDuplicate, position.PositionID)
	}
	r.byID[position.PositionID] = position
	return nil
}

func (r *HedgingRepository) UpdatePosition(ctx context.Context, position domain.HedgingPosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[position.PositionID]; !exists {
		return fmt.Errorf("%w: position %s", apperrors.ErrNotFound, position.PositionID)
	}
	r.byID[position.PositionID] = position
	return nil
}

func (r *HedgingRepository) FindPositionByID(ctx context.Context, positionID string) (*domain.HedgingPosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	position, ok := r.byID[positionID]
	if !ok {
		return nil, fmt.Errorf("%w: position %s", apperrors.ErrNotFound, positionID)
	}
	return &position, nil
}

func (r *HedgingRepository) ListPositionsByTenant(ctx context.Context, tenantID string) ([]domain.HedgingPosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.HedgingPosition
	for _, position := range r.byID {
		if position.TenantID == tenantID {
			out = append(out, position)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *HedgingRepository) ListActivePositions(ctx context.Context) ([]domain.HedgingPosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.HedgingPosition
	for _, position := range r.byID {
		if position.Status == domain.PositionActive {
			out = append(out, position)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
