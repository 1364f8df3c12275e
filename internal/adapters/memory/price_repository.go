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

// PriceRepository is the in-memory multi-currency price store.
type PriceRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.MultiCurrencyPrice
}

// NewPriceRepository creates an empty price store.
func NewPriceRepository() *PriceRepository {
	return &PriceRepository{byID: make(map[string]domain.MultiCurrencyPrice)}
}

var _ portsrepo.PriceRepositoryFacade = (*PriceRepository)(nil)

func (r *PriceRepository) SavePrice(ctx context.Context, price domain.MultiCurrencyPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[price.PriceID]; exists {
		return fmt.Errorf("%w: price %s", apperrors.ErrDuplicate, price.PriceID)
	}
	r.byID[price.PriceID] = price
	return nil
}

func (r *PriceRepository) UpdatePrice(ctx context.Context, price domain.MultiCurrencyPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[price.PriceID]; !exists {
		return fmt.Errorf("%w: price %s", apperrors.ErrNotFound, price.PriceID)
	}
	r.byID[price.PriceID] = price
	return nil
}

func (r *PriceRepository) FindPriceByID(ctx context.Context, priceID string) (*domain.MultiCurrencyPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	price, ok := r.byID[priceID]
	if !ok {
		return nil, fmt.Errorf("%w: price %s", apperrors.ErrNotFound, priceID)
	}
	return &price, nil
}

func (r *PriceRepository) ListPrices(ctx context.Context) ([]domain.MultiCurrencyPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MultiCurrencyPrice, 0, len(r.byID))
	for _, price := range r.byID {
		out = append(out, price)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
