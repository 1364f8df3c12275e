package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/dto"
	"github.com/centrifx/fxcore/internal/platform/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrPositionNotActive rejects lifecycle operations on closed positions.
var ErrPositionNotActive = errors.New("hedging position is not active")

// hedgingService tracks currency exposure positions and their
// mark-to-market P&L against the live rate.
type hedgingService struct {
	hedgingRepo portsrepo.HedgingRepositoryFacade
	rateSvc     portssvc.RateSvcFacade
}

// NewHedgingService creates a new hedging service.
func NewHedgingService(hedgingRepo portsrepo.HedgingRepositoryFacade, rateSvc portssvc.RateSvcFacade) portssvc.HedgingSvcFacade {
	return &hedgingService{hedgingRepo: hedgingRepo, rateSvc: rateSvc}
}

var _ portssvc.HedgingSvcFacade = (*hedgingService)(nil)

// markToMarket computes P&L for a position at a rate: a buy position
// profits when the rate rises above the strike, a sell position when it
// falls below.
func markToMarket(position domain.HedgingPosition, currentRate decimal.Decimal) decimal.Decimal {
	if position.Direction == domain.PositionBuy {
		return position.Amount.Mul(currentRate.Sub(position.StrikeRate))
	}
	return position.Amount.Mul(position.StrikeRate.Sub(currentRate))
}

func (s *hedgingService) CreatePosition(ctx context.Context, req dto.CreatePositionRequest) (*domain.HedgingPosition, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.StrikeRate.IsPositive() {
		return nil, fmt.Errorf("%w: strike rate must be positive", apperrors.ErrValidation)
	}

	baseCode := strings.ToUpper(req.BaseCurrency)
	targetCode := strings.ToUpper(req.TargetCurrency)

	// A position without a live rate cannot be marked to market; reject.
	rate, err := s.rateSvc.GetRate(ctx, baseCode, targetCode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	position := domain.HedgingPosition{
		PositionID:     uuid.NewString(),
		TenantID:       req.TenantID,
		BaseCurrency:   baseCode,
		TargetCurrency: targetCode,
		Amount:         req.Amount,
		StrikeRate:     req.StrikeRate,
		CurrentRate:    rate.Rate,
		Type:           domain.PositionType(req.Type),
		Direction:      domain.PositionDirection(req.Direction),
		ExpiresAt:      req.ExpiresAt,
		Status:         domain.PositionActive,
		PnL:            decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.hedgingRepo.SavePosition(ctx, position); err != nil {
		return nil, fmt.Errorf("failed to persist position: %w", err)
	}
	return &position, nil
}

// UpdatePnL refetches the pair rate and recomputes the position's P&L.
// Closed positions keep their frozen figures.
func (s *hedgingService) UpdatePnL(ctx context.Context, positionID string) (*domain.HedgingPosition, error) {
	position, err := s.hedgingRepo.FindPositionByID(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	if position.Status != domain.PositionActive {
		return position, nil
	}

	rate, err := s.rateSvc.GetRate(ctx, position.BaseCurrency, position.TargetCurrency)
	if err != nil {
		return nil, err
	}

	position.CurrentRate = rate.Rate
	position.PnL = markToMarket(*position, rate.Rate)
	position.LastUpdatedAt = time.Now().UTC()

	if err := s.hedgingRepo.UpdatePosition(ctx, *position); err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}
	return position, nil
}

func (s *hedgingService) ClosePosition(ctx context.Context, positionID string, status domain.PositionStatus) (*domain.HedgingPosition, error) {
	if status != domain.PositionExercised && status != domain.PositionCancelled {
		return nil, fmt.Errorf("%w: close status must be exercised or cancelled", apperrors.ErrValidation)
	}

	position, err := s.UpdatePnL(ctx, positionID)
	if err != nil {
		return nil, err
	}
	if position.Status != domain.PositionActive {
		return nil, fmt.Errorf("%w: position %s is %s", ErrPositionNotActive, positionID, position.Status)
	}

	position.Status = status
	position.LastUpdatedAt = time.Now().UTC()
	if err := s.hedgingRepo.UpdatePosition(ctx, *position); err != nil {
		return nil, fmt.Errorf("failed to close position: %w", err)
	}
	return position, nil
}

// ExpirePositions sweeps active positions past their expiry.
func (s *hedgingService) ExpirePositions(ctx context.Context, now time.Time) (int, error) {
	active, err := s.hedgingRepo.ListActivePositions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active positions: %w", err)
	}

	expired := 0
	for _, position := range active {
		if position.ExpiresAt.IsZero() || position.ExpiresAt.After(now) {
			continue
		}
		position.Status = domain.PositionExpired
		position.LastUpdatedAt = now
		if err := s.hedgingRepo.UpdatePosition(ctx, position); err != nil {
			return expired, fmt.Errorf("failed to expire position %s: %w", position.PositionID, err)
		}
		expired++
	}
	if expired > 0 {
		logging.FromCtx(ctx).Info("Expired hedging positions", slog.Int("count", expired))
	}
	return expired, nil
}

func (s *hedgingService) GetPosition(ctx context.Context, positionID string) (*domain.HedgingPosition, error) {
	position, err := s.hedgingRepo.FindPositionByID(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return position, nil
}

func (s *hedgingService) ListPositions(ctx context.Context, tenantID string) ([]domain.HedgingPosition, error) {
	positions, err := s.hedgingRepo.ListPositionsByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	if positions == nil {
		return []domain.HedgingPosition{}, nil
	}
	return positions, nil
}
