package services

import (
	"context"
	"time"

	"github.com/centrifx/fxcore/internal/core/domain"
	"github.com/centrifx/fxcore/internal/dto"
)

// HedgingSvcFacade defines the hedge-position tracking operations.
type HedgingSvcFacade interface {
	// CreatePosition opens a position; a live rate for the pair must exist.
	CreatePosition(ctx context.Context, req dto.CreatePositionRequest) (*domain.HedgingPosition, error)

	// UpdatePnL refetches the pair rate and recomputes mark-to-market P&L.
	UpdatePnL(ctx context.Context, positionID string) (*domain.HedgingPosition, error)

	// ClosePosition finalizes an active position as exercised or cancelled,
	// freezing its P&L at the prevailing rate.
	ClosePosition(ctx context.Context, positionID string, status domain.PositionStatus) (*domain.HedgingPosition, error)

	// ExpirePositions marks active positions past their expiry as expired
	// and returns how many were swept.
	ExpirePositions(ctx context.Context, now time.Time) (int, error)

	// GetPosition retrieves a position by id.
	GetPosition(ctx context.Context, positionID string) (*domain.HedgingPosition, error)

	// ListPositions retrieves a tenant's positions, newest first.
	ListPositions(ctx context.Context, tenantID string) ([]domain.HedgingPosition, error)
}
