package repositories

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
)

// HedgingReader defines read operations for hedging positions.
type HedgingReader interface {
	// FindPositionByID retrieves a position, or apperrors.ErrNotFound.
	FindPositionByID(ctx context.Context, positionID string) (*domain.HedgingPosition, error)

	// ListPositionsByTenant retrieves a tenant's positions, newest first.
	ListPositionsByTenant(ctx context.Context, tenantID string) ([]domain.HedgingPosition, error)

	// ListActivePositions retrieves every position with status active.
	ListActivePositions(ctx context.Context) ([]domain.HedgingPosition, error)
}

// HedgingWriter defines write operations for hedging positions.
type HedgingWriter interface {
	// SavePosition persists a new position.
	SavePosition(ctx context.Context, position domain.HedgingPosition) error

	// UpdatePosition replaces an existing position. Returns
	// apperrors.ErrNotFound if it does not exist.
	UpdatePosition(ctx context.Context, position domain.HedgingPosition) error
}

// HedgingRepositoryFacade combines all hedging repository interfaces.
type HedgingRepositoryFacade interface {
	HedgingReader
	HedgingWriter
}
