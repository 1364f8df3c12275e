package repositories

import (
	"context"
	"time"

	"github.com/centrifx/fxcore/internal/core/domain"
)

// ConversionReader defines read operations for conversion receipts.
type ConversionReader interface {
	// FindConversionByID retrieves a receipt, or apperrors.ErrNotFound.
	FindConversionByID(ctx context.Context, conversionID string) (*domain.ConversionResult, error)

	// ListConversions retrieves a tenant's receipts with ConvertedAt inside
	// [from, to], newest first. A zero 'to' means no upper bound.
	ListConversions(ctx context.Context, tenantID string, from, to time.Time) ([]domain.ConversionResult, error)
}

// ConversionWriter defines write operations for conversion receipts.
type ConversionWriter interface {
	// SaveConversion persists an immutable receipt.
	SaveConversion(ctx context.Context, result domain.ConversionResult) error
}

// ConversionRepositoryFacade combines all conversion repository interfaces.
type ConversionRepositoryFacade interface {
	ConversionReader
	ConversionWriter
}
