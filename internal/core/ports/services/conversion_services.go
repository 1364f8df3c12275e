package services

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
	"github.com/centrifx/fxcore/internal/dto"
)

// ConversionSvcFacade defines the conversion-engine operations.
type ConversionSvcFacade interface {
	// Convert prices and settles a conversion. When the request carries a
	// tenant, the two ledger legs are posted atomically before the receipt
	// is persisted; an insufficient source balance fails the whole call.
	Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error)

	// GetQuote produces the same figures as Convert for the same inputs and
	// rate snapshot, with no persistence and no ledger effect.
	GetQuote(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error)

	// GetConversion retrieves a persisted receipt by id.
	GetConversion(ctx context.Context, conversionID string) (*domain.ConversionResult, error)
}
