package services

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
	"github.com/centrifx/fxcore/internal/dto"
)

// PricingSvcFacade defines the multi-currency pricing operations.
type PricingSvcFacade interface {
	// CreateMultiCurrencyPrice derives a price list across the requested
	// currencies from a base-currency price, margin and rounding rule.
	CreateMultiCurrencyPrice(ctx context.Context, req dto.CreatePriceRequest) (*domain.MultiCurrencyPrice, error)

	// GetPriceInCurrency returns the stored entry for the currency, or
	// computes one on the fly with the same formula when the currency was
	// not part of the original list.
	GetPriceInCurrency(ctx context.Context, priceID, currencyCode string) (*domain.PricePoint, error)

	// UpdateMultiCurrencyPrices recomputes every non-base entry of a price
	// list against current rates.
	UpdateMultiCurrencyPrices(ctx context.Context, priceID string) (*domain.MultiCurrencyPrice, error)

	// GetPrice retrieves a stored price list.
	GetPrice(ctx context.Context, priceID string) (*domain.MultiCurrencyPrice, error)
}
