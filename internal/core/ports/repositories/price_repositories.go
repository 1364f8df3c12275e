package repositories

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
)

// PriceReader defines read operations for multi-currency price lists.
type PriceReader interface {
	// FindPriceByID retrieves a price list, or apperrors.ErrNotFound.
	FindPriceByID(ctx context.Context, priceID string) (*domain.MultiCurrencyPrice, error)

	// ListPrices retrieves all price lists, newest first.
	ListPrices(ctx context.Context) ([]domain.MultiCurrencyPrice, error)
}

// PriceWriter defines write operations for multi-currency price lists.
type PriceWriter interface {
	// SavePrice persists a new price list.
	SavePrice(ctx context.Context, price domain.MultiCurrencyPrice) error

	// UpdatePrice replaces an existing price list. Returns
	// apperrors.ErrNotFound if it does not exist.
	UpdatePrice(ctx context.Context, price domain.MultiCurrencyPrice) error
}

// PriceRepositoryFacade combines all price repository interfaces.
type PriceRepositoryFacade interface {
	PriceReader
	PriceWriter
}
