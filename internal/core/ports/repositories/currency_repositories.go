package repositories

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
)

// CurrencyReader defines read operations for currency metadata.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a currency by its ISO code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// FindBaseCurrency retrieves the currency currently flagged as the anchor.
	FindBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies sorted by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency metadata.
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. Returns apperrors.ErrDuplicate
	// if the code already exists.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// SetBaseCurrency atomically clears the previous anchor flag and sets
	// the new one.
	SetBaseCurrency(ctx context.Context, currencyCode string) error
}

// CurrencyRepositoryFacade combines all currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
