package services

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
	"github.com/centrifx/fxcore/internal/dto"
)

// RegistrySvcFacade defines the currency-registry operations.
type RegistrySvcFacade interface {
	// SeedDefaultCurrencies loads the built-in catalog. Idempotent.
	SeedDefaultCurrencies(ctx context.Context) error

	// CreateCurrency adds a currency to the registry.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// GetCurrency retrieves a currency by code.
	GetCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies sorted by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// BaseCurrency retrieves the current anchor currency.
	BaseCurrency(ctx context.Context) (*domain.Currency, error)

	// SetBaseCurrency moves the anchor flag to another registered currency.
	SetBaseCurrency(ctx context.Context, currencyCode string) error
}
