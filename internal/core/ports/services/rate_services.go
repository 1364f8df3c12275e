package services

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSvcFacade defines the rate-store operations.
type RateSvcFacade interface {
	// GetRate resolves the rate for a directed pair: identity for the same
	// currency, direct lookup, or a cross rate composed through the anchor.
	GetRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error)

	// UpdateRate stores a new mid rate for a pair, deriving buy/sell from
	// the spread tier and writing the inverse entry in the same step.
	UpdateRate(ctx context.Context, baseCurrency, targetCurrency string, rate decimal.Decimal, source domain.RateSource) (*domain.ExchangeRate, error)

	// GetAllRates returns one rate per other currency against the given
	// anchor, sorted by target code.
	GetAllRates(ctx context.Context, anchorCurrency string) ([]domain.ExchangeRate, error)

	// GetRateHistory returns up to `days` most recent daily history points
	// for a pair, newest first.
	GetRateHistory(ctx context.Context, baseCurrency, targetCurrency string, days int) ([]domain.RateHistoryEntry, error)
}
