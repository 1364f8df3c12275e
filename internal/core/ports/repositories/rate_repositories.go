package repositories

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
)

// RateReader defines read operations for stored exchange rates.
type RateReader interface {
	// FindRate retrieves the stored rate for a directed pair, or
	// apperrors.ErrNotFound when no direct entry exists.
	FindRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error)

	// ListRatesByBase retrieves every stored rate whose base is the given
	// currency, sorted by target code.
	ListRatesByBase(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error)

	// ListHistory retrieves the most recent history entries for a pair,
	// newest first, bounded by limit.
	ListHistory(ctx context.Context, baseCurrency, targetCurrency string, limit int) ([]domain.RateHistoryEntry, error)
}

// RateWriter defines write operations for stored exchange rates.
type RateWriter interface {
	// SaveRatePair persists the forward and inverse entries of one pair
	// update atomically and appends (or merges into) the day's history
	// point for each direction. Readers never observe one side updated
	// without the other.
	SaveRatePair(ctx context.Context, forward, inverse domain.ExchangeRate) error
}

// RateRepositoryFacade combines all rate repository interfaces.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
