package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
)

// RateRepository is the in-memory rate store. A pair update replaces the
// forward and inverse entries under one write lock, so readers never see a
// half-applied update.
type RateRepository struct {
	mu        sync.RWMutex
	rates     map[string]domain.ExchangeRate       // "BASE/TARGET" -> entry
	history   map[string][]domain.RateHistoryEntry // oldest first
	retention int
}

// NewRateRepository creates an empty rate store keeping at most
// retentionDays daily history points per pair.
func NewRateRepository(retentionDays int) *RateRepository {
	if retentionDays <= 0 {
		retentionDays = 365
	}
	return &RateRepository{
		rates:     make(map[string]domain.ExchangeRate),
		history:   make(map[string][]domain.RateHistoryEntry),
		retention: retentionDays,
	}
}

var _ portsrepo.RateRepositoryFacade = (*RateRepository)(nil)

func pairKey(base, target string) string { return base + "/" + target }

func (r *RateRepository) SaveRatePair(ctx context.Context, forward, inverse domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates[forward.Pair()] = forward
	r.rates[inverse.Pair()] = inverse
	r.appendHistoryLocked(forward)
	r.appendHistoryLocked(inverse)
	return nil
}

// appendHistoryLocked merges an update into the pair's daily OHLC point,
// starting a new point on day change and trimming to the retention window.
func (r *RateRepository) appendHistoryLocked(rate domain.ExchangeRate) {
	key := rate.Pair()
	day := rate.FetchedAt.UTC().Truncate(24 * time.Hour)
	series := r.history[key]

	if n := len(series); n > 0 && series[n-1].Date.Equal(day) {
		entry := &series[n-1]
		entry.Close = rate.Rate
		entry.Rate = rate.Rate
		entry.Source = rate.Source
		if rate.Rate.GreaterThan(entry.High) {
			entry.High = rate.Rate
		}
		if rate.Rate.LessThan(entry.Low) {
			entry.Low = rate.Rate
		}
		return
	}

	series = append(series, domain.RateHistoryEntry{
		BaseCurrency:   rate.BaseCurrency,
		TargetCurrency: rate.TargetCurrency,
		Date:           day,
		Rate:           rate.Rate,
		Open:           rate.Rate,
		High:           rate.Rate,
		Low:            rate.Rate,
		Close:          rate.Rate,
		Source:         rate.Source,
	})
	if len(series) > r.retention {
		series = series[len(series)-r.retention:]
	}
	r.history[key] = series
}

func (r *RateRepository) FindRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rate, ok := r.rates[pairKey(baseCurrency, targetCurrency)]
	if !ok {
		return nil, fmt.Errorf("%w: pair %s/%s", apperrors.ErrNotFound, baseCurrency, targetCurrency)
	}
	return &rate, nil
}

func (r *RateRepository) ListRatesByBase(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ExchangeRate
	for _, rate := range r.rates {
		if rate.BaseCurrency == baseCurrency {
			out = append(out, rate)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetCurrency < out[j].TargetCurrency })
	return out, nil
}

func (r *RateRepository) ListHistory(ctx context.Context, baseCurrency, targetCurrency string, limit int) ([]domain.RateHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	series := r.history[pairKey(baseCurrency, targetCurrency)]
	if limit <= 0 || limit > len(series) {
		limit = len(series)
	}
	// newest first
	out := make([]domain.RateHistoryEntry, 0, limit)
	for i := len(series) - 1; i >= len(series)-limit; i-- {
		out = append(out, series[i])
	}
	return out, nil
}
