package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
)

// CurrencyRepository is the in-memory currency store.
type CurrencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
}

// NewCurrencyRepository creates an empty currency store.
func NewCurrencyRepository() *CurrencyRepository {
	return &CurrencyRepository{currencies: make(map[string]domain.Currency)}
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

func (r *CurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.currencies[currency.CurrencyCode]; exists {
		return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, currency.CurrencyCode)
	}
	r.currencies[currency.CurrencyCode] = currency
	return nil
}

func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	currency, ok := r.currencies[currencyCode]
	if !ok {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyCode)
	}
	return &currency, nil
}

func (r *CurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, currency := range r.currencies {
		if currency.IsBase {
			c := currency
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: no base currency configured", apperrors.ErrNotFound)
}

func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Currency, 0, len(r.currencies))
	for _, currency := range r.currencies {
		out = append(out, currency)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}

func (r *CurrencyRepository) SetBaseCurrency(ctx context.Context, currencyCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, ok := r.currencies[currencyCode]
	if !ok {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyCode)
	}
	for code, currency := range r.currencies {
		if currency.IsBase && code != currencyCode {
			currency.IsBase = false
			r.currencies[code] = currency
		}
	}
	next.IsBase = true
	r.currencies[currencyCode] = next
	return nil
}
