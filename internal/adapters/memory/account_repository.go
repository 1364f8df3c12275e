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

// AccountRepository is the in-memory account and ledger store. The ledger
// slice is append-only; rows are never rewritten once applied.
type AccountRepository struct {
	mu          sync.RWMutex
	byID        map[string]domain.CurrencyAccount
	byTenantCcy map[string]string // "tenant/CCY" -> accountID
	ledger      []domain.CurrencyTransaction
}

// NewAccountRepository creates an empty account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:        make(map[string]domain.CurrencyAccount),
		byTenantCcy: make(map[string]string),
	}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func accountKey(tenantID, currencyCode string) string { return tenantID + "/" + currencyCode }

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.CurrencyAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := accountKey(account.TenantID, account.CurrencyCode)
	if _, exists := r.byTenantCcy[key]; exists {
		return fmt.Errorf("%w: account for %s", apperrors.ErrDuplicate, key)
	}
	r.byID[account.AccountID] = account
	r.byTenantCcy[key] = account.AccountID
	return nil
}

func (r *AccountRepository) FindAccount(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byTenantCcy[accountKey(tenantID, currencyCode)]
	if !ok {
		return nil, fmt.Errorf("%w: account for %s/%s", apperrors.ErrNotFound, tenantID, currencyCode)
	}
	account := r.byID[id]
	return &account, nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.CurrencyAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &account, nil
}

func (r *AccountRepository) ListAccountsByTenant(ctx context.Context, tenantID string) ([]domain.CurrencyAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.CurrencyAccount
	for _, account := range r.byID {
		if account.TenantID == tenantID {
			out = append(out, account)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}

func (r *AccountRepository) ApplyTransactions(ctx context.Context, txns []domain.CurrencyTransaction, accounts []domain.CurrencyAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range accounts {
		if _, ok := r.byID[account.AccountID]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
		}
	}
	r.ledger = append(r.ledger, txns...)
	for _, account := range accounts {
		r.byID[account.AccountID] = account
	}
	return nil
}

func (r *AccountRepository) ListTransactions(ctx context.Context, tenantID string, filter portsrepo.TransactionFilter) ([]domain.CurrencyTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.CurrencyTransaction
	for i := len(r.ledger) - 1; i >= 0; i-- {
		txn := r.ledger[i]
		if txn.TenantID != tenantID {
			continue
		}
		if filter.CurrencyCode != "" && txn.CurrencyCode != filter.CurrencyCode {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		if !filter.From.IsZero() && txn.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && txn.CreatedAt.After(filter.To) {
			continue
		}
		out = append(out, txn)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *AccountRepository) ListTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.CurrencyTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.CurrencyTransaction
	for _, txn := range r.ledger {
		if txn.AccountID == accountID {
			out = append(out, txn)
		}
	}
	return out, nil
}
