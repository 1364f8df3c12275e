package repositories

import (
	"context"
	"time"

	"github.com/centrifx/fxcore/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no
// constraint" for that field.
type TransactionFilter struct {
	CurrencyCode string
	Type         domain.TransactionType
	From         time.Time
	To           time.Time
	Limit        int
}

// AccountReader defines read operations for currency accounts.
type AccountReader interface {
	// FindAccount retrieves the account for a (tenant, currency) pair, or
	// apperrors.ErrNotFound.
	FindAccount(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error)

	// FindAccountByID retrieves an account by its id.
	FindAccountByID(ctx context.Context, accountID string) (*domain.CurrencyAccount, error)

	// ListAccountsByTenant retrieves all of a tenant's accounts sorted by
	// currency code.
	ListAccountsByTenant(ctx context.Context, tenantID string) ([]domain.CurrencyAccount, error)
}

// AccountWriter defines write operations for currency accounts and their
// ledger rows.
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate if
	// the (tenant, currency) pair already has one.
	SaveAccount(ctx context.Context, account domain.CurrencyAccount) error

	// ApplyTransactions appends the given ledger rows and stores the
	// updated account snapshots in one atomic step.
	ApplyTransactions(ctx context.Context, txns []domain.CurrencyTransaction, accounts []domain.CurrencyAccount) error
}

// TransactionReader defines read operations for ledger rows.
type TransactionReader interface {
	// ListTransactions retrieves a tenant's ledger rows matching the
	// filter, in descending creation order.
	ListTransactions(ctx context.Context, tenantID string, filter TransactionFilter) ([]domain.CurrencyTransaction, error)

	// ListTransactionsByAccountID retrieves one account's ledger rows in
	// ascending creation order (the replay order).
	ListTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.CurrencyTransaction, error)
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	TransactionReader
}
