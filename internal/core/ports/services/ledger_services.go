package services

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	"github.com/centrifx/fxcore/internal/dto"
)

// LedgerSvcFacade defines the per-tenant, per-currency ledger operations.
// All balance mutations on one account are serialized.
type LedgerSvcFacade interface {
	// CreateAccount explicitly creates an account; a second account for the
	// same (tenant, currency) pair is a duplicate error.
	CreateAccount(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error)

	// GetOrCreateAccount never errors on an existing account.
	GetOrCreateAccount(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error)

	// GetAccount retrieves the account for a (tenant, currency) pair.
	GetAccount(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error)

	// ListAccounts retrieves all of a tenant's accounts.
	ListAccounts(ctx context.Context, tenantID string) ([]domain.CurrencyAccount, error)

	// Deposit credits an account, creating it on first touch.
	Deposit(ctx context.Context, req dto.DepositRequest) (*domain.CurrencyTransaction, error)

	// Withdraw debits an account up to its available balance.
	Withdraw(ctx context.Context, req dto.WithdrawRequest) (*domain.CurrencyTransaction, error)

	// Transfer moves a same-currency amount between two tenants' accounts
	// atomically.
	Transfer(ctx context.Context, req dto.TransferRequest) ([]domain.CurrencyTransaction, error)

	// PostConversion writes the debit and credit legs of a conversion
	// all-or-nothing: the source account must cover fromAmount plus fees
	// before either account is touched.
	PostConversion(ctx context.Context, tenantID string, conversion domain.ConversionResult) ([]domain.CurrencyTransaction, error)

	// GetTransactions lists a tenant's ledger rows, newest first.
	GetTransactions(ctx context.Context, tenantID string, filter portsrepo.TransactionFilter) ([]domain.CurrencyTransaction, error)
}
