package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/dto"
	"github.com/centrifx/fxcore/internal/platform/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountLocker hands out one mutex per (tenant, currency) key, so
// mutations on a single account are serialized while different accounts
// proceed in parallel.
type accountLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *accountLocker) lockFor(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	return lock
}

// acquire locks the given account keys in sorted order (deduplicated), which
// makes multi-account operations deadlock-free. The returned function
// releases them in reverse order.
func (l *accountLocker) acquire(keys ...string) func() {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if !seen[key] {
			seen[key] = true
			unique = append(unique, key)
		}
	}
	sort.Strings(unique)

	locks := make([]*sync.Mutex, len(unique))
	for i, key := range unique {
		locks[i] = l.lockFor(key)
		locks[i].Lock()
	}
	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}

// ledgerService provides per-tenant, per-currency accounts with an
// append-only transaction log.
type ledgerService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	locker       *accountLocker
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		locker:       newAccountLocker(),
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func lockKey(tenantID, currencyCode string) string { return tenantID + "/" + currencyCode }

func (s *ledgerService) newAccount(tenantID, currencyCode string) domain.CurrencyAccount {
	now := time.Now().UTC()
	return domain.CurrencyAccount{
		AccountID:        uuid.NewString(),
		TenantID:         tenantID,
		CurrencyCode:     currencyCode,
		Balance:          decimal.Zero,
		AvailableBalance: decimal.Zero,
		PendingBalance:   decimal.Zero,
		ReservedBalance:  decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

func (s *ledgerService) validateAccountInput(ctx context.Context, tenantID, currencyCode string) (string, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if tenantID == "" {
		return "", fmt.Errorf("%w: tenant id is required", apperrors.ErrValidation)
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		return "", fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, currencyCode)
	}
	return currencyCode, nil
}

// CreateAccount is the explicit entry point; a second account for the same
// pair is a duplicate error.
func (s *ledgerService) CreateAccount(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error) {
	currencyCode, err := s.validateAccountInput(ctx, tenantID, currencyCode)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.acquire(lockKey(tenantID, currencyCode))
	defer unlock()

	account := s.newAccount(tenantID, currencyCode)
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

// GetOrCreateAccount never errors on an existing account.
func (s *ledgerService) GetOrCreateAccount(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error) {
	currencyCode, err := s.validateAccountInput(ctx, tenantID, currencyCode)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.acquire(lockKey(tenantID, currencyCode))
	defer unlock()
	return s.getOrCreateLocked(ctx, tenantID, currencyCode)
}

// getOrCreateLocked assumes the account's lock is held.
func (s *ledgerService) getOrCreateLocked(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error) {
	account, err := s.accountRepo.FindAccount(ctx, tenantID, currencyCode)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	created := s.newAccount(tenantID, currencyCode)
	if err := s.accountRepo.SaveAccount(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &created, nil
}

func (s *ledgerService) GetAccount(ctx context.Context, tenantID, currencyCode string) (*domain.CurrencyAccount, error) {
	account, err := s.accountRepo.FindAccount(ctx, tenantID, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *ledgerService) ListAccounts(ctx context.Context, tenantID string) ([]domain.CurrencyAccount, error) {
	accounts, err := s.accountRepo.ListAccountsByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.CurrencyAccount{}, nil
	}
	return accounts, nil
}

// buildTransaction appends one leg to an account snapshot and returns the
// ledger row. BalanceAfter = BalanceBefore + amount holds exactly.
func buildTransaction(account *domain.CurrencyAccount, txnType domain.TransactionType, amount decimal.Decimal, reference, conversionID string, now time.Time) domain.CurrencyTransaction {
	txn := domain.CurrencyTransaction{
		TransactionID: uuid.NewString(),
		TenantID:      account.TenantID,
		AccountID:     account.AccountID,
		Type:          txnType,
		CurrencyCode:  account.CurrencyCode,
		Amount:        amount,
		BalanceBefore: account.Balance,
		BalanceAfter:  account.Balance.Add(amount),
		Reference:     reference,
		ConversionID:  conversionID,
		CreatedAt:     now,
	}
	account.Balance = txn.BalanceAfter
	account.AvailableBalance = account.AvailableBalance.Add(amount)
	account.LastUpdatedAt = now
	return txn
}

func (s *ledgerService) Deposit(ctx context.Context, req dto.DepositRequest) (*domain.CurrencyTransaction, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}
	currencyCode, err := s.validateAccountInput(ctx, req.TenantID, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.acquire(lockKey(req.TenantID, currencyCode))
	defer unlock()

	account, err := s.getOrCreateLocked(ctx, req.TenantID, currencyCode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := buildTransaction(account, domain.TxnDeposit, req.Amount, req.Reference, "", now)
	if err := s.accountRepo.ApplyTransactions(ctx, []domain.CurrencyTransaction{txn}, []domain.CurrencyAccount{*account}); err != nil {
		return nil, fmt.Errorf("failed to apply deposit: %w", err)
	}
	return &txn, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, req dto.WithdrawRequest) (*domain.CurrencyTransaction, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}
	currencyCode, err := s.validateAccountInput(ctx, req.TenantID, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.acquire(lockKey(req.TenantID, currencyCode))
	defer unlock()

	account, err := s.accountRepo.FindAccount(ctx, req.TenantID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account.AvailableBalance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: available %s, requested %s",
			apperrors.ErrInsufficientFunds, account.AvailableBalance.String(), req.Amount.String())
	}

	now := time.Now().UTC()
	txn := buildTransaction(account, domain.TxnWithdrawal, req.Amount.Neg(), req.Reference, "", now)
	if err := s.accountRepo.ApplyTransactions(ctx, []domain.CurrencyTransaction{txn}, []domain.CurrencyAccount{*account}); err != nil {
		return nil, fmt.Errorf("failed to apply withdrawal: %w", err)
	}
	return &txn, nil
}

func (s *ledgerService) Transfer(ctx context.Context, req dto.TransferRequest) ([]domain.CurrencyTransaction, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if req.FromTenantID == req.ToTenantID {
		return nil, fmt.Errorf("%w: transfer requires two different tenants", apperrors.ErrValidation)
	}
	currencyCode, err := s.validateAccountInput(ctx, req.FromTenantID, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.acquire(
		lockKey(req.FromTenantID, currencyCode),
		lockKey(req.ToTenantID, currencyCode),
	)
	defer unlock()

	source, err := s.accountRepo.FindAccount(ctx, req.FromTenantID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get source account: %w", err)
	}
	if source.AvailableBalance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: available %s, requested %s",
			apperrors.ErrInsufficientFunds, source.AvailableBalance.String(), req.Amount.String())
	}
	target, err := s.getOrCreateLocked(ctx, req.ToTenantID, currencyCode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	debit := buildTransaction(source, domain.TxnTransfer, req.Amount.Neg(), req.Reference, "", now)
	credit := buildTransaction(target, domain.TxnTransfer, req.Amount, req.Reference, "", now)
	txns := []domain.CurrencyTransaction{debit, credit}
	if err := s.accountRepo.ApplyTransactions(ctx, txns, []domain.CurrencyAccount{*source, *target}); err != nil {
		return nil, fmt.Errorf("failed to apply transfer: %w", err)
	}
	return txns, nil
}

// PostConversion writes the two legs of a settled conversion. The source
// account must cover fromAmount plus total fees before either account is
// touched; on failure neither account changes.
func (s *ledgerService) PostConversion(ctx context.Context, tenantID string, conversion domain.ConversionResult) ([]domain.CurrencyTransaction, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", apperrors.ErrValidation)
	}

	totalDebit := conversion.FromAmount.Add(conversion.Fees.Total)
	sourceKey := lockKey(tenantID, conversion.FromCurrency)
	targetKey := lockKey(tenantID, conversion.ToCurrency)

	unlock := s.locker.acquire(sourceKey, targetKey)
	defer unlock()

	source, err := s.getOrCreateLocked(ctx, tenantID, conversion.FromCurrency)
	if err != nil {
		return nil, err
	}
	if source.AvailableBalance.LessThan(totalDebit) {
		return nil, fmt.Errorf("%w: available %s, conversion requires %s",
			apperrors.ErrInsufficientFunds, source.AvailableBalance.String(), totalDebit.String())
	}

	target := source
	if conversion.ToCurrency != conversion.FromCurrency {
		target, err = s.getOrCreateLocked(ctx, tenantID, conversion.ToCurrency)
		if err != nil {
			return nil, err
		}
	}

	reference := conversion.FromCurrency + "->" + conversion.ToCurrency + " conversion"
	now := time.Now().UTC()
	debit := buildTransaction(source, domain.TxnConversion, totalDebit.Neg(), reference, conversion.ConversionID, now)
	credit := buildTransaction(target, domain.TxnConversion, conversion.NetAmount, reference, conversion.ConversionID, now)

	accounts := []domain.CurrencyAccount{*source}
	if target != source {
		accounts = append(accounts, *target)
	}
	txns := []domain.CurrencyTransaction{debit, credit}
	if err := s.accountRepo.ApplyTransactions(ctx, txns, accounts); err != nil {
		return nil, fmt.Errorf("failed to post conversion legs: %w", err)
	}

	logging.FromCtx(ctx).Info("Conversion posted",
		slog.String("tenant_id", tenantID),
		slog.String("conversion_id", conversion.ConversionID),
		slog.String("debit", totalDebit.String()),
		slog.String("credit", conversion.NetAmount.String()),
	)
	return txns, nil
}

func (s *ledgerService) GetTransactions(ctx context.Context, tenantID string, filter portsrepo.TransactionFilter) ([]domain.CurrencyTransaction, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", apperrors.ErrValidation)
	}
	txns, err := s.accountRepo.ListTransactions(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.CurrencyTransaction{}, nil
	}
	return txns, nil
}
