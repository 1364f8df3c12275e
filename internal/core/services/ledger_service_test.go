package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/centrifx/fxcore/internal/adapters/memory"
	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/core/services"
	"github.com/centrifx/fxcore/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	repos   *memory.RepositoryProvider
	service portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.repos = memory.NewRepositoryProvider(365)
	registry := services.NewRegistryService(suite.repos.Currencies())
	suite.Require().NoError(registry.SeedDefaultCurrencies(context.Background()))
	suite.service = services.NewLedgerService(suite.repos.Accounts(), suite.repos.Currencies())
}

func (suite *LedgerServiceTestSuite) TestDeposit_CreatesAccountOnFirstTouch() {
	ctx := context.Background()

	txn, err := suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID:     "tenant-1",
		CurrencyCode: "EUR",
		Amount:       decimal.NewFromInt(250),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.TxnDeposit, txn.Type)
	suite.True(txn.BalanceBefore.IsZero())
	suite.True(txn.BalanceAfter.Equal(decimal.NewFromInt(250)))

	account, err := suite.service.GetAccount(ctx, "tenant-1", "EUR")
	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.NewFromInt(250)))
	suite.True(account.AvailableBalance.Equal(decimal.NewFromInt(250)))
}

func (suite *LedgerServiceTestSuite) TestWithdraw_InsufficientFundsLeavesBalance() {
	ctx := context.Background()

	_, err := suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: "tenant-1", CurrencyCode: "EUR", Amount: decimal.NewFromInt(50),
	})
	suite.Require().NoError(err)

	_, err = suite.service.Withdraw(ctx, dto.WithdrawRequest{
		TenantID: "tenant-1", CurrencyCode: "EUR", Amount: decimal.NewFromInt(100),
	})
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)

	account, err := suite.service.GetAccount(ctx, "tenant-1", "EUR")
	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.NewFromInt(50)))

	txns, err := suite.service.GetTransactions(ctx, "tenant-1", portsrepo.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Len(txns, 1)
}

func (suite *LedgerServiceTestSuite) TestWithdraw_DebitsBalance() {
	ctx := context.Background()

	_, err := suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: "tenant-1", CurrencyCode: "EUR", Amount: decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)

	txn, err := suite.service.Withdraw(ctx, dto.WithdrawRequest{
		TenantID: "tenant-1", CurrencyCode: "EUR", Amount: decimal.RequireFromString("33.25"),
	})
	suite.Require().NoError(err)
	suite.True(txn.Amount.IsNegative())
	suite.True(txn.BalanceAfter.Equal(decimal.RequireFromString("66.75")))
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_DuplicateRejected() {
	ctx := context.Background()

	_, err := suite.service.CreateAccount(ctx, "tenant-1", "USD")
	suite.Require().NoError(err)

	_, err = suite.service.CreateAccount(ctx, "tenant-1", "USD")
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	// GetOrCreate never trips over an existing account.
	account, err := suite.service.GetOrCreateAccount(ctx, "tenant-1", "USD")
	suite.Require().NoError(err)
	suite.Equal("USD", account.CurrencyCode)
}

func (suite *LedgerServiceTestSuite) TestTransfer_ConservesFunds() {
	ctx := context.Background()

	_, err := suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: "alice", CurrencyCode: "EUR", Amount: decimal.NewFromInt(300),
	})
	suite.Require().NoError(err)

	txns, err := suite.service.Transfer(ctx, dto.TransferRequest{
		FromTenantID: "alice",
		ToTenantID:   "bob",
		CurrencyCode: "EUR",
		Amount:       decimal.NewFromInt(120),
	})
	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.True(txns[0].Amount.Add(txns[1].Amount).IsZero())

	alice, err := suite.service.GetAccount(ctx, "alice", "EUR")
	suite.Require().NoError(err)
	bob, err := suite.service.GetAccount(ctx, "bob", "EUR")
	suite.Require().NoError(err)
	suite.True(alice.Balance.Equal(decimal.NewFromInt(180)))
	suite.True(bob.Balance.Equal(decimal.NewFromInt(120)))
}

func (suite *LedgerServiceTestSuite) TestTransfer_SameTenantRejected() {
	_, err := suite.service.Transfer(context.Background(), dto.TransferRequest{
		FromTenantID: "alice",
		ToTenantID:   "alice",
		CurrencyCode: "EUR",
		Amount:       decimal.NewFromInt(10),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostConversion_TwoLegs() {
	ctx := context.Background()
	tenantID := "tenant-1"

	_, err := suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: tenantID, CurrencyCode: "EUR", Amount: decimal.NewFromInt(500),
	})
	suite.Require().NoError(err)

	conversion := domain.ConversionResult{
		ConversionID: "conv-1",
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		FromAmount:   decimal.NewFromInt(100),
		NetAmount:    decimal.RequireFromString("108.79"),
		Fees:         domain.FeeBreakdown{Total: decimal.RequireFromString("1.10")},
	}
	txns, err := suite.service.PostConversion(ctx, tenantID, conversion)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal(domain.TxnConversion, txns[0].Type)
	suite.Equal("conv-1", txns[0].ConversionID)
	suite.True(txns[0].Amount.Equal(decimal.RequireFromString("-101.10")))
	suite.True(txns[1].Amount.Equal(decimal.RequireFromString("108.79")))

	eur, err := suite.service.GetAccount(ctx, tenantID, "EUR")
	suite.Require().NoError(err)
	suite.True(eur.Balance.Equal(decimal.RequireFromString("398.90")))
}

func (suite *LedgerServiceTestSuite) TestPostConversion_AtomicOnInsufficientFunds() {
	ctx := context.Background()
	tenantID := "tenant-1"

	conversion := domain.ConversionResult{
		ConversionID: "conv-1",
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		FromAmount:   decimal.NewFromInt(100),
		NetAmount:    decimal.NewFromInt(108),
		Fees:         domain.FeeBreakdown{Total: decimal.NewFromInt(1)},
	}
	_, err := suite.service.PostConversion(ctx, tenantID, conversion)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)

	// Neither leg was written and no balance moved.
	txns, err := suite.service.GetTransactions(ctx, tenantID, portsrepo.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Empty(txns)

	accounts, err := suite.service.ListAccounts(ctx, tenantID)
	suite.Require().NoError(err)
	for _, account := range accounts {
		suite.True(account.Balance.IsZero())
	}
}

func (suite *LedgerServiceTestSuite) TestGetTransactions_ReplayMatchesBalance() {
	ctx := context.Background()
	tenantID := "tenant-1"

	amounts := []string{"100", "50.25", "-30", "12.75"}
	for _, raw := range amounts {
		amount := decimal.RequireFromString(raw)
		var err error
		if amount.IsPositive() {
			_, err = suite.service.Deposit(ctx, dto.DepositRequest{
				TenantID: tenantID, CurrencyCode: "EUR", Amount: amount,
			})
		} else {
			_, err = suite.service.Withdraw(ctx, dto.WithdrawRequest{
				TenantID: tenantID, CurrencyCode: "EUR", Amount: amount.Neg(),
			})
		}
		suite.Require().NoError(err)
	}

	txns, err := suite.service.GetTransactions(ctx, tenantID, portsrepo.TransactionFilter{CurrencyCode: "EUR"})
	suite.Require().NoError(err)
	suite.Require().Len(txns, len(amounts))

	replayed := decimal.Zero
	for _, txn := range txns {
		suite.True(txn.BalanceAfter.Equal(txn.BalanceBefore.Add(txn.Amount)))
		replayed = replayed.Add(txn.Amount)
	}

	account, err := suite.service.GetAccount(ctx, tenantID, "EUR")
	suite.Require().NoError(err)
	suite.True(replayed.Equal(account.Balance), "replayed %s, balance %s", replayed.String(), account.Balance.String())
	suite.True(account.Balance.Equal(decimal.RequireFromString("133.00")))
}

func (suite *LedgerServiceTestSuite) TestGetTransactions_Filters() {
	ctx := context.Background()
	tenantID := "tenant-1"

	_, err := suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: tenantID, CurrencyCode: "EUR", Amount: decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)
	_, err = suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: tenantID, CurrencyCode: "USD", Amount: decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)
	_, err = suite.service.Withdraw(ctx, dto.WithdrawRequest{
		TenantID: tenantID, CurrencyCode: "EUR", Amount: decimal.NewFromInt(10),
	})
	suite.Require().NoError(err)

	eurOnly, err := suite.service.GetTransactions(ctx, tenantID, portsrepo.TransactionFilter{CurrencyCode: "EUR"})
	suite.Require().NoError(err)
	suite.Len(eurOnly, 2)

	withdrawals, err := suite.service.GetTransactions(ctx, tenantID, portsrepo.TransactionFilter{Type: domain.TxnWithdrawal})
	suite.Require().NoError(err)
	suite.Len(withdrawals, 1)

	limited, err := suite.service.GetTransactions(ctx, tenantID, portsrepo.TransactionFilter{Limit: 1})
	suite.Require().NoError(err)
	suite.Len(limited, 1)
}

func (suite *LedgerServiceTestSuite) TestDeposit_ConcurrentDepositsAllLand() {
	ctx := context.Background()
	tenantID := "tenant-1"
	const workers = 32

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := suite.service.Deposit(ctx, dto.DepositRequest{
				TenantID: tenantID, CurrencyCode: "EUR", Amount: decimal.NewFromInt(1),
			})
			suite.NoError(err)
		}()
	}
	wg.Wait()

	account, err := suite.service.GetAccount(ctx, tenantID, "EUR")
	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.NewFromInt(workers)))

	txns, err := suite.service.GetTransactions(ctx, tenantID, portsrepo.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Len(txns, workers)
}

func (suite *LedgerServiceTestSuite) TestDeposit_Validation() {
	ctx := context.Background()

	_, err := suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: "tenant-1", CurrencyCode: "EUR", Amount: decimal.Zero,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: "", CurrencyCode: "EUR", Amount: decimal.NewFromInt(1),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Deposit(ctx, dto.DepositRequest{
		TenantID: "tenant-1", CurrencyCode: "XXX", Amount: decimal.NewFromInt(1),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
