package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/centrifx/fxcore/internal/adapters/memory"
	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/core/services"
	"github.com/centrifx/fxcore/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	repos   *memory.RepositoryProvider
	rates   portssvc.RateSvcFacade
	ledger  portssvc.LedgerSvcFacade
	service portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	ctx := context.Background()
	suite.repos = memory.NewRepositoryProvider(365)
	registry := services.NewRegistryService(suite.repos.Currencies())
	suite.Require().NoError(registry.SeedDefaultCurrencies(ctx))

	suite.rates = services.NewRateService(suite.repos.Rates(), suite.repos.Currencies(), services.DefaultRatePolicy())
	suite.ledger = services.NewLedgerService(suite.repos.Accounts(), suite.repos.Currencies())
	suite.service = services.NewConversionService(
		suite.repos.Conversions(), suite.repos.Currencies(), suite.rates, suite.ledger, services.DefaultConversionPolicy())

	_, err := suite.rates.UpdateRate(ctx, "EUR", "USD", decimal.RequireFromString("1.10"), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)
	_, err = suite.rates.UpdateRate(ctx, "EUR", "JPY", decimal.RequireFromString("163.45"), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)
}

func (suite *ConversionServiceTestSuite) TestGetQuote_LowBandFees() {
	quote, err := suite.service.GetQuote(context.Background(), dto.ConvertRequest{
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		Amount:       decimal.NewFromInt(500),
	})

	suite.Require().NoError(err)
	suite.True(quote.ToAmount.Equal(decimal.RequireFromString("550.00")))
	suite.True(quote.Fees.Percentage.Equal(decimal.RequireFromString("0.50")))
	suite.True(quote.Fees.Fixed.Equal(decimal.NewFromInt(1)))
	suite.True(quote.Fees.Total.Equal(decimal.RequireFromString("1.50")))
	// Net = 550 - 1.50 * 1.10, rounded to cents.
	suite.True(quote.NetAmount.Equal(decimal.RequireFromString("548.35")))
	suite.Empty(quote.ConversionID)
}

func (suite *ConversionServiceTestSuite) TestGetQuote_FixedFeeBands() {
	ctx := context.Background()
	cases := []struct {
		amount string
		fixed  int64
	}{
		{"1000", 1},  // band edges are exclusive
		{"5000", 5},
		{"10000", 5},
		{"15000", 10},
	}
	for _, tc := range cases {
		quote, err := suite.service.GetQuote(ctx, dto.ConvertRequest{
			FromCurrency: "EUR",
			ToCurrency:   "USD",
			Amount:       decimal.RequireFromString(tc.amount),
		})
		suite.Require().NoError(err)
		suite.True(quote.Fees.Fixed.Equal(decimal.NewFromInt(tc.fixed)),
			"amount %s: fixed fee %s", tc.amount, quote.Fees.Fixed.String())
	}
}

func (suite *ConversionServiceTestSuite) TestGetQuote_ZeroDecimalTargetRoundsToInteger() {
	quote, err := suite.service.GetQuote(context.Background(), dto.ConvertRequest{
		FromCurrency: "EUR",
		ToCurrency:   "JPY",
		Amount:       decimal.RequireFromString("12.34"),
	})

	suite.Require().NoError(err)
	// 12.34 * 163.45 = 2016.973, rounded to whole yen.
	suite.True(quote.ToAmount.Equal(decimal.NewFromInt(2017)))
	suite.True(quote.NetAmount.IsInteger(), "net %s", quote.NetAmount.String())
}

func (suite *ConversionServiceTestSuite) TestGetQuote_DirectionOrdering() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	quoteFor := func(direction string) *domain.ConversionResult {
		quote, err := suite.service.GetQuote(ctx, dto.ConvertRequest{
			FromCurrency: "EUR",
			ToCurrency:   "USD",
			Amount:       amount,
			Direction:    direction,
		})
		suite.Require().NoError(err)
		return quote
	}

	buy := quoteFor("buy")
	mid := quoteFor("mid")
	sell := quoteFor("sell")

	suite.True(buy.ToAmount.LessThan(mid.ToAmount))
	suite.True(mid.ToAmount.LessThan(sell.ToAmount))
	suite.True(buy.EffectiveRate.Equal(decimal.RequireFromString("1.0945")))
	suite.True(sell.EffectiveRate.Equal(decimal.RequireFromString("1.1055")))
}

func (suite *ConversionServiceTestSuite) TestConvert_MatchesQuoteAndPersists() {
	ctx := context.Background()
	req := dto.ConvertRequest{
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		Amount:       decimal.NewFromInt(5000),
	}

	quote, err := suite.service.GetQuote(ctx, req)
	suite.Require().NoError(err)

	result, err := suite.service.Convert(ctx, req)
	suite.Require().NoError(err)
	suite.NotEmpty(result.ConversionID)
	suite.True(result.ToAmount.Equal(quote.ToAmount))
	suite.True(result.NetAmount.Equal(quote.NetAmount))
	suite.True(result.Fees.Total.Equal(quote.Fees.Total))
	suite.True(result.EffectiveRate.Equal(quote.EffectiveRate))

	stored, err := suite.service.GetConversion(ctx, result.ConversionID)
	suite.Require().NoError(err)
	suite.True(stored.NetAmount.Equal(result.NetAmount))
}

func (suite *ConversionServiceTestSuite) TestConvert_TenantSettlementMovesBalances() {
	ctx := context.Background()
	tenantID := "tenant-1"

	_, err := suite.ledger.Deposit(ctx, dto.DepositRequest{
		TenantID:     tenantID,
		CurrencyCode: "EUR",
		Amount:       decimal.NewFromInt(1000),
	})
	suite.Require().NoError(err)

	result, err := suite.service.Convert(ctx, dto.ConvertRequest{
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		Amount:       decimal.NewFromInt(100),
		TenantID:     tenantID,
	})
	suite.Require().NoError(err)

	// Fees: 0.10 percentage + 1 fixed, debited in euros.
	eur, err := suite.ledger.GetAccount(ctx, tenantID, "EUR")
	suite.Require().NoError(err)
	suite.True(eur.Balance.Equal(decimal.RequireFromString("898.90")), "EUR balance %s", eur.Balance.String())

	usd, err := suite.ledger.GetAccount(ctx, tenantID, "USD")
	suite.Require().NoError(err)
	suite.True(usd.Balance.Equal(result.NetAmount))
	suite.True(usd.Balance.Equal(decimal.RequireFromString("108.79")), "USD balance %s", usd.Balance.String())
}

func (suite *ConversionServiceTestSuite) TestConvert_InsufficientFundsLeavesNoReceipt() {
	ctx := context.Background()
	tenantID := "tenant-broke"

	_, err := suite.service.Convert(ctx, dto.ConvertRequest{
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		Amount:       decimal.NewFromInt(100),
		TenantID:     tenantID,
	})
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)

	receipts, err := suite.repos.Conversions().ListConversions(ctx, tenantID, time.Time{}, time.Time{})
	suite.Require().NoError(err)
	suite.Empty(receipts)
}

func (suite *ConversionServiceTestSuite) TestConvert_RoundTripWithoutFees() {
	ctx := context.Background()
	noFees := services.ConversionPolicy{
		FeePercent:      decimal.Zero,
		FeeFixedLow:     decimal.Zero,
		FeeFixedMid:     decimal.Zero,
		FeeFixedHigh:    decimal.Zero,
		TierMidAbove:    decimal.NewFromInt(1000),
		TierHighAbove:   decimal.NewFromInt(10000),
		ReceiptValidity: 15 * time.Minute,
	}
	service := services.NewConversionService(
		suite.repos.Conversions(), suite.repos.Currencies(), suite.rates, suite.ledger, noFees)

	out, err := service.GetQuote(ctx, dto.ConvertRequest{
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		Amount:       decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)

	back, err := service.GetQuote(ctx, dto.ConvertRequest{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Amount:       out.NetAmount,
	})
	suite.Require().NoError(err)

	diff := back.NetAmount.Sub(decimal.NewFromInt(100)).Abs()
	suite.True(diff.LessThanOrEqual(decimal.RequireFromString("0.01")), "round trip drift %s", diff.String())
}

func (suite *ConversionServiceTestSuite) TestGetQuote_Validation() {
	ctx := context.Background()

	_, err := suite.service.GetQuote(ctx, dto.ConvertRequest{
		FromCurrency: "EUR", ToCurrency: "USD", Amount: decimal.NewFromInt(-5),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetQuote(ctx, dto.ConvertRequest{
		FromCurrency: "EUR", ToCurrency: "XXX", Amount: decimal.NewFromInt(5),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetQuote(ctx, dto.ConvertRequest{
		FromCurrency: "EUR", ToCurrency: "CHF", Amount: decimal.NewFromInt(5),
	})
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *ConversionServiceTestSuite) TestGetConversion_NotFound() {
	_, err := suite.service.GetConversion(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
