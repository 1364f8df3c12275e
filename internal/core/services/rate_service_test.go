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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	repos   *memory.RepositoryProvider
	service portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.repos = memory.NewRepositoryProvider(365)
	registry := services.NewRegistryService(suite.repos.Currencies())
	suite.Require().NoError(registry.SeedDefaultCurrencies(context.Background()))
	suite.service = services.NewRateService(suite.repos.Rates(), suite.repos.Currencies(), services.DefaultRatePolicy())
}

func (suite *RateServiceTestSuite) TestGetRate_SameCurrencyIsIdentity() {
	ctx := context.Background()

	rate, err := suite.service.GetRate(ctx, "EUR", "EUR")

	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(1)))
	suite.True(rate.BuyRate.Equal(decimal.NewFromInt(1)))
	suite.True(rate.SellRate.Equal(decimal.NewFromInt(1)))
	suite.True(rate.Spread.IsZero())
	suite.Equal(domain.SourceSameCurrency, rate.Source)
}

func (suite *RateServiceTestSuite) TestUpdateRate_StoresForwardAndInverse() {
	ctx := context.Background()
	mid := decimal.RequireFromString("1.25")

	forward, err := suite.service.UpdateRate(ctx, "EUR", "USD", mid, domain.SourceManualOverride)
	suite.Require().NoError(err)
	suite.True(forward.Rate.Equal(mid))

	inverse, err := suite.service.GetRate(ctx, "USD", "EUR")
	suite.Require().NoError(err)
	suite.True(inverse.Rate.Equal(decimal.RequireFromString("0.8")))

	// Round-tripping through both directions lands back on 1.
	product := forward.Rate.Mul(inverse.Rate)
	suite.True(product.Sub(decimal.NewFromInt(1)).Abs().LessThan(decimal.New(1, -12)),
		"forward*inverse = %s", product.String())
}

func (suite *RateServiceTestSuite) TestUpdateRate_BuySellBracketMid() {
	ctx := context.Background()
	mid := decimal.RequireFromString("1.10")

	rate, err := suite.service.UpdateRate(ctx, "EUR", "USD", mid, domain.SourceAuthoritativeFeed)

	suite.Require().NoError(err)
	suite.True(rate.BuyRate.LessThan(rate.Rate))
	suite.True(rate.SellRate.GreaterThan(rate.Rate))
	// Both legs are majors, so the 0.5% tier applies.
	suite.True(rate.Spread.Equal(decimal.RequireFromString("0.005")))
	suite.True(rate.BuyRate.Equal(decimal.RequireFromString("1.09450")))
	suite.True(rate.SellRate.Equal(decimal.RequireFromString("1.10550")))
}

func (suite *RateServiceTestSuite) TestUpdateRate_SpreadTiers() {
	ctx := context.Background()
	mid := decimal.NewFromInt(4)

	major, err := suite.service.UpdateRate(ctx, "EUR", "USD", mid, domain.SourceManualOverride)
	suite.Require().NoError(err)
	suite.True(major.Spread.Equal(decimal.RequireFromString("0.005")))

	// PLN is an EU member outside the euro; its 1% tier wins over EUR's.
	euMember, err := suite.service.UpdateRate(ctx, "EUR", "PLN", mid, domain.SourceManualOverride)
	suite.Require().NoError(err)
	suite.True(euMember.Spread.Equal(decimal.RequireFromString("0.01")))

	other, err := suite.service.UpdateRate(ctx, "EUR", "TRY", mid, domain.SourceManualOverride)
	suite.Require().NoError(err)
	suite.True(other.Spread.Equal(decimal.RequireFromString("0.02")))
}

func (suite *RateServiceTestSuite) TestUpdateRate_Validation() {
	ctx := context.Background()
	mid := decimal.NewFromInt(1)

	_, err := suite.service.UpdateRate(ctx, "EUR", "EUR", mid, domain.SourceManualOverride)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateRate(ctx, "EUR", "USD", decimal.Zero, domain.SourceManualOverride)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateRate(ctx, "EUR", "USD", decimal.NewFromInt(-1), domain.SourceManualOverride)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateRate(ctx, "EUR", "XXX", mid, domain.SourceManualOverride)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestGetRate_CrossThroughAnchor() {
	ctx := context.Background()
	suite.Require().NoError(suite.repos.Currencies().SetBaseCurrency(ctx, "EUR"))

	_, err := suite.service.UpdateRate(ctx, "PLN", "EUR", decimal.RequireFromString("0.23"), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateRate(ctx, "EUR", "JPY", decimal.NewFromInt(160), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)

	cross, err := suite.service.GetRate(ctx, "PLN", "JPY")

	suite.Require().NoError(err)
	suite.Equal(domain.SourceComputedCross, cross.Source)
	suite.True(cross.Rate.Equal(decimal.RequireFromString("36.80")), "got %s", cross.Rate.String())
	// The wider leg's spread wins: PLN/EUR carries 1%, EUR/JPY 0.5%.
	suite.True(cross.Spread.Equal(decimal.RequireFromString("0.01")))
	// Derived rates get the short validity window.
	suite.Equal(time.Hour, cross.ValidUntil.Sub(cross.FetchedAt))
}

func (suite *RateServiceTestSuite) TestGetRate_UnavailableWithoutPath() {
	ctx := context.Background()

	_, err := suite.service.GetRate(ctx, "EUR", "CHF")
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)

	_, err = suite.service.GetRate(ctx, "CHF", "CAD")
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *RateServiceTestSuite) TestGetRate_UnknownCurrency() {
	_, err := suite.service.GetRate(context.Background(), "EUR", "XXX")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestUpdateRate_TracksDailyChange() {
	ctx := context.Background()

	first, err := suite.service.UpdateRate(ctx, "EUR", "USD", decimal.NewFromInt(1), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)
	suite.False(first.HasChange24h)

	second, err := suite.service.UpdateRate(ctx, "EUR", "USD", decimal.RequireFromString("1.1"), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)
	suite.True(second.HasChange24h)
	suite.True(second.Change24h.Equal(decimal.RequireFromString("0.1")))
	suite.True(second.ChangePercent24h.Equal(decimal.NewFromInt(10)), "got %s", second.ChangePercent24h.String())
}

func (suite *RateServiceTestSuite) TestGetAllRates_SortedAndSkipsMissing() {
	ctx := context.Background()
	mid := decimal.NewFromInt(2)

	_, err := suite.service.UpdateRate(ctx, "EUR", "USD", mid, domain.SourceManualOverride)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateRate(ctx, "EUR", "GBP", mid, domain.SourceManualOverride)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateRate(ctx, "EUR", "JPY", mid, domain.SourceManualOverride)
	suite.Require().NoError(err)

	rates, err := suite.service.GetAllRates(ctx, "EUR")

	suite.Require().NoError(err)
	suite.Len(rates, 3)
	suite.Equal("GBP", rates[0].TargetCurrency)
	suite.Equal("JPY", rates[1].TargetCurrency)
	suite.Equal("USD", rates[2].TargetCurrency)
}

func (suite *RateServiceTestSuite) TestGetRateHistory_MergesSameDay() {
	ctx := context.Background()

	_, err := suite.service.UpdateRate(ctx, "EUR", "USD", decimal.RequireFromString("1.10"), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateRate(ctx, "EUR", "USD", decimal.RequireFromString("1.20"), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateRate(ctx, "EUR", "USD", decimal.RequireFromString("1.15"), domain.SourceAuthoritativeFeed)
	suite.Require().NoError(err)

	history, err := suite.service.GetRateHistory(ctx, "EUR", "USD", 30)

	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	point := history[0]
	suite.True(point.Open.Equal(decimal.RequireFromString("1.10")))
	suite.True(point.High.Equal(decimal.RequireFromString("1.20")))
	suite.True(point.Low.Equal(decimal.RequireFromString("1.10")))
	suite.True(point.Close.Equal(decimal.RequireFromString("1.15")))
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
