package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/platform/logging"
	"github.com/shopspring/decimal"
)

// AnalyticsPolicy bounds the rate-movement rollup.
type AnalyticsPolicy struct {
	MovementThresholdPct decimal.Decimal // |24h %| at or below this is "stable"
	MovementListLimit    int
}

// DefaultAnalyticsPolicy returns the documented ±0.1% threshold.
func DefaultAnalyticsPolicy() AnalyticsPolicy {
	return AnalyticsPolicy{
		MovementThresholdPct: decimal.New(1, -1),
		MovementListLimit:    20,
	}
}

// analyticsService produces read-only rollups over the ledger, conversion
// receipts and the rate store. It never mutates state.
type analyticsService struct {
	accountRepo    portsrepo.AccountRepositoryFacade
	conversionRepo portsrepo.ConversionRepositoryFacade
	currencyRepo   portsrepo.CurrencyRepositoryFacade
	rateSvc        portssvc.RateSvcFacade
	policy         AnalyticsPolicy
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	accountRepo portsrepo.AccountRepositoryFacade,
	conversionRepo portsrepo.ConversionRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rateSvc portssvc.RateSvcFacade,
	policy AnalyticsPolicy,
) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		accountRepo:    accountRepo,
		conversionRepo: conversionRepo,
		currencyRepo:   currencyRepo,
		rateSvc:        rateSvc,
		policy:         policy,
	}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

func (s *analyticsService) GetAnalytics(ctx context.Context, tenantID string, start, end time.Time) (*domain.CurrencyAnalytics, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", apperrors.ErrValidation)
	}

	anchor, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve anchor currency: %w", err)
	}

	out := &domain.CurrencyAnalytics{
		TenantID:       tenantID,
		WindowStart:    start,
		WindowEnd:      end,
		AnchorCurrency: anchor.CurrencyCode,
		TotalFees:      decimal.Zero,
		AverageSpread:  decimal.Zero,
	}

	if err := s.rollupVolumes(ctx, tenantID, start, end, out); err != nil {
		return nil, err
	}
	if err := s.rollupConversions(ctx, tenantID, start, end, out); err != nil {
		return nil, err
	}
	if err := s.rollupExposure(ctx, tenantID, anchor.CurrencyCode, out); err != nil {
		return nil, err
	}
	if err := s.rollupMovements(ctx, anchor.CurrencyCode, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *analyticsService) rollupVolumes(ctx context.Context, tenantID string, start, end time.Time, out *domain.CurrencyAnalytics) error {
	txns, err := s.accountRepo.ListTransactions(ctx, tenantID, portsrepo.TransactionFilter{From: start, To: end})
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	volumes := make(map[string]*domain.CurrencyVolume)
	for _, txn := range txns {
		volume, ok := volumes[txn.CurrencyCode]
		if !ok {
			volume = &domain.CurrencyVolume{CurrencyCode: txn.CurrencyCode, Volume: decimal.Zero}
			volumes[txn.CurrencyCode] = volume
		}
		volume.Volume = volume.Volume.Add(txn.Amount.Abs())
		volume.Transactions++
	}

	out.VolumeByCcy = make([]domain.CurrencyVolume, 0, len(volumes))
	for _, volume := range volumes {
		out.VolumeByCcy = append(out.VolumeByCcy, *volume)
	}
	sort.Slice(out.VolumeByCcy, func(i, j int) bool {
		return out.VolumeByCcy[i].CurrencyCode < out.VolumeByCcy[j].CurrencyCode
	})
	return nil
}

func (s *analyticsService) rollupConversions(ctx context.Context, tenantID string, start, end time.Time, out *domain.CurrencyAnalytics) error {
	conversions, err := s.conversionRepo.ListConversions(ctx, tenantID, start, end)
	if err != nil {
		return fmt.Errorf("failed to list conversions: %w", err)
	}

	pairStats := make(map[string]*domain.PairConversionStats)
	spreadSum := decimal.Zero
	spreadCount := 0
	for _, conversion := range conversions {
		out.ConversionCount++
		out.TotalFees = out.TotalFees.Add(conversion.Fees.Total)

		pair := conversion.FromCurrency + "/" + conversion.ToCurrency
		stats, ok := pairStats[pair]
		if !ok {
			stats = &domain.PairConversionStats{Pair: pair, FromVolume: decimal.Zero, TotalFees: decimal.Zero}
			pairStats[pair] = stats
		}
		stats.Count++
		stats.FromVolume = stats.FromVolume.Add(conversion.FromAmount)
		stats.TotalFees = stats.TotalFees.Add(conversion.Fees.Total)

		// Spread as currently quoted for the pair; pairs that lost their
		// rate path since the conversion are skipped.
		if rate, err := s.rateSvc.GetRate(ctx, conversion.FromCurrency, conversion.ToCurrency); err == nil {
			spreadSum = spreadSum.Add(rate.Spread)
			spreadCount++
		}
	}
	if spreadCount > 0 {
		out.AverageSpread = spreadSum.Div(decimal.NewFromInt(int64(spreadCount)))
	}

	out.PairStats = make([]domain.PairConversionStats, 0, len(pairStats))
	for _, stats := range pairStats {
		out.PairStats = append(out.PairStats, *stats)
	}
	sort.Slice(out.PairStats, func(i, j int) bool { return out.PairStats[i].Pair < out.PairStats[j].Pair })
	return nil
}

// rollupExposure converts every held balance to the anchor currency and
// expresses it as a share of the tenant's total held value. Shares sum to
// ~100% within rounding tolerance.
func (s *analyticsService) rollupExposure(ctx context.Context, tenantID, anchorCode string, out *domain.CurrencyAnalytics) error {
	accounts, err := s.accountRepo.ListAccountsByTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	logger := logging.FromCtx(ctx)
	entries := make([]domain.ExposureEntry, 0, len(accounts))
	total := decimal.Zero
	for _, account := range accounts {
		rate, err := s.rateSvc.GetRate(ctx, account.CurrencyCode, anchorCode)
		if err != nil {
			logger.Warn("Skipping exposure entry without rate path",
				slog.String("currency", account.CurrencyCode), slog.String("error", err.Error()))
			continue
		}
		anchorValue := account.Balance.Mul(rate.Rate)
		entries = append(entries, domain.ExposureEntry{
			CurrencyCode: account.CurrencyCode,
			Balance:      account.Balance,
			AnchorValue:  anchorValue,
			Percent:      decimal.Zero,
		})
		total = total.Add(anchorValue)
	}

	if total.IsPositive() {
		for i := range entries {
			entries[i].Percent = entries[i].AnchorValue.Div(total).Mul(hundred).Round(2)
		}
	}
	out.Exposure = entries
	return nil
}

func (s *analyticsService) rollupMovements(ctx context.Context, anchorCode string, out *domain.CurrencyAnalytics) error {
	rates, err := s.rateSvc.GetAllRates(ctx, anchorCode)
	if err != nil {
		return fmt.Errorf("failed to list rates: %w", err)
	}

	movements := make([]domain.RateMovement, 0, len(rates))
	for _, rate := range rates {
		if !rate.HasChange24h {
			continue
		}
		direction := domain.MovementStable
		switch {
		case rate.ChangePercent24h.GreaterThan(s.policy.MovementThresholdPct):
			direction = domain.MovementUp
		case rate.ChangePercent24h.LessThan(s.policy.MovementThresholdPct.Neg()):
			direction = domain.MovementDown
		}
		movements = append(movements, domain.RateMovement{
			Pair:             rate.Pair(),
			Rate:             rate.Rate,
			ChangePercent24h: rate.ChangePercent24h,
			Direction:        direction,
		})
		if s.policy.MovementListLimit > 0 && len(movements) >= s.policy.MovementListLimit {
			break
		}
	}
	out.RateMovements = movements
	return nil
}
