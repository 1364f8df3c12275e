package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/platform/logging"
	"github.com/shopspring/decimal"
)

// feedService republishes the official national-bank feed into the rate
// store. Quotes are "rate/multiplier units of anchor per 1 unit of code".
type feedService struct {
	fetcher      portssvc.FeedFetcher
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateSvc      portssvc.RateSvcFacade
}

// NewFeedService creates a new feed service.
func NewFeedService(fetcher portssvc.FeedFetcher, currencyRepo portsrepo.CurrencyRepositoryFacade, rateSvc portssvc.RateSvcFacade) portssvc.FeedSvcFacade {
	return &feedService{
		fetcher:      fetcher,
		currencyRepo: currencyRepo,
		rateSvc:      rateSvc,
	}
}

var _ portssvc.FeedSvcFacade = (*feedService)(nil)

// Ingest applies one payload. Malformed or unrecognized tuples are logged
// and skipped; the run itself never fails on a bad tuple. Re-ingesting the
// same day's payload overwrites with equal values.
func (s *feedService) Ingest(ctx context.Context, payload domain.FeedPayload) (*domain.FeedIngestStats, error) {
	logger := logging.FromCtx(ctx)

	anchor, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve anchor currency: %w", err)
	}

	stats := &domain.FeedIngestStats{}
	for _, quote := range payload.Rates {
		if quote.Code == anchor.CurrencyCode {
			stats.Skipped++
			continue
		}
		if quote.Multiplier <= 0 || !quote.Rate.IsPositive() {
			logger.Warn("Skipping malformed feed quote",
				slog.String("code", quote.Code), slog.String("rate", quote.Rate.String()), slog.Int64("multiplier", quote.Multiplier))
			stats.Skipped++
			continue
		}
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, quote.Code); err != nil {
			logger.Warn("Skipping unrecognized feed currency", slog.String("code", quote.Code))
			stats.Skipped++
			continue
		}

		perUnit := quote.Rate.Div(decimal.NewFromInt(quote.Multiplier))
		// One update writes both directions of the pair.
		if _, err := s.rateSvc.UpdateRate(ctx, quote.Code, anchor.CurrencyCode, perUnit, domain.SourceAuthoritativeFeed); err != nil {
			logger.Warn("Skipping feed quote rejected by rate store",
				slog.String("code", quote.Code), slog.String("error", err.Error()))
			stats.Skipped++
			continue
		}
		stats.Applied++
	}

	logger.Info("Feed payload ingested",
		slog.String("effective_date", payload.EffectiveDate),
		slog.Int("applied", stats.Applied),
		slog.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

// RefreshRates fetches the daily payload and ingests it. A fetch failure
// aborts the cycle; the store keeps serving the last good rates.
func (s *feedService) RefreshRates(ctx context.Context) (*domain.FeedIngestStats, error) {
	payload, err := s.fetcher.FetchDaily(ctx)
	if err != nil {
		logging.FromCtx(ctx).Error("Official feed unreachable, keeping last known rates",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrExternal, err.Error())
	}
	return s.Ingest(ctx, *payload)
}
