package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/platform/logging"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// RatePolicy carries the spread tiers and validity windows of the rate
// store. Spreads are fractions (0.005 = 0.5%).
type RatePolicy struct {
	SpreadMajor       decimal.Decimal
	SpreadEUMember    decimal.Decimal
	SpreadDefault     decimal.Decimal
	RateValidity      time.Duration
	CrossRateValidity time.Duration
}

// DefaultRatePolicy returns the documented tiering: majors 0.5%, EU members
// 1%, everything else 2%; primary rates valid 24h, cross rates 1h.
func DefaultRatePolicy() RatePolicy {
	return RatePolicy{
		SpreadMajor:       decimal.New(5, -3),
		SpreadEUMember:    decimal.New(1, -2),
		SpreadDefault:     decimal.New(2, -2),
		RateValidity:      24 * time.Hour,
		CrossRateValidity: time.Hour,
	}
}

// rateService implements the rate store on top of a rate repository.
type rateService struct {
	rateRepo     portsrepo.RateRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	policy       RatePolicy
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, policy RatePolicy) portssvc.RateSvcFacade {
	return &rateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		policy:       policy,
	}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// spreadFor returns a single currency's spread tier.
func (s *rateService) spreadFor(currency domain.Currency) decimal.Decimal {
	switch {
	case currency.IsMajor:
		return s.policy.SpreadMajor
	case currency.IsEUMember:
		return s.policy.SpreadEUMember
	default:
		return s.policy.SpreadDefault
	}
}

// pairSpread returns the pair's spread tier: the wider of the two legs.
func (s *rateService) pairSpread(base, target domain.Currency) decimal.Decimal {
	baseSpread := s.spreadFor(base)
	targetSpread := s.spreadFor(target)
	if targetSpread.GreaterThan(baseSpread) {
		return targetSpread
	}
	return baseSpread
}

// buildEntry derives a full directed entry from a mid rate. The prior
// stored entry, when present, feeds the 24h change figures.
func buildEntry(base, target string, mid, spread decimal.Decimal, source domain.RateSource, now time.Time, validity time.Duration, prior *domain.ExchangeRate) domain.ExchangeRate {
	entry := domain.ExchangeRate{
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           mid,
		InverseRate:    one.Div(mid),
		BuyRate:        mid.Mul(one.Sub(spread)),
		SellRate:       mid.Mul(one.Add(spread)),
		Spread:         spread,
		Source:         source,
		FetchedAt:      now,
		ValidUntil:     now.Add(validity),
	}
	if prior != nil && prior.Rate.IsPositive() {
		entry.Change24h = mid.Sub(prior.Rate)
		entry.ChangePercent24h = entry.Change24h.Div(prior.Rate).Mul(decimal.NewFromInt(100))
		entry.HasChange24h = true
	}
	return entry
}

func (s *rateService) identityRate(base string, now time.Time) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		BaseCurrency:   base,
		TargetCurrency: base,
		Rate:           one,
		InverseRate:    one,
		BuyRate:        one,
		SellRate:       one,
		Spread:         decimal.Zero,
		Source:         domain.SourceSameCurrency,
		FetchedAt:      now,
		ValidUntil:     now.Add(s.policy.RateValidity),
	}
}

// GetRate resolves a directed pair: identity, direct lookup, then a cross
// rate through the anchor. Cross rates are computed on read, never stored.
func (s *rateService) GetRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	baseCurrency = strings.ToUpper(baseCurrency)
	targetCurrency = strings.ToUpper(targetCurrency)

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, baseCurrency); err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, baseCurrency)
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, targetCurrency); err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, targetCurrency)
	}

	now := time.Now().UTC()
	if baseCurrency == targetCurrency {
		return s.identityRate(baseCurrency, now), nil
	}

	direct, err := s.rateRepo.FindRate(ctx, baseCurrency, targetCurrency)
	if err == nil {
		return direct, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up rate: %w", err)
	}

	anchor, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve anchor currency: %w", err)
	}
	if baseCurrency == anchor.CurrencyCode || targetCurrency == anchor.CurrencyCode {
		return nil, fmt.Errorf("%w: no stored rate for %s/%s", apperrors.ErrRateUnavailable, baseCurrency, targetCurrency)
	}
	return s.computeCrossRate(ctx, baseCurrency, targetCurrency, anchor.CurrencyCode, now)
}

// computeCrossRate composes base->anchor and anchor->target. The result is
// tagged computed-cross, gets the wider of the two legs' spreads and a
// short validity window, since it is derivative.
func (s *rateService) computeCrossRate(ctx context.Context, baseCurrency, targetCurrency, anchorCurrency string, now time.Time) (*domain.ExchangeRate, error) {
	baseLeg, err := s.rateRepo.FindRate(ctx, baseCurrency, anchorCurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: no rate path for %s/%s", apperrors.ErrRateUnavailable, baseCurrency, targetCurrency)
	}
	targetLeg, err := s.rateRepo.FindRate(ctx, anchorCurrency, targetCurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: no rate path for %s/%s", apperrors.ErrRateUnavailable, baseCurrency, targetCurrency)
	}

	spread := baseLeg.Spread
	if targetLeg.Spread.GreaterThan(spread) {
		spread = targetLeg.Spread
	}
	mid := baseLeg.Rate.Mul(targetLeg.Rate)
	entry := buildEntry(baseCurrency, targetCurrency, mid, spread, domain.SourceComputedCross, now, s.policy.CrossRateValidity, nil)
	return &entry, nil
}

// UpdateRate stores a new mid rate for a pair. The forward and inverse
// entries plus the history points are written in one atomic step.
func (s *rateService) UpdateRate(ctx context.Context, baseCurrency, targetCurrency string, rate decimal.Decimal, source domain.RateSource) (*domain.ExchangeRate, error) {
	baseCurrency = strings.ToUpper(baseCurrency)
	targetCurrency = strings.ToUpper(targetCurrency)

	if baseCurrency == targetCurrency {
		return nil, fmt.Errorf("%w: cannot update the same-currency pair", apperrors.ErrValidation)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}

	base, err := s.currencyRepo.FindCurrencyByCode(ctx, baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, baseCurrency)
	}
	target, err := s.currencyRepo.FindCurrencyByCode(ctx, targetCurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, targetCurrency)
	}

	priorForward, _ := s.rateRepo.FindRate(ctx, baseCurrency, targetCurrency)
	priorInverse, _ := s.rateRepo.FindRate(ctx, targetCurrency, baseCurrency)

	now := time.Now().UTC()
	spread := s.pairSpread(*base, *target)
	forward := buildEntry(baseCurrency, targetCurrency, rate, spread, source, now, s.policy.RateValidity, priorForward)
	inverse := buildEntry(targetCurrency, baseCurrency, one.Div(rate), spread, source, now, s.policy.RateValidity, priorInverse)

	if err := s.rateRepo.SaveRatePair(ctx, forward, inverse); err != nil {
		return nil, fmt.Errorf("failed to store rate pair: %w", err)
	}

	logging.FromCtx(ctx).Debug("Rate updated",
		slog.String("pair", forward.Pair()),
		slog.String("rate", rate.String()),
		slog.String("source", string(source)),
	)
	return &forward, nil
}

// GetAllRates returns one rate per other registered currency against the
// given anchor, sorted by target code. Currencies without a stored or
// derivable rate are skipped.
func (s *rateService) GetAllRates(ctx context.Context, anchorCurrency string) ([]domain.ExchangeRate, error) {
	anchorCurrency = strings.ToUpper(anchorCurrency)
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, anchorCurrency); err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, anchorCurrency)
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	out := make([]domain.ExchangeRate, 0, len(currencies))
	for _, currency := range currencies {
		if currency.CurrencyCode == anchorCurrency {
			continue
		}
		rate, err := s.GetRate(ctx, anchorCurrency, currency.CurrencyCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrRateUnavailable) {
				continue
			}
			return nil, err
		}
		out = append(out, *rate)
	}
	return out, nil
}

func (s *rateService) GetRateHistory(ctx context.Context, baseCurrency, targetCurrency string, days int) ([]domain.RateHistoryEntry, error) {
	baseCurrency = strings.ToUpper(baseCurrency)
	targetCurrency = strings.ToUpper(targetCurrency)
	history, err := s.rateRepo.ListHistory(ctx, baseCurrency, targetCurrency, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history: %w", err)
	}
	return history, nil
}
