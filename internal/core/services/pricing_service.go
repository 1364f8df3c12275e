package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/dto"
	"github.com/centrifx/fxcore/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// pricingService derives multi-currency price lists from the rate store.
type pricingService struct {
	priceRepo    portsrepo.PriceRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateSvc      portssvc.RateSvcFacade
}

// NewPricingService creates a new pricing service.
func NewPricingService(priceRepo portsrepo.PriceRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, rateSvc portssvc.RateSvcFacade) portssvc.PricingSvcFacade {
	return &pricingService{
		priceRepo:    priceRepo,
		currencyRepo: currencyRepo,
		rateSvc:      rateSvc,
	}
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// computePoint prices one currency: the base entry is the base amount at
// rate 1; any other entry is baseAmount * rate * (1 + margin/100) with the
// rounding rule applied at the currency's precision.
func (s *pricingService) computePoint(ctx context.Context, price domain.MultiCurrencyPrice, currencyCode string, now time.Time) (*domain.PricePoint, error) {
	if currencyCode == price.BaseCurrency {
		return &domain.PricePoint{
			CurrencyCode: currencyCode,
			Amount:       price.BaseAmount,
			Rate:         one,
			UpdatedAt:    now,
		}, nil
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, currencyCode)
	}
	rate, err := s.rateSvc.GetRate(ctx, price.BaseCurrency, currencyCode)
	if err != nil {
		return nil, err
	}

	marginFactor := one.Add(price.MarginPercent.Div(hundred))
	raw := price.BaseAmount.Mul(rate.Rate).Mul(marginFactor)
	amount, err := money.ApplyRule(raw, price.RoundingRule, currency.DecimalPlaces)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	return &domain.PricePoint{
		CurrencyCode: currencyCode,
		Amount:       amount,
		Rate:         rate.Rate,
		UpdatedAt:    now,
	}, nil
}

func (s *pricingService) CreateMultiCurrencyPrice(ctx context.Context, req dto.CreatePriceRequest) (*domain.MultiCurrencyPrice, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.BaseAmount.IsPositive() {
		return nil, fmt.Errorf("%w: base amount must be positive", apperrors.ErrValidation)
	}

	baseCode := strings.ToUpper(req.BaseCurrency)
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, baseCode); err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, baseCode)
	}

	rule := domain.RoundingRule(req.RoundingRule)
	if rule == "" {
		rule = domain.RoundNone
	}

	now := time.Now().UTC()
	price := domain.MultiCurrencyPrice{
		PriceID:       uuid.NewString(),
		BaseCurrency:  baseCode,
		BaseAmount:    req.BaseAmount,
		AutoUpdate:    req.AutoUpdate,
		MarginPercent: req.MarginPercent,
		RoundingRule:  rule,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// The base currency always gets an entry, listed or not.
	codes := make([]string, 0, len(req.Currencies)+1)
	seen := map[string]bool{baseCode: true}
	codes = append(codes, baseCode)
	for _, code := range req.Currencies {
		code = strings.ToUpper(code)
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	for _, code := range codes {
		point, err := s.computePoint(ctx, price, code, now)
		if err != nil {
			return nil, err
		}
		price.Prices = append(price.Prices, *point)
	}

	if err := s.priceRepo.SavePrice(ctx, price); err != nil {
		return nil, fmt.Errorf("failed to persist price: %w", err)
	}
	return &price, nil
}

// GetPriceInCurrency returns the stored entry when present, otherwise
// computes one on the fly with the record's margin and rounding rule. A
// currency outside the original list is not an error.
func (s *pricingService) GetPriceInCurrency(ctx context.Context, priceID, currencyCode string) (*domain.PricePoint, error) {
	price, err := s.priceRepo.FindPriceByID(ctx, priceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}

	currencyCode = strings.ToUpper(currencyCode)
	for _, point := range price.Prices {
		if point.CurrencyCode == currencyCode {
			p := point
			return &p, nil
		}
	}
	return s.computePoint(ctx, *price, currencyCode, time.Now().UTC())
}

func (s *pricingService) UpdateMultiCurrencyPrices(ctx context.Context, priceID string) (*domain.MultiCurrencyPrice, error) {
	price, err := s.priceRepo.FindPriceByID(ctx, priceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}

	now := time.Now().UTC()
	for i, point := range price.Prices {
		refreshed, err := s.computePoint(ctx, *price, point.CurrencyCode, now)
		if err != nil {
			return nil, err
		}
		price.Prices[i] = *refreshed
	}
	price.LastUpdatedAt = now

	if err := s.priceRepo.UpdatePrice(ctx, *price); err != nil {
		return nil, fmt.Errorf("failed to update price: %w", err)
	}
	return price, nil
}

func (s *pricingService) GetPrice(ctx context.Context, priceID string) (*domain.MultiCurrencyPrice, error) {
	price, err := s.priceRepo.FindPriceByID(ctx, priceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}
	return price, nil
}
