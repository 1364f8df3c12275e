package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/centrifx/fxcore/internal/apperrors"
	"github.com/centrifx/fxcore/internal/core/domain"
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/internal/dto"
	"github.com/centrifx/fxcore/internal/platform/logging"
	"github.com/centrifx/fxcore/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionPolicy carries the fee schedule and receipt validity window.
// Fees are denominated in the source currency: a percentage of the source
// amount plus a fixed fee banded by the source amount.
type ConversionPolicy struct {
	FeePercent      decimal.Decimal // fraction, e.g. 0.001
	FeeFixedLow     decimal.Decimal
	FeeFixedMid     decimal.Decimal
	FeeFixedHigh    decimal.Decimal
	TierMidAbove    decimal.Decimal // source amount above which the mid fixed fee applies
	TierHighAbove   decimal.Decimal // source amount above which the top fixed fee applies
	ReceiptValidity time.Duration
}

// DefaultConversionPolicy returns the documented schedule: 0.1% plus
// 1/5/10 fixed, banded at 1,000 and 10,000; receipts valid 15 minutes.
func DefaultConversionPolicy() ConversionPolicy {
	return ConversionPolicy{
		FeePercent:      decimal.New(1, -3),
		FeeFixedLow:     decimal.NewFromInt(1),
		FeeFixedMid:     decimal.NewFromInt(5),
		FeeFixedHigh:    decimal.NewFromInt(10),
		TierMidAbove:    decimal.NewFromInt(1000),
		TierHighAbove:   decimal.NewFromInt(10000),
		ReceiptValidity: 15 * time.Minute,
	}
}

// conversionService prices conversions against the rate store and posts
// settled conversions to the ledger.
type conversionService struct {
	conversionRepo portsrepo.ConversionRepositoryFacade
	currencyRepo   portsrepo.CurrencyRepositoryFacade
	rateSvc        portssvc.RateSvcFacade
	ledgerSvc      portssvc.LedgerSvcFacade
	policy         ConversionPolicy
}

// NewConversionService creates a new conversion service.
func NewConversionService(
	conversionRepo portsrepo.ConversionRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rateSvc portssvc.RateSvcFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	policy ConversionPolicy,
) portssvc.ConversionSvcFacade {
	return &conversionService{
		conversionRepo: conversionRepo,
		currencyRepo:   currencyRepo,
		rateSvc:        rateSvc,
		ledgerSvc:      ledgerSvc,
		policy:         policy,
	}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// fixedFee returns the fixed fee band for a source amount.
func (s *conversionService) fixedFee(amount decimal.Decimal) decimal.Decimal {
	switch {
	case amount.GreaterThan(s.policy.TierHighAbove):
		return s.policy.FeeFixedHigh
	case amount.GreaterThan(s.policy.TierMidAbove):
		return s.policy.FeeFixedMid
	default:
		return s.policy.FeeFixedLow
	}
}

// price runs the full conversion computation without any side effect.
// Convert and GetQuote share it so a quote is numerically identical to a
// conversion over the same rate snapshot.
func (s *conversionService) price(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	fromCode := strings.ToUpper(req.FromCurrency)
	toCode := strings.ToUpper(req.ToCurrency)
	direction := domain.ConversionDirection(req.Direction)
	if direction == "" {
		direction = domain.DirectionMid
	}

	from, err := s.currencyRepo.FindCurrencyByCode(ctx, fromCode)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, fromCode)
	}
	to, err := s.currencyRepo.FindCurrencyByCode(ctx, toCode)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, toCode)
	}

	rate, err := s.rateSvc.GetRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}

	var effective decimal.Decimal
	switch direction {
	case domain.DirectionBuy:
		effective = rate.BuyRate
	case domain.DirectionSell:
		effective = rate.SellRate
	default:
		effective = rate.Rate
	}

	toAmount := money.Round(req.Amount.Mul(effective), to.DecimalPlaces)

	percentageFee := money.Round(req.Amount.Mul(s.policy.FeePercent), from.DecimalPlaces)
	fixedFee := s.fixedFee(req.Amount)
	totalFee := percentageFee.Add(fixedFee)

	netAmount := money.Round(toAmount.Sub(totalFee.Mul(effective)), to.DecimalPlaces)

	now := time.Now().UTC()
	return &domain.ConversionResult{
		TenantID:      req.TenantID,
		FromCurrency:  fromCode,
		ToCurrency:    toCode,
		FromAmount:    req.Amount,
		ToAmount:      toAmount,
		EffectiveRate: effective,
		Direction:     direction,
		Fees: domain.FeeBreakdown{
			Percentage: percentageFee,
			Fixed:      fixedFee,
			Total:      totalFee,
		},
		NetAmount:   netAmount,
		RateSource:  rate.Source,
		ConvertedAt: now,
		ValidUntil:  now.Add(s.policy.ReceiptValidity),
	}, nil
}

// GetQuote produces a non-binding preview. The receipt carries no id and
// is not persisted.
func (s *conversionService) GetQuote(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	return s.price(ctx, req)
}

// Convert settles a conversion. For tenant conversions the two ledger legs
// are posted first; a failed posting (e.g. insufficient funds) fails the
// whole call and no receipt is recorded.
func (s *conversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	result, err := s.price(ctx, req)
	if err != nil {
		return nil, err
	}
	result.ConversionID = uuid.NewString()

	if req.TenantID != "" {
		if _, err := s.ledgerSvc.PostConversion(ctx, req.TenantID, *result); err != nil {
			return nil, err
		}
	}

	if err := s.conversionRepo.SaveConversion(ctx, *result); err != nil {
		return nil, fmt.Errorf("failed to persist conversion receipt: %w", err)
	}

	logging.FromCtx(ctx).Info("Conversion settled",
		slog.String("conversion_id", result.ConversionID),
		slog.String("pair", result.FromCurrency+"/"+result.ToCurrency),
		slog.String("from_amount", result.FromAmount.String()),
		slog.String("net_amount", result.NetAmount.String()),
	)
	return result, nil
}

func (s *conversionService) GetConversion(ctx context.Context, conversionID string) (*domain.ConversionResult, error) {
	result, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}
	return result, nil
}
