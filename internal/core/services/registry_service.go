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
	"github.com/centrifx/fxcore/internal/dto"
	"github.com/centrifx/fxcore/internal/platform/logging"
)

// registryService provides currency catalog operations.
type registryService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewRegistryService creates a new registry service.
func NewRegistryService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.RegistrySvcFacade {
	return &registryService{currencyRepo: currencyRepo}
}

var _ portssvc.RegistrySvcFacade = (*registryService)(nil)

// SeedDefaultCurrencies loads the built-in catalog, skipping codes that are
// already registered so repeated seeding is harmless.
func (s *registryService) SeedDefaultCurrencies(ctx context.Context) error {
	now := time.Now().UTC()
	for _, currency := range domain.DefaultCatalog() {
		currency.CreatedAt = now
		currency.LastUpdatedAt = now
		err := s.currencyRepo.SaveCurrency(ctx, currency)
		if err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("failed to seed currency %s: %w", currency.CurrencyCode, err)
		}
	}
	return nil
}

func (s *registryService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode:  req.CurrencyCode,
		Name:          req.Name,
		Symbol:        req.Symbol,
		DecimalPlaces: req.DecimalPlaces,
		Region:        req.Region,
		IsMajor:       req.IsMajor,
		IsEUMember:    req.IsEUMember,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return &currency, nil
}

func (s *registryService) GetCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return currency, nil
}

func (s *registryService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *registryService) BaseCurrency(ctx context.Context) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base currency: %w", err)
	}
	return currency, nil
}

// SetBaseCurrency is the explicit admin operation that moves the anchor.
// The flag never moves implicitly.
func (s *registryService) SetBaseCurrency(ctx context.Context, currencyCode string) error {
	currencyCode = strings.ToUpper(currencyCode)
	if _, err := s.GetCurrency(ctx, currencyCode); err != nil {
		return err
	}
	if err := s.currencyRepo.SetBaseCurrency(ctx, currencyCode); err != nil {
		return fmt.Errorf("failed to set base currency: %w", err)
	}
	logging.FromCtx(ctx).Info("Base currency changed", slog.String("currency", currencyCode))
	return nil
}
