package services

import (
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
	"github.com/centrifx/fxcore/pkg/config"
	"github.com/shopspring/decimal"
)

// ServicesContainer wires every service facade over one repository
// provider, the way main (and integration tests) consume the engine.
type ServicesContainer struct {
	Registry   portssvc.RegistrySvcFacade
	Rates      portssvc.RateSvcFacade
	Feed       portssvc.FeedSvcFacade
	Conversion portssvc.ConversionSvcFacade
	Ledger     portssvc.LedgerSvcFacade
	Pricing    portssvc.PricingSvcFacade
	Hedging    portssvc.HedgingSvcFacade
	Analytics  portssvc.AnalyticsSvcFacade
}

// RatePolicyFromConfig maps configuration onto the rate store policy.
func RatePolicyFromConfig(cfg *config.Config) RatePolicy {
	return RatePolicy{
		SpreadMajor:       decimal.NewFromFloat(cfg.SpreadMajor),
		SpreadEUMember:    decimal.NewFromFloat(cfg.SpreadEUMember),
		SpreadDefault:     decimal.NewFromFloat(cfg.SpreadDefault),
		RateValidity:      cfg.RateValidity,
		CrossRateValidity: cfg.CrossRateValidity,
	}
}

// ConversionPolicyFromConfig maps configuration onto the fee schedule.
func ConversionPolicyFromConfig(cfg *config.Config) ConversionPolicy {
	return ConversionPolicy{
		FeePercent:      decimal.NewFromFloat(cfg.FeePercent),
		FeeFixedLow:     decimal.NewFromFloat(cfg.FeeFixedLow),
		FeeFixedMid:     decimal.NewFromFloat(cfg.FeeFixedMid),
		FeeFixedHigh:    decimal.NewFromFloat(cfg.FeeFixedHigh),
		TierMidAbove:    decimal.NewFromFloat(cfg.FeeTierMidAbove),
		TierHighAbove:   decimal.NewFromFloat(cfg.FeeTierHighAbove),
		ReceiptValidity: cfg.ConversionValidity,
	}
}

// AnalyticsPolicyFromConfig maps configuration onto the rollup bounds.
func AnalyticsPolicyFromConfig(cfg *config.Config) AnalyticsPolicy {
	return AnalyticsPolicy{
		MovementThresholdPct: decimal.NewFromFloat(cfg.MovementThresholdPct),
		MovementListLimit:    cfg.MovementListLimit,
	}
}

// NewServicesContainer builds the full engine over the given stores and
// feed fetcher. A nil fetcher leaves the Feed facade unset.
func NewServicesContainer(repos portsrepo.RepositoryProvider, fetcher portssvc.FeedFetcher, cfg *config.Config) *ServicesContainer {
	registry := NewRegistryService(repos.Currencies())
	rates := NewRateService(repos.Rates(), repos.Currencies(), RatePolicyFromConfig(cfg))
	ledger := NewLedgerService(repos.Accounts(), repos.Currencies())
	conversion := NewConversionService(repos.Conversions(), repos.Currencies(), rates, ledger, ConversionPolicyFromConfig(cfg))
	pricing := NewPricingService(repos.Prices(), repos.Currencies(), rates)
	hedging := NewHedgingService(repos.Hedging(), rates)
	analytics := NewAnalyticsService(repos.Accounts(), repos.Conversions(), repos.Currencies(), rates, AnalyticsPolicyFromConfig(cfg))

	container := &ServicesContainer{
		Registry:   registry,
		Rates:      rates,
		Ledger:     ledger,
		Conversion: conversion,
		Pricing:    pricing,
		Hedging:    hedging,
		Analytics:  analytics,
	}
	if fetcher != nil {
		container.Feed = NewFeedService(fetcher, repos.Currencies(), rates)
	}
	return container
}
