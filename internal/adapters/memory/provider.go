package memory

import (
	portsrepo "github.com/centrifx/fxcore/internal/core/ports/repositories"
)

// RepositoryProvider bundles one coherent set of in-memory stores. Tests
// create a fresh provider per case; main creates one for the process.
type RepositoryProvider struct {
	currencies  *CurrencyRepository
	rates       *RateRepository
	accounts    *AccountRepository
	conversions *ConversionRepository
	prices      *PriceRepository
	hedging     *HedgingRepository
}

// NewRepositoryProvider creates the full in-memory store set.
func NewRepositoryProvider(historyRetentionDays int) *RepositoryProvider {
	return &RepositoryProvider{
		currencies:  NewCurrencyRepository(),
		rates:       NewRateRepository(historyRetentionDays),
		accounts:    NewAccountRepository(),
		conversions: NewConversionRepository(),
		prices:      NewPriceRepository(),
		hedging:     NewHedgingRepository(),
	}
}

var _ portsrepo.RepositoryProvider = (*RepositoryProvider)(nil)

func (p *RepositoryProvider) Currencies() portsrepo.CurrencyRepositoryFacade {
	return p.currencies
}

func (p *RepositoryProvider) Rates() portsrepo.RateRepositoryFacade {
	return p.rates
}

func (p *RepositoryProvider) Accounts() portsrepo.AccountRepositoryFacade {
	return p.accounts
}

func (p *RepositoryProvider) Conversions() portsrepo.ConversionRepositoryFacade {
	return p.conversions
}

func (p *RepositoryProvider) Prices() portsrepo.PriceRepositoryFacade {
	return p.prices
}

func (p *RepositoryProvider) Hedging() portsrepo.HedgingRepositoryFacade {
	return p.hedging
}
