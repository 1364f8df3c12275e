package repositories

// RepositoryProvider aggregates every repository facade the service layer
// needs. Adapters implement it so the whole store can be injected (and
// replaced per test) as one unit.
type RepositoryProvider interface {
	Currencies() CurrencyRepositoryFacade
	Rates() RateRepositoryFacade
	Accounts() AccountRepositoryFacade
	Conversions() ConversionRepositoryFacade
	Prices() PriceRepositoryFacade
	Hedging() HedgingRepositoryFacade
}
