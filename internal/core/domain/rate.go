package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource identifies where an exchange rate came from.
type RateSource string

const (
	SourceAuthoritativeFeed RateSource = "authoritative-feed"
	SourceMarketFeed        RateSource = "external-market-feed"
	SourceManualOverride    RateSource = "manual-override"
	SourceComputedCross     RateSource = "computed-cross"
	SourceSameCurrency      RateSource = "same-currency"
)

// ExchangeRate is a directed quote for one currency pair. Buy and sell rates
// are derived from the mid rate and the pair's spread tier; the stored
// inverse entry is always written in the same atomic update.
type ExchangeRate struct {
	BaseCurrency     string          `json:"baseCurrency"`
	TargetCurrency   string          `json:"targetCurrency"`
	Rate             decimal.Decimal `json:"rate"`        // target units per 1 base unit (mid)
	InverseRate      decimal.Decimal `json:"inverseRate"` // 1/Rate
	BuyRate          decimal.Decimal `json:"buyRate"`
	SellRate         decimal.Decimal `json:"sellRate"`
	Spread           decimal.Decimal `json:"spread"` // fraction, e.g. 0.005
	Source           RateSource      `json:"source"`
	FetchedAt        time.Time       `json:"fetchedAt"`
	ValidUntil       time.Time       `json:"validUntil"`
	Change24h        decimal.Decimal `json:"change24h"`
	ChangePercent24h decimal.Decimal `json:"changePercent24h"`
	HasChange24h     bool            `json:"hasChange24h"` // false on the first write for a pair
}

// Pair returns the conventional "BASE/TARGET" key for the rate.
func (r ExchangeRate) Pair() string {
	return r.BaseCurrency + "/" + r.TargetCurrency
}

// RateHistoryEntry is one point in the append-only per-pair daily series.
// The series is informational only and never authoritative for pricing.
type RateHistoryEntry struct {
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Date           time.Time       `json:"date"` // truncated to day, UTC
	Rate           decimal.Decimal `json:"rate"` // last mid of the day
	Open           decimal.Decimal `json:"open"`
	High           decimal.Decimal `json:"high"`
	Low            decimal.Decimal `json:"low"`
	Close          decimal.Decimal `json:"close"`
	Source         RateSource      `json:"source"`
}
