package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundingRule controls how derived prices are rounded.
type RoundingRule string

const (
	RoundNone          RoundingRule = "none"
	RoundUp            RoundingRule = "up"
	RoundDown          RoundingRule = "down"
	RoundNearest       RoundingRule = "nearest"
	RoundPsychological RoundingRule = "psychological"
)

// PricePoint is one currency's entry in a multi-currency price list.
type PricePoint struct {
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	Rate         decimal.Decimal `json:"rate"` // mid rate used; 1 for the base entry
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// MultiCurrencyPrice prices one product across several currencies from a
// base-currency price. The base currency's own entry always carries
// Amount == BaseAmount and Rate == 1.
type MultiCurrencyPrice struct {
	PriceID       string          `json:"priceID"` // Primary Key (UUID)
	BaseCurrency  string          `json:"baseCurrency"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	Prices        []PricePoint    `json:"prices"`
	AutoUpdate    bool            `json:"autoUpdate"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	RoundingRule  RoundingRule    `json:"roundingRule"`
	AuditFields
}
