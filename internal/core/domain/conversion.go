package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionDirection selects which side of the spread prices a conversion.
type ConversionDirection string

const (
	DirectionMid  ConversionDirection = "mid"
	DirectionBuy  ConversionDirection = "buy"
	DirectionSell ConversionDirection = "sell"
)

// FeeBreakdown itemizes the fees charged on a conversion, all denominated
// in the source currency.
type FeeBreakdown struct {
	Percentage decimal.Decimal `json:"percentage"`
	Fixed      decimal.Decimal `json:"fixed"`
	Total      decimal.Decimal `json:"total"`
}

// ConversionResult is the immutable receipt of a conversion or quote.
// Persisted receipts are never mutated after creation.
type ConversionResult struct {
	ConversionID  string              `json:"conversionID"` // empty for non-binding quotes
	TenantID      string              `json:"tenantID"`     // empty for anonymous conversions
	FromCurrency  string              `json:"fromCurrency"`
	ToCurrency    string              `json:"toCurrency"`
	FromAmount    decimal.Decimal     `json:"fromAmount"`
	ToAmount      decimal.Decimal     `json:"toAmount"`
	EffectiveRate decimal.Decimal     `json:"effectiveRate"`
	Direction     ConversionDirection `json:"direction"`
	Fees          FeeBreakdown        `json:"fees"`
	NetAmount     decimal.Decimal     `json:"netAmount"`
	RateSource    RateSource          `json:"rateSource"`
	ConvertedAt   time.Time           `json:"convertedAt"`
	ValidUntil    time.Time           `json:"validUntil"`
}
