package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementDirection classifies a rate's 24h movement.
type MovementDirection string

const (
	MovementUp     MovementDirection = "up"
	MovementDown   MovementDirection = "down"
	MovementStable MovementDirection = "stable"
)

// CurrencyVolume is the total transacted volume in one currency over a window.
type CurrencyVolume struct {
	CurrencyCode string          `json:"currencyCode"`
	Volume       decimal.Decimal `json:"volume"` // sum of absolute transaction amounts
	Transactions int             `json:"transactions"`
}

// PairConversionStats aggregates conversions for one directed pair.
type PairConversionStats struct {
	Pair       string          `json:"pair"` // "EUR/USD"
	Count      int             `json:"count"`
	FromVolume decimal.Decimal `json:"fromVolume"`
	TotalFees  decimal.Decimal `json:"totalFees"`
}

// ExposureEntry expresses one currency's held balance in the anchor
// currency, as a share of the tenant's total held value.
type ExposureEntry struct {
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	AnchorValue  decimal.Decimal `json:"anchorValue"`
	Percent      decimal.Decimal `json:"percent"`
}

// RateMovement is one entry of the bounded rate-movement rollup.
type RateMovement struct {
	Pair             string            `json:"pair"`
	Rate             decimal.Decimal   `json:"rate"`
	ChangePercent24h decimal.Decimal   `json:"changePercent24h"`
	Direction        MovementDirection `json:"direction"`
}

// CurrencyAnalytics is the read-only rollup for one tenant and time window.
type CurrencyAnalytics struct {
	TenantID        string                `json:"tenantID"`
	WindowStart     time.Time             `json:"windowStart"`
	WindowEnd       time.Time             `json:"windowEnd"`
	AnchorCurrency  string                `json:"anchorCurrency"`
	VolumeByCcy     []CurrencyVolume      `json:"volumeByCurrency"`
	ConversionCount int                   `json:"conversionCount"`
	TotalFees       decimal.Decimal       `json:"totalFees"` // in source-currency units, summed as quoted
	AverageSpread   decimal.Decimal       `json:"averageSpread"`
	PairStats       []PairConversionStats `json:"pairStats"`
	Exposure        []ExposureEntry       `json:"exposure"`
	RateMovements   []RateMovement        `json:"rateMovements"`
}
