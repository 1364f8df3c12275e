package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PositionType is the instrument kind of a hedging position.
type PositionType string

const (
	PositionForward PositionType = "forward"
	PositionOption  PositionType = "option"
	PositionSpot    PositionType = "spot"
)

// PositionDirection is the side taken on the pair.
type PositionDirection string

const (
	PositionBuy  PositionDirection = "buy"
	PositionSell PositionDirection = "sell"
)

// PositionStatus is the lifecycle state of a position.
type PositionStatus string

const (
	PositionActive    PositionStatus = "active"
	PositionExercised PositionStatus = "exercised"
	PositionExpired   PositionStatus = "expired"
	PositionCancelled PositionStatus = "cancelled"
)

// HedgingPosition records currency exposure hedged at a strike rate. PnL is
// derived from CurrentRate and never drifts independently of it: a buy
// position profits when the rate rises, a sell position when it falls.
type HedgingPosition struct {
	PositionID     string            `json:"positionID"` // Primary Key (UUID)
	TenantID       string            `json:"tenantID"`
	BaseCurrency   string            `json:"baseCurrency"`
	TargetCurrency string            `json:"targetCurrency"`
	Amount         decimal.Decimal   `json:"amount"`
	StrikeRate     decimal.Decimal   `json:"strikeRate"`
	CurrentRate    decimal.Decimal   `json:"currentRate"`
	Type           PositionType      `json:"type"`
	Direction      PositionDirection `json:"direction"`
	ExpiresAt      time.Time         `json:"expiresAt"`
	Status         PositionStatus    `json:"status"`
	PnL            decimal.Decimal   `json:"pnl"`
	AuditFields
}
