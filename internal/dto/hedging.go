package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePositionRequest opens a hedging position.
type CreatePositionRequest struct {
	TenantID       string          `json:"tenantID" validate:"required,max=64"`
	BaseCurrency   string          `json:"baseCurrency" validate:"required,len=3,uppercase"`
	TargetCurrency string          `json:"targetCurrency" validate:"required,len=3,uppercase,nefield=BaseCurrency"`
	Amount         decimal.Decimal `json:"amount"`
	StrikeRate     decimal.Decimal `json:"strikeRate"`
	Type           string          `json:"type" validate:"required,oneof=forward option spot"`
	Direction      string          `json:"direction" validate:"required,oneof=buy sell"`
	ExpiresAt      time.Time       `json:"expiresAt"`
}
