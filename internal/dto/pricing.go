package dto

import (
	"github.com/shopspring/decimal"
)

// CreatePriceRequest derives a multi-currency price list from a base price.
type CreatePriceRequest struct {
	BaseCurrency  string          `json:"baseCurrency" validate:"required,len=3,uppercase"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	Currencies    []string        `json:"currencies" validate:"required,min=1,dive,len=3,uppercase"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	RoundingRule  string          `json:"roundingRule" validate:"omitempty,oneof=none up down nearest psychological"`
	AutoUpdate    bool            `json:"autoUpdate"`
}
