package dto

import (
	"github.com/shopspring/decimal"
)

// ConvertRequest prices and settles (or quotes) one conversion. Amount
// positivity is checked by the service so the rejection carries the
// validation-error category rather than a tag name.
type ConvertRequest struct {
	FromCurrency string          `json:"fromCurrency" validate:"required,len=3,uppercase"`
	ToCurrency   string          `json:"toCurrency" validate:"required,len=3,uppercase"`
	Amount       decimal.Decimal `json:"amount"`
	Direction    string          `json:"direction" validate:"omitempty,oneof=mid buy sell"`
	TenantID     string          `json:"tenantID" validate:"omitempty,max=64"`
	Reference    string          `json:"reference" validate:"omitempty,max=255"`
}
