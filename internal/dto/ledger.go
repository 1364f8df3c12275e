package dto

import (
	"github.com/shopspring/decimal"
)

// DepositRequest credits a tenant's account, creating it on first touch.
type DepositRequest struct {
	TenantID     string          `json:"tenantID" validate:"required,max=64"`
	CurrencyCode string          `json:"currencyCode" validate:"required,len=3,uppercase"`
	Amount       decimal.Decimal `json:"amount"`
	Reference    string          `json:"reference" validate:"omitempty,max=255"`
}

// WithdrawRequest debits a tenant's account up to its available balance.
type WithdrawRequest struct {
	TenantID     string          `json:"tenantID" validate:"required,max=64"`
	CurrencyCode string          `json:"currencyCode" validate:"required,len=3,uppercase"`
	Amount       decimal.Decimal `json:"amount"`
	Reference    string          `json:"reference" validate:"omitempty,max=255"`
}

// TransferRequest moves a same-currency amount between two tenants.
type TransferRequest struct {
	FromTenantID string          `json:"fromTenantID" validate:"required,max=64"`
	ToTenantID   string          `json:"toTenantID" validate:"required,max=64"`
	CurrencyCode string          `json:"currencyCode" validate:"required,len=3,uppercase"`
	Amount       decimal.Decimal `json:"amount"`
	Reference    string          `json:"reference" validate:"omitempty,max=255"`
}
