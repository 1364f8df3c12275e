package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyAccount holds one tenant's balance in one currency. The pair
// (TenantID, CurrencyCode) is unique. Balance only changes through a
// CurrencyTransaction.
type CurrencyAccount struct {
	AccountID        string          `json:"accountID"` // Primary Key (UUID)
	TenantID         string          `json:"tenantID"`
	CurrencyCode     string          `json:"currencyCode"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	PendingBalance   decimal.Decimal `json:"pendingBalance"`
	ReservedBalance  decimal.Decimal `json:"reservedBalance"`
	AuditFields
}
