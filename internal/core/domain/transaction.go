package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger row.
type TransactionType string

const (
	TxnDeposit    TransactionType = "deposit"
	TxnWithdrawal TransactionType = "withdrawal"
	TxnConversion TransactionType = "conversion"
	TxnTransfer   TransactionType = "transfer"
	TxnFee        TransactionType = "fee"
	TxnRefund     TransactionType = "refund"
)

// CurrencyTransaction is an append-only ledger row. The invariant
// BalanceAfter = BalanceBefore + Amount holds exactly for every row, and the
// rows of one account in creation order form a gapless running balance.
type CurrencyTransaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	TenantID      string            `json:"tenantID"`
	AccountID     string            `json:"accountID"`
	Type          TransactionType   `json:"type"`
	CurrencyCode  string            `json:"currencyCode"`
	Amount        decimal.Decimal   `json:"amount"` // signed: credits positive, debits negative
	BalanceBefore decimal.Decimal   `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal   `json:"balanceAfter"`
	Reference     string            `json:"reference"`
	ConversionID  string            `json:"conversionID,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}
