package services

import (
	"context"
	"time"

	"github.com/centrifx/fxcore/internal/core/domain"
)

// AnalyticsSvcFacade defines the read-only rollup operations.
type AnalyticsSvcFacade interface {
	// GetAnalytics aggregates a tenant's ledger, conversion receipts and
	// the rate store over [start, end]. It never mutates state.
	GetAnalytics(ctx context.Context, tenantID string, start, end time.Time) (*domain.CurrencyAnalytics, error)
}
