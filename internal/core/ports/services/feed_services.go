package services

import (
	"context"

	"github.com/centrifx/fxcore/internal/core/domain"
)

// FeedFetcher is the boundary to the official national-bank feed. The
// engine only sees the parsed payload.
type FeedFetcher interface {
	FetchDaily(ctx context.Context) (*domain.FeedPayload, error)
}

// FeedSvcFacade defines the official-feed ingestion operations.
type FeedSvcFacade interface {
	// Ingest normalizes a payload's quotes to per-unit anchor rates and
	// pushes both directions of each pair into the rate store. Malformed
	// or unknown tuples are skipped, never fatal.
	Ingest(ctx context.Context, payload domain.FeedPayload) (*domain.FeedIngestStats, error)

	// RefreshRates fetches the daily payload and ingests it. A fetch
	// failure aborts the cycle and leaves stored rates untouched.
	RefreshRates(ctx context.Context) (*domain.FeedIngestStats, error)
}
