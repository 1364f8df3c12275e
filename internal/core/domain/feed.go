package domain

import "github.com/shopspring/decimal"

// FeedQuote is one tuple of the official national-bank feed. Rate divided by
// Multiplier gives units of the anchor currency per one unit of Code.
type FeedQuote struct {
	Code       string          `json:"code"`
	Rate       decimal.Decimal `json:"rate"`
	Multiplier int64           `json:"multiplier"`
}

// FeedPayload is one publication of the official feed.
type FeedPayload struct {
	Table         string      `json:"table"`
	EffectiveDate string      `json:"effectiveDate"` // YYYY-MM-DD
	Rates         []FeedQuote `json:"rates"`
}

// FeedIngestStats summarizes one ingestion run.
type FeedIngestStats struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}
