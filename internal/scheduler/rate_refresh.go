package scheduler

import (
	"context"
	"time"

	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
)

// RateRefreshJob pulls the official feed into the rate store. The timeout
// bounds the one external call; a failed cycle leaves stored rates intact.
type RateRefreshJob struct {
	feedSvc portssvc.FeedSvcFacade
	timeout time.Duration
}

// NewRateRefreshJob creates the daily refresh job.
func NewRateRefreshJob(feedSvc portssvc.FeedSvcFacade, timeout time.Duration) *RateRefreshJob {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RateRefreshJob{feedSvc: feedSvc, timeout: timeout}
}

func (j *RateRefreshJob) Name() string { return "official-rate-refresh" }

func (j *RateRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	_, err := j.feedSvc.RefreshRates(ctx)
	return err
}
