// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/service"
)

type analyticsRollupJob struct {
	analytics service.AnalyticsService
	interval  time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAnalyticsRollupJob creates a worker that recomputes the current day's
// metrics on a ticker. If interval is zero or negative it defaults to one
// hour. The job is idle until Run is called.
func NewAnalyticsRollupJob(analytics service.AnalyticsService, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = time.Hour
	}

	return &analyticsRollupJob{
		analytics: analytics,
		interval:  interval,
		logger:    logger,
	}
}

// Run launches the background rollup goroutine. A rollup is performed
// immediately on start so a freshly booted server has metrics for the
// current day, then repeated every interval. Calling Run again restarts
// the job.
func (j *analyticsRollupJob) Run() {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.rollup(jobCtx)

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.rollup(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *analyticsRollupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *analyticsRollupJob) rollup(ctx context.Context) {
	ctx = j.logger.WithContext(ctx)

	if err := j.analytics.Rollup(ctx, time.Now().UTC()); err != nil {
		j.logger.Err(err).Msg("analytics rollup failed")
	}
}
