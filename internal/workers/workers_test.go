package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/models"
)

type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run()  { m.runCount++ }
func (m *mockWorker) Stop() { m.stopCount++ }

func TestWorkers_RunAndStopAll(t *testing.T) {
	first := &mockWorker{}
	second := &mockWorker{}

	jobs := NewWorkers(first, second)

	jobs.Run()
	assert.Equal(t, 1, first.runCount)
	assert.Equal(t, 1, second.runCount)

	jobs.Stop()
	assert.Equal(t, 1, first.stopCount)
	assert.Equal(t, 1, second.stopCount)
}

func TestWorkers_Empty(t *testing.T) {
	jobs := NewWorkers()

	assert.NotPanics(t, func() {
		jobs.Run()
		jobs.Stop()
	})
}

// countingAnalytics records Rollup invocations.
type countingAnalytics struct {
	rollups atomic.Int64
}

func (c *countingAnalytics) Rollup(_ context.Context, _ time.Time) error {
	c.rollups.Add(1)
	return nil
}

func (c *countingAnalytics) MetricsFor(_ context.Context, _ time.Time) (models.AnalyticsEntry, error) {
	return models.AnalyticsEntry{}, nil
}

func TestAnalyticsRollupJob_RollsUpImmediately(t *testing.T) {
	analytics := &countingAnalytics{}
	job := NewAnalyticsRollupJob(analytics, time.Hour, logger.Nop())

	job.Run()
	defer job.Stop()

	require.Eventually(t, func() bool {
		return analytics.rollups.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestAnalyticsRollupJob_TicksOnInterval(t *testing.T) {
	analytics := &countingAnalytics{}
	job := NewAnalyticsRollupJob(analytics, 20*time.Millisecond, logger.Nop())

	job.Run()
	defer job.Stop()

	require.Eventually(t, func() bool {
		return analytics.rollups.Load() >= 3
	}, time.Second, 10*time.Millisecond)
}

func TestAnalyticsRollupJob_StopHaltsRollups(t *testing.T) {
	analytics := &countingAnalytics{}
	job := NewAnalyticsRollupJob(analytics, 20*time.Millisecond, logger.Nop())

	job.Run()
	require.Eventually(t, func() bool {
		return analytics.rollups.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	job.Stop()
	stopped := analytics.rollups.Load()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, stopped, analytics.rollups.Load())
}

func TestAnalyticsRollupJob_StopWithoutRun(t *testing.T) {
	job := NewAnalyticsRollupJob(&countingAnalytics{}, time.Hour, logger.Nop())

	assert.NotPanics(t, job.Stop)
}
