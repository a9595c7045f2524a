package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/models"
)

// analyticsService computes and serves daily usage metrics. Rollups are
// idempotent: recomputing a day overwrites the previous entry for that day.
type analyticsService struct {
	analyticsRepository store.AnalyticsRepository

	logger *logger.Logger
}

// NewAnalyticsService constructs an AnalyticsService backed by the analytics
// repository.
func NewAnalyticsService(analyticsRepository store.AnalyticsRepository, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepository: analyticsRepository,
		logger:              logger,
	}
}

func (a *analyticsService) Rollup(ctx context.Context, day time.Time) error {
	log := logger.FromContext(ctx)

	metrics, err := a.analyticsRepository.CollectDailyMetrics(ctx, day)
	if err != nil {
		return fmt.Errorf("metrics collection failed: %w", err)
	}

	if err := a.analyticsRepository.UpsertDailyMetrics(ctx, day, metrics); err != nil {
		return fmt.Errorf("metrics upsert failed: %w", err)
	}

	log.Info().Time("day", day).Int64("totalQuestions", metrics.TotalQuestions).Msg("daily metrics rolled up")

	return nil
}

func (a *analyticsService) MetricsFor(ctx context.Context, day time.Time) (models.AnalyticsEntry, error) {
	entry, err := a.analyticsRepository.GetByDate(ctx, day)
	if err != nil {
		return models.AnalyticsEntry{}, fmt.Errorf("metrics lookup failed: %w", err)
	}

	return entry, nil
}
