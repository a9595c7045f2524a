package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/models"
)

// analyticsRepository is the PostgreSQL-backed implementation of
// [AnalyticsRepository]. Metrics are stored as one jsonb blob per day.
type analyticsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAnalyticsRepository constructs an [AnalyticsRepository] backed by the
// provided database connection and logger.
func NewAnalyticsRepository(db *DB, logger *logger.Logger) AnalyticsRepository {
	logger.Debug().Msg("creating analytics repository")
	return &analyticsRepository{
		db:     db,
		logger: logger,
	}
}

// CollectDailyMetrics aggregates the day's metrics from the users, queries
// and documents tables. The counts are totals as of collection time; NewUsers
// is scoped to [day, day+24h).
func (r *analyticsRepository) CollectDailyMetrics(ctx context.Context, day time.Time) (models.DailyMetrics, error) {
	log := logger.FromContext(ctx)

	dayStart := day.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var metrics models.DailyMetrics

	counts := []struct {
		query string
		args  []any
		dest  *int64
	}{
		{countUsers, nil, &metrics.TotalUsers},
		{countUsersBetween, []any{dayStart, dayEnd}, &metrics.NewUsers},
		{countQueries, nil, &metrics.TotalQuestions},
		{countDocuments, nil, &metrics.TotalDocuments},
	}

	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			log.Err(err).Str("func", "*analyticsRepository.CollectDailyMetrics").Msg("error counting")
			return models.DailyMetrics{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	rows, err := r.db.QueryContext(ctx, queryLanguageDistribution)
	if err != nil {
		return models.DailyMetrics{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lc models.LanguageCount
		if err := rows.Scan(&lc.Language, &lc.Count); err != nil {
			return models.DailyMetrics{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		metrics.LanguageDistribution = append(metrics.LanguageDistribution, lc)
	}
	if err := rows.Err(); err != nil {
		return models.DailyMetrics{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return metrics, nil
}

// UpsertDailyMetrics stores metrics for day. A repeated rollup for the same
// day overwrites the previous metrics.
func (r *analyticsRepository) UpsertDailyMetrics(ctx context.Context, day time.Time, metrics models.DailyMetrics) error {
	log := logger.FromContext(ctx)

	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("%w: metrics: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := buildUpsertAnalyticsQuery(day.UTC().Truncate(24*time.Hour), metricsJSON)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.UpsertDailyMetrics").Msg("error upserting metrics")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetByDate retrieves the analytics entry for the given day.
// Returns [ErrNoAnalyticsForDate] when no rollup exists for that day.
func (r *analyticsRepository) GetByDate(ctx context.Context, day time.Time) (models.AnalyticsEntry, error) {
	var entry models.AnalyticsEntry
	var metricsJSON []byte

	row := r.db.QueryRowContext(ctx, getAnalyticsByDate, day.UTC().Truncate(24*time.Hour))
	if err := row.Scan(&entry.Date, &metricsJSON, &entry.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AnalyticsEntry{}, ErrNoAnalyticsForDate
		}
		return models.AnalyticsEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := json.Unmarshal(metricsJSON, &entry.Metrics); err != nil {
		return models.AnalyticsEntry{}, fmt.Errorf("%w: metrics: %w", ErrScanningRow, err)
	}

	return entry, nil
}
