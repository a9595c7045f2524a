package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/models"
)

func newTestAnalyticsRepo(t *testing.T) (*analyticsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &analyticsRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func countRow(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestCollectDailyMetrics(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	day := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	dayStart := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(120))
	mock.ExpectQuery("SELECT COUNT").WithArgs(dayStart, dayEnd).WillReturnRows(countRow(5))
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(340))
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(17))
	mock.ExpectQuery("SELECT language, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"language", "count"}).
			AddRow("en", int64(200)).
			AddRow("hi", int64(140)))

	metrics, err := repo.CollectDailyMetrics(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metrics.TotalUsers != 120 || metrics.NewUsers != 5 {
		t.Errorf("user counts wrong: %+v", metrics)
	}
	if metrics.TotalQuestions != 340 || metrics.TotalDocuments != 17 {
		t.Errorf("question/document counts wrong: %+v", metrics)
	}
	if len(metrics.LanguageDistribution) != 2 || metrics.LanguageDistribution[1].Language != "hi" {
		t.Errorf("language distribution wrong: %+v", metrics.LanguageDistribution)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestCollectDailyMetrics_CountFailure(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection reset"))

	_, err := repo.CollectDailyMetrics(context.Background(), time.Now().UTC())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestUpsertDailyMetrics(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	metrics := models.DailyMetrics{TotalUsers: 120, TotalQuestions: 340}

	mock.ExpectExec("INSERT INTO analytics").
		WithArgs(day, []byte(`{"totalUsers":120,"newUsers":0,"totalQuestions":340,"totalDocuments":0}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertDailyMetrics(context.Background(), day, metrics); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestUpsertDailyMetrics_ExecFailure(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO analytics").
		WillReturnError(errors.New("deadlock detected"))

	err := repo.UpsertDailyMetrics(context.Background(), time.Now().UTC(), models.DailyMetrics{})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetByDate(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	metricsJSON := `{"totalUsers":120,"newUsers":5,"totalQuestions":340,"totalDocuments":17}`

	mock.ExpectQuery("SELECT date, metrics, created_at").
		WithArgs(day).
		WillReturnRows(sqlmock.NewRows([]string{"date", "metrics", "created_at"}).
			AddRow(day, []byte(metricsJSON), time.Now()))

	entry, err := repo.GetByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Metrics.TotalQuestions != 340 {
		t.Errorf("metrics not round-tripped: %+v", entry.Metrics)
	}
}

func TestGetByDate_NotFound(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT date, metrics, created_at").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByDate(context.Background(), time.Now().UTC())
	if err != ErrNoAnalyticsForDate {
		t.Errorf("expected ErrNoAnalyticsForDate, got %v", err)
	}
}
