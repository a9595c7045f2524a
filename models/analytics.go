package models

import "time"

// LanguageCount is one bucket of the per-language query distribution.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

// DailyMetrics is the aggregate computed by the analytics rollup worker for
// a single calendar day.
type DailyMetrics struct {
	TotalUsers           int64           `json:"totalUsers"`
	NewUsers             int64           `json:"newUsers"`
	TotalQuestions       int64           `json:"totalQuestions"`
	TotalDocuments       int64           `json:"totalDocuments"`
	LanguageDistribution []LanguageCount `json:"languageDistribution,omitempty"`
}

// AnalyticsEntry is one persisted daily metrics row. Date is unique per day;
// repeated rollups for the same day overwrite the metrics.
type AnalyticsEntry struct {
	Date      time.Time    `json:"date"`
	Metrics   DailyMetrics `json:"metrics"`
	CreatedAt time.Time    `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the AnalyticsEntry model.
func (a AnalyticsEntry) TableName() string {
	return "analytics"
}
