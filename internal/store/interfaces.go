package store

import (
	"context"
	"io"
	"time"

	"github.com/vaantra/vaantra-server/models"
)

// UserRepository provides user account persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByPhone(ctx context.Context, phoneNo string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ActivateAccount(ctx context.Context, userID int64, accountNo, ifscCode, branch string) (models.User, error)
	ListQueryIDs(ctx context.Context, userID int64) ([]int64, error)
}

// QueryRepository persists ask-and-answer interactions.
type QueryRepository interface {
	// CreateQuery inserts the query row and, when doc is non-nil, the
	// accompanying document metadata row inside one transaction. The FK on
	// queries.user_id links the query to its owner atomically with the insert.
	CreateQuery(ctx context.Context, query models.Query, doc *models.Document) (models.Query, error)
}

// AwarenessRepository persists editorial awareness content.
type AwarenessRepository interface {
	CreateContent(ctx context.Context, content models.AwarenessContent) (models.AwarenessContent, error)
	ListContent(ctx context.Context, filter AwarenessFilter) ([]models.AwarenessContent, error)
	FindContentBySlug(ctx context.Context, slug string) (models.AwarenessContent, error)
	PublishContent(ctx context.Context, slug string) (models.AwarenessContent, error)
	IncrementViews(ctx context.Context, slug string) (int64, error)
}

// AwarenessFilter narrows ListContent results. Zero-valued fields are ignored.
type AwarenessFilter struct {
	Category  string
	Published *bool
}

// AnalyticsRepository computes and persists daily metrics.
type AnalyticsRepository interface {
	// CollectDailyMetrics aggregates the day's metrics from the live tables.
	// day is truncated to midnight UTC; NewUsers counts accounts created
	// within [day, day+24h).
	CollectDailyMetrics(ctx context.Context, day time.Time) (models.DailyMetrics, error)

	// UpsertDailyMetrics stores metrics for day, overwriting a previous
	// rollup of the same day.
	UpsertDailyMetrics(ctx context.Context, day time.Time, metrics models.DailyMetrics) error

	GetByDate(ctx context.Context, day time.Time) (models.AnalyticsEntry, error)
}

// UploadFileStorage stores uploaded PDFs on local disk for the duration of a
// request.
type UploadFileStorage interface {
	// Save writes r under the upload directory with a collision-resistant
	// random name, creating the directory lazily.
	Save(ctx context.Context, originalName, mimeType string, r io.Reader) (models.UploadedFile, error)

	// Remove deletes a previously saved file. Removing a file that is
	// already gone is not an error.
	Remove(ctx context.Context, path string) error
}
