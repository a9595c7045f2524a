package service

import (
	"context"
	"io"
	"time"

	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/models"
)

// AuthService handles user registration, credential verification, account
// linking and the session token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, phoneNo, password string) (models.User, error)

	// User returns the account by ID with its query list populated.
	User(ctx context.Context, userID int64) (models.User, error)

	// ActivateAccount links bank-account details to the user. All three
	// detail fields must be present; partial linking is rejected.
	ActivateAccount(ctx context.Context, userID int64, accountNo, ifscCode, branch string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// QueryService is the ask-and-answer orchestrator.
type QueryService interface {
	// SaveUpload stores an accepted PDF for the duration of the request.
	SaveUpload(ctx context.Context, originalName, mimeType string, r io.Reader) (models.UploadedFile, error)

	// Answer runs the full orchestration: validate the combined question,
	// apply account context, delegate to the answer service, persist the
	// query and document metadata, and remove the uploaded file in every
	// exit path.
	Answer(ctx context.Context, user models.User, req models.AskRequest) (models.Query, error)
}

// AwarenessService manages editorial awareness content.
type AwarenessService interface {
	CreateContent(ctx context.Context, content models.AwarenessContent) (models.AwarenessContent, error)
	ListContent(ctx context.Context, filter store.AwarenessFilter) ([]models.AwarenessContent, error)

	// PublishedContent returns a published article by slug and counts the
	// view. Unpublished articles are reported as not found.
	PublishedContent(ctx context.Context, slug string) (models.AwarenessContent, error)

	PublishContent(ctx context.Context, slug string) (models.AwarenessContent, error)
}

// AnalyticsService computes and serves daily usage metrics.
type AnalyticsService interface {
	// Rollup recomputes and stores the metrics for day.
	Rollup(ctx context.Context, day time.Time) error

	MetricsFor(ctx context.Context, day time.Time) (models.AnalyticsEntry, error)
}
