package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/models"
)

// awarenessRepository is the PostgreSQL-backed implementation of
// [AwarenessRepository]. Tags and translations are stored as jsonb.
type awarenessRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAwarenessRepository constructs an [AwarenessRepository] backed by the
// provided database connection and logger.
func NewAwarenessRepository(db *DB, logger *logger.Logger) AwarenessRepository {
	logger.Debug().Msg("creating awareness repository")
	return &awarenessRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContent persists a new article. New articles are unpublished until an
// explicit [AwarenessRepository.PublishContent].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on slug → [ErrSlugAlreadyExists].
func (r *awarenessRepository) CreateContent(ctx context.Context, content models.AwarenessContent) (models.AwarenessContent, error) {
	log := logger.FromContext(ctx)

	tagsJSON, translationsJSON, err := marshalAwarenessJSON(content)
	if err != nil {
		return models.AwarenessContent{}, err
	}

	row := r.db.QueryRowContext(ctx, createAwarenessContent,
		content.Title, content.Content, content.Category, content.Slug, tagsJSON, translationsJSON)

	saved, err := scanAwarenessContent(row)
	if err != nil {
		log.Err(err).Str("func", "*awarenessRepository.CreateContent").Msg("error creating content")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.AwarenessContent{}, ErrSlugAlreadyExists
		default:
			return models.AwarenessContent{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// ListContent returns articles matching the filter, newest first.
func (r *awarenessRepository) ListContent(ctx context.Context, filter AwarenessFilter) ([]models.AwarenessContent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAwarenessQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*awarenessRepository.ListContent").Msg("error listing content")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var contents []models.AwarenessContent
	for rows.Next() {
		content, err := scanAwarenessContent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contents = append(contents, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contents, nil
}

// FindContentBySlug retrieves one article by its unique slug.
// Returns [ErrContentNotFound] when no article matches.
func (r *awarenessRepository) FindContentBySlug(ctx context.Context, slug string) (models.AwarenessContent, error) {
	row := r.db.QueryRowContext(ctx, findAwarenessContentBySlug, slug)

	content, err := scanAwarenessContent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AwarenessContent{}, ErrContentNotFound
		}
		return models.AwarenessContent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return content, nil
}

// PublishContent marks the article as published and returns the updated row.
// Returns [ErrContentNotFound] when no article matches the slug.
func (r *awarenessRepository) PublishContent(ctx context.Context, slug string) (models.AwarenessContent, error) {
	row := r.db.QueryRowContext(ctx, publishAwarenessContent, slug)

	content, err := scanAwarenessContent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AwarenessContent{}, ErrContentNotFound
		}
		return models.AwarenessContent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return content, nil
}

// IncrementViews bumps the view counter and returns the new value.
func (r *awarenessRepository) IncrementViews(ctx context.Context, slug string) (int64, error) {
	var views int64
	err := r.db.QueryRowContext(ctx, incrementAwarenessViews, slug).Scan(&views)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrContentNotFound
		}
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return views, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAwarenessContent scans one awareness_content row in column order of
// [awarenessColumns], unmarshalling the jsonb tags and translations.
func scanAwarenessContent(row rowScanner) (models.AwarenessContent, error) {
	var content models.AwarenessContent
	var tagsJSON, translationsJSON []byte

	err := row.Scan(
		&content.ContentID,
		&content.Title,
		&content.Content,
		&content.Category,
		&content.Slug,
		&tagsJSON,
		&translationsJSON,
		&content.IsPublished,
		&content.Views,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		return models.AwarenessContent{}, err
	}

	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &content.Tags); err != nil {
			return models.AwarenessContent{}, fmt.Errorf("%w: tags: %w", ErrScanningRow, err)
		}
	}
	if len(translationsJSON) > 0 {
		if err := json.Unmarshal(translationsJSON, &content.Translations); err != nil {
			return models.AwarenessContent{}, fmt.Errorf("%w: translations: %w", ErrScanningRow, err)
		}
	}

	return content, nil
}

func marshalAwarenessJSON(content models.AwarenessContent) (tags []byte, translations []byte, err error) {
	if content.Tags == nil {
		content.Tags = []string{}
	}
	if content.Translations == nil {
		content.Translations = []models.Translation{}
	}

	tags, err = json.Marshal(content.Tags)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: tags: %w", ErrBuildingSQLQuery, err)
	}
	translations, err = json.Marshal(content.Translations)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: translations: %w", ErrBuildingSQLQuery, err)
	}

	return tags, translations, nil
}
