package store

import (
	"context"
	"fmt"

	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/models"
)

// queryRepository is the PostgreSQL-backed implementation of [QueryRepository].
type queryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQueryRepository constructs a [QueryRepository] backed by the provided
// database connection and logger.
func NewQueryRepository(db *DB, logger *logger.Logger) QueryRepository {
	logger.Debug().Msg("creating query repository")
	return &queryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuery persists one ask-and-answer interaction. The query row and the
// optional document metadata row are written inside a single transaction, so
// a partially recorded ask cannot be observed. The queries.user_id foreign
// key is the user↔query linkage; no separate list append is needed.
func (r *queryRepository) CreateQuery(ctx context.Context, query models.Query, doc *models.Document) (models.Query, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*queryRepository.CreateQuery").Msg("error beginning transaction")
		return models.Query{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createQuery,
		query.UserID,
		query.VoiceData,
		query.Text,
		query.Language,
		query.ShortAnswer,
		query.LongAnswer,
		query.ProvidedDoc,
	)
	if err := row.Scan(&query.QueryID, &query.CreatedAt); err != nil {
		log.Err(err).Str("func", "*queryRepository.CreateQuery").Msg("error inserting query")
		return models.Query{}, fmt.Errorf("%w: %w", ErrQueryNotSaved, err)
	}

	if doc != nil {
		row := tx.QueryRowContext(ctx, createDocument,
			doc.UserID,
			doc.Filename,
			doc.OriginalName,
			doc.MimeType,
			doc.Size,
			doc.FilePath,
		)
		if err := row.Scan(&doc.DocumentID, &doc.UploadedAt); err != nil {
			log.Err(err).Str("func", "*queryRepository.CreateQuery").Msg("error inserting document")
			return models.Query{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*queryRepository.CreateQuery").Msg("error committing transaction")
		return models.Query{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return query, nil
}
