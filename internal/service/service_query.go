// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vaantra/vaantra-server/internal/adapter"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/models"
)

// accountContextFormat is the fixed suffix appended to the outgoing question
// for linked accounts. Wording and field order are part of the contract with
// the answer service's prompt handling and must not change.
const accountContextFormat = " My account details are Account No.: %s Ifsc code is: %s branch is: %s"

// queryService is the concrete implementation of QueryService — the
// ask-and-answer orchestrator. One call to Answer walks the full flow:
//
//	validate → contextualize → delegate → persist → clean up
//
// The uploaded file, when present, is removed from disk in every exit path,
// success or failure, so the upload directory never accumulates orphans.
type queryService struct {
	queryRepository store.QueryRepository
	uploads         store.UploadFileStorage
	answers         adapter.AnswerProvider

	logger *logger.Logger
}

// NewQueryService constructs a QueryService wired to the query repository,
// the upload storage and the answer-service client.
func NewQueryService(queryRepository store.QueryRepository, uploads store.UploadFileStorage, answers adapter.AnswerProvider, logger *logger.Logger) QueryService {
	return &queryService{
		queryRepository: queryRepository,
		uploads:         uploads,
		answers:         answers,
		logger:          logger,
	}
}

// SaveUpload stores an accepted PDF under the upload directory. Extension
// screening happens at the transport layer before anything is written.
func (q *queryService) SaveUpload(ctx context.Context, originalName, mimeType string, r io.Reader) (models.UploadedFile, error) {
	return q.uploads.Save(ctx, originalName, mimeType, r)
}

// Answer runs the orchestration flow for one ask.
//
// The question is the concatenation of the voice transcript and the typed
// text; if it is empty after trimming, the flow fails with ErrEmptyQuestion
// before any external call. For linked accounts the outgoing question gains
// the account-detail suffix, but the persisted query keeps the raw inputs.
//
// The query row and the document metadata are written in one transaction.
// The stored file is deleted before returning regardless of outcome, so the
// persisted ProvidedDoc path is a historical reference only.
func (q *queryService) Answer(ctx context.Context, user models.User, req models.AskRequest) (models.Query, error) {
	log := logger.FromContext(ctx)

	if req.File != nil {
		defer func() {
			if err := q.uploads.Remove(ctx, req.File.Path); err != nil {
				log.Err(err).Str("path", req.File.Path).Msg("uploaded file cleanup failed")
			}
		}()
	}

	question := req.VoiceData + req.Text
	if strings.TrimSpace(question) == "" {
		log.Warn().Int64("userId", user.UserID).Msg("empty question rejected")
		return models.Query{}, ErrEmptyQuestion
	}

	question = contextualizeQuestion(question, user)

	answer, err := q.answers.Answer(ctx, question, req.File)
	if err != nil {
		log.Err(err).Int64("userId", user.UserID).Msg("answer delegation failed")
		return models.Query{}, fmt.Errorf("answer delegation failed: %w", err)
	}

	query := models.Query{
		UserID:      user.UserID,
		VoiceData:   req.VoiceData,
		Text:        req.Text,
		Language:    models.NormalizeLanguage(req.Language),
		ShortAnswer: answer.ShortAnswer,
		LongAnswer:  answer.LongAnswer,
	}

	var doc *models.Document
	if req.File != nil {
		query.ProvidedDoc = req.File.Path
		doc = &models.Document{
			UserID:       user.UserID,
			Filename:     req.File.StorageName,
			OriginalName: req.File.OriginalName,
			MimeType:     req.File.MimeType,
			Size:         req.File.Size,
			FilePath:     req.File.Path,
		}
	}

	savedQuery, err := q.queryRepository.CreateQuery(ctx, query, doc)
	if err != nil {
		log.Err(err).Int64("userId", user.UserID).Msg("query persistence failed")
		return models.Query{}, fmt.Errorf("query persistence failed: %w", err)
	}

	return savedQuery, nil
}

// contextualizeQuestion appends the linked-account detail suffix to the
// question. Pure function: unlinked users get the question back unchanged.
func contextualizeQuestion(question string, user models.User) string {
	if !user.IsLinked {
		return question
	}

	return question + fmt.Sprintf(accountContextFormat, user.AccountNo, user.IfscCode, user.Branch)
}
