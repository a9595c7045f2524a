// Package adapter implements outbound integrations. Its single concern today
// is the HTTP client for the external adaptive-answer (RAG) service, which is
// treated as an opaque collaborator: one question goes out, two answer
// strings come back.
package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vaantra/vaantra-server/internal/config"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/models"
)

const (
	answerPath        = "/api/adaptive-answer"
	answerWithPDFPath = "/api/adaptive-answer-with-pdf"

	questionField = "question"
	pdfField      = "pdf_file"
)

// answerClient is the resty-backed implementation of [AnswerProvider].
//
// Every call is bounded by the configured timeout and performs at most one
// retry (after a short backoff) on transport errors and 5xx responses.
// 4xx responses are never retried: the service rejected the request and
// retrying the same payload cannot succeed.
type answerClient struct {
	client    *resty.Client
	retryWait time.Duration
	logger    *logger.Logger
}

// NewAnswerClient constructs an [AnswerProvider] for the configured base URL.
func NewAnswerClient(cfg config.Adapter, logger *logger.Logger) AnswerProvider {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &answerClient{
		client:    cli,
		retryWait: cfg.RetryWait,
		logger:    logger,
	}
}

// Answer implements [AnswerProvider]. The retry loop lives here rather than
// in resty's retry hooks because the multipart file reader must be reopened
// for every attempt.
func (c *answerClient) Answer(ctx context.Context, question string, doc *models.UploadedFile) (models.Answer, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			log.Warn().Err(lastErr).Msg("retrying answer service call")
			select {
			case <-ctx.Done():
				return models.Answer{}, ctx.Err()
			case <-time.After(c.retryWait):
			}
		}

		answer, retryable, err := c.attempt(ctx, question, doc)
		if err == nil {
			return answer, nil
		}

		lastErr = err
		if !retryable {
			return models.Answer{}, err
		}
	}

	return models.Answer{}, lastErr
}

// attempt performs one call to the answer service. The returned bool reports
// whether the failure is worth retrying.
func (c *answerClient) attempt(ctx context.Context, question string, doc *models.UploadedFile) (models.Answer, bool, error) {
	req := c.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{questionField: question})

	endpoint := answerPath
	if doc != nil {
		file, err := os.Open(doc.Path)
		if err != nil {
			return models.Answer{}, false, err
		}
		defer file.Close()

		req.SetMultipartField(pdfField, doc.OriginalName, doc.MimeType, file)
		endpoint = answerWithPDFPath
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		return models.Answer{}, true, ErrAnswerServiceUnreachable
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		upstreamErr := &UpstreamError{
			StatusCode: resp.StatusCode(),
			Detail:     upstreamDetail(resp),
		}
		return models.Answer{}, resp.StatusCode() >= http.StatusInternalServerError, upstreamErr
	}

	var answer models.Answer
	if err := json.Unmarshal(resp.Body(), &answer); err != nil {
		return models.Answer{}, false, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Detail:     "malformed answer service response",
		}
	}

	return answer, false, nil
}

// upstreamDetail extracts the remote service's own error message. The answer
// service reports failures as {"detail": "..."}; anything else falls back to
// the raw body or the status text.
func upstreamDetail(resp *resty.Response) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}

	return http.StatusText(resp.StatusCode())
}
