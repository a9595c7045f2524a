package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaantra/vaantra-server/internal/adapter"
	"github.com/vaantra/vaantra-server/internal/service"
	"github.com/vaantra/vaantra-server/models"
)

// askForm builds a multipart ask request body. filename == "" means no PDF
// part is attached.
func askForm(t *testing.T, voiceData, text, language, filename string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	require.NoError(t, mw.WriteField("voiceData", voiceData))
	require.NoError(t, mw.WriteField("text", text))
	require.NoError(t, mw.WriteField("language", language))

	if filename != "" {
		part, err := mw.CreateFormFile(pdfFormField, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 test"))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func newAskRequest(t *testing.T, voiceData, text, language, filename string) *http.Request {
	t.Helper()

	body, contentType := askForm(t, voiceData, text, language, filename)
	req := httptest.NewRequest(http.MethodPost, "/api/query/answer", body)
	req.Header.Set("Content-Type", contentType)
	return withUser(req, models.User{UserID: 7})
}

func TestAnswer_TextOnly(t *testing.T) {
	query := &mockQueryService{
		answerFn: func(_ context.Context, user models.User, req models.AskRequest) (models.Query, error) {
			assert.Equal(t, int64(7), user.UserID)
			assert.Equal(t, "balance kya hai", req.VoiceData)
			assert.Equal(t, "what is my balance", req.Text)
			assert.Equal(t, "hi", req.Language)
			assert.Nil(t, req.File)
			return models.Query{QueryID: 11, ShortAnswer: "short", LongAnswer: "long"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Query: query})

	rec := httptest.NewRecorder()
	h.answer(rec, newAskRequest(t, "balance kya hai", "what is my balance", "hi", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	env := envelope(t, rec)
	assert.True(t, env.Success)
	require.NotNil(t, env.Query)
	assert.Equal(t, int64(11), env.Query.QueryID)
	assert.Equal(t, "short", env.Query.ShortAnswer)
}

func TestAnswer_WithPDF(t *testing.T) {
	uploaded := models.UploadedFile{
		OriginalName: "statement.pdf",
		StorageName:  "abc123-statement.pdf",
		Path:         "/tmp/uploads/abc123-statement.pdf",
	}

	query := &mockQueryService{
		saveUploadFn: func(_ context.Context, originalName, mimeType string, r io.Reader) (models.UploadedFile, error) {
			assert.Equal(t, "statement.pdf", originalName)
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Contains(t, string(data), "%PDF")
			return uploaded, nil
		},
		answerFn: func(_ context.Context, _ models.User, req models.AskRequest) (models.Query, error) {
			require.NotNil(t, req.File)
			assert.Equal(t, uploaded.Path, req.File.Path)
			return models.Query{QueryID: 12, ProvidedDoc: uploaded.Path}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Query: query})

	rec := httptest.NewRecorder()
	h.answer(rec, newAskRequest(t, "", "summarise this", "en", "statement.pdf"))

	env := envelope(t, rec)
	assert.True(t, env.Success)
	require.NotNil(t, env.Query)
	assert.Equal(t, uploaded.Path, env.Query.ProvidedDoc)
}

func TestAnswer_RejectsNonPDF(t *testing.T) {
	saveCalled := false
	query := &mockQueryService{
		saveUploadFn: func(_ context.Context, _, _ string, _ io.Reader) (models.UploadedFile, error) {
			saveCalled = true
			return models.UploadedFile{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Query: query})

	rec := httptest.NewRecorder()
	h.answer(rec, newAskRequest(t, "", "hello", "en", "resume.docx"))

	env := envelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Only pdf files (.pdf) are allowed", env.Message)
	assert.False(t, saveCalled, "non-PDF upload must be rejected before storage")
}

func TestAnswer_UppercaseExtensionAccepted(t *testing.T) {
	query := &mockQueryService{
		saveUploadFn: func(_ context.Context, originalName, _ string, _ io.Reader) (models.UploadedFile, error) {
			return models.UploadedFile{OriginalName: originalName}, nil
		},
		answerFn: func(_ context.Context, _ models.User, _ models.AskRequest) (models.Query, error) {
			return models.Query{QueryID: 13}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Query: query})

	rec := httptest.NewRecorder()
	h.answer(rec, newAskRequest(t, "", "hello", "en", "STATEMENT.PDF"))

	env := envelope(t, rec)
	assert.True(t, env.Success)
}

func TestAnswer_EmptyQuestion(t *testing.T) {
	query := &mockQueryService{
		answerFn: func(_ context.Context, _ models.User, _ models.AskRequest) (models.Query, error) {
			return models.Query{}, service.ErrEmptyQuestion
		},
	}
	h := newTestHandler(t, &service.Services{Query: query})

	rec := httptest.NewRecorder()
	h.answer(rec, newAskRequest(t, "", "", "en", ""))

	env := envelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Question cannot be empty", env.Message)
}

func TestAnswer_UpstreamRejection(t *testing.T) {
	query := &mockQueryService{
		answerFn: func(_ context.Context, _ models.User, _ models.AskRequest) (models.Query, error) {
			return models.Query{}, &adapter.UpstreamError{StatusCode: 422, Detail: "question too long"}
		},
	}
	h := newTestHandler(t, &service.Services{Query: query})

	rec := httptest.NewRecorder()
	h.answer(rec, newAskRequest(t, "", "hello", "en", ""))

	env := envelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "question too long", env.Message)
}

func TestAnswer_UpstreamUnreachable(t *testing.T) {
	query := &mockQueryService{
		answerFn: func(_ context.Context, _ models.User, _ models.AskRequest) (models.Query, error) {
			return models.Query{}, adapter.ErrAnswerServiceUnreachable
		},
	}
	h := newTestHandler(t, &service.Services{Query: query})

	rec := httptest.NewRecorder()
	h.answer(rec, newAskRequest(t, "", "hello", "en", ""))

	env := envelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Answer service is unavailable", env.Message)
}

func TestAnswer_UploadStorageFailure(t *testing.T) {
	query := &mockQueryService{
		saveUploadFn: func(_ context.Context, _, _ string, _ io.Reader) (models.UploadedFile, error) {
			return models.UploadedFile{}, errors.New("disk full")
		},
	}
	h := newTestHandler(t, &service.Services{Query: query})

	rec := httptest.NewRecorder()
	h.answer(rec, newAskRequest(t, "", "hello", "en", "statement.pdf"))

	env := envelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Internal server error", env.Message)
}

func TestAnswer_NotMultipart(t *testing.T) {
	h := newTestHandler(t, &service.Services{Query: &mockQueryService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/query/answer", bytes.NewBufferString(`{"text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req = withUser(req, models.User{UserID: 7})
	rec := httptest.NewRecorder()

	h.answer(rec, req)

	env := envelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid form data", env.Message)
}
