// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/vaantra/vaantra-server/internal/adapter"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/service"
	"github.com/vaantra/vaantra-server/internal/utils"
	"github.com/vaantra/vaantra-server/models"
)

const (
	// maxUploadMemory caps the in-memory portion of multipart parsing;
	// larger uploads spill to temporary files.
	maxUploadMemory = 32 << 20

	pdfFormField = "pdfUrl"
)

// answer accepts the multipart ask form: voiceData, text, language and an
// optional PDF under "pdfUrl". Non-PDF uploads are rejected before anything
// is written to disk.
func (h *Handler) answer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionUser, ok := utils.UserFromContext(ctx)
	if !ok {
		h.writeError(w, errKindAuth, "User not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		h.writeError(w, errKindValidation, "Invalid form data")
		return
	}

	req := models.AskRequest{
		VoiceData: r.FormValue("voiceData"),
		Text:      r.FormValue("text"),
		Language:  r.FormValue("language"),
	}

	file, header, err := r.FormFile(pdfFormField)
	switch {
	case err == nil:
		defer file.Close()

		if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
			h.writeError(w, errKindValidation, "Only pdf files (.pdf) are allowed")
			return
		}

		uploaded, err := h.services.Query.SaveUpload(ctx, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			log.Err(err).Str("filename", header.Filename).Msg("error storing uploaded file")
			h.writeError(w, errKindInternal, "Internal server error")
			return
		}
		req.File = &uploaded
	case errors.Is(err, http.ErrMissingFile):
		// PDF is optional
	default:
		log.Err(err).Msg("error reading uploaded file")
		h.writeError(w, errKindValidation, "Invalid form data")
		return
	}

	query, err := h.services.Query.Answer(ctx, sessionUser, req)
	if err != nil {
		var upstreamErr *adapter.UpstreamError

		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			h.writeError(w, errKindValidation, "Question cannot be empty")
			return
		case errors.As(err, &upstreamErr):
			log.Err(err).Int("upstreamStatus", upstreamErr.StatusCode).Msg("answer service rejected the question")
			h.writeError(w, errKindUpstream, upstreamErr.Detail)
			return
		case errors.Is(err, adapter.ErrAnswerServiceUnreachable):
			log.Err(err).Msg("answer service unreachable")
			h.writeError(w, errKindUpstream, "Answer service is unavailable")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during query answering")
			h.writeError(w, errKindInternal, "Internal server error")
			return
		}
	}

	h.writeSuccess(w, models.Envelope{Query: &query})
}
