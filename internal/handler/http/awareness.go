package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/service"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/models"
)

// analyticsDateLayout is the accepted format of the admin analytics
// "date" query parameter.
const analyticsDateLayout = "2006-01-02"

// awarenessBySlug serves one published article to the public reader.
func (h *Handler) awarenessBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	content, err := h.services.Awareness.PublishedContent(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			h.writeError(w, errKindNotFound, "Content not found")
			return
		}
		log.Err(err).Str("slug", slug).Msg("unexpected error occurred during content lookup")
		h.writeError(w, errKindInternal, "Internal server error")
		return
	}

	h.writeSuccess(w, models.Envelope{Content: &content})
}

func (h *Handler) createAwareness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var content models.AwarenessContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, errKindValidation, "Invalid request body")
		return
	}

	created, err := h.services.Awareness.CreateContent(ctx, content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCategory):
			h.writeError(w, errKindValidation, "Invalid content category")
			return
		case errors.Is(err, store.ErrSlugAlreadyExists):
			h.writeError(w, errKindConflict, "Content with this slug already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during content creation")
			h.writeError(w, errKindInternal, "Internal server error")
			return
		}
	}

	h.writeSuccess(w, models.Envelope{
		Message: "Content created successfully",
		Content: &created,
	})
}

// listAwareness returns articles matching the optional "category" and
// "published" query parameters, newest first.
func (h *Handler) listAwareness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var filter store.AwarenessFilter
	filter.Category = r.URL.Query().Get("category")
	if publishedParam := r.URL.Query().Get("published"); publishedParam != "" {
		published, err := strconv.ParseBool(publishedParam)
		if err != nil {
			h.writeError(w, errKindValidation, "Invalid published filter")
			return
		}
		filter.Published = &published
	}

	contents, err := h.services.Awareness.ListContent(ctx, filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			h.writeError(w, errKindValidation, "Invalid content category")
			return
		}
		log.Err(err).Msg("unexpected error occurred during content listing")
		h.writeError(w, errKindInternal, "Internal server error")
		return
	}

	h.writeSuccess(w, models.Envelope{Contents: contents})
}

func (h *Handler) publishAwareness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	content, err := h.services.Awareness.PublishContent(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrContentNotFound) {
			h.writeError(w, errKindNotFound, "Content not found")
			return
		}
		log.Err(err).Str("slug", slug).Msg("unexpected error occurred during content publication")
		h.writeError(w, errKindInternal, "Internal server error")
		return
	}

	h.writeSuccess(w, models.Envelope{
		Message: "Content published successfully",
		Content: &content,
	})
}

// analyticsByDate returns the rolled-up metrics for the requested day.
// Without a "date" parameter the current UTC day is used.
func (h *Handler) analyticsByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	day := time.Now().UTC()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse(analyticsDateLayout, dateParam)
		if err != nil {
			h.writeError(w, errKindValidation, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	entry, err := h.services.Analytics.MetricsFor(ctx, day)
	if err != nil {
		if errors.Is(err, store.ErrNoAnalyticsForDate) {
			h.writeError(w, errKindNotFound, "No analytics for this date")
			return
		}
		log.Err(err).Msg("unexpected error occurred during analytics lookup")
		h.writeError(w, errKindInternal, "Internal server error")
		return
	}

	h.writeSuccess(w, models.Envelope{Analytics: &entry})
}
