package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/models"
)

// awarenessService serves the financial-awareness content library. Published
// reads go through a small expiring cache keyed by slug; writes and publish
// transitions invalidate the affected entry so readers never see a stale
// publication state for longer than the TTL.
type awarenessService struct {
	awarenessRepository store.AwarenessRepository
	cache               *expirable.LRU[string, models.AwarenessContent]

	logger *logger.Logger
}

// NewAwarenessService constructs an AwarenessService backed by the awareness
// repository and a per-slug read cache.
func NewAwarenessService(awarenessRepository store.AwarenessRepository, cacheSize int, cacheTTL time.Duration, logger *logger.Logger) AwarenessService {
	return &awarenessService{
		awarenessRepository: awarenessRepository,
		cache:               expirable.NewLRU[string, models.AwarenessContent](cacheSize, nil, cacheTTL),
		logger:              logger,
	}
}

func (a *awarenessService) CreateContent(ctx context.Context, content models.AwarenessContent) (models.AwarenessContent, error) {
	if !models.IsAwarenessCategory(content.Category) {
		return models.AwarenessContent{}, fmt.Errorf("category %q: %w", content.Category, ErrInvalidCategory)
	}

	created, err := a.awarenessRepository.CreateContent(ctx, content)
	if err != nil {
		return models.AwarenessContent{}, fmt.Errorf("awareness content creation failed: %w", err)
	}

	return created, nil
}

func (a *awarenessService) ListContent(ctx context.Context, filter store.AwarenessFilter) ([]models.AwarenessContent, error) {
	if filter.Category != "" && !models.IsAwarenessCategory(filter.Category) {
		return nil, fmt.Errorf("category %q: %w", filter.Category, ErrInvalidCategory)
	}

	contents, err := a.awarenessRepository.ListContent(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("awareness content listing failed: %w", err)
	}

	return contents, nil
}

// PublishedContent returns one published piece of content by slug, serving
// from cache when possible, and bumps its view counter. Unpublished content
// is indistinguishable from absent content for the public reader.
func (a *awarenessService) PublishedContent(ctx context.Context, slug string) (models.AwarenessContent, error) {
	log := logger.FromContext(ctx)

	content, ok := a.cache.Get(slug)
	if !ok {
		var err error
		content, err = a.awarenessRepository.FindContentBySlug(ctx, slug)
		if err != nil {
			return models.AwarenessContent{}, fmt.Errorf("awareness content lookup failed: %w", err)
		}
		if !content.IsPublished {
			return models.AwarenessContent{}, store.ErrContentNotFound
		}
		a.cache.Add(slug, content)
	}

	views, err := a.awarenessRepository.IncrementViews(ctx, slug)
	if err != nil {
		// the article was already served; a lost view count is not worth
		// failing the read over
		log.Err(err).Str("slug", slug).Msg("view counter increment failed")
	} else {
		content.Views = views
	}

	return content, nil
}

func (a *awarenessService) PublishContent(ctx context.Context, slug string) (models.AwarenessContent, error) {
	content, err := a.awarenessRepository.PublishContent(ctx, slug)
	if err != nil {
		return models.AwarenessContent{}, fmt.Errorf("awareness content publication failed: %w", err)
	}

	a.cache.Remove(slug)

	return content, nil
}
