package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/mock"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/models"
	"go.uber.org/mock/gomock"
)

func newTestAwarenessSvc(t *testing.T, ctrl *gomock.Controller) (AwarenessService, *mock.MockAwarenessRepository) {
	t.Helper()

	mockRepo := mock.NewMockAwarenessRepository(ctrl)
	svc := NewAwarenessService(mockRepo, 16, time.Minute, logger.Nop())

	return svc, mockRepo
}

func publishedArticle() models.AwarenessContent {
	return models.AwarenessContent{
		ContentID:   1,
		Title:       "How to spot phishing",
		Content:     "Never share your OTP.",
		Category:    "banking",
		Slug:        "spot-phishing",
		IsPublished: true,
		Views:       10,
	}
}

func TestCreateContent_InvalidCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAwarenessSvc(t, ctrl)

	_, err := svc.CreateContent(context.Background(), models.AwarenessContent{Category: "gossip"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateContent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAwarenessSvc(t, ctrl)
	ctx := context.Background()

	content := models.AwarenessContent{Category: "banking", Title: "T", Slug: "t"}
	mockRepo.EXPECT().CreateContent(ctx, content).Return(content, nil)

	_, err := svc.CreateContent(ctx, content)
	require.NoError(t, err)
}

func TestListContent_InvalidCategoryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAwarenessSvc(t, ctrl)

	_, err := svc.ListContent(context.Background(), store.AwarenessFilter{Category: "gossip"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestPublishedContent_CachesSecondRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAwarenessSvc(t, ctrl)
	ctx := context.Background()
	article := publishedArticle()

	// one repository read, two view increments
	mockRepo.EXPECT().FindContentBySlug(ctx, article.Slug).Return(article, nil).Times(1)
	mockRepo.EXPECT().IncrementViews(ctx, article.Slug).Return(int64(11), nil)
	mockRepo.EXPECT().IncrementViews(ctx, article.Slug).Return(int64(12), nil)

	first, err := svc.PublishedContent(ctx, article.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(11), first.Views)

	second, err := svc.PublishedContent(ctx, article.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(12), second.Views)
}

func TestPublishedContent_UnpublishedReportedNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAwarenessSvc(t, ctrl)
	ctx := context.Background()

	draft := publishedArticle()
	draft.IsPublished = false

	mockRepo.EXPECT().FindContentBySlug(ctx, draft.Slug).Return(draft, nil)

	_, err := svc.PublishedContent(ctx, draft.Slug)
	assert.ErrorIs(t, err, store.ErrContentNotFound)
}

func TestPublishedContent_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAwarenessSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindContentBySlug(ctx, "nope").Return(models.AwarenessContent{}, store.ErrContentNotFound)

	_, err := svc.PublishedContent(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrContentNotFound)
}

func TestPublishedContent_ViewCountFailureDoesNotFailRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAwarenessSvc(t, ctrl)
	ctx := context.Background()
	article := publishedArticle()

	mockRepo.EXPECT().FindContentBySlug(ctx, article.Slug).Return(article, nil)
	mockRepo.EXPECT().IncrementViews(ctx, article.Slug).Return(int64(0), store.ErrContentNotFound)

	got, err := svc.PublishedContent(ctx, article.Slug)
	require.NoError(t, err)
	assert.Equal(t, article.Title, got.Title)
}

func TestPublishContent_InvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAwarenessSvc(t, ctrl)
	ctx := context.Background()
	article := publishedArticle()

	gomock.InOrder(
		// read fills the cache
		mockRepo.EXPECT().FindContentBySlug(ctx, article.Slug).Return(article, nil),
		mockRepo.EXPECT().IncrementViews(ctx, article.Slug).Return(int64(11), nil),
		// publish invalidates the entry
		mockRepo.EXPECT().PublishContent(ctx, article.Slug).Return(article, nil),
		// so the next read goes back to the repository
		mockRepo.EXPECT().FindContentBySlug(ctx, article.Slug).Return(article, nil),
		mockRepo.EXPECT().IncrementViews(ctx, article.Slug).Return(int64(12), nil),
	)

	_, err := svc.PublishedContent(ctx, article.Slug)
	require.NoError(t, err)

	_, err = svc.PublishContent(ctx, article.Slug)
	require.NoError(t, err)

	_, err = svc.PublishedContent(ctx, article.Slug)
	require.NoError(t, err)
}
