package service

import (
	"time"

	"github.com/vaantra/vaantra-server/internal/adapter"
	"github.com/vaantra/vaantra-server/internal/config"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/store"
)

const (
	awarenessCacheSize = 128
	awarenessCacheTTL  = 5 * time.Minute
)

// Services bundles every business-logic service of the application.
type Services struct {
	Auth      AuthService
	Query     QueryService
	Awareness AwarenessService
	Analytics AnalyticsService
}

// NewServices wires all services to their repositories and the answer-service
// client.
func NewServices(repos *store.Repositories, answers adapter.AnswerProvider, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Debug().Msg("creating services")

	return &Services{
		Auth:      NewAuthService(repos.UserRepository, cfg.App, logger),
		Query:     NewQueryService(repos.QueryRepository, repos.UploadFileStorage, answers, logger),
		Awareness: NewAwarenessService(repos.AwarenessRepository, awarenessCacheSize, awarenessCacheTTL, logger),
		Analytics: NewAnalyticsService(repos.AnalyticsRepository, logger),
	}
}
