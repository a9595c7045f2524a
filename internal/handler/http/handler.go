package http

import (
	"time"

	"github.com/vaantra/vaantra-server/internal/config"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/service"
)

type Handler struct {
	services *service.Services

	server    config.Server
	cookieTTL time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		server:    cfg.Server,
		cookieTTL: cfg.App.TokenDuration,
		logger:    logger,
	}
}
