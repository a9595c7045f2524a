package store

import (
	"github.com/vaantra/vaantra-server/internal/config"
	"github.com/vaantra/vaantra-server/internal/logger"
)

// Repositories aggregates every persistence-layer dependency used by the
// service layer.
type Repositories struct {
	UserRepository      UserRepository
	QueryRepository     QueryRepository
	AwarenessRepository AwarenessRepository
	AnalyticsRepository AnalyticsRepository
	UploadFileStorage   UploadFileStorage
}

// NewRepositories wires all repositories on top of one database connection
// and the configured upload directory.
func NewRepositories(db *DB, cfg config.Storage, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db, logger),
		QueryRepository:     NewQueryRepository(db, logger),
		AwarenessRepository: NewAwarenessRepository(db, logger),
		AnalyticsRepository: NewAnalyticsRepository(db, logger),
		UploadFileStorage:   NewUploadFileStorage(cfg.Files.UploadDir, logger),
	}
}
