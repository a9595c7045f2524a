package main

import (
	"context"
	"fmt"

	"github.com/vaantra/vaantra-server/internal/adapter"
	"github.com/vaantra/vaantra-server/internal/config"
	handlerhttp "github.com/vaantra/vaantra-server/internal/handler/http"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/server"
	"github.com/vaantra/vaantra-server/internal/service"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/internal/workers"
	"github.com/vaantra/vaantra-server/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vaantra-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, cfg.Storage, log)

	answerClient := adapter.NewAnswerClient(cfg.Adapter, log)

	services := service.NewServices(repositories, answerClient, cfg, log)

	handler := handlerhttp.NewHandler(services, cfg, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(
		workers.NewAnalyticsRollupJob(services.Analytics, cfg.Workers.RollupInterval, log),
	)
	jobs.Run()
	defer jobs.Stop()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
