package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pagelift/algolia-sync/internal/adapter"
	"github.com/pagelift/algolia-sync/internal/config"
	httphandler "github.com/pagelift/algolia-sync/internal/handler/http"
	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/server"
	"github.com/pagelift/algolia-sync/internal/service"
	"github.com/pagelift/algolia-sync/internal/store"
	"github.com/pagelift/algolia-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("algolia-sync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	lists, err := config.LoadFieldLists(cfg.FieldsFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading field lists")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	index := adapter.NewAlgoliaIndexClient(adapter.AlgoliaConfig{
		ApplicationID: cfg.Algolia.ApplicationID,
		AdminAPIKey:   cfg.Algolia.AdminAPIKey,
		IndexName:     cfg.Algolia.IndexName,
		BaseURL:       cfg.Algolia.BaseURL,
		Timeout:       cfg.Algolia.RequestTimeout,
	})

	mapper := service.NewPageMapper(lists, storages.Content.Localised())
	engine := service.NewSyncEngine(storages, index, mapper, log)

	if cfg.Run.Serve {
		serve(engine, storages, cfg, log)
		return
	}

	runOnce(ctx, engine, cfg.Run.FullSync, log)
}

// serve runs the long-lived mode: the CMS-facing HTTP surface plus the
// scheduled incremental sync.
func serve(engine service.SyncEngine, storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) {
	handler := httphandler.NewHandler(engine, storages, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(
		workers.NewSyncJob(engine, cfg.Workers.SyncInterval, log),
	).Run()

	srv.RunServer()
}

// runOnce executes a single sync and exits non-zero on failure, so cron-like
// schedulers can alert on it.
func runOnce(ctx context.Context, engine service.SyncEngine, fullSync bool, log *logger.Logger) {
	report, err := engine.Run(ctx, fullSync)
	if err != nil {
		if errors.Is(err, store.ErrSyncAlreadyRunning) {
			log.Error().Msg("another sync is already running against this ledger")
		} else {
			log.Err(err).Msg("sync failed")
		}
		os.Exit(1)
	}

	log.Info().
		Str("mode", string(report.Mode)).
		Int("added", report.Added).
		Int("updated", report.Updated).
		Int("deleted", report.Deleted).
		Msg("sync finished")
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
