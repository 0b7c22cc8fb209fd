package http

import (
	"github.com/pagelift/algolia-sync/internal/config"
	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/service"
	"github.com/pagelift/algolia-sync/internal/store"
)

type Handler struct {
	engine  service.SyncEngine
	ledger  store.SyncLedger
	history store.SyncHistory

	app config.App

	logger *logger.Logger
}

func NewHandler(engine service.SyncEngine, storages *store.Storages, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		engine:  engine,
		ledger:  storages.Ledger,
		history: storages.History,
		app:     app,
		logger:  logger,
	}
}
