// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/service"
	"github.com/pagelift/algolia-sync/internal/store"
)

// syncJob runs an incremental sync on a fixed interval in serve mode. It
// shares the engine's run lease with the manual trigger endpoint, so an
// overlapping tick is skipped rather than queued.
type syncJob struct {
	engine   service.SyncEngine
	interval time.Duration
	logger   *logger.Logger
}

// NewSyncJob returns a [Worker] that fires an incremental sync every
// interval. Returns nil when interval is zero or negative, which disables
// the job.
func NewSyncJob(engine service.SyncEngine, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		log.Info().Msg("scheduled sync disabled, no interval configured")
		return nil
	}
	return &syncJob{
		engine:   engine,
		interval: interval,
		logger:   log,
	}
}

func (j *syncJob) Run() {
	j.logger.Info().Dur("interval", j.interval).Msg("scheduled sync started")

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for range ticker.C {
			j.tick()
		}
	}()
}

func (j *syncJob) tick() {
	_, err := j.engine.Run(context.Background(), false)
	switch {
	case err == nil:
		// the engine logs the run report itself
	case errors.Is(err, store.ErrSyncAlreadyRunning):
		j.logger.Info().Msg("scheduled sync skipped, another run is in progress")
	default:
		j.logger.Err(err).Msg("scheduled sync failed")
	}
}
