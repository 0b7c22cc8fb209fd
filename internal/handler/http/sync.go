package http

import (
	"errors"
	"net/http"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/store"
	"github.com/pagelift/algolia-sync/internal/utils"
)

// triggerSync runs a sync inline and answers with the run report. A
// "full=true" query parameter requests a destructive rebuild; anything else
// runs the incremental delta.
//
// The run shares the engine's lease with the interval worker, so an
// overlapping trigger answers 409 instead of starting a second run.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fullSync := r.URL.Query().Get("full") == "true"

	report, err := h.engine.Run(ctx, fullSync)
	if err != nil {
		if errors.Is(err, store.ErrSyncAlreadyRunning) {
			log.Info().Msg("sync trigger rejected, another run is in progress")
			http.Error(w, store.ErrSyncAlreadyRunning.Error(), http.StatusConflict)
			return
		}
		log.Err(err).Str("func", "*Handler.triggerSync").Bool("full_sync", fullSync).Msg("sync run failed")
		http.Error(w, "sync run failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
