package http

import (
	"encoding/json"
	"net/http"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/utils"
)

// deletedHookRequest is the payload the CMS posts when pages are hard
// deleted. Hidden pages are not reported here; the engine discovers those
// itself on the next run.
type deletedHookRequest struct {
	IDs []int64 `json:"ids"`
}

type deletedHookResponse struct {
	Queued int `json:"queued"`
}

// pagesDeleted queues page ids for retraction on the next sync run. The
// queue is a set, so replayed webhooks are harmless.
func (h *Handler) pagesDeleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var hookRequest deletedHookRequest
	if err := json.NewDecoder(r.Body).Decode(&hookRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pagesDeleted").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if len(hookRequest.IDs) == 0 {
		log.Error().Str("func", "*Handler.pagesDeleted").Msg("no page ids were given")
		http.Error(w, "no page ids were given", http.StatusBadRequest)
		return
	}

	for _, id := range hookRequest.IDs {
		if err := h.ledger.MarkPendingDeletion(ctx, id); err != nil {
			log.Err(err).Str("func", "*Handler.pagesDeleted").Int64("page_id", id).Msg("error queueing pending deletion")
			http.Error(w, "error queueing pending deletion", statusFromError(err))
			return
		}
	}

	log.Info().Int("count", len(hookRequest.IDs)).Msg("pages queued for deletion")
	utils.WriteJSON(w, deletedHookResponse{Queued: len(hookRequest.IDs)}, http.StatusAccepted)
}
