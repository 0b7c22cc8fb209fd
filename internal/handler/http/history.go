package http

import (
	"net/http"
	"strconv"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/utils"
	"github.com/pagelift/algolia-sync/models"
)

type historyResponse struct {
	Entries []models.SyncHistoryEntry `json:"entries"`
	Length  int                       `json:"length"`
}

// latestHistory answers with the most recent sync log entry, whose SyncDate
// is the watermark the next incremental run will use. 404 means no run has
// ever completed.
func (h *Handler) latestHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	latest, err := h.history.Latest(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.latestHistory").Msg("error reading latest sync log entry")
		http.Error(w, "error reading latest sync log entry", statusFromError(err))
		return
	}
	if latest == nil {
		http.Error(w, "no sync has completed yet", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, latest, http.StatusOK)
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.Error().Str("func", "*Handler.listHistory").Str("limit", raw).Msg("invalid limit was given")
			http.Error(w, "invalid limit was given", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.history.List(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listHistory").Msg("error listing sync log entries")
		http.Error(w, "error listing sync log entries", statusFromError(err))
		return
	}

	utils.WriteJSON(w, historyResponse{Entries: entries, Length: len(entries)}, http.StatusOK)
}
