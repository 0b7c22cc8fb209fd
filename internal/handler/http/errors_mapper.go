package http

import (
	"errors"
	"net/http"

	"github.com/pagelift/algolia-sync/internal/adapter"
	"github.com/pagelift/algolia-sync/internal/service"
	"github.com/pagelift/algolia-sync/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrSyncAlreadyRunning: http.StatusConflict,

	service.ErrRemoteIndex:      http.StatusBadGateway,
	adapter.ErrUnauthorized:     http.StatusBadGateway,
	adapter.ErrQuotaExceeded:    http.StatusBadGateway,
	adapter.ErrIndexUnavailable: http.StatusBadGateway,

	service.ErrContentSource: http.StatusInternalServerError,
	service.ErrLedger:        http.StatusInternalServerError,
	service.ErrHistory:       http.StatusInternalServerError,

	store.ErrBuildingQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrScanningRow:    http.StatusInternalServerError,
	store.ErrScanningRows:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
