// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pagelift/algolia-sync/internal/service"
	"github.com/pagelift/algolia-sync/internal/store"
	"github.com/pagelift/algolia-sync/models"
)

func TestHandler_TriggerSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, engine, _, _ := newTestHandler(t, ctrl)

	engine.EXPECT().Run(gomock.Any(), false).
		Return(models.RunReport{Mode: models.ModeIncremental, Added: 2, Deleted: 1}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var report models.RunReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, models.ModeIncremental, report.Mode)
	assert.Equal(t, 2, report.Added)
	assert.Equal(t, 1, report.Deleted)
}

func TestHandler_TriggerSync_Full(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, engine, _, _ := newTestHandler(t, ctrl)

	engine.EXPECT().Run(gomock.Any(), true).
		Return(models.RunReport{Mode: models.ModeFull, Added: 40}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/sync?full=true", nil)
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TriggerSync_Busy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, engine, _, _ := newTestHandler(t, ctrl)

	engine.EXPECT().Run(gomock.Any(), false).
		Return(models.RunReport{}, store.ErrSyncAlreadyRunning)

	r := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_TriggerSync_RemoteIndexDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, engine, _, _ := newTestHandler(t, ctrl)

	engine.EXPECT().Run(gomock.Any(), false).
		Return(models.RunReport{Mode: models.ModeIncremental},
			fmt.Errorf("%w: clear index: 503", service.ErrRemoteIndex))

	r := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
