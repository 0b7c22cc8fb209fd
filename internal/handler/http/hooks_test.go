// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pagelift/algolia-sync/internal/store"
)

func TestHandler_PagesDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, ledger, _ := newTestHandler(t, ctrl)

	ledger.EXPECT().MarkPendingDeletion(gomock.Any(), int64(4)).Return(nil)
	ledger.EXPECT().MarkPendingDeletion(gomock.Any(), int64(9)).Return(nil)

	r := httptest.NewRequest(http.MethodPost, "/api/hooks/deleted", strings.NewReader(`{"ids":[4,9]}`))
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusAccepted, w.Code)

	var response deletedHookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Queued)
}

func TestHandler_PagesDeleted_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestHandler(t, ctrl)

	r := httptest.NewRequest(http.MethodPost, "/api/hooks/deleted", strings.NewReader(`{ids:`))
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PagesDeleted_NoIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestHandler(t, ctrl)

	r := httptest.NewRequest(http.MethodPost, "/api/hooks/deleted", strings.NewReader(`{"ids":[]}`))
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PagesDeleted_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, ledger, _ := newTestHandler(t, ctrl)

	ledger.EXPECT().MarkPendingDeletion(gomock.Any(), int64(4)).
		Return(errors.Join(store.ErrExecutingQuery, errors.New("connection reset")))

	r := httptest.NewRequest(http.MethodPost, "/api/hooks/deleted", strings.NewReader(`{"ids":[4]}`))
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
