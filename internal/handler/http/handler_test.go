// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pagelift/algolia-sync/internal/config"
	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/mock"
	"github.com/pagelift/algolia-sync/internal/store"
	"github.com/pagelift/algolia-sync/internal/utils"
)

const (
	testHookTokenKey = "test-hook-key"
	testHookIssuer   = "test-cms"
)

func newTestHandler(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*chi.Mux,
	*mock.MockSyncEngine,
	*mock.MockSyncLedger,
	*mock.MockSyncHistory,
) {
	t.Helper()

	engine := mock.NewMockSyncEngine(ctrl)
	ledger := mock.NewMockSyncLedger(ctrl)
	history := mock.NewMockSyncHistory(ctrl)

	storages := &store.Storages{
		Ledger:  ledger,
		History: history,
	}

	app := config.App{
		HookTokenKey:    testHookTokenKey,
		HookTokenIssuer: testHookIssuer,
		Version:         "1.2.3",
	}

	h := NewHandler(engine, storages, app, logger.Nop())
	return h.Init(), engine, ledger, history
}

// authorize attaches a freshly signed hook token to the request.
func authorize(t *testing.T, r *http.Request) {
	t.Helper()
	token, err := utils.GenerateHookToken(testHookIssuer, time.Minute, testHookTokenKey)
	require.NoError(t, err)
	r.Header.Set("Authorization", "Bearer "+token)
}
