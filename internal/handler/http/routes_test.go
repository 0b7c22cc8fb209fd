// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pagelift/algolia-sync/internal/utils"
)

func TestRoutes_PublicEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestHandler(t, ctrl)

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("version", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/version", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1.2.3", w.Body.String())
	})
}

func TestRoutes_AuthRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestHandler(t, ctrl)

	tests := []struct {
		name      string
		authorize func(r *http.Request)
	}{
		{
			name:      "missing header",
			authorize: func(r *http.Request) {},
		},
		{
			name: "header without token",
			authorize: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer")
			},
		},
		{
			name: "garbage token",
			authorize: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer not.a.jwt")
			},
		},
		{
			name: "wrong issuer",
			authorize: func(r *http.Request) {
				token, err := utils.GenerateHookToken("someone-else", time.Minute, testHookTokenKey)
				require.NoError(t, err)
				r.Header.Set("Authorization", "Bearer "+token)
			},
		},
		{
			name: "wrong key",
			authorize: func(r *http.Request) {
				token, err := utils.GenerateHookToken(testHookIssuer, time.Minute, "other-key")
				require.NoError(t, err)
				r.Header.Set("Authorization", "Bearer "+token)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/history/latest", nil)
			tt.authorize(r)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRoutes_UnsupportedMethodHidesRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestHandler(t, ctrl)

	r := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
	authorize(t, r)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_TraceIDEchoedBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestHandler(t, ctrl)

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.NotEmpty(t, w.Header().Get(traceIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		r.Header.Set(traceIDHeader, "trace-123")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		assert.Equal(t, "trace-123", w.Header().Get(traceIDHeader))
	})
}
