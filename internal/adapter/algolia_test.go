// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/algolia-sync/models"
)

type capturedRequest struct {
	method string
	path   string
	appID  string
	apiKey string
	body   []byte
}

func newTestClient(t *testing.T, status int, respBody string) (IndexClient, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.appID = r.Header.Get("X-Algolia-Application-Id")
		captured.apiKey = r.Header.Get("X-Algolia-API-Key")
		captured.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)

	client := NewAlgoliaIndexClient(AlgoliaConfig{
		ApplicationID: "APP123",
		AdminAPIKey:   "admin-key",
		IndexName:     "pages",
		BaseURL:       srv.URL,
		Timeout:       5 * time.Second,
	})
	return client, captured
}

func TestClearAll_PathAndHeaders(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"taskID":1}`)

	require.NoError(t, client.ClearAll(context.Background()))
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/1/indexes/pages/clear", captured.path)
	assert.Equal(t, "APP123", captured.appID)
	assert.Equal(t, "admin-key", captured.apiKey)
}

func TestUpsertBatch_UpdateAction(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"taskID":2}`)

	records := []models.IndexRecord{
		{ObjectID: "7", Fields: map[string]any{"ClassName": "Page", "Title": "Home"}},
	}
	require.NoError(t, client.UpsertBatch(context.Background(), records, false))
	assert.Equal(t, "/1/indexes/pages/batch", captured.path)

	var payload struct {
		Requests []struct {
			Action string         `json:"action"`
			Body   map[string]any `json:"body"`
		} `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(captured.body, &payload))
	require.Len(t, payload.Requests, 1)
	assert.Equal(t, "updateObject", payload.Requests[0].Action)
	assert.Equal(t, "7", payload.Requests[0].Body["objectID"])
	assert.Equal(t, "Home", payload.Requests[0].Body["Title"])
}

func TestUpsertBatch_AutoGenerateUsesAddAction(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"taskID":3}`)

	records := []models.IndexRecord{{Fields: map[string]any{"Title": "Orphan"}}}
	require.NoError(t, client.UpsertBatch(context.Background(), records, true))

	var payload struct {
		Requests []struct {
			Action string `json:"action"`
		} `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(captured.body, &payload))
	require.Len(t, payload.Requests, 1)
	assert.Equal(t, "addObject", payload.Requests[0].Action)
}

func TestUpsertBatch_EmptySkipsRequest(t *testing.T) {
	client, captured := newTestClient(t, http.StatusInternalServerError, "boom")

	require.NoError(t, client.UpsertBatch(context.Background(), nil, false))
	assert.Empty(t, captured.path, "no request should be sent for an empty batch")
}

func TestDeleteBatch_Body(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"taskID":4}`)

	require.NoError(t, client.DeleteBatch(context.Background(), []int64{3, 11}))

	var payload struct {
		Requests []struct {
			Action string `json:"action"`
			Body   struct {
				ObjectID string `json:"objectID"`
			} `json:"body"`
		} `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(captured.body, &payload))
	require.Len(t, payload.Requests, 2)
	assert.Equal(t, "deleteObject", payload.Requests[0].Action)
	assert.Equal(t, "3", payload.Requests[0].Body.ObjectID)
	assert.Equal(t, "11", payload.Requests[1].Body.ObjectID)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrIndexNotFound},
		{http.StatusTooManyRequests, ErrQuotaExceeded},
		{http.StatusBadGateway, ErrIndexUnavailable},
		{http.StatusInternalServerError, ErrIndexUnavailable},
	}

	for _, tt := range tests {
		client, _ := newTestClient(t, tt.status, "nope")
		err := client.ClearAll(context.Background())
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
	}
}
