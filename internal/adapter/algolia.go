// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pagelift/algolia-sync/models"
)

// AlgoliaConfig carries the connection settings for one target index.
type AlgoliaConfig struct {
	ApplicationID string
	AdminAPIKey   string
	IndexName     string

	// BaseURL overrides the default https://{ApplicationID}.algolia.net
	// endpoint; used by tests and proxies.
	BaseURL string

	Timeout time.Duration
}

// batchRequest is one operation inside an Algolia /batch call.
type batchRequest struct {
	Action string `json:"action"`
	Body   any    `json:"body"`
}

type batchPayload struct {
	Requests []batchRequest `json:"requests"`
}

type deleteBody struct {
	ObjectID string `json:"objectID"`
}

type algoliaIndexClient struct {
	client    *resty.Client
	indexName string
}

// NewAlgoliaIndexClient constructs an [IndexClient] speaking the Algolia v1
// REST API with batched writes.
func NewAlgoliaIndexClient(cfg AlgoliaConfig) IndexClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.algolia.net", cfg.ApplicationID)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("X-Algolia-Application-Id", cfg.ApplicationID).
		SetHeader("X-Algolia-API-Key", cfg.AdminAPIKey)

	return &algoliaIndexClient{client: cli, indexName: cfg.IndexName}
}

func (a *algoliaIndexClient) ClearAll(ctx context.Context) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/1/indexes/%s/clear", a.indexName))
	if err != nil {
		return fmt.Errorf("clear index request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *algoliaIndexClient) UpsertBatch(ctx context.Context, records []models.IndexRecord, autoGenerateID bool) error {
	if len(records) == 0 {
		return nil
	}

	// addObject lets the index assign an objectID to records missing one;
	// updateObject rejects them. The engine always sets ObjectID, so the
	// distinction is a defensive fallback, mirrored from the saveObjects
	// autoGenerateObjectIDIfNotExist option.
	action := "updateObject"
	if autoGenerateID {
		action = "addObject"
	}

	payload := batchPayload{Requests: make([]batchRequest, 0, len(records))}
	for _, rec := range records {
		payload.Requests = append(payload.Requests, batchRequest{Action: action, Body: rec})
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("/1/indexes/%s/batch", a.indexName))
	if err != nil {
		return fmt.Errorf("upsert batch request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *algoliaIndexClient) DeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	payload := batchPayload{Requests: make([]batchRequest, 0, len(ids))}
	for _, id := range ids {
		payload.Requests = append(payload.Requests, batchRequest{
			Action: "deleteObject",
			Body:   deleteBody{ObjectID: strconv.FormatInt(id, 10)},
		})
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("/1/indexes/%s/batch", a.indexName))
	if err != nil {
		return fmt.Errorf("delete batch request: %w", err)
	}

	return mapHTTPError(resp)
}
