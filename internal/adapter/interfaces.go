// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

// Package adapter provides the transport-layer client for the remote search
// index.
//
// The primary abstraction is [IndexClient], which decouples the sync engine
// from the index's REST protocol. The package ships an Algolia
// implementation ([NewAlgoliaIndexClient]) speaking the v1 batch API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401/403, [ErrQuotaExceeded]
// for 429).
package adapter

import (
	"context"

	"github.com/pagelift/algolia-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/index_client_mock.go -package=mock

// IndexClient is the write surface of the remote search index the engine
// needs: destructive clear, batched upsert, batched delete. Retry/backoff on
// transient transport failures belongs to implementations, never to the
// engine.
type IndexClient interface {
	// ClearAll removes every record from the target index.
	ClearAll(ctx context.Context) error

	// UpsertBatch saves all records in one batch call. With autoGenerateID
	// set, records without an ObjectID are accepted and the index assigns
	// one; otherwise such records are rejected. The engine always sets
	// ObjectID, so the flag only matters as a defensive fallback.
	UpsertBatch(ctx context.Context, records []models.IndexRecord, autoGenerateID bool) error

	// DeleteBatch removes the records with the given object ids in one
	// batch call. Ids unknown to the index are ignored by the remote side.
	DeleteBatch(ctx context.Context, ids []int64) error
}
