// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

// Package store provides the durable state the sync engine depends on: the
// ledger of object ids believed present in the remote index, the ledger of
// deletions pending retraction, the append-only run history, the run lease,
// and the read-only facade over the CMS content database.
//
// The ledger, history and lease share one database connection, selected by
// DSN: postgres:// DSNs use PostgreSQL (schema managed by goose migrations),
// anything else is treated as a SQLite file (schema created on connect).
// The content database is always PostgreSQL and is never written to.
package store

import (
	"context"
	"time"

	"github.com/pagelift/algolia-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncLedger is the durable record of which object ids are currently
// believed present in the remote index (synced set) and which were removed
// from the content store but not yet retracted from the index (pending
// deletions). Only the sync engine mutates the synced set; the pending set
// is fed by the CMS delete hook.
type SyncLedger interface {
	// MarkSynced records ids as present in the remote index. Upsert
	// semantics: ids already marked stay marked once, never twice.
	MarkSynced(ctx context.Context, ids ...int64) error

	// UnmarkSynced removes ids from the synced set. Unknown ids are ignored.
	UnmarkSynced(ctx context.Context, ids ...int64) error

	// IsSynced reports whether id is in the synced set.
	IsSynced(ctx context.Context, id int64) (bool, error)

	// AllSynced returns the full synced set.
	AllSynced(ctx context.Context) ([]int64, error)

	// ClearSynced empties the synced set and returns how many ids were
	// cleared.
	ClearSynced(ctx context.Context) (int, error)

	// MarkPendingDeletion records that id was deleted from the content
	// store before its removal reached the index. Idempotent: repeated
	// calls for the same id are no-ops.
	MarkPendingDeletion(ctx context.Context, id int64) error

	// AllPendingDeletion returns every object id awaiting retraction.
	AllPendingDeletion(ctx context.Context) ([]int64, error)

	// ClearPendingDeletion removes the given ids from the pending set
	// after their remote delete has been issued.
	ClearPendingDeletion(ctx context.Context, ids ...int64) error

	// ClearAllPendingDeletion empties the pending set.
	ClearAllPendingDeletion(ctx context.Context) error
}

// SyncHistory is the append-only log of completed sync runs. Entries are
// never mutated or deleted; the entry with the maximum SyncDate is the
// watermark for the next incremental run.
type SyncHistory interface {
	// Append stores one completed run.
	Append(ctx context.Context, entry models.SyncHistoryEntry) error

	// Latest returns the entry with the maximum SyncDate, or nil when the
	// history is empty. The contract is on the data, not insertion order.
	Latest(ctx context.Context) (*models.SyncHistoryEntry, error)

	// List returns up to limit entries, most recent first.
	List(ctx context.Context, limit int) ([]models.SyncHistoryEntry, error)

	// Count returns the number of recorded runs.
	Count(ctx context.Context) (int, error)
}

// ContentSource is the thin query facade over the CMS content database. All
// four queries see the live stage only. Implementations resolve the
// localisation capability once at construction, not per item.
type ContentSource interface {
	// Localised reports whether the content store runs with multi-locale
	// support. The engine selects locale fan-out vs root-level default
	// data for the whole run based on this flag.
	Localised() bool

	// QueryVisible returns every live page flagged searchable.
	QueryVisible(ctx context.Context) ([]models.ContentItem, error)

	// QueryVisibleExcluding returns live searchable pages whose id is not
	// in exclude. An empty exclude set returns everything visible.
	QueryVisibleExcluding(ctx context.Context, exclude []int64) ([]models.ContentItem, error)

	// QueryVisibleModifiedAfter returns live searchable pages whose id is
	// in among and whose last-modified timestamp is strictly after since.
	// An empty among set returns no rows.
	QueryVisibleModifiedAfter(ctx context.Context, among []int64, since time.Time) ([]models.ContentItem, error)

	// QueryHiddenAmong returns live pages whose id is in among and whose
	// searchable flag is now false. An empty among set returns no rows.
	QueryHiddenAmong(ctx context.Context, among []int64) ([]models.ContentItem, error)
}

// RunLease serialises sync runs. Acquire fails fast with
// [ErrSyncAlreadyRunning] when another run holds the lease; the returned
// release function must be called on both success and failure paths.
type RunLease interface {
	Acquire(ctx context.Context) (release func(), err error)
}
