// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package models

import "time"

// Mode identifies which sync variant a run executed.
type Mode string

const (
	ModeFull        Mode = "full"
	ModeIncremental Mode = "incremental"
)

// SyncHistoryEntry is the immutable record of one completed run. Entries are
// only ever appended; the most recent entry's SyncDate is the watermark for
// the next incremental run.
type SyncHistoryEntry struct {
	ID           int64     `json:"id"`
	FullSync     bool      `json:"full_sync"`
	SyncDate     time.Time `json:"sync_date"`
	AddedCount   int       `json:"added_count"`
	UpdatedCount int       `json:"updated_count"`
	DeletedCount int       `json:"deleted_count"`
}

// RunReport is the structured result of one sync run, returned to the caller
// alongside any terminal error.
type RunReport struct {
	Mode       Mode      `json:"mode"`
	Added      int       `json:"added"`
	Updated    int       `json:"updated"`
	Deleted    int       `json:"deleted"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
