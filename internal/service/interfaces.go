// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

// Package service contains the synchronisation core: the record mapper that
// flattens CMS pages into index records, and the sync engine that computes
// and applies the add/update/delete delta between the content store and the
// remote search index.
package service

import (
	"context"

	"github.com/pagelift/algolia-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordMapper converts one content item into a flat index record. Mapping
// never fails: missing configured fields are simply omitted, which is the
// normal case for heterogeneous page kinds.
type RecordMapper interface {
	Map(item models.ContentItem) models.IndexRecord
}

// SyncEngine runs one synchronisation pass against the remote index.
//
// Run executes at most one sync at a time process- and cluster-wide (it
// acquires the run lease for its full duration). The returned report always
// describes what the run managed to do; on error the report is partial and
// no history entry has been written.
type SyncEngine interface {
	Run(ctx context.Context, fullSync bool) (models.RunReport, error)
}
