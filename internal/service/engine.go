// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pagelift/algolia-sync/internal/adapter"
	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/store"
	"github.com/pagelift/algolia-sync/models"
)

// syncEngine drives full and incremental synchronisation runs. All durable
// state lives in the ledger and history stores; the engine itself keeps
// nothing between runs, so a crash mid-run leaves a valid-but-stale state
// that the next run recomputes from.
type syncEngine struct {
	source  store.ContentSource
	ledger  store.SyncLedger
	history store.SyncHistory
	index   adapter.IndexClient
	mapper  RecordMapper
	lease   store.RunLease
	logger  *logger.Logger

	now func() time.Time
}

// NewSyncEngine wires a [SyncEngine] from its collaborators.
func NewSyncEngine(storages *store.Storages, index adapter.IndexClient, mapper RecordMapper, log *logger.Logger) SyncEngine {
	return &syncEngine{
		source:  storages.Content,
		ledger:  storages.Ledger,
		history: storages.History,
		index:   index,
		mapper:  mapper,
		lease:   storages.Lease,
		logger:  log,
		now:     time.Now,
	}
}

// Run implements [SyncEngine]. The run lease is held from before the first
// remote call until after the history write, on success and failure alike.
// [store.ErrSyncAlreadyRunning] passes through unwrapped so callers can
// treat an overlapping trigger as "busy" rather than as a failed sync.
func (e *syncEngine) Run(ctx context.Context, fullSync bool) (models.RunReport, error) {
	release, err := e.lease.Acquire(ctx)
	if err != nil {
		return models.RunReport{}, err
	}
	defer release()

	log := e.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", uuid.NewString())
	})
	ctx = log.WithContext(ctx)

	var report models.RunReport
	if fullSync {
		report, err = e.runFull(ctx)
	} else {
		report, err = e.runIncremental(ctx)
	}

	if err != nil {
		log.Err(err).Str("mode", string(report.Mode)).Msg("sync run failed")
		return report, err
	}

	log.Info().
		Str("mode", string(report.Mode)).
		Int("added", report.Added).
		Int("updated", report.Updated).
		Int("deleted", report.Deleted).
		Msg("sync run completed")
	return report, nil
}

// runFull rebuilds the index from scratch: wipe the remote index and both
// ledgers, then resync every visible page. There is no rollback: if the
// upsert fails after the clear succeeded, the index stays empty until the
// next successful full sync.
func (e *syncEngine) runFull(ctx context.Context) (models.RunReport, error) {
	log := logger.FromContext(ctx)
	report := models.RunReport{Mode: models.ModeFull, StartedAt: e.now()}

	if err := e.index.ClearAll(ctx); err != nil {
		return report, fmt.Errorf("%w: clear index: %w", ErrRemoteIndex, err)
	}

	cleared, err := e.ledger.ClearSynced(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: clear synced markers: %w", ErrLedger, err)
	}
	if err = e.ledger.ClearAllPendingDeletion(ctx); err != nil {
		return report, fmt.Errorf("%w: clear pending deletions: %w", ErrLedger, err)
	}
	log.Info().Int("cleared", cleared).Msg("wiped remote index and local ledgers")

	items, err := e.source.QueryVisible(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: query visible pages: %w", ErrContentSource, err)
	}

	if err = e.upsert(ctx, items, true); err != nil {
		return report, err
	}
	report.Added = len(items)
	report.Deleted = cleared
	log.Info().Int("count", len(items)).Msg("resynced all visible pages")

	if err = e.writeHistory(ctx, &report, true); err != nil {
		return report, err
	}
	return report, nil
}

// runIncremental applies the delta since the last run: deletions first, then
// updates, then additions. The ordering guarantees an id never appears in
// two batches within one run. A page hidden since the last run loses its
// synced marker before the addition scan, and a page made visible again
// reappears as an addition in a later run.
func (e *syncEngine) runIncremental(ctx context.Context) (models.RunReport, error) {
	log := logger.FromContext(ctx)

	historyCount, err := e.history.Count(ctx)
	if err != nil {
		return models.RunReport{Mode: models.ModeIncremental}, fmt.Errorf("%w: count history: %w", ErrHistory, err)
	}
	if historyCount == 0 {
		// Bootstrap rule, not an error: without a watermark there is no
		// delta to compute.
		log.Info().Msg("no sync history found, falling back to a full sync")
		return e.runFull(ctx)
	}

	report := models.RunReport{Mode: models.ModeIncremental, StartedAt: e.now()}

	synced, err := e.ledger.AllSynced(ctx)
	if err != nil {
		return report, fmt.Errorf("%w: load synced markers: %w", ErrLedger, err)
	}

	deleted, remaining, err := e.applyDeletions(ctx, synced)
	if err != nil {
		return report, err
	}
	report.Deleted = deleted

	updated, err := e.applyUpdates(ctx, remaining)
	if err != nil {
		return report, err
	}
	report.Updated = updated

	added, err := e.applyAdditions(ctx, remaining)
	if err != nil {
		return report, err
	}
	report.Added = added

	if err = e.writeHistory(ctx, &report, false); err != nil {
		return report, err
	}
	return report, nil
}

// applyDeletions retracts the union of the pending-deletion ledger and the
// synced pages whose searchable flag flipped to false. The count is the size
// of the de-duplicated union. Returns the synced set with the retracted ids
// removed, so the later phases never see them.
func (e *syncEngine) applyDeletions(ctx context.Context, synced []int64) (int, []int64, error) {
	log := logger.FromContext(ctx)

	pending, err := e.ledger.AllPendingDeletion(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: load pending deletions: %w", ErrLedger, err)
	}

	hiddenItems, err := e.source.QueryHiddenAmong(ctx, synced)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: query hidden pages: %w", ErrContentSource, err)
	}

	union := make(map[int64]struct{}, len(pending)+len(hiddenItems))
	for _, id := range pending {
		union[id] = struct{}{}
	}
	for _, item := range hiddenItems {
		union[item.ID()] = struct{}{}
	}

	remaining := make([]int64, 0, len(synced))
	for _, id := range synced {
		if _, gone := union[id]; !gone {
			remaining = append(remaining, id)
		}
	}

	if len(union) == 0 {
		return 0, remaining, nil
	}

	ids := make([]int64, 0, len(union))
	for id := range union {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	if err = e.index.DeleteBatch(ctx, ids); err != nil {
		return 0, nil, fmt.Errorf("%w: delete batch: %w", ErrRemoteIndex, err)
	}
	if err = e.ledger.ClearPendingDeletion(ctx, pending...); err != nil {
		return 0, nil, fmt.Errorf("%w: clear pending deletions: %w", ErrLedger, err)
	}
	if err = e.ledger.UnmarkSynced(ctx, ids...); err != nil {
		return 0, nil, fmt.Errorf("%w: unmark synced: %w", ErrLedger, err)
	}

	log.Info().Int("count", len(union)).Msg("retracted deleted pages from the index")
	return len(union), remaining, nil
}

// applyUpdates re-upserts synced pages modified since the watermark. The
// watermark is read from history as it stood at run start; this run's own
// entry is written last and never feeds its own delta.
func (e *syncEngine) applyUpdates(ctx context.Context, synced []int64) (int, error) {
	log := logger.FromContext(ctx)

	if len(synced) == 0 {
		log.Info().Msg("no synced pages on record, skipping update scan")
		return 0, nil
	}

	latest, err := e.history.Latest(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: read watermark: %w", ErrHistory, err)
	}
	if latest == nil {
		return 0, fmt.Errorf("%w: history reported entries but none could be read", ErrHistory)
	}

	items, err := e.source.QueryVisibleModifiedAfter(ctx, synced, latest.SyncDate)
	if err != nil {
		return 0, fmt.Errorf("%w: query modified pages: %w", ErrContentSource, err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	// Update mode: markers already exist, only the records move.
	records := make([]models.IndexRecord, 0, len(items))
	for _, item := range items {
		records = append(records, e.mapper.Map(item))
	}
	if err = e.index.UpsertBatch(ctx, records, false); err != nil {
		return 0, fmt.Errorf("%w: upsert batch: %w", ErrRemoteIndex, err)
	}

	log.Info().Int("count", len(items)).Time("watermark", latest.SyncDate).Msg("updated modified pages")
	return len(items), nil
}

// applyAdditions indexes visible pages that have no synced marker yet and
// marks them synced.
func (e *syncEngine) applyAdditions(ctx context.Context, synced []int64) (int, error) {
	log := logger.FromContext(ctx)

	items, err := e.source.QueryVisibleExcluding(ctx, synced)
	if err != nil {
		return 0, fmt.Errorf("%w: query new pages: %w", ErrContentSource, err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	if err = e.upsert(ctx, items, true); err != nil {
		return 0, err
	}

	log.Info().Int("count", len(items)).Msg("indexed newly created pages")
	return len(items), nil
}

// upsert maps items to records, pushes them in one batch, and records one
// synced marker per item (insert mode).
func (e *syncEngine) upsert(ctx context.Context, items []models.ContentItem, autoGenerateID bool) error {
	if len(items) == 0 {
		return nil
	}

	records := make([]models.IndexRecord, 0, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		records = append(records, e.mapper.Map(item))
		ids = append(ids, item.ID())
	}

	if err := e.index.UpsertBatch(ctx, records, autoGenerateID); err != nil {
		return fmt.Errorf("%w: upsert batch: %w", ErrRemoteIndex, err)
	}
	if err := e.ledger.MarkSynced(ctx, ids...); err != nil {
		return fmt.Errorf("%w: mark synced: %w", ErrLedger, err)
	}
	return nil
}

// writeHistory stamps the run's completion time and appends the entry. A
// failed append fails the run: the watermark must never silently stall.
func (e *syncEngine) writeHistory(ctx context.Context, report *models.RunReport, fullSync bool) error {
	report.FinishedAt = e.now()

	entry := models.SyncHistoryEntry{
		FullSync:     fullSync,
		SyncDate:     report.FinishedAt,
		AddedCount:   report.Added,
		UpdatedCount: report.Updated,
		DeletedCount: report.Deleted,
	}
	if err := e.history.Append(ctx, entry); err != nil {
		return fmt.Errorf("%w: append history: %w", ErrHistory, err)
	}
	return nil
}
