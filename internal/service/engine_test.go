// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/internal/mock"
	"github.com/pagelift/algolia-sync/internal/store"
	"github.com/pagelift/algolia-sync/models"
)

// newTestEngine builds a syncEngine over mocks with a frozen clock.
func newTestEngine(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*syncEngine,
	*mock.MockContentSource,
	*mock.MockSyncLedger,
	*mock.MockSyncHistory,
	*mock.MockIndexClient,
	*mock.MockRecordMapper,
	*mock.MockRunLease,
) {
	t.Helper()

	source := mock.NewMockContentSource(ctrl)
	ledger := mock.NewMockSyncLedger(ctrl)
	history := mock.NewMockSyncHistory(ctrl)
	index := mock.NewMockIndexClient(ctrl)
	mapper := mock.NewMockRecordMapper(ctrl)
	lease := mock.NewMockRunLease(ctrl)

	storages := &store.Storages{
		Ledger:  ledger,
		History: history,
		Content: source,
		Lease:   lease,
	}

	eng := NewSyncEngine(storages, index, mapper, logger.Nop()).(*syncEngine)
	eng.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	return eng, source, ledger, history, index, mapper, lease
}

func page(id int64) *models.Page {
	return &models.Page{PageID: id, ClassName: "Page", ShowInSearch: true}
}

func grantLease(lease *mock.MockRunLease) {
	lease.EXPECT().Acquire(gomock.Any()).Return(func() {}, nil)
}

// ── Full sync ────────────────────────────────────────────────────────────────

func TestSyncEngine_FullSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, source, ledger, history, index, mapper, lease := newTestEngine(t, ctrl)
	grantLease(lease)

	items := []models.ContentItem{page(1), page(2), page(3)}

	index.EXPECT().ClearAll(gomock.Any()).Return(nil)
	ledger.EXPECT().ClearSynced(gomock.Any()).Return(7, nil)
	ledger.EXPECT().ClearAllPendingDeletion(gomock.Any()).Return(nil)
	source.EXPECT().QueryVisible(gomock.Any()).Return(items, nil)
	mapper.EXPECT().Map(gomock.Any()).Return(models.IndexRecord{}).Times(3)
	index.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(3), true).Return(nil)
	ledger.EXPECT().MarkSynced(gomock.Any(), int64(1), int64(2), int64(3)).Return(nil)

	var appended models.SyncHistoryEntry
	history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.SyncHistoryEntry) error {
			appended = entry
			return nil
		})

	report, err := eng.Run(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, models.ModeFull, report.Mode)
	assert.Equal(t, 3, report.Added)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 7, report.Deleted)

	assert.True(t, appended.FullSync)
	assert.Equal(t, 3, appended.AddedCount)
	assert.Equal(t, 7, appended.DeletedCount)
	assert.Equal(t, eng.now(), appended.SyncDate)
}

func TestSyncEngine_FullSync_UpsertFails_NoHistoryWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, source, ledger, _, index, mapper, lease := newTestEngine(t, ctrl)
	grantLease(lease)

	index.EXPECT().ClearAll(gomock.Any()).Return(nil)
	ledger.EXPECT().ClearSynced(gomock.Any()).Return(0, nil)
	ledger.EXPECT().ClearAllPendingDeletion(gomock.Any()).Return(nil)
	source.EXPECT().QueryVisible(gomock.Any()).Return([]models.ContentItem{page(1)}, nil)
	mapper.EXPECT().Map(gomock.Any()).Return(models.IndexRecord{})
	index.EXPECT().UpsertBatch(gomock.Any(), gomock.Any(), true).Return(errors.New("503"))
	// no history.Append expected: a failed run must not advance the watermark

	_, err := eng.Run(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteIndex)
}

// ── Bootstrap guard ──────────────────────────────────────────────────────────

func TestSyncEngine_Incremental_EmptyHistoryFallsBackToFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, source, ledger, history, index, _, lease := newTestEngine(t, ctrl)
	grantLease(lease)

	history.EXPECT().Count(gomock.Any()).Return(0, nil)

	// Full-sync path kicks in despite fullSync=false.
	index.EXPECT().ClearAll(gomock.Any()).Return(nil)
	ledger.EXPECT().ClearSynced(gomock.Any()).Return(0, nil)
	ledger.EXPECT().ClearAllPendingDeletion(gomock.Any()).Return(nil)
	source.EXPECT().QueryVisible(gomock.Any()).Return(nil, nil)
	history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	report, err := eng.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, models.ModeFull, report.Mode)
}

// ── Incremental sync ─────────────────────────────────────────────────────────

func TestSyncEngine_Incremental_AllPhases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, source, ledger, history, index, mapper, lease := newTestEngine(t, ctrl)
	grantLease(lease)

	watermark := time.Date(2026, 3, 13, 9, 30, 0, 0, time.UTC)

	history.EXPECT().Count(gomock.Any()).Return(4, nil)
	ledger.EXPECT().AllSynced(gomock.Any()).Return([]int64{1, 2, 3, 4, 5}, nil)

	// Deletions: webhook queue {1, 2} plus visibility flip on 3. Page 2 is
	// in both sets, so the reported count is 3, not 4.
	ledger.EXPECT().AllPendingDeletion(gomock.Any()).Return([]int64{1, 2}, nil)
	hidden := &models.Page{PageID: 3, ClassName: "Page", ShowInSearch: false}
	source.EXPECT().QueryHiddenAmong(gomock.Any(), []int64{1, 2, 3, 4, 5}).
		Return([]models.ContentItem{hidden, &models.Page{PageID: 2, ClassName: "Page"}}, nil)
	index.EXPECT().DeleteBatch(gomock.Any(), []int64{1, 2, 3}).Return(nil)
	ledger.EXPECT().ClearPendingDeletion(gomock.Any(), int64(1), int64(2)).Return(nil)
	ledger.EXPECT().UnmarkSynced(gomock.Any(), int64(1), int64(2), int64(3)).Return(nil)

	// Updates scan only the still-synced pages against the watermark.
	history.EXPECT().Latest(gomock.Any()).Return(&models.SyncHistoryEntry{SyncDate: watermark}, nil)
	source.EXPECT().QueryVisibleModifiedAfter(gomock.Any(), []int64{4, 5}, watermark).
		Return([]models.ContentItem{page(4)}, nil)
	mapper.EXPECT().Map(gomock.Any()).Return(models.IndexRecord{}).AnyTimes()
	index.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(1), false).Return(nil)

	// Additions exclude what remains synced after the deletion phase.
	source.EXPECT().QueryVisibleExcluding(gomock.Any(), []int64{4, 5}).
		Return([]models.ContentItem{page(10), page(11)}, nil)
	index.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(2), true).Return(nil)
	ledger.EXPECT().MarkSynced(gomock.Any(), int64(10), int64(11)).Return(nil)

	var appended models.SyncHistoryEntry
	history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.SyncHistoryEntry) error {
			appended = entry
			return nil
		})

	report, err := eng.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, models.ModeIncremental, report.Mode)
	assert.Equal(t, 2, report.Added)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 3, report.Deleted)

	assert.False(t, appended.FullSync)
	assert.Equal(t, 2, appended.AddedCount)
	assert.Equal(t, 1, appended.UpdatedCount)
	assert.Equal(t, 3, appended.DeletedCount)
}

func TestSyncEngine_Incremental_NothingChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, source, ledger, history, _, _, lease := newTestEngine(t, ctrl)
	grantLease(lease)

	watermark := time.Date(2026, 3, 13, 9, 30, 0, 0, time.UTC)

	history.EXPECT().Count(gomock.Any()).Return(1, nil)
	ledger.EXPECT().AllSynced(gomock.Any()).Return([]int64{1, 2}, nil)
	ledger.EXPECT().AllPendingDeletion(gomock.Any()).Return(nil, nil)
	source.EXPECT().QueryHiddenAmong(gomock.Any(), []int64{1, 2}).Return(nil, nil)
	history.EXPECT().Latest(gomock.Any()).Return(&models.SyncHistoryEntry{SyncDate: watermark}, nil)
	source.EXPECT().QueryVisibleModifiedAfter(gomock.Any(), []int64{1, 2}, watermark).Return(nil, nil)
	source.EXPECT().QueryVisibleExcluding(gomock.Any(), []int64{1, 2}).Return(nil, nil)
	history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	report, err := eng.Run(context.Background(), false)
	require.NoError(t, err)
	// No index traffic at all: DeleteBatch and UpsertBatch were never expected.
	assert.Zero(t, report.Added)
	assert.Zero(t, report.Updated)
	assert.Zero(t, report.Deleted)
}

func TestSyncEngine_Incremental_DeleteAllSkipsUpdateScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, source, ledger, history, index, _, lease := newTestEngine(t, ctrl)
	grantLease(lease)

	history.EXPECT().Count(gomock.Any()).Return(2, nil)
	ledger.EXPECT().AllSynced(gomock.Any()).Return([]int64{8}, nil)
	ledger.EXPECT().AllPendingDeletion(gomock.Any()).Return([]int64{8}, nil)
	source.EXPECT().QueryHiddenAmong(gomock.Any(), []int64{8}).Return(nil, nil)
	index.EXPECT().DeleteBatch(gomock.Any(), []int64{8}).Return(nil)
	ledger.EXPECT().ClearPendingDeletion(gomock.Any(), int64(8)).Return(nil)
	ledger.EXPECT().UnmarkSynced(gomock.Any(), int64(8)).Return(nil)

	// Nothing left synced: the watermark read and the modified-pages query
	// are skipped entirely.
	source.EXPECT().QueryVisibleExcluding(gomock.Any(), []int64{}).Return(nil, nil)
	history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	report, err := eng.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Deleted)
	assert.Zero(t, report.Updated)
}

func TestSyncEngine_Incremental_DeleteBatchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, source, ledger, history, index, _, lease := newTestEngine(t, ctrl)
	grantLease(lease)

	history.EXPECT().Count(gomock.Any()).Return(1, nil)
	ledger.EXPECT().AllSynced(gomock.Any()).Return([]int64{1}, nil)
	ledger.EXPECT().AllPendingDeletion(gomock.Any()).Return([]int64{1}, nil)
	source.EXPECT().QueryHiddenAmong(gomock.Any(), []int64{1}).Return(nil, nil)
	index.EXPECT().DeleteBatch(gomock.Any(), []int64{1}).Return(errors.New("timeout"))
	// Ledger untouched on failure: the ids stay queued for the next run.

	_, err := eng.Run(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteIndex)
}

// ── Run lease ────────────────────────────────────────────────────────────────

func TestSyncEngine_Run_LeaseBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, _, _, _, _, _, lease := newTestEngine(t, ctrl)

	lease.EXPECT().Acquire(gomock.Any()).Return(nil, store.ErrSyncAlreadyRunning)

	_, err := eng.Run(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrSyncAlreadyRunning)
}

func TestSyncEngine_Run_LeaseReleasedOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, _, _, history, _, _, lease := newTestEngine(t, ctrl)

	released := false
	lease.EXPECT().Acquire(gomock.Any()).Return(func() { released = true }, nil)
	history.EXPECT().Count(gomock.Any()).Return(0, errors.New("db down"))

	_, err := eng.Run(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHistory)
	assert.True(t, released)
}
