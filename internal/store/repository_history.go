// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package store

import (
	"context"
	"fmt"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/models"
)

// historyRepository is the SQL-backed implementation of [SyncHistory] over
// the sync_log table. Append-only: no update or delete statement exists in
// this file on purpose.
type historyRepository struct {
	*DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [SyncHistory] backed by the provided
// database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) SyncHistory {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

func (h *historyRepository) Append(ctx context.Context, entry models.SyncHistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := h.builder().
		Insert("sync_log").
		Columns("full_sync", "sync_date", "added_count", "updated_count", "deleted_count").
		Values(entry.FullSync, entry.SyncDate, entry.AddedCount, entry.UpdatedCount, entry.DeletedCount).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = h.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.Append").
			Bool("full_sync", entry.FullSync).
			Msg("failed to append sync log entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Latest returns the entry with the maximum sync_date. Ordering is on the
// data, not on insertion order or the surrogate id.
func (h *historyRepository) Latest(ctx context.Context) (*models.SyncHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := h.builder().
		Select("id", "full_sync", "sync_date", "added_count", "updated_count", "deleted_count").
		From("sync_log").
		OrderBy("sync_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var entry models.SyncHistoryEntry
	row := h.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&entry.ID, &entry.FullSync, &entry.SyncDate, &entry.AddedCount, &entry.UpdatedCount, &entry.DeletedCount)
	switch {
	case scanErr == nil:
		return &entry, nil
	case isNoRows(scanErr):
		return nil, nil
	default:
		log.Err(scanErr).Str("func", "historyRepository.Latest").Msg("failed to read latest sync log entry")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}
}

func (h *historyRepository) List(ctx context.Context, limit int) ([]models.SyncHistoryEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = 20
	}

	query, args, err := h.builder().
		Select("id", "full_sync", "sync_date", "added_count", "updated_count", "deleted_count").
		From("sync_log").
		OrderBy("sync_date DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.List").Msg("failed to query sync log")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.SyncHistoryEntry, 0, limit)
	for rows.Next() {
		var entry models.SyncHistoryEntry
		if scanErr := rows.Scan(&entry.ID, &entry.FullSync, &entry.SyncDate, &entry.AddedCount, &entry.UpdatedCount, &entry.DeletedCount); scanErr != nil {
			log.Err(scanErr).Str("func", "historyRepository.List").Msg("failed to scan sync log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "historyRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (h *historyRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := h.builder().
		Select("COUNT(*)").
		From("sync_log").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var count int
	if scanErr := h.DB.QueryRowContext(ctx, query, args...).Scan(&count); scanErr != nil {
		log.Err(scanErr).Str("func", "historyRepository.Count").Msg("failed to count sync log entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return count, nil
}
