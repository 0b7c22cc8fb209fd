// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pagelift/algolia-sync/internal/logger"
)

// ledgerRepository is the SQL-backed implementation of [SyncLedger]. It
// works against both the PostgreSQL and the SQLite backend through the
// dialect-aware builder on [*DB].
//
// The synced_objects and pending_deletions tables both key on object_id, so
// marking is naturally idempotent: inserts carry ON CONFLICT DO NOTHING.
type ledgerRepository struct {
	*DB
	logger *logger.Logger
}

// NewLedgerRepository constructs a [SyncLedger] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewLedgerRepository(db *DB, logger *logger.Logger) SyncLedger {
	return &ledgerRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *ledgerRepository) MarkSynced(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	now := time.Now()
	insert := l.builder().
		Insert("synced_objects").
		Columns("object_id", "synced_at").
		Suffix("ON CONFLICT (object_id) DO NOTHING")
	for _, id := range ids {
		insert = insert.Values(id, now)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.MarkSynced").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.MarkSynced").
			Int("ids count", len(ids)).
			Str("pg code", postgresError(err)).
			Msg("failed to mark objects as synced")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *ledgerRepository) UnmarkSynced(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := l.builder().
		Delete("synced_objects").
		Where(sq.Eq{"object_id": ids}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.UnmarkSynced").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.UnmarkSynced").
			Int("ids count", len(ids)).
			Msg("failed to unmark synced objects")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *ledgerRepository) IsSynced(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := l.builder().
		Select("1").
		From("synced_objects").
		Where(sq.Eq{"object_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var one int
	row := l.DB.QueryRowContext(ctx, query, args...)
	switch scanErr := row.Scan(&one); {
	case scanErr == nil:
		return true, nil
	case isNoRows(scanErr):
		return false, nil
	default:
		log.Err(scanErr).
			Str("func", "ledgerRepository.IsSynced").
			Int64("object_id", id).
			Msg("failed to check synced marker")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}
}

func (l *ledgerRepository) AllSynced(ctx context.Context) ([]int64, error) {
	return l.selectIDs(ctx, "synced_objects", "ledgerRepository.AllSynced")
}

func (l *ledgerRepository) ClearSynced(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := l.builder().Delete("synced_objects").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.ClearSynced").Msg("failed to clear synced markers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	cleared, _ := result.RowsAffected()
	return int(cleared), nil
}

func (l *ledgerRepository) MarkPendingDeletion(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := l.builder().
		Insert("pending_deletions").
		Columns("object_id", "requested_at").
		Values(id, time.Now()).
		Suffix("ON CONFLICT (object_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.MarkPendingDeletion").
			Int64("object_id", id).
			Msg("failed to mark pending deletion")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *ledgerRepository) AllPendingDeletion(ctx context.Context) ([]int64, error) {
	return l.selectIDs(ctx, "pending_deletions", "ledgerRepository.AllPendingDeletion")
}

func (l *ledgerRepository) ClearPendingDeletion(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := l.builder().
		Delete("pending_deletions").
		Where(sq.Eq{"object_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.ClearPendingDeletion").
			Int("ids count", len(ids)).
			Msg("failed to clear pending deletions")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *ledgerRepository) ClearAllPendingDeletion(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := l.builder().Delete("pending_deletions").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "ledgerRepository.ClearAllPendingDeletion").Msg("failed to clear all pending deletions")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *ledgerRepository) selectIDs(ctx context.Context, table, caller string) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := l.builder().
		Select("object_id").
		From(table).
		OrderBy("object_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to query ledger ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 64)
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan ledger id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}
