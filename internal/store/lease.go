// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pagelift Authors

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/pagelift/algolia-sync/internal/logger"
)

// syncLeaseKey is the advisory lock key that serialises sync runs against a
// shared PostgreSQL ledger. One key, one index: the service supports a
// single target index per deployment.
const syncLeaseKey int64 = 0x70676c_73796e63 // "pgl sync"

// pgRunLease implements [RunLease] with a PostgreSQL session-level advisory
// lock. The lock rides on a dedicated connection pinned for the run's whole
// duration, so it survives pool churn and dies with the session if the
// process does.
type pgRunLease struct {
	db     *DB
	logger *logger.Logger
}

// localRunLease implements [RunLease] for the SQLite backend, where a single
// process owns the ledger file and an in-process mutex is sufficient.
type localRunLease struct {
	mu sync.Mutex
}

// NewRunLease returns the lease implementation matching the ledger backend.
func NewRunLease(db *DB, log *logger.Logger) RunLease {
	if db.driver == driverPostgres {
		return &pgRunLease{db: db, logger: log}
	}
	return &localRunLease{}
}

func (l *pgRunLease) Acquire(ctx context.Context) (func(), error) {
	conn, err := l.db.Conn(ctx)
	if err != nil {
		l.logger.Err(err).Str("func", "pgRunLease.Acquire").Msg("failed to pin lease connection")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var locked bool
	err = conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", syncLeaseKey).Scan(&locked)
	if err != nil {
		conn.Close()
		l.logger.Err(err).Str("func", "pgRunLease.Acquire").Msg("failed to acquire advisory lock")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !locked {
		conn.Close()
		return nil, ErrSyncAlreadyRunning
	}

	release := func() {
		// Unlock on a background context: the run's context may already
		// be cancelled on the failure path.
		if _, unlockErr := conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", syncLeaseKey); unlockErr != nil {
			l.logger.Err(unlockErr).Str("func", "pgRunLease.Acquire").Msg("failed to release advisory lock")
		}
		conn.Close()
	}
	return release, nil
}

func (l *localRunLease) Acquire(ctx context.Context) (func(), error) {
	if !l.mu.TryLock() {
		return nil, ErrSyncAlreadyRunning
	}
	return l.mu.Unlock, nil
}
