package store

import (
	"database/sql"
	"errors"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBuildingQuery is returned when a dynamic query cannot be rendered
	// to SQL before it is ever sent to the database.
	ErrBuildingQuery = errors.New("failed to build query")

	// ErrExecutingQuery is returned when the database rejects or fails a
	// statement.
	ErrExecutingQuery = errors.New("failed to execute query")

	// ErrScanningRow is returned when a result row cannot be decoded into
	// the target model.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when an iteration error is detected
	// after the result set has been consumed.
	ErrScanningRows = errors.New("error iterating rows")

	// ErrSyncAlreadyRunning is returned by [RunLease.Acquire] when another
	// run currently holds the lease. Callers should treat this as "try
	// again later", not as a failure of the sync itself.
	ErrSyncAlreadyRunning = errors.New("another sync run holds the lease")

	// ErrUnsupportedDSN is returned when the ledger DSN matches neither
	// the PostgreSQL nor the SQLite backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
