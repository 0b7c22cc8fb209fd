package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pagelift/algolia-sync/internal/logger"
)

// sqliteSchema mirrors the goose migration for PostgreSQL. The SQLite
// backend is meant for single-node deployments where the ledger lives next
// to the binary, so the schema is applied inline on connect instead of
// through a migration tool.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS synced_objects (
	object_id INTEGER PRIMARY KEY,
	synced_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS pending_deletions (
	object_id INTEGER PRIMARY KEY,
	requested_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS sync_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_sync BOOLEAN NOT NULL,
	sync_date TIMESTAMP NOT NULL,
	added_count INTEGER NOT NULL,
	updated_count INTEGER NOT NULL,
	deleted_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sync_log_sync_date ON sync_log (sync_date DESC);
`

func NewConnectSQLite(ctx context.Context, dbFile string, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(dbFile); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, sqliteSchema); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating schema")
		return nil, fmt.Errorf("error creating sqlite schema: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		driver:             driverSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
