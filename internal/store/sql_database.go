package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/pagelift/algolia-sync/internal/logger"
	"github.com/pagelift/algolia-sync/migrations"
)

// Driver names accepted by [DB].
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps a database/sql connection with the driver name and an error
// classifier. The driver name decides the squirrel placeholder format and
// which migration path Migrate takes.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the ledger schema up to date. PostgreSQL connections run
// the embedded goose migrations; SQLite connections get the schema created
// inline on connect, so Migrate is a no-op for them.
func (db *DB) Migrate() error {
	if db.driver != driverPostgres {
		return nil
	}
	return migrations.Migrate(db.DB)
}

// builder returns a squirrel statement builder bound to this connection's
// placeholder dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == driverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
