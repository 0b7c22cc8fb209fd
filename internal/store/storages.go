package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/pagelift/algolia-sync/internal/config"
	"github.com/pagelift/algolia-sync/internal/logger"
)

// Storages aggregates every durable dependency of the sync engine: the two
// ledgers, the run history, the run lease, and the read-only content facade.
type Storages struct {
	Ledger  SyncLedger
	History SyncHistory
	Content ContentSource
	Lease   RunLease
}

// NewStorages opens the ledger database (backend selected by DSN scheme),
// migrates its schema, opens the content database, and wires all
// repositories. The content connection is separate from the ledger
// connection even when both point at the same PostgreSQL cluster, so a
// misbehaving CMS query can never starve ledger writes.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	ledgerDB, err := connectByDSN(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("connect ledger database: %w", err)
	}

	if err = ledgerDB.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate ledger database: %w", err)
	}

	contentDB, err := NewConnectPostgres(ctx, cfg.Content.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("connect content database: %w", err)
	}

	content, err := NewContentRepository(ctx, contentDB, log)
	if err != nil {
		return nil, fmt.Errorf("create content repository: %w", err)
	}

	return &Storages{
		Ledger:  NewLedgerRepository(ledgerDB, log),
		History: NewHistoryRepository(ledgerDB, log),
		Content: content,
		Lease:   NewRunLease(ledgerDB, log),
	}, nil
}

func connectByDSN(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case dsn != "":
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}
