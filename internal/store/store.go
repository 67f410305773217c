// Package store persists POS records in Postgres or SQLite.
package store

import (
	"context"

	"github.com/seuhd/campus-coffee/internal/pos"
)

// Store is a pos.DataStore with a schema and a lifecycle.
type Store interface {
	pos.DataStore

	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*PostgresStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

const posColumns = `id, name, description, type, campus, street, house_number, postal_code, city, created_at, updated_at`

type scannable interface {
	Scan(dest ...any) error
}
