package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sigapair/airlab/pkg/config"
)

// Operator defines the interface for basic PostgreSQL management
// operations. It owns the connection pool and exposes it to the schema
// manager and the lab result store.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool, nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables reports whether any airlab table exists. The create
	// command asks for confirmation when it does.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops the airlab tables. Other tables of a shared
	// database are left alone.
	DropAllTables(ctx context.Context) error
}
