package lifecycle

import (
	"context"

	"github.com/sigapair/airlab/pkg/config"
)

// SchemaManager creates and migrates the tables of reports, lab results
// and notifications. Both operations are idempotent.
type SchemaManager interface {
	// Create creates the schema on an empty database.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate brings an existing schema to the latest version.
	Migrate(ctx context.Context, cfg *config.Config) error

	// HasTables reports whether the database already has tables.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables removes all tables before a fresh Create.
	DropAllTables(ctx context.Context) error
}
