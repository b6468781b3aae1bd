// Package ioschema implements the lifecycle.SchemaManager interface.
// PostgreSQL schemas are managed by GORM AutoMigrate, SQLite schemas by
// the DDL generated from the same models.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sigapair/airlab/pkg/config"
	"github.com/sigapair/airlab/pkg/db"
	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a SchemaManager for PostgreSQL.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the schema using GORM AutoMigrate.
func (m *manager) Create(
	ctx context.Context,
	_ *config.Config,
) error {
	gormDB, err := m.gorm(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}
	return nil
}

// Migrate updates the schema to the latest version using GORM
// AutoMigrate. New tables, columns and indexes are added, nothing is
// dropped.
func (m *manager) Migrate(
	ctx context.Context,
	_ *config.Config,
) error {
	gormDB, err := m.gorm(ctx)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}
	return nil
}

// HasTables delegates to the operator.
func (m *manager) HasTables(ctx context.Context) (bool, error) {
	return m.operator.HasTables(ctx)
}

// DropAllTables delegates to the operator.
func (m *manager) DropAllTables(ctx context.Context) error {
	return m.operator.DropAllTables(ctx)
}

func (m *manager) gorm(ctx context.Context) (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB.WithContext(ctx), nil
}
