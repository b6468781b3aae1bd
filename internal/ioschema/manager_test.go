package ioschema_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sigapair/airlab/internal/iodb"
	"github.com/sigapair/airlab/internal/ioschema"
	"github.com/sigapair/airlab/internal/iotesting"
	"github.com/sigapair/airlab/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// TestManager_NotConnected verifies that the PostgreSQL manager needs a
// connected operator.
func TestManager_NotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewPgxOperator())
	err := mgr.Create(context.Background(), config.New())
	assert.Error(t, err)
}

func TestManager_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.DropAllTables(ctx))
	require.NoError(t, mgr.Create(ctx, cfg))
	require.NoError(t, mgr.Migrate(ctx, cfg))

	for _, table := range []string{"reports", "lab_results", "notifications"} {
		ok, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, ok, table)
	}
}

func openSQLite(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteManager_CreateMigrate(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	mgr := ioschema.NewSQLiteManager(db)

	has, err := mgr.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, mgr.Create(ctx, nil))
	has, err = mgr.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	// idempotent
	require.NoError(t, mgr.Migrate(ctx, nil))
	require.NoError(t, mgr.Migrate(ctx, nil))

	_, err = db.ExecContext(ctx, `INSERT INTO lab_results
	(report_id, parameter, status, tested_at) VALUES
	('r', 'ph_level', 'aman', '2025-01-01 00:00:00')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO lab_results
	(report_id, parameter, status, tested_at) VALUES
	('r', 'ph_level', 'aman', '2025-01-01 00:00:00')`)
	assert.Error(t, err, "unique (report_id, parameter)")

	require.NoError(t, mgr.DropAllTables(ctx))
	has, err = mgr.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSQLiteManager_MigrateAddsColumns(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	// lab_results of the first row layout, without schema_version
	_, err := db.ExecContext(ctx, `CREATE TABLE lab_results (
		report_id VARCHAR(64) NOT NULL,
		parameter VARCHAR(50) NOT NULL,
		value VARCHAR(50) NOT NULL DEFAULT '',
		unit VARCHAR(20) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL,
		tested_at TIMESTAMP NOT NULL,
		lab_officer VARCHAR(64) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		puskesmas_id VARCHAR(64) NOT NULL DEFAULT '')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO lab_results
	(report_id, parameter, status, tested_at) VALUES
	('old', 'overall_safety', 'aman', '2024-01-01 00:00:00')`)
	require.NoError(t, err)

	mgr := ioschema.NewSQLiteManager(db)
	require.NoError(t, mgr.Migrate(ctx, nil))

	var version int
	err = db.QueryRowContext(ctx,
		"SELECT schema_version FROM lab_results WHERE report_id = 'old'").
		Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}
