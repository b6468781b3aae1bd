package ioschema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sigapair/airlab/pkg/config"
	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/schema"
)

type sqliteManager struct {
	db *sql.DB
}

// NewSQLiteManager creates a SchemaManager for an SQLite database.
func NewSQLiteManager(db *sql.DB) lifecycle.SchemaManager {
	return &sqliteManager{db: db}
}

// Create runs the generated DDL of all models in one transaction.
func (m *sqliteManager) Create(ctx context.Context, _ *config.Config) error {
	if err := m.exec(ctx, schema.DDL()); err != nil {
		return CreateSchemaError(err)
	}
	return nil
}

// Migrate creates missing tables and indexes and adds columns that
// appeared in newer model versions.
func (m *sqliteManager) Migrate(ctx context.Context, _ *config.Config) error {
	stmts := schema.DDL()
	for _, v := range schema.AllModels() {
		g := v.(schema.DDLGenerator)
		add, err := m.missingColumns(ctx, g.TableName(), v)
		if err != nil {
			return MigrateSchemaError(err)
		}
		stmts = append(stmts, add...)
	}

	if err := m.exec(ctx, stmts); err != nil {
		return MigrateSchemaError(err)
	}
	return nil
}

// HasTables reports whether the database has any user tables.
func (m *sqliteManager) HasTables(ctx context.Context) (bool, error) {
	tables, err := m.tables(ctx)
	if err != nil {
		return false, err
	}
	return len(tables) > 0, nil
}

// DropAllTables drops every user table.
func (m *sqliteManager) DropAllTables(ctx context.Context) error {
	tables, err := m.tables(ctx)
	if err != nil {
		return err
	}
	for _, t := range tables {
		q := fmt.Sprintf("DROP TABLE IF EXISTS %q", t)
		if _, err := m.db.ExecContext(ctx, q); err != nil {
			return DropTableError(t, err)
		}
	}
	return nil
}

func (m *sqliteManager) tables(ctx context.Context) ([]string, error) {
	q := `SELECT name FROM sqlite_master
	WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`
	rows, err := m.db.QueryContext(ctx, q)
	if err != nil {
		return nil, TableListError(err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, TableListError(err)
		}
		res = append(res, name)
	}
	if err := rows.Err(); err != nil {
		return nil, TableListError(err)
	}
	return res, nil
}

// missingColumns returns ALTER TABLE statements for columns of model
// that the existing table lacks. A table that does not exist yet needs
// none, CREATE TABLE covers it.
func (m *sqliteManager) missingColumns(
	ctx context.Context,
	table string,
	model any,
) ([]string, error) {
	rows, err := m.db.QueryContext(ctx,
		fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, nil
	}

	var res []string
	defs := schema.ColumnDefs(model)
	for _, col := range schema.Columns(model) {
		if existing[col] {
			continue
		}
		def := strings.Replace(defs[col], "PRIMARY KEY", "", 1)
		res = append(res,
			fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col, def))
	}
	return res, nil
}

func (m *sqliteManager) exec(ctx context.Context, stmts []string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("%s: %w", firstLine(q), err)
		}
	}
	return tx.Commit()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
