package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// NotConnectedError is returned when the PostgreSQL operator has no pool.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError is returned when GORM cannot use the pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open the schema tools on the database connection

<em>How to fix:</em>
  1. Check the database settings in ~/.config/airlab/config.yaml
  2. Run airlab -V and report the build if the problem stays`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError is returned when the airlab tables cannot be created.
func CreateSchemaError(err error) error {
	msg := `Cannot create the <em>reports</em>, <em>lab_results</em> and <em>notifications</em> tables

<em>How to fix:</em>
  1. Check that the database user may create tables
  2. Look at the database log for the failing statement
  3. Set store.driver to sqlite to work with a local file`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// MigrateSchemaError is returned when the schema cannot be updated.
func MigrateSchemaError(err error) error {
	msg := `Cannot update the database schema

<em>Possible causes:</em>
  - The database user may not alter tables
  - Duplicate (report_id, parameter) rows in lab_results block the unique index

<em>How to fix:</em>
  1. Back up lab_results
  2. Run airlab optimize, then analyze the affected reports again`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// TableListError is returned when SQLite tables cannot be listed.
func TableListError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Cannot list existing tables",
		Err:  fmt.Errorf("failed to list tables: %w", err),
	}
}

// DropTableError is returned when a table cannot be dropped.
func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Cannot drop table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
