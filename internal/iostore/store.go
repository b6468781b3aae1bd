// Package iostore keeps reports, lab result rows and notifications in a
// SQL database. It implements labresult.Store and
// lifecycle.ReportRepository for PostgreSQL and SQLite.
package iostore

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect is the SQL flavor of the database.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// String returns the driver name of the dialect.
func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// Store is a SQL backed store. It is safe for concurrent use.
type Store struct {
	db      *sql.DB
	dialect Dialect
	locks   *keyedMutex
}

// New wraps an open database.
func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, dialect: d, locks: newKeyedMutex()}
}

// NewPostgres creates a store on top of a pgx connection pool.
func NewPostgres(pool *pgxpool.Pool) *Store {
	return New(stdlib.OpenDBFromPool(pool), Postgres)
}

// OpenSQLite opens an SQLite database file, ":memory:" for a private
// in-memory database.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, OpenError(path, err)
	}
	// SQLite allows one writer, a single connection also keeps an
	// in-memory database alive between calls.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, OpenError(path, err)
	}
	return db, nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the SQL flavor of the store.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// rebind converts ? placeholders to $n for PostgreSQL.
func (s *Store) rebind(q string) string {
	if s.dialect != Postgres {
		return q
	}
	var b strings.Builder
	b.Grow(len(q) + 16)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}
