/*
Copyright © 2025 The SIGAP Air Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/internal/iodb"
	"github.com/sigapair/airlab/internal/iofs"
	"github.com/sigapair/airlab/internal/ionotify"
	"github.com/sigapair/airlab/internal/ioschema"
	"github.com/sigapair/airlab/internal/iostore"
	"github.com/sigapair/airlab/pkg/analysis"
	"github.com/sigapair/airlab/pkg/config"
	"github.com/sigapair/airlab/pkg/lifecycle"
)

// backend bundles the storage, schema and notification parts selected by
// the configuration.
type backend struct {
	store    *iostore.Store
	schema   lifecycle.SchemaManager
	notifier lifecycle.Notifier
	closers  []func() error
}

// openBackend connects to the configured database. Notifiers are created
// lazily by withNotifier, schema commands do not need them.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	res := &backend{}

	switch cfg.Store.Driver {
	case "sqlite":
		if err := iofs.EnsureStoreDir(cfg); err != nil {
			return nil, err
		}
		path := cfg.SQLitePath()
		db, err := iostore.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		res.store = iostore.New(db, iostore.SQLite)
		res.schema = ioschema.NewSQLiteManager(db)
		res.closers = append(res.closers, db.Close)
		gn.Info("Using SQLite database <em>%s</em>", path)
	default:
		op := iodb.NewPgxOperator()
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			return nil, err
		}
		res.store = iostore.NewPostgres(op.Pool())
		res.schema = ioschema.NewManager(op)
		res.closers = append(res.closers, op.Close, res.store.Close)
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}

	return res, nil
}

// withNotifier sets up the notification transport of the configuration.
func (b *backend) withNotifier(cfg config.NotifyConfig) {
	db := ionotify.NewStoreNotifier(b.store)
	switch cfg.Transport {
	case "redis", "both":
		client := ionotify.NewRedisClient(cfg)
		b.closers = append(b.closers, client.Close)
		rd := ionotify.NewRedisNotifier(client, cfg.RedisStream)
		if cfg.Transport == "redis" {
			b.notifier = rd
			return
		}
		b.notifier = ionotify.Multi(db, rd)
	default:
		b.notifier = db
	}
}

// ready fails when the schema was not created yet.
func (b *backend) ready(ctx context.Context) error {
	ok, err := b.schema.HasTables(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return EmptySchemaError()
	}
	return nil
}

// service creates the analysis service on top of the backend.
func (b *backend) service(cfg *config.Config) *analysis.Service {
	if b.notifier == nil {
		b.withNotifier(cfg.Notify)
	}
	return analysis.New(b.store, b.store, b.notifier,
		analysis.OptLocation(cfg.Location()),
		analysis.OptJobs(cfg.JobsNumber),
	)
}

// Close releases connections in reverse order of opening.
func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			slog.Warn("Cannot close resource", "error", err)
		}
	}
}
