// Package iooptimize implements the Optimizer interface. It cleans up
// rows left behind by deleted reports or interrupted writes and updates
// database statistics.
package iooptimize

import (
	"context"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/internal/iostore"
	"github.com/sigapair/airlab/pkg/config"
	"github.com/sigapair/airlab/pkg/lifecycle"
)

type optimizer struct {
	store *iostore.Store
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(s *iostore.Store) lifecycle.Optimizer {
	return &optimizer{store: s}
}

// Optimize runs 3 sequential steps:
//  1. Remove lab results and notifications of missing reports
//  2. Remove partial batches without an overall_safety row
//  3. Run VACUUM and ANALYZE
func (o *optimizer) Optimize(ctx context.Context, _ *config.Config) error {
	slog.Info("Starting database optimization")

	slog.Info("Step 1/3: Removing orphaned rows")
	msg, err := removeOrphans(ctx, o.store)
	if err != nil {
		return err
	}
	gn.Info(msg)

	slog.Info("Step 2/3: Removing partial batches")
	msg, err = removePartial(ctx, o.store)
	if err != nil {
		return err
	}
	gn.Info(msg)

	slog.Info("Step 3/3: Updating statistics")
	if err = vacuumAnalyze(ctx, o.store); err != nil {
		return err
	}

	slog.Info("Database optimization completed successfully")
	return nil
}
