package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/sigapair/airlab/internal/iostore"
)

// vacuumAnalyze reclaims space and updates query planner statistics.
// VACUUM cannot run inside a transaction block.
func vacuumAnalyze(ctx context.Context, s *iostore.Store) error {
	timeStart := time.Now()

	stmts := []string{"VACUUM ANALYZE"}
	if s.Dialect() == iostore.SQLite {
		stmts = []string{"VACUUM", "ANALYZE"}
	}
	for _, q := range stmts {
		if _, err := s.DB().ExecContext(ctx, q); err != nil {
			slog.Error("Failed to run "+q, "error", err)
			return VacuumError(q, err)
		}
	}

	slog.Info("VACUUM ANALYZE completed",
		"duration", gnfmt.TimeString(time.Since(timeStart).Seconds()))
	return nil
}
