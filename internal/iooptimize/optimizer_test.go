package iooptimize_test

import (
	"context"
	"testing"
	"time"

	"github.com/sigapair/airlab/internal/iooptimize"
	"github.com/sigapair/airlab/internal/ioschema"
	"github.com/sigapair/airlab/internal/iostore"
	"github.com/sigapair/airlab/pkg/config"
	"github.com/sigapair/airlab/pkg/labresult"
	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/safety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)

func analyzed(id string) []labresult.ParameterRow {
	p := safety.RawParameters{BacteriaCount: safety.Float(10)}
	return labresult.EncodeAnalysis(id, p, safety.ScoreAt(p, now), "o", "pk", "", now)
}

func TestOptimize(t *testing.T) {
	ctx := context.Background()
	db, err := iostore.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, ioschema.NewSQLiteManager(db).Create(ctx, config.New()))
	s := iostore.New(db, iostore.SQLite)

	for _, id := range []string{"kept", "partial"} {
		require.NoError(t, s.AddReport(ctx, lifecycle.Report{
			ID: id, UserID: "u", Kecamatan: "Coblong", CreatedAt: now,
		}))
	}
	require.NoError(t, s.Replace(ctx, "kept", analyzed("kept")))
	require.NoError(t, s.Replace(ctx, "gone", analyzed("gone")))
	require.NoError(t, s.SaveNotification(ctx, lifecycle.Notification{
		ID: "n-gone", UserID: "u", ReportID: "gone", Title: "t", Message: "m",
		Type: lifecycle.Info, CreatedAt: now,
	}))

	// rows of an interrupted write without an overall_safety row
	_, err = db.ExecContext(ctx,
		`INSERT INTO lab_results (report_id, parameter, value, unit, status, tested_at)
		 VALUES ('partial', 'ph_level', '7.00', 'pH', 'aman', ?)`, now)
	require.NoError(t, err)

	require.NoError(t, iooptimize.NewOptimizer(s).Optimize(ctx, config.New()))

	got, err := s.ReadGrouped(ctx, []string{"kept", "gone", "partial"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Len(t, got["kept"], labresult.RowsPerBatch)

	notes, err := s.NotificationsForUser(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, notes)
}
