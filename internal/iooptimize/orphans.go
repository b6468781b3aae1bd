package iooptimize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/sigapair/airlab/internal/iostore"
)

// removeOrphans deletes lab results and notifications whose report does
// not exist. Uses the LEFT OUTER JOIN pattern that works on PostgreSQL
// and SQLite alike.
func removeOrphans(ctx context.Context, s *iostore.Store) (string, error) {
	queries := []struct {
		table string
		query string
	}{
		{"lab_results", `
DELETE FROM lab_results
WHERE report_id IN (
	SELECT lr.report_id
	FROM lab_results lr
	LEFT OUTER JOIN reports r
		ON lr.report_id = r.id
	WHERE r.id IS NULL
)`},
		{"notifications", `
DELETE FROM notifications
WHERE id IN (
	SELECT n.id
	FROM notifications n
	LEFT OUTER JOIN reports r
		ON n.report_id = r.id
	WHERE r.id IS NULL
)`},
	}

	var total int64
	for _, q := range queries {
		count, err := exec(ctx, s, q.query)
		if err != nil {
			return "", OrphanRemovalError(q.table, err)
		}
		slog.Info("Removed orphan rows", "table", q.table, "count", count)
		total += count
	}

	msg := "<em>No orphaned records found</em>"
	if total > 0 {
		msg = fmt.Sprintf(
			"<em>Removed %s orphaned records</em>",
			humanize.Comma(total),
		)
	}
	return msg, nil
}

// removePartial deletes rows of reports that have no overall_safety row.
// Such rows never decode to an analysis and only appear after a write
// was interrupted outside of a transaction.
func removePartial(ctx context.Context, s *iostore.Store) (string, error) {
	query := `
DELETE FROM lab_results
WHERE report_id NOT IN (
	SELECT report_id
	FROM lab_results
	WHERE parameter = 'overall_safety'
)`
	count, err := exec(ctx, s, query)
	if err != nil {
		return "", OrphanRemovalError("lab_results", err)
	}
	slog.Info("Removed partial batches", "rows", count)

	if count == 0 {
		return "<em>No partial analyses found</em>", nil
	}
	return fmt.Sprintf(
		"<em>Removed %s rows of partial analyses</em>",
		humanize.Comma(count),
	), nil
}

func exec(ctx context.Context, s *iostore.Store, query string) (int64, error) {
	res, err := s.DB().ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
