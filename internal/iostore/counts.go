package iostore

import (
	"context"
)

// Counts summarizes the content of the airlab tables.
type Counts struct {
	Reports       int64
	Analyzed      int64
	LabResults    int64
	Notifications int64
	// Partial is the number of reports with lab result rows but without
	// an overall_safety row.
	Partial int64
}

// Counts returns the number of rows of each airlab table.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var res Counts
	queries := []struct {
		dst   *int64
		query string
	}{
		{&res.Reports, "SELECT COUNT(*) FROM reports"},
		{&res.LabResults, "SELECT COUNT(*) FROM lab_results"},
		{&res.Notifications, "SELECT COUNT(*) FROM notifications"},
		{&res.Analyzed, `SELECT COUNT(*) FROM lab_results
	WHERE parameter = 'overall_safety'`},
		{&res.Partial, `SELECT COUNT(DISTINCT report_id) FROM lab_results
	WHERE report_id NOT IN (
		SELECT report_id FROM lab_results WHERE parameter = 'overall_safety'
	)`},
	}

	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dst); err != nil {
			return res, QueryError("table counts", err)
		}
	}
	return res, nil
}
