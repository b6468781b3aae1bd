package iostore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/schema"
)

var reportCols = schema.Columns(schema.Report{})

// AddReport inserts a new report. Reports normally come from the portal,
// the method serves imports and local testing.
func (s *Store) AddReport(ctx context.Context, r lifecycle.Report) error {
	if r.Status == "" {
		r.Status = lifecycle.Pending
	}
	q := fmt.Sprintf("INSERT INTO reports (%s) VALUES (%s)",
		strings.Join(reportCols, ", "), placeholders(len(reportCols)))
	_, err := s.db.ExecContext(ctx, s.rebind(q),
		r.ID,
		r.UserID,
		r.PuskesmasID,
		r.Kecamatan,
		r.Location,
		string(r.Status),
		r.CreatedAt.UTC(),
	)
	if err != nil {
		return ReportError(r.ID, err)
	}
	return nil
}

// GetReport returns the report with the given id.
func (s *Store) GetReport(ctx context.Context, id string) (lifecycle.Report, error) {
	q := fmt.Sprintf("SELECT %s FROM reports WHERE id = ?",
		strings.Join(reportCols, ", "))
	row := s.db.QueryRowContext(ctx, s.rebind(q), id)
	res, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return res, ReportNotFoundError(id)
	}
	if err != nil {
		return res, QueryError("reports", err)
	}
	return res, nil
}

// GetReportsByArea returns reports of a kecamatan, newest first. An empty
// area returns reports of all areas.
func (s *Store) GetReportsByArea(
	ctx context.Context,
	area string,
) ([]lifecycle.Report, error) {
	q := fmt.Sprintf("SELECT %s FROM reports", strings.Join(reportCols, ", "))
	var args []any
	if area != "" {
		q += " WHERE kecamatan = ?"
		args = append(args, area)
	}
	q += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, s.rebind(q), args...)
	if err != nil {
		return nil, QueryError("reports", err)
	}
	defer rows.Close()

	var res []lifecycle.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, QueryError("reports", err)
		}
		res = append(res, r)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("reports", err)
	}
	return res, nil
}

// UpdateStatus sets the status of a report.
func (s *Store) UpdateStatus(
	ctx context.Context,
	id string,
	status lifecycle.Status,
) error {
	q := s.rebind("UPDATE reports SET status = ? WHERE id = ?")
	res, err := s.db.ExecContext(ctx, q, string(status), id)
	if err != nil {
		return UpdateStatusError(id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return UpdateStatusError(id, err)
	}
	if n == 0 {
		return ReportNotFoundError(id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (lifecycle.Report, error) {
	var (
		r       lifecycle.Report
		status  string
		created sqlTime
	)
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.PuskesmasID,
		&r.Kecamatan,
		&r.Location,
		&status,
		&created,
	)
	if err != nil {
		return r, err
	}
	r.Status = lifecycle.Status(status)
	r.CreatedAt = created.Time
	return r, nil
}
