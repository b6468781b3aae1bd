package iostore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sigapair/airlab/pkg/labresult"
	"github.com/sigapair/airlab/pkg/schema"
)

// readChunk limits the number of ids in one IN clause.
const readChunk = 500

var labResultCols = schema.Columns(schema.LabResult{})

// Replace swaps all rows of reportID for rows in one transaction.
// Calls for the same report are serialized in this process, and on
// PostgreSQL also across processes by a transaction-level advisory lock.
// On any failure the transaction is rolled back and the previous rows of
// the report stay in place.
func (s *Store) Replace(
	ctx context.Context,
	reportID string,
	rows []labresult.ParameterRow,
) (err error) {
	if err = labresult.ValidateRows(reportID, rows); err != nil {
		return err
	}

	unlock := s.locks.Lock(reportID)
	defer unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BeginError(reportID, err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("Rollback failed", "report_id", reportID, "error", rbErr)
		}
	}()

	if s.dialect == Postgres {
		q := "SELECT pg_advisory_xact_lock(hashtext($1))"
		if _, err = tx.ExecContext(ctx, q, reportID); err != nil {
			return BeginError(reportID, err)
		}
	}

	q := s.rebind("DELETE FROM lab_results WHERE report_id = ?")
	if _, err = tx.ExecContext(ctx, q, reportID); err != nil {
		return DeleteError(reportID, err)
	}

	q, args := s.insertRows(rows)
	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		return InsertError(reportID, err)
	}

	if err = tx.Commit(); err != nil {
		return CommitError(reportID, err)
	}

	slog.Debug("Lab results replaced", "report_id", reportID, "rows", len(rows))
	return nil
}

func (s *Store) insertRows(rows []labresult.ParameterRow) (string, []any) {
	row := "(" + placeholders(len(labResultCols)) + ")"
	values := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(labResultCols))
	for i, r := range rows {
		values[i] = row
		args = append(args,
			r.ReportID,
			r.Parameter,
			r.Value,
			r.Unit,
			string(r.Status),
			r.TestedAt.UTC(),
			r.LabOfficer,
			r.Notes,
			r.PuskesmasID,
			r.SchemaVersion,
		)
	}

	q := fmt.Sprintf("INSERT INTO lab_results (%s) VALUES %s",
		strings.Join(labResultCols, ", "),
		strings.Join(values, ", "),
	)
	return s.rebind(q), args
}

// ReadGrouped returns the rows of the given reports grouped by report
// id. Reports without rows are absent from the result.
func (s *Store) ReadGrouped(
	ctx context.Context,
	reportIDs []string,
) (map[string][]labresult.ParameterRow, error) {
	res := make(map[string][]labresult.ParameterRow)
	for start := 0; start < len(reportIDs); start += readChunk {
		end := min(start+readChunk, len(reportIDs))
		if err := s.readChunk(ctx, reportIDs[start:end], res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *Store) readChunk(
	ctx context.Context,
	ids []string,
	res map[string][]labresult.ParameterRow,
) error {
	q := fmt.Sprintf(
		"SELECT %s FROM lab_results WHERE report_id IN (%s)",
		strings.Join(labResultCols, ", "),
		placeholders(len(ids)),
	)
	args := make([]any, len(ids))
	for i := range ids {
		args[i] = ids[i]
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(q), args...)
	if err != nil {
		return QueryError("lab_results", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r      labresult.ParameterRow
			status string
			tested sqlTime
		)
		err = rows.Scan(
			&r.ReportID,
			&r.Parameter,
			&r.Value,
			&r.Unit,
			&status,
			&tested,
			&r.LabOfficer,
			&r.Notes,
			&r.PuskesmasID,
			&r.SchemaVersion,
		)
		if err != nil {
			return QueryError("lab_results", err)
		}
		r.Status = labresult.Status(status)
		r.TestedAt = tested.Time
		res[r.ReportID] = append(res[r.ReportID], r)
	}
	if err = rows.Err(); err != nil {
		return QueryError("lab_results", err)
	}
	return nil
}
