package labresult

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// ValueError is returned when a stored value cannot be parsed.
func ValueError(reportID, param, val string, err error) error {
	msg := "Cannot read value <em>%s</em> of <em>%s</em> for report %s"
	vars := []any{val, param, reportID}
	return &gn.Error{
		Code: errcode.DecodeValueError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("report %s: bad %s value %q: %w",
			reportID, param, val, err),
	}
}

// StatusError is returned for an unknown status of the overall row.
func StatusError(reportID, status string) error {
	msg := "Unknown safety status <em>%s</em> for report %s"
	vars := []any{status, reportID}
	return &gn.Error{
		Code: errcode.DecodeValueError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("report %s: unknown status %q", reportID, status),
	}
}

// DuplicateRowError is returned when a parameter occurs twice in a batch.
func DuplicateRowError(reportID, param string) error {
	msg := "Parameter <em>%s</em> occurs more than once for report %s"
	vars := []any{param, reportID}
	return &gn.Error{
		Code: errcode.BatchShapeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("report %s: duplicate %s row", reportID, param),
	}
}

// BatchSizeError is returned when a batch does not have exactly
// RowsPerBatch rows.
func BatchSizeError(reportID string, n int) error {
	msg := "Analysis of report %s must have %d rows, got %d"
	vars := []any{reportID, RowsPerBatch, n}
	return &gn.Error{
		Code: errcode.BatchShapeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("report %s: expected %d rows, got %d",
			reportID, RowsPerBatch, n),
	}
}

// ForeignRowError is returned when a batch contains a row of another
// report.
func ForeignRowError(reportID, other string) error {
	msg := "Analysis of report %s contains a row of report %s"
	vars := []any{reportID, other}
	return &gn.Error{
		Code: errcode.BatchShapeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("report %s: row belongs to %s", reportID, other),
	}
}

// UnknownParameterError is returned for rows with unknown parameter names.
func UnknownParameterError(reportID, param string) error {
	msg := "Unknown parameter <em>%s</em> in analysis of report %s"
	vars := []any{param, reportID}
	return &gn.Error{
		Code: errcode.BatchShapeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("report %s: unknown parameter %q", reportID, param),
	}
}

// MixedTimestampError is returned when rows of one batch have different
// tested_at values.
func MixedTimestampError(reportID string) error {
	msg := "Rows of the analysis of report %s have different test times"
	vars := []any{reportID}
	return &gn.Error{
		Code: errcode.BatchShapeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("report %s: mixed tested_at", reportID),
	}
}
