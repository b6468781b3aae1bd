package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// OpenError is returned when an SQLite database cannot be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open SQLite database <em>%s</em>

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Set store.sqlite_path in ~/.config/airlab/config.yaml`

	vars := []any{path}
	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open sqlite %s: %w", path, err),
	}
}

// BeginError is returned when a transaction for a report cannot start.
func BeginError(reportID string, err error) error {
	msg := "Cannot start saving lab results of report <em>%s</em>"
	vars := []any{reportID}
	return &gn.Error{
		Code: errcode.StoreBeginError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("begin transaction for %s: %w", reportID, err),
	}
}

// DeleteError is returned when old rows of a report cannot be removed.
func DeleteError(reportID string, err error) error {
	msg := "Cannot remove previous lab results of report <em>%s</em>"
	vars := []any{reportID}
	return &gn.Error{
		Code: errcode.StoreDeleteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("delete lab results of %s: %w", reportID, err),
	}
}

// InsertError is returned when new rows of a report cannot be written.
func InsertError(reportID string, err error) error {
	msg := "Cannot save lab results of report <em>%s</em>"
	vars := []any{reportID}
	return &gn.Error{
		Code: errcode.StoreInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("insert lab results of %s: %w", reportID, err),
	}
}

// CommitError is returned when the transaction of a report fails to
// commit.
func CommitError(reportID string, err error) error {
	msg := "Cannot commit lab results of report <em>%s</em>"
	vars := []any{reportID}
	return &gn.Error{
		Code: errcode.StoreCommitError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("commit lab results of %s: %w", reportID, err),
	}
}

// QueryError is returned when reading from a table fails.
func QueryError(what string, err error) error {
	msg := "Cannot read <em>%s</em> from the database"
	vars := []any{what}
	return &gn.Error{
		Code: errcode.StoreQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("query %s: %w", what, err),
	}
}

// ReportNotFoundError is returned for an unknown report id.
func ReportNotFoundError(id string) error {
	msg := "Report <em>%s</em> does not exist"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.StoreReportNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("report %s not found", id),
	}
}

// UpdateStatusError is returned when the status of a report cannot be
// changed.
func UpdateStatusError(id string, err error) error {
	msg := "Cannot update status of report <em>%s</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.StoreUpdateStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("update status of %s: %w", id, err),
	}
}

// NotificationError is returned when a notification cannot be saved or
// read.
func NotificationError(id string, err error) error {
	msg := "Cannot store notification <em>%s</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.StoreNotificationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("notification %s: %w", id, err),
	}
}

// ReportError is returned when a report cannot be saved.
func ReportError(id string, err error) error {
	msg := "Cannot save report <em>%s</em>"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.StoreInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("insert report %s: %w", id, err),
	}
}
