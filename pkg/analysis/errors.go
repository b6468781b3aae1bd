package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/safety"
)

var retryable = map[gn.ErrorCode]bool{
	errcode.DBConnectionError:      true,
	errcode.DBNotConnectedError:    true,
	errcode.StoreBeginError:        true,
	errcode.StoreDeleteError:       true,
	errcode.StoreInsertError:       true,
	errcode.StoreCommitError:       true,
	errcode.StoreQueryError:        true,
	errcode.StoreUpdateStatusError: true,
	errcode.StoreNotificationError: true,
	errcode.NotifyPublishError:     true,
}

// IsRetryable reports whether an operation that failed with err may
// succeed when repeated. Validation errors and unknown reports are not
// retryable, persistence and delivery errors are.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return retryable[gnErr.Code]
	}
	return false
}

// NotMeasuredWarning describes a parameter scored with its baseline value.
func NotMeasuredWarning(p safety.Parameter) string {
	return fmt.Sprintf("%s was not measured, baseline value used", p)
}

// NotifyWarning describes a notification that was not delivered.
func NotifyWarning(err error) string {
	return fmt.Sprintf("notification not delivered: %v", err)
}

// ReportStatusError is returned for a report that may not be finished,
// such as a rejected one.
func ReportStatusError(id string, st lifecycle.Status) error {
	msg := "Report %s has status <em>%s</em> and cannot be analyzed"
	return &gn.Error{
		Code: errcode.ReportStatusError,
		Msg:  msg,
		Vars: []any{id, string(st)},
		Err:  fmt.Errorf("report %s: cannot finish from status %q", id, st),
	}
}
