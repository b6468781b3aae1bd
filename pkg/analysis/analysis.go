// Package analysis runs a lab analysis of a citizen report from raw
// measurements to a stored batch, a finished report and a notification
// for its submitter. It also builds area dashboards from stored batches.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/sigapair/airlab/pkg/labresult"
	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/safety"
)

// Status is the result class of an analysis.
type Status string

const (
	// Success means the batch is stored, the report is finished and the
	// submitter was notified.
	Success Status = "success"

	// Partial means the batch is stored and the report is finished, but
	// the notification was not delivered.
	Partial Status = "partial"

	// Failure means the report was not finished and nobody was notified.
	// When Batch is set the new lab results were stored before the
	// failure; resending the request replaces them.
	Failure Status = "failure"
)

// Request is one analysis submitted by a lab officer.
type Request struct {
	ReportID    string
	Params      safety.RawParameters
	OfficerID   string
	PuskesmasID string
	Notes       string
}

// Outcome describes what an analysis did.
type Outcome struct {
	ReportID     string                   `json:"report_id"`
	Status       Status                   `json:"status"`
	Verdict      safety.Verdict           `json:"verdict"`
	Batch        []labresult.ParameterRow `json:"-"`
	Notification *lifecycle.Notification  `json:"notification,omitempty"`

	// Warnings are problems that did not stop the analysis.
	Warnings []string `json:"warnings,omitempty"`

	// Err is the cause of a failure or of a partial result.
	Err error `json:"-"`

	// Retryable is true when repeating the same request may succeed.
	Retryable bool `json:"retryable"`
}

// Service runs analyses against a store, a report repository and a
// notifier.
type Service struct {
	store    labresult.Store
	reports  lifecycle.ReportRepository
	notifier lifecycle.Notifier

	clock func() time.Time
	loc   *time.Location
	jobs  int
}

// New creates a Service.
func New(
	store labresult.Store,
	reports lifecycle.ReportRepository,
	notifier lifecycle.Notifier,
	opts ...Option,
) *Service {
	res := &Service{
		store:    store,
		reports:  reports,
		notifier: notifier,
		clock:    time.Now,
		loc:      time.Local,
		jobs:     1,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Analyze scores the request, replaces the stored batch of the report,
// marks the report selesai and notifies its submitter.
//
// Storing is idempotent, so a failed request can be resent as a whole.
// A notification failure does not undo the analysis and gives a Partial
// outcome.
func (s *Service) Analyze(ctx context.Context, req Request) Outcome {
	res := Outcome{ReportID: req.ReportID, Status: Failure}
	log := slog.With("report_id", req.ReportID)

	if err := safety.Validate(req.Params); err != nil {
		log.Info("Analysis rejected", "field", safety.InvalidField(err), "error", err)
		res.Err = err
		return res
	}

	report, err := s.reports.GetReport(ctx, req.ReportID)
	if err != nil {
		log.Error("Cannot load report", "error", err)
		res.Err = err
		res.Retryable = IsRetryable(err)
		return res
	}
	if !report.Status.CanFinish() {
		log.Info("Analysis rejected", "report_status", report.Status)
		res.Err = ReportStatusError(report.ID, report.Status)
		return res
	}

	// score what is stored, so a decoded batch agrees with its verdict
	params := labresult.Round(req.Params)
	now := s.clock().UTC().Truncate(time.Microsecond)
	verdict := safety.ScoreAt(params, now)
	res.Verdict = verdict
	for _, v := range params.Missing() {
		res.Warnings = append(res.Warnings, NotMeasuredWarning(v))
	}

	rows := labresult.EncodeAnalysis(
		req.ReportID, params, verdict,
		req.OfficerID, req.PuskesmasID, req.Notes, now,
	)
	if err = s.store.Replace(ctx, req.ReportID, rows); err != nil {
		log.Error("Cannot store lab results", "error", err)
		res.Err = err
		res.Retryable = true
		return res
	}
	res.Batch = rows

	tr := lifecycle.Finalize(report, verdict, now)
	if err = s.reports.UpdateStatus(ctx, req.ReportID, tr.NewStatus); err != nil {
		log.Error("Cannot update report status", "error", err)
		res.Err = err
		res.Retryable = true
		return res
	}

	res.Status = Success
	res.Notification = &tr.Notification
	if err = s.notifier.Notify(ctx, tr.Notification); err != nil {
		log.Warn("Notification not delivered",
			"notification_id", tr.Notification.ID, "error", err)
		res.Status = Partial
		res.Err = err
		res.Retryable = true
		res.Warnings = append(res.Warnings, NotifyWarning(err))
	}

	log.Info("Analysis finished",
		"status", res.Status,
		"score", verdict.Score,
		"level", verdict.Level,
		"not_measured", len(params.Missing()),
	)
	return res
}

// Result returns the stored batch of a report. It returns
// labresult.ErrNoAnalysis when the report was not analyzed yet.
func (s *Service) Result(ctx context.Context, reportID string) (labresult.Batch, error) {
	var res labresult.Batch
	if _, err := s.reports.GetReport(ctx, reportID); err != nil {
		return res, err
	}

	rows, err := s.store.ReadGrouped(ctx, []string{reportID})
	if err != nil {
		return res, err
	}
	return labresult.Decode(rows[reportID])
}
