package lifecycle

import "context"

// ReportRepository gives access to the reports of the portal.
type ReportRepository interface {
	// GetReport returns a report by its id.
	GetReport(ctx context.Context, id string) (Report, error)

	// GetReportsByArea returns reports of a kecamatan ordered by creation
	// time, newest first. An empty area returns reports of all areas.
	GetReportsByArea(ctx context.Context, area string) ([]Report, error)

	// UpdateStatus sets the status of a report.
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// Notifier hands a notification to the delivery transport. Delivery is
// best effort, callers log errors instead of failing.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
