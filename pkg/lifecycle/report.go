// Package lifecycle describes what a completed lab analysis does to its
// report: the status transition and the notification sent to the
// submitter. It also holds the contracts of the collaborators that
// persist reports, deliver notifications and manage the database schema.
package lifecycle

import "time"

// Status is the processing state of a citizen report.
type Status string

const (
	Pending  Status = "pending"
	Diproses Status = "diproses"
	Selesai  Status = "selesai"
	Ditolak  Status = "ditolak"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case Pending, Diproses, Selesai, Ditolak:
		return true
	}
	return false
}

// CanFinish reports whether a lab analysis may move a report with this
// status to Selesai. Rejected reports stay rejected. A finished report
// may be analyzed again.
func (s Status) CanFinish() bool {
	switch s {
	case Pending, Diproses, Selesai:
		return true
	}
	return false
}

// Report is a citizen water-quality report. Reports are owned by the
// portal; the engine reads them and moves them to Selesai.
type Report struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PuskesmasID string    `json:"puskesmas_id"`
	Kecamatan   string    `json:"kecamatan"`
	Location    string    `json:"location"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationType sets the tone of a notification.
type NotificationType string

const (
	Info    NotificationType = "info"
	Warning NotificationType = "warning"
	Urgent  NotificationType = "urgent"
)

// Notification is the payload handed to the delivery transport.
type Notification struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	PuskesmasID string           `json:"puskesmas_id"`
	ReportID    string           `json:"report_id"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
