package labresult

import (
	"context"
	"time"

	"github.com/sigapair/airlab/pkg/safety"
)

// Batch is the typed form of one analysis of a report.
type Batch struct {
	ReportID      string               `json:"report_id"`
	SchemaVersion int                  `json:"schema_version"`
	Params        safety.RawParameters `json:"parameters"`
	Verdict       safety.Verdict       `json:"verdict"`
	OfficerID     string               `json:"lab_officer"`
	PuskesmasID   string               `json:"puskesmas_id"`
	Notes         string               `json:"notes"`
	TestedAt      time.Time            `json:"tested_at"`
}

// Store persists analysis batches as parameter rows.
type Store interface {
	// Replace atomically swaps all rows of reportID for the given batch.
	// Readers never observe a partial batch. When Replace fails, the
	// previous batch of the report is left in place.
	Replace(ctx context.Context, reportID string, rows []ParameterRow) error

	// ReadGrouped returns rows of the given reports grouped by report ID.
	// Reports without rows are absent from the map. Order within a group
	// is not defined.
	ReadGrouped(
		ctx context.Context,
		reportIDs []string,
	) (map[string][]ParameterRow, error)
}
