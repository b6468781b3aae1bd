// Package labresult converts lab analyses to and from the narrow
// parameter rows used for storage and interchange.
//
// One analysis (a Batch) is stored as exactly eight rows: one per
// measured parameter plus the synthetic overall_safety row that carries
// the score, the status and the technician notes. Field and parameter
// names are shared with exports and dashboards and must stay stable.
package labresult

import (
	"time"

	"github.com/sigapair/airlab/pkg/safety"
)

// SchemaVersion is written to every row produced by Encode.
const SchemaVersion = 2

// OverallSafety is the sentinel parameter of the summary row.
const OverallSafety = "overall_safety"

// RowsPerBatch is the number of rows of one encoded analysis.
const RowsPerBatch = 8

// Status is the row-level flag of a parameter row.
type Status string

const (
	Aman    Status = "aman"
	Warning Status = "warning"
	Bahaya  Status = "bahaya"
)

// ParameterRow is one persisted (parameter, value) fact of an analysis.
type ParameterRow struct {
	ReportID      string    `json:"report_id"`
	Parameter     string    `json:"parameter"`
	Value         string    `json:"value"`
	Unit          string    `json:"unit"`
	Status        Status    `json:"status"`
	TestedAt      time.Time `json:"tested_at"`
	LabOfficer    string    `json:"lab_officer"`
	Notes         string    `json:"notes"`
	PuskesmasID   string    `json:"puskesmas_id"`
	SchemaVersion int       `json:"schema_version"`
}

// StatusFromLevel maps a safety level to a row status.
func StatusFromLevel(l safety.Level) Status {
	switch l {
	case safety.Safe:
		return Aman
	case safety.Warning:
		return Warning
	default:
		return Bahaya
	}
}

// LevelFromStatus is the inverse of StatusFromLevel.
func LevelFromStatus(s Status) (safety.Level, bool) {
	switch s {
	case Aman:
		return safety.Safe, true
	case Warning:
		return safety.Warning, true
	case Bahaya:
		return safety.Danger, true
	}
	return "", false
}

// units of the persisted parameters.
var units = map[string]string{
	string(safety.BacteriaCount):        "CFU/mL",
	string(safety.PHLevel):              "pH",
	string(safety.Turbidity):            "NTU",
	string(safety.Chlorine):             "mg/L",
	string(safety.TotalDissolvedSolids): "mg/L",
	string(safety.HeavyMetals):          "",
	string(safety.EColiPresent):         "",
	OverallSafety:                       "score",
}

// precision is the number of decimals kept for numeric parameters.
var precision = map[safety.Parameter]int{
	safety.BacteriaCount:        0,
	safety.PHLevel:              2,
	safety.Turbidity:            1,
	safety.Chlorine:             2,
	safety.TotalDissolvedSolids: 0,
}

// Unit returns the unit stored for a parameter name.
func Unit(parameter string) string {
	return units[parameter]
}

// Precision returns the number of decimals stored for a numeric
// parameter.
func Precision(p safety.Parameter) int {
	return precision[p]
}

// RowStatus computes the informational status of a single numeric
// parameter. It is independent of the aggregate verdict.
func RowStatus(p safety.Parameter, v float64) Status {
	switch p {
	case safety.BacteriaCount:
		switch {
		case v > 1000:
			return Bahaya
		case v > 100:
			return Warning
		}
	case safety.PHLevel:
		if v < 6.5 || v > 8.5 {
			return Warning
		}
	case safety.Turbidity:
		if v > 5 {
			return Warning
		}
	case safety.Chlorine:
		if v < 0.2 || v > 0.5 {
			return Warning
		}
	case safety.TotalDissolvedSolids:
		if v > 500 {
			return Warning
		}
	}
	return Aman
}

// FlagStatus computes the status of a boolean parameter.
func FlagStatus(b bool) Status {
	if b {
		return Bahaya
	}
	return Aman
}
