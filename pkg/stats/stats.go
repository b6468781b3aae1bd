// Package stats rolls analyzed reports up into area-wide water quality
// statistics, daily report counts and the most reported locations.
package stats

import (
	"time"

	"github.com/sigapair/airlab/pkg/lifecycle"
)

// DefaultProblemAreas is the number of locations returned by
// ProblemAreas when no limit is given.
const DefaultProblemAreas = 5

// TrendDays is the length of the trend series.
const TrendDays = 7

// Window is a half-open time interval [Start, End). A zero Start or End
// leaves that side unbounded.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}
	return true
}

// Query selects the reports that take part in a summary.
type Query struct {
	// Area is the kecamatan of the reports, empty for all areas.
	Area   string `json:"area"`
	Window Window `json:"window"`
}

// Match reports whether r belongs to the query.
func (q Query) Match(r lifecycle.Report) bool {
	if q.Area != "" && r.Kecamatan != q.Area {
		return false
	}
	return q.Window.Contains(r.CreatedAt)
}

// Summary is the share of analyzed reports at each safety level.
// Percentages are rounded independently and may not add up to 100.
type Summary struct {
	GoodPct    int `json:"good_pct"`
	WarningPct int `json:"warning_pct"`
	DangerPct  int `json:"danger_pct"`
	Total      int `json:"total"`

	Good    int `json:"good"`
	Warning int `json:"warning"`
	Danger  int `json:"danger"`
}

// DayCount is the number of reports created on one local day.
type DayCount struct {
	Day   time.Time `json:"day"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// AreaCount is the number of reports of one location.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// Dashboard collects everything shown on an area dashboard.
type Dashboard struct {
	Query        Query       `json:"query"`
	Summary      Summary     `json:"summary"`
	Trend        []DayCount  `json:"trend"`
	ProblemAreas []AreaCount `json:"problem_areas"`
	Unanalyzed   int         `json:"unanalyzed"`
}
