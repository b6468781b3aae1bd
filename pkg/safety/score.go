package safety

import (
	"time"
)

// Level is the three-way classification of a sample.
type Level string

const (
	Safe    Level = "safe"
	Warning Level = "warning"
	Danger  Level = "danger"
)

// Score thresholds for the safety levels.
const (
	SafeMinScore    = 80
	WarningMinScore = 60
	MaxScore        = 100
)

// Issue texts, reported in this order.
const (
	IssueBacteriaVeryHigh       = "bacteria very high"
	IssueBacteriaAboveLimit     = "bacteria above safe limit"
	IssueAbnormalPH             = "abnormal pH"
	IssueTooTurbid              = "too turbid"
	IssueLowDisinfectant        = "insufficient disinfectant"
	IssueExcessDisinfectant     = "excess disinfectant"
	IssueHeavyMetals            = "heavy metals detected"
	IssueFecalContamination     = "fecal contamination (E. coli)"
	IssueDissolvedSolidsTooHigh = "dissolved solids too high"
)

// Verdict is the outcome of scoring one sample.
type Verdict struct {
	Level      Level     `json:"safety_level"`
	Score      int       `json:"score"`
	Issues     []string  `json:"issues"`
	ComputedAt time.Time `json:"computed_at"`
}

type rule struct {
	applies   func(Measured) bool
	deduction int
	issue     string
}

// rules are evaluated in order. Bacteria and chlorine bands are exclusive
// within their parameter, so the second band checks that the first did
// not fire.
var rules = []rule{
	{func(m Measured) bool { return m.BacteriaCount > 1000 }, 40, IssueBacteriaVeryHigh},
	{func(m Measured) bool {
		return m.BacteriaCount > 100 && m.BacteriaCount <= 1000
	}, 20, IssueBacteriaAboveLimit},
	{func(m Measured) bool { return m.PHLevel < 6.5 || m.PHLevel > 8.5 }, 15, IssueAbnormalPH},
	{func(m Measured) bool { return m.Turbidity > 5 }, 10, IssueTooTurbid},
	{func(m Measured) bool { return m.Chlorine < 0.2 }, 10, IssueLowDisinfectant},
	{func(m Measured) bool { return m.Chlorine > 0.5 }, 5, IssueExcessDisinfectant},
	{func(m Measured) bool { return m.HeavyMetals }, 30, IssueHeavyMetals},
	{func(m Measured) bool { return m.EColiPresent }, 25, IssueFecalContamination},
	{func(m Measured) bool { return m.TotalDissolvedSolids > 500 }, 10, IssueDissolvedSolidsTooHigh},
}

// Score computes the verdict for p, stamped with the current time.
func Score(p RawParameters) Verdict {
	return ScoreAt(p, time.Now())
}

// ScoreAt computes the verdict for p. Absent values are scored as
// Baseline. Identical inputs always give identical level, score and issues.
func ScoreAt(p RawParameters, now time.Time) Verdict {
	m := p.WithDefaults()
	score := MaxScore
	issues := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.applies(m) {
			score -= r.deduction
			issues = append(issues, r.issue)
		}
	}
	if score < 0 {
		score = 0
	}

	return Verdict{
		Level:      LevelFromScore(score),
		Score:      score,
		Issues:     issues,
		ComputedAt: now,
	}
}

// LevelFromScore discretizes a score into a safety level.
func LevelFromScore(score int) Level {
	switch {
	case score >= SafeMinScore:
		return Safe
	case score >= WarningMinScore:
		return Warning
	default:
		return Danger
	}
}

// IsValid reports whether l is one of the known levels.
func (l Level) IsValid() bool {
	switch l {
	case Safe, Warning, Danger:
		return true
	}
	return false
}
