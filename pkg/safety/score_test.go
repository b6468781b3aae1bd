package safety_test

import (
	"testing"
	"time"

	"github.com/sigapair/airlab/pkg/safety"
	"github.com/stretchr/testify/assert"
)

func sample(
	bacteria, ph, turbidity, chlorine float64,
	metals, ecoli bool,
	tds float64,
) safety.RawParameters {
	return safety.RawParameters{
		BacteriaCount:        safety.Float(bacteria),
		PHLevel:              safety.Float(ph),
		Turbidity:            safety.Float(turbidity),
		Chlorine:             safety.Float(chlorine),
		HeavyMetals:          safety.Bool(metals),
		EColiPresent:         safety.Bool(ecoli),
		TotalDissolvedSolids: safety.Float(tds),
	}
}

func TestScoreScenarios(t *testing.T) {
	tests := []struct {
		msg    string
		params safety.RawParameters
		score  int
		level  safety.Level
		issues []string
	}{
		{
			msg:    "clean sample",
			params: sample(50, 7.2, 1, 0.3, false, false, 120),
			score:  100,
			level:  safety.Safe,
			issues: []string{},
		},
		{
			msg:    "bacteria and e. coli",
			params: sample(1500, 7.0, 2, 0.3, false, true, 100),
			score:  35,
			level:  safety.Danger,
			issues: []string{
				safety.IssueBacteriaVeryHigh,
				safety.IssueFecalContamination,
			},
		},
		{
			msg:    "bacteria above limit and high pH",
			params: sample(150, 9.0, 1, 0.3, false, false, 100),
			score:  65,
			level:  safety.Warning,
			issues: []string{
				safety.IssueBacteriaAboveLimit,
				safety.IssueAbnormalPH,
			},
		},
		{
			msg:    "everything wrong is clamped at zero",
			params: sample(5000, 3, 50, 0.1, true, true, 900),
			score:  0,
			level:  safety.Danger,
			issues: []string{
				safety.IssueBacteriaVeryHigh,
				safety.IssueAbnormalPH,
				safety.IssueTooTurbid,
				safety.IssueLowDisinfectant,
				safety.IssueHeavyMetals,
				safety.IssueFecalContamination,
				safety.IssueDissolvedSolidsTooHigh,
			},
		},
		{
			msg:    "excess chlorine only",
			params: sample(0, 7, 0, 0.8, false, false, 100),
			score:  95,
			level:  safety.Safe,
			issues: []string{safety.IssueExcessDisinfectant},
		},
		{
			msg:    "heavy metals alone is a warning",
			params: sample(0, 7, 0, 0.3, true, false, 100),
			score:  70,
			level:  safety.Warning,
			issues: []string{safety.IssueHeavyMetals},
		},
	}

	for _, v := range tests {
		res := safety.Score(v.params)
		assert.Equal(t, v.score, res.Score, v.msg)
		assert.Equal(t, v.level, res.Level, v.msg)
		assert.Equal(t, v.issues, res.Issues, v.msg)
	}
}

func TestScoreBoundaries(t *testing.T) {
	tests := []struct {
		msg   string
		p     safety.RawParameters
		score int
	}{
		{"bacteria 100", safety.RawParameters{BacteriaCount: safety.Float(100)}, 100},
		{"bacteria 101", safety.RawParameters{BacteriaCount: safety.Float(101)}, 80},
		{"bacteria 1000", safety.RawParameters{BacteriaCount: safety.Float(1000)}, 80},
		{"bacteria 1001", safety.RawParameters{BacteriaCount: safety.Float(1001)}, 60},
		{"ph 6.5", safety.RawParameters{PHLevel: safety.Float(6.5)}, 100},
		{"ph 8.5", safety.RawParameters{PHLevel: safety.Float(8.5)}, 100},
		{"ph 6.49", safety.RawParameters{PHLevel: safety.Float(6.49)}, 85},
		{"ph 8.51", safety.RawParameters{PHLevel: safety.Float(8.51)}, 85},
		{"turbidity 5", safety.RawParameters{Turbidity: safety.Float(5)}, 100},
		{"turbidity 5.1", safety.RawParameters{Turbidity: safety.Float(5.1)}, 90},
		{"chlorine 0.2", safety.RawParameters{Chlorine: safety.Float(0.2)}, 100},
		{"chlorine 0.19", safety.RawParameters{Chlorine: safety.Float(0.19)}, 90},
		{"chlorine 0.5", safety.RawParameters{Chlorine: safety.Float(0.5)}, 100},
		{"chlorine 0.51", safety.RawParameters{Chlorine: safety.Float(0.51)}, 95},
		{"tds 500", safety.RawParameters{TotalDissolvedSolids: safety.Float(500)}, 100},
		{"tds 501", safety.RawParameters{TotalDissolvedSolids: safety.Float(501)}, 90},
	}

	for _, v := range tests {
		res := safety.Score(v.p)
		assert.Equal(t, v.score, res.Score, v.msg)
	}
}

func TestScoreDeterministic(t *testing.T) {
	p := sample(150, 9.0, 1, 0.3, false, false, 100)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	first := safety.ScoreAt(p, now)
	for range 100 {
		assert.Equal(t, first, safety.ScoreAt(p, now))
	}
}

func TestScoreEmptyIsBaseline(t *testing.T) {
	res := safety.Score(safety.RawParameters{})
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, safety.Safe, res.Level)
	assert.Empty(t, res.Issues)
}

func TestLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		level safety.Level
	}{
		{100, safety.Safe},
		{80, safety.Safe},
		{79, safety.Warning},
		{60, safety.Warning},
		{59, safety.Danger},
		{0, safety.Danger},
	}
	for _, v := range tests {
		assert.Equal(t, v.level, safety.LevelFromScore(v.score), v.score)
	}
}

func TestMissing(t *testing.T) {
	p := safety.RawParameters{
		PHLevel:      safety.Float(7.1),
		EColiPresent: safety.Bool(false),
	}
	assert.Equal(t, []safety.Parameter{
		safety.BacteriaCount,
		safety.Turbidity,
		safety.Chlorine,
		safety.TotalDissolvedSolids,
		safety.HeavyMetals,
	}, p.Missing())

	full := safety.Baseline.Complete()
	assert.Empty(t, full.Missing())
	assert.Equal(t, safety.Baseline, full.WithDefaults())
}
