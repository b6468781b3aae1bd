package labresult_test

import (
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
	"github.com/sigapair/airlab/pkg/labresult"
	"github.com/sigapair/airlab/pkg/safety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testedAt = time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)

func danger() safety.RawParameters {
	return safety.RawParameters{
		BacteriaCount:        safety.Float(1500),
		PHLevel:              safety.Float(7.0),
		Turbidity:            safety.Float(2),
		Chlorine:             safety.Float(0.3),
		HeavyMetals:          safety.Bool(false),
		EColiPresent:         safety.Bool(true),
		TotalDissolvedSolids: safety.Float(100),
	}
}

func encode(reportID string, p safety.RawParameters) []labresult.ParameterRow {
	v := safety.ScoreAt(p, testedAt)
	return labresult.EncodeAnalysis(
		reportID, p, v, "officer-7", "pkm-3", "sampled at tap", testedAt,
	)
}

func TestEncodeShape(t *testing.T) {
	rows := encode("r-1", danger())
	require.Len(t, rows, labresult.RowsPerBatch)
	require.NoError(t, labresult.ValidateRows("r-1", rows))

	params := make([]string, len(rows))
	for i, row := range rows {
		params[i] = row.Parameter
		assert.Equal(t, "r-1", row.ReportID)
		assert.Equal(t, testedAt, row.TestedAt)
		assert.Equal(t, "officer-7", row.LabOfficer)
		assert.Equal(t, "pkm-3", row.PuskesmasID)
		assert.Equal(t, labresult.SchemaVersion, row.SchemaVersion)
	}
	assert.Equal(t, []string{
		"bacteria_count", "ph_level", "turbidity", "chlorine",
		"total_dissolved_solids", "heavy_metals", "e_coli_present",
		"overall_safety",
	}, params)

	overall := rows[7]
	assert.Equal(t, "35", overall.Value)
	assert.Equal(t, labresult.Bahaya, overall.Status)
	assert.Equal(t, "score", overall.Unit)
	assert.Equal(t, "sampled at tap", overall.Notes)
	for _, row := range rows[:7] {
		assert.Empty(t, row.Notes, row.Parameter)
	}
}

func TestEncodeRowStatus(t *testing.T) {
	rows := encode("r-1", danger())
	byParam := make(map[string]labresult.ParameterRow)
	for _, row := range rows {
		byParam[row.Parameter] = row
	}

	tests := []struct {
		param  string
		value  string
		unit   string
		status labresult.Status
	}{
		{"bacteria_count", "1500", "CFU/mL", labresult.Bahaya},
		{"ph_level", "7.00", "pH", labresult.Aman},
		{"turbidity", "2.0", "NTU", labresult.Aman},
		{"chlorine", "0.30", "mg/L", labresult.Aman},
		{"total_dissolved_solids", "100", "mg/L", labresult.Aman},
		{"heavy_metals", "false", "", labresult.Aman},
		{"e_coli_present", "true", "", labresult.Bahaya},
	}
	for _, v := range tests {
		row := byParam[v.param]
		assert.Equal(t, v.value, row.Value, v.param)
		assert.Equal(t, v.unit, row.Unit, v.param)
		assert.Equal(t, v.status, row.Status, v.param)
	}
}

func TestRowStatus(t *testing.T) {
	tests := []struct {
		param  safety.Parameter
		val    float64
		status labresult.Status
	}{
		{safety.BacteriaCount, 100, labresult.Aman},
		{safety.BacteriaCount, 101, labresult.Warning},
		{safety.BacteriaCount, 1000, labresult.Warning},
		{safety.BacteriaCount, 1001, labresult.Bahaya},
		{safety.PHLevel, 6.5, labresult.Aman},
		{safety.PHLevel, 9, labresult.Warning},
		{safety.Turbidity, 6, labresult.Warning},
		{safety.Chlorine, 0.1, labresult.Warning},
		{safety.Chlorine, 0.6, labresult.Warning},
		{safety.Chlorine, 0.3, labresult.Aman},
		{safety.TotalDissolvedSolids, 501, labresult.Warning},
	}
	for _, v := range tests {
		assert.Equal(t, v.status, labresult.RowStatus(v.param, v.val),
			"%s=%v", v.param, v.val)
	}
	assert.Equal(t, labresult.Bahaya, labresult.FlagStatus(true))
	assert.Equal(t, labresult.Aman, labresult.FlagStatus(false))
}

func TestRoundTrip(t *testing.T) {
	inputs := []safety.RawParameters{
		danger(),
		{
			BacteriaCount:        safety.Float(50),
			PHLevel:              safety.Float(7.2),
			Turbidity:            safety.Float(1),
			Chlorine:             safety.Float(0.3),
			HeavyMetals:          safety.Bool(false),
			EColiPresent:         safety.Bool(false),
			TotalDissolvedSolids: safety.Float(120),
		},
		{
			BacteriaCount: safety.Float(150),
			PHLevel:       safety.Float(9.0),
		},
		{PHLevel: safety.Float(6.49)},
		// values next to thresholds that rounding moves across them
		{Turbidity: safety.Float(5.04)},
		{Chlorine: safety.Float(0.196)},
		{BacteriaCount: safety.Float(100.4)},
		{TotalDissolvedSolids: safety.Float(500.4), PHLevel: safety.Float(8.504)},
	}

	for _, raw := range inputs {
		p := labresult.Round(raw)
		v := safety.ScoreAt(p, testedAt)
		rows := labresult.EncodeAnalysis("r-9", p, v, "o", "pk", "n", testedAt)
		b, err := labresult.Decode(rows)
		require.NoError(t, err)
		assert.Equal(t, v.Level, b.Verdict.Level)
		assert.Equal(t, v.Score, b.Verdict.Score)
		assert.Equal(t, v.Issues, b.Verdict.Issues)
		assert.Equal(t, p.Missing(), b.Params.Missing())
		assert.Equal(t, "r-9", b.ReportID)
		assert.Equal(t, "n", b.Notes)
		assert.Equal(t, testedAt, b.TestedAt)
		assert.Equal(t, labresult.SchemaVersion, b.SchemaVersion)
		if p.PHLevel != nil {
			assert.InDelta(t, *p.PHLevel, *b.Params.PHLevel, 0.005)
		}
	}
}

func TestDecodeWithoutOverall(t *testing.T) {
	rows := encode("r-1", danger())[:7]
	_, err := labresult.Decode(rows)
	assert.ErrorIs(t, err, labresult.ErrNoAnalysis)

	_, err = labresult.Decode(nil)
	assert.ErrorIs(t, err, labresult.ErrNoAnalysis)
}

func TestDecodePartialRows(t *testing.T) {
	rows := encode("r-1", danger())
	// keep only ph_level and overall_safety
	partial := []labresult.ParameterRow{rows[1], rows[7]}
	b, err := labresult.Decode(partial)
	require.NoError(t, err)
	assert.Equal(t, 35, b.Verdict.Score)
	assert.Equal(t, safety.Danger, b.Verdict.Level)
	require.NotNil(t, b.Params.PHLevel)
	assert.Nil(t, b.Params.BacteriaCount)
	assert.Len(t, b.Params.Missing(), 6)
}

func TestDecodeErrors(t *testing.T) {
	rows := encode("r-1", danger())

	badScore := append([]labresult.ParameterRow{}, rows...)
	badScore[7].Value = "high"
	_, err := labresult.Decode(badScore)
	require.Error(t, err)
	assert.Equal(t, errcode.DecodeValueError, err.(*gn.Error).Code)

	badStatus := append([]labresult.ParameterRow{}, rows...)
	badStatus[7].Status = "unknown"
	_, err = labresult.Decode(badStatus)
	require.Error(t, err)
	assert.Equal(t, errcode.DecodeValueError, err.(*gn.Error).Code)

	badValue := append([]labresult.ParameterRow{}, rows...)
	badValue[0].Value = "many"
	_, err = labresult.Decode(badValue)
	require.Error(t, err)

	twice := append(append([]labresult.ParameterRow{}, rows...), rows[7])
	_, err = labresult.Decode(twice)
	require.Error(t, err)
	assert.Equal(t, errcode.BatchShapeError, err.(*gn.Error).Code)
}

func TestValidateRows(t *testing.T) {
	rows := encode("r-1", danger())
	assert.NoError(t, labresult.ValidateRows("r-1", rows))

	assert.Error(t, labresult.ValidateRows("r-1", rows[:7]))
	assert.Error(t, labresult.ValidateRows("r-2", rows))

	dup := append([]labresult.ParameterRow{}, rows...)
	dup[0] = dup[1]
	assert.Error(t, labresult.ValidateRows("r-1", dup))

	unknown := append([]labresult.ParameterRow{}, rows...)
	unknown[2].Parameter = "lead"
	assert.Error(t, labresult.ValidateRows("r-1", unknown))

	mixed := append([]labresult.ParameterRow{}, rows...)
	mixed[3].TestedAt = testedAt.Add(time.Second)
	assert.Error(t, labresult.ValidateRows("r-1", mixed))
}

func TestStatusLevelMapping(t *testing.T) {
	for _, l := range []safety.Level{safety.Safe, safety.Warning, safety.Danger} {
		st := labresult.StatusFromLevel(l)
		back, ok := labresult.LevelFromStatus(st)
		assert.True(t, ok)
		assert.Equal(t, l, back)
	}
	_, ok := labresult.LevelFromStatus("green")
	assert.False(t, ok)
}

func TestRound(t *testing.T) {
	p := labresult.Round(safety.RawParameters{
		BacteriaCount:        safety.Float(100.4),
		PHLevel:              safety.Float(6.496),
		Turbidity:            safety.Float(5.04),
		Chlorine:             safety.Float(0.196),
		TotalDissolvedSolids: safety.Float(500.6),
		HeavyMetals:          safety.Bool(true),
	})
	assert.Equal(t, 100.0, *p.BacteriaCount)
	assert.Equal(t, 6.5, *p.PHLevel)
	assert.Equal(t, 5.0, *p.Turbidity)
	assert.Equal(t, 0.2, *p.Chlorine)
	assert.Equal(t, 501.0, *p.TotalDissolvedSolids)
	assert.True(t, *p.HeavyMetals)
	assert.Nil(t, p.EColiPresent)

	empty := labresult.Round(safety.RawParameters{})
	assert.Empty(t, safety.Score(empty).Issues)
	assert.Len(t, empty.Missing(), len(safety.Parameters))
}

func TestRowStatusUsesStoredValue(t *testing.T) {
	p := safety.RawParameters{
		Turbidity: safety.Float(5.04),
		Chlorine:  safety.Float(0.196),
	}
	rows := labresult.EncodeAnalysis("r-1", p, safety.ScoreAt(labresult.Round(p), testedAt),
		"o", "pk", "", testedAt)
	byParam := make(map[string]labresult.ParameterRow)
	for _, row := range rows {
		byParam[row.Parameter] = row
	}
	assert.Equal(t, "5.0", byParam["turbidity"].Value)
	assert.Equal(t, labresult.Aman, byParam["turbidity"].Status)
	assert.Equal(t, "0.20", byParam["chlorine"].Value)
	assert.Equal(t, labresult.Aman, byParam["chlorine"].Status)
	assert.Equal(t, "100", byParam["overall_safety"].Value)
}
