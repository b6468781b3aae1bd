package labresult

import (
	"errors"
	"strconv"
	"time"

	"github.com/sigapair/airlab/pkg/safety"
)

// ErrNoAnalysis is returned by Decode when the rows do not contain an
// overall_safety row, meaning the report has not been analyzed.
var ErrNoAnalysis = errors.New("no lab analysis exists for the report")

// EncodeAnalysis builds the rows of a new analysis from its parts.
func EncodeAnalysis(
	reportID string,
	params safety.RawParameters,
	verdict safety.Verdict,
	officerID, puskesmasID, notes string,
	now time.Time,
) []ParameterRow {
	b := Batch{
		ReportID:      reportID,
		SchemaVersion: SchemaVersion,
		Params:        params,
		Verdict:       verdict,
		OfficerID:     officerID,
		PuskesmasID:   puskesmasID,
		Notes:         notes,
		TestedAt:      now,
	}
	return Encode(b)
}

// Round returns p with every numeric value rounded to the precision it
// is stored with. Scoring the rounded values gives the same verdict as
// scoring the values read back by Decode.
func Round(p safety.RawParameters) safety.RawParameters {
	for _, v := range []struct {
		param safety.Parameter
		val   **float64
	}{
		{safety.BacteriaCount, &p.BacteriaCount},
		{safety.PHLevel, &p.PHLevel},
		{safety.Turbidity, &p.Turbidity},
		{safety.Chlorine, &p.Chlorine},
		{safety.TotalDissolvedSolids, &p.TotalDissolvedSolids},
	} {
		if *v.val == nil {
			continue
		}
		s := strconv.FormatFloat(**v.val, 'f', Precision(v.param), 64)
		f, _ := strconv.ParseFloat(s, 64)
		*v.val = &f
	}
	return p
}

// Encode converts a batch to its eight rows: the measured parameters in
// canonical order followed by the overall_safety row. A parameter that
// was not measured is written with an empty value.
func Encode(b Batch) []ParameterRow {
	version := b.SchemaVersion
	if version == 0 {
		version = SchemaVersion
	}
	newRow := func(param string, val string, st Status) ParameterRow {
		return ParameterRow{
			ReportID:      b.ReportID,
			Parameter:     param,
			Value:         val,
			Unit:          Unit(param),
			Status:        st,
			TestedAt:      b.TestedAt,
			LabOfficer:    b.OfficerID,
			PuskesmasID:   b.PuskesmasID,
			SchemaVersion: version,
		}
	}

	p := b.Params
	res := make([]ParameterRow, 0, RowsPerBatch)
	for _, v := range []struct {
		param safety.Parameter
		val   *float64
	}{
		{safety.BacteriaCount, p.BacteriaCount},
		{safety.PHLevel, p.PHLevel},
		{safety.Turbidity, p.Turbidity},
		{safety.Chlorine, p.Chlorine},
		{safety.TotalDissolvedSolids, p.TotalDissolvedSolids},
	} {
		if v.val == nil {
			res = append(res, newRow(string(v.param), "", Aman))
			continue
		}
		val := strconv.FormatFloat(*v.val, 'f', Precision(v.param), 64)
		stored, _ := strconv.ParseFloat(val, 64)
		res = append(res, newRow(string(v.param), val, RowStatus(v.param, stored)))
	}

	for _, v := range []struct {
		param safety.Parameter
		val   *bool
	}{
		{safety.HeavyMetals, p.HeavyMetals},
		{safety.EColiPresent, p.EColiPresent},
	} {
		if v.val == nil {
			res = append(res, newRow(string(v.param), "", Aman))
			continue
		}
		val := strconv.FormatBool(*v.val)
		res = append(res, newRow(string(v.param), val, FlagStatus(*v.val)))
	}

	overall := newRow(
		OverallSafety,
		strconv.Itoa(b.Verdict.Score),
		StatusFromLevel(b.Verdict.Level),
	)
	overall.Notes = b.Notes
	res = append(res, overall)

	return res
}

// Decode rebuilds a batch from the rows of one report. Without an
// overall_safety row it returns ErrNoAnalysis and never guesses a verdict.
// Parameters without a row, or with an empty value, stay nil in the
// result. Issues are re-derived from the stored values.
func Decode(rows []ParameterRow) (Batch, error) {
	var res Batch

	var overall *ParameterRow
	for i := range rows {
		if rows[i].Parameter != OverallSafety {
			continue
		}
		if overall != nil {
			return res, DuplicateRowError(rows[i].ReportID, OverallSafety)
		}
		overall = &rows[i]
	}
	if overall == nil {
		return res, ErrNoAnalysis
	}

	score, err := strconv.Atoi(overall.Value)
	if err != nil {
		return res, ValueError(overall.ReportID, OverallSafety, overall.Value, err)
	}
	level, ok := LevelFromStatus(overall.Status)
	if !ok {
		return res, StatusError(overall.ReportID, string(overall.Status))
	}

	seen := make(map[string]bool)
	var p safety.RawParameters
	for _, row := range rows {
		if row.Parameter == OverallSafety {
			continue
		}
		if seen[row.Parameter] {
			return res, DuplicateRowError(row.ReportID, row.Parameter)
		}
		seen[row.Parameter] = true
		if err = decodeValue(&p, row); err != nil {
			return res, err
		}
	}

	issues := safety.ScoreAt(p, overall.TestedAt).Issues

	res = Batch{
		ReportID:      overall.ReportID,
		SchemaVersion: overall.SchemaVersion,
		Params:        p,
		Verdict: safety.Verdict{
			Level:      level,
			Score:      score,
			Issues:     issues,
			ComputedAt: overall.TestedAt,
		},
		OfficerID:   overall.LabOfficer,
		PuskesmasID: overall.PuskesmasID,
		Notes:       overall.Notes,
		TestedAt:    overall.TestedAt,
	}
	return res, nil
}

func decodeValue(p *safety.RawParameters, row ParameterRow) error {
	if row.Value == "" {
		return nil
	}

	switch param := safety.Parameter(row.Parameter); param {
	case safety.HeavyMetals, safety.EColiPresent:
		b, err := strconv.ParseBool(row.Value)
		if err != nil {
			return ValueError(row.ReportID, row.Parameter, row.Value, err)
		}
		if param == safety.HeavyMetals {
			p.HeavyMetals = &b
		} else {
			p.EColiPresent = &b
		}
	case safety.BacteriaCount, safety.PHLevel, safety.Turbidity,
		safety.Chlorine, safety.TotalDissolvedSolids:
		f, err := strconv.ParseFloat(row.Value, 64)
		if err != nil {
			return ValueError(row.ReportID, row.Parameter, row.Value, err)
		}
		switch param {
		case safety.BacteriaCount:
			p.BacteriaCount = &f
		case safety.PHLevel:
			p.PHLevel = &f
		case safety.Turbidity:
			p.Turbidity = &f
		case safety.Chlorine:
			p.Chlorine = &f
		case safety.TotalDissolvedSolids:
			p.TotalDissolvedSolids = &f
		}
	}
	// unknown parameters are left for newer schema versions
	return nil
}

// ValidateRows checks that rows form one complete batch of reportID
// before they are written.
func ValidateRows(reportID string, rows []ParameterRow) error {
	if len(rows) != RowsPerBatch {
		return BatchSizeError(reportID, len(rows))
	}

	known := map[string]bool{OverallSafety: true}
	for _, v := range safety.Parameters {
		known[string(v)] = true
	}

	seen := make(map[string]bool)
	testedAt := rows[0].TestedAt
	for _, row := range rows {
		if row.ReportID != reportID {
			return ForeignRowError(reportID, row.ReportID)
		}
		if !known[row.Parameter] {
			return UnknownParameterError(reportID, row.Parameter)
		}
		if seen[row.Parameter] {
			return DuplicateRowError(reportID, row.Parameter)
		}
		seen[row.Parameter] = true
		if !row.TestedAt.Equal(testedAt) {
			return MixedTimestampError(reportID)
		}
	}
	return nil
}
