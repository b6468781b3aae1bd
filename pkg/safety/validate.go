package safety

import (
	"math"
)

// Validate checks that measured values are within their physical ranges.
// It must be called at the boundary before Score, which does not validate.
// The returned error names the first offending field.
func Validate(p RawParameters) error {
	checks := []struct {
		param    Parameter
		val      *float64
		min, max float64
	}{
		{BacteriaCount, p.BacteriaCount, 0, math.Inf(1)},
		{PHLevel, p.PHLevel, 0, 14},
		{Turbidity, p.Turbidity, 0, math.Inf(1)},
		{Chlorine, p.Chlorine, 0, math.Inf(1)},
		{TotalDissolvedSolids, p.TotalDissolvedSolids, 0, math.Inf(1)},
	}

	for _, c := range checks {
		if c.val == nil {
			continue
		}
		v := *c.val
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NotANumberError(c.param)
		}
		if v < c.min || v > c.max {
			return RangeError(c.param, v, c.min, c.max)
		}
	}
	return nil
}
