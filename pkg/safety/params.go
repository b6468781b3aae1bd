// Package safety scores raw laboratory water parameters into a safety
// verdict.
//
// The package is pure: no I/O, no global state. Every measured value is
// optional. Scoring treats an absent value as the baseline of clean water
// (see Baseline), so callers that need to tell "not measured" from
// "measured and clean" should inspect RawParameters.Missing.
package safety

// Parameter names a measured water parameter. The string values are the
// persisted parameter names and must not change.
type Parameter string

const (
	BacteriaCount        Parameter = "bacteria_count"
	PHLevel              Parameter = "ph_level"
	Turbidity            Parameter = "turbidity"
	Chlorine             Parameter = "chlorine"
	TotalDissolvedSolids Parameter = "total_dissolved_solids"
	HeavyMetals          Parameter = "heavy_metals"
	EColiPresent         Parameter = "e_coli_present"
)

// Parameters lists all measured parameters in their canonical order.
var Parameters = []Parameter{
	BacteriaCount,
	PHLevel,
	Turbidity,
	Chlorine,
	TotalDissolvedSolids,
	HeavyMetals,
	EColiPresent,
}

// RawParameters holds the measurements of one water sample.
// A nil field means the parameter was not measured.
type RawParameters struct {
	// BacteriaCount is the bacteria count in CFU/mL.
	BacteriaCount *float64 `json:"bacteria_count,omitempty" yaml:"bacteria_count,omitempty"`

	// PHLevel is the pH of the sample, 0-14.
	PHLevel *float64 `json:"ph_level,omitempty" yaml:"ph_level,omitempty"`

	// Turbidity is measured in NTU.
	Turbidity *float64 `json:"turbidity,omitempty" yaml:"turbidity,omitempty"`

	// Chlorine is the residual chlorine in mg/L.
	Chlorine *float64 `json:"chlorine,omitempty" yaml:"chlorine,omitempty"`

	// HeavyMetals is true when any heavy metal was detected.
	HeavyMetals *bool `json:"heavy_metals,omitempty" yaml:"heavy_metals,omitempty"`

	// EColiPresent is true when E. coli was found.
	EColiPresent *bool `json:"e_coli_present,omitempty" yaml:"e_coli_present,omitempty"`

	// TotalDissolvedSolids is measured in mg/L.
	TotalDissolvedSolids *float64 `json:"total_dissolved_solids,omitempty" yaml:"total_dissolved_solids,omitempty"`
}

// Measured is a RawParameters with every value present.
type Measured struct {
	BacteriaCount        float64
	PHLevel              float64
	Turbidity            float64
	Chlorine             float64
	HeavyMetals          bool
	EColiPresent         bool
	TotalDissolvedSolids float64
}

// Baseline is the "typical safe" sample used for parameters that were not
// measured.
var Baseline = Measured{
	BacteriaCount:        0,
	PHLevel:              7.0,
	Turbidity:            0,
	Chlorine:             0.2,
	HeavyMetals:          false,
	EColiPresent:         false,
	TotalDissolvedSolids: 150,
}

// WithDefaults fills absent values from Baseline.
func (p RawParameters) WithDefaults() Measured {
	res := Baseline
	if p.BacteriaCount != nil {
		res.BacteriaCount = *p.BacteriaCount
	}
	if p.PHLevel != nil {
		res.PHLevel = *p.PHLevel
	}
	if p.Turbidity != nil {
		res.Turbidity = *p.Turbidity
	}
	if p.Chlorine != nil {
		res.Chlorine = *p.Chlorine
	}
	if p.HeavyMetals != nil {
		res.HeavyMetals = *p.HeavyMetals
	}
	if p.EColiPresent != nil {
		res.EColiPresent = *p.EColiPresent
	}
	if p.TotalDissolvedSolids != nil {
		res.TotalDissolvedSolids = *p.TotalDissolvedSolids
	}
	return res
}

// Missing returns parameters that were not measured, in canonical order.
func (p RawParameters) Missing() []Parameter {
	present := map[Parameter]bool{
		BacteriaCount:        p.BacteriaCount != nil,
		PHLevel:              p.PHLevel != nil,
		Turbidity:            p.Turbidity != nil,
		Chlorine:             p.Chlorine != nil,
		TotalDissolvedSolids: p.TotalDissolvedSolids != nil,
		HeavyMetals:          p.HeavyMetals != nil,
		EColiPresent:         p.EColiPresent != nil,
	}
	var res []Parameter
	for _, v := range Parameters {
		if !present[v] {
			res = append(res, v)
		}
	}
	return res
}

// Complete returns RawParameters with every field set from m.
func (m Measured) Complete() RawParameters {
	return RawParameters{
		BacteriaCount:        Float(m.BacteriaCount),
		PHLevel:              Float(m.PHLevel),
		Turbidity:            Float(m.Turbidity),
		Chlorine:             Float(m.Chlorine),
		HeavyMetals:          Bool(m.HeavyMetals),
		EColiPresent:         Bool(m.EColiPresent),
		TotalDissolvedSolids: Float(m.TotalDissolvedSolids),
	}
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
