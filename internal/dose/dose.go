// Package dose estimates the radiation dose absorbed at a distance from a
// planetary-scale energy release. A single pure formula: fluence from the
// radiated fraction spread over a sphere, attenuated by the atmosphere,
// then scaled by absorption, exposure, and incidence angle per kilogram of
// tissue.
package dose

import "math"

// LethalThresholdGy is the dose above which reports carry a lethal-dose
// warning, in grays (J/kg). 8 Gy is lethal to humans without treatment.
const LethalThresholdGy = 8.0

// Params are the inputs to one dose evaluation. All fields are optional on
// the CLI surface and fall back to Defaults.
type Params struct {
	EnergyJ    float64 // total energy released
	Eta        float64 // fraction emitted as radiation
	DistanceM  float64 // distance from the release
	Absorbed   float64 // fraction of incident radiation absorbed by tissue
	BodyMassKg float64 // mass of the absorbing body
	Exposure   float64 // fraction of the body exposed
	ThetaDeg   float64 // incidence angle from vertical, degrees
	AtmosTrans float64 // atmospheric transmission factor, 1 = vacuum
}

// Defaults are the reference parameters: Earth's binding energy radiated
// at a nuclear-explosion fraction, evaluated at the mean Earth-Moon
// distance against an adult human.
func Defaults() Params {
	return Params{
		EnergyJ:    2.49e32,
		Eta:        3e-3,
		DistanceM:  3.844e8,
		Absorbed:   0.7,
		BodyMassKg: 70.0,
		Exposure:   1.0,
		ThetaDeg:   75.0,
		AtmosTrans: 1.0,
	}
}

// Report is one computed dose evaluation. Upper is the direct-overhead
// bound (cos theta = 1), Lower the glancing bound at the given angle.
type Report struct {
	Params  Params
	Fluence float64 // attenuated, J/m^2
	UpperGy float64
	LowerGy float64
}

// Compute evaluates the dose formula. Pure and total: any inputs produce
// a (possibly non-physical) numeric result, matching the reference tool's
// no-validation contract.
func Compute(p Params) Report {
	fluence := p.Eta * p.EnergyJ / (4.0 * math.Pi * p.DistanceM * p.DistanceM) * p.AtmosTrans
	cosTheta := math.Cos(p.ThetaDeg * math.Pi / 180.0)

	return Report{
		Params:  p,
		Fluence: fluence,
		UpperGy: doseGy(fluence, p, 1.0),
		LowerGy: doseGy(fluence, p, cosTheta),
	}
}

// UpperLethal reports whether the upper-bound dose exceeds the threshold.
func (r Report) UpperLethal(thresholdGy float64) bool {
	return r.UpperGy > thresholdGy
}

// LowerLethal reports whether the lower-bound dose exceeds the threshold.
func (r Report) LowerLethal(thresholdGy float64) bool {
	return r.LowerGy > thresholdGy
}

func doseGy(fluence float64, p Params, cosTheta float64) float64 {
	return fluence * p.Absorbed * p.Exposure * cosTheta / p.BodyMassKg
}
