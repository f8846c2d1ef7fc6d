package dose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeDefaultsMatchLiteralFormula(t *testing.T) {
	p := Defaults()
	r := Compute(p)

	wantFluence := p.Eta * p.EnergyJ / (4.0 * math.Pi * p.DistanceM * p.DistanceM)
	require.InEpsilon(t, wantFluence, r.Fluence, 1e-12)

	wantUpper := wantFluence * p.Absorbed * p.Exposure / p.BodyMassKg
	require.InEpsilon(t, wantUpper, r.UpperGy, 1e-12)

	wantLower := wantUpper * math.Cos(75.0*math.Pi/180.0)
	require.InEpsilon(t, wantLower, r.LowerGy, 1e-12)

	// The glancing bound is always at or below the overhead bound for
	// angles within a quarter turn.
	require.LessOrEqual(t, r.LowerGy, r.UpperGy)
}

func TestAtmosphericAttenuationScalesFluence(t *testing.T) {
	p := Defaults()
	p.AtmosTrans = 0.1
	attenuated := Compute(p)

	p.AtmosTrans = 1.0
	clear := Compute(p)

	require.InEpsilon(t, clear.Fluence*0.1, attenuated.Fluence, 1e-12)
	require.InEpsilon(t, clear.UpperGy*0.1, attenuated.UpperGy, 1e-12)
}

func TestLethalFlags(t *testing.T) {
	// Far enough away the dose is harmless.
	far := Defaults()
	far.DistanceM = 1e20
	r := Compute(far)
	require.False(t, r.UpperLethal(LethalThresholdGy))
	require.False(t, r.LowerLethal(LethalThresholdGy))

	// At the reference distance the full formula is far beyond lethal.
	r = Compute(Defaults())
	require.True(t, r.UpperLethal(LethalThresholdGy))
	require.True(t, r.LowerLethal(LethalThresholdGy))
}

func TestComputeNeverFails(t *testing.T) {
	// The reference tool models no validation: degenerate inputs still
	// produce a numeric report.
	r := Compute(Params{DistanceM: 1, BodyMassKg: 70})
	require.Equal(t, 0.0, r.Fluence)
	require.False(t, math.IsNaN(r.UpperGy))
}
