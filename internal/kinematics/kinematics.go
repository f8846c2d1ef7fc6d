// Package kinematics solves impact scenarios against a body's
// gravitational binding energy: the speed a given impactor needs, or the
// impactor a given speed needs, with full relativistic kinetic energy and
// atmospheric retention folded into the coupling efficiency.
package kinematics

import (
	"errors"
	"math"

	"github.com/perihelion-works/unbind/internal/atmosphere"
	"github.com/perihelion-works/unbind/internal/body"
)

const (
	// SpeedOfLight in m/s.
	SpeedOfLight = 299792458.0

	// MercuryMass and CeresMass give scale context in reports, in kg.
	MercuryMass = 3.30e23
	CeresMass   = 9.38e20

	// ReferenceDensity is the bulk density assumed when estimating a
	// diameter from a bare mass, in kg/m^3.
	ReferenceDensity = 3000.0

	// UltraRelativisticFraction of c at or above which a required speed
	// is treated as unreachable and the target survives.
	UltraRelativisticFraction = 0.99

	// refinementPasses after the retention-free seed in speed-given mode.
	// Fixed by the reference model; not iterated to convergence.
	refinementPasses = 2
)

// Domain errors. All terminate the run with a specific message; none are
// recoverable.
var (
	ErrNonPositive       = errors.New("inputs must be positive")
	ErrSpeedAboveC       = errors.New("speed must be < c")
	ErrNoSurfaceCoupling = errors.New("atmosphere absorbs all kinetic energy (effective epsilon = 0)")
)

// Mode selects which physical quantity a Scenario supplies.
type Mode int

const (
	ModeMass     Mode = iota // Value is impactor mass in kg
	ModeDiameter             // Value is impactor diameter in km
	ModeSpeed                // Value is impact speed in km/s
)

// TraceFunc receives per-pass diagnostics from the speed-given refinement.
type TraceFunc func(pass int, diameterKm, retention, massKg float64)

// Scenario is a single computation request. It is built once from parsed
// arguments, consumed by Solve, and discarded.
type Scenario struct {
	Mode    Mode
	Value   float64
	Density float64 // kg/m^3
	Epsilon float64 // coupling efficiency, dimensionless

	ObjectName   string
	BodyName     string // raw name as supplied; empty when defaulted
	MaterialName string // raw name as supplied; empty when defaulted
	Body         body.Body
	Material     body.Material

	Trace TraceFunc // optional; nil disables tracing
}

// Result holds the computed outcome of one scenario. Fields not meaningful
// for the mode (ClassicalMass outside speed mode, speeds in speed mode)
// are zero.
type Result struct {
	Mode         Mode
	ObjectName   string
	BodyName     string
	MaterialName string
	Body         body.Body
	Material     body.Material

	Epsilon float64 // coupling efficiency as supplied
	Density float64 // kg/m^3 as supplied

	Retention        float64
	EffectiveEpsilon float64
	TargetEnergy     float64 // U / effective epsilon, J

	MassKg     float64 // impactor mass: given, derived, or required
	DiameterKm float64 // impactor diameter: given, estimated, or required

	ClassicalSpeed    float64 // m/s
	RelativisticSpeed float64 // m/s
	ClassicalMassKg   float64 // speed mode only, for reference
	SpeedKmS          float64 // speed mode input, km/s

	Survives bool
}

// Solve computes the result for one scenario. It is pure: no state
// survives the call and identical inputs yield identical outputs.
func Solve(s Scenario) (Result, error) {
	switch s.Mode {
	case ModeMass:
		return solveMass(s)
	case ModeDiameter:
		return solveDiameter(s)
	case ModeSpeed:
		return solveSpeed(s)
	}
	return Result{}, errors.New("unknown scenario mode")
}

// Survives reports whether a required relativistic speed is at or above
// the ultra-relativistic cutoff, meaning the impactor cannot unbind the
// target. The boundary is inclusive.
func Survives(relativisticSpeed float64) bool {
	return relativisticSpeed >= UltraRelativisticFraction*SpeedOfLight
}

func solveMass(s Scenario) (Result, error) {
	m := s.Value
	if m <= 0 || s.Epsilon <= 0 {
		return Result{}, ErrNonPositive
	}

	// The diameter is unknown in this mode; estimate it at the reference
	// density solely to look up atmospheric retention.
	dKm := diameterKmFromMass(m, ReferenceDensity)
	res, err := newResult(s, dKm)
	if err != nil {
		return Result{}, err
	}

	res.MassKg = m
	res.DiameterKm = dKm
	fillRequiredSpeeds(&res, m)
	return res, nil
}

func solveDiameter(s Scenario) (Result, error) {
	dKm := s.Value
	if dKm <= 0 || s.Density <= 0 || s.Epsilon <= 0 {
		return Result{}, ErrNonPositive
	}

	res, err := newResult(s, dKm)
	if err != nil {
		return Result{}, err
	}

	m := sphereMassKg(dKm, s.Density)
	res.MassKg = m
	res.DiameterKm = dKm
	fillRequiredSpeeds(&res, m)
	return res, nil
}

func solveSpeed(s Scenario) (Result, error) {
	if s.Value <= 0 || s.Density <= 0 || s.Epsilon <= 0 {
		return Result{}, ErrNonPositive
	}
	v := s.Value * 1000.0
	beta := v / SpeedOfLight
	if beta >= 1 {
		return Result{}, ErrSpeedAboveC
	}

	gamma := 1.0 / math.Sqrt(1.0-beta*beta)
	energyPerMass := (gamma - 1.0) * SpeedOfLight * SpeedOfLight
	u := s.Body.BindingEnergy()

	// Seed pass assumes no atmosphere, then a fixed number of refinement
	// passes re-derive retention from the current diameter estimate. The
	// pass count matches the reference model; it is an engineering
	// approximation rather than a converged fixed point.
	massKg := u / (s.Epsilon * energyPerMass)
	dKm := diameterKmFromMass(massKg, s.Density)
	retention := 1.0
	effEps := s.Epsilon

	for pass := 1; pass <= refinementPasses; pass++ {
		retention = atmosphere.Retention(dKm, s.Body, s.Material)
		effEps = s.Epsilon * retention
		if effEps <= 0 {
			return Result{}, ErrNoSurfaceCoupling
		}
		massKg = u / (effEps * energyPerMass)
		dKm = diameterKmFromMass(massKg, s.Density)
		if s.Trace != nil {
			s.Trace(pass, dKm, retention, massKg)
		}
	}

	res := resultShell(s)
	res.Retention = retention
	res.EffectiveEpsilon = effEps
	res.TargetEnergy = u / effEps
	res.MassKg = massKg
	res.DiameterKm = dKm
	res.ClassicalMassKg = 2.0 * u / (effEps * v * v)
	res.SpeedKmS = s.Value
	return res, nil
}

// newResult looks up retention at dKm and fills the energy bookkeeping
// shared by the mass- and diameter-given modes.
func newResult(s Scenario, dKm float64) (Result, error) {
	retention := atmosphere.Retention(dKm, s.Body, s.Material)
	effEps := s.Epsilon * retention
	if effEps <= 0 {
		return Result{}, ErrNoSurfaceCoupling
	}

	res := resultShell(s)
	res.Retention = retention
	res.EffectiveEpsilon = effEps
	res.TargetEnergy = s.Body.BindingEnergy() / effEps
	return res, nil
}

func resultShell(s Scenario) Result {
	return Result{
		Mode:         s.Mode,
		ObjectName:   s.ObjectName,
		BodyName:     s.BodyName,
		MaterialName: s.MaterialName,
		Body:         s.Body,
		Material:     s.Material,
		Epsilon:      s.Epsilon,
		Density:      s.Density,
	}
}

// fillRequiredSpeeds computes the classical and relativistic speeds a mass
// needs to deliver the target energy, plus the survives verdict.
func fillRequiredSpeeds(res *Result, massKg float64) {
	t := res.TargetEnergy
	res.ClassicalSpeed = math.Sqrt(2.0 * t / massKg)

	gamma := 1.0 + t/(massKg*SpeedOfLight*SpeedOfLight)
	beta2 := 1.0 - 1.0/(gamma*gamma)
	// Rounding near gamma ~ 1 can push beta2 fractionally negative.
	if beta2 < 0 {
		beta2 = 0
	}
	res.RelativisticSpeed = SpeedOfLight * math.Sqrt(beta2)
	res.Survives = Survives(res.RelativisticSpeed)
}

// sphereMassKg returns the mass of a sphere of the given diameter and
// bulk density.
func sphereMassKg(diameterKm, density float64) float64 {
	r := diameterKm * 1000.0 / 2.0
	return density * (4.0 / 3.0) * math.Pi * r * r * r
}

// diameterKmFromMass inverts the sphere volume for a mass at the given
// bulk density.
func diameterKmFromMass(massKg, density float64) float64 {
	volume := massKg / density
	return 2.0 * math.Cbrt(3.0*volume/(4.0*math.Pi)) / 1000.0
}
