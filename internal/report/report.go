// Package report renders calculator results. Report bodies go to stdout
// in the reference tools' line shapes; errors and diagnostics go to
// stderr with the usual terminal accents.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/perihelion-works/unbind/internal/dose"
	"github.com/perihelion-works/unbind/internal/kinematics"
)

// ANSI color codes.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
)

type Printer struct {
	Out io.Writer // report body
	Err io.Writer // errors and diagnostics
}

func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, red+bold+"error: "+reset+"%s\n", msg)
}

// Unbind renders one solver result in the mode's report shape.
func (p *Printer) Unbind(res kinematics.Result) {
	switch res.Mode {
	case kinematics.ModeSpeed:
		p.unbindSpeed(res)
	default:
		p.unbindImpactor(res)
	}
}

// unbindImpactor renders the mass-given and diameter-given reports, which
// share the required-speed and verdict sections.
func (p *Printer) unbindImpactor(res kinematics.Result) {
	p.header(res, false)

	if res.Mode == kinematics.ModeMass {
		fmt.Fprintf(p.Out, "INPUT  : m = %.6e kg, epsilon = %.3f\n", res.MassKg, res.Epsilon)
	} else {
		fmt.Fprintf(p.Out, "INPUT  : D = %.3f km, rho = %.0f kg/m^3, epsilon = %.3f\n",
			res.DiameterKm, res.Density, res.Epsilon)
	}
	fmt.Fprintf(p.Out, "TARGET : U/epsilon_eff = %.6e J (eff. epsilon = %.3f)\n",
		res.TargetEnergy, res.EffectiveEpsilon)

	if res.Mode == kinematics.ModeDiameter {
		fmt.Fprintf(p.Out, "RESULT : Mass = %.6e kg (%.3f Mercury, %.3f Ceres)\n",
			res.MassKg, res.MassKg/kinematics.MercuryMass, res.MassKg/kinematics.CeresMass)
		fmt.Fprintf(p.Out, "         Required speed (classical)    = %.3f km/s\n", res.ClassicalSpeed/1000.0)
	} else {
		fmt.Fprintf(p.Out, "RESULT : Required speed (classical)    = %.3f km/s\n", res.ClassicalSpeed/1000.0)
	}
	fmt.Fprintf(p.Out, "         Required speed (relativistic) = %.3f km/s\n", res.RelativisticSpeed/1000.0)

	target := res.BodyName
	if target == "" {
		target = "TARGET"
	}
	if res.Survives {
		fmt.Fprintf(p.Out, "         NOTE: v_rel ~ c (ultra-relativistic).\n")
		fmt.Fprintf(p.Out, "         CONCLUSION: %s SURVIVES - object too small to unbind planet\n", target)
	} else {
		fmt.Fprintf(p.Out, "         CONCLUSION: %s DESTROYED at %.3f km/s impact\n",
			target, res.RelativisticSpeed/1000.0)
	}
}

func (p *Printer) unbindSpeed(res kinematics.Result) {
	p.header(res, true)

	fmt.Fprintf(p.Out, "INPUT  : v = %.3f km/s, rho = %.0f kg/m^3, epsilon = %.3f\n",
		res.SpeedKmS, res.Density, res.Epsilon)
	fmt.Fprintf(p.Out, "TARGET : U/epsilon_eff = %.6e J (eff. epsilon = %.3f)\n",
		res.TargetEnergy, res.EffectiveEpsilon)
	fmt.Fprintf(p.Out, "RESULT : Minimum required mass (relativistic)   = %.6e kg (%.3f Mercury, %.3f Ceres)\n",
		res.MassKg, res.MassKg/kinematics.MercuryMass, res.MassKg/kinematics.CeresMass)
	fmt.Fprintf(p.Out, "         Classical mass (for reference)         = %.6e kg\n", res.ClassicalMassKg)
	fmt.Fprintf(p.Out, "         Minimum equivalent diameter            = %.3f km\n", res.DiameterKm)

	target := res.BodyName
	if target == "" {
		target = "target"
	}
	fmt.Fprintf(p.Out, "         NOTE: Any impactor ≥ %.3f km at %.3f km/s will unbind %s\n",
		res.DiameterKm, res.SpeedKmS, target)
}

// header prints the OBJECT/PLANET/MATERIAL preamble. Speed mode always
// names the planet line, falling back to "target"; the other modes omit
// lines whose names were not supplied.
func (p *Printer) header(res kinematics.Result, alwaysPlanet bool) {
	if res.ObjectName != "" {
		fmt.Fprintf(p.Out, "OBJECT : %s\n", res.ObjectName)
	}
	u := res.Body.BindingEnergy()
	switch {
	case res.BodyName != "":
		fmt.Fprintf(p.Out, "PLANET : %s (U = %.6e J)\n", res.BodyName, u)
	case alwaysPlanet:
		fmt.Fprintf(p.Out, "PLANET : target (U = %.6e J)\n", u)
	}
	if res.MaterialName != "" {
		fmt.Fprintf(p.Out, "MATERIAL: %s (retention = %.3f)\n", res.MaterialName, res.Retention)
	}
}

// Dose renders a dose report, flagging bounds that exceed the lethal
// threshold.
func (p *Printer) Dose(r dose.Report, lethalGy float64) {
	fmt.Fprintf(p.Out, "Impact Generated Radiation Dose\n")
	fmt.Fprintf(p.Out, "-------------------------------\n\n")
	fmt.Fprintf(p.Out, "fluence = %.6e J/m^2\n\n", r.Fluence)

	fmt.Fprintf(p.Out, "Dose (upper boundary, max exposure) = %.6e Gy\n", r.UpperGy)
	if r.UpperLethal(lethalGy) {
		fmt.Fprintf(p.Out, "*** WARNING: Dose exceeds %g Gy (lethal dose for humans)\n\n", lethalGy)
	}
	fmt.Fprintf(p.Out, "Dose (lower boundary, angle %.1f deg, glancing blow) = %.6e Gy\n",
		r.Params.ThetaDeg, r.LowerGy)
	if r.LowerLethal(lethalGy) {
		fmt.Fprintf(p.Out, "*** WARNING: Dose exceeds %g Gy (lethal dose for humans)\n", lethalGy)
	}
	fmt.Fprintln(p.Out)
}
