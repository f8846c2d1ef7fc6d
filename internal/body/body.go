// Package body holds the registry of target bodies and impactor materials:
// fixed name sets, gravitational binding energies, and the case-insensitive
// lookups the CLI layers resolve raw names through. All data is immutable
// and initialized at process start.
package body

import "strings"

// Body identifies a target body for an impact scenario.
type Body int

const (
	Earth Body = iota
	Mars
	Venus
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Moon
	Vacuum
)

// Material identifies the bulk composition of an impactor. It carries no
// intrinsic attributes; it is a lookup key into the retention catalog.
type Material int

const (
	Stony Material = iota
	Iron
	Cometary
)

var bodyNames = map[string]Body{
	"earth":   Earth,
	"mars":    Mars,
	"venus":   Venus,
	"jupiter": Jupiter,
	"saturn":  Saturn,
	"uranus":  Uranus,
	"neptune": Neptune,
	"pluto":   Pluto,
	"moon":    Moon,
	"vacuum":  Vacuum,
}

var bodyStrings = [...]string{
	Earth:   "earth",
	Mars:    "mars",
	Venus:   "venus",
	Jupiter: "jupiter",
	Saturn:  "saturn",
	Uranus:  "uranus",
	Neptune: "neptune",
	Pluto:   "pluto",
	Moon:    "moon",
	Vacuum:  "vacuum",
}

// Gravitational binding energies in joules. Vacuum aliases Earth so a
// scenario with no atmosphere still has a defined unbinding target.
var bindingEnergies = [...]float64{
	Earth:   2.49e32,
	Mars:    4.87e30,
	Venus:   1.57e32,
	Jupiter: 2.06e36,
	Saturn:  2.22e35,
	Uranus:  1.19e34,
	Neptune: 1.69e34,
	Pluto:   2.85e27,
	Moon:    1.23e29,
	Vacuum:  2.49e32,
}

var materialNames = map[string]Material{
	"stony":    Stony,
	"iron":     Iron,
	"cometary": Cometary,
}

var materialStrings = [...]string{
	Stony:    "stony",
	Iron:     "iron",
	Cometary: "cometary",
}

// ParseBody resolves a body name case-insensitively. Empty or unrecognized
// names resolve to Earth; parsing never fails.
func ParseBody(name string) Body {
	if b, ok := bodyNames[strings.ToLower(name)]; ok {
		return b
	}
	return Earth
}

// ParseMaterial resolves a material name case-insensitively. Empty or
// unrecognized names resolve to Stony; parsing never fails.
func ParseMaterial(name string) Material {
	if m, ok := materialNames[strings.ToLower(name)]; ok {
		return m
	}
	return Stony
}

func (b Body) String() string {
	if int(b) < len(bodyStrings) {
		return bodyStrings[b]
	}
	return "earth"
}

// BindingEnergy returns the gravitational binding energy of b in joules.
func (b Body) BindingEnergy() float64 {
	if int(b) < len(bindingEnergies) {
		return bindingEnergies[b]
	}
	return bindingEnergies[Earth]
}

func (m Material) String() string {
	if int(m) < len(materialStrings) {
		return materialStrings[m]
	}
	return "stony"
}
