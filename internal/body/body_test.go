package body

import "testing"

func TestParseBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Body
	}{
		{"lowercase", "earth", Earth},
		{"uppercase", "JUPITER", Jupiter},
		{"mixed case", "PlUtO", Pluto},
		{"moon", "moon", Moon},
		{"vacuum", "vacuum", Vacuum},
		{"unknown defaults to earth", "phobos", Earth},
		{"empty defaults to earth", "", Earth},
		{"numeric-looking name defaults to earth", "42", Earth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBody(tt.in); got != tt.want {
				t.Errorf("ParseBody(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMaterial(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Material
	}{
		{"stony", "stony", Stony},
		{"iron uppercase", "IRON", Iron},
		{"cometary", "Cometary", Cometary},
		{"unknown defaults to stony", "basalt", Stony},
		{"empty defaults to stony", "", Stony},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMaterial(tt.in); got != tt.want {
				t.Errorf("ParseMaterial(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBindingEnergy(t *testing.T) {
	tests := []struct {
		body Body
		want float64
	}{
		{Earth, 2.49e32},
		{Mars, 4.87e30},
		{Venus, 1.57e32},
		{Jupiter, 2.06e36},
		{Saturn, 2.22e35},
		{Uranus, 1.19e34},
		{Neptune, 1.69e34},
		{Pluto, 2.85e27},
		{Moon, 1.23e29},
		{Vacuum, 2.49e32},
	}

	for _, tt := range tests {
		t.Run(tt.body.String(), func(t *testing.T) {
			if got := tt.body.BindingEnergy(); got != tt.want {
				t.Errorf("BindingEnergy() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestVacuumAliasesEarth(t *testing.T) {
	if Vacuum.BindingEnergy() != Earth.BindingEnergy() {
		t.Errorf("vacuum binding energy %g should alias earth %g",
			Vacuum.BindingEnergy(), Earth.BindingEnergy())
	}
}
