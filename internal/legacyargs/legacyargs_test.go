package legacyargs

import (
	"reflect"
	"testing"
)

func TestAtof(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3000", 3000},
		{"0.25", 0.25},
		{"1e3", 1000},
		{"1.2e17", 1.2e17},
		{"-2.5", -2.5},
		{"+4", 4},
		{"  42", 42},
		{"12abc", 12},
		{"3.5km", 3.5},
		{"1e", 1},
		{"1e+", 1},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{".", 0},
		{".5", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Atof(tt.in); got != tt.want {
				t.Errorf("Atof(%q) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"3000", true},
		{"2.5e-3", true},
		{"  7", true},
		{"-0.5", true},
		{"12abc", false},
		{"earth", false},
		{"1036 Ganymed", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsNumber(tt.in); got != tt.want {
				t.Errorf("IsNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Vectors drawn from the original tool's documented invocations; args are
// the tokens that follow the primary value.
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Classified
	}{
		{
			name: "epsilon name body material",
			args: []string{"0.25", "1036 Ganymed", "earth", "stony"},
			want: Classified{
				ObjectName:   "1036 Ganymed",
				BodyName:     "earth",
				MaterialName: "stony",
				Numeric:      []string{"0.25"},
			},
		},
		{
			name: "density epsilon name body material",
			args: []string{"2000", "0.25", "Apophis at 2000 kg/m^3", "jupiter", "stony"},
			want: Classified{
				ObjectName:   "Apophis at 2000 kg/m^3",
				BodyName:     "jupiter",
				MaterialName: "stony",
				Numeric:      []string{"2000", "0.25"},
			},
		},
		{
			name: "epsilon name body material cometary",
			args: []string{"0.25", "Oumuamua", "mars", "cometary"},
			want: Classified{
				ObjectName:   "Oumuamua",
				BodyName:     "mars",
				MaterialName: "cometary",
				Numeric:      []string{"0.25"},
			},
		},
		{
			name: "numbers only",
			args: []string{"3000", "1.0"},
			want: Classified{Numeric: []string{"3000", "1.0"}},
		},
		{
			name: "lone object name",
			args: []string{"Oumuamua"},
			want: Classified{ObjectName: "Oumuamua", Numeric: []string{}},
		},
		{
			name: "no trailing args",
			args: []string{},
			want: Classified{Numeric: []string{}},
		},
		{
			name: "number then name picks up name only",
			args: []string{"0.25", "Apophis"},
			want: Classified{ObjectName: "Apophis", Numeric: []string{"0.25"}},
		},
		{
			// Two non-numeric tokens alone are below the pair-probe
			// minimum; only the last becomes the object name. Inherited
			// from the original scanner.
			name: "two names without numerics",
			args: []string{"earth", "stony"},
			want: Classified{ObjectName: "stony", Numeric: []string{"earth"}},
		},
		{
			// A numeric final token suppresses the pair probe even when a
			// body name precedes it.
			name: "body name followed by number stays numeric",
			args: []string{"0.25", "earth", "3"},
			want: Classified{Numeric: []string{"0.25", "earth", "3"}},
		},
		{
			name: "body material pair without name",
			args: []string{"2000", "0.25", "venus", "iron"},
			want: Classified{
				BodyName:     "venus",
				MaterialName: "iron",
				Numeric:      []string{"2000", "0.25"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.args)
			if got.ObjectName != tt.want.ObjectName ||
				got.BodyName != tt.want.BodyName ||
				got.MaterialName != tt.want.MaterialName {
				t.Errorf("Classify(%v) names = (%q,%q,%q), want (%q,%q,%q)",
					tt.args, got.ObjectName, got.BodyName, got.MaterialName,
					tt.want.ObjectName, tt.want.BodyName, tt.want.MaterialName)
			}
			if !reflect.DeepEqual([]string(got.Numeric), []string(tt.want.Numeric)) {
				t.Errorf("Classify(%v) numeric = %v, want %v", tt.args, got.Numeric, tt.want.Numeric)
			}
		})
	}
}
