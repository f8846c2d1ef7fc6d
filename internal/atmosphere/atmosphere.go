// Package atmosphere answers how much of an impactor's kinetic energy
// survives atmospheric passage to reach the surface. The answer is a
// piecewise-constant function of impactor diameter, keyed by target body
// and impactor material, backed by an embedded catalog parsed once at
// process start.
package atmosphere

import (
	_ "embed"
	"fmt"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/perihelion-works/unbind/internal/body"
)

//go:embed retention.toml
var rawCatalog []byte

// Profile is one (body, material) retention curve: ascending diameter cut
// points in km and the retained fraction for each bin. Retained always has
// one more entry than ThresholdsKm; the final entry covers all diameters
// at or above the last threshold.
type Profile struct {
	Material     string    `toml:"material"`
	ThresholdsKm []float64 `toml:"thresholds_km"`
	Retained     []float64 `toml:"retained"`
}

// Entry exposes one parsed catalog profile with its resolved keys.
type Entry struct {
	Body         body.Body
	Material     body.Material
	ThresholdsKm []float64
	Retained     []float64
}

type bodyEntry struct {
	Name     string    `toml:"name"`
	Profiles []Profile `toml:"profile"`
}

type catalogDoc struct {
	Bodies []bodyEntry `toml:"body"`
}

type profileKey struct {
	b body.Body
	m body.Material
}

var profiles = mustLoadCatalog(rawCatalog)

func mustLoadCatalog(data []byte) map[profileKey]Profile {
	var doc catalogDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("atmosphere: parsing embedded retention catalog: %v", err))
	}

	out := make(map[profileKey]Profile)
	for _, b := range doc.Bodies {
		bk := body.ParseBody(b.Name)
		for _, p := range b.Profiles {
			if err := validateProfile(p); err != nil {
				panic(fmt.Sprintf("atmosphere: catalog profile %s/%s: %v", b.Name, p.Material, err))
			}
			out[profileKey{bk, body.ParseMaterial(p.Material)}] = p
		}
	}
	return out
}

func validateProfile(p Profile) error {
	if len(p.Retained) != len(p.ThresholdsKm)+1 {
		return fmt.Errorf("retained has %d entries, want %d", len(p.Retained), len(p.ThresholdsKm)+1)
	}
	if !sort.Float64sAreSorted(p.ThresholdsKm) {
		return fmt.Errorf("thresholds_km not ascending: %v", p.ThresholdsKm)
	}
	for _, v := range p.Retained {
		if v < 0 || v > 1 {
			return fmt.Errorf("retained fraction %g outside [0,1]", v)
		}
	}
	return nil
}

// Retention returns the fraction of kinetic energy that reaches the
// surface for an impactor of the given diameter. Bins are left-closed:
// a diameter strictly below a threshold takes the bin beneath it, and a
// diameter exactly at a threshold takes the bin above. Combinations not
// modeled in the catalog (the Vacuum pseudo-body in particular) retain
// everything.
func Retention(diameterKm float64, b body.Body, m body.Material) float64 {
	p, ok := profiles[profileKey{b, m}]
	if !ok {
		return 1.0
	}
	for i, t := range p.ThresholdsKm {
		if diameterKm < t {
			return p.Retained[i]
		}
	}
	return p.Retained[len(p.Retained)-1]
}

// Catalog returns a copy of every parsed retention profile, ordered by
// body then material. Intended for property checks and diagnostics.
func Catalog() []Entry {
	out := make([]Entry, 0, len(profiles))
	for k, p := range profiles {
		out = append(out, Entry{
			Body:         k.b,
			Material:     k.m,
			ThresholdsKm: append([]float64(nil), p.ThresholdsKm...),
			Retained:     append([]float64(nil), p.Retained...),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Body != out[j].Body {
			return out[i].Body < out[j].Body
		}
		return out[i].Material < out[j].Material
	})
	return out
}
