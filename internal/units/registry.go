package units

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed std_units.yaml
var stdYAML []byte

// Unit is one registered symbol. Scale is carried for the evaluator's
// benefit (converting to base units); the checker only reads Dim.
type Unit struct {
	Symbol string
	Dim    Dim
	Scale  float64
}

// Registry maps unit symbols to dimensions. A registry is built once per
// parse; extension tables loaded after Std() overwrite earlier entries.
type Registry struct {
	units map[string]Unit
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{units: make(map[string]Unit)}
}

// Add registers or overwrites a symbol.
func (r *Registry) Add(u Unit) {
	r.units[u.Symbol] = u
}

// Lookup finds a symbol.
func (r *Registry) Lookup(sym string) (Unit, bool) {
	u, ok := r.units[sym]
	return u, ok
}

// Symbols returns every registered symbol, sorted, for suggestion lists.
func (r *Registry) Symbols() []string {
	out := make([]string, 0, len(r.units))
	for s := range r.units {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

type yamlUnits struct {
	Units map[string]yamlUnit `yaml:"units"`
}

type yamlUnit struct {
	Length int8    `yaml:"length,omitempty"`
	Time   int8    `yaml:"time,omitempty"`
	Mass   int8    `yaml:"mass,omitempty"`
	Angle  int8    `yaml:"angle,omitempty"`
	Pixel  int8    `yaml:"pixel,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
}

// LoadYAML merges a unit table document into the registry.
func (r *Registry) LoadYAML(data []byte) error {
	var f yamlUnits
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	for sym, yu := range f.Units {
		if sym == "" {
			return fmt.Errorf("unit entry with empty symbol")
		}
		scale := yu.Scale
		if scale == 0 {
			scale = 1
		}
		r.Add(Unit{
			Symbol: sym,
			Dim: Dim{
				Length: yu.Length,
				Time:   yu.Time,
				Mass:   yu.Mass,
				Angle:  yu.Angle,
				Pixel:  yu.Pixel,
			},
			Scale: scale,
		})
	}
	return nil
}

var (
	stdOnce  sync.Once
	stdUnits []Unit
	stdErr   error
)

// Std returns a fresh registry preloaded with the builtin unit table, so
// per-parse extensions never leak across parses.
func Std() *Registry {
	stdOnce.Do(func() {
		r := NewRegistry()
		stdErr = r.LoadYAML(stdYAML)
		for _, sym := range r.Symbols() {
			u, _ := r.Lookup(sym)
			stdUnits = append(stdUnits, u)
		}
	})
	if stdErr != nil {
		panic("units: embedded std_units.yaml is invalid: " + stdErr.Error())
	}
	r := NewRegistry()
	for _, u := range stdUnits {
		r.Add(u)
	}
	return r
}
