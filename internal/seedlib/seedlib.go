// Package seedlib is the read-only table of known seed signatures.
//
// The call-name resolver and the argument binder both consult it. Builtin
// signatures ship as embedded YAML; user-defined seeds are added while the
// resolver walks a program. The table owns nothing beyond names and
// ParamPin lists; bodies stay on the AST.
package seedlib

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ssiat-lang/ssiat/internal/ast"
)

//go:embed std.yaml
var stdYAML []byte

// Signature describes one callable seed.
type Signature struct {
	Name   string
	Kind   ast.SeedKind
	Params []*ast.ParamPin

	// FlowFirst marks the builtin transforms (채우기, 풀기) whose first
	// slot always receives the pipeline flow value, unconditionally.
	FlowFirst bool

	// Nondet marks builtins the purity validator bans from boolean-thunk
	// and guard contexts (아무수).
	Nondet bool

	// Def points back at the user definition; nil for builtins.
	Def *ast.SeedDef
}

// Table maps canonical seed names to signatures.
type Table struct {
	sigs map[string]*Signature
}

// NewTable returns a table preloaded with the builtin signatures.
func NewTable() *Table {
	t := &Table{sigs: make(map[string]*Signature)}
	for _, sig := range Std() {
		t.sigs[sig.Name] = sig
	}
	return t
}

// Define registers a signature. It reports false when the exact name is
// already taken (builtin or user); the caller owns the diagnostic.
func (t *Table) Define(sig *Signature) bool {
	if _, exists := t.sigs[sig.Name]; exists {
		return false
	}
	t.sigs[sig.Name] = sig
	return true
}

// Lookup finds a signature by canonical name.
func (t *Table) Lookup(name string) (*Signature, bool) {
	sig, ok := t.sigs[name]
	return sig, ok
}

// Names returns every known canonical name, sorted, for suggestion lists
// and deterministic error text.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.sigs))
	for n := range t.sigs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

var (
	stdOnce sync.Once
	stdSigs []*Signature
	stdErr  error
)

// Std returns the builtin signatures parsed from the embedded table. The
// embedded YAML is part of the build; a parse failure is a programming
// error, hence the panic.
func Std() []*Signature {
	stdOnce.Do(func() {
		stdSigs, stdErr = LoadYAML(stdYAML)
	})
	if stdErr != nil {
		panic("seedlib: embedded std.yaml is invalid: " + stdErr.Error())
	}
	return stdSigs
}

type yamlFile struct {
	Seeds []yamlSeed `yaml:"seeds"`
}

type yamlSeed struct {
	Name      string      `yaml:"name"`
	FlowFirst bool        `yaml:"flow_first,omitempty"`
	Nondet    bool        `yaml:"nondet,omitempty"`
	Params    []yamlParam `yaml:"params,omitempty"`
}

type yamlParam struct {
	Pin      string   `yaml:"pin"`
	Josa     []string `yaml:"josa,omitempty"`
	Type     string   `yaml:"type,omitempty"`
	Optional bool     `yaml:"optional,omitempty"`
	Default  *yamlLit `yaml:"default,omitempty"`
}

// yamlLit restricts registry defaults to scalar literals. User seeds may
// default to arbitrary expressions, but those come from source, not YAML.
type yamlLit struct {
	node yaml.Node
}

func (l *yamlLit) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("default must be a scalar, got %v", n.Kind)
	}
	l.node = *n
	return nil
}

func (l *yamlLit) expr() (ast.Expr, error) {
	var iv int64
	if err := l.node.Decode(&iv); err == nil {
		return &ast.IntLit{Value: iv}, nil
	}
	var fv float64
	if err := l.node.Decode(&fv); err == nil {
		return &ast.FloatLit{Value: fv}, nil
	}
	var bv bool
	if err := l.node.Decode(&bv); err == nil {
		return &ast.BoolLit{Value: bv}, nil
	}
	var sv string
	if err := l.node.Decode(&sv); err == nil {
		if sv == "없음" {
			return &ast.NoneLit{}, nil
		}
		return &ast.StrLit{Value: sv}, nil
	}
	return nil, fmt.Errorf("unsupported default literal %q", l.node.Value)
}

// LoadYAML parses a seed-signature document. Used for the embedded builtin
// table and for user-supplied extension files.
func LoadYAML(data []byte) ([]*Signature, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	sigs := make([]*Signature, 0, len(f.Seeds))
	for _, ys := range f.Seeds {
		if ys.Name == "" {
			return nil, fmt.Errorf("seed entry is missing a name")
		}
		sig := &Signature{
			Name:      ys.Name,
			Kind:      ast.KindBuiltin,
			FlowFirst: ys.FlowFirst,
			Nondet:    ys.Nondet,
		}
		for _, yp := range ys.Params {
			if yp.Pin == "" {
				return nil, fmt.Errorf("seed %q has a parameter without a pin name", ys.Name)
			}
			pin := &ast.ParamPin{
				PinName:  yp.Pin,
				Type:     ast.TypeRef{Name: yp.Type},
				Optional: yp.Optional,
				JosaList: yp.Josa,
			}
			if yp.Default != nil {
				expr, err := yp.Default.expr()
				if err != nil {
					return nil, fmt.Errorf("seed %q, pin %q: %v", ys.Name, yp.Pin, err)
				}
				pin.Default = expr
			}
			if err := checkJosaUnique(sig.Name, pin, sig.Params); err != nil {
				return nil, err
			}
			sig.Params = append(sig.Params, pin)
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

// checkJosaUnique enforces the per-parameter invariant: one particle may
// not appear twice in a single pin's josa list. Duplication across
// different parameters is legal here; the binder reports it as call-site
// ambiguity instead.
func checkJosaUnique(seed string, pin *ast.ParamPin, _ []*ast.ParamPin) error {
	seen := make(map[string]bool, len(pin.JosaList))
	for _, j := range pin.JosaList {
		if seen[j] {
			return fmt.Errorf("seed %q, pin %q: particle %q listed twice", seed, pin.PinName, j)
		}
		seen[j] = true
	}
	return nil
}
