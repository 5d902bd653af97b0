// Package resolver turns a parsed program into a fully bound one: every
// seed is registered, every call spelling is mapped to its canonical seed,
// every pipeline stage has its upstream value, and every argument list is
// rewritten into parameter order.
//
// The passes run in a fixed order (seed table, call names, flow injection,
// binding) and each walks the whole tree, so every pass sees the previous
// pass's finished output. All of them stop at the first error.
package resolver

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
)

// Resolve runs every resolution pass over prog. Builtins and registry
// extensions come preloaded in tbl; pass nil for the standard table.
func Resolve(prog *ast.Program, tbl *seedlib.Table) (*seedlib.Table, *diagnostics.ParseError) {
	if tbl == nil {
		tbl = seedlib.NewTable()
	}
	if err := DefineSeeds(tbl, prog); err != nil {
		return tbl, err
	}
	if err := ResolveNames(prog, tbl); err != nil {
		return tbl, err
	}
	if err := InjectFlow(prog, tbl); err != nil {
		return tbl, err
	}
	if err := BindCalls(prog, tbl); err != nil {
		return tbl, err
	}
	return tbl, nil
}

// displayName picks the spelling diagnostics should show for a call.
func displayName(c *ast.Call) string {
	if c.Display != "" {
		return c.Display
	}
	return c.RawName
}
