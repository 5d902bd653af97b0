package resolver

import (
	"sort"
	"strings"

	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
)

// InjectFlow gives every non-first pipeline stage its upstream value, then
// rejects flow placeholders that have no pipeline to draw from.
func InjectFlow(prog *ast.Program, tbl *seedlib.Table) *diagnostics.ParseError {
	var first *diagnostics.ParseError
	ast.Inspect(prog, func(n ast.Node) bool {
		if first != nil {
			return false
		}
		pipe, ok := n.(*ast.Pipe)
		if !ok {
			return true
		}
		for _, stage := range pipe.Stages[1:] {
			call, ok := stage.(*ast.Call)
			if !ok {
				continue // the parser already rejected this shape
			}
			if err := injectStage(prog, tbl, call); err != nil {
				first = err
				return false
			}
		}
		return true
	})
	if first != nil {
		return first
	}

	// Any ? the injector did not claim sits outside a pipeline stage.
	ast.Inspect(prog, func(n ast.Node) bool {
		if first != nil {
			return false
		}
		c, ok := n.(*ast.Call)
		if !ok {
			return true
		}
		for _, a := range c.Args {
			if _, isFlow := a.Value.(*ast.Flow); isFlow && a.Reason != ast.BindFlowInjected {
				first = diagnostics.New(diagnostics.ErrFlowPlaceholder, a.Value.GetSpan(),
					"'?' 는 해서 흐름의 둘째 단계부터 쓸 수 있습니다")
				return false
			}
		}
		return true
	})
	return first
}

// injectStage decides where the upstream value lands in one stage call.
func injectStage(prog *ast.Program, tbl *seedlib.Table, call *ast.Call) *diagnostics.ParseError {
	// A stage that spells the flow out with ? already consumes it.
	claimed := false
	for _, a := range call.Args {
		if _, ok := a.Value.(*ast.Flow); ok {
			a.Reason = ast.BindFlowInjected
			claimed = true
		}
	}
	if claimed {
		return nil
	}

	sig, ok := tbl.Lookup(call.CanonName)
	if !ok {
		return nil // unreachable after name resolution
	}

	flowArg := func(pin string) *ast.ArgBinding {
		return &ast.ArgBinding{
			Value:  &ast.Flow{Base: ast.Base{NodeID: prog.MintID(), Span: call.NameSpan}},
			Pin:    pin,
			Reason: ast.BindFlowInjected,
			Span:   call.NameSpan,
		}
	}

	// Flow transforms take the upstream value in their leading slot,
	// whatever else the stage spells out.
	if sig.FlowFirst {
		call.Args = append([]*ast.ArgBinding{flowArg("")}, call.Args...)
		return nil
	}

	open := openParams(sig.Params, call.Args)
	var cands []*ast.ParamPin
	for _, pin := range open {
		if pin.AcceptsJosa("을") || pin.AcceptsJosa("를") {
			cands = append(cands, pin)
		}
	}
	if len(cands) > 1 {
		return ambiguousFlow(call, cands)
	}
	if len(cands) == 0 {
		for _, pin := range open {
			if pin.Required() {
				cands = append(cands, pin)
			}
		}
		if len(cands) != 1 {
			return ambiguousFlow(call, cands)
		}
	}
	call.Args = append(call.Args, flowArg(cands[0].PinName))
	return nil
}

func ambiguousFlow(call *ast.Call, cands []*ast.ParamPin) *diagnostics.ParseError {
	if len(cands) == 0 {
		return diagnostics.New(diagnostics.ErrFlowInjectAmbiguous, call.NameSpan,
			"'%s' 단계에 흐름값이 들어갈 핀이 없습니다; 핀=? 로 직접 받으세요", displayName(call))
	}
	names := make([]string, len(cands))
	for i, pin := range cands {
		names[i] = "'" + pin.PinName + "'"
	}
	sort.Strings(names)
	return diagnostics.New(diagnostics.ErrFlowInjectAmbiguous, call.NameSpan,
		"'%s' 단계에 흐름값이 들어갈 핀이 여럿입니다 (%s); 핀=? 로 고르세요",
		displayName(call), strings.Join(names, ", "))
}
