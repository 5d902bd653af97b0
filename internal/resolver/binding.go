package resolver

import (
	"sort"
	"strings"

	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// BindCalls rewrites every call's argument list into parameter order.
func BindCalls(prog *ast.Program, tbl *seedlib.Table) *diagnostics.ParseError {
	var first *diagnostics.ParseError
	ast.Inspect(prog, func(n ast.Node) bool {
		if first != nil {
			return false
		}
		c, ok := n.(*ast.Call)
		if !ok {
			return true
		}
		sig, ok := tbl.Lookup(c.CanonName)
		if !ok {
			return true // unreachable after name resolution
		}
		if err := BindArgs(prog, c, sig); err != nil {
			first = err
			return false
		}
		return true
	})
	return first
}

// bound reports whether a call's arguments are already in final form.
// Shared default expressions splice the same subtree into many call sites,
// so the walk can reach a call twice; binding must not run again.
func bound(c *ast.Call, sig *seedlib.Signature) bool {
	if len(c.Args) != len(sig.Params) {
		return false
	}
	for _, a := range c.Args {
		if a.ResolvedPin == "" {
			return false
		}
	}
	return true
}

// BindArgs resolves one call's arguments against sig in the fixed order:
// explicit pins, bare particles, positional fallback, then defaults and
// optional holes. The order is load-bearing: pins take absolute precedence,
// and a particle-tagged argument never consumes a positional slot.
func BindArgs(prog *ast.Program, call *ast.Call, sig *seedlib.Signature) *diagnostics.ParseError {
	params := sig.Params
	if bound(call, sig) {
		return nil
	}
	slots := make([]*ast.ArgBinding, len(params))
	index := func(pin string) int {
		for i, prm := range params {
			if prm.PinName == pin {
				return i
			}
		}
		return -1
	}

	// Explicit pins bind first and bypass particle matching; a particle
	// written alongside a pin must still be one the pin accepts.
	for _, a := range call.Args {
		if a.Pin == "" {
			continue
		}
		i := index(a.Pin)
		if i < 0 {
			hint := diagnostics.DidYouMean(diagnostics.Suggest(a.Pin, pinNames(params), 2))
			return diagnostics.New(diagnostics.ErrPinNotFound, pinErrSpan(a),
				"'%s' 에는 '%s' 핀이 없습니다%s", displayName(call), a.Pin, hint)
		}
		if slots[i] != nil {
			return diagnostics.New(diagnostics.ErrDupBinding, a.Span,
				"핀 '%s' 에 인자가 두 번 묶였습니다", a.Pin)
		}
		if a.Josa != "" && !params[i].AcceptsJosa(a.Josa) {
			return diagnostics.New(diagnostics.ErrParticleNotAllowed, a.JosaSpan,
				"핀 '%s' 은 조사 '%s' 를 받지 않습니다 (받는 조사: %s)",
				a.Pin, a.Josa, josaNames(params[i]))
		}
		if a.Reason != ast.BindFlowInjected {
			a.Reason = ast.BindUserFixed
		}
		a.ResolvedPin = params[i].PinName
		slots[i] = a
	}

	// Bare particles consult every still-open pin's particle list; anything
	// but exactly one match must be rewritten with an explicit pin.
	for _, a := range call.Args {
		if a.Pin != "" || a.Josa == "" {
			continue
		}
		var matches []int
		for i, prm := range params {
			if slots[i] == nil && prm.AcceptsJosa(a.Josa) {
				matches = append(matches, i)
			}
		}
		switch {
		case len(matches) == 0:
			return diagnostics.New(diagnostics.ErrNoParamForParticle, a.JosaSpan,
				"조사 '%s' 를 받는 빈 핀이 '%s' 에 없습니다", a.Josa, displayName(call))
		case len(matches) > 1:
			names := make([]string, len(matches))
			for k, i := range matches {
				names[k] = "'" + params[i].PinName + "'"
			}
			sort.Strings(names)
			return diagnostics.New(diagnostics.ErrAmbiguousParticle, a.JosaSpan,
				"조사 '%s' 가 여러 핀에 맞습니다 (%s); 핀=값 으로 고르세요",
				a.Josa, strings.Join(names, ", "))
		}
		i := matches[0]
		if a.Reason != ast.BindFlowInjected {
			a.Reason = ast.BindDictionary
		}
		a.ResolvedPin = params[i].PinName
		slots[i] = a
	}

	// Positional fallback fills the remaining pins in declaration order.
	for _, a := range call.Args {
		if a.Pin != "" || a.Josa != "" {
			continue
		}
		placed := false
		for i := range params {
			if slots[i] != nil {
				continue
			}
			if a.Reason != ast.BindFlowInjected {
				a.Reason = ast.BindPositional
			}
			a.ResolvedPin = params[i].PinName
			slots[i] = a
			placed = true
			break
		}
		if !placed {
			return diagnostics.New(diagnostics.ErrTooManyArgs, a.Span,
				"'%s' 은 인자를 %d개 받는데 더 왔습니다", displayName(call), len(params))
		}
	}

	// Whatever is still open fills from defaults, then the optional hole,
	// and only then fails.
	for i, prm := range params {
		if slots[i] != nil {
			continue
		}
		switch {
		case prm.Default != nil:
			slots[i] = &ast.ArgBinding{
				Value:       prm.Default,
				ResolvedPin: prm.PinName,
				Reason:      ast.BindDefault,
				Span:        call.NameSpan,
			}
		case prm.Optional:
			slots[i] = &ast.ArgBinding{
				Value:       &ast.NoneLit{Base: ast.Base{NodeID: prog.MintID(), Span: call.NameSpan}},
				ResolvedPin: prm.PinName,
				Reason:      ast.BindOptionalNone,
				Span:        call.NameSpan,
			}
		default:
			return diagnostics.New(diagnostics.ErrMissingRequiredArg, call.NameSpan,
				"'%s' 호출에 필수 핀 '%s' 이 빠졌습니다", displayName(call), prm.PinName)
		}
	}

	call.Args = slots
	return nil
}

// openParams simulates the pin, particle and positional steps without
// failing, so the flow injector can see which pins an explicit argument list
// leaves open. Binding errors are left for BindArgs to report properly.
func openParams(params []*ast.ParamPin, args []*ast.ArgBinding) []*ast.ParamPin {
	filled := make([]bool, len(params))
	index := func(pin string) int {
		for i, prm := range params {
			if prm.PinName == pin {
				return i
			}
		}
		return -1
	}
	for _, a := range args {
		if a.Pin == "" {
			continue
		}
		if i := index(a.Pin); i >= 0 && !filled[i] {
			filled[i] = true
		}
	}
	for _, a := range args {
		if a.Pin != "" || a.Josa == "" {
			continue
		}
		var matches []int
		for i, prm := range params {
			if !filled[i] && prm.AcceptsJosa(a.Josa) {
				matches = append(matches, i)
			}
		}
		if len(matches) == 1 {
			filled[matches[0]] = true
		}
	}
	for _, a := range args {
		if a.Pin != "" || a.Josa != "" {
			continue
		}
		for i := range params {
			if !filled[i] {
				filled[i] = true
				break
			}
		}
	}

	var open []*ast.ParamPin
	for i, prm := range params {
		if !filled[i] {
			open = append(open, prm)
		}
	}
	return open
}

func pinNames(params []*ast.ParamPin) []string {
	out := make([]string, len(params))
	for i, prm := range params {
		out[i] = prm.PinName
	}
	return out
}

func josaNames(prm *ast.ParamPin) string {
	quoted := make([]string, len(prm.JosaList))
	for i, j := range prm.JosaList {
		quoted[i] = "'" + j + "'"
	}
	return strings.Join(quoted, ", ")
}

func pinErrSpan(a *ast.ArgBinding) token.Span {
	if !a.PinSpan.Empty() {
		return a.PinSpan
	}
	return a.Span
}
