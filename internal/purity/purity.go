// Package purity validates the restricted-expression contexts: boolean
// thunk evaluations and 지킴 guard statements. Both must stay effect-free,
// so the evaluator can re-run them for retries and reporting without drift.
package purity

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// Check walks the resolved program and reports the first purity violation.
// It runs after name resolution, so nondeterministic builtins are recognized
// under any derived spelling.
func Check(prog *ast.Program, seeds *seedlib.Table) *diagnostics.ParseError {
	var first *diagnostics.ParseError
	ast.Inspect(prog, func(n ast.Node) bool {
		if first != nil {
			return false
		}
		switch x := n.(type) {
		case *ast.Eval:
			if x.Mode.Boolean() {
				if v := findImpure(x.Thunk.Body, seeds); v != nil {
					first = diagnostics.New(diagnostics.ErrThunkImpure, v.span,
						"%s 평가 안에서 %s 는 쓸 수 없습니다", x.Mode, v.what)
				}
			}
		case *ast.Guard:
			first = checkGuard(x, seeds)
		}
		return first == nil
	})
	return first
}

// violation pins the offending construct for the error message.
type violation struct {
	span token.Span
	what string
}

// findImpure looks for the three banned constructs: mutation, do-mode
// evaluation, and nondeterministic builtin calls. The walk stops at the
// first hit.
func findImpure(n ast.Node, seeds *seedlib.Table) *violation {
	var v *violation
	ast.Inspect(n, func(m ast.Node) bool {
		if v != nil {
			return false
		}
		switch x := m.(type) {
		case *ast.Mutate:
			v = &violation{span: x.Span, what: "값 바꾸기(<-)"}
		case *ast.Eval:
			if x.Mode == ast.EvalDo {
				v = &violation{span: x.Span, what: "하기 평가"}
			}
		case *ast.Call:
			if sig, ok := seeds.Lookup(x.CanonName); ok && sig.Nondet {
				v = &violation{span: x.Span, what: "무작위 호출 '" + callName(x) + "'"}
			}
		}
		return v == nil
	})
	return v
}

// checkGuard enforces the 지킴 body shape (bare call statements only) and
// then the same purity rules as boolean thunks.
func checkGuard(g *ast.Guard, seeds *seedlib.Table) *diagnostics.ParseError {
	for _, st := range g.Body.Stmts {
		es, ok := st.(*ast.ExprStmt)
		if !ok {
			return diagnostics.New(diagnostics.ErrGuardBody, st.GetSpan(),
				"지킴 몸통에는 호출 문장만 올 수 있습니다 (%s 는 안 됩니다)", stmtKindName(st))
		}
		if _, ok := es.X.(*ast.Call); !ok {
			return diagnostics.New(diagnostics.ErrGuardBody, es.Span,
				"지킴 몸통에는 호출 문장만 올 수 있습니다")
		}
	}
	if v := findImpure(g.Body, seeds); v != nil {
		return diagnostics.New(diagnostics.ErrGuardBody, v.span,
			"지킴 몸통 안에서 %s 는 쓸 수 없습니다", v.what)
	}
	return nil
}

func callName(c *ast.Call) string {
	if c.Display != "" {
		return c.Display
	}
	return c.RawName
}

// stmtKindName names a statement kind for diagnostics.
func stmtKindName(s ast.Stmt) string {
	switch s.(type) {
	case *ast.Mutate:
		return "값 바꾸기"
	case *ast.If:
		return "만약"
	case *ast.While:
		return "동안 되풀이"
	case *ast.Repeat:
		return "거듭 되풀이"
	case *ast.ForEach:
		return "마다 되풀이"
	case *ast.Choose:
		return "고름"
	case *ast.Contract:
		return "다짐"
	case *ast.Guard:
		return "지킴"
	case *ast.DeclBlock:
		return "갖춤"
	case *ast.Return:
		return "돌려주기"
	case *ast.SeedDef:
		return "씨앗 정의"
	}
	return "이 문장"
}
