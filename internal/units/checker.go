package units

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// Checker runs the dimension fold over a resolved program. It tracks one
// DimState per variable and scope so assignments can be cross-checked, and
// stops at the first provable mismatch.
//
// Calls, field accesses, packs, templates and pipeline stages are opaque:
// their result is Unknown and Unknown never fails. Only what the checker
// can prove wrong is reported.
type Checker struct {
	reg    *Registry
	scopes []map[string]DimState
}

// NewChecker builds a checker over a unit registry.
func NewChecker(reg *Registry) *Checker {
	return &Checker{reg: reg}
}

// Check folds over every statement of the program, top level first, then
// each seed body with its parameters in scope.
func (c *Checker) Check(p *ast.Program) *diagnostics.ParseError {
	c.scopes = c.scopes[:0]
	c.push()
	defer c.pop()
	for _, it := range p.Items {
		if err := c.stmt(it); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) push() {
	c.scopes = append(c.scopes, make(map[string]DimState))
}

func (c *Checker) pop() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// declare binds a name in the innermost scope.
func (c *Checker) declare(name string, d DimState) {
	c.scopes[len(c.scopes)-1][name] = d
}

// assign updates the scope that already holds the name, or declares it in
// the innermost one.
func (c *Checker) assign(name string, d DimState) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if _, ok := c.scopes[i][name]; ok {
			c.scopes[i][name] = d
			return
		}
	}
	c.declare(name, d)
}

func (c *Checker) lookupVar(name string) (DimState, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if d, ok := c.scopes[i][name]; ok {
			return d, true
		}
	}
	return Unknown(), false
}

func (c *Checker) stmt(s ast.Stmt) *diagnostics.ParseError {
	switch s := s.(type) {
	case *ast.SeedDef:
		return c.seedDef(s)
	case *ast.Block:
		return c.block(s)
	case *ast.If:
		if _, err := c.expr(s.Cond); err != nil {
			return err
		}
		if err := c.block(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return c.stmt(s.Else)
		}
		return nil
	case *ast.While:
		if _, err := c.expr(s.Cond); err != nil {
			return err
		}
		return c.block(s.Body)
	case *ast.Repeat:
		if _, err := c.expr(s.Count); err != nil {
			return err
		}
		return c.block(s.Body)
	case *ast.ForEach:
		if _, err := c.expr(s.Seq); err != nil {
			return err
		}
		c.push()
		defer c.pop()
		if s.Binder != "" {
			c.declare(s.Binder, Unknown())
		}
		for _, st := range s.Body.Stmts {
			if err := c.stmt(st); err != nil {
				return err
			}
		}
		return nil
	case *ast.Choose:
		for _, arm := range s.Arms {
			if _, err := c.expr(arm.Cond); err != nil {
				return err
			}
			if err := c.block(arm.Body); err != nil {
				return err
			}
		}
		if s.Else != nil {
			return c.block(s.Else)
		}
		return nil
	case *ast.Contract:
		_, err := c.expr(s.Cond)
		return err
	case *ast.Guard:
		if _, err := c.expr(s.Cond); err != nil {
			return err
		}
		return c.block(s.Body)
	case *ast.DeclBlock:
		for _, d := range s.Decls {
			dim, err := c.expr(d.Value)
			if err != nil {
				return err
			}
			c.declare(d.Name, dim)
		}
		return nil
	case *ast.Mutate:
		return c.mutate(s)
	case *ast.Return:
		if s.Value != nil {
			_, err := c.expr(s.Value)
			return err
		}
		return nil
	case *ast.ExprStmt:
		_, err := c.expr(s.X)
		return err
	case *ast.Directive:
		return nil
	}
	return nil
}

func (c *Checker) block(b *ast.Block) *diagnostics.ParseError {
	c.push()
	defer c.pop()
	for _, st := range b.Stmts {
		if err := c.stmt(st); err != nil {
			return err
		}
	}
	return nil
}

// seedDef brings the parameters into scope. A parameter with a declared
// unit enters Known; its default value, when present, must not provably
// contradict that unit.
func (c *Checker) seedDef(sd *ast.SeedDef) *diagnostics.ParseError {
	c.push()
	defer c.pop()
	for _, p := range sd.Params {
		declared := Unknown()
		if p.Type.Unit != "" {
			u, ok := c.reg.Lookup(p.Type.Unit)
			if !ok {
				return c.unknownUnit(p.Type.Unit, p.Type.Span)
			}
			declared = Of(u.Dim)
		}
		if p.Default != nil {
			dim, err := c.expr(p.Default)
			if err != nil {
				return err
			}
			if declared.Known && dim.Known && declared.Dim != dim.Dim {
				return diagnostics.New(diagnostics.ErrUnitMismatch, p.Span,
					"매개변수 '%s'의 기본값 차원이 선언된 단위와 다릅니다 (선언 %s, 기본값 %s)",
					p.PinName, declared.Dim, dim.Dim)
			}
		}
		c.declare(p.PinName, declared)
	}
	return c.block(sd.Body)
}

func (c *Checker) mutate(m *ast.Mutate) *diagnostics.ParseError {
	vdim, err := c.expr(m.Value)
	if err != nil {
		return err
	}
	for _, target := range m.Targets {
		id, ok := target.(*ast.Ident)
		if !ok {
			// Field and index targets are opaque containers.
			if _, err := c.expr(target); err != nil {
				return err
			}
			continue
		}
		prev, declared := c.lookupVar(id.Name)
		if declared && prev.Known && vdim.Known && prev.Dim != vdim.Dim {
			return diagnostics.New(diagnostics.ErrUnitMismatch, m.GetSpan(),
				"변수 '%s'에 차원이 다른 값을 쓸 수 없습니다 (기존 %s, 새 값 %s)",
				id.Name, prev.Dim, vdim.Dim)
		}
		// An Unknown value wipes what was known: the variable may
		// legitimately hold any dimension afterwards.
		c.assign(id.Name, vdim)
	}
	return nil
}

func (c *Checker) expr(e ast.Expr) (DimState, *diagnostics.ParseError) {
	switch e := e.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.StrLit, *ast.BoolLit, *ast.NoneLit:
		return Dimensionless(), nil
	case *ast.Ident:
		d, _ := c.lookupVar(e.Name)
		return d, nil
	case *ast.Flow:
		return Unknown(), nil
	case *ast.Prefix:
		return c.expr(e.X)
	case *ast.Infix:
		return c.infix(e)
	case *ast.Range:
		from, err := c.expr(e.From)
		if err != nil {
			return Unknown(), err
		}
		to, err := c.expr(e.To)
		if err != nil {
			return Unknown(), err
		}
		if from.Known && to.Known && from.Dim != to.Dim {
			return Unknown(), diagnostics.New(diagnostics.ErrUnitMismatch, e.GetSpan(),
				"범위의 시작과 끝의 차원이 다릅니다 (%s 부터 %s 까지)", from.Dim, to.Dim)
		}
		return Unknown(), nil
	case *ast.Call:
		for _, arg := range e.Args {
			if _, err := c.expr(arg.Value); err != nil {
				return Unknown(), err
			}
		}
		return Unknown(), nil
	case *ast.FieldAccess:
		if _, err := c.expr(e.X); err != nil {
			return Unknown(), err
		}
		return Unknown(), nil
	case *ast.Pipe:
		for _, st := range e.Stages {
			if _, err := c.expr(st); err != nil {
				return Unknown(), err
			}
		}
		return Unknown(), nil
	case *ast.Pack:
		for _, el := range e.Elems {
			if _, err := c.expr(el); err != nil {
				return Unknown(), err
			}
		}
		return Unknown(), nil
	case *ast.Template:
		for _, part := range e.Parts {
			if part.Expr == nil {
				continue
			}
			if _, err := c.expr(part.Expr); err != nil {
				return Unknown(), err
			}
		}
		return Unknown(), nil
	case *ast.Formula:
		// The body is quoted for a later solver, but a provable mismatch
		// inside it is wrong today.
		if e.Body != nil {
			if _, err := c.expr(e.Body); err != nil {
				return Unknown(), err
			}
		}
		return Unknown(), nil
	case *ast.Thunk:
		return Unknown(), c.block(e.Body)
	case *ast.Eval:
		if err := c.block(e.Thunk.Body); err != nil {
			return Unknown(), err
		}
		if e.Mode.Boolean() {
			return Dimensionless(), nil
		}
		return Unknown(), nil
	case *ast.Suffix:
		return c.suffix(e)
	}
	return Unknown(), nil
}

func (c *Checker) infix(e *ast.Infix) (DimState, *diagnostics.ParseError) {
	left, err := c.expr(e.Left)
	if err != nil {
		return Unknown(), err
	}
	right, err := c.expr(e.Right)
	if err != nil {
		return Unknown(), err
	}
	switch e.Op {
	case "+", "-", "%":
		if !left.Known || !right.Known {
			return Unknown(), nil
		}
		if left.Dim != right.Dim {
			return Unknown(), diagnostics.New(diagnostics.ErrUnitMismatch, e.GetSpan(),
				"단위 차원이 맞지 않습니다: %s %s %s", left.Dim, e.Op, right.Dim)
		}
		return left, nil
	case "*":
		if !left.Known || !right.Known {
			return Unknown(), nil
		}
		return Of(left.Dim.Add(right.Dim)), nil
	case "/":
		if !left.Known || !right.Known {
			return Unknown(), nil
		}
		return Of(left.Dim.Sub(right.Dim)), nil
	case "==", "!=", "<", "<=", ">", ">=":
		if left.Known && right.Known && left.Dim != right.Dim {
			return Unknown(), diagnostics.New(diagnostics.ErrUnitMismatch, e.GetSpan(),
				"차원이 다른 값을 비교할 수 없습니다: %s %s %s", left.Dim, e.Op, right.Dim)
		}
		return Dimensionless(), nil
	case "그리고", "또는":
		return Dimensionless(), nil
	}
	return Unknown(), nil
}

// suffix checks expr@unit: the symbol must be registered, and an inner
// expression that already carries a known, non-dimensionless dimension must
// agree with it. The suffix's dimension wins otherwise, which is how a bare
// literal acquires a unit in the first place.
func (c *Checker) suffix(e *ast.Suffix) (DimState, *diagnostics.ParseError) {
	inner, err := c.expr(e.X)
	if err != nil {
		return Unknown(), err
	}
	u, ok := c.reg.Lookup(e.Unit)
	if !ok {
		return Unknown(), c.unknownUnit(e.Unit, e.UnitSpan)
	}
	if inner.Known && !inner.Dim.IsZero() && inner.Dim != u.Dim {
		return Unknown(), diagnostics.New(diagnostics.ErrUnitMismatch, e.GetSpan(),
			"이미 %s 차원인 값에 @%s(%s)를 붙일 수 없습니다", inner.Dim, e.Unit, u.Dim)
	}
	return Of(u.Dim), nil
}

func (c *Checker) unknownUnit(sym string, span token.Span) *diagnostics.ParseError {
	hint := diagnostics.DidYouMean(diagnostics.Suggest(sym, c.reg.Symbols(), 2))
	return diagnostics.New(diagnostics.ErrUnknownUnit, span,
		"알 수 없는 단위 '%s'입니다%s", sym, hint)
}
