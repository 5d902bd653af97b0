package ast

import (
	"github.com/ssiat-lang/ssiat/internal/token"
)

// Ident is a plain name in expression position.
type Ident struct {
	Base
	Name string
}

func (*Ident) exprNode() {}

// IntLit is an integer literal.
type IntLit struct {
	Base
	Value int64
}

func (*IntLit) exprNode() {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Base
	Value float64
}

func (*FloatLit) exprNode() {}

// StrLit is a string literal with escapes already decoded.
type StrLit struct {
	Base
	Value string
}

func (*StrLit) exprNode() {}

// BoolLit is 참 or 거짓.
type BoolLit struct {
	Base
	Value bool
}

func (*BoolLit) exprNode() {}

// NoneLit is the 없음 literal. The binding resolver also fabricates one for
// every optional parameter left open.
type NoneLit struct {
	Base
}

func (*NoneLit) exprNode() {}

// Flow is the ? placeholder: the slot a pipe stage exposes for its upstream
// value. Valid only inside call arguments of non-first pipe stages; the
// evaluator substitutes the flowing value at run time.
type Flow struct {
	Base
}

func (*Flow) exprNode() {}

// Prefix is a unary operation: -x, !x.
type Prefix struct {
	Base
	Op string
	X  Expr
}

func (*Prefix) exprNode() {}

// Infix is a binary operation: + - * / % == != < <= > >= 그리고 또는.
type Infix struct {
	Base
	Op    string
	Left  Expr
	Right Expr
}

func (*Infix) exprNode() {}

// Range is from 부터 to 까지.
type Range struct {
	Base
	From Expr
	To   Expr
}

func (*Range) exprNode() {}

// Call applies a seed: (args) name. RawName is the spelling as written;
// CanonName and Display are filled by the call-name resolver. Args are
// rewritten in place by the injection and binding passes.
type Call struct {
	Base
	RawName   string
	CanonName string
	Display   string
	NameSpan  token.Span
	Args      []*ArgBinding
}

func (*Call) exprNode() {}

// FieldAccess is x 의 field.
type FieldAccess struct {
	Base
	X         Expr
	Field     string
	FieldSpan token.Span
}

func (*FieldAccess) exprNode() {}

// Pipe is a multi-stage pipeline: e0 해서 stage1 해서 stage2. Stages after
// the first are always calls; the parser enforces that before the injector
// runs.
type Pipe struct {
	Base
	Stages []Expr
}

func (*Pipe) exprNode() {}

// Pack is an ordered literal collection: [e1, e2, …].
type Pack struct {
	Base
	Elems []Expr
}

func (*Pack) exprNode() {}

// TemplatePart is one run of a template body: literal text, or one
// interpolated expression. Exactly one of the two is set.
type TemplatePart struct {
	Text string
	Expr Expr
	Span token.Span
}

// Template is 글틀 {| text {expr} text |}. Only the body's shape is parsed
// here; rendering belongs to the evaluator.
type Template struct {
	Base
	Parts []TemplatePart
}

func (*Template) exprNode() {}

// Formula is 셈틀 {| expr |}: a quoted expression whose body is parsed for
// well-formedness but evaluated later, possibly repeatedly, by the solver
// builtin.
type Formula struct {
	Base
	Raw  string
	Body Expr
}

func (*Formula) exprNode() {}

// Thunk is a lazily-scoped block expression. On its own it is inert; an
// Eval wrapper gives it an evaluation mode.
type Thunk struct {
	Base
	Body *Block
}

func (*Thunk) exprNode() {}

// EvalMode is how a thunk is forced.
type EvalMode int

const (
	EvalValue   EvalMode = iota // {…}것
	EvalBool                    // {…}인것
	EvalNegBool                 // {…}아닌것
	EvalDo                      // {…}하기
	EvalPipe                    // {…} as the head of a pipeline
)

var evalModeNames = map[EvalMode]string{
	EvalValue:   "것",
	EvalBool:    "인것",
	EvalNegBool: "아닌것",
	EvalDo:      "하기",
	EvalPipe:    "해서",
}

func (m EvalMode) String() string {
	if n, ok := evalModeNames[m]; ok {
		return n
	}
	return "EvalMode(?)"
}

// Boolean reports whether the mode produces a truth value. Boolean modes are
// the ones the purity validator restricts, and the dimension checker treats
// their results as dimensionless.
func (m EvalMode) Boolean() bool { return m == EvalBool || m == EvalNegBool }

// Eval forces a thunk under a mode.
type Eval struct {
	Base
	Thunk *Thunk
	Mode  EvalMode
}

func (*Eval) exprNode() {}

// Suffix is a unit annotation: expr@unit. Resource suffixes (expr@"path")
// and index postfixes never reach later passes; the parser rewrites them
// into ordinary calls.
type Suffix struct {
	Base
	X        Expr
	Unit     string
	UnitSpan token.Span
}

func (*Suffix) exprNode() {}
