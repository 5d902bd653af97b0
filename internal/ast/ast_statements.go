package ast

import (
	"github.com/ssiat-lang/ssiat/internal/token"
)

// Block is a brace-delimited statement sequence. It backs seed bodies, loop
// bodies, guard bodies and thunks.
type Block struct {
	Base
	Stmts []Stmt
}

func (*Block) stmtNode() {}

// If statement: 만약 cond { } [아니면 { } | 아니면 만약 …].
type If struct {
	Base
	Cond Expr
	Then *Block
	Else Stmt // *Block, *If, or nil
}

func (*If) stmtNode() {}

// While loop, postfix keyword form: cond 동안 { }.
type While struct {
	Base
	Cond Expr
	Body *Block
}

func (*While) stmtNode() {}

// Repeat loop: 거듭 n [번] { }.
type Repeat struct {
	Base
	Count Expr
	Body  *Block
}

func (*Repeat) stmtNode() {}

// ForEach loop, postfix keyword form: seq 마다 [binder] { }.
type ForEach struct {
	Base
	Seq        Expr
	Binder     string // "" when the body never names the element
	BinderSpan token.Span
	Body       *Block
}

func (*ForEach) stmtNode() {}

// ChooseArm is one guarded arm of a 고름 statement.
type ChooseArm struct {
	Cond Expr
	Body *Block
	Span token.Span
}

// Choose statement: 고름 { c1 이면 { } c2 이면 { } 아니면 { } }.
type Choose struct {
	Base
	Arms []ChooseArm
	Else *Block // nil when no 아니면 arm
}

func (*Choose) stmtNode() {}

// ContractPhase distinguishes pre- from post-conditions.
type ContractPhase int

const (
	ContractPre  ContractPhase = iota // 앞
	ContractPost                      // 뒤
)

func (p ContractPhase) String() string {
	if p == ContractPost {
		return "뒤"
	}
	return "앞"
}

// Contract statement: 다짐 [앞|뒤] cond. First-class, not sugar.
type Contract struct {
	Base
	Phase ContractPhase
	Cond  Expr
}

func (*Contract) stmtNode() {}

// Guard statement: 지킴 cond { calls… }. The body is restricted to bare
// call-expression statements; the purity pass enforces that by kind.
type Guard struct {
	Base
	Cond Expr
	Body *Block
}

func (*Guard) stmtNode() {}

// Decl is one entry of a 갖춤 block.
type Decl struct {
	Name     string
	NameSpan token.Span
	Value    Expr
	Span     token.Span
}

// DeclBlock statement: 갖춤 { x <- 1 y <- 2 }. Declares names in the
// enclosing scope; under 뿌리숨김 these are the only way to introduce
// writable locals.
type DeclBlock struct {
	Base
	Decls []*Decl
}

func (*DeclBlock) stmtNode() {}

// Mutate statement: target[, target…] <- value. More than one target makes
// it a pipelined multi-target assignment. Targets are identifiers or field
// accesses; the parser has already validated that.
type Mutate struct {
	Base
	Targets []Expr
	Value   Expr
}

func (*Mutate) stmtNode() {}

// Return statement: 돌려주기 [expr].
type Return struct {
	Base
	Value Expr // nil for a bare 돌려주기
}

func (*Return) stmtNode() {}

// ExprStmt wraps an expression in statement position.
type ExprStmt struct {
	Base
	X Expr
}

func (*ExprStmt) stmtNode() {}

// Directive statement: currently only 뿌리숨김, which must be the first item
// of a program.
type Directive struct {
	Base
	Name string
}

func (*Directive) stmtNode() {}
