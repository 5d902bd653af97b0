// Package ast defines the tree the parser produces and later passes resolve.
//
// Statement and expression kinds are closed sets: one interface each, one
// struct per variant, consumed with exhaustive type switches so the compiler
// points at every site when a variant is added.
package ast

import (
	"github.com/ssiat-lang/ssiat/internal/token"
)

// NodeID identifies one AST node. The parser assigns ids monotonically in
// left-to-right construction order, so downstream diagnostics can key on a
// stable identity.
type NodeID int32

// Node is the base interface for everything in the tree.
type Node interface {
	ID() NodeID
	GetSpan() token.Span
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Base carries the identity every node shares. Variants embed it by value.
type Base struct {
	NodeID NodeID
	Span   token.Span
}

func (b *Base) ID() NodeID          { return b.NodeID }
func (b *Base) GetSpan() token.Span { return b.Span }

// Program is the root of every parse: top-level seed definitions and
// statements in source order. The caller owns it after parsing.
type Program struct {
	Base
	File     string
	Source   string
	RootHide bool // 뿌리숨김: writes require a prior declaration
	Items    []Stmt

	// LastID is the highest node id handed out so far. The parser sets it;
	// resolution passes that synthesize nodes keep numbering from here.
	LastID NodeID
}

// MintID hands out the next node id, for passes that add nodes after
// parsing.
func (p *Program) MintID() NodeID {
	p.LastID++
	return p.LastID
}

// Seeds returns the top-level definitions in declaration order.
func (p *Program) Seeds() []*SeedDef {
	var out []*SeedDef
	for _, it := range p.Items {
		if sd, ok := it.(*SeedDef); ok {
			out = append(out, sd)
		}
	}
	return out
}

// SeedKind tags a definition with a built-in category or an arbitrary user
// word. Comparisons are plain string equality.
type SeedKind string

const (
	KindSem     SeedKind = "셈"  // ordinary callable definition
	KindMadang  SeedKind = "마당" // program entry seed
	KindBuiltin SeedKind = "기본" // registry-supplied builtin
)

// SeedDef is one named definition unit. Its body is mutated only by the
// resolution passes that rewrite call sites inside it, never afterwards.
type SeedDef struct {
	Base
	Kind     SeedKind
	Name     string // canonical name all derived call spellings resolve to
	NameSpan token.Span
	Params   []*ParamPin
	Body     *Block
}

func (*SeedDef) stmtNode() {}

// TypeRef names a parameter's declared type, optionally pinned to a unit
// (수@m). The unit feeds the dimension checker; the name is otherwise opaque
// to the front end.
type TypeRef struct {
	Name string
	Unit string
	Span token.Span
}

// ParamPin is one formal parameter: binding name, accepted particles, and
// the default/optional filling rules. Particles are unique per parameter
// within one seed; duplication across parameters is the resolver's ambiguity
// to report, never to silently pick through.
type ParamPin struct {
	PinName  string
	NameSpan token.Span
	Type     TypeRef
	Default  Expr // nil when absent
	Optional bool
	JosaList []string
	Span     token.Span
}

// AcceptsJosa reports whether the particle appears in the pin's josa list.
func (p *ParamPin) AcceptsJosa(josa string) bool {
	for _, j := range p.JosaList {
		if j == josa {
			return true
		}
	}
	return false
}

// Required reports whether the parameter must be bound explicitly: no
// default and not optional.
func (p *ParamPin) Required() bool { return p.Default == nil && !p.Optional }

// BindReason records how an argument ended up bound to its parameter.
type BindReason int

const (
	BindUnresolved   BindReason = iota
	BindUserFixed                // explicit pin, or a parser rewrite's pinned argument
	BindDictionary               // bare particle matched the pin's josa list
	BindPositional               // declaration-order fallback
	BindFlowInjected             // inserted (or claimed) by the pipe injector
	BindDefault                  // filled from the parameter's default value
	BindOptionalNone             // optional parameter filled with 없음
)

var bindReasonNames = map[BindReason]string{
	BindUnresolved:   "unresolved",
	BindUserFixed:    "user-fixed",
	BindDictionary:   "dictionary",
	BindPositional:   "positional",
	BindFlowInjected: "flow-injected",
	BindDefault:      "default",
	BindOptionalNone: "optional-none",
}

func (r BindReason) String() string {
	if n, ok := bindReasonNames[r]; ok {
		return n
	}
	return "BindReason(?)"
}

// ArgBinding is one call argument. Before resolution only Value, Josa and
// Pin are set; after resolution ResolvedPin names the parameter the argument
// is bound to and Reason tells how, or the resolver has already failed.
type ArgBinding struct {
	Value       Expr
	Josa        string // explicit particle, "" when absent
	JosaSpan    token.Span
	Pin         string // explicit fixed pin, "" when absent
	PinSpan     token.Span
	ResolvedPin string
	Reason      BindReason
	Span        token.Span
}
