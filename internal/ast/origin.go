package ast

import (
	"github.com/ssiat-lang/ssiat/internal/token"
)

// OriginMap translates node ids back to source locations, so the evaluator
// can report runtime positions without holding the tree's spans itself.
type OriginMap struct {
	FilePath  string
	Source    string
	NodeSpans map[NodeID]token.Span
}

// SpanOf returns the recorded span for a node id, or an empty span.
func (o *OriginMap) SpanOf(id NodeID) token.Span {
	if o == nil {
		return token.Span{}
	}
	return o.NodeSpans[id]
}

// CanonProgram is what the front end hands the evaluator: the fully resolved
// program plus its origin map.
type CanonProgram struct {
	Program *Program
	Origin  *OriginMap
}

// BuildOrigin records the span of every node currently in the tree. Call it
// after all resolution passes so injected arguments are covered too.
func BuildOrigin(p *Program) *OriginMap {
	o := &OriginMap{
		FilePath:  p.File,
		Source:    p.Source,
		NodeSpans: make(map[NodeID]token.Span),
	}
	Inspect(p, func(n Node) bool {
		o.NodeSpans[n.ID()] = n.GetSpan()
		return true
	})
	return o
}
