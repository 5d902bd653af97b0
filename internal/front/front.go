// Package front wires the standard stage chain: lex, parse, resolve, check
// units, check purity, and seal the canonical program.
package front

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/lexer"
	"github.com/ssiat-lang/ssiat/internal/parser"
	"github.com/ssiat-lang/ssiat/internal/pipeline"
	"github.com/ssiat-lang/ssiat/internal/purity"
	"github.com/ssiat-lang/ssiat/internal/resolver"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
	"github.com/ssiat-lang/ssiat/internal/units"
)

// Option adjusts the chain. The zero set uses the builtin registries.
type Option func(*options)

type options struct {
	units *units.Registry
	seeds []*seedlib.Signature
}

// WithUnits replaces the unit registry, usually one extended from
// units.Std() with user tables.
func WithUnits(reg *units.Registry) Option {
	return func(o *options) { o.units = reg }
}

// WithSeeds defines extra builtin signatures before resolution.
func WithSeeds(sigs []*seedlib.Signature) Option {
	return func(o *options) { o.seeds = sigs }
}

// Chain builds the standard pipeline.
func Chain(opts ...Option) *pipeline.Pipeline {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.units == nil {
		o.units = units.Std()
	}
	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&resolver.ResolverProcessor{Extra: o.seeds},
		units.NewUnitProcessor(o.units),
		&purity.PurityProcessor{},
		&CanonProcessor{},
	)
}

// Run executes the chain over one source and returns the raw context, for
// callers that want the error list or intermediate artifacts.
func Run(filePath, source string, opts ...Option) *pipeline.PipelineContext {
	return Chain(opts...).Run(pipeline.NewPipelineContext(filePath, source))
}

// Parse runs the whole front end over one source. It returns the canonical
// program for the evaluator, or the first error in stage order.
func Parse(filePath, source string, opts ...Option) (*ast.CanonProgram, error) {
	ctx := Run(filePath, source, opts...)
	if err := ctx.FirstError(); err != nil {
		return nil, err
	}
	return ctx.Canon, nil
}

// CanonProcessor seals the resolved program into the evaluator handoff: the
// tree plus the origin map taking node ids back to source spans.
type CanonProcessor struct{}

func (cp *CanonProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil {
		return ctx
	}
	ctx.Canon = &ast.CanonProgram{Program: ctx.Program, Origin: ast.BuildOrigin(ctx.Program)}
	return ctx
}
