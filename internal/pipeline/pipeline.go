// Package pipeline chains the front-end stages over one shared context.
//
// Stages are fail-fast: the run stops at the first stage that reports an
// error, because every pass assumes the previous pass's fully resolved
// output. There is no partial-result recovery anywhere in the front end.
package pipeline

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// PipelineContext carries one source through the stages.
type PipelineContext struct {
	FilePath   string
	SourceCode string

	Tokens  []token.Token
	Program *ast.Program
	Seeds   *seedlib.Table
	Canon   *ast.CanonProgram

	Errors []*diagnostics.ParseError
}

// NewPipelineContext builds the initial context for one source.
func NewPipelineContext(filePath, source string) *PipelineContext {
	return &PipelineContext{FilePath: filePath, SourceCode: source}
}

// AddError records a failure, stamping the context's file path on it.
func (ctx *PipelineContext) AddError(errs ...*diagnostics.ParseError) {
	for _, e := range errs {
		if e.File == "" {
			e.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, e)
	}
}

// Failed reports whether any stage has errored so far.
func (ctx *PipelineContext) Failed() bool { return len(ctx.Errors) > 0 }

// FirstError returns the earliest recorded error, or nil.
func (ctx *PipelineContext) FirstError() *diagnostics.ParseError {
	if len(ctx.Errors) == 0 {
		return nil
	}
	return ctx.Errors[0]
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline is an ordered sequence of stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes stages in order, stopping after the first failing stage.
func (p *Pipeline) Run(initial *PipelineContext) *PipelineContext {
	ctx := initial
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Failed() {
			return ctx
		}
	}
	return ctx
}
