package lexer

import (
	"github.com/ssiat-lang/ssiat/internal/pipeline"
)

// LexerProcessor is the pipeline stage wrapping the lexer.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	ctx.Tokens = l.Tokens()
	if errs := l.Errors(); len(errs) > 0 {
		// Report only the earliest failure: later tokens in a broken
		// stream mislead more than they help.
		ctx.AddError(errs[0])
	}
	return ctx
}
