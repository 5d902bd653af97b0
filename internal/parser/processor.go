package parser

import (
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/pipeline"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// ParserProcessor is the pipeline stage wrapping the parser.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Tokens == nil {
		ctx.AddError(diagnostics.New(diagnostics.ErrUnexpectedToken, token.Span{},
			"구문 분석기: 토큰 흐름이 없습니다"))
		return ctx
	}

	p := New(ctx.Tokens, ctx)
	program := p.ParseProgram()
	if ctx.Failed() {
		// No partial trees leave the parser.
		return ctx
	}
	ctx.Program = program
	return ctx
}
