package purity

import (
	"github.com/ssiat-lang/ssiat/internal/pipeline"
)

// PurityProcessor is the pipeline stage wrapping the validators. It runs
// after resolution, over canonical call names.
type PurityProcessor struct{}

func (pp *PurityProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil || ctx.Seeds == nil {
		return ctx
	}
	if err := Check(ctx.Program, ctx.Seeds); err != nil {
		ctx.AddError(err)
	}
	return ctx
}
