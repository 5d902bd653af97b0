package units

import (
	"github.com/ssiat-lang/ssiat/internal/pipeline"
)

// UnitProcessor is the pipeline stage wrapping the dimension checker. It
// runs after binding so every call's arguments are final.
type UnitProcessor struct {
	reg *Registry
}

// NewUnitProcessor builds the stage over a registry. Pass units.Std() for
// the builtin table, extended or not.
func NewUnitProcessor(reg *Registry) *UnitProcessor {
	return &UnitProcessor{reg: reg}
}

func (up *UnitProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil {
		return ctx
	}
	if err := NewChecker(up.reg).Check(ctx.Program); err != nil {
		ctx.AddError(err)
	}
	return ctx
}
