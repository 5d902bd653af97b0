package resolver

import (
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/pipeline"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// ResolverProcessor is the pipeline stage running the resolution passes.
// Extra signatures (registry extension files) are defined into a fresh table
// on every run, so parses never share mutable state.
type ResolverProcessor struct {
	Extra []*seedlib.Signature
}

func (rp *ResolverProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil {
		return ctx
	}

	tbl := seedlib.NewTable()
	for _, sig := range rp.Extra {
		if !tbl.Define(sig) {
			ctx.AddError(diagnostics.New(diagnostics.ErrSeedRedefined, token.Span{},
				"등록 파일의 씨앗 '%s' 이 이미 있습니다", sig.Name))
			return ctx
		}
	}

	tbl, err := Resolve(ctx.Program, tbl)
	ctx.Seeds = tbl
	if err != nil {
		ctx.AddError(err)
	}
	return ctx
}
