package resolver

import (
	"strings"

	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
)

// DefineSeeds registers every user seed in declaration order and rejects
// name collisions, including the derivational-suffix clashes that would make
// call-name resolution ambiguous later.
func DefineSeeds(tbl *seedlib.Table, prog *ast.Program) *diagnostics.ParseError {
	seeds := prog.Seeds()
	for _, sd := range seeds {
		sig := &seedlib.Signature{
			Name:   sd.Name,
			Kind:   sd.Kind,
			Params: sd.Params,
			Def:    sd,
		}
		if !tbl.Define(sig) {
			return diagnostics.New(diagnostics.ErrSeedRedefined, sd.NameSpan,
				"씨앗 '%s' 은 이미 정의되어 있습니다", sd.Name)
		}
	}

	// A seed name and its derivational variant may not both exist: a call
	// to the variant spelling could mean either one.
	for _, sd := range seeds {
		for _, t := range derivTails {
			if _, ok := tbl.Lookup(sd.Name + t.Tail); ok {
				return diagnostics.New(diagnostics.ErrSeedNameConflict, sd.NameSpan,
					"씨앗 '%s' 과 파생형 '%s' 이 둘 다 정의되어 있습니다; 한쪽 이름을 바꾸세요",
					sd.Name, sd.Name+t.Tail)
			}
			stem := strings.TrimSuffix(sd.Name, t.Tail)
			if stem == sd.Name || stem == "" {
				continue
			}
			if _, ok := tbl.Lookup(stem); ok {
				return diagnostics.New(diagnostics.ErrSeedNameConflict, sd.NameSpan,
					"씨앗 '%s' 과 파생형 '%s' 이 둘 다 정의되어 있습니다; 한쪽 이름을 바꾸세요",
					stem, sd.Name)
			}
		}
	}
	return nil
}
