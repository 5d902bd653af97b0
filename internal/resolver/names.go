package resolver

import (
	"sort"
	"strings"

	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/seedlib"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// derivTails are the accepted verb-derivation suffixes. Tail is one written
// spelling; Canon is the canonical short form used for display names. The
// bare nominalizer 기 covers native verb stems (늘리 → 늘리기); because 하기
// also ends in 기, a call like 정렬하기 is ambiguous when 정렬 and 정렬하 are
// both defined, and resolution reports that instead of picking one.
var derivTails = []struct {
	Tail  string
	Canon string
}{
	{Tail: "하기", Canon: "하기"},
	{Tail: "해주기", Canon: "하기"},
	{Tail: "시키기", Canon: "시키기"},
	{Tail: "시켜주기", Canon: "시키기"},
	{Tail: "기", Canon: "기"},
}

// pipeTail is 해서's spelling. A call name ending with it always means a
// mis-written pipeline, never a derivation.
const pipeTail = "해서"

// ResolveCallName maps one raw call spelling to the canonical seed name and
// the display spelling diagnostics use. Exact matches win; otherwise each
// derivational tail is stripped in turn and surviving stems are checked
// against the table.
func ResolveCallName(tbl *seedlib.Table, raw string, span token.Span) (canon, display string, err *diagnostics.ParseError) {
	if _, ok := tbl.Lookup(raw); ok {
		return raw, raw, nil
	}
	if strings.HasSuffix(raw, pipeTail) {
		return "", "", diagnostics.New(diagnostics.ErrUnexpectedToken, span,
			"호출 이름 '%s' 은 '해서' 로 끝날 수 없습니다; '해서' 는 흐름 연결로만 쓰세요", raw)
	}

	type candidate struct{ stem, display string }
	var cands []candidate
	tailShape := false
	for _, t := range derivTails {
		if !strings.HasSuffix(raw, t.Tail) {
			continue
		}
		stem := strings.TrimSuffix(raw, t.Tail)
		if stem == "" {
			continue
		}
		tailShape = true
		if _, ok := tbl.Lookup(stem); !ok {
			continue
		}
		dup := false
		for _, c := range cands {
			if c.stem == stem {
				dup = true
				break
			}
		}
		if !dup {
			cands = append(cands, candidate{stem: stem, display: stem + t.Canon})
		}
	}

	switch {
	case len(cands) == 1:
		return cands[0].stem, cands[0].display, nil
	case len(cands) > 1:
		names := make([]string, len(cands))
		for i, c := range cands {
			names[i] = "'" + c.stem + "'"
		}
		sort.Strings(names)
		return "", "", diagnostics.New(diagnostics.ErrCallTailAmbiguous, span,
			"'%s' 은 여러 씨앗을 가리킬 수 있습니다 (%s); 본딧말로 부르세요",
			raw, strings.Join(names, ", "))
	case tailShape:
		hint := diagnostics.DidYouMean(diagnostics.Suggest(raw, tbl.Names(), 2))
		return "", "", diagnostics.New(diagnostics.ErrCallTailNoSeed, span,
			"'%s' 의 본딧말이 되는 씨앗이 없습니다%s", raw, hint)
	}
	hint := diagnostics.DidYouMean(diagnostics.Suggest(raw, tbl.Names(), 2))
	return "", "", diagnostics.New(diagnostics.ErrUnknownCall, span,
		"알 수 없는 호출 '%s' 입니다%s", raw, hint)
}

// ResolveNames fills CanonName and Display on every call in the program.
func ResolveNames(prog *ast.Program, tbl *seedlib.Table) *diagnostics.ParseError {
	var first *diagnostics.ParseError
	ast.Inspect(prog, func(n ast.Node) bool {
		if first != nil {
			return false
		}
		c, ok := n.(*ast.Call)
		if !ok {
			return true
		}
		if c.CanonName != "" {
			return true
		}
		canon, display, err := ResolveCallName(tbl, c.RawName, c.NameSpan)
		if err != nil {
			first = err
			return false
		}
		c.CanonName, c.Display = canon, display
		return true
	})
	return first
}
