package front_test

import (
	"testing"

	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/front"
)

// FuzzFrontEnd feeds arbitrary text through the whole stage chain. Errors
// are the expected outcome for most inputs; what must never happen is a
// panic, or a passing run whose origin map has holes.
func FuzzFrontEnd(f *testing.F) {
	f.Add("(5 를) 보이기")
	f.Add("씨앗 빚기 (값 을/를, 틀 로 = \"둥글\", 덤 가 선택) {\n\t돌려주기 값\n}\n5 해서 빚기 해서 보이기")
	f.Add("갖춤 { v <- 3@m + 4@cm }")
	f.Add("글틀 {|너비 {w} 입니다|}")
	f.Add("고름 {\n\tx > 1 이면 { (1 을) 보이기 }\n\t아니면 { }\n}")
	f.Add("뿌리숨김\n갖춤 { n <- 0 }\n1 부터 10 까지 마다 칸 { n <- n + 칸 }")
	f.Add("{ x } 동안 { x <- x - 1 }")
	f.Add("보이기(5)")

	f.Fuzz(func(t *testing.T, input string) {
		ctx := front.Run("퍼즈.ssi", input)
		if ctx.Failed() {
			if ctx.Canon != nil {
				t.Errorf("failed run still produced a canonical program")
			}
			return
		}

		canon := ctx.Canon
		if canon == nil || canon.Program == nil || canon.Origin == nil {
			t.Fatalf("passing run without a canonical program")
		}
		seen := make(map[ast.NodeID]bool)
		ast.Inspect(canon.Program, func(n ast.Node) bool {
			if seen[n.ID()] {
				t.Errorf("node id %d assigned twice", n.ID())
			}
			seen[n.ID()] = true
			if _, ok := canon.Origin.NodeSpans[n.ID()]; !ok {
				t.Errorf("node id %d missing from the origin map", n.ID())
			}
			return true
		})
	})
}
