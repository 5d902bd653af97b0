package diagnostics_test

import (
	"bytes"
	"testing"

	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// ---------- positions ----------

func TestPositionCountsRuneColumns(t *testing.T) {
	src := "가 <- 1\n나나 <- 2@m + 3@s\n다 <- 3"
	cases := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{3, 1, 2},   // after 가
		{8, 1, 7},   // the newline itself
		{9, 2, 1},   // line start
		{19, 2, 7},  // after 나나 <-
		{999, 3, 7}, // clamped to end
	}
	for _, c := range cases {
		line, col := diagnostics.Position(src, c.offset)
		if line != c.line || col != c.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", c.offset, line, col, c.line, c.col)
		}
	}
}

func TestPositionEmptySource(t *testing.T) {
	line, col := diagnostics.Position("", 0)
	if line != 1 || col != 1 {
		t.Errorf("got %d:%d, want 1:1", line, col)
	}
}

// ---------- suggestions ----------

func TestSuggestFindsSubsequenceMatch(t *testing.T) {
	got := diagnostics.Suggest("합치", []string{"길이", "보이기", "합치기"}, 3)
	if len(got) != 1 || got[0] != "합치기" {
		t.Errorf("Suggest = %v, want [합치기]", got)
	}
}

func TestSuggestNoMatch(t *testing.T) {
	if got := diagnostics.Suggest("갑", []string{"값", "틀"}, 3); len(got) != 0 {
		t.Errorf("Suggest = %v, want none", got)
	}
}

func TestSuggestRespectsMax(t *testing.T) {
	got := diagnostics.Suggest("기", []string{"빚기", "재기", "섞기"}, 1)
	if len(got) != 1 {
		t.Errorf("Suggest = %v, want exactly one", got)
	}
}

func TestSuggestEmptyInputs(t *testing.T) {
	if got := diagnostics.Suggest("x", nil, 3); got != nil {
		t.Errorf("nil candidates: got %v", got)
	}
	if got := diagnostics.Suggest("x", []string{"x"}, 0); got != nil {
		t.Errorf("max 0: got %v", got)
	}
}

func TestDidYouMean(t *testing.T) {
	if got := diagnostics.DidYouMean(nil); got != "" {
		t.Errorf("empty: got %q", got)
	}
	if got := diagnostics.DidYouMean([]string{"값"}); got != " (혹시: '값'?)" {
		t.Errorf("one: got %q", got)
	}
	if got := diagnostics.DidYouMean([]string{"가", "나"}); got != " (혹시: '가', '나'?)" {
		t.Errorf("two: got %q", got)
	}
}

// ---------- rendering ----------

func TestRenderPlainLayout(t *testing.T) {
	src := "가 <- 1\n나나 <- 2@m + 3@s\n다 <- 3"
	e := diagnostics.New(diagnostics.ErrUnitMismatch,
		token.Span{Start: 19, End: 28}, "단위 차원이 맞지 않습니다")

	var buf bytes.Buffer
	diagnostics.NewRenderer(false).Render(&buf, src, "시험.ssi", e)

	want := "시험.ssi:2:7: E_UNIT_MISMATCH: 단위 차원이 맞지 않습니다\n" +
		"  2 | 나나 <- 2@m + 3@s\n" +
		"    |       ^^^^^^^^^\n"
	if buf.String() != want {
		t.Errorf("render mismatch\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderZeroWidthSpanGetsOneCaret(t *testing.T) {
	src := "가"
	e := diagnostics.New(diagnostics.ErrUnexpectedToken,
		token.Span{Start: 3, End: 3}, "여기서 끝났습니다")

	var buf bytes.Buffer
	diagnostics.NewRenderer(false).Render(&buf, src, "", e)

	want := "<입력>:1:2: E_UNEXPECTED_TOKEN: 여기서 끝났습니다\n" +
		"  1 | 가\n" +
		"    |  ^\n"
	if buf.String() != want {
		t.Errorf("render mismatch\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderHeaderOnlyWithoutSource(t *testing.T) {
	e := diagnostics.New(diagnostics.ErrBadLiteral, token.Span{}, "셈틀 몸통이 비어 있습니다")
	e.File = "본.ssi"

	var buf bytes.Buffer
	diagnostics.NewRenderer(false).Render(&buf, "", "", e)

	want := "본.ssi:1:1: E_BAD_LITERAL: 셈틀 몸통이 비어 있습니다\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderAllKeepsOrder(t *testing.T) {
	errs := []*diagnostics.ParseError{
		diagnostics.New(diagnostics.ErrUnknownCall, token.Span{}, "첫째"),
		diagnostics.New(diagnostics.ErrTooManyArgs, token.Span{}, "둘째"),
	}
	var buf bytes.Buffer
	diagnostics.NewRenderer(false).RenderAll(&buf, "", "탈.ssi", errs)

	want := "탈.ssi:1:1: E_UNKNOWN_CALL: 첫째\n탈.ssi:1:1: E_TOO_MANY_ARGS: 둘째\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestErrorStringCarriesCode(t *testing.T) {
	e := diagnostics.New(diagnostics.ErrPinNotFound, token.Span{}, "핀 '갑' 이 없습니다")
	if e.Error() != "E_PIN_NOT_FOUND: 핀 '갑' 이 없습니다" {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestWantColorOnBuffer(t *testing.T) {
	if diagnostics.WantColor(&bytes.Buffer{}) {
		t.Errorf("a plain buffer is not a terminal")
	}
}
