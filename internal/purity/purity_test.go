package purity_test

import (
	"strings"
	"testing"

	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/lexer"
	"github.com/ssiat-lang/ssiat/internal/parser"
	"github.com/ssiat-lang/ssiat/internal/pipeline"
	"github.com/ssiat-lang/ssiat/internal/purity"
	"github.com/ssiat-lang/ssiat/internal/resolver"
)

// check resolves input and runs the purity validators over the result.
func check(t *testing.T, input string) *diagnostics.ParseError {
	t.Helper()
	ctx := pipeline.NewPipelineContext("시험.ssi", input)
	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&resolver.ResolverProcessor{},
	).Run(ctx)
	if ctx.Failed() {
		t.Fatalf("setup failed: %s", ctx.FirstError())
	}
	return purity.Check(ctx.Program, ctx.Seeds)
}

func expectPure(t *testing.T, input string) {
	t.Helper()
	if err := check(t, input); err != nil {
		t.Fatalf("unexpected violation: %s", err)
	}
}

func expectViolation(t *testing.T, input string, code diagnostics.Code, fragment string) {
	t.Helper()
	err := check(t, input)
	if err == nil {
		t.Fatalf("expected %s, got none\ninput: %s", code, input)
	}
	if err.Code != code {
		t.Fatalf("code = %s, want %s (%s)", err.Code, code, err.Message)
	}
	if fragment != "" && !strings.Contains(err.Message, fragment) {
		t.Errorf("message %q should mention %q", err.Message, fragment)
	}
}

// ---------- boolean thunks ----------

func TestBoolThunkRejectsMutation(t *testing.T) {
	expectViolation(t, `갖춤 { x <- 0 }
{ x <- x + 1 }인것`, diagnostics.ErrThunkImpure, "값 바꾸기")
}

func TestNegBoolThunkRejectsMutation(t *testing.T) {
	expectViolation(t, "{ x <- 1 }아닌것", diagnostics.ErrThunkImpure, "아닌것")
}

func TestValueThunkMayMutate(t *testing.T) {
	expectPure(t, "{ x <- 1 }것")
}

func TestBareThunkMayMutate(t *testing.T) {
	expectPure(t, "{ x <- 1 }")
}

func TestBoolThunkRejectsDoEval(t *testing.T) {
	expectViolation(t, "{ { (1 을) 보이기 }하기 }인것",
		diagnostics.ErrThunkImpure, "하기 평가")
}

func TestBoolThunkRejectsNondetCall(t *testing.T) {
	expectViolation(t, "{ (10 을) 아무수 }인것",
		diagnostics.ErrThunkImpure, "아무수")
}

func TestBoolThunkRejectsNondetUnderDerivedSpelling(t *testing.T) {
	expectViolation(t, "{ (10 을) 아무수하기 }인것",
		diagnostics.ErrThunkImpure, "아무수하기")
}

func TestBoolThunkAllowsPureCalls(t *testing.T) {
	expectPure(t, `갖춤 { 칸들 <- [1, 2] }
{ (칸들 을) 길이 > 1 }인것`)
}

// ---------- guard bodies ----------

func TestGuardBodyAllowsCalls(t *testing.T) {
	expectPure(t, "지킴 참 { (1 을) 보이기 (2 를) 보이기 }")
}

func TestGuardBodyRejectsMutation(t *testing.T) {
	expectViolation(t, "지킴 참 { x <- 1 }", diagnostics.ErrGuardBody, "값 바꾸기")
}

func TestGuardBodyRejectsControlFlow(t *testing.T) {
	expectViolation(t, "지킴 참 { 만약 참 { } }", diagnostics.ErrGuardBody, "만약")
}

func TestGuardBodyRejectsBareValue(t *testing.T) {
	expectViolation(t, "지킴 참 { 5 }", diagnostics.ErrGuardBody, "")
}

func TestGuardBodyRejectsNondetCall(t *testing.T) {
	expectViolation(t, "지킴 참 { (10 을) 아무수 }", diagnostics.ErrGuardBody, "무작위")
}

// Purity applies inside seed bodies, where guards usually live.
func TestGuardInsideSeedBody(t *testing.T) {
	expectViolation(t, `씨앗 일 (빗장 을/를) {
	지킴 빗장 > 0 { x <- 1 }
}`, diagnostics.ErrGuardBody, "값 바꾸기")
}
