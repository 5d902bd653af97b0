package parser_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/lexer"
	"github.com/ssiat-lang/ssiat/internal/parser"
	"github.com/ssiat-lang/ssiat/internal/pipeline"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// parse lexes and parses input, failing the test on any error.
func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	ctx := pipeline.NewPipelineContext("시험.ssi", input)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		for _, e := range ctx.Errors {
			t.Errorf("parse error: %s", e)
		}
		t.FailNow()
	}
	return ctx.Program
}

// stmtExpr extracts the expression from the idx-th top-level statement.
func stmtExpr(t *testing.T, prog *ast.Program, idx int) ast.Expr {
	t.Helper()
	if idx >= len(prog.Items) {
		t.Fatalf("expected at least %d statements, got %d", idx+1, len(prog.Items))
	}
	es, ok := prog.Items[idx].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement %d: expected ExprStmt, got %T", idx, prog.Items[idx])
	}
	return es.X
}

// shape renders an expression as a compact s-expression for structural
// comparisons; parentheses make the parsed grouping visible.
func shape(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.IntLit:
		return strconv.FormatInt(x.Value, 10)
	case *ast.FloatLit:
		return strconv.FormatFloat(x.Value, 'g', -1, 64)
	case *ast.StrLit:
		return strconv.Quote(x.Value)
	case *ast.BoolLit:
		if x.Value {
			return "참"
		}
		return "거짓"
	case *ast.NoneLit:
		return "없음"
	case *ast.Ident:
		return x.Name
	case *ast.Flow:
		return "?"
	case *ast.Prefix:
		return "(" + x.Op + shape(x.X) + ")"
	case *ast.Infix:
		return "(" + shape(x.Left) + " " + x.Op + " " + shape(x.Right) + ")"
	case *ast.Range:
		return "(" + shape(x.From) + " 부터 " + shape(x.To) + " 까지)"
	case *ast.Suffix:
		return "(" + shape(x.X) + "@" + x.Unit + ")"
	case *ast.FieldAccess:
		return "(" + shape(x.X) + " 의 " + x.Field + ")"
	case *ast.Call:
		parts := make([]string, len(x.Args))
		for i, a := range x.Args {
			s := shape(a.Value)
			if a.Pin != "" {
				s = a.Pin + "=" + s
			}
			if a.Josa != "" {
				s += " " + a.Josa
			}
			parts[i] = s
		}
		return x.RawName + "(" + strings.Join(parts, ", ") + ")"
	case *ast.Pipe:
		parts := make([]string, len(x.Stages))
		for i, s := range x.Stages {
			parts[i] = shape(s)
		}
		return "(" + strings.Join(parts, " 해서 ") + ")"
	case *ast.Pack:
		parts := make([]string, len(x.Elems))
		for i, el := range x.Elems {
			parts[i] = shape(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.Eval:
		return "{…}" + x.Mode.String()
	case *ast.Thunk:
		return "{…}"
	}
	return "?kind"
}

// ---------- expressions ----------

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"-1 + 2", "((-1) + 2)"},
		{"!참 그리고 거짓", "((!참) 그리고 거짓)"},
		{"1 + 2 == 3", "((1 + 2) == 3)"},
		{"1 < 2 == 참", "((1 < 2) == 참)"},
		{"참 또는 거짓 그리고 참", "(참 또는 (거짓 그리고 참))"},
		{"1 부터 끝 + 1 까지", "(1 부터 (끝 + 1) 까지)"},
		{"판 의 칸 + 1", "((판 의 칸) + 1)"},
		{"3@m * 2", "((3@m) * 2)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"5 % 2 == 1 그리고 참", "(((5 % 2) == 1) 그리고 참)"},
		{"1 + 2 해서 보이기", "((1 + 2) 해서 보이기())"},
	}
	for _, tt := range tests {
		prog := parse(t, tt.input)
		if got := shape(stmtExpr(t, prog, 0)); got != tt.want {
			t.Errorf("%s\n  got  %s\n  want %s", tt.input, got, tt.want)
		}
	}
}

func TestCallSurfaceForm(t *testing.T) {
	prog := parse(t, `(5 를, 단위="m" 로) 재기`)
	call, ok := stmtExpr(t, prog, 0).(*ast.Call)
	if !ok {
		t.Fatalf("expected call, got %T", stmtExpr(t, prog, 0))
	}
	if call.RawName != "재기" {
		t.Errorf("RawName = %q", call.RawName)
	}
	if len(call.Args) != 2 {
		t.Fatalf("args = %d, want 2", len(call.Args))
	}
	a0, a1 := call.Args[0], call.Args[1]
	if a0.Pin != "" || a0.Josa != "를" {
		t.Errorf("arg 0 = pin %q josa %q", a0.Pin, a0.Josa)
	}
	if a1.Pin != "단위" || a1.Josa != "로" {
		t.Errorf("arg 1 = pin %q josa %q", a1.Pin, a1.Josa)
	}
	if _, ok := a1.Value.(*ast.StrLit); !ok {
		t.Errorf("arg 1 value = %T, want StrLit", a1.Value)
	}
}

func TestCallZeroArgs(t *testing.T) {
	prog := parse(t, "() 멈추기")
	call := stmtExpr(t, prog, 0).(*ast.Call)
	if call.RawName != "멈추기" || len(call.Args) != 0 {
		t.Errorf("call = %s with %d args", call.RawName, len(call.Args))
	}
}

func TestGroupingIsNotACall(t *testing.T) {
	prog := parse(t, "(1 + 2) * 3")
	if _, ok := stmtExpr(t, prog, 0).(*ast.Infix); !ok {
		t.Errorf("expected Infix, got %T", stmtExpr(t, prog, 0))
	}
}

func TestFlowPlaceholderArg(t *testing.T) {
	prog := parse(t, "5 해서 (값=?) 두배")
	pipe := stmtExpr(t, prog, 0).(*ast.Pipe)
	call := pipe.Stages[1].(*ast.Call)
	if call.Args[0].Pin != "값" {
		t.Errorf("pin = %q", call.Args[0].Pin)
	}
	if _, ok := call.Args[0].Value.(*ast.Flow); !ok {
		t.Errorf("value = %T, want Flow", call.Args[0].Value)
	}
}

// ---------- pipes ----------

func TestPipeStagesFlat(t *testing.T) {
	prog := parse(t, "5 해서 (10 을) 더하기 해서 보이기")
	pipe, ok := stmtExpr(t, prog, 0).(*ast.Pipe)
	if !ok {
		t.Fatalf("expected Pipe, got %T", stmtExpr(t, prog, 0))
	}
	if len(pipe.Stages) != 3 {
		t.Fatalf("stages = %d, want 3", len(pipe.Stages))
	}
	if _, ok := pipe.Stages[0].(*ast.IntLit); !ok {
		t.Errorf("stage 0 = %T", pipe.Stages[0])
	}
}

func TestPipeBareNameBecomesCall(t *testing.T) {
	prog := parse(t, "5 해서 두배")
	pipe := stmtExpr(t, prog, 0).(*ast.Pipe)
	call, ok := pipe.Stages[1].(*ast.Call)
	if !ok {
		t.Fatalf("stage 1 = %T, want Call", pipe.Stages[1])
	}
	if call.RawName != "두배" || len(call.Args) != 0 {
		t.Errorf("promoted call = %q with %d args", call.RawName, len(call.Args))
	}
}

func TestPipeThunkHead(t *testing.T) {
	prog := parse(t, "{ 5 } 해서 보이기")
	pipe := stmtExpr(t, prog, 0).(*ast.Pipe)
	ev, ok := pipe.Stages[0].(*ast.Eval)
	if !ok {
		t.Fatalf("stage 0 = %T, want Eval", pipe.Stages[0])
	}
	if ev.Mode != ast.EvalPipe {
		t.Errorf("mode = %s, want 해서", ev.Mode)
	}
}

// ---------- thunks ----------

func TestThunkModes(t *testing.T) {
	tests := []struct {
		input string
		mode  ast.EvalMode
	}{
		{"{ 1 }것", ast.EvalValue},
		{"{ 참 }인것", ast.EvalBool},
		{"{ 참 }아닌것", ast.EvalNegBool},
		{"{ (1 을) 보이기 }하기", ast.EvalDo},
	}
	for _, tt := range tests {
		prog := parse(t, tt.input)
		ev, ok := stmtExpr(t, prog, 0).(*ast.Eval)
		if !ok {
			t.Fatalf("%s: expected Eval, got %T", tt.input, stmtExpr(t, prog, 0))
		}
		if ev.Mode != tt.mode {
			t.Errorf("%s: mode = %s, want %s", tt.input, ev.Mode, tt.mode)
		}
	}
}

func TestBareThunkStaysInert(t *testing.T) {
	prog := parse(t, "{ 1 }")
	if _, ok := stmtExpr(t, prog, 0).(*ast.Thunk); !ok {
		t.Errorf("expected Thunk, got %T", stmtExpr(t, prog, 0))
	}
}

// ---------- parse-time rewrites ----------

func TestIndexRewrite(t *testing.T) {
	prog := parse(t, "칸들[2]")
	call, ok := stmtExpr(t, prog, 0).(*ast.Call)
	if !ok {
		t.Fatalf("expected Call, got %T", stmtExpr(t, prog, 0))
	}
	if call.RawName != "차림.값" {
		t.Errorf("RawName = %q, want 차림.값", call.RawName)
	}
	if call.Args[0].Pin != "차림" || call.Args[1].Pin != "자리" {
		t.Errorf("pins = %q, %q", call.Args[0].Pin, call.Args[1].Pin)
	}
	if idx, ok := call.Args[1].Value.(*ast.IntLit); !ok || idx.Value != 2 {
		t.Errorf("position arg = %v", call.Args[1].Value)
	}
}

func TestResourceRewrite(t *testing.T) {
	prog := parse(t, `문서@"글.txt"`)
	call, ok := stmtExpr(t, prog, 0).(*ast.Call)
	if !ok {
		t.Fatalf("expected Call, got %T", stmtExpr(t, prog, 0))
	}
	if call.RawName != "자료.열기" {
		t.Errorf("RawName = %q, want 자료.열기", call.RawName)
	}
	if call.Args[0].Pin != "자료" || call.Args[1].Pin != "길" {
		t.Errorf("pins = %q, %q", call.Args[0].Pin, call.Args[1].Pin)
	}
	if path, ok := call.Args[1].Value.(*ast.StrLit); !ok || path.Value != "글.txt" {
		t.Errorf("path arg = %v", call.Args[1].Value)
	}
}

func TestUnitSuffixKept(t *testing.T) {
	prog := parse(t, "3@m + 4@s")
	infix := stmtExpr(t, prog, 0).(*ast.Infix)
	l := infix.Left.(*ast.Suffix)
	r := infix.Right.(*ast.Suffix)
	if l.Unit != "m" || r.Unit != "s" {
		t.Errorf("units = %q, %q", l.Unit, r.Unit)
	}
}

// ---------- block literals ----------

func TestTemplateParts(t *testing.T) {
	prog := parse(t, "글틀 {|너비 {w} 입니다|}")
	tpl, ok := stmtExpr(t, prog, 0).(*ast.Template)
	if !ok {
		t.Fatalf("expected Template, got %T", stmtExpr(t, prog, 0))
	}
	if len(tpl.Parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(tpl.Parts))
	}
	if tpl.Parts[0].Text != "너비 " || tpl.Parts[2].Text != " 입니다" {
		t.Errorf("texts = %q, %q", tpl.Parts[0].Text, tpl.Parts[2].Text)
	}
	id, ok := tpl.Parts[1].Expr.(*ast.Ident)
	if !ok || id.Name != "w" {
		t.Fatalf("interp = %v", tpl.Parts[1].Expr)
	}

	// Interpolated spans must stay absolute into the original source.
	if want := (token.Span{Start: 16, End: 19}); tpl.Parts[1].Span != want {
		t.Errorf("interp span = %+v, want %+v", tpl.Parts[1].Span, want)
	}
	if want := (token.Span{Start: 17, End: 18}); id.Span != want {
		t.Errorf("ident span = %+v, want %+v", id.Span, want)
	}
}

func TestTemplateNestedBraces(t *testing.T) {
	prog := parse(t, "글틀 {|값 { {1}것 } 끝|}")
	tpl := stmtExpr(t, prog, 0).(*ast.Template)
	if len(tpl.Parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(tpl.Parts))
	}
	if _, ok := tpl.Parts[1].Expr.(*ast.Eval); !ok {
		t.Errorf("interp = %T, want Eval", tpl.Parts[1].Expr)
	}
}

func TestFormulaBody(t *testing.T) {
	prog := parse(t, "셈틀 {|x + 1|}")
	f, ok := stmtExpr(t, prog, 0).(*ast.Formula)
	if !ok {
		t.Fatalf("expected Formula, got %T", stmtExpr(t, prog, 0))
	}
	if f.Raw != "x + 1" {
		t.Errorf("raw = %q", f.Raw)
	}
	if got := shape(f.Body); got != "(x + 1)" {
		t.Errorf("body shape = %s", got)
	}
	if want := (token.Span{Start: 9, End: 14}); f.Body.GetSpan() != want {
		t.Errorf("body span = %+v, want %+v", f.Body.GetSpan(), want)
	}
}

// ---------- seed definitions ----------

func TestSeedDefFull(t *testing.T) {
	prog := parse(t, `씨앗 무게재기 (짐 을/를 : 수@kg, 틀 로 : 글 = "기본", 꼬리 가 선택) {
	돌려주기 짐
}`)
	sd, ok := prog.Items[0].(*ast.SeedDef)
	if !ok {
		t.Fatalf("expected SeedDef, got %T", prog.Items[0])
	}
	if sd.Kind != ast.KindSem || sd.Name != "무게재기" {
		t.Errorf("kind %q name %q", sd.Kind, sd.Name)
	}
	if len(sd.Params) != 3 {
		t.Fatalf("params = %d, want 3", len(sd.Params))
	}

	p0, p1, p2 := sd.Params[0], sd.Params[1], sd.Params[2]
	if p0.PinName != "짐" || len(p0.JosaList) != 2 || p0.JosaList[0] != "을" || p0.JosaList[1] != "를" {
		t.Errorf("param 0 = %q %v", p0.PinName, p0.JosaList)
	}
	if p0.Type.Name != "수" || p0.Type.Unit != "kg" {
		t.Errorf("param 0 type = %+v", p0.Type)
	}
	if !p0.Required() {
		t.Errorf("param 0 should be required")
	}
	if s, ok := p1.Default.(*ast.StrLit); !ok || s.Value != "기본" {
		t.Errorf("param 1 default = %v", p1.Default)
	}
	if p1.Required() {
		t.Errorf("param 1 has a default, not required")
	}
	if !p2.Optional || p2.Required() {
		t.Errorf("param 2 optional flag wrong")
	}

	ret, ok := sd.Body.Stmts[0].(*ast.Return)
	if !ok {
		t.Fatalf("body stmt = %T, want Return", sd.Body.Stmts[0])
	}
	if id, ok := ret.Value.(*ast.Ident); !ok || id.Name != "짐" {
		t.Errorf("return value = %v", ret.Value)
	}
}

func TestSeedKindWord(t *testing.T) {
	prog := parse(t, "씨앗 벼림 고르개 { }")
	sd := prog.Items[0].(*ast.SeedDef)
	if sd.Kind != ast.SeedKind("벼림") || sd.Name != "고르개" {
		t.Errorf("kind %q name %q", sd.Kind, sd.Name)
	}
}

func TestMadangDef(t *testing.T) {
	prog := parse(t, "마당 { (1 을) 보이기 }")
	sd := prog.Items[0].(*ast.SeedDef)
	if sd.Kind != ast.KindMadang || sd.Name != "마당" {
		t.Errorf("kind %q name %q", sd.Kind, sd.Name)
	}
	if len(sd.Params) != 0 || len(sd.Body.Stmts) != 1 {
		t.Errorf("params %d body %d", len(sd.Params), len(sd.Body.Stmts))
	}
}

func TestBareReturnAtBlockEnd(t *testing.T) {
	prog := parse(t, "씨앗 일 (값 을) { 만약 값 > 0 { 돌려주기 } (값 을) 보이기 }")
	sd := prog.Items[0].(*ast.SeedDef)
	iff := sd.Body.Stmts[0].(*ast.If)
	ret, ok := iff.Then.Stmts[0].(*ast.Return)
	if !ok {
		t.Fatalf("then stmt = %T, want Return", iff.Then.Stmts[0])
	}
	if ret.Value != nil {
		t.Errorf("bare return carries value %v", ret.Value)
	}
}

// ---------- statements ----------

func TestIfElseChain(t *testing.T) {
	prog := parse(t, "만약 x > 1 { } 아니면 만약 x > 0 { } 아니면 { }")
	iff, ok := prog.Items[0].(*ast.If)
	if !ok {
		t.Fatalf("expected If, got %T", prog.Items[0])
	}
	second, ok := iff.Else.(*ast.If)
	if !ok {
		t.Fatalf("else = %T, want nested If", iff.Else)
	}
	if _, ok := second.Else.(*ast.Block); !ok {
		t.Fatalf("final else = %T, want Block", second.Else)
	}
}

func TestWhilePostfix(t *testing.T) {
	prog := parse(t, "x > 0 동안 { x <- x - 1 }")
	w, ok := prog.Items[0].(*ast.While)
	if !ok {
		t.Fatalf("expected While, got %T", prog.Items[0])
	}
	if got := shape(w.Cond); got != "(x > 0)" {
		t.Errorf("cond = %s", got)
	}
	if _, ok := w.Body.Stmts[0].(*ast.Mutate); !ok {
		t.Errorf("body stmt = %T, want Mutate", w.Body.Stmts[0])
	}
}

func TestForEachWithBinder(t *testing.T) {
	prog := parse(t, "[1, 2] 마다 칸 { (칸 을) 보이기 }")
	fe, ok := prog.Items[0].(*ast.ForEach)
	if !ok {
		t.Fatalf("expected ForEach, got %T", prog.Items[0])
	}
	if fe.Binder != "칸" {
		t.Errorf("binder = %q", fe.Binder)
	}
	if _, ok := fe.Seq.(*ast.Pack); !ok {
		t.Errorf("seq = %T, want Pack", fe.Seq)
	}
}

func TestForEachWithoutBinder(t *testing.T) {
	prog := parse(t, "차림 마다 { (1 을) 보이기 }")
	fe := prog.Items[0].(*ast.ForEach)
	if fe.Binder != "" {
		t.Errorf("binder = %q, want empty", fe.Binder)
	}
}

func TestRepeatStatement(t *testing.T) {
	for _, input := range []string{"거듭 3 번 { }", "거듭 3 { }"} {
		prog := parse(t, input)
		r, ok := prog.Items[0].(*ast.Repeat)
		if !ok {
			t.Fatalf("%s: expected Repeat, got %T", input, prog.Items[0])
		}
		if c, ok := r.Count.(*ast.IntLit); !ok || c.Value != 3 {
			t.Errorf("%s: count = %v", input, r.Count)
		}
	}
}

func TestChooseStatement(t *testing.T) {
	prog := parse(t, `고름 {
	x > 1 이면 { (1 을) 보이기 }
	x > 0 이면 { (2 를) 보이기 }
	아니면 { (3 을) 보이기 }
}`)
	ch, ok := prog.Items[0].(*ast.Choose)
	if !ok {
		t.Fatalf("expected Choose, got %T", prog.Items[0])
	}
	if len(ch.Arms) != 2 {
		t.Fatalf("arms = %d, want 2", len(ch.Arms))
	}
	if ch.Else == nil {
		t.Fatalf("else arm missing")
	}
	if got := shape(ch.Arms[1].Cond); got != "(x > 0)" {
		t.Errorf("arm 1 cond = %s", got)
	}
}

func TestChooseWithoutElse(t *testing.T) {
	prog := parse(t, "고름 { x > 1 이면 { } }")
	ch := prog.Items[0].(*ast.Choose)
	if len(ch.Arms) != 1 || ch.Else != nil {
		t.Errorf("arms = %d, else = %v", len(ch.Arms), ch.Else)
	}
}

func TestContractPhases(t *testing.T) {
	prog := parse(t, "씨앗 일 (값 을) { 다짐 앞 값 > 0 다짐 뒤 값 < 10 다짐 값 != 5 }")
	body := prog.Items[0].(*ast.SeedDef).Body
	phases := []ast.ContractPhase{ast.ContractPre, ast.ContractPost, ast.ContractPre}
	for i, want := range phases {
		c, ok := body.Stmts[i].(*ast.Contract)
		if !ok {
			t.Fatalf("stmt %d = %T, want Contract", i, body.Stmts[i])
		}
		if c.Phase != want {
			t.Errorf("stmt %d phase = %s, want %s", i, c.Phase, want)
		}
	}
}

func TestGuardStatement(t *testing.T) {
	prog := parse(t, "지킴 빗장 > 0 { (빗장 을) 보이기 }")
	g, ok := prog.Items[0].(*ast.Guard)
	if !ok {
		t.Fatalf("expected Guard, got %T", prog.Items[0])
	}
	if len(g.Body.Stmts) != 1 {
		t.Errorf("guard body stmts = %d", len(g.Body.Stmts))
	}
}

func TestDeclBlock(t *testing.T) {
	prog := parse(t, "갖춤 { 셈 <- 0 이름 <- \"기본\" }")
	db, ok := prog.Items[0].(*ast.DeclBlock)
	if !ok {
		t.Fatalf("expected DeclBlock, got %T", prog.Items[0])
	}
	if len(db.Decls) != 2 {
		t.Fatalf("decls = %d, want 2", len(db.Decls))
	}
	if db.Decls[0].Name != "셈" || db.Decls[1].Name != "이름" {
		t.Errorf("decl names = %q, %q", db.Decls[0].Name, db.Decls[1].Name)
	}
}

func TestMutateMultiTarget(t *testing.T) {
	prog := parse(t, "가, 나 <- 5")
	m, ok := prog.Items[0].(*ast.Mutate)
	if !ok {
		t.Fatalf("expected Mutate, got %T", prog.Items[0])
	}
	if len(m.Targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(m.Targets))
	}
	if v, ok := m.Value.(*ast.IntLit); !ok || v.Value != 5 {
		t.Errorf("value = %v", m.Value)
	}
}

func TestMutateFieldTarget(t *testing.T) {
	prog := parse(t, "판 의 칸 <- 1")
	m := prog.Items[0].(*ast.Mutate)
	if _, ok := m.Targets[0].(*ast.FieldAccess); !ok {
		t.Errorf("target = %T, want FieldAccess", m.Targets[0])
	}
}

func TestRootHideDirective(t *testing.T) {
	prog := parse(t, "뿌리숨김\n갖춤 { 셈 <- 0 }\n셈 <- 셈 + 1")
	if !prog.RootHide {
		t.Fatalf("RootHide flag not set")
	}
	if _, ok := prog.Items[0].(*ast.Directive); !ok {
		t.Fatalf("item 0 = %T, want Directive", prog.Items[0])
	}
	if _, ok := prog.Items[2].(*ast.Mutate); !ok {
		t.Errorf("item 2 = %T, want Mutate", prog.Items[2])
	}
}

// ---------- node identity ----------

func TestNodeIDsUnique(t *testing.T) {
	prog := parse(t, `씨앗 두배 (값 을/를) { 돌려주기 값 * 2 }
(3 을) 두배 해서 보이기
글틀 {|답 {x}|}`)

	seen := map[ast.NodeID]bool{}
	ast.Inspect(prog, func(n ast.Node) bool {
		id := n.ID()
		if id <= 0 {
			t.Errorf("node %T has id %d", n, id)
		}
		if seen[id] {
			t.Errorf("duplicate node id %d on %T", id, n)
		}
		seen[id] = true
		if id > prog.LastID {
			t.Errorf("id %d exceeds LastID %d", id, prog.LastID)
		}
		return true
	})
	if prog.ID() != prog.LastID {
		t.Errorf("program id %d != LastID %d", prog.ID(), prog.LastID)
	}
}

func TestStatementSpans(t *testing.T) {
	input := "(5 를) 보이기"
	prog := parse(t, input)
	sp := prog.Items[0].GetSpan()
	if got := input[sp.Start:sp.End]; got != input {
		t.Errorf("statement span slices %q", got)
	}
}
