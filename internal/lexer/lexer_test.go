package lexer_test

import (
	"testing"

	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/lexer"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// lex runs the lexer over input and fails the test on lexical errors.
func lex(t *testing.T, input string) []token.Token {
	t.Helper()
	l := lexer.New(input)
	toks := l.Tokens()
	for _, e := range l.Errors() {
		t.Errorf("lex error: %s", e)
	}
	if t.Failed() {
		t.FailNow()
	}
	return toks
}

func expectKinds(t *testing.T, input string, kinds ...token.Kind) []token.Token {
	t.Helper()
	toks := lex(t, input)
	kinds = append(kinds, token.EOF)
	if len(toks) != len(kinds) {
		t.Fatalf("token count = %d, want %d\ninput: %s", len(toks), len(kinds), input)
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d = %s (%q), want %s\ninput: %s", i, toks[i].Kind, toks[i].Raw, k, input)
		}
	}
	return toks
}

// ---------- classification ----------

func TestOperators(t *testing.T) {
	expectKinds(t, "( ) { } [ ] , : = <- @ ? + - * / % ! == != < <= > >= |>",
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.COMMA, token.COLON,
		token.ASSIGN, token.BIND, token.AT, token.QUESTION,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.BANG, token.EQ, token.NOT_EQ,
		token.LT, token.LE, token.GT, token.GE, token.PIPE_LEGACY)
}

func TestKeywordsAndParticles(t *testing.T) {
	toks := expectKinds(t, "씨앗 마당 만약 아니면 해서 부터 까지 의 을 에서 보이기 돌려주기 뿌리숨김",
		token.KW_SEED, token.KW_MADANG, token.KW_IF, token.KW_ELSE,
		token.KW_PIPE, token.KW_FROM, token.KW_TO, token.KW_OF,
		token.JOSA, token.JOSA, token.IDENT, token.KW_RETURN, token.KW_ROOTHIDE)
	if toks[8].Raw != "을" || toks[9].Raw != "에서" {
		t.Errorf("particle raws = %q, %q", toks[8].Raw, toks[9].Raw)
	}
}

func TestDottedIdentifier(t *testing.T) {
	toks := expectKinds(t, "차림.값", token.IDENT)
	if toks[0].Raw != "차림.값" {
		t.Errorf("dotted ident raw = %q", toks[0].Raw)
	}
}

func TestNumbers(t *testing.T) {
	toks := expectKinds(t, "12 3.5 0.25", token.INT, token.FLOAT, token.FLOAT)
	if toks[0].Raw != "12" || toks[1].Raw != "3.5" || toks[2].Raw != "0.25" {
		t.Errorf("number raws = %q %q %q", toks[0].Raw, toks[1].Raw, toks[2].Raw)
	}
}

func TestComments(t *testing.T) {
	expectKinds(t, "1 # 줄끝까지 주석\n2", token.INT, token.INT)
}

// ---------- strings ----------

func TestStringEscapes(t *testing.T) {
	toks := lex(t, `"한 줄\n\"둘\"\\"`)
	if toks[0].Kind != token.STRING {
		t.Fatalf("kind = %s, want 글", toks[0].Kind)
	}
	want := "한 줄\n\"둘\"\\"
	if toks[0].Raw != want {
		t.Errorf("decoded = %q, want %q", toks[0].Raw, want)
	}
}

func TestStringUnterminated(t *testing.T) {
	l := lexer.New(`"열린 채`)
	l.Tokens()
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrUnterminated {
		t.Fatalf("errors = %v, want one %s", errs, diagnostics.ErrUnterminated)
	}
}

func TestStringBadEscape(t *testing.T) {
	l := lexer.New(`"a\q"`)
	l.Tokens()
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrBadLiteral {
		t.Fatalf("errors = %v, want one %s", errs, diagnostics.ErrBadLiteral)
	}
}

// ---------- block literals ----------

func TestBlockLiteral(t *testing.T) {
	input := "글틀 {|안녕 {이름}|}"
	toks := expectKinds(t, input, token.KW_TEMPLATE, token.BLOCK)
	blk := toks[1]
	if blk.Raw != "안녕 {이름}" {
		t.Errorf("block raw = %q", blk.Raw)
	}
	// The span keeps the delimiters so the parser can re-lex the body at
	// Span.Start+2 with absolute offsets.
	if blk.Span.Start != 7 || blk.Span.End != len(input) {
		t.Errorf("block span = %+v, want {7 %d}", blk.Span, len(input))
	}
}

func TestBlockUnterminated(t *testing.T) {
	l := lexer.New("셈틀 {|x + 1")
	l.Tokens()
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrUnterminated {
		t.Fatalf("errors = %v, want one %s", errs, diagnostics.ErrUnterminated)
	}
}

// ---------- spans ----------

func TestSpansSliceInput(t *testing.T) {
	input := "씨앗 두배 (값 을/를) { 돌려주기 값 * 2 }"
	for _, tok := range lex(t, input) {
		if tok.Kind == token.EOF {
			continue
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Raw {
			t.Errorf("span slice %q != raw %q at %+v", got, tok.Raw, tok.Span)
		}
	}
}

func TestEOFSticks(t *testing.T) {
	l := lexer.New("1")
	l.Next()
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next() after end = %s, want 끝", tok.Kind)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := lexer.New("1 ; 2")
	toks := l.Tokens()
	if toks[1].Kind != token.ILLEGAL {
		t.Fatalf("token 1 = %s, want ILLEGAL", toks[1].Kind)
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrUnexpectedToken {
		t.Fatalf("errors = %v, want one %s", errs, diagnostics.ErrUnexpectedToken)
	}
}
