// Package lexer turns Ssiat source text into the token stream the parser
// consumes. It classifies keywords and standalone grammatical particles,
// captures {| … |} block-literal bodies raw, and tags every token with a
// byte-offset span into the original source.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

type Lexer struct {
	input   string
	pos     int  // byte offset of ch
	readPos int  // byte offset after ch
	ch      rune // current rune under examination
	errs    []*diagnostics.ParseError
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Errors returns every lexical error encountered so far, in source order.
func (l *Lexer) Errors() []*diagnostics.ParseError { return l.errs }

// Tokens lexes the whole input, ending with a single EOF token.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.pos = l.readPos
		l.ch = 0
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += w
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) skipSpaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch != '#' {
			return
		}
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}
}

// Next produces the next token. After EOF it keeps returning EOF.
func (l *Lexer) Next() token.Token {
	l.skipSpaceAndComments()

	start := l.pos
	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Span: token.Span{Start: start, End: start}}
	case l.ch == '"':
		return l.readString(start)
	case isDigit(l.ch):
		return l.readNumber(start)
	case isWordStart(l.ch):
		return l.readWord(start)
	}

	mk := func(k token.Kind, n int) token.Token {
		for i := 0; i < n; i++ {
			l.readChar()
		}
		return token.Token{Kind: k, Raw: l.input[start:l.pos], Span: token.Span{Start: start, End: l.pos}}
	}

	switch l.ch {
	case '(':
		return mk(token.LPAREN, 1)
	case ')':
		return mk(token.RPAREN, 1)
	case '{':
		if l.peekChar() == '|' {
			return l.readBlock(start)
		}
		return mk(token.LBRACE, 1)
	case '}':
		return mk(token.RBRACE, 1)
	case '[':
		return mk(token.LBRACKET, 1)
	case ']':
		return mk(token.RBRACKET, 1)
	case ',':
		return mk(token.COMMA, 1)
	case ':':
		return mk(token.COLON, 1)
	case '@':
		return mk(token.AT, 1)
	case '?':
		return mk(token.QUESTION, 1)
	case '+':
		return mk(token.PLUS, 1)
	case '-':
		return mk(token.MINUS, 1)
	case '*':
		return mk(token.STAR, 1)
	case '/':
		return mk(token.SLASH, 1)
	case '%':
		return mk(token.PERCENT, 1)
	case '=':
		if l.peekChar() == '=' {
			return mk(token.EQ, 2)
		}
		return mk(token.ASSIGN, 1)
	case '!':
		if l.peekChar() == '=' {
			return mk(token.NOT_EQ, 2)
		}
		return mk(token.BANG, 1)
	case '<':
		switch l.peekChar() {
		case '-':
			return mk(token.BIND, 2)
		case '=':
			return mk(token.LE, 2)
		}
		return mk(token.LT, 1)
	case '>':
		if l.peekChar() == '=' {
			return mk(token.GE, 2)
		}
		return mk(token.GT, 1)
	case '|':
		if l.peekChar() == '>' {
			return mk(token.PIPE_LEGACY, 2)
		}
		return l.illegal(start, 1, "쓸 수 없는 글자 '|' 입니다")
	}
	return l.illegal(start, 1, "쓸 수 없는 글자 %q 입니다", string(l.ch))
}

func (l *Lexer) illegal(start, runes int, format string, args ...any) token.Token {
	for i := 0; i < runes; i++ {
		l.readChar()
	}
	sp := token.Span{Start: start, End: l.pos}
	l.errs = append(l.errs, diagnostics.New(diagnostics.ErrUnexpectedToken, sp, format, args...))
	return token.Token{Kind: token.ILLEGAL, Raw: l.input[start:l.pos], Span: sp}
}

// readWord consumes one word: letters (Hangul included), digits, '_', and
// interior dots for namespaced builtin names such as 차림.값. The word is
// then classified as a keyword, a particle, or an identifier.
func (l *Lexer) readWord(start int) token.Token {
	for isWordPart(l.ch) || (l.ch == '.' && isWordPart(l.peekChar())) {
		l.readChar()
	}
	raw := l.input[start:l.pos]
	sp := token.Span{Start: start, End: l.pos}
	if k, ok := token.Keywords[raw]; ok {
		return token.Token{Kind: k, Raw: raw, Span: sp}
	}
	if token.Josa[raw] {
		return token.Token{Kind: token.JOSA, Raw: raw, Span: sp}
	}
	return token.Token{Kind: token.IDENT, Raw: raw, Span: sp}
}

func (l *Lexer) readNumber(start int) token.Token {
	kind := token.INT
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = token.FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return token.Token{Kind: kind, Raw: l.input[start:l.pos], Span: token.Span{Start: start, End: l.pos}}
}

func (l *Lexer) readString(start int) token.Token {
	l.readChar() // opening quote
	var sb strings.Builder
	for {
		switch l.ch {
		case '"':
			l.readChar()
			return token.Token{Kind: token.STRING, Raw: sb.String(), Span: token.Span{Start: start, End: l.pos}}
		case 0, '\n':
			sp := token.Span{Start: start, End: l.pos}
			l.errs = append(l.errs, diagnostics.New(diagnostics.ErrUnterminated, sp, "글이 '\"' 로 닫히지 않았습니다"))
			return token.Token{Kind: token.ILLEGAL, Raw: sb.String(), Span: sp}
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sp := token.Span{Start: l.pos, End: l.readPos}
				l.errs = append(l.errs, diagnostics.New(diagnostics.ErrBadLiteral, sp, "알 수 없는 이스케이프 '\\%s' 입니다", string(l.ch)))
			}
			l.readChar()
		default:
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}
}

// readBlock captures a {| … |} body verbatim. The raw text excludes the
// delimiters; the span includes them, so the parser can re-lex the body at
// Span.Start+2 and keep absolute offsets correct.
func (l *Lexer) readBlock(start int) token.Token {
	l.readChar() // {
	l.readChar() // |
	bodyStart := l.pos
	for {
		if l.ch == 0 {
			sp := token.Span{Start: start, End: l.pos}
			l.errs = append(l.errs, diagnostics.New(diagnostics.ErrUnterminated, sp, "틀몸통이 '|}' 로 닫히지 않았습니다"))
			return token.Token{Kind: token.ILLEGAL, Raw: l.input[bodyStart:l.pos], Span: sp}
		}
		if l.ch == '|' && l.peekChar() == '}' {
			raw := l.input[bodyStart:l.pos]
			l.readChar()
			l.readChar()
			return token.Token{Kind: token.BLOCK, Raw: raw, Span: token.Span{Start: start, End: l.pos}}
		}
		l.readChar()
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isWordPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
