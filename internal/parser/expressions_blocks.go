package parser

import (
	"strings"

	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/lexer"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// 글틀 {| 글 {식} 글 |}. Interpolated expressions are re-lexed at their
// absolute byte offset, so every span still points into the original source.
func (p *Parser) parseTemplateLiteral() ast.Expr {
	start := p.curToken.Span
	if !p.expectPeek(token.BLOCK) {
		return nil
	}
	raw := p.curToken.Raw
	base := p.curToken.Span.Start + 2 // past the {| delimiter

	node := &ast.Template{}
	textStart := 0
	i := 0
	for i < len(raw) {
		switch raw[i] {
		case '{':
			if i > textStart {
				node.Parts = append(node.Parts, ast.TemplatePart{
					Text: raw[textStart:i],
					Span: token.Span{Start: base + textStart, End: base + i},
				})
			}
			end, ok := scanInterp(raw, i)
			if !ok {
				p.fail(diagnostics.ErrUnterminated,
					token.Span{Start: base + i, End: base + len(raw)},
					"글틀 끼움이 '}' 로 닫히지 않았습니다")
				return nil
			}
			inner := raw[i+1 : end]
			if strings.TrimSpace(inner) == "" {
				p.fail(diagnostics.ErrUnexpectedToken,
					token.Span{Start: base + i, End: base + end + 1},
					"빈 끼움 '{}' 에는 식이 필요합니다")
				return nil
			}
			x := p.parseSubExpression(inner, base+i+1)
			if x == nil {
				return nil
			}
			node.Parts = append(node.Parts, ast.TemplatePart{
				Expr: x,
				Span: token.Span{Start: base + i, End: base + end + 1},
			})
			i = end + 1
			textStart = i
		case '}':
			p.fail(diagnostics.ErrUnexpectedToken,
				token.Span{Start: base + i, End: base + i + 1},
				"'}' 에 대응하는 '{' 가 없습니다")
			return nil
		default:
			i++
		}
	}
	if textStart < len(raw) {
		node.Parts = append(node.Parts, ast.TemplatePart{
			Text: raw[textStart:],
			Span: token.Span{Start: base + textStart, End: base + len(raw)},
		})
	}
	node.Base = p.newBase(start.Merge(p.curToken.Span))
	return node
}

// scanInterp finds the '}' closing the '{' at open, skipping nested braces
// and string literals.
func scanInterp(raw string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		case '"':
			j := i + 1
			for j < len(raw) && raw[j] != '"' {
				if raw[j] == '\\' {
					j++
				}
				j++
			}
			i = j
		}
	}
	return 0, false
}

// 셈틀 {| 식 |}. The body is parsed for well-formedness now and solved
// later by the 풀기 builtin.
func (p *Parser) parseFormulaLiteral() ast.Expr {
	start := p.curToken.Span
	if !p.expectPeek(token.BLOCK) {
		return nil
	}
	raw := p.curToken.Raw
	if strings.TrimSpace(raw) == "" {
		p.fail(diagnostics.ErrBadLiteral, p.curToken.Span, "셈틀 몸통이 비어 있습니다")
		return nil
	}
	body := p.parseSubExpression(raw, p.curToken.Span.Start+2)
	if body == nil {
		return nil
	}
	return &ast.Formula{
		Base: p.newBase(start.Merge(p.curToken.Span)),
		Raw:  raw,
		Body: body,
	}
}

// parseSubExpression lexes and parses src as one complete expression. base
// is src's byte offset in the original source; token spans are shifted so
// diagnostics and the origin map stay absolute. Node ids keep flowing from
// this parser.
func (p *Parser) parseSubExpression(src string, base int) ast.Expr {
	sub := lexer.New(src)
	toks := sub.Tokens()
	if errs := sub.Errors(); len(errs) > 0 {
		e := errs[0]
		e.Span.Start += base
		e.Span.End += base
		p.ctx.AddError(e)
		return nil
	}
	for i := range toks {
		toks[i].Span.Start += base
		toks[i].Span.End += base
	}

	savedTokens, savedPos := p.tokens, p.pos
	savedCur, savedPeek := p.curToken, p.peekToken
	p.tokens, p.pos = toks, 0
	p.curToken = p.tokenAt(0)
	p.peekToken = p.tokenAt(1)

	x := p.parseExpression(LOWEST)
	if x != nil && !p.peekTokenIs(token.EOF) {
		p.fail(diagnostics.ErrUnexpectedToken, p.peekToken.Span,
			"식 하나만 올 자리에 '%s' 가 더 있습니다", p.peekToken)
		x = nil
	}

	p.tokens, p.pos = savedTokens, savedPos
	p.curToken, p.peekToken = savedCur, savedPeek
	return x
}
