package parser

import (
	"strconv"

	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expr {
	return &ast.Ident{Base: p.newBase(p.curToken.Span), Name: p.curToken.Raw}
}

func (p *Parser) parseIntLiteral() ast.Expr {
	v, err := strconv.ParseInt(p.curToken.Raw, 10, 64)
	if err != nil {
		p.fail(diagnostics.ErrBadLiteral, p.curToken.Span,
			"정수 '%s' 를 읽을 수 없습니다", p.curToken.Raw)
		return nil
	}
	return &ast.IntLit{Base: p.newBase(p.curToken.Span), Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	v, err := strconv.ParseFloat(p.curToken.Raw, 64)
	if err != nil {
		p.fail(diagnostics.ErrBadLiteral, p.curToken.Span,
			"실수 '%s' 를 읽을 수 없습니다", p.curToken.Raw)
		return nil
	}
	return &ast.FloatLit{Base: p.newBase(p.curToken.Span), Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expr {
	return &ast.StrLit{Base: p.newBase(p.curToken.Span), Value: p.curToken.Raw}
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	return &ast.BoolLit{Base: p.newBase(p.curToken.Span), Value: p.curTokenIs(token.KW_TRUE)}
}

func (p *Parser) parseNoneLiteral() ast.Expr {
	return &ast.NoneLit{Base: p.newBase(p.curToken.Span)}
}

// [값, 값, …]
func (p *Parser) parsePackLiteral() ast.Expr {
	start := p.curToken.Span
	node := &ast.Pack{}
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		node.Base = p.newBase(start.Merge(p.curToken.Span))
		return node
	}

	for {
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		node.Elems = append(node.Elems, el)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		break
	}
	node.Base = p.newBase(start.Merge(p.curToken.Span))
	return node
}

// evalModeWords are the suffix words that force a thunk. They are ordinary
// identifiers, not keywords, so 것 or 하기 stay usable as names elsewhere.
var evalModeWords = map[string]ast.EvalMode{
	"것":   ast.EvalValue,
	"인것":  ast.EvalBool,
	"아닌것": ast.EvalNegBool,
	"하기":  ast.EvalDo,
}

// { 문장들 } [것|인것|아닌것|하기]. A bare thunk is inert; the suffix word
// picks its evaluation mode.
func (p *Parser) parseThunkExpression() ast.Expr {
	start := p.curToken.Span
	p.bodyDepth++
	body := p.parseBlock()
	p.bodyDepth--
	if body == nil {
		return nil
	}
	th := &ast.Thunk{Base: p.newBase(start.Merge(body.Span)), Body: body}

	if p.peekTokenIs(token.IDENT) {
		if mode, ok := evalModeWords[p.peekToken.Raw]; ok {
			p.nextToken()
			return &ast.Eval{
				Base:  p.newBase(th.Span.Merge(p.curToken.Span)),
				Thunk: th,
				Mode:  mode,
			}
		}
	}
	return th
}
