package parser

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// Operator precedence, lowest first.
const (
	_ int = iota
	LOWEST
	PIPE       // 해서
	LOGIC_OR   // 또는
	LOGIC_AND  // 그리고
	EQUALITY   // == !=
	COMPARISON // < <= > >=
	RANGE      // 부터 … 까지
	SUM        // + -
	PRODUCT    // * / %
	PREFIX     // -x !x
	POSTFIX    // x[i] x@m x 의 y
)

var precedences = map[token.Kind]int{
	token.KW_PIPE:  PIPE,
	token.KW_OR:    LOGIC_OR,
	token.KW_AND:   LOGIC_AND,
	token.EQ:       EQUALITY,
	token.NOT_EQ:   EQUALITY,
	token.LT:       COMPARISON,
	token.LE:       COMPARISON,
	token.GT:       COMPARISON,
	token.GE:       COMPARISON,
	token.KW_FROM:  RANGE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LBRACKET: POSTFIX,
	token.AT:       POSTFIX,
	token.KW_OF:    POSTFIX,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseExpression(precedence int) ast.Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxRecursionDepth {
		p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span, "식이 너무 깊게 중첩되었습니다")
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError()
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) noPrefixParseFnError() {
	switch p.curToken.Kind {
	case token.QUESTION:
		p.fail(diagnostics.ErrFlowPlaceholder, p.curToken.Span,
			"'?' 는 호출 인자 자리에서만 쓸 수 있습니다")
	case token.PIPE_LEGACY:
		p.fail(diagnostics.ErrLegacySyntax, p.curToken.Span,
			"'|>' 파이프는 사라졌습니다; '해서' 로 이으세요")
	case token.JOSA:
		p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span,
			"조사 '%s' 앞에 값이 와야 합니다", p.curToken.Raw)
	default:
		p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span,
			"'%s' 로 식을 시작할 수 없습니다", p.curToken)
	}
}

// -x, !x
func (p *Parser) parsePrefixExpression() ast.Expr {
	op := p.curToken.Raw
	start := p.curToken.Span
	p.nextToken()
	x := p.parseExpression(PREFIX)
	if x == nil {
		return nil
	}
	return &ast.Prefix{Base: p.newBase(start.Merge(x.GetSpan())), Op: op, X: x}
}

func (p *Parser) parseInfixExpression(left ast.Expr) ast.Expr {
	op := p.curToken.Raw
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &ast.Infix{
		Base:  p.newBase(left.GetSpan().Merge(right.GetSpan())),
		Op:    op,
		Left:  left,
		Right: right,
	}
}

// from 부터 to 까지
func (p *Parser) parseRangeExpression(from ast.Expr) ast.Expr {
	p.nextToken()
	to := p.parseExpression(RANGE)
	if to == nil {
		return nil
	}
	if !p.expectPeek(token.KW_TO) {
		return nil
	}
	return &ast.Range{
		Base: p.newBase(from.GetSpan().Merge(p.curToken.Span)),
		From: from,
		To:   to,
	}
}
