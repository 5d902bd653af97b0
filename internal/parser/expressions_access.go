package parser

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/config"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// x 의 속성
func (p *Parser) parseFieldAccess(x ast.Expr) ast.Expr {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.FieldAccess{
		Base:      p.newBase(x.GetSpan().Merge(p.curToken.Span)),
		X:         x,
		Field:     p.curToken.Raw,
		FieldSpan: p.curToken.Span,
	}
}

// parseIndexExpression rewrites 차림[자리] into a 차림.값 call with both
// pins fixed, so later passes never see indexing syntax.
func (p *Parser) parseIndexExpression(x ast.Expr) ast.Expr {
	bracket := p.curToken.Span
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if idx == nil {
		return nil
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.Call{
		Base:     p.newBase(x.GetSpan().Merge(p.curToken.Span)),
		RawName:  config.IndexSeedName,
		NameSpan: bracket.Merge(p.curToken.Span),
		Args: []*ast.ArgBinding{
			{Value: x, Pin: config.IndexContainerPin, PinSpan: x.GetSpan(), Span: x.GetSpan()},
			{Value: idx, Pin: config.IndexPositionPin, PinSpan: idx.GetSpan(), Span: idx.GetSpan()},
		},
	}
}

// parseAtSuffix handles 값@단위 (kept as a Suffix node for the dimension
// checker) and 값@"길" (rewritten into a 자료.열기 call).
func (p *Parser) parseAtSuffix(x ast.Expr) ast.Expr {
	switch p.peekToken.Kind {
	case token.IDENT:
		p.nextToken()
		return &ast.Suffix{
			Base:     p.newBase(x.GetSpan().Merge(p.curToken.Span)),
			X:        x,
			Unit:     p.curToken.Raw,
			UnitSpan: p.curToken.Span,
		}
	case token.STRING:
		p.nextToken()
		path := &ast.StrLit{Base: p.newBase(p.curToken.Span), Value: p.curToken.Raw}
		return &ast.Call{
			Base:     p.newBase(x.GetSpan().Merge(p.curToken.Span)),
			RawName:  config.ResourceSeedName,
			NameSpan: p.curToken.Span,
			Args: []*ast.ArgBinding{
				{Value: x, Pin: config.ResourceValuePin, PinSpan: x.GetSpan(), Span: x.GetSpan()},
				{Value: path, Pin: config.ResourcePathPin, PinSpan: path.Span, Span: path.Span},
			},
		}
	}
	p.fail(diagnostics.ErrUnexpectedToken, p.peekToken.Span,
		"'@' 뒤에는 단위 이름이나 자료 경로가 와야 합니다")
	return nil
}
