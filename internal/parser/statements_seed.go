package parser

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// 씨앗 [갈래] 이름 [(매개변수들)] { 몸통 }
// 마당 { 몸통 }
func (p *Parser) parseSeedDef() ast.Stmt {
	if len(p.scopes) > 1 {
		p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span,
			"씨앗 정의는 최상위에서만 할 수 있습니다")
		return nil
	}
	start := p.curToken.Span
	node := &ast.SeedDef{Kind: ast.KindSem}

	if p.curTokenIs(token.KW_MADANG) {
		node.Kind = ast.KindMadang
		node.Name = p.curToken.Raw
		node.NameSpan = p.curToken.Span
	} else {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		// Two identifiers in a row: the first is the kind word.
		if p.peekTokenIs(token.IDENT) {
			node.Kind = ast.SeedKind(p.curToken.Raw)
			p.nextToken()
		}
		node.Name = p.curToken.Raw
		node.NameSpan = p.curToken.Span

		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			if !p.parseParamList(node) {
				return nil
			}
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	names := make([]string, 0, len(node.Params))
	for _, pin := range node.Params {
		names = append(names, pin.PinName)
	}
	p.bodyDepth++
	body := p.parseBlockWith(names...)
	p.bodyDepth--
	if body == nil {
		return nil
	}
	node.Body = body
	node.Base = p.newBase(start.Merge(body.Span))
	return node
}

// (이름 조사[/조사…] [: 타입[@단위]] [= 기본값] [선택], …). curToken sits on
// the '(' and ends on the ')'. Every parameter carries at least one particle
// so call sites always have a dictionary spelling available.
func (p *Parser) parseParamList(seed *ast.SeedDef) bool {
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return true
	}

	for {
		if !p.expectPeek(token.IDENT) {
			return false
		}
		pin := &ast.ParamPin{PinName: p.curToken.Raw, NameSpan: p.curToken.Span}
		for _, prev := range seed.Params {
			if prev.PinName == pin.PinName {
				p.fail(diagnostics.ErrUnexpectedToken, pin.NameSpan,
					"매개변수 이름 '%s' 이 겹칩니다", pin.PinName)
				return false
			}
		}

		if !p.expectPeek(token.JOSA) {
			return false
		}
		pin.JosaList = append(pin.JosaList, p.curToken.Raw)
		for p.peekTokenIs(token.SLASH) {
			p.nextToken()
			if !p.expectPeek(token.JOSA) {
				return false
			}
			for _, j := range pin.JosaList {
				if j == p.curToken.Raw {
					p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span,
						"조사 '%s' 가 한 매개변수에 두 번 왔습니다", j)
					return false
				}
			}
			pin.JosaList = append(pin.JosaList, p.curToken.Raw)
		}
		end := p.curToken.Span

		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return false
			}
			pin.Type = ast.TypeRef{Name: p.curToken.Raw, Span: p.curToken.Span}
			if p.peekTokenIs(token.AT) {
				p.nextToken()
				if !p.expectPeek(token.IDENT) {
					return false
				}
				pin.Type.Unit = p.curToken.Raw
				pin.Type.Span = pin.Type.Span.Merge(p.curToken.Span)
			}
			end = p.curToken.Span
		}

		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			pin.Default = p.parseExpression(LOWEST)
			if pin.Default == nil {
				return false
			}
			end = pin.Default.GetSpan()
		}

		if p.peekTokenIs(token.KW_OPT) {
			p.nextToken()
			pin.Optional = true
			end = p.curToken.Span
		}

		pin.Span = pin.NameSpan.Merge(end)
		seed.Params = append(seed.Params, pin)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		return p.expectPeek(token.RPAREN)
	}
}
