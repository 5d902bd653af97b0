package parser

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// parseBlock parses { 문장들 } with curToken on the opening brace and leaves
// curToken on the closing brace. Every block opens a lexical scope.
func (p *Parser) parseBlock() *ast.Block {
	return p.parseBlockWith()
}

// parseBlockWith pre-declares the given names (loop binders, seed
// parameters) in the block's scope before parsing its statements.
func (p *Parser) parseBlockWith(names ...string) *ast.Block {
	start := p.curToken.Span
	p.pushScope()
	defer p.popScope()
	for _, n := range names {
		if n != "" {
			p.declare(n)
		}
	}

	block := &ast.Block{}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.fail(diagnostics.ErrUnterminated, start, "블록이 '}' 로 닫히지 않았습니다")
			return nil
		}
		stmt := p.parseStatement()
		if stmt == nil || p.failed() {
			return nil
		}
		block.Stmts = append(block.Stmts, stmt)
		p.nextToken()
	}
	block.Base = p.newBase(start.Merge(p.curToken.Span))
	return block
}

// 만약 조건 { } [아니면 { } | 아니면 만약 …]
func (p *Parser) parseIfStatement() ast.Stmt {
	start := p.curToken.Span
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	then := p.parseBlock()
	if then == nil {
		return nil
	}

	node := &ast.If{Cond: cond, Then: then}
	span := start.Merge(then.Span)
	if p.peekTokenIs(token.KW_ELSE) {
		p.nextToken() // 아니면
		if p.peekTokenIs(token.KW_IF) {
			p.nextToken()
			alt := p.parseIfStatement()
			if alt == nil {
				return nil
			}
			node.Else = alt
		} else {
			if !p.expectPeek(token.LBRACE) {
				return nil
			}
			alt := p.parseBlock()
			if alt == nil {
				return nil
			}
			node.Else = alt
		}
		span = span.Merge(node.Else.GetSpan())
	}
	node.Base = p.newBase(span)
	return node
}

// 거듭 횟수 [번] { 몸통 }
func (p *Parser) parseRepeatStatement() ast.Stmt {
	start := p.curToken.Span
	p.nextToken()
	count := p.parseExpression(LOWEST)
	if count == nil {
		return nil
	}
	if p.peekTokenIs(token.KW_TIMES) {
		p.nextToken()
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.Repeat{Base: p.newBase(start.Merge(body.Span)), Count: count, Body: body}
}

// 고름 { 조건 이면 { } … 아니면 { } }. The default arm closes the statement.
func (p *Parser) parseChooseStatement() ast.Stmt {
	start := p.curToken.Span
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	node := &ast.Choose{}
	for {
		if p.peekTokenIs(token.RBRACE) {
			p.nextToken()
			break
		}
		if p.peekTokenIs(token.EOF) {
			p.fail(diagnostics.ErrUnterminated, start, "고름 이 '}' 로 닫히지 않았습니다")
			return nil
		}
		if p.peekTokenIs(token.KW_ELSE) {
			p.nextToken() // 아니면
			if !p.expectPeek(token.LBRACE) {
				return nil
			}
			alt := p.parseBlock()
			if alt == nil {
				return nil
			}
			node.Else = alt
			if !p.expectPeek(token.RBRACE) {
				return nil
			}
			break
		}

		p.nextToken()
		cond := p.parseExpression(LOWEST)
		if cond == nil {
			return nil
		}
		if !p.expectPeek(token.KW_WHEN) {
			return nil
		}
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		body := p.parseBlock()
		if body == nil {
			return nil
		}
		node.Arms = append(node.Arms, ast.ChooseArm{
			Cond: cond,
			Body: body,
			Span: cond.GetSpan().Merge(body.Span),
		})
	}

	if len(node.Arms) == 0 {
		p.fail(diagnostics.ErrUnexpectedToken, start.Merge(p.curToken.Span),
			"고름 에는 적어도 한 '이면' 갈래가 필요합니다")
		return nil
	}
	node.Base = p.newBase(start.Merge(p.curToken.Span))
	return node
}

// 지킴 조건 { 호출들 }. Body shape and purity are enforced after
// resolution, once call names are canonical.
func (p *Parser) parseGuardStatement() ast.Stmt {
	start := p.curToken.Span
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.Guard{Base: p.newBase(start.Merge(body.Span)), Cond: cond, Body: body}
}

// 갖춤 { 이름 <- 값 … }. Declares writable names in the enclosing scope.
func (p *Parser) parseDeclBlock() ast.Stmt {
	start := p.curToken.Span
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	node := &ast.DeclBlock{}
	for !p.peekTokenIs(token.RBRACE) {
		if p.peekTokenIs(token.EOF) {
			p.fail(diagnostics.ErrUnterminated, start, "갖춤 이 '}' 로 닫히지 않았습니다")
			return nil
		}
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := p.curToken.Raw
		nameSpan := p.curToken.Span
		if !p.expectPeek(token.BIND) {
			return nil
		}
		p.nextToken()
		v := p.parseExpression(LOWEST)
		if v == nil {
			return nil
		}
		p.declare(name)
		node.Decls = append(node.Decls, &ast.Decl{
			Name:     name,
			NameSpan: nameSpan,
			Value:    v,
			Span:     nameSpan.Merge(v.GetSpan()),
		})
	}
	p.nextToken() // }
	node.Base = p.newBase(start.Merge(p.curToken.Span))
	return node
}
