package parser

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch p.curToken.Kind {
	case token.KW_SEED, token.KW_MADANG:
		return p.parseSeedDef()
	case token.KW_IF:
		return p.parseIfStatement()
	case token.KW_REPEAT:
		return p.parseRepeatStatement()
	case token.KW_CHOOSE:
		return p.parseChooseStatement()
	case token.KW_CONTRACT:
		return p.parseContractStatement()
	case token.KW_GUARD:
		return p.parseGuardStatement()
	case token.KW_DECL:
		return p.parseDeclBlock()
	case token.KW_RETURN:
		return p.parseReturnStatement()
	case token.KW_ROOTHIDE:
		p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span,
			"뿌리숨김 은 프로그램의 첫 문장이어야 합니다")
		return nil
	case token.PIPE_LEGACY:
		p.fail(diagnostics.ErrLegacySyntax, p.curToken.Span,
			"'|>' 파이프는 사라졌습니다; '해서' 로 이으세요")
		return nil
	default:
		return p.parseSimpleStatement()
	}
}

// parseSimpleStatement covers the statement forms that open with an
// expression: postfix loops (동안, 마다), mutation (<-), and plain
// expression statements.
func (p *Parser) parseSimpleStatement() ast.Stmt {
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.LPAREN) {
		p.fail(diagnostics.ErrLegacySyntax, p.curToken.Span.Merge(p.peekToken.Span),
			"이름(인자) 호출은 사라졌습니다; (인자) %s 꼴로 쓰세요", p.curToken.Raw)
		return nil
	}

	start := p.curToken.Span
	x := p.parseExpression(LOWEST)
	if x == nil {
		return nil
	}

	switch {
	case p.peekTokenIs(token.KW_WHILE):
		return p.parseWhileTail(x, start)
	case p.peekTokenIs(token.KW_EACH):
		return p.parseForEachTail(x, start)
	case p.peekTokenIs(token.BIND), p.peekTokenIs(token.COMMA):
		return p.parseMutateTail(x, start)
	case p.peekTokenIs(token.ASSIGN):
		p.fail(diagnostics.ErrLegacySyntax, p.peekToken.Span,
			"문장 수준의 '=' 대입은 사라졌습니다; '<-' 로 쓰세요")
		return nil
	}
	return &ast.ExprStmt{Base: p.newBase(start.Merge(x.GetSpan())), X: x}
}

// cond 동안 { 몸통 }
func (p *Parser) parseWhileTail(cond ast.Expr, start token.Span) ast.Stmt {
	p.nextToken() // 동안
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.While{Base: p.newBase(start.Merge(body.Span)), Cond: cond, Body: body}
}

// 차림 마다 [이름] { 몸통 }
func (p *Parser) parseForEachTail(seq ast.Expr, start token.Span) ast.Stmt {
	p.nextToken() // 마다
	binder := ""
	var binderSpan token.Span
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		binder = p.curToken.Raw
		binderSpan = p.curToken.Span
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockWith(binder)
	if body == nil {
		return nil
	}
	return &ast.ForEach{
		Base:       p.newBase(start.Merge(body.Span)),
		Seq:        seq,
		Binder:     binder,
		BinderSpan: binderSpan,
		Body:       body,
	}
}

// 대상[, 대상…] <- 값
func (p *Parser) parseMutateTail(first ast.Expr, start token.Span) ast.Stmt {
	targets := []ast.Expr{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // ,
		p.nextToken()
		t := p.parseExpression(LOWEST)
		if t == nil {
			return nil
		}
		targets = append(targets, t)
	}
	if !p.expectPeek(token.BIND) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	for _, t := range targets {
		if !p.checkWriteTarget(t) {
			return nil
		}
	}
	return &ast.Mutate{
		Base:    p.newBase(start.Merge(value.GetSpan())),
		Targets: targets,
		Value:   value,
	}
}

// checkWriteTarget validates a mutation target's shape and, under 뿌리숨김,
// that a plain name was declared before being written. Writes outside
// 뿌리숨김 declare the name as a side effect.
func (p *Parser) checkWriteTarget(t ast.Expr) bool {
	switch t := t.(type) {
	case *ast.Ident:
		if p.rootHide && !p.declared(t.Name) {
			p.fail(diagnostics.ErrWriteUndeclared, t.Span,
				"뿌리숨김 아래에서는 갖춤 으로 선언한 이름에만 쓸 수 있습니다 ('%s')", t.Name)
			return false
		}
		p.declare(t.Name)
		return true
	case *ast.FieldAccess:
		return true
	}
	p.fail(diagnostics.ErrUnexpectedToken, t.GetSpan(),
		"쓰기 대상은 이름이나 '의' 속성이어야 합니다")
	return false
}

// 돌려주기 [값]. A bare 돌려주기 is only recognized at the end of a block,
// since statements have no terminator to separate it from the next one.
func (p *Parser) parseReturnStatement() ast.Stmt {
	if p.bodyDepth == 0 {
		p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span,
			"돌려주기 는 씨앗이나 묶음 몸통 안에서만 쓸 수 있습니다")
		return nil
	}
	start := p.curToken.Span
	if p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.EOF) {
		return &ast.Return{Base: p.newBase(start)}
	}
	p.nextToken()
	v := p.parseExpression(LOWEST)
	if v == nil {
		return nil
	}
	return &ast.Return{Base: p.newBase(start.Merge(v.GetSpan())), Value: v}
}

// 다짐 [앞|뒤] 조건
func (p *Parser) parseContractStatement() ast.Stmt {
	start := p.curToken.Span
	phase := ast.ContractPre
	switch {
	case p.peekTokenIs(token.KW_PRE):
		p.nextToken()
	case p.peekTokenIs(token.KW_POST):
		phase = ast.ContractPost
		p.nextToken()
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	return &ast.Contract{
		Base:  p.newBase(start.Merge(cond.GetSpan())),
		Phase: phase,
		Cond:  cond,
	}
}
