package parser

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// parseParenExpression disambiguates (인자들) 이름 calls from parenthesized
// expressions by scanning ahead to the matching ')' and peeking one token
// past it.
func (p *Parser) parseParenExpression() ast.Expr {
	after, ok := p.tokenAfterParen()
	if !ok {
		p.fail(diagnostics.ErrUnterminated, p.curToken.Span, "'(' 가 닫히지 않았습니다")
		return nil
	}
	if after.Kind == token.IDENT {
		return p.parseCallExpression()
	}
	if p.peekTokenIs(token.RPAREN) {
		p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span.Merge(p.peekToken.Span),
			"'()' 뒤에는 호출할 이름이 와야 합니다")
		return nil
	}

	p.nextToken()
	x := p.parseExpression(LOWEST)
	if x == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return x
}

// tokenAfterParen returns the token just past the ')' matching the current
// '(' without consuming anything.
func (p *Parser) tokenAfterParen() (token.Token, bool) {
	depth := 0
	for i := p.pos; ; i++ {
		t := p.tokenAt(i)
		switch t.Kind {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return p.tokenAt(i + 1), true
			}
		case token.EOF:
			return token.Token{}, false
		}
	}
}

// (인자들) 이름
func (p *Parser) parseCallExpression() ast.Expr {
	start := p.curToken.Span
	args, ok := p.parseCallArgs()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.Call{
		Base:     p.newBase(start.Merge(p.curToken.Span)),
		RawName:  p.curToken.Raw,
		NameSpan: p.curToken.Span,
		Args:     args,
	}
}

// parseCallArgs parses (값 [조사] | 핀=값 [조사] | ? | 핀=?, …) with curToken
// on the '(' and leaves it on the ')'.
func (p *Parser) parseCallArgs() ([]*ast.ArgBinding, bool) {
	args := []*ast.ArgBinding{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, true
	}

	for {
		p.nextToken()
		arg := &ast.ArgBinding{}
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
			arg.Pin = p.curToken.Raw
			arg.PinSpan = p.curToken.Span
			p.nextToken() // =
			p.nextToken()
		}

		if p.curTokenIs(token.QUESTION) {
			arg.Value = &ast.Flow{Base: p.newBase(p.curToken.Span)}
		} else {
			arg.Value = p.parseExpression(LOWEST)
			if arg.Value == nil {
				return nil, false
			}
		}
		arg.Span = arg.PinSpan.Merge(arg.Value.GetSpan())

		if p.peekTokenIs(token.JOSA) {
			p.nextToken()
			arg.Josa = p.curToken.Raw
			arg.JosaSpan = p.curToken.Span
			arg.Span = arg.Span.Merge(arg.JosaSpan)
		}
		args = append(args, arg)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if !p.expectPeek(token.RPAREN) {
			return nil, false
		}
		return args, true
	}
}

// e0 해서 (인자) 일하기 해서 … form. Stages after the first must be calls; a
// bare name becomes a zero-argument call so the injector has somewhere to
// put the upstream value.
func (p *Parser) parsePipeExpression(left ast.Expr) ast.Expr {
	if th, ok := left.(*ast.Thunk); ok {
		left = &ast.Eval{Base: p.newBase(th.Span), Thunk: th, Mode: ast.EvalPipe}
	}

	stages := []ast.Expr{left}
	for {
		p.nextToken()
		stage := p.parsePipeStage()
		if stage == nil {
			return nil
		}
		stages = append(stages, stage)
		if !p.peekTokenIs(token.KW_PIPE) {
			break
		}
		p.nextToken() // 해서
	}

	last := stages[len(stages)-1]
	return &ast.Pipe{
		Base:   p.newBase(stages[0].GetSpan().Merge(last.GetSpan())),
		Stages: stages,
	}
}

func (p *Parser) parsePipeStage() ast.Expr {
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.LPAREN) {
		p.fail(diagnostics.ErrLegacySyntax, p.curToken.Span.Merge(p.peekToken.Span),
			"이름(인자) 호출은 사라졌습니다; (인자) %s 꼴로 쓰세요", p.curToken.Raw)
		return nil
	}
	x := p.parseExpression(PIPE)
	if x == nil {
		return nil
	}
	switch s := x.(type) {
	case *ast.Call:
		return s
	case *ast.Ident:
		return &ast.Call{Base: p.newBase(s.Span), RawName: s.Name, NameSpan: s.Span}
	}
	p.fail(diagnostics.ErrUnexpectedToken, x.GetSpan(), "해서 뒤에는 호출이 와야 합니다")
	return nil
}
