// Package parser builds the tree the resolution passes work on.
//
// One Parser value serves one parse. It owns the node-id counter and the
// lexical scope stack, so concurrent parses of independent sources never
// share state. Errors are terminal: the parser records the first one on the
// pipeline context and unwinds without handing a partial tree downstream.
package parser

import (
	"github.com/ssiat-lang/ssiat/internal/ast"
	"github.com/ssiat-lang/ssiat/internal/diagnostics"
	"github.com/ssiat-lang/ssiat/internal/pipeline"
	"github.com/ssiat-lang/ssiat/internal/token"
)

// MaxRecursionDepth bounds expression nesting before the parser gives up.
const MaxRecursionDepth = 512

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Parser struct {
	ctx    *pipeline.PipelineContext
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn

	lastID    ast.NodeID
	depth     int
	bodyDepth int // seed and thunk body nesting, gates 돌려주기
	rootHide  bool
	scopes    []map[string]bool
}

func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{ctx: ctx, tokens: tokens}

	p.prefixParseFns = map[token.Kind]prefixParseFn{
		token.IDENT:       p.parseIdentifier,
		token.INT:         p.parseIntLiteral,
		token.FLOAT:       p.parseFloatLiteral,
		token.STRING:      p.parseStringLiteral,
		token.KW_TRUE:     p.parseBoolLiteral,
		token.KW_FALSE:    p.parseBoolLiteral,
		token.KW_NONE:     p.parseNoneLiteral,
		token.MINUS:       p.parsePrefixExpression,
		token.BANG:        p.parsePrefixExpression,
		token.LPAREN:      p.parseParenExpression,
		token.LBRACKET:    p.parsePackLiteral,
		token.LBRACE:      p.parseThunkExpression,
		token.KW_TEMPLATE: p.parseTemplateLiteral,
		token.KW_FORMULA:  p.parseFormulaLiteral,
	}

	p.infixParseFns = map[token.Kind]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.STAR:     p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.PERCENT:  p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.LE:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.GE:       p.parseInfixExpression,
		token.KW_AND:   p.parseInfixExpression,
		token.KW_OR:    p.parseInfixExpression,
		token.KW_FROM:  p.parseRangeExpression,
		token.KW_PIPE:  p.parsePipeExpression,
		token.KW_OF:    p.parseFieldAccess,
		token.LBRACKET: p.parseIndexExpression,
		token.AT:       p.parseAtSuffix,
	}

	p.curToken = p.tokenAt(0)
	p.peekToken = p.tokenAt(1)
	return p
}

// ParseProgram consumes the whole token stream. On error the returned tree
// is incomplete and the context carries the diagnostic; callers must check
// ctx.Failed() before using the result.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{
		File:   p.ctx.FilePath,
		Source: p.ctx.SourceCode,
	}
	p.pushScope()
	for !p.curTokenIs(token.EOF) && !p.failed() {
		if p.curTokenIs(token.KW_ROOTHIDE) {
			if len(prog.Items) > 0 {
				p.fail(diagnostics.ErrUnexpectedToken, p.curToken.Span,
					"뿌리숨김 은 프로그램의 첫 문장이어야 합니다")
				break
			}
			prog.RootHide = true
			p.rootHide = true
			prog.Items = append(prog.Items, &ast.Directive{
				Base: p.newBase(p.curToken.Span),
				Name: p.curToken.Raw,
			})
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt == nil || p.failed() {
			break
		}
		prog.Items = append(prog.Items, stmt)
		p.nextToken()
	}
	p.popScope()

	span := token.Span{}
	if n := len(prog.Items); n > 0 {
		span = prog.Items[0].GetSpan().Merge(prog.Items[n-1].GetSpan())
	}
	prog.Base = p.newBase(span)
	prog.LastID = p.lastID
	return prog
}

// --- token stream ---

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		end := 0
		if n := len(p.tokens); n > 0 {
			end = p.tokens[n-1].Span.End
		}
		return token.Token{Kind: token.EOF, Span: token.Span{Start: end, End: end}}
	}
	return p.tokens[i]
}

func (p *Parser) nextToken() {
	p.pos++
	p.curToken = p.peekToken
	p.peekToken = p.tokenAt(p.pos + 1)
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peekToken.Kind == k }

// expectPeek advances onto the expected token kind or records an error.
func (p *Parser) expectPeek(k token.Kind) bool {
	if !p.peekTokenIs(k) {
		p.fail(diagnostics.ErrUnexpectedToken, p.peekToken.Span,
			"%s 이 올 자리에 '%s' 가 왔습니다", k, p.peekToken)
		return false
	}
	p.nextToken()
	return true
}

// --- errors ---

func (p *Parser) fail(code diagnostics.Code, span token.Span, format string, args ...any) {
	p.ctx.AddError(diagnostics.New(code, span, format, args...))
}

func (p *Parser) failed() bool { return p.ctx.Failed() }

// --- node identity ---

func (p *Parser) newBase(span token.Span) ast.Base {
	p.lastID++
	return ast.Base{NodeID: p.lastID, Span: span}
}

// --- lexical scope ---

func (p *Parser) pushScope() {
	p.scopes = append(p.scopes, make(map[string]bool))
}

func (p *Parser) popScope() {
	p.scopes = p.scopes[:len(p.scopes)-1]
}

func (p *Parser) declare(name string) {
	p.scopes[len(p.scopes)-1][name] = true
}

func (p *Parser) declared(name string) bool {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if p.scopes[i][name] {
			return true
		}
	}
	return false
}
