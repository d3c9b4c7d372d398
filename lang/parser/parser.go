// Package parser implements Slang's recursive-descent parser: one token of
// lookahead, precedence climbing from assignment down to primary, and a few
// desugarings (for-loops, arrow function bodies, assignment-target
// validation).
//
// Errors are reported through a *diag.Sink and recovered from via
// synchronize, a panic/recover-to-a-statement-boundary idiom: a parseError
// panics out of whatever production raised it, and is caught at the nearest declaration boundary so one bad
// statement does not abort the whole parse.
package parser

import (
	"github.com/mna/slang/lang/ast"
	"github.com/mna/slang/lang/diag"
	"github.com/mna/slang/lang/token"
)

// parseError is the panic value a parser production raises on a syntax
// error already reported to the sink. It carries no payload: the message
// was already written to the diagnostic sink at the point of the error.
type parseError struct{}

// Parser consumes a fixed token slice (the scanner's full output for one
// source unit) and produces a statement list.
type Parser struct {
	tokens []token.Token
	sink   *diag.Sink
	pos    int
}

// New returns a Parser over tokens, reporting errors to sink.
func New(tokens []token.Token, sink *diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse runs program := declaration*, returning every statement it could
// recover enough to produce. A nil entry is never returned: synchronize
// always yields either a real statement or nothing for the interval it
// skips.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) peek() token.Token     { return p.tokens[p.pos] }
func (p *Parser) previous() token.Token { return p.tokens[p.pos-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return k == token.EOF
	}
	return p.peek().Kind == k
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has kind k, else reports
// msg at the current token and panics a parseError.
func (p *Parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), msg))
}

func (p *Parser) errorAt(tok token.Token, msg string) parseError {
	p.sink.ErrorAt(tok, msg)
	return parseError{}
}

// synchronize discards tokens until it passes a ';' or lands on a token
// that begins a new declaration.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FN, token.LET, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// declaration recovers from a parseError raised anywhere below it by
// synchronizing and yielding no statement for the skipped interval.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(token.LET):
		return p.varDeclaration()
	case p.match(token.CLASS):
		return p.classDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")
	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.Fn
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")
	return &ast.Class{Name: name, Methods: methods}
}

// function parses `IDENT "(" params? ")" ( block | "=>" expr ";" )`, the
// shared grammar for both a top-level `fn` declaration and a method body.
// The arrow form is lowered here to a single-statement Return body.
func (p *Parser) function(kind string) *ast.Fn {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.sink.ErrorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	var body []ast.Stmt
	if p.match(token.EQ_GREATER) {
		expr := p.expression()
		p.consume(token.SEMICOLON, "Expect ';' after expression.")
		body = []ast.Stmt{&ast.Return{Keyword: name, Value: expr}}
	} else {
		p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
		body = p.block()
	}
	return &ast.Fn{Name: name, Params: params, Body: body}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.FN):
		return p.function("function")
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.Block{Stmts: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

// forStatement desugars `for (init; cond; step) body` to
// `{ init; while (cond) { body; step; } }`, substituting a literal `true`
// for an absent cond so the while loop never terminates on its own.
func (p *Parser) forStatement() ast.Stmt {
	forKeyword := p.previous()
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.check(token.LET):
		p.advance()
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var step ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		step = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if step != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: step}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	body = &ast.While{Keyword: forKeyword, Cond: cond, Body: body}

	if init != nil {
		body = &ast.Block{Stmts: []ast.Stmt{init, body}}
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: els}
}

func (p *Parser) whileStatement() ast.Stmt {
	whileKeyword := p.previous()
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")

	body := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.While{Keyword: whileKeyword, Cond: cond, Body: body, Else: els}
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: expr}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var val ast.Expr
	if !p.check(token.SEMICOLON) {
		val = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: val}
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(token.SEMICOLON, "Expect ';' after 'break'.")
	return &ast.Break{Keyword: keyword}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment validates the assignment target: the LHS is parsed as a full
// expression first, then checked for being a
// Variable or Get. An invalid target is reported but does not panic —
// parsing continues with the already-parsed LHS expression returned as is
// and the parsed right-hand side dropped (the malformed assignment is
// simply not produced).
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQ) {
		eq := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.sink.ErrorAt(eq, "Invalid assignment target.")
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQ, token.EQ_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQ, token.LESS, token.LESS_EQ) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.sink.ErrorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NONE):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.SELF):
		// Reserved but not bound to anything in this core; parses as an
		// ordinary variable reference that will fail to resolve at run time.
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	default:
		panic(p.errorAt(p.peek(), "Expect expression."))
	}
}
