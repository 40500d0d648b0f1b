// Package parser implements Cleric's recursive-descent/precedence-climbing
// parser (spec §4.2). It consumes tokens one at a time from a Lexer,
// builds the AST as ordinary Go heap nodes (only the token lexemes come
// from the arena), and folds binary expressions left-associatively
// by looping at each precedence level — following the shape of
// informatter-nilan's parser (peek/previous/isMatch, one level of grammar
// per method) generalized to Cleric's C-subset grammar and its single
// first-error-wins error policy instead of the teacher's error-collecting one.
package parser

import (
	"cleric/arena"
	"cleric/ast"
	"cleric/lexer"
	"cleric/token"
	"math"
	"strconv"
)

// Parser holds a one-token lookahead over a Lexer's token stream. Once an
// error is recorded, every subsequent parse call is a no-op that returns
// the zero value: only the first syntax error is ever reported (spec §4.2
// "Error policy").
type Parser struct {
	lex  *lexer.Lexer
	a    *arena.Arena
	cur  token.Token
	next token.Token

	errFlag bool
	err     error

	// exhausted is set when a Lexer.NextToken call failed due to arena
	// exhaustion rather than a syntax error; it is reported the same way,
	// as a SyntaxError with the message "out of memory".
	exhausted bool
}

// New primes the parser with the first two tokens of lex. It returns
// (nil, false) only if priming exhausts the arena.
func New(lex *lexer.Lexer, a *arena.Arena) (*Parser, bool) {
	p := &Parser{lex: lex, a: a}
	if !lex.NextToken(&p.cur) {
		return nil, false
	}
	if !lex.NextToken(&p.next) {
		return nil, false
	}
	return p, true
}

func (p *Parser) failed() bool { return p.errFlag }

// setError records the first syntax error only; later calls are ignored so
// that error_message always reflects the earliest failure.
func (p *Parser) setError(offset int, message string) {
	if p.errFlag {
		return
	}
	p.errFlag = true
	p.err = newSyntaxError(offset, message)
}

// Err returns the sticky first parse error, or nil if parsing succeeded.
func (p *Parser) Err() error { return p.err }

func (p *Parser) check(k token.Kind) bool { return !p.failed() && p.cur.Kind == k }

// advance consumes the current token and returns it, refilling the
// lookahead from the lexer. It reports false only on arena exhaustion.
func (p *Parser) advance() (token.Token, bool) {
	tok := p.cur
	p.cur = p.next
	if p.cur.Kind != token.EOF {
		var fresh token.Token
		if !p.lex.NextToken(&fresh) {
			p.exhausted = true
			p.setError(tok.Offset, "out of memory")
			return tok, false
		}
		p.next = fresh
	}
	return tok, true
}

// match advances and returns true if the current token has kind k.
func (p *Parser) match(k token.Kind) bool {
	if !p.check(k) {
		return false
	}
	_, ok := p.advance()
	if !ok {
		p.setError(p.cur.Offset, "out of memory")
	}
	return true
}

// expect consumes the current token if it has kind k, otherwise records a
// syntax error naming what was expected.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.failed() {
		return token.Token{}, false
	}
	if p.cur.Kind != k {
		p.setError(p.cur.Offset, "expected "+what)
		return token.Token{}, false
	}
	return p.advance()
}

// ParseProgram parses an entire translation unit. It returns nil if any
// syntax error occurred, including a missing trailing EOF (spec §4.2).
func (p *Parser) ParseProgram() *ast.Program {
	fn := p.parseFuncDef()
	if p.failed() || fn == nil {
		return nil
	}
	if p.cur.Kind != token.EOF {
		p.setError(p.cur.Offset, "expected end of input")
		return nil
	}
	return &ast.Program{Func: fn}
}

func (p *Parser) parseFuncDef() *ast.FuncDef {
	intTok, ok := p.expect(token.INT, "'int'")
	if !ok {
		return nil
	}
	nameTok, ok := p.expect(token.IDENT, "identifier")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.LPAREN, "'('"); !ok {
		return nil
	}
	if p.check(token.VOID) {
		p.advance()
	}
	if _, ok := p.expect(token.RPAREN, "')'"); !ok {
		return nil
	}
	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	return &ast.FuncDef{Name: nameTok.Lexeme, Body: body, Offset: intTok.Offset}
}

func (p *Parser) parseBlock() *ast.Block {
	lbrace, ok := p.expect(token.LBRACE, "'{'")
	if !ok {
		return nil
	}
	block := &ast.Block{Offset: lbrace.Offset}
	for !p.failed() && p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		item := p.parseBlockItem()
		if p.failed() {
			return nil
		}
		if item != nil {
			block.Items = append(block.Items, item)
		}
	}
	if _, ok := p.expect(token.RBRACE, "'}'"); !ok {
		return nil
	}
	return block
}

// parseBlockItem parses a single declaration or statement. It returns nil
// (with no error) for an empty statement ";", which is consumed without
// growing the block's item list (spec §4.2).
func (p *Parser) parseBlockItem() ast.Stmt {
	if p.check(token.INT) {
		return p.parseDeclaration()
	}
	return p.parseStatement()
}

func (p *Parser) parseDeclaration() ast.Stmt {
	tok, ok := p.expect(token.INT, "'int'")
	if !ok {
		return nil
	}
	nameTok, ok := p.expect(token.IDENT, "identifier")
	if !ok {
		return nil
	}
	decl := &ast.VarDecl{TypeName: "int", Name: nameTok.Lexeme, Offset: tok.Offset}
	if p.match(token.ASSIGN) {
		decl.Initializer = p.parseExpression()
		if p.failed() {
			return nil
		}
	}
	if _, ok := p.expect(token.SEMI, "';'"); !ok {
		return nil
	}
	return decl
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.RETURN:
		tok, _ := p.advance()
		expr := p.parseExpression()
		if p.failed() {
			return nil
		}
		if _, ok := p.expect(token.SEMI, "';'"); !ok {
			return nil
		}
		return &ast.ReturnStmt{Expr: expr, Offset: tok.Offset}

	case token.LBRACE:
		return p.parseBlock()

	case token.SEMI:
		p.advance()
		return nil

	default:
		expr := p.parseExpression()
		if p.failed() {
			return nil
		}
		if _, ok := p.expect(token.SEMI, "';'"); !ok {
			return nil
		}
		return &ast.ExprStmt{Expr: expr}
	}
}

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is the single right-associative level: it parses a
// LogicalOr expression, and if '=' follows, recurses on itself for the
// right-hand side. The folded left operand must be an Identifier; any
// other left operand is an invalid l-value, reported at the '=' token's
// offset (spec §4.2).
func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseLogicalOr()
	if p.failed() {
		return nil
	}
	if !p.check(token.ASSIGN) {
		return left
	}
	eq, _ := p.advance()
	if p.failed() {
		return nil
	}
	value := p.parseAssignment()
	if p.failed() {
		return nil
	}
	if _, ok := left.(*ast.Identifier); !ok {
		p.setError(eq.Offset, "invalid l-value")
		return nil
	}
	return &ast.Assignment{Target: left, Value: value, Offset: eq.Offset}
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for !p.failed() && p.check(token.OR_OR) {
		tok, _ := p.advance()
		right := p.parseLogicalAnd()
		if p.failed() {
			return nil
		}
		left = &ast.BinaryOp{Op: ast.OpLogOr, Left: left, Right: right, Offset: tok.Offset}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for !p.failed() && p.check(token.AND_AND) {
		tok, _ := p.advance()
		right := p.parseEquality()
		if p.failed() {
			return nil
		}
		left = &ast.BinaryOp{Op: ast.OpLogAnd, Left: left, Right: right, Offset: tok.Offset}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for !p.failed() {
		var op ast.BinaryOperator
		switch p.cur.Kind {
		case token.EQ:
			op = ast.OpEqual
		case token.NE:
			op = ast.OpNotEqual
		default:
			return left
		}
		tok, _ := p.advance()
		right := p.parseRelational()
		if p.failed() {
			return nil
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Offset: tok.Offset}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for !p.failed() {
		var op ast.BinaryOperator
		switch p.cur.Kind {
		case token.LESS:
			op = ast.OpLess
		case token.GREATER:
			op = ast.OpGreater
		case token.LE:
			op = ast.OpLessEq
		case token.GE:
			op = ast.OpGreaterEq
		default:
			return left
		}
		tok, _ := p.advance()
		right := p.parseAdditive()
		if p.failed() {
			return nil
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Offset: tok.Offset}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for !p.failed() {
		var op ast.BinaryOperator
		switch p.cur.Kind {
		case token.PLUS:
			op = ast.OpAdd
		case token.MINUS:
			op = ast.OpSub
		default:
			return left
		}
		tok, _ := p.advance()
		right := p.parseMultiplicative()
		if p.failed() {
			return nil
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Offset: tok.Offset}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for !p.failed() {
		var op ast.BinaryOperator
		switch p.cur.Kind {
		case token.STAR:
			op = ast.OpMul
		case token.SLASH:
			op = ast.OpDiv
		case token.PERCENT:
			op = ast.OpMod
		default:
			return left
		}
		tok, _ := p.advance()
		right := p.parseUnary()
		if p.failed() {
			return nil
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Offset: tok.Offset}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	var op ast.UnaryOperator
	switch p.cur.Kind {
	case token.MINUS:
		op = ast.OpNegate
	case token.TILDE:
		op = ast.OpComplement
	case token.BANG:
		op = ast.OpNot
	default:
		return p.parsePrimary()
	}
	tok, _ := p.advance()
	operand := p.parseUnary()
	if p.failed() {
		return nil
	}
	return &ast.UnaryOp{Op: op, Operand: operand, Offset: tok.Offset}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case token.NUMBER:
		tok, _ := p.advance()
		return p.parseIntLiteral(tok)

	case token.IDENT:
		tok, _ := p.advance()
		return &ast.Identifier{Name: tok.Lexeme, Offset: tok.Offset}

	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		if p.failed() {
			return nil
		}
		if _, ok := p.expect(token.RPAREN, "')'"); !ok {
			return nil
		}
		return expr

	default:
		p.setError(p.cur.Offset, "expected expression, found "+p.describeCurrent())
		return nil
	}
}

// describeCurrent renders the current token for a diagnostic message: its
// lexeme if it carries one (IDENT, NUMBER, UNKNOWN), otherwise the symbol
// its kind stands for (e.g. ";", "EOF").
func (p *Parser) describeCurrent() string {
	if p.cur.Lexeme != "" {
		return "'" + p.cur.Lexeme + "'"
	}
	return "'" + p.cur.Kind.String() + "'"
}

// parseIntLiteral converts a NUMBER token's decimal digit lexeme to a
// signed 32-bit value, reporting "Integer literal out of range" for any
// value outside [-2^31, 2^31-1] (only positive values are ever lexed here;
// negation is folded afterward as UnaryOp(negate, ...), per spec §4.2).
func (p *Parser) parseIntLiteral(tok token.Token) ast.Expr {
	v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil || v > math.MaxInt32 {
		p.setError(tok.Offset, "Integer literal out of range")
		return nil
	}
	return &ast.IntLiteral{Value: int32(v), Offset: tok.Offset}
}
