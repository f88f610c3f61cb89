package parser

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/agenthands/nmonkey/pkg/compiler/ast"
	"github.com/agenthands/nmonkey/pkg/compiler/lexer"
)

// Precedence is the binding strength of an operator.
type Precedence int

const (
	_ Precedence = iota
	Lowest
	Equals      // ==
	LessGreater // > or <
	Sum         // +
	Product     // *
	Prefix      // -x or !x
	Call        // fn(x)
)

var precedences = map[lexer.Kind]Precedence{
	lexer.KindEQ:       Equals,
	lexer.KindNotEQ:    Equals,
	lexer.KindLT:       LessGreater,
	lexer.KindGT:       LessGreater,
	lexer.KindPlus:     Sum,
	lexer.KindMinus:    Sum,
	lexer.KindSlash:    Product,
	lexer.KindAsterisk: Product,
	lexer.KindLParen:   Call,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(left ast.Expression) ast.Expression
)

type Parser struct {
	scanner   *lexer.Scanner
	curToken  lexer.Token
	peekToken lexer.Token

	diagnostics []Diagnostic
	blockDepth  int // nesting of { } blocks being parsed

	prefixParseFns map[lexer.Kind]prefixParseFn
	infixParseFns  map[lexer.Kind]infixParseFn
}

func NewParser(s *lexer.Scanner) *Parser {
	p := &Parser{scanner: s}

	p.prefixParseFns = map[lexer.Kind]prefixParseFn{
		lexer.KindIdent:    p.parseIdentifier,
		lexer.KindInt:      p.parseIntegerLiteral,
		lexer.KindTrue:     p.parseBoolean,
		lexer.KindFalse:    p.parseBoolean,
		lexer.KindBang:     p.parsePrefixExpression,
		lexer.KindMinus:    p.parsePrefixExpression,
		lexer.KindLParen:   p.parseGroupedExpression,
		lexer.KindIf:       p.parseIfExpression,
		lexer.KindFunction: p.parseFunctionLiteral,
	}

	p.infixParseFns = make(map[lexer.Kind]infixParseFn)
	for kind := range precedences {
		p.infixParseFns[kind] = p.parseInfixExpression
	}
	p.infixParseFns[lexer.KindLParen] = p.parseCallExpression

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

var scannerPool = sync.Pool{
	New: func() any { return lexer.NewScanner("") },
}

// Parse parses src into a Program. The Program is returned even when the
// error is non-nil; it then holds every statement that parsed cleanly.
func Parse(src string) (*ast.Program, error) {
	s := scannerPool.Get().(*lexer.Scanner)
	defer scannerPool.Put(s)
	s.Reset(src)

	p := NewParser(s)
	program := p.ParseProgram()
	return program, p.Err()
}

// Errors returns the message of every diagnostic in the order recorded.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.diagnostics))
	for i, d := range p.diagnostics {
		msgs[i] = d.Msg
	}
	return msgs
}

// Diagnostics returns the recorded diagnostics with their positions.
func (p *Parser) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), p.diagnostics...)
}

// Err returns a *SyntaxError if any diagnostic was recorded, nil otherwise.
func (p *Parser) Err() error {
	if len(p.diagnostics) == 0 {
		return nil
	}
	return &SyntaxError{Diagnostics: p.Diagnostics()}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.scanner.Next()
}

// ParseProgram parses statements until EOF. Statements that fail are left
// out of the Program and reported through Errors.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.KindEOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case lexer.KindLet:
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
	case lexer.KindReturn:
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
	default:
		if stmt := p.parseExpressionStatement(); stmt != nil {
			return stmt
		}
	}
	return nil
}

// synchronize skips the rest of a failed statement. It stops on the
// terminating ';' or, inside a block, on the block's closing '}'.
// Braces opened while skipping are matched first.
func (p *Parser) synchronize() {
	nesting := 0
	for !p.curTokenIs(lexer.KindEOF) {
		switch p.curToken.Kind {
		case lexer.KindLBrace:
			nesting++
		case lexer.KindRBrace:
			if nesting > 0 {
				nesting--
			} else if p.blockDepth > 0 {
				return
			}
		case lexer.KindSemicolon:
			if nesting == 0 {
				return
			}
		}
		p.nextToken()
	}
}

func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(lexer.KindIdent) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.KindAssign) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(Lowest)
	if stmt.Value == nil {
		return nil
	}

	if p.peekTokenIs(lexer.KindSemicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	// Bare return: "return;" or "return" closing a block or the source.
	switch p.peekToken.Kind {
	case lexer.KindSemicolon:
		p.nextToken()
		return stmt
	case lexer.KindRBrace, lexer.KindEOF:
		return stmt
	}
	p.nextToken()

	stmt.ReturnValue = p.parseExpression(Lowest)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekTokenIs(lexer.KindSemicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(Lowest)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekTokenIs(lexer.KindSemicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.blockDepth++
	defer func() { p.blockDepth-- }()

	p.nextToken() // skip {
	for !p.curTokenIs(lexer.KindRBrace) {
		if p.curTokenIs(lexer.KindEOF) {
			p.addError(p.curToken, fmt.Sprintf("expected next token to be %s, got %s instead", lexer.KindRBrace, lexer.KindEOF))
			return nil
		}
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.synchronize()
			if p.curTokenIs(lexer.KindRBrace) {
				break
			}
		}
		p.nextToken()
	}

	return block
}

// parseExpression is the Pratt loop: parse a prefix, then fold infix
// operators into it while the next operator binds tighter than precedence.
func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && !p.peekTokenIs(lexer.KindSemicolon) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError(p.curToken, fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(lexer.KindTrue)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}

	p.nextToken()
	expr.Right = p.parseExpression(Prefix)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // skip (

	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(lexer.KindRParen) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(lexer.KindLParen) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(Lowest)
	if expr.Condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.KindRParen) || !p.expectPeek(lexer.KindLBrace) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(lexer.KindElse) {
		p.nextToken()
		if !p.expectPeek(lexer.KindLBrace) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(lexer.KindLParen) {
		return nil
	}
	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	fn.Parameters = params

	if !p.expectPeek(lexer.KindLBrace) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}
	return fn
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	params := []*ast.Identifier{}

	if p.peekTokenIs(lexer.KindRParen) {
		p.nextToken()
		return params, true
	}

	if !p.expectPeek(lexer.KindIdent) {
		return nil, false
	}
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(lexer.KindComma) {
		p.nextToken()
		if !p.expectPeek(lexer.KindIdent) {
			return nil, false
		}
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.KindRParen) {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Function: function}

	args, ok := p.parseExpressionList(lexer.KindRParen)
	if !ok {
		return nil
	}
	call.Arguments = args
	return call
}

func (p *Parser) parseExpressionList(end lexer.Kind) ([]ast.Expression, bool) {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list, true
	}

	p.nextToken()
	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil, false
	}
	list = append(list, expr)

	for p.peekTokenIs(lexer.KindComma) {
		p.nextToken()
		p.nextToken()
		expr := p.parseExpression(Lowest)
		if expr == nil {
			return nil, false
		}
		list = append(list, expr)
	}

	if !p.expectPeek(end) {
		return nil, false
	}
	return list, true
}

func (p *Parser) curTokenIs(k lexer.Kind) bool {
	return p.curToken.Kind == k
}

func (p *Parser) peekTokenIs(k lexer.Kind) bool {
	return p.peekToken.Kind == k
}

// expectPeek advances only when peekToken has kind k; otherwise it records
// a diagnostic and leaves the cursor where it is.
func (p *Parser) expectPeek(k lexer.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k)
	return false
}

func (p *Parser) peekPrecedence() Precedence {
	if prec, ok := precedences[p.peekToken.Kind]; ok {
		return prec
	}
	return Lowest
}

func (p *Parser) curPrecedence() Precedence {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return Lowest
}

func (p *Parser) addError(tok lexer.Token, msg string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Token: tok, Msg: msg})
}

func (p *Parser) peekError(k lexer.Kind) {
	p.addError(p.peekToken, fmt.Sprintf("expected next token to be %s, got %s instead", k, p.peekToken.Kind))
}

func (p *Parser) noPrefixParseFnError(tok lexer.Token) {
	p.addError(tok, fmt.Sprintf("no prefix parse function for %s found", tok.Kind))
}
