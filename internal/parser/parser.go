package parser

import (
	"fmt"

	"github.com/leonardinius/gospi/internal/pascalerrors"
	"github.com/leonardinius/gospi/internal/scanner"
	"github.com/leonardinius/gospi/internal/token"
)

var (
	nilNode     Node      = nil
	nilVariable *Variable = nil
)

// factorStart lists the tokens a factor may begin with.
var factorStart = []token.TokenType{
	token.PLUS,
	token.MINUS,
	token.INTEGER,
	token.LEFT_PAREN,
	token.IDENTIFIER,
}

type Parser interface {
	// Parse consumes the whole token stream and returns the root node.
	//
	// Input starting with PROGRAM is parsed as a program block,
	// anything else as a bare expression. On error no tree is returned.
	Parse() (Node, error)
}

type parser struct {
	scanner  scanner.Scanner
	current  token.Token
	previous token.Token
	err      error
}

// NewParser returns a Parser pulling tokens from s one at a time.
func NewParser(s scanner.Scanner) Parser {
	p := &parser{scanner: s}
	p.current = p.next()
	return p
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{current: %#v, previous: %#v, err: %#v}", p.current, p.previous, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{current: %v, err: %v}", p.current, p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (Node, error) {
	var node Node
	if p.check(token.PROGRAM) {
		node = p.program()
	} else {
		node = p.expr()
	}
	p.consume(token.EOF)

	// if we are at error state, we do not return invalid ast tree
	if p.err != nil {
		return nilNode, p.err
	}
	return node, nil
}

func (p *parser) program() Node {
	p.consume(token.PROGRAM)
	node := p.compoundStatement()
	p.consume(token.END_PROGRAM)
	return node
}

func (p *parser) compoundStatement() Node {
	return &Compound{Statements: p.statementList()}
}

func (p *parser) statementList() []Node {
	statements := []Node{p.statement()}

	for p.match(token.SEMICOLON) {
		statements = append(statements, p.statement())
	}

	return statements
}

func (p *parser) statement() Node {
	if p.check(token.PROGRAM) {
		return p.program()
	}

	if p.check(token.IDENTIFIER) {
		return p.assignment()
	}

	return &NoOp{}
}

func (p *parser) assignment() Node {
	target := p.variable()
	if !p.consume(token.ASSIGN) {
		return nilNode
	}
	operator := p.previousToken()
	value := p.expr()

	return &Assign{Target: target, Operator: operator, Value: value}
}

func (p *parser) variable() *Variable {
	if !p.consume(token.IDENTIFIER) {
		return nilVariable
	}
	tok := p.previousToken()

	return &Variable{Token: tok, Name: tok.Name()}
}

func (p *parser) expr() Node {
	node := p.term()

	for p.anyMatch(token.PLUS, token.MINUS) {
		operator := p.previousToken()
		right := p.term()
		node = &BinaryOp{Left: node, Operator: operator, Right: right}
	}

	return node
}

func (p *parser) term() Node {
	node := p.factor()

	for p.anyMatch(token.STAR, token.SLASH) {
		operator := p.previousToken()
		right := p.factor()
		node = &BinaryOp{Left: node, Operator: operator, Right: right}
	}

	return node
}

func (p *parser) factor() Node {
	if p.anyMatch(token.PLUS, token.MINUS) {
		operator := p.previousToken()
		operand := p.factor()
		return &UnaryOp{Operator: operator, Operand: operand}
	}

	if p.match(token.INTEGER) {
		tok := p.previousToken()
		value, _ := tok.Int()
		return &Num{Token: tok, Value: value}
	}

	if p.match(token.LEFT_PAREN) {
		node := p.expr()
		p.consume(token.RIGHT_PAREN)
		return node
	}

	if p.check(token.IDENTIFIER) {
		return p.variable()
	}

	return p.reportError(factorStart...)
}

// consume is the grammar's eat: it advances past the current token if it is
// of the expected kind, and records a syntax error otherwise.
func (p *parser) consume(tokenType token.TokenType) bool {
	if p.match(tokenType) {
		return true
	}

	p.reportError(tokenType)
	return false
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.match(t) {
			return true
		}
	}
	return false
}

func (p *parser) match(tokenType token.TokenType) bool {
	if p.check(tokenType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return p.err == nil && p.current.Type == tokenType
}

func (p *parser) advance() {
	p.previous = p.current
	if !p.isAtEnd() {
		p.current = p.next()
	}
}

func (p *parser) next() token.Token {
	tok, err := p.scanner.Next()
	if err != nil && p.err == nil {
		p.err = err
	}
	return tok
}

// previousToken returns a copy of the last consumed token owned by the caller.
func (p *parser) previousToken() *token.Token {
	tok := p.previous
	return &tok
}

func (p *parser) isAtEnd() bool {
	return p.current.Type == token.EOF
}

func (p *parser) reportError(expected ...token.TokenType) Node {
	if p.err != nil {
		return nilNode
	}

	p.err = pascalerrors.NewParseError(p.current, expected...)
	return nilNode
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
