package pascalerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonardinius/gospi/internal/token"
)

var (
	ErrParseError           = errors.New("parse error.")
	ErrParseUnexpectedToken = errors.New("unexpected token.")
)

// ParserError is a syntax error: the current token does not fit the
// production being parsed.
type ParserError struct {
	Expected []token.TokenType
	Actual   token.Token
}

func NewParseError(actual token.Token, expected ...token.TokenType) *ParserError {
	return &ParserError{Expected: expected, Actual: actual}
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.Actual.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.Actual.Lexeme)
	}
	return fmt.Sprintf("[line %d:%d] parse error %s: expected %s, got %s.",
		p.Actual.Line, p.Actual.Column, where, p.expectation(), p.Actual.Type)
}

func (p *ParserError) expectation() string {
	switch len(p.Expected) {
	case 0:
		return "expression"
	case 1:
		return p.Expected[0].String()
	}

	names := make([]string, len(p.Expected))
	for i, t := range p.Expected {
		names[i] = t.String()
	}
	return "one of " + strings.Join(names, ", ")
}

func (p *ParserError) Unwrap() error {
	return ErrParseUnexpectedToken
}

// Is matches ErrParseError, so callers can test for the whole category.
func (p *ParserError) Is(target error) bool {
	return target == ErrParseError
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
