package token

import (
	"fmt"
)

// Token represents a lexical token.
//
// INTEGER tokens carry an int32 Literal, every other kind carries nil.
// IDENTIFIER tokens are named by their Lexeme.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
	Column  int
}

func NewToken(t TokenType, lexeme string, literal any, line, column int) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

func NewTokenHeap(t TokenType, lexeme string, literal any, line, column int) *Token {
	tt := NewToken(t, lexeme, literal, line, column)
	return &tt
}

// SameKind reports whether both tokens are of the same type.
// Payloads are ignored: INTEGER 1 and INTEGER 2 are the same kind.
func (t Token) SameKind(other Token) bool {
	return t.Type == other.Type
}

// Int returns the integer payload of an INTEGER token.
func (t Token) Int() (int32, bool) {
	v, ok := t.Literal.(int32)
	return v, ok
}

// Name returns the identifier name of an IDENTIFIER token.
func (t Token) Name() string {
	return t.Lexeme
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Line: %d, Column: %d}", t.Type, t.Lexeme, t.Literal, t.Line, t.Column)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
