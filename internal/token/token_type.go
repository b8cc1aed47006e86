package token

import "fmt"

// TokenType is the kind of a lexical token.
type TokenType int

const (
	// Single-character tokens.
	PLUS TokenType = iota
	MINUS
	STAR
	SLASH
	LEFT_PAREN
	RIGHT_PAREN
	SEMICOLON

	// Two-character tokens.
	ASSIGN

	// Literals.
	INTEGER
	IDENTIFIER

	// Keywords.
	PROGRAM
	END_PROGRAM

	// NOOP marks an empty statement slot. The scanner never emits it.
	NOOP
	EOF
)

var tokenTypeNames = [...]string{
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	STAR:        "STAR",
	SLASH:       "SLASH",
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	SEMICOLON:   "SEMICOLON",
	ASSIGN:      "ASSIGN",
	INTEGER:     "INTEGER",
	IDENTIFIER:  "IDENTIFIER",
	PROGRAM:     "PROGRAM",
	END_PROGRAM: "END_PROGRAM",
	NOOP:        "NOOP",
	EOF:         "EOF",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var _ fmt.Stringer = TokenType(0)
