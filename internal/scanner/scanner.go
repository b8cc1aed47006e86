package scanner

import (
	"errors"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/gospi/internal/pascalerrors"
	"github.com/leonardinius/gospi/internal/token"
)

// Scanner turns source text into tokens.
type Scanner interface {
	// Next returns the next token, or an EOF token once the source is exhausted.
	// Errors are sticky: after the first one every call returns it again.
	Next() (token.Token, error)

	// Scan drains the scanner. The returned tokens always end with EOF
	// unless an error is returned.
	Scan() ([]token.Token, error)
}

var reservedKeywords = map[string]token.TokenType{
	"PROGRAM":     token.PROGRAM,
	"END_PROGRAM": token.END_PROGRAM,
}

// Keywords returns the reserved words in lexical order.
func Keywords() []string {
	words := maps.Keys(reservedKeywords)
	slices.Sort(words)
	return words
}

type scanner struct {
	source                 []rune
	start, current         int
	line, column           int
	startLine, startColumn int
	err                    error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), line: 1, column: 1}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// Next implements Scanner.
func (s *scanner) Next() (token.Token, error) {
	if s.err != nil {
		return s.eof(), s.err
	}

	s.skipWhitespace()

	// We are at the beginning of the next lexeme.
	s.start = s.current
	s.startLine, s.startColumn = s.line, s.column

	if s.isAtEnd() {
		return s.eof(), nil
	}

	tok := s.scanToken()
	return tok, s.err
}

func (s *scanner) scanToken() token.Token {
	c := s.advance()

	switch c {
	case '(':
		return s.makeToken(token.LEFT_PAREN)
	case ')':
		return s.makeToken(token.RIGHT_PAREN)
	case '-':
		return s.makeToken(token.MINUS)
	case '+':
		return s.makeToken(token.PLUS)
	case '*':
		return s.makeToken(token.STAR)
	case '/':
		return s.makeToken(token.SLASH)
	case ';':
		return s.makeToken(token.SEMICOLON)
	case ':':
		if s.match('=') {
			return s.makeToken(token.ASSIGN)
		}
		return s.reportError(pascalerrors.ErrScanExpectedAssign, "")
	}

	if s.isDigit(c) {
		return s.number()
	}
	if s.isAlpha(c) {
		return s.reservedOrIdentifier()
	}

	return s.reportError(pascalerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *scanner) match(expected rune) bool {
	if !s.isAtEnd() && expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) skipWhitespace() {
	for !s.isAtEnd() && s.isSpace(s.peek()) {
		s.advance()
	}
}

func (s *scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

func (s *scanner) makeToken(t token.TokenType) token.Token {
	return s.makeTokenLiteral(t, nil)
}

func (s *scanner) makeTokenLiteral(t token.TokenType, literal any) token.Token {
	return token.NewToken(t, s.lexeme(), literal, s.startLine, s.startColumn)
}

func (s *scanner) eof() token.Token {
	return token.NewToken(token.EOF, "", nil, s.line, s.column)
}

func (s *scanner) number() token.Token {
	for s.isDigit(s.peek()) {
		s.advance()
	}

	svalue := s.lexeme()
	value, err := strconv.ParseInt(svalue, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return s.reportError(pascalerrors.ErrScanIntegerOverflow, svalue)
	}
	if err != nil {
		return s.reportError(err, svalue)
	}
	return s.makeTokenLiteral(token.INTEGER, int32(value))
}

func (s *scanner) reservedOrIdentifier() token.Token {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	tokenType := token.IDENTIFIER
	if _type, ok := s.reserved(s.lexeme()); ok {
		tokenType = _type
	}
	return s.makeToken(tokenType)
}

func (s *scanner) reserved(identifier string) (tokenType token.TokenType, ok bool) {
	tokenType, ok = reservedKeywords[identifier]
	return
}

// isSpace accepts ASCII blanks only; other Unicode spaces are unexpected characters.
func (s *scanner) isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || s.isDigit(c) || c == '_'
}

func (s *scanner) reportError(err error, details string) token.Token {
	s.err = pascalerrors.NewScanError(s.startLine, s.startColumn, err, details)
	return s.eof()
}

var _ Scanner = (*scanner)(nil)
