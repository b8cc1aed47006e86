package pascalerrors_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leonardinius/gospi/internal/pascalerrors"
	"github.com/leonardinius/gospi/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerError(t *testing.T) {
	err := error(pascalerrors.NewScanError(2, 7, pascalerrors.ErrScanUnexpectedCharacter, "'@'"))

	assert.EqualError(t, err, "[line 2:7] scan error: Unexpected character. '@'")
	assert.ErrorIs(t, err, pascalerrors.ErrScanError)
	assert.ErrorIs(t, err, pascalerrors.ErrScanUnexpectedCharacter)
	assert.NotErrorIs(t, err, pascalerrors.ErrParseError)

	var scanErr *pascalerrors.ScannerError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, 2, scanErr.Line)
	assert.Equal(t, 7, scanErr.Column)
}

func TestParserError(t *testing.T) {
	testcases := []struct {
		name     string
		actual   token.Token
		expected []token.TokenType
		msg      string
	}{
		{
			name:     "single expectation",
			actual:   token.NewToken(token.SEMICOLON, ";", nil, 1, 9),
			expected: []token.TokenType{token.END_PROGRAM},
			msg:      "[line 1:9] parse error at ';': expected END_PROGRAM, got SEMICOLON.",
		},
		{
			name:     "many expectations at end",
			actual:   token.NewToken(token.EOF, "", nil, 1, 4),
			expected: []token.TokenType{token.INTEGER, token.IDENTIFIER},
			msg:      "[line 1:4] parse error at end: expected one of INTEGER, IDENTIFIER, got EOF.",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := error(pascalerrors.NewParseError(tc.actual, tc.expected...))
			assert.EqualError(t, err, tc.msg)
			assert.ErrorIs(t, err, pascalerrors.ErrParseError)
			assert.ErrorIs(t, err, pascalerrors.ErrParseUnexpectedToken)

			var parseErr *pascalerrors.ParserError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.expected, parseErr.Expected)
			assert.Equal(t, tc.actual, parseErr.Actual)
		})
	}
}

func TestRuntimeError(t *testing.T) {
	tok := token.NewTokenHeap(token.IDENTIFIER, "q", nil, 3, 14)
	err := pascalerrors.NewRuntimeError(tok, pascalerrors.ErrRuntimeUndefinedVariableName("q"))

	assert.EqualError(t, err, "Undefined variable 'q'.\n[line 3:14] in script")
	assert.ErrorIs(t, err, pascalerrors.ErrRuntimeUndefinedVariable)
	assert.False(t, errors.Is(err, pascalerrors.ErrRuntimeDivisionByZero))

	var rtErr *pascalerrors.RuntimeError
	require.ErrorAs(t, err, &rtErr)
	assert.Same(t, tok, rtErr.Token())
}

func TestErrReporter(t *testing.T) {
	out := new(strings.Builder)
	r := pascalerrors.NewErrReporter(out)

	r.ReportError(pascalerrors.ErrRuntimeDivisionByZero)
	r.ReportPanic(errors.New("boom"))

	assert.Equal(t, "ERROR Division by zero.\nFATAL boom\n", out.String())
}
