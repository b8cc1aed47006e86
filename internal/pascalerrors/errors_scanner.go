package pascalerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanError               = errors.New("scan error.")
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanExpectedAssign      = errors.New("Expected '=' after ':'.")
	ErrScanIntegerOverflow     = errors.New("Integer literal out of range.")
)

// unwrapInterface is what errors.Unwrap looks for; the errors package
// does not export it.
type unwrapInterface interface {
	Unwrap() error
}

// ScannerError is a lexical error: an unrecognized character,
// a malformed two-character operator or an out of range literal.
type ScannerError struct {
	Line    int
	Column  int
	cause   error
	details string
}

func NewScanError(line, column int, cause error, details string) *ScannerError {
	return &ScannerError{Line: line, Column: column, cause: cause, details: details}
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[line %d:%d] scan error: %v%s", s.Line, s.Column, s.cause, details)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

// Is matches ErrScanError, so callers can test for the whole category.
func (s *ScannerError) Is(target error) bool {
	return target == ErrScanError
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
