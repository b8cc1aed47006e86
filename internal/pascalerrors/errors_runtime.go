package pascalerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gospi/internal/token"
)

var (
	ErrRuntimeUndefinedVariable = errors.New("Undefined variable")
	ErrRuntimeDivisionByZero    = errors.New("Division by zero.")
	ErrRuntimeInvalidOperator   = errors.New("Invalid operator.")
	ErrRuntimeNilNode           = errors.New("Missing syntax tree node.")
)

func ErrRuntimeUndefinedVariableName(name string) error {
	return fmt.Errorf("%w '%s'.", ErrRuntimeUndefinedVariable, name)
}

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok, cause}
}

// RuntimeError is an evaluation failure located at the offending token.
type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Token returns the token the failure is reported at.
func (r *RuntimeError) Token() *token.Token {
	return r.tok
}

// Error implements error.
func (r *RuntimeError) Error() string {
	if r.tok == nil {
		return r.cause.Error()
	}
	return fmt.Sprintf("%v\n[line %d:%d] in script", r.cause, r.tok.Line, r.tok.Column)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
