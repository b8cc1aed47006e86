package interpreter

import (
	"strconv"

	"github.com/leonardinius/gospi/internal/parser"
	"github.com/leonardinius/gospi/internal/pascalerrors"
	"github.com/leonardinius/gospi/internal/scanner"
	"github.com/leonardinius/gospi/internal/token"
)

type Interpreter interface {
	// Interpret evaluates the given tree.
	// Returns the final accumulator in base 10 and an error if any.
	//
	// Not thread safe.
	Interpret(node parser.Node) (string, error)

	// Evaluate evaluates the given tree.
	// Returns the final accumulator: the value of a bare expression, or the
	// value of the last expression evaluated inside a program block.
	//
	// Not thread safe.
	// Resets the accumulator on Evaluate, keeps the globals.
	Evaluate(node parser.Node) (int32, error)

	// Run scans, parses and evaluates source.
	Run(source string) (int32, error)

	// Globals returns the variable store the interpreter writes to.
	Globals() *Globals
}

type interpreter struct {
	acc  int32
	opts *interpreterOpts
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{opts: newInterpreterOpts(options...)}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(node parser.Node) (string, error) {
	if value, err := i.Evaluate(node); err != nil {
		return "", err
	} else {
		return i.stringify(value), nil
	}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(node parser.Node) (int32, error) {
	i.reset()

	if err := i.evaluate(node); err != nil {
		return 0, err
	}
	return i.acc, nil
}

// Run implements Interpreter.
func (i *interpreter) Run(source string) (int32, error) {
	node, err := parser.NewParser(scanner.NewScanner(source)).Parse()
	if err != nil {
		return 0, err
	}

	return i.Evaluate(node)
}

// Globals implements Interpreter.
func (i *interpreter) Globals() *Globals {
	return i.opts.globals
}

// VisitBinaryOp implements parser.Visitor.
func (i *interpreter) VisitBinaryOp(node *parser.BinaryOp) error {
	if err := i.evaluate(node.Left); err != nil {
		return err
	}
	left := i.acc

	if err := i.evaluate(node.Right); err != nil {
		return err
	}
	right := i.acc

	switch node.Operator.Type {
	case token.PLUS:
		i.acc = left + right
	case token.MINUS:
		i.acc = left - right
	case token.STAR:
		i.acc = left * right
	case token.SLASH:
		if right == 0 {
			return pascalerrors.NewRuntimeError(node.Operator, pascalerrors.ErrRuntimeDivisionByZero)
		}
		i.acc = left / right
	default:
		return pascalerrors.NewRuntimeError(node.Operator, pascalerrors.ErrRuntimeInvalidOperator)
	}

	return nil
}

// VisitUnaryOp implements parser.Visitor.
func (i *interpreter) VisitUnaryOp(node *parser.UnaryOp) error {
	if err := i.evaluate(node.Operand); err != nil {
		return err
	}

	switch node.Operator.Type {
	case token.PLUS:
	case token.MINUS:
		i.acc = -i.acc
	default:
		return pascalerrors.NewRuntimeError(node.Operator, pascalerrors.ErrRuntimeInvalidOperator)
	}

	return nil
}

// VisitNum implements parser.Visitor.
func (i *interpreter) VisitNum(node *parser.Num) error {
	i.acc = node.Value
	return nil
}

// VisitVariable implements parser.Visitor.
func (i *interpreter) VisitVariable(node *parser.Variable) error {
	value, err := i.opts.globals.Get(node.Name)
	if err != nil {
		return pascalerrors.NewRuntimeError(node.Token, err)
	}

	i.acc = value
	return nil
}

// VisitAssign implements parser.Visitor.
func (i *interpreter) VisitAssign(node *parser.Assign) error {
	if err := i.evaluate(node.Value); err != nil {
		return err
	}

	i.opts.globals.Assign(node.Target.Name, i.acc)
	return nil
}

// VisitCompound implements parser.Visitor.
func (i *interpreter) VisitCompound(node *parser.Compound) error {
	for _, stmt := range node.Statements {
		if err := i.evaluate(stmt); err != nil {
			return err
		}
	}

	return nil
}

// VisitNoOp implements parser.Visitor.
func (i *interpreter) VisitNoOp(node *parser.NoOp) error {
	return nil
}

func (i *interpreter) evaluate(node parser.Node) error {
	if node == nil {
		return pascalerrors.NewRuntimeError(nil, pascalerrors.ErrRuntimeNilNode)
	}

	return node.Accept(i)
}

func (i *interpreter) stringify(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

func (i *interpreter) reset() {
	i.acc = 0
}

var _ parser.Visitor = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
