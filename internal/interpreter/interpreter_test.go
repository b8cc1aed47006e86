package interpreter_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/leonardinius/gospi/internal/interpreter"
	"github.com/leonardinius/gospi/internal/parser"
	"github.com/leonardinius/gospi/internal/pascalerrors"
	"github.com/leonardinius/gospi/internal/scanner"
	"github.com/leonardinius/gospi/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	testcases := []struct {
		name          string
		input         string
		expectedEval  string
		expectedError string
	}{
		{name: `simple expression`, input: `1 + 2`, expectedEval: `3`},
		{name: `grouped`, input: `(1 + 2)`, expectedEval: `3`},
		{name: `nested`, input: `(1 + (2 + 3))`, expectedEval: `6`},
		{name: `precedence asterix`, input: `2 + 3 * 4`, expectedEval: `14`},
		{name: `precedence grouping`, input: `(2 + 3) * 4`, expectedEval: `20`},
		{name: `precedence slash`, input: `1 + 9 / 3`, expectedEval: `4`},
		{name: `left assoc minus`, input: `10 - 2 - 3`, expectedEval: `5`},
		{name: `left assoc slash`, input: `64 / 4 / 2`, expectedEval: `8`},
		{name: `integer division`, input: `7 / 2`, expectedEval: `3`},
		{name: `truncates toward zero`, input: `-7 / 2`, expectedEval: `-3`},
		{name: `truncates toward zero divisor`, input: `7 / -2`, expectedEval: `-3`},
		{name: `unary minus minus`, input: `--5`, expectedEval: `5`},
		{name: `unary minus plus minus`, input: `-+-5`, expectedEval: `5`},
		{name: `unary plus`, input: `+3`, expectedEval: `3`},
		{name: `unary in term`, input: `5 - - - + - (3 + 4) - +2`, expectedEval: `10`},
		{name: `calc classic`, input: `7 + 3 * (10 / (12 / (3 + 1) - 1))`, expectedEval: `22`},
		{name: `wraps on overflow`, input: `2147483647 + 1`, expectedEval: `-2147483648`},
		{name: `min int32 by subtraction`, input: `-2147483647 - 1`, expectedEval: `-2147483648`},
		{name: `min int32 literal overflows`, input: `-2147483648`, expectedError: `[line 1:2] scan error: Integer literal out of range. 2147483648`},
		{name: `unicode space`, input: "1\u00a0+ 2", expectedError: `[line 1:2] scan error: Unexpected character.`},
		{name: `division by zero`, input: `1 / 0`, expectedError: "Division by zero.\n[line 1:3] in script"},
		{name: `division by zero expression`, input: `5 / (2 - 2)`, expectedError: "Division by zero.\n[line 1:3] in script"},
		{name: `undefined variable`, input: `a + 1`, expectedError: "Undefined variable 'a'.\n[line 1:1] in script"},
		{name: `empty program`, input: `PROGRAM END_PROGRAM`, expectedEval: `0`},
		{name: `program last value`, input: `PROGRAM x := 2; y := x + 3; END_PROGRAM`, expectedEval: `5`},
		{name: `program reassign`, input: `PROGRAM x := 2; x := x * x; x := x * x END_PROGRAM`, expectedEval: `16`},
		{name: `program nested`, input: `PROGRAM a := 1; PROGRAM b := a + 1 END_PROGRAM; c := a + b END_PROGRAM`, expectedEval: `3`},
		{name: `program undefined`, input: `PROGRAM z := q; END_PROGRAM`, expectedError: "Undefined variable 'q'.\n[line 1:14] in script"},
		{name: `program use before assign`, input: `PROGRAM a := b; b := 1 END_PROGRAM`, expectedError: `Undefined variable 'b'.`},
		{name: `program division by zero`, input: "PROGRAM\n  a := 0;\n  b := 1 / a\nEND_PROGRAM", expectedError: "Division by zero.\n[line 3:10] in script"},
		{name: `parse error`, input: `1 + 2 +`, expectedError: `parse error at end: expected one of PLUS, MINUS, INTEGER, LEFT_PAREN, IDENTIFIER, got EOF.`},
		{name: `lex error`, input: `1 % 2`, expectedError: `scan error: Unexpected character. '%'`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			output, _, err := evaluate(tc.input)
			if tc.expectedError != "" {
				assert.ErrorContains(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedEval, output)
			}
		})
	}
}

func TestMinInt32LiteralIsLexError(t *testing.T) {
	value, err := interpreter.NewInterpreter().Run(`-2147483648`)

	assert.Zero(t, value)
	assert.ErrorIs(t, err, pascalerrors.ErrScanIntegerOverflow)
	var scanErr *pascalerrors.ScannerError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, 2, scanErr.Column)
}

func TestArithmeticMatchesInt32(t *testing.T) {
	operands := []int32{0, 1, -1, 2, -2, 7, -7, 13, 100, -100, 65535, math.MaxInt32, math.MinInt32 + 1}
	ops := map[string]func(a, b int32) int32{
		"+": func(a, b int32) int32 { return a + b },
		"-": func(a, b int32) int32 { return a - b },
		"*": func(a, b int32) int32 { return a * b },
		"/": func(a, b int32) int32 { return a / b },
	}

	for _, a := range operands {
		for _, b := range operands {
			for op, fn := range ops {
				if op == "/" && b == 0 {
					continue
				}
				// Literals are unsigned; negative operands go through unary minus.
				source := fmt.Sprintf("(%d) %s (%d)", a, op, b)
				got, err := interpreter.NewInterpreter().Run(source)
				require.NoError(t, err, source)
				assert.Equal(t, fn(a, b), got, source)
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, a := range []int32{0, 1, -1, 42, math.MaxInt32} {
		source := fmt.Sprintf("%d / 0", a)
		_, err := interpreter.NewInterpreter().Run(source)

		assert.ErrorIs(t, err, pascalerrors.ErrRuntimeDivisionByZero, source)
		var rtErr *pascalerrors.RuntimeError
		require.ErrorAs(t, err, &rtErr)
		assert.Equal(t, token.SLASH, rtErr.Token().Type)
	}
}

func TestProgramStore(t *testing.T) {
	eval := interpreter.NewInterpreter()

	value, err := eval.Run(`PROGRAM x := 2; y := x + 3; END_PROGRAM`)
	require.NoError(t, err)

	assert.Equal(t, int32(5), value)
	assert.Equal(t, 2, eval.Globals().Len())
	assert.Equal(t, []string{"x", "y"}, eval.Globals().Names())

	x, ok := eval.Globals().Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int32(2), x)

	y, ok := eval.Globals().Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, int32(5), y)
}

func TestUndefinedVariable(t *testing.T) {
	eval := interpreter.NewInterpreter()

	_, err := eval.Run(`PROGRAM z := q; END_PROGRAM`)

	assert.ErrorIs(t, err, pascalerrors.ErrRuntimeUndefinedVariable)
	_, ok := eval.Globals().Lookup("z")
	assert.False(t, ok, "failed assignment must not reach the store")
}

func TestFailureKeepsEarlierAssignments(t *testing.T) {
	eval := interpreter.NewInterpreter()

	_, err := eval.Run(`PROGRAM a := 1; b := a / 0; c := 3 END_PROGRAM`)

	assert.ErrorIs(t, err, pascalerrors.ErrRuntimeDivisionByZero)
	assert.Equal(t, []string{"a"}, eval.Globals().Names())
}

func TestWithGlobals(t *testing.T) {
	globals := interpreter.NewGlobals()
	globals.Assign("base", 40)

	eval := interpreter.NewInterpreter(interpreter.WithGlobals(globals))
	value, err := eval.Run(`PROGRAM answer := base + 2 END_PROGRAM`)
	require.NoError(t, err)

	assert.Equal(t, int32(42), value)
	assert.Same(t, globals, eval.Globals())
	answer, ok := globals.Lookup("answer")
	assert.True(t, ok)
	assert.Equal(t, int32(42), answer)
}

func TestEvaluateResetsAccumulator(t *testing.T) {
	eval := interpreter.NewInterpreter()

	value, err := eval.Run(`41 + 1`)
	require.NoError(t, err)
	assert.Equal(t, int32(42), value)

	value, err = eval.Run(`PROGRAM END_PROGRAM`)
	require.NoError(t, err)
	assert.Equal(t, int32(0), value)
}

func TestEvaluateHandBuiltTree(t *testing.T) {
	eval := interpreter.NewInterpreter()

	_, err := eval.Evaluate(&parser.UnaryOp{
		Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1, 1),
		Operand:  nil,
	})
	assert.ErrorIs(t, err, pascalerrors.ErrRuntimeNilNode)

	_, err = eval.Evaluate(&parser.BinaryOp{
		Left:     &parser.Num{Value: 1},
		Operator: token.NewTokenHeap(token.SEMICOLON, ";", nil, 1, 2),
		Right:    &parser.Num{Value: 2},
	})
	assert.ErrorIs(t, err, pascalerrors.ErrRuntimeInvalidOperator)
}

func evaluate(script string) (string, interpreter.Interpreter, error) {
	eval := interpreter.NewInterpreter()
	scan := scanner.NewScanner(script)

	p := parser.NewParser(scan)
	node, err := p.Parse()
	if err != nil {
		return "", eval, err
	}

	svalue, err := eval.Interpret(node)
	return svalue, eval, err
}
