package parser_test

import (
	"errors"
	"testing"

	"github.com/leonardinius/gospi/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numSummer overrides a single node kind and relies on Walker for the rest.
type numSummer struct {
	parser.Walker
	sum int32
}

func (s *numSummer) VisitNum(node *parser.Num) error {
	s.sum += node.Value
	return nil
}

var errStop = errors.New("stop")

// variableStopper fails on the first variable it meets.
type variableStopper struct {
	parser.Walker
	visited []string
}

func (s *variableStopper) VisitNum(node *parser.Num) error {
	s.visited = append(s.visited, parser.NewAstPrinter().Print(node))
	return nil
}

func (s *variableStopper) VisitVariable(node *parser.Variable) error {
	s.visited = append(s.visited, node.Name)
	return errStop
}

func TestWalkerDispatchesToSelf(t *testing.T) {
	node, err := parse(`PROGRAM a := 1 + 2 * -3; PROGRAM b := (4) END_PROGRAM; c := a END_PROGRAM`)
	require.NoError(t, err)

	s := &numSummer{}
	s.Self = s
	require.NoError(t, node.Accept(s))

	assert.Equal(t, int32(10), s.sum)
}

func TestWalkerWithoutSelfSkipsOverrides(t *testing.T) {
	node, err := parse(`1 + 2`)
	require.NoError(t, err)

	unset := &numSummer{}
	require.NoError(t, node.Accept(unset))
	assert.Zero(t, unset.sum, "children go to the bare Walker")

	wired := &numSummer{}
	wired.Walker = parser.NewWalker(wired)
	require.NoError(t, node.Accept(wired))
	assert.Equal(t, int32(3), wired.sum)
}

func TestZeroWalkerVisitsEverything(t *testing.T) {
	node, err := parse(`PROGRAM a := (1 + -b) / c; ; END_PROGRAM`)
	require.NoError(t, err)

	assert.NoError(t, node.Accept(parser.Walker{}))
}

func TestWalkStopsAtFirstError(t *testing.T) {
	node, err := parse(`1 + x * 2 + y`)
	require.NoError(t, err)

	s := &variableStopper{}
	s.Walker = parser.NewWalker(s)
	err = node.Accept(s)

	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, []string{"1", "x"}, s.visited)
}

func TestIdentifiers(t *testing.T) {
	testcases := []struct {
		name   string
		in     string
		reads  []string
		writes []string
	}{
		{name: `expression`, in: `a + b * a`, reads: []string{"a", "b"}},
		{name: `literal only`, in: `1 + 2`},
		{name: `program`, in: `PROGRAM x := 2; y := x + z; x := y END_PROGRAM`, reads: []string{"x", "z", "y"}, writes: []string{"x", "y"}},
		{name: `self assignment`, in: `PROGRAM n := n + 1 END_PROGRAM`, reads: []string{"n"}, writes: []string{"n"}},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			node, err := parse(tc.in)
			require.NoError(t, err)

			reads, writes, err := parser.Identifiers(node)
			require.NoError(t, err)
			assert.Equal(t, tc.reads, reads)
			assert.Equal(t, tc.writes, writes)
		})
	}
}
