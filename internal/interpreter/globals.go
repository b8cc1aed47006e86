package interpreter

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/leonardinius/gospi/internal/pascalerrors"
)

// Globals is the global variable store of one program execution.
// It is not safe for concurrent use.
type Globals struct {
	values map[string]int32
}

func NewGlobals() *Globals {
	return &Globals{values: make(map[string]int32)}
}

// Assign creates or overwrites name.
func (g *Globals) Assign(name string, value int32) {
	g.values[name] = value
}

// Get returns the value of name, failing for names never assigned.
func (g *Globals) Get(name string) (int32, error) {
	if value, ok := g.values[name]; ok {
		return value, nil
	}

	return 0, pascalerrors.ErrRuntimeUndefinedVariableName(name)
}

func (g *Globals) Lookup(name string) (int32, bool) {
	value, ok := g.values[name]
	return value, ok
}

// Names returns the assigned names in lexical order.
func (g *Globals) Names() []string {
	names := maps.Keys(g.values)
	slices.Sort(names)
	return names
}

func (g *Globals) Len() int {
	return len(g.values)
}

// MarshalYAML implements yaml.Marshaler.
func (g *Globals) MarshalYAML() (any, error) {
	return maps.Clone(g.values), nil
}

func (g *Globals) String() string {
	w := new(strings.Builder)
	w.WriteString("{")
	for i, name := range g.Names() {
		if i > 0 {
			w.WriteString(", ")
		}
		fmt.Fprintf(w, "%s=%d", name, g.values[name])
	}
	w.WriteString("}")
	return w.String()
}

var _ fmt.Stringer = (*Globals)(nil)
var _ yaml.Marshaler = (*Globals)(nil)
