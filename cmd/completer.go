package cmd

import (
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/gospi/internal/scanner"
)

// completer completes keywords, assigned variable names and REPL commands.
type completer struct {
	app *App
}

func newCompleter(app *App) *completer {
	return &completer{app: app}
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && isWordRune(line[start-1]) {
		start--
	}
	if start == pos {
		return nil, 0
	}
	prefix := string(line[start:pos])

	for _, candidate := range c.candidates(start == 0) {
		if strings.HasPrefix(candidate, prefix) && candidate != prefix {
			newLine = append(newLine, []rune(candidate[len(prefix):]))
		}
	}

	return newLine, pos - start
}

func (c *completer) candidates(lineStart bool) []string {
	var words []string
	if lineStart {
		for _, cmd := range commands {
			words = append(words, cmd.name)
		}
	}
	words = append(words, scanner.Keywords()...)
	return append(words, c.app.interpreter.Globals().Names()...)
}

func isWordRune(r rune) bool {
	return r == '_' || r == ':' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

var _ readline.AutoCompleter = (*completer)(nil)
