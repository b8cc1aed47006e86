package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/gospi/internal/interpreter"
	"github.com/leonardinius/gospi/internal/parser"
	"github.com/leonardinius/gospi/internal/pascalerrors"
	"github.com/leonardinius/gospi/internal/scanner"
)

var (
	ErrUsage   = errors.New("Usage: gospi [script]")
	ErrIO      = errors.New("I/O error")
	ErrCommand = errors.New("Unknown command, try :help")
	ErrPanic   = errors.New("internal error")
)

// Exit codes, sysexits(3) style.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

// lineReader is the part of *readline.Instance the REPL loop needs.
type lineReader interface {
	Readline() (string, error)
}

type App struct {
	err         error
	interpreter interpreter.Interpreter
	reporter    pascalerrors.ErrReporter
	opts        *appOpts
}

func NewApp(options ...AppOption) *App {
	opts := newAppOpts(options...)
	return &App{
		interpreter: interpreter.NewInterpreter(),
		reporter:    pascalerrors.NewErrReporter(opts.stderr),
		opts:        opts,
	}
}

func (app *App) reportError(err error) {
	app.reporter.ReportError(err)
	app.err = err
}

func (app *App) Main(args []string) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			app.err = fmt.Errorf("%w: %v", ErrPanic, r)
			app.reporter.ReportPanic(app.err)
			exitCode = ExitSoftware
		}
	}()

	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = ErrUsage
	}

	if err != nil {
		app.reportError(err)
	}

	return app.exitCode()
}

func (app *App) exitCode() int {
	var runtimeErr *pascalerrors.RuntimeError

	switch {
	case app.err == nil:
		return ExitOK
	case errors.Is(app.err, ErrUsage):
		return ExitUsage
	case errors.Is(app.err, pascalerrors.ErrScanError), errors.Is(app.err, pascalerrors.ErrParseError):
		return ExitDataErr
	case errors.As(app.err, &runtimeErr):
		return ExitSoftware
	}

	return ExitIOErr
}

func (app *App) resetError() {
	app.err = nil
}

func (app *App) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          app.opts.prompt,
		HistoryFile:     app.opts.historyFile,
		AutoComplete:    newCompleter(app),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           app.opts.stdin,
		Stdout:          app.opts.stdout,
		Stderr:          app.opts.stderr,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer rl.Close()

	return app.repl(rl)
}

func (app *App) repl(rl lineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ":"):
			err = app.command(line)
		default:
			err = app.run(line)
		}

		if err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *App) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return app.run(string(bytes))
}

func (app *App) parse(input string) (parser.Node, error) {
	s := scanner.NewScanner(input)
	p := parser.NewParser(s)
	return p.Parse()
}

func (app *App) run(input string) error {
	node, err := app.parse(input)
	if err != nil {
		return err
	}

	return app.interpret(node)
}

func (app *App) interpret(node parser.Node) error {

	if out, err := app.interpreter.Interpret(node); err != nil {
		return err
	} else {
		fmt.Fprintln(app.opts.stdout, out)
	}

	return nil
}
