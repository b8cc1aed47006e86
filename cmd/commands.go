package cmd

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leonardinius/gospi/internal/interpreter"
	"github.com/leonardinius/gospi/internal/parser"
)

type command struct {
	name string
	help string
	run  func(app *App, arg string) error
}

var commands []command

// set up in init: :help lists commands itself.
func init() {
	commands = []command{
		{":help", "show this help", (*App).cmdHelp},
		{":globals", "print the global variables as YAML", (*App).cmdGlobals},
		{":ast", "print the syntax tree of the given source", (*App).cmdAst},
		{":rpn", "print the given source in reverse Polish notation", (*App).cmdRPN},
		{":vars", "list the variables the given source reads and assigns", (*App).cmdVars},
		{":reset", "forget all global variables", (*App).cmdReset},
	}
}

func (app *App) command(line string) error {
	name, arg, _ := strings.Cut(line, " ")
	for _, c := range commands {
		if c.name == name {
			return c.run(app, strings.TrimSpace(arg))
		}
	}

	return fmt.Errorf("%w: %s", ErrCommand, name)
}

func (app *App) cmdHelp(string) error {
	for _, c := range commands {
		fmt.Fprintf(app.opts.stdout, "%-9s %s\n", c.name, c.help)
	}
	return nil
}

func (app *App) cmdGlobals(string) error {
	enc := yaml.NewEncoder(app.opts.stdout)
	if err := enc.Encode(app.interpreter.Globals()); err != nil {
		return err
	}
	return enc.Close()
}

func (app *App) cmdAst(source string) error {
	node, err := app.parse(source)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.opts.stdout, parser.NewAstPrinter().Print(node))
	return nil
}

func (app *App) cmdRPN(source string) error {
	node, err := app.parse(source)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.opts.stdout, parser.NewRPNPrinter().Print(node))
	return nil
}

func (app *App) cmdVars(source string) error {
	node, err := app.parse(source)
	if err != nil {
		return err
	}

	reads, writes, err := parser.Identifiers(node)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.opts.stdout, "reads: %s\nwrites: %s\n", strings.Join(reads, ", "), strings.Join(writes, ", "))
	return nil
}

func (app *App) cmdReset(string) error {
	app.interpreter = interpreter.NewInterpreter()
	return nil
}
