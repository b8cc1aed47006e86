package cmd

import (
	"io"
	"os"
)

type appOpts struct {
	stdin       io.ReadCloser
	stdout      io.Writer
	stderr      io.Writer
	prompt      string
	historyFile string
}

var defaultAppOpts = appOpts{
	stdin:  os.Stdin,
	stdout: os.Stdout,
	stderr: os.Stderr,
	prompt: "> ",
}

type AppOption func(*appOpts)

func WithStdin(stdin io.Reader) AppOption {
	return func(opts *appOpts) {
		opts.stdin = io.NopCloser(stdin)
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithPrompt(prompt string) AppOption {
	return func(opts *appOpts) {
		opts.prompt = prompt
	}
}

// WithHistoryFile persists REPL history to path. Empty disables history.
func WithHistoryFile(path string) AppOption {
	return func(opts *appOpts) {
		opts.historyFile = path
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	return &opts
}
