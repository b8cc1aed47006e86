package pascalerrors

import (
	"fmt"
	"io"
)

// ErrReporter writes diagnostics, one line prefix per severity.
type ErrReporter interface {
	// ReportPanic reports an error recovered from a panic.
	ReportPanic(err error)
	// ReportError reports a scan, parse, runtime or usage error.
	ReportError(err error)
}

const (
	levelError = "ERROR"
	levelFatal = "FATAL"
)

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) ErrReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	e.report(levelFatal, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	e.report(levelError, err)
}

func (e *errReporter) report(level string, err error) {
	fmt.Fprintf(e.w, "%s %v\n", level, err)
}

var _ ErrReporter = (*errReporter)(nil)
