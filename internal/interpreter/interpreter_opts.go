package interpreter

type interpreterOpts struct {
	globals *Globals
}

var defaultInterpreterOpts = interpreterOpts{}

type InterpreterOption func(*interpreterOpts)

// WithGlobals makes the interpreter read and write the given store
// instead of a fresh empty one.
func WithGlobals(globals *Globals) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.globals = globals
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.globals == nil {
		opts.globals = NewGlobals()
	}

	return &opts
}
