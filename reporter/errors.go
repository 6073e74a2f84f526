package reporter

import (
	"errors"
	"fmt"
)

// ErrInvalidSource is a sentinel error. Handler.Error returns it when errors
// were reported but the ErrorReporter returned nil for every one of them,
// and the CLI returns it after it has rendered a parse or build diagnostic.
var ErrInvalidSource = errors.New("reduce failed: invalid source")

// Diagnostic is an error annotated with a phase name (the CLI uses
// "parse <input>" and "build <input>", where <input> is a file path or
// "<stdin>") describing where in the pipeline it originated. There is no source position to carry: Build's input is an
// already-parsed tree, so whatever concrete-syntax positions exist belong
// to an external parser this module never sees.
type Diagnostic interface {
	error
	Phase() string
	Unwrap() error
}

func Error(phase string, err error) Diagnostic {
	return diagnostic{phase: phase, underlying: err}
}

func Errorf(phase, format string, args ...interface{}) Diagnostic {
	return diagnostic{phase: phase, underlying: fmt.Errorf(format, args...)}
}

// diagnostic is the concrete Diagnostic implementation, exported only
// through the Diagnostic interface so callers can't depend on its fields.
type diagnostic struct {
	underlying error
	phase      string
}

func (d diagnostic) Error() string {
	return fmt.Sprintf("%s: %v", d.phase, d.underlying)
}

func (d diagnostic) Phase() string {
	return d.phase
}

func (d diagnostic) Unwrap() error {
	return d.underlying
}

var _ Diagnostic = diagnostic{}
