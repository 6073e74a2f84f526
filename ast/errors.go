package ast

import "fmt"

// BuildErrorKind classifies a BuildError.
type BuildErrorKind int

const (
	// UnboundVariable: a Variable(s) reference has no enclosing binding.
	UnboundVariable BuildErrorKind = iota + 1
	// NoArguments: a FnDecl with an empty argument list reached Build.
	NoArguments
	// UnbalancedFrame: closeFrame was called with no matching newFrame.
	UnbalancedFrame
)

func (k BuildErrorKind) String() string {
	switch k {
	case UnboundVariable:
		return "UnboundVariable"
	case NoArguments:
		return "NoArguments"
	case UnbalancedFrame:
		return "UnbalancedFrame"
	default:
		return "BuildErrorKind(?)"
	}
}

// BuildError is the only error Build produces; Alpha and Beta are
// infallible by construction. Build returns the first BuildError it
// encounters and aborts immediately — no retries, no partial recovery.
type BuildError struct {
	Kind BuildErrorKind
	// Name is the offending identifier for UnboundVariable; empty otherwise.
	Name string
}

func (e *BuildError) Error() string {
	switch e.Kind {
	case UnboundVariable:
		return fmt.Sprintf("unbound variable %q", e.Name)
	case NoArguments:
		return "fn declaration has no arguments"
	case UnbalancedFrame:
		return "close_frame called with no matching new_frame"
	default:
		return "build error"
	}
}

// Is makes BuildError usable with errors.Is against the exported sentinels
// below, comparing only on Kind (so errors.Is(err, ErrUnboundVariable)
// matches regardless of which identifier was unbound).
func (e *BuildError) Is(target error) bool {
	other, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel errors, for use with errors.Is.
var (
	ErrUnboundVariable = &BuildError{Kind: UnboundVariable}
	ErrNoArguments     = &BuildError{Kind: NoArguments}
	ErrUnbalancedFrame = &BuildError{Kind: UnbalancedFrame}
)
