// Package reporter contains the types used for reporting errors from the
// CLI's build/reduce pipeline: error types plus interfaces for reporting
// and handling them, built for a pipeline with no source positions. Build
// consumes an already-parsed tree (see package ast), so there is no
// concrete syntax for a Diagnostic to point at, only the phase name it
// failed in.
package reporter

import (
	"sync"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, the pipeline aborts with that error. If the
// reporter returns nil, the pipeline continues.
type ErrorReporter func(err Diagnostic) error

// WarningReporter is responsible for reporting the given warning. This is
// used for indicating non-error messages to the calling program for things
// that do not cause the pipeline to fail but are considered bad practice.
type WarningReporter func(Diagnostic)

// Reporter is a type that handles reporting both errors and warnings.
type Reporter interface {
	// Error is called when the given error is encountered and needs to be
	// reported to the calling program. If this function returns non-nil
	// then the operation will abort immediately with the given error. But
	// if it returns nil, the operation will continue. If the reporter never
	// returns non-nil then the operation will eventually fail with
	// ErrInvalidSource.
	Error(Diagnostic) error
	// Warning is called when the given warning is encountered. Despite the
	// argument being an error type, a warning never causes the operation to
	// abort (unless the reporter's implementation of this method panics).
	Warning(Diagnostic)
}

// NewReporter creates a new reporter that invokes the given functions on
// error or warning.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err Diagnostic) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err Diagnostic) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler reports and latches errors and warnings for one pipeline run. A
// Handler is safe for concurrent use: its latch is guarded by a mutex.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler that reports errors and warnings using
// the given reporter.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf handles an error occurring in the named phase, creating the
// error using the given message format and arguments.
//
// If the handler has already aborted (by returning a non-nil error from a
// prior call to HandleError or HandleErrorf), that same error is returned
// and the given error is not reported.
func (h *Handler) HandleErrorf(phase, format string, args ...interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	err := h.reporter.Error(Errorf(phase, format, args...))
	h.err = err
	return err
}

// HandleError handles the given error, attributing it to the named phase.
//
// If the handler has already aborted (by returning a non-nil error from a
// prior call to HandleError or HandleErrorf), that same error is returned
// and the given error is not reported.
func (h *Handler) HandleError(phase string, err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	err = h.reporter.Error(Error(phase, err))
	h.err = err
	return err
}

// HandleWarning handles a warning occurring in the named phase. This
// delegates to the handler's configured reporter.
func (h *Handler) HandleWarning(phase string, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(diagnostic{phase: phase, underlying: err})
}

// Error returns the handler result. If any errors have been reported then
// this returns a non-nil error. If the reporter never returned a non-nil
// error then ErrInvalidSource is returned. Otherwise, this returns the
// error returned by the handler's reporter.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error returned by the handler's reporter. If
// the reporter has either not been invoked (no errors handled) or has not
// returned any non-nil value, this returns nil.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
