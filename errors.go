package controller

import (
	"errors"
	"fmt"

	"github.com/indigo-web/controller/http/status"
)

var (
	// ErrActionNotFound is returned by the default missing action.
	ErrActionNotFound = status.NewError(status.NotFound, "action not found")
	// ErrViewUnavailable is raised when an action produced no output, but no view is
	// configured to render one.
	ErrViewUnavailable = status.NewError(status.InternalServerError, "no view configured")
	// ErrForwardLoop is raised when actions forward to each other deeper than allowed.
	ErrForwardLoop = status.NewError(status.LoopDetected, "too many forwards")
	// ErrPanic wraps values recovered from panicking actions, views and emitters.
	ErrPanic = errors.New("panic during dispatch")
)

// ActionError is a failure raised by an action.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %q: %s", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
