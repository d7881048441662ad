package probe

import (
	"errors"

	"github.com/samvad-hq/samvad-status-probe/pkg/httperr"
)

// OperationError attributes a pipeline failure to the operation that issued it.
type OperationError struct {
	Operation string
	Err       error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.label()
	}
	return e.label() + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error { return e.Err }

func (e *OperationError) label() string {
	if e.Operation == "" {
		return "server error"
	}
	return "failed " + e.Operation
}

// Describe renders the operation label followed by the classified kind,
// e.g. "failed getting user profile(bad request)".
func (e *OperationError) Describe() string {
	var herr *httperr.Error
	if errors.As(e.Err, &herr) {
		return e.label() + "(" + herr.Kind.String() + ")"
	}
	return e.label()
}
