package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuth               = errors.New("not authorized for remote store")
	ErrNetwork            = errors.New("remote store unreachable")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("local storage unavailable")
	ErrUnknownIndex       = errors.New("unknown index")
	ErrUnknownStandard    = errors.New("unknown standard")
	ErrValidation         = errors.New("validation failed")
	ErrWriteFailure       = errors.New("local write failed")
)

// ValidationError reports an input rejected before any write was attempted
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RemoteError wraps a failed remote store operation.
// Kind is ErrNetwork or ErrAuth.
type RemoteError struct {
	Err  error
	Kind error
	Op   string
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("remote %s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *RemoteError) Is(target error) bool {
	return target == e.Kind
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
