package export

import (
	"errors"
	"fmt"
)

// ErrPersistence marks a deck that could not be written to its target path.
var ErrPersistence = errors.New("persistence failure")

// ServiceError is the unified export error type.
type ServiceError struct {
	Service   string // service name
	Operation string // operation name
	Path      string // file the operation targeted, if any
	Err       error  // underlying error
}

// Error formats as [Service.Operation] path: error message
func (e *ServiceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s.%s] %s: %v", e.Service, e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s.%s] %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is reports save failures as ErrPersistence.
func (e *ServiceError) Is(target error) bool {
	return target == ErrPersistence && e.Operation == "save"
}

// WrapError creates an error with service context. Returns nil for a nil err.
func WrapError(service, operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Path: path, Err: err}
}

func persistenceError(path string, err error) error {
	return WrapError("export", "save", path, err)
}
