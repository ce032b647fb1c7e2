package filelike

import (
	"errors"
	"fmt"
)

// Common stream errors
var (
	ErrNilStream     = errors.New("stream is nil")
	ErrClosed        = errors.New("stream already closed")
	ErrTooLarge      = errors.New("stream too large to buffer")
	ErrWriteRefused  = errors.New("write refused")
	ErrSizeMismatch  = errors.New("size mismatch")
	ErrInvalidCount  = errors.New("backend returned invalid byte count")
	ErrNotAllowed    = errors.New("operation not allowed")
	ErrNotSupported  = errors.New("operation not supported")
	ErrInvalidConfig = errors.New("invalid config")
)

// OpError records an error and the operation (and optional path) that caused it
type OpError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *OpError) Unwrap() error {
	return e.Err
}

// IsTooLarge reports whether an error indicates the stream was refused
// because its reported size exceeds the buffer limit
func IsTooLarge(err error) bool {
	return errors.Is(err, ErrTooLarge)
}

// IsWriteRefused reports whether an error indicates the destination
// accepted no bytes
func IsWriteRefused(err error) bool {
	return errors.Is(err, ErrWriteRefused)
}

// IsReadOnly reports whether an error indicates a write on a read-only stream
func IsReadOnly(err error) bool {
	return errors.Is(err, ErrReadOnly)
}
