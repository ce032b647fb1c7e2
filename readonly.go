package filelike

import (
	"errors"
)

// ErrReadOnly is returned when a write is attempted on a read-only stream.
var ErrReadOnly = errors.New("stream is read-only")

// ============================================================================
// ReadOnlyStream Decorator
// ============================================================================

// ReadOnlyStream wraps a FileLike to prevent all writes.
// This is useful for:
// - Handing a source to code that must not modify it
// - Guarding shared handles passed as a copy source
// - Testing copy failure paths
//
// Example:
//
//	src := filelike.NewReadOnly(memory.NewFromBytes(data))
//
//	// Reads work normally
//	n, _ := src.Read(buf)
//
//	// Writes fail with an error wrapping ErrReadOnly
//	_, err := src.Write(buf)
type ReadOnlyStream struct {
	f    FileLike
	opts ReadOnlyOptions
}

// ReadOnlyOptions configures the ReadOnlyStream behavior.
type ReadOnlyOptions struct {
	// OnWriteAttempt is called with the size of every attempted write.
	// If it returns nil, the write is passed through (use carefully).
	// If nil, all writes are refused.
	OnWriteAttempt func(size int) error

	// ErrorWrapper allows customizing the error returned for refused writes.
	// If nil, wraps with OpError containing ErrReadOnly.
	ErrorWrapper func(err error) error
}

// ReadOnlyOption is a functional option for configuring ReadOnlyStream.
type ReadOnlyOption func(*ReadOnlyOptions)

// WithWriteAttemptHandler sets a custom handler for write attempts.
func WithWriteAttemptHandler(handler func(size int) error) ReadOnlyOption {
	return func(o *ReadOnlyOptions) {
		o.OnWriteAttempt = handler
	}
}

// WithErrorWrapper sets a custom error wrapper for refused writes.
func WithErrorWrapper(wrapper func(err error) error) ReadOnlyOption {
	return func(o *ReadOnlyOptions) {
		o.ErrorWrapper = wrapper
	}
}

// NewReadOnly creates a read-only wrapper around a FileLike.
func NewReadOnly(f FileLike, opts ...ReadOnlyOption) *ReadOnlyStream {
	options := ReadOnlyOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	return &ReadOnlyStream{
		f:    f,
		opts: options,
	}
}

// Unwrap returns the underlying FileLike.
func (r *ReadOnlyStream) Unwrap() FileLike {
	return r.f
}

// IsReadOnly returns true, indicating this is a read-only stream.
func (r *ReadOnlyStream) IsReadOnly() bool {
	return true
}

// Read implements FileLike
func (r *ReadOnlyStream) Read(p []byte) (int, error) {
	return r.f.Read(p)
}

// Write implements FileLike. It refuses the write unless OnWriteAttempt allows it.
func (r *ReadOnlyStream) Write(p []byte) (int, error) {
	if r.opts.OnWriteAttempt != nil {
		if err := r.opts.OnWriteAttempt(len(p)); err == nil {
			return r.f.Write(p)
		}
	}
	return 0, r.wrapError(ErrReadOnly)
}

// Close implements FileLike
func (r *ReadOnlyStream) Close() error {
	return r.f.Close()
}

// Size implements FileLike
func (r *ReadOnlyStream) Size() int64 {
	return r.f.Size()
}

func (r *ReadOnlyStream) wrapError(err error) error {
	if r.opts.ErrorWrapper != nil {
		return r.opts.ErrorWrapper(err)
	}
	return &OpError{Op: "write", Err: err}
}
