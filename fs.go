package filelike

import (
	"errors"
	"io"
)

// SizeUnknown is returned by Size when a backend cannot report its length,
// e.g. a pipe or a socket.
const SizeUnknown int64 = -1

// MaxBufferSize is the largest size ReadAll will materialize as a single
// buffer. Streams reporting a size at or above it are refused.
const MaxBufferSize int64 = 1<<31 - 1

// ============================================================================
// Core Interface
// ============================================================================

// FileLike is an ordered byte sequence with sequential read/write access.
//
// Callers hold a FileLike, never a concrete backend. Instances are not safe
// for concurrent use: a stream must only take part in one copy at a time.
type FileLike interface {
	// Read reads up to len(p) bytes into p. A positive n is data, possibly
	// partial. (0, io.EOF) and (0, nil) both mean end of stream. Any other
	// error is a backend failure.
	Read(p []byte) (n int, err error)

	// Write attempts to write all of p and returns how much was accepted.
	// Unlike io.Writer, a short count with a nil error is allowed and means
	// backpressure: the caller writes the rest later. A zero count or an
	// error other than io.ErrShortWrite is a failure.
	Write(p []byte) (n int, err error)

	// Close releases backend resources. Calling it more than once is safe.
	Close() error

	// Size returns the total size in bytes, or SizeUnknown. It does not
	// account for the current read/write position.
	Size() int64
}

// ============================================================================
// Optional Capability Interfaces
// ============================================================================
// Backends may expose extra capabilities. Use a type assertion:
//
//	if s, ok := f.(Snapshotter); ok {
//	    data := s.Bytes()
//	}

// Snapshotter indicates the stream can hand out a copy of its whole content
// without moving its cursor.
type Snapshotter interface {
	Bytes() []byte
}

// ============================================================================
// Outcome Classification
// ============================================================================

// Outcome is the tagged result of a single Read or Write call.
//
// OutcomeFailure: the backend reported an error.
// OutcomeData:    n bytes were transferred.
// OutcomeEOF:     the stream is exhausted (reads only).
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeData
	OutcomeEOF
)

func (o Outcome) String() string {
	switch o {
	case OutcomeData:
		return "Data"
	case OutcomeEOF:
		return "EOF"
	default:
		return "Failure"
	}
}

// ClassifyRead maps the result of a Read call to an Outcome. Data wins over
// io.EOF, so (n > 0, io.EOF) is OutcomeData and the next call reports EOF.
func ClassifyRead(n int, err error) Outcome {
	if err != nil && !errors.Is(err, io.EOF) {
		return OutcomeFailure
	}
	if n > 0 {
		return OutcomeData
	}
	return OutcomeEOF
}

// ClassifyWrite maps the result of a Write call to an Outcome. A write never
// reports OutcomeEOF: accepting nothing is a refusal.
func ClassifyWrite(n int, err error) Outcome {
	if n <= 0 {
		return OutcomeFailure
	}
	if err != nil && !errors.Is(err, io.ErrShortWrite) {
		return OutcomeFailure
	}
	return OutcomeData
}
