package memory

import (
	"io"

	"github.com/gobeaver/filelike"
)

// Stream provides an in-memory implementation of filelike.FileLike.
// It owns a growable buffer and a single cursor shared by reads and writes.
// Useful for testing, staging and as a scratch destination.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	buf []byte
	pos int
}

var (
	_ filelike.FileLike    = (*Stream)(nil)
	_ filelike.Snapshotter = (*Stream)(nil)
)

// New creates an empty in-memory stream
func New() *Stream {
	return &Stream{buf: []byte{}}
}

// NewFromBytes creates a stream pre-seeded with a copy of data. The cursor
// starts at 0, so writes overwrite the seeded content from the start.
func NewFromBytes(data []byte) *Stream {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Stream{buf: buf}
}

// Read implements filelike.FileLike. It copies up to len(p) bytes from the
// cursor and never fails; it returns io.EOF once the cursor reaches the end.
func (s *Stream) Read(p []byte) (int, error) {
	available := max(len(s.buf)-s.pos, 0)
	if available == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	n := copy(p, s.buf[s.pos:s.pos+min(available, len(p))])
	s.pos += n
	return n, nil
}

// Write implements filelike.FileLike. The buffer grows, zero-filled, to
// exactly cursor+len(p) when needed; all of p is always accepted.
func (s *Stream) Write(p []byte) (int, error) {
	end := s.pos + len(p)
	if end > len(s.buf) {
		if end > cap(s.buf) {
			grown := make([]byte, end, max(end, 2*cap(s.buf)))
			copy(grown, s.buf)
			s.buf = grown
		} else {
			tail := s.buf[len(s.buf):end]
			clear(tail)
			s.buf = s.buf[:end]
		}
	}

	copy(s.buf[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

// Close implements filelike.FileLike. There is nothing to release.
func (s *Stream) Close() error {
	return nil
}

// Size implements filelike.FileLike. It returns the buffer length,
// regardless of the cursor.
func (s *Stream) Size() int64 {
	return int64(len(s.buf))
}

// Bytes implements filelike.Snapshotter. It returns a copy of the whole
// buffer and leaves the cursor where it is.
func (s *Stream) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Offset returns the current cursor position
func (s *Stream) Offset() int64 {
	return int64(s.pos)
}

// Reset empties the buffer and moves the cursor back to 0
func (s *Stream) Reset() {
	s.buf = s.buf[:0]
	s.pos = 0
}
