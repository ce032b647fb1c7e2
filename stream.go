package filelike

import (
	"errors"
	"io"
)

// readerStream adapts an io.Reader to a read-only FileLike.
type readerStream struct {
	r    io.Reader
	size int64
}

// NewReaderStream wraps r as a FileLike with the given size, which may be
// SizeUnknown. Writes fail with ErrNotSupported. Close closes r when it is
// an io.Closer.
func NewReaderStream(r io.Reader, size int64) FileLike {
	return &readerStream{r: r, size: max(size, SizeUnknown)}
}

// maxEmptyReads bounds how often a reader may return (0, nil) in a row
// before the stream gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// Read retries empty reads, since io.Reader allows (0, nil) mid-stream
// while a FileLike read of (0, nil) means end of stream.
func (s *readerStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for range maxEmptyReads {
		n, err := s.r.Read(p)
		if n > 0 || err != nil {
			return n, err
		}
	}
	return 0, &OpError{Op: "read", Err: io.ErrNoProgress}
}

func (s *readerStream) Write(p []byte) (int, error) {
	return 0, &OpError{Op: "write", Err: ErrNotSupported}
}

func (s *readerStream) Close() error {
	return closeIfCloser(s.r)
}

func (s *readerStream) Size() int64 { return s.size }

// writerStream adapts an io.Writer to a write-only FileLike.
type writerStream struct {
	w       io.Writer
	written int64
}

// NewWriterStream wraps w as a FileLike. Reads report EOF immediately and
// Size reports the number of bytes accepted so far.
func NewWriterStream(w io.Writer) FileLike {
	return &writerStream{w: w}
}

func (s *writerStream) Read(p []byte) (int, error) {
	return 0, io.EOF
}

func (s *writerStream) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.written += int64(n)
	// io.Writer reports a short write as an error; keep the partial count
	// so the copy engine can retry the rest.
	if n > 0 && n < len(p) && errors.Is(err, io.ErrShortWrite) {
		return n, nil
	}
	return n, err
}

func (s *writerStream) Close() error {
	return closeIfCloser(s.w)
}

func (s *writerStream) Size() int64 { return s.written }

func closeIfCloser(v any) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
