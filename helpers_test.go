package filelike_test

import (
	"bytes"
	"errors"
	"io"

	"github.com/gobeaver/filelike"
)

var errBackend = errors.New("backend failure")

// chunkedSource hands out at most chunk bytes per Read and can be told to
// lie about its size or to fail after a number of reads.
type chunkedSource struct {
	data       []byte
	pos        int
	chunk      int
	size       int64
	failAfter  int // fail on this read call (1-based); 0 = never
	reads      int
	maxRequest int
	closed     int
}

func newChunkedSource(data []byte, chunk int) *chunkedSource {
	return &chunkedSource{data: data, chunk: chunk, size: int64(len(data))}
}

func (s *chunkedSource) Read(p []byte) (int, error) {
	s.reads++
	s.maxRequest = max(s.maxRequest, len(p))
	if s.failAfter > 0 && s.reads >= s.failAfter {
		return 0, errBackend
	}
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := min(len(p), len(s.data)-s.pos)
	if s.chunk > 0 {
		n = min(n, s.chunk)
	}
	copy(p, s.data[s.pos:s.pos+n])
	s.pos += n
	return n, nil
}

func (s *chunkedSource) Write(p []byte) (int, error) { return 0, errBackend }

func (s *chunkedSource) Close() error {
	s.closed++
	return nil
}

func (s *chunkedSource) Size() int64 { return s.size }

// throttledSink accepts at most limit bytes per Write (0 = unlimited) and
// can be told to refuse writes after a number of calls.
type throttledSink struct {
	buf         bytes.Buffer
	limit       int
	refuseAfter int // refuse on this write call (1-based); 0 = never
	refuseErr   error
	writes      int
	maxWrite    int
}

func (s *throttledSink) Read(p []byte) (int, error) { return 0, io.EOF }

func (s *throttledSink) Write(p []byte) (int, error) {
	s.writes++
	s.maxWrite = max(s.maxWrite, len(p))
	if s.refuseAfter > 0 && s.writes >= s.refuseAfter {
		return 0, s.refuseErr
	}
	n := len(p)
	if s.limit > 0 {
		n = min(n, s.limit)
	}
	s.buf.Write(p[:n])
	return n, nil
}

func (s *throttledSink) Close() error { return nil }

func (s *throttledSink) Size() int64 { return int64(s.buf.Len()) }

// sizedStream reports an arbitrary size while holding little or no data.
type sizedStream struct {
	size  int64
	reads int
}

func (s *sizedStream) Read(p []byte) (int, error) {
	s.reads++
	return 0, io.EOF
}

func (s *sizedStream) Write(p []byte) (int, error) { return 0, errBackend }

func (s *sizedStream) Close() error { return nil }

func (s *sizedStream) Size() int64 { return s.size }

var (
	_ filelike.FileLike = (*chunkedSource)(nil)
	_ filelike.FileLike = (*throttledSink)(nil)
	_ filelike.FileLike = (*sizedStream)(nil)
)

func pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7 + i/251)
	}
	return out
}
