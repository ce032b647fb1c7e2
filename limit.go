package filelike

import "io"

// LimitedStream reads at most N bytes from the wrapped stream. Writes pass
// through unchanged.
type LimitedStream struct {
	f     FileLike
	limit int64
	n     int64
}

// NewLimited wraps f so that reads report EOF after n bytes.
func NewLimited(f FileLike, n int64) *LimitedStream {
	n = max(n, 0)
	return &LimitedStream{f: f, limit: n, n: n}
}

// Remaining returns how many bytes may still be read.
func (l *LimitedStream) Remaining() int64 {
	return l.n
}

func (l *LimitedStream) Read(p []byte) (int, error) {
	if l.n <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.f.Read(p)
	if n > 0 {
		l.n -= int64(n)
	}
	return n, err
}

func (l *LimitedStream) Write(p []byte) (int, error) {
	return l.f.Write(p)
}

func (l *LimitedStream) Close() error {
	return l.f.Close()
}

// Size returns the smaller of the wrapped size and the limit, or
// SizeUnknown when the wrapped stream cannot report one. Like every Size,
// it ignores how much has already been read.
func (l *LimitedStream) Size() int64 {
	s := l.f.Size()
	if s < 0 {
		return SizeUnknown
	}
	return min(s, l.limit)
}
