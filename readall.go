package filelike

import (
	"fmt"
	"io"
)

// ReadAll drains f into one buffer using the default block size.
// ok is false when f reports a size at or above MaxBufferSize (the result is
// then empty and nothing is read), or when f reports a known size and the
// bytes read do not match it. A read error ends the loop early and surfaces
// as a size mismatch, not as a separate error.
func ReadAll(f FileLike) (data []byte, ok bool) {
	data, err := defaultCopier.Load().ReadAll(f)
	return data, err == nil
}

// ReadAll is like the package-level ReadAll but reports why it failed.
// The returned buffer holds whatever was read, even on error, except for
// ErrTooLarge where it is always empty.
func (c *Copier) ReadAll(f FileLike) ([]byte, error) {
	if isNil(f) {
		return nil, ErrNilStream
	}

	size := f.Size()
	if size >= c.opts.MaxBufferSize {
		return []byte{}, &OpError{
			Op:  "readall",
			Err: fmt.Errorf("%w: %d bytes", ErrTooLarge, size),
		}
	}
	if size == 0 {
		return []byte{}, nil
	}

	var data []byte
	if size > 0 {
		data = make([]byte, 0, size)
	} else {
		data = []byte{}
	}

	buf := make([]byte, c.opts.BlockSize)
	for {
		n, err := f.Read(buf)
		if n > len(buf) {
			break
		}
		if n > 0 {
			data = append(data, buf[:n]...)
		}
		if ClassifyRead(n, err) != OutcomeData {
			break
		}
	}

	if size < 0 || int64(len(data)) == size {
		return data, nil
	}

	cause := io.ErrUnexpectedEOF
	if int64(len(data)) > size {
		cause = ErrSizeMismatch
	}
	return data, &OpError{
		Op:  "readall",
		Err: fmt.Errorf("%w: read %d of %d bytes", cause, len(data), size),
	}
}
