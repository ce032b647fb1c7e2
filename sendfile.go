package filelike

import (
	"fmt"
	"io"
	"math"
)

// SendFile copies size bytes from src to dst using the default tuning.
// A negative size copies everything src has: its Size is used as the
// target, or, when that is unknown, bytes are copied until src reports EOF.
//
// SendFile reports false when either stream is nil, a read fails, a write
// accepts nothing or fails, or src ends before a known target is reached.
// It never closes src or dst.
func SendFile(src, dst FileLike, size int64) bool {
	_, err := defaultCopier.Load().SendFile(src, dst, size)
	return err == nil
}

// SendFile is like the package-level SendFile but returns the number of
// bytes flushed to dst and the reason for a failure.
//
// Reads go into a scratch block of BlockSize bytes and are staged in a
// holding buffer that never grows past HighWaterMark. Each iteration tops
// the holding buffer up by one read when a whole block still fits, then
// writes everything it holds; a short write keeps the remainder queued.
func (c *Copier) SendFile(src, dst FileLike, size int64) (int64, error) {
	if isNil(src) || isNil(dst) {
		return 0, ErrNilStream
	}

	target := size
	if target < 0 {
		target = src.Size()
	}
	if target == 0 {
		return 0, nil
	}

	var (
		hold  = make([]byte, 0, c.opts.HighWaterMark)
		block = make([]byte, c.opts.BlockSize)
		total int64
		eof   bool
	)

	for {
		remaining := int64(math.MaxInt64)
		if target > 0 {
			remaining = max(0, target-int64(len(hold))-total)
		}

		if !eof && remaining > 0 && len(hold)+len(block) <= c.opts.HighWaterMark {
			chunk := block
			if remaining < int64(len(chunk)) {
				chunk = chunk[:remaining]
			}

			n, err := src.Read(chunk)
			switch ClassifyRead(n, err) {
			case OutcomeFailure:
				return total, &OpError{Op: "read", Err: err}
			case OutcomeEOF:
				eof = true
			case OutcomeData:
				if n > len(chunk) {
					return total, &OpError{Op: "read", Err: ErrInvalidCount}
				}
				hold = append(hold, chunk[:n]...)
			}
		}

		if len(hold) == 0 {
			if target < 0 || total == target {
				return total, nil
			}
			return total, &OpError{
				Op:  "sendfile",
				Err: fmt.Errorf("%w: copied %d of %d bytes", io.ErrUnexpectedEOF, total, target),
			}
		}

		n, err := dst.Write(hold)
		if ClassifyWrite(n, err) == OutcomeFailure {
			if err == nil {
				err = ErrWriteRefused
			}
			return total, &OpError{Op: "write", Err: err}
		}
		if n > len(hold) {
			return total, &OpError{Op: "write", Err: ErrInvalidCount}
		}

		total += int64(n)
		hold = hold[:copy(hold, hold[n:])]

		if c.opts.Progress != nil {
			c.opts.Progress(total, max(target, SizeUnknown))
		}
	}
}
