package filelike

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestClassifyRead(t *testing.T) {
	failure := errors.New("disk on fire")

	tests := []struct {
		name string
		n    int
		err  error
		want Outcome
	}{
		{name: "data", n: 10, err: nil, want: OutcomeData},
		{name: "data with EOF", n: 3, err: io.EOF, want: OutcomeData},
		{name: "EOF", n: 0, err: io.EOF, want: OutcomeEOF},
		{name: "wrapped EOF", n: 0, err: fmt.Errorf("wrapped: %w", io.EOF), want: OutcomeEOF},
		{name: "zero read", n: 0, err: nil, want: OutcomeEOF},
		{name: "error", n: 0, err: failure, want: OutcomeFailure},
		{name: "data with error", n: 5, err: failure, want: OutcomeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyRead(tt.n, tt.err); got != tt.want {
				t.Errorf("ClassifyRead(%d, %v) = %v, want %v", tt.n, tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyWrite(t *testing.T) {
	failure := errors.New("quota exceeded")

	tests := []struct {
		name string
		n    int
		err  error
		want Outcome
	}{
		{name: "full write", n: 10, err: nil, want: OutcomeData},
		{name: "partial write", n: 4, err: nil, want: OutcomeData},
		{name: "short write signal", n: 4, err: io.ErrShortWrite, want: OutcomeData},
		{name: "refused", n: 0, err: nil, want: OutcomeFailure},
		{name: "refused short write", n: 0, err: io.ErrShortWrite, want: OutcomeFailure},
		{name: "error", n: 0, err: failure, want: OutcomeFailure},
		{name: "partial with error", n: 4, err: failure, want: OutcomeFailure},
		{name: "negative count", n: -1, err: nil, want: OutcomeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyWrite(tt.n, tt.err); got != tt.want {
				t.Errorf("ClassifyWrite(%d, %v) = %v, want %v", tt.n, tt.err, got, tt.want)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeFailure: "Failure",
		OutcomeData:    "Data",
		OutcomeEOF:     "EOF",
		Outcome(42):    "Failure",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, got, want)
		}
	}
}

func TestOpError(t *testing.T) {
	err := &OpError{Op: "write", Path: "/tmp/x", Err: ErrWriteRefused}
	if err.Error() != "write /tmp/x: write refused" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !IsWriteRefused(err) {
		t.Error("expected IsWriteRefused to unwrap OpError")
	}

	noPath := &OpError{Op: "readall", Err: ErrTooLarge}
	if noPath.Error() != "readall: stream too large to buffer" {
		t.Errorf("unexpected message: %s", noPath.Error())
	}
}

func TestNewCopierNormalizesOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Options
	}{
		{
			name: "defaults",
			want: Options{BlockSize: DefaultBlockSize, HighWaterMark: DefaultHighWaterMark, MaxBufferSize: MaxBufferSize},
		},
		{
			name: "invalid values fall back",
			opts: []Option{WithBlockSize(-1), WithHighWaterMark(0), WithMaxBufferSize(-5)},
			want: Options{BlockSize: DefaultBlockSize, HighWaterMark: 2 * DefaultBlockSize, MaxBufferSize: MaxBufferSize},
		},
		{
			name: "ceiling raised to block size",
			opts: []Option{WithBlockSize(4096), WithHighWaterMark(1024)},
			want: Options{BlockSize: 4096, HighWaterMark: 4096, MaxBufferSize: MaxBufferSize},
		},
		{
			name: "custom values kept",
			opts: []Option{WithBlockSize(1024), WithHighWaterMark(4096), WithMaxBufferSize(1 << 20)},
			want: Options{BlockSize: 1024, HighWaterMark: 4096, MaxBufferSize: 1 << 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCopier(tt.opts...).Options()
			if got.BlockSize != tt.want.BlockSize {
				t.Errorf("BlockSize = %d, want %d", got.BlockSize, tt.want.BlockSize)
			}
			if got.HighWaterMark != tt.want.HighWaterMark {
				t.Errorf("HighWaterMark = %d, want %d", got.HighWaterMark, tt.want.HighWaterMark)
			}
			if got.MaxBufferSize != tt.want.MaxBufferSize {
				t.Errorf("MaxBufferSize = %d, want %d", got.MaxBufferSize, tt.want.MaxBufferSize)
			}
		})
	}
}
