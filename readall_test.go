package filelike_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/gobeaver/filelike"
	"github.com/gobeaver/filelike/driver/memory"
)

func TestReadAll(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "single byte", size: 1},
		{name: "below one block", size: 100},
		{name: "exactly one block", size: 8192},
		{name: "several blocks", size: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := pattern(tt.size)
			data, ok := filelike.ReadAll(memory.NewFromBytes(want))
			if !ok {
				t.Fatal("expected ReadAll to succeed")
			}
			if !bytes.Equal(data, want) {
				t.Errorf("expected %d bytes, got %d", len(want), len(data))
			}
		})
	}
}

func TestReadAllEmpty(t *testing.T) {
	src := &sizedStream{size: 0}
	data, ok := filelike.ReadAll(src)
	if !ok {
		t.Fatal("expected ReadAll to succeed")
	}
	if len(data) != 0 {
		t.Errorf("expected empty result, got %d bytes", len(data))
	}
	if src.reads != 0 {
		t.Errorf("expected no reads, got %d", src.reads)
	}
}

func TestReadAllRejectsOversize(t *testing.T) {
	for _, size := range []int64{filelike.MaxBufferSize, filelike.MaxBufferSize + 1, 1 << 40} {
		src := &sizedStream{size: size}

		data, ok := filelike.ReadAll(src)
		if ok {
			t.Errorf("size %d: expected ReadAll to fail", size)
		}
		if len(data) != 0 {
			t.Errorf("size %d: expected empty result, got %d bytes", size, len(data))
		}
		if src.reads != 0 {
			t.Errorf("size %d: expected no reads, got %d", size, src.reads)
		}

		_, err := filelike.NewCopier().ReadAll(src)
		if !filelike.IsTooLarge(err) {
			t.Errorf("size %d: expected ErrTooLarge, got %v", size, err)
		}
	}
}

func TestReadAllCustomLimit(t *testing.T) {
	c := filelike.NewCopier(filelike.WithMaxBufferSize(10))

	if _, err := c.ReadAll(memory.NewFromBytes(pattern(9))); err != nil {
		t.Errorf("expected 9 bytes to fit under a limit of 10, got %v", err)
	}
	if _, err := c.ReadAll(memory.NewFromBytes(pattern(10))); !filelike.IsTooLarge(err) {
		t.Errorf("expected ErrTooLarge at the limit, got %v", err)
	}
}

func TestReadAllUnknownSize(t *testing.T) {
	want := pattern(20000)
	src := newChunkedSource(want, 3000)
	src.size = filelike.SizeUnknown

	data, ok := filelike.ReadAll(src)
	if !ok {
		t.Fatal("expected ReadAll to succeed with unknown size")
	}
	if !bytes.Equal(data, want) {
		t.Errorf("expected %d bytes, got %d", len(want), len(data))
	}
}

func TestReadAllTruncated(t *testing.T) {
	t.Run("source shorter than reported", func(t *testing.T) {
		src := newChunkedSource(pattern(100), 0)
		src.size = 200

		data, ok := filelike.ReadAll(src)
		if ok {
			t.Fatal("expected ReadAll to fail")
		}
		if len(data) != 100 {
			t.Errorf("expected the 100 bytes read so far, got %d", len(data))
		}

		src = newChunkedSource(pattern(100), 0)
		src.size = 200
		_, err := filelike.NewCopier().ReadAll(src)
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("expected ErrUnexpectedEOF, got %v", err)
		}
	})

	t.Run("source longer than reported", func(t *testing.T) {
		src := newChunkedSource(pattern(100), 0)
		src.size = 50

		_, err := filelike.NewCopier().ReadAll(src)
		if !errors.Is(err, filelike.ErrSizeMismatch) {
			t.Errorf("expected ErrSizeMismatch, got %v", err)
		}
	})

	t.Run("read error stops early", func(t *testing.T) {
		src := newChunkedSource(pattern(30000), 0)
		src.failAfter = 2

		data, ok := filelike.ReadAll(src)
		if ok {
			t.Fatal("expected ReadAll to fail")
		}
		if len(data) != filelike.DefaultBlockSize {
			t.Errorf("expected one block, got %d bytes", len(data))
		}
	})

	t.Run("read error with unknown size succeeds", func(t *testing.T) {
		src := newChunkedSource(pattern(30000), 0)
		src.size = filelike.SizeUnknown
		src.failAfter = 2

		data, ok := filelike.ReadAll(src)
		if !ok {
			t.Fatal("expected ReadAll to report success for unknown size")
		}
		if len(data) != filelike.DefaultBlockSize {
			t.Errorf("expected one block, got %d bytes", len(data))
		}
	})
}

func TestReadAllFromCursor(t *testing.T) {
	s := memory.NewFromBytes([]byte("abcdef"))
	_, _ = s.Read(make([]byte, 2))

	// Size ignores the cursor, so a stream read part way is short
	data, ok := filelike.ReadAll(s)
	if ok {
		t.Error("expected size mismatch when starting mid-stream")
	}
	if string(data) != "cdef" {
		t.Errorf("expected 'cdef', got '%s'", data)
	}
}

func TestReadAllNil(t *testing.T) {
	if _, ok := filelike.ReadAll(nil); ok {
		t.Error("expected ReadAll(nil) to fail")
	}

	var typed *memory.Stream
	_, err := filelike.NewCopier().ReadAll(typed)
	if !errors.Is(err, filelike.ErrNilStream) {
		t.Errorf("expected ErrNilStream for typed nil, got %v", err)
	}
}
