package local

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobeaver/filelike"
	"github.com/spf13/afero"
)

// DefaultPerm is the permission used when the registered driver creates files
const DefaultPerm os.FileMode = 0o644

// File is the handle a Stream delegates to. *os.File and afero.File both
// satisfy it.
type File interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
	Stat() (os.FileInfo, error)
}

// Stream provides a file-backed implementation of filelike.FileLike.
// It adds no buffering, retries or error translation: every call goes
// straight to the handle.
type Stream struct {
	f      File
	name   string
	closed bool
}

var _ filelike.FileLike = (*Stream)(nil)

// New wraps an already open handle. The handle is shared, not owned: the
// caller may keep using it, and must keep it open for as long as the
// Stream is in use. The handle must be open in a mode that matches the
// calls made on the Stream; a mismatch surfaces as a backend error.
func New(f File) *Stream {
	s := &Stream{f: f}
	if named, ok := f.(interface{ Name() string }); ok {
		s.name = named.Name()
	}
	return s
}

// Open opens the named file with os.OpenFile and wraps it. Closing the
// Stream closes the file.
func Open(name string, flag int, perm os.FileMode) (*Stream, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, &filelike.OpError{Op: "open", Path: name, Err: err}
	}
	return New(f), nil
}

// OpenFs opens the named file on any afero filesystem and wraps it.
func OpenFs(fs afero.Fs, name string, flag int, perm os.FileMode) (*Stream, error) {
	f, err := fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, &filelike.OpError{Op: "open", Path: name, Err: err}
	}
	return New(f), nil
}

// OpenUnder opens name relative to root, refusing paths that escape root.
func OpenUnder(root, name string, flag int, perm os.FileMode) (*Stream, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &filelike.OpError{Op: "open", Path: name, Err: err}
	}

	fullPath := filepath.Join(absRoot, filepath.Clean(name))
	if !isPathUnderRoot(absRoot, fullPath) {
		return nil, &filelike.OpError{
			Op:   "open",
			Path: name,
			Err:  filelike.ErrNotAllowed,
		}
	}

	return Open(fullPath, flag, perm)
}

// Stdin wraps the process standard input. Its size is usually unknown.
func Stdin() *Stream {
	return New(os.Stdin)
}

// Stdout wraps the process standard output.
func Stdout() *Stream {
	return New(os.Stdout)
}

// Name returns the handle's name, if it has one
func (s *Stream) Name() string {
	return s.name
}

// Read implements filelike.FileLike
func (s *Stream) Read(p []byte) (int, error) {
	return s.f.Read(p)
}

// Write implements filelike.FileLike
func (s *Stream) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

// Close implements filelike.FileLike. Only the first call reaches the handle.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.f.Close()
}

// Size implements filelike.FileLike. Only regular files have a size;
// pipes, sockets and devices report filelike.SizeUnknown, as does a handle
// whose Stat fails.
func (s *Stream) Size() int64 {
	info, err := s.f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return filelike.SizeUnknown
	}
	return info.Size()
}

// isPathUnderRoot checks if a path is under a given root directory
func isPathUnderRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	return !filepath.IsAbs(rel) && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
