package filelike

import (
	"reflect"
	"sync/atomic"
)

// Copier runs ReadAll and SendFile with a fixed set of tuning options.
// A Copier holds no per-transfer state and may be shared between
// goroutines, as long as each transfer uses its own streams.
type Copier struct {
	opts Options
}

// defaultCopier backs the package-level ReadAll, SendFile and Checksum.
// Init and Reset swap it while transfers may be running.
var defaultCopier atomic.Pointer[Copier]

func init() {
	defaultCopier.Store(NewCopier())
}

// NewCopier creates a Copier. Invalid option values fall back to defaults.
func NewCopier(opts ...Option) *Copier {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options.normalize()

	return &Copier{opts: options}
}

// Options returns the effective options of the Copier
func (c *Copier) Options() Options {
	return c.opts
}

// isNil reports whether f is nil or an interface holding a nil pointer,
// which would panic on the first method call.
func isNil(f FileLike) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
