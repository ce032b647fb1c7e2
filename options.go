package filelike

// Default transfer tuning. The copy engine reads at most one block at a time
// and holds at most HighWaterMark bytes between read and write, so peak
// memory per transfer is bounded by roughly two blocks.
const (
	DefaultBlockSize     = 8 * 1024
	DefaultHighWaterMark = 16 * 1024
)

// ProgressFunc is called after every successful write during SendFile.
// totalBytes is SizeUnknown when the transfer has no fixed target.
type ProgressFunc func(bytesTransferred int64, totalBytes int64)

// Option configures a Copier
type Option func(*Options)

// Options contains the tuning knobs of a Copier
type Options struct {
	// BlockSize is the size of one read (and of ReadAll's scratch block)
	BlockSize int

	// HighWaterMark caps the holding buffer between read-ahead and
	// write-behind. It is never smaller than BlockSize.
	HighWaterMark int

	// MaxBufferSize is the size at or above which ReadAll refuses a stream
	MaxBufferSize int64

	// Progress is an optional transfer progress callback
	Progress ProgressFunc
}

// WithBlockSize sets the read block size
func WithBlockSize(size int) Option {
	return func(o *Options) {
		o.BlockSize = size
	}
}

// WithHighWaterMark sets the holding buffer ceiling
func WithHighWaterMark(size int) Option {
	return func(o *Options) {
		o.HighWaterMark = size
	}
}

// WithMaxBufferSize sets the ReadAll size limit
func WithMaxBufferSize(size int64) Option {
	return func(o *Options) {
		o.MaxBufferSize = size
	}
}

// WithProgress sets a progress callback for SendFile
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

func defaultOptions() Options {
	return Options{
		BlockSize:     DefaultBlockSize,
		HighWaterMark: DefaultHighWaterMark,
		MaxBufferSize: MaxBufferSize,
	}
}

// normalize replaces unusable values with defaults so that
// 0 < BlockSize <= HighWaterMark always holds.
func (o *Options) normalize() {
	if o.BlockSize <= 0 {
		o.BlockSize = DefaultBlockSize
	}
	if o.HighWaterMark <= 0 {
		o.HighWaterMark = 2 * o.BlockSize
	}
	if o.HighWaterMark < o.BlockSize {
		o.HighWaterMark = o.BlockSize
	}
	if o.MaxBufferSize <= 0 {
		o.MaxBufferSize = MaxBufferSize
	}
}
