// Package filelike provides backend-agnostic byte streams and a bounded-memory
// copy engine that moves bytes between any two of them.
//
// A [FileLike] is an ordered byte sequence with sequential Read, Write, Close
// and Size. Callers hold the interface, never a concrete backend, so the same
// code copies between disk, memory, pipes or anything else that implements it.
//
// # Storage Backends
//
// Backends live in driver subpackages and register themselves on import:
//
//   - File-backed streams (github.com/gobeaver/filelike/driver/local)
//   - In-memory streams (github.com/gobeaver/filelike/driver/memory)
//
// The local driver wraps any open handle, including one from an afero
// filesystem. The memory driver grows on write and zero-fills any gap
// between the old end and the write position.
//
// # Basic Usage
//
//	src, err := local.Open("input.bin", os.O_RDONLY, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	dst := memory.New()
//
//	// Copy everything the source reports
//	ok := filelike.SendFile(src, dst, -1)
//
//	// Or buffer a whole stream at once
//	data, ok := filelike.ReadAll(src)
//
// # Copy Engine
//
// [SendFile] reads one block at a time into a holding buffer and writes from
// it, so a slow or partially accepting destination never forces the engine
// to hold more than [DefaultHighWaterMark] bytes. A short write is progress:
// the remainder stays queued and is written on the next iteration. A write
// that accepts nothing is a failure.
//
// A [Copier] carries tuning and reports why a transfer failed:
//
//	c := filelike.NewCopier(
//	    filelike.WithBlockSize(64*1024),
//	    filelike.WithHighWaterMark(256*1024),
//	    filelike.WithProgress(func(done, total int64) {
//	        fmt.Printf("%d/%d\n", done, total)
//	    }),
//	)
//	n, err := c.SendFile(src, dst, -1)
//
// # Optional Capabilities
//
// Backends may implement capability interfaces. Use type assertions:
//
//	if s, ok := f.(filelike.Snapshotter); ok {
//	    data := s.Bytes()
//	}
//
// # Decorators
//
//	// Refuse all writes
//	ro := filelike.NewReadOnly(f)
//
//	// Stop reading after n bytes
//	head := filelike.NewLimited(f, 512)
//
//	// Adapt plain io types
//	in := filelike.NewReaderStream(os.Stdin, filelike.SizeUnknown)
//	out := filelike.NewWriterStream(&buf)
//
// # Checksums
//
//	sum, err := filelike.Checksum(f, filelike.ChecksumXXHash)
//	sums, err := filelike.Checksums(f, []filelike.ChecksumAlgorithm{
//	    filelike.ChecksumSHA256, filelike.ChecksumCRC32,
//	})
//
// # Error Handling
//
// The package-level functions report success as a bool. The [Copier]
// methods return errors built from sentinels wrapped in [OpError]:
//
//	_, err := c.SendFile(src, dst, -1)
//	if filelike.IsWriteRefused(err) {
//	    // Destination accepted nothing
//	}
//
//	var opErr *filelike.OpError
//	if errors.As(err, &opErr) {
//	    fmt.Printf("Operation: %s\n", opErr.Op)
//	}
//
// # Configuration
//
// Tuning and the default driver can be loaded from environment variables
// with the FILELIKE_ prefix, or set through the [Config] struct:
//
//	cfg := &filelike.Config{
//	    Driver:        "local",
//	    LocalBasePath: "/data",
//	    BlockSize:     8192,
//	    HighWaterMark: 16384,
//	    MaxBufferSize: filelike.MaxBufferSize,
//	}
//	c, err := filelike.New(cfg)
//	f, err := filelike.Open(cfg, "report.csv", os.O_RDONLY)
//
// Streams are not safe for concurrent use. A [Copier] may be shared, as long
// as each transfer uses its own streams.
package filelike
