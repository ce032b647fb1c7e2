package filelike

import (
	"crypto/md5"  //nolint:gosec // MD5 used for checksum verification, not security
	"crypto/sha1" //nolint:gosec // SHA1 used for checksum verification, not security
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ChecksumAlgorithm represents a supported checksum algorithm
type ChecksumAlgorithm string

const (
	// ChecksumMD5 is the MD5 hash algorithm (128-bit, fast but not cryptographically secure)
	ChecksumMD5 ChecksumAlgorithm = "md5"
	// ChecksumSHA1 is the SHA-1 hash algorithm (160-bit, legacy)
	ChecksumSHA1 ChecksumAlgorithm = "sha1"
	// ChecksumSHA256 is the SHA-256 hash algorithm (256-bit, recommended)
	ChecksumSHA256 ChecksumAlgorithm = "sha256"
	// ChecksumSHA512 is the SHA-512 hash algorithm (512-bit)
	ChecksumSHA512 ChecksumAlgorithm = "sha512"
	// ChecksumCRC32 is the CRC32 checksum (32-bit, for integrity only)
	ChecksumCRC32 ChecksumAlgorithm = "crc32"
	// ChecksumXXHash is the xxHash algorithm (64-bit, extremely fast)
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
)

// NewHasher creates a new hash.Hash for the given algorithm.
// Returns an error if the algorithm is not supported.
func NewHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case ChecksumMD5:
		return md5.New(), nil //nolint:gosec // MD5 used for checksum verification, not security
	case ChecksumSHA1:
		return sha1.New(), nil //nolint:gosec // SHA1 used for checksum verification, not security
	case ChecksumSHA256:
		return sha256.New(), nil
	case ChecksumSHA512:
		return sha512.New(), nil
	case ChecksumCRC32:
		return crc32.NewIEEE(), nil
	case ChecksumXXHash:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported checksum algorithm: %s", ErrNotSupported, algorithm)
	}
}

// hashSink is a write-only stream that feeds every byte into a writer,
// usually one or more hashers.
type hashSink struct {
	w       io.Writer
	written int64
}

// NewHashSink returns a write-only FileLike that feeds every written byte to
// all of the given hashes. Reading from it fails with ErrNotSupported; Size
// reports the number of bytes written so far.
func NewHashSink(hashes ...hash.Hash) FileLike {
	writers := make([]io.Writer, 0, len(hashes))
	for _, h := range hashes {
		writers = append(writers, h)
	}
	return &hashSink{w: io.MultiWriter(writers...)}
}

func (s *hashSink) Read(p []byte) (int, error) {
	return 0, &OpError{Op: "read", Path: "hash sink", Err: ErrNotSupported}
}

func (s *hashSink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.written += int64(n)
	return n, err
}

func (s *hashSink) Close() error { return nil }

func (s *hashSink) Size() int64 { return s.written }

// Checksum drains f and returns its hex-encoded checksum, using the default
// tuning. It fails if f ends before its reported size.
func Checksum(f FileLike, algorithm ChecksumAlgorithm) (string, error) {
	return defaultCopier.Load().Checksum(f, algorithm)
}

// Checksums drains f once and returns a checksum for each algorithm.
func Checksums(f FileLike, algorithms []ChecksumAlgorithm) (map[ChecksumAlgorithm]string, error) {
	return defaultCopier.Load().Checksums(f, algorithms)
}

// Checksum drains f through the copy engine and returns its hex-encoded checksum
func (c *Copier) Checksum(f FileLike, algorithm ChecksumAlgorithm) (string, error) {
	sums, err := c.Checksums(f, []ChecksumAlgorithm{algorithm})
	if err != nil {
		return "", err
	}
	return sums[algorithm], nil
}

// Checksums drains f through the copy engine and calculates multiple
// checksums in a single pass. Returns a map of algorithm to hex-encoded checksum.
func (c *Copier) Checksums(f FileLike, algorithms []ChecksumAlgorithm) (map[ChecksumAlgorithm]string, error) {
	if len(algorithms) == 0 {
		return nil, fmt.Errorf("no algorithms specified")
	}

	hashers := make(map[ChecksumAlgorithm]hash.Hash, len(algorithms))
	list := make([]hash.Hash, 0, len(algorithms))
	for _, algo := range algorithms {
		h, err := NewHasher(algo)
		if err != nil {
			return nil, err
		}
		hashers[algo] = h
		list = append(list, h)
	}

	if _, err := c.SendFile(f, NewHashSink(list...), SizeUnknown); err != nil {
		return nil, fmt.Errorf("failed to calculate checksums: %w", err)
	}

	results := make(map[ChecksumAlgorithm]string, len(algorithms))
	for algo, h := range hashers {
		results[algo] = hex.EncodeToString(h.Sum(nil))
	}
	return results, nil
}

// teeSink forwards writes to dst and hashes exactly the bytes dst accepted.
type teeSink struct {
	dst FileLike
	h   hash.Hash
}

func (t *teeSink) Read(p []byte) (int, error) { return t.dst.Read(p) }

func (t *teeSink) Write(p []byte) (int, error) {
	n, err := t.dst.Write(p)
	if n > 0 && n <= len(p) {
		t.h.Write(p[:n])
	}
	return n, err
}

func (t *teeSink) Close() error { return t.dst.Close() }

func (t *teeSink) Size() int64 { return t.dst.Size() }

// CopyVerified copies like SendFile and returns the checksum of the bytes
// dst actually accepted. Callers compare it with a known checksum of the
// source to detect corruption in transit.
func (c *Copier) CopyVerified(src, dst FileLike, size int64, algorithm ChecksumAlgorithm) (int64, string, error) {
	if isNil(dst) {
		return 0, "", ErrNilStream
	}
	h, err := NewHasher(algorithm)
	if err != nil {
		return 0, "", err
	}

	n, err := c.SendFile(src, &teeSink{dst: dst, h: h}, size)
	if err != nil {
		return n, "", err
	}
	return n, hex.EncodeToString(h.Sum(nil)), nil
}
