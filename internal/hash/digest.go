// Package hash computes xxHash64 digests of MTX containers.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// CountingWriter forwards writes to an underlying writer while hashing and
// counting every byte that was accepted.
type CountingWriter struct {
	w      io.Writer
	digest *xxhash.Digest
	n      int64
}

// NewCountingWriter wraps w. A nil w only hashes and counts.
func NewCountingWriter(w io.Writer) *CountingWriter {
	if w == nil {
		w = io.Discard
	}

	return &CountingWriter{w: w, digest: xxhash.New()}
}

// Write implements io.Writer.
func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if n > 0 {
		_, _ = c.digest.Write(p[:n])
		c.n += int64(n)
	}

	return n, err
}

// Count returns the number of bytes written so far.
func (c *CountingWriter) Count() int64 {
	return c.n
}

// Sum64 returns the xxHash64 of the bytes written so far.
func (c *CountingWriter) Sum64() uint64 {
	return c.digest.Sum64()
}
