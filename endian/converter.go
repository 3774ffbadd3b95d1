package endian

import (
	"encoding/binary"
	"math"
	"runtime"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of elements converted by one goroutine on the
// per-element path. Slices shorter than this are converted sequentially.
const DefaultChunkSize = 64 * 1024

// Converter writes int32 and float32 slices as little-endian bytes.
type Converter struct {
	raw         bool
	parallelism int
	chunkSize   int
}

// NewConverter creates a Converter for a host with the given byte order.
//
// Passing binary.BigEndian on a little-endian machine forces the per-element
// path, which is how the portable path is exercised on common hardware.
// Passing binary.LittleEndian on a big-endian machine never enables the
// reinterpretation path, since the memory would not hold little-endian bytes.
//
// Parameters:
//   - host: Byte order of the host (usually CheckEndianness())
//   - parallelism: Maximum goroutines for the per-element path (<= 0 means GOMAXPROCS)
//
// Returns:
//   - *Converter: Immutable converter, safe for concurrent use
func NewConverter(host binary.ByteOrder, parallelism int) *Converter {
	if host == nil {
		host = CheckEndianness()
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	return &Converter{
		raw:         host == binary.LittleEndian && IsNativeLittleEndian(),
		parallelism: parallelism,
		chunkSize:   DefaultChunkSize,
	}
}

// withChunkSize returns a copy of the converter using the given chunk size
// for the per-element path. Non-positive sizes are ignored.
func (c *Converter) withChunkSize(n int) *Converter {
	cp := *c
	if n > 0 {
		cp.chunkSize = n
	}

	return &cp
}

// IsRaw reports whether slices are reinterpreted in place instead of converted.
func (c *Converter) IsRaw() bool {
	return c.raw
}

// Int32s returns the little-endian encoding of values.
//
// On the reinterpretation path the returned slice aliases the memory of values
// and scratch is not touched. Otherwise the bytes are written into scratch,
// which is grown when its capacity is below 4*len(values).
func (c *Converter) Int32s(values []int32, scratch []byte) []byte {
	if c.raw {
		return rawBytes(values)
	}

	return convert(c, values, scratch, func(v int32) uint32 { return uint32(v) })
}

// Float32s returns the little-endian IEEE-754 encoding of values.
//
// Aliasing and scratch rules are the same as for Int32s.
func (c *Converter) Float32s(values []float32, scratch []byte) []byte {
	if c.raw {
		return rawBytes(values)
	}

	return convert(c, values, scratch, math.Float32bits)
}

func rawBytes[T int32 | float32](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), len(values)*4)
}

func convert[T int32 | float32](c *Converter, values []T, scratch []byte, bits func(T) uint32) []byte {
	size := len(values) * 4
	if cap(scratch) < size {
		scratch = make([]byte, size)
	}
	dst := scratch[:size]

	if len(values) <= c.chunkSize || c.parallelism == 1 {
		putChunk(dst, values, bits)
		return dst
	}

	var g errgroup.Group
	g.SetLimit(c.parallelism)

	for start := 0; start < len(values); start += c.chunkSize {
		end := min(start+c.chunkSize, len(values))
		g.Go(func() error {
			putChunk(dst[start*4:end*4], values[start:end], bits)
			return nil
		})
	}
	_ = g.Wait()

	return dst
}

func putChunk[T int32 | float32](dst []byte, values []T, bits func(T) uint32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(dst[i*4:], bits(v))
	}
}
