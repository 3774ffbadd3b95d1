package mtx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/arloliu/mtxconv/endian"
	"github.com/arloliu/mtxconv/errs"
	"github.com/arloliu/mtxconv/internal/hash"
	"github.com/arloliu/mtxconv/matrix"
	"github.com/arloliu/mtxconv/section"
	"github.com/arloliu/mtxconv/zone"
)

// readChunk is the number of elements decoded per read. Sections are read
// incrementally so a corrupt size field fails on the short read instead of
// allocating the declared size up front.
const readChunk = 64 * 1024

// File is a decoded MTX container.
type File struct {
	Header section.Header
	Zones  zone.Set
	Matrix *matrix.Dense
	// Checksum is the xxHash64 of the uncompressed container bytes.
	Checksum uint64
}

// Summary describes a File for display.
type Summary struct {
	ZoneCount int
	FirstZone int32
	LastZone  int32
	Sum       float64
	NonZero   int
}

// Summary computes cell statistics of f. NaN cells count as non-zero and make Sum NaN.
func (f *File) Summary() Summary {
	s := Summary{ZoneCount: f.Zones.Len()}
	if s.ZoneCount > 0 {
		s.FirstZone = f.Zones[0]
		s.LastZone = f.Zones[s.ZoneCount-1]
	}

	for _, v := range f.Matrix.Values() {
		s.Sum += float64(v)
		if v != 0 {
			s.NonZero++
		}
	}

	return s
}

// Decoder reads one MTX container from an uncompressed stream.
//
// Note: A Decoder is not reusable. Create a new one per container.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads and validates a complete container.
//
// Returns:
//   - *File: Decoded header, zones and matrix
//   - error: ErrInvalidHeaderSize for a short header, a header validation error,
//     io.ErrUnexpectedEOF for a truncated payload, ErrAxisMismatch when the two
//     zone axes differ, or ErrTrailingData when bytes follow the matrix
func (d *Decoder) Decode() (*File, error) {
	digest := hash.NewCountingWriter(nil)
	r := io.TeeReader(d.r, digest)

	var hdr [section.HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeaderSize, err)
		}

		return nil, fmt.Errorf("read header: %w", err)
	}

	header, err := section.ParseHeader(hdr[:])
	if err != nil {
		return nil, err
	}

	n := header.ZoneCount()
	var scratch []byte

	origin, scratch, err := readValues(r, n, scratch, decodeInt32)
	if err != nil {
		return nil, fmt.Errorf("read origin zones: %w", err)
	}
	destination, scratch, err := readValues(r, n, scratch, decodeInt32)
	if err != nil {
		return nil, fmt.Errorf("read destination zones: %w", err)
	}
	if !slices.Equal(origin, destination) {
		return nil, errs.ErrAxisMismatch
	}

	cells, scratch, err := readValues(r, n*n, scratch, math.Float32frombits)
	if err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}

	if k, _ := io.ReadFull(r, scratch[:1]); k > 0 {
		return nil, errs.ErrTrailingData
	}

	m, err := matrix.FromValues(n, cells)
	if err != nil {
		return nil, err
	}

	return &File{
		Header:   header,
		Zones:    zone.Set(origin),
		Matrix:   m,
		Checksum: digest.Sum64(),
	}, nil
}

func decodeInt32(u uint32) int32 {
	return int32(u)
}

// readValues reads count little-endian 4-byte values.
func readValues[T int32 | float32](r io.Reader, count int, scratch []byte, decode func(uint32) T) ([]T, []byte, error) {
	engine := endian.GetLittleEndianEngine()
	if cap(scratch) < readChunk*4 {
		scratch = make([]byte, 0, readChunk*4)
	}

	values := make([]T, 0, min(count, readChunk))
	for len(values) < count {
		k := min(readChunk, count-len(values))
		chunk := scratch[:k*4]
		if _, err := io.ReadFull(r, chunk); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return nil, scratch, err
		}

		for i := 0; i < len(chunk); i += 4 {
			values = append(values, decode(engine.Uint32(chunk[i:])))
		}
	}

	return values, scratch, nil
}
