package mtx

import (
	"fmt"
	"io"

	"github.com/arloliu/mtxconv/endian"
	"github.com/arloliu/mtxconv/errs"
	"github.com/arloliu/mtxconv/internal/pool"
	"github.com/arloliu/mtxconv/matrix"
	"github.com/arloliu/mtxconv/section"
	"github.com/arloliu/mtxconv/zone"
)

// slabCells is the number of matrix cells converted and written per Write call.
const slabCells = 1 << 20

// Encoder writes MTX containers to an output stream.
//
// Note: An Encoder is not safe for concurrent use.
type Encoder struct {
	w    io.Writer
	conv *endian.Converter
}

// NewEncoder creates an Encoder writing to w.
//
// Parameters:
//   - w: Output stream, not closed by the encoder
//   - opts: Encoder options (WithHostOrder, WithParallelism)
//
// Returns:
//   - *Encoder: Encoder ready to write containers
//   - error: Invalid option
func NewEncoder(w io.Writer, opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newEncoder(w, cfg), nil
}

func newEncoder(w io.Writer, cfg *Config) *Encoder {
	return &Encoder{
		w:    w,
		conv: endian.NewConverter(cfg.host, cfg.parallelism),
	}
}

// Encode writes the header, both zone axes and the matrix of one container.
//
// The matrix must be zones.Len() × zones.Len(), otherwise ErrMatrixSizeMismatch
// is returned and nothing is written. A zone count beyond math.MaxInt32 is
// rejected with ErrDimensionMismatch. Write errors are returned as they occur;
// the stream then holds a partial container.
func (e *Encoder) Encode(zones zone.Set, m *matrix.Dense) error {
	n := zones.Len()
	if err := section.CheckZoneCount(n); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("%w: nil matrix for %d zones", errs.ErrMatrixSizeMismatch, n)
	}
	if m.N() != n || len(m.Values()) != n*n {
		return fmt.Errorf("%w: %d cells for %d zones", errs.ErrMatrixSizeMismatch, len(m.Values()), n)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.B = section.NewHeader(n).AppendTo(buf.B[:0])
	if _, err := e.w.Write(buf.B); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	axis := e.conv.Int32s(zones, buf.B[:0])
	e.keepScratch(buf, axis)
	for _, name := range [...]string{"origin", "destination"} {
		if _, err := e.w.Write(axis); err != nil {
			return fmt.Errorf("write %s zones: %w", name, err)
		}
	}

	cells := m.Values()
	for start := 0; start < len(cells); start += slabCells {
		end := min(start+slabCells, len(cells))

		out := e.conv.Float32s(cells[start:end], buf.B[:0])
		e.keepScratch(buf, out)
		if _, err := e.w.Write(out); err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}
	}

	return nil
}

// keepScratch retains a buffer grown by the converter so the next section
// reuses it. Reinterpreted slices alias caller memory and are never retained.
func (e *Encoder) keepScratch(buf *pool.ByteBuffer, out []byte) {
	if !e.conv.IsRaw() && cap(out) > buf.Cap() {
		buf.B = out[:0]
	}
}
