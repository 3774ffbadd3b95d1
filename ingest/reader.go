package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/arloliu/mtxconv/format"
	"github.com/arloliu/mtxconv/internal/options"
)

// sparseFieldCount is the first-row field count that selects the sparse layout.
const sparseFieldCount = 3

// Stats counts what the reader saw and what it dropped.
type Stats struct {
	// Records is the number of CSV records read, including a rectangular header row.
	Records int
	// DroppedRows counts rows skipped because of CSV syntax errors, an
	// unexpected field count or an unparseable zone id or value.
	DroppedRows int
	// DroppedCells counts rectangular cells that did not parse or had no destination.
	DroppedCells int
	// ZeroCells counts rectangular cells suppressed because their value is zero.
	ZeroCells int
}

// Result is the outcome of reading one input.
type Result struct {
	Layout  format.Layout
	Triples []format.Triple
	Stats   Stats
}

// Detect returns the layout selected by the first row of an input.
func Detect(firstRow []string) format.Layout {
	switch len(firstRow) {
	case 0:
		return format.LayoutUnknown
	case sparseFieldCount:
		return format.LayoutSparse
	default:
		return format.LayoutRectangular
	}
}

// ReadFile reads triples from the CSV file at path.
//
// Failing to open the file is returned as an error. Malformed rows are not.
func ReadFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read reads triples from CSV data.
//
// The layout is detected from the first record. An empty input, or one whose
// first record is not valid CSV, yields an empty Result with LayoutUnknown.
func Read(r io.Reader, opts ...Option) (*Result, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	res := &Result{}
	src := newRowSource(r, cfg, &res.Stats)

	first, err := src.first()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if first == nil {
		return res, nil
	}

	res.Layout = Detect(first)

	var triples iter.Seq[format.Triple]
	if res.Layout == format.LayoutSparse {
		triples = sparseTriples(prepend(first, src.rows()), &res.Stats)
	} else {
		triples = rectangularTriples(first, src.rows(), &res.Stats)
	}

	res.Triples = slices.Collect(triples)
	if src.err != nil {
		return nil, fmt.Errorf("read input: %w", src.err)
	}

	return res, nil
}

// rowSource yields well-formed CSV records and records the first fatal error.
type rowSource struct {
	r     *csv.Reader
	stats *Stats
	err   error
}

func newRowSource(r io.Reader, cfg *Config, stats *Stats) *rowSource {
	cr := csv.NewReader(skipBOM(r))
	cr.Comma = cfg.comma
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	if cfg.flexible {
		cr.FieldsPerRecord = -1
	}

	return &rowSource{r: cr, stats: stats}
}

// first reads the record that decides the layout. It returns a copy, since
// the reader reuses its record buffer.
func (s *rowSource) first() ([]string, error) {
	rec, err := s.r.Read()
	if err == nil {
		s.stats.Records++
		return slices.Clone(rec), nil
	}

	var pe *csv.ParseError
	if errors.Is(err, io.EOF) || errors.As(err, &pe) {
		return nil, nil
	}

	return nil, err
}

func (s *rowSource) rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for {
			rec, err := s.r.Read()
			if err != nil {
				var pe *csv.ParseError
				switch {
				case errors.Is(err, io.EOF):
					return
				case errors.As(err, &pe):
					s.stats.Records++
					s.stats.DroppedRows++

					continue
				default:
					s.err = err
					return
				}
			}

			s.stats.Records++
			if !yield(rec) {
				return
			}
		}
	}
}

// utf8BOM is the byte order mark some spreadsheet exports put in front of the first field.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops a leading UTF-8 byte order mark from r.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	return br
}

func prepend(first []string, rest iter.Seq[[]string]) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if !yield(first) {
			return
		}
		for rec := range rest {
			if !yield(rec) {
				return
			}
		}
	}
}
