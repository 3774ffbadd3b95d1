package compress

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/mtxconv/errs"
	"github.com/arloliu/mtxconv/format"
)

// WriterFactory wraps an output stream with a compressing writer.
type WriterFactory func(w io.Writer) (io.WriteCloser, error)

// ReaderFactory wraps an input stream with a decompressing reader.
type ReaderFactory func(r io.Reader) (io.ReadCloser, error)

type transport struct {
	suffix    string
	newWriter WriterFactory
	newReader ReaderFactory
}

var transports = map[format.CompressionType]transport{
	format.CompressionNone: {suffix: "", newWriter: newNoOpWriter, newReader: newNoOpReader},
	format.CompressionGzip: {suffix: ".gz", newWriter: newGzipWriter, newReader: newGzipReader},
	format.CompressionZstd: {suffix: ".zst", newWriter: newZstdWriter, newReader: newZstdReader},
	format.CompressionS2:   {suffix: ".s2", newWriter: newS2Writer, newReader: newS2Reader},
	format.CompressionLZ4:  {suffix: ".lz4", newWriter: newLZ4Writer, newReader: newLZ4Reader},
	format.CompressionXZ:   {suffix: ".xz", newWriter: newXZWriter, newReader: newXZReader},
}

// ForPath returns the compression type selected by the suffix of path.
//
// Suffix matching is case-insensitive. Paths without a recognized suffix
// select format.CompressionNone.
func ForPath(path string) format.CompressionType {
	lower := strings.ToLower(path)
	for ct, tr := range transports {
		if tr.suffix != "" && strings.HasSuffix(lower, tr.suffix) {
			return ct
		}
	}

	return format.CompressionNone
}

// Suffix returns the file suffix associated with a compression type.
//
// Returns an empty string for format.CompressionNone and unknown types.
func Suffix(ct format.CompressionType) string {
	return transports[ct].suffix
}

// NewWriter wraps w with the compressing writer for ct.
//
// Parameters:
//   - ct: Compression type, usually from ForPath
//   - w: Destination stream, not closed by the returned writer
//
// Returns:
//   - io.WriteCloser: Writer whose Close flushes all compressed data to w
//   - error: ErrUnsupportedCompression for unknown types, or a library error
func NewWriter(ct format.CompressionType, w io.Writer) (io.WriteCloser, error) {
	tr, ok := transports[ct]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, ct)
	}

	cw, err := tr.newWriter(w)
	if err != nil {
		return nil, fmt.Errorf("create %s writer: %w", ct, err)
	}

	return cw, nil
}

// NewReader wraps r with the decompressing reader for ct.
//
// Parameters:
//   - ct: Compression type, usually from ForPath
//   - r: Source stream, not closed by the returned reader
//
// Returns:
//   - io.ReadCloser: Reader yielding the uncompressed bytes
//   - error: ErrUnsupportedCompression for unknown types, or a library error
func NewReader(ct format.CompressionType, r io.Reader) (io.ReadCloser, error) {
	tr, ok := transports[ct]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, ct)
	}

	cr, err := tr.newReader(r)
	if err != nil {
		return nil, fmt.Errorf("create %s reader: %w", ct, err)
	}

	return cr, nil
}
