//go:build cgo && gozstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// gozstdWriter releases the cgo encoder once the frame is finished.
type gozstdWriter struct {
	*gozstd.Writer
}

func (w gozstdWriter) Close() error {
	defer w.Release()

	return w.Writer.Close()
}

type gozstdReader struct {
	*gozstd.Reader
}

func (r gozstdReader) Close() error {
	r.Release()

	return nil
}

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return gozstdWriter{Writer: gozstd.NewWriterLevel(w, gozstd.DefaultCompressionLevel)}, nil
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	return gozstdReader{Reader: gozstd.NewReader(r)}, nil
}
