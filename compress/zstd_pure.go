//go:build !(cgo && gozstd)

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return dec.IOReadCloser(), nil
}
