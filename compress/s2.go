package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

func newS2Writer(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}

func newS2Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}
