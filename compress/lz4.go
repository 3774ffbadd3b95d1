package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// newLZ4Writer uses the LZ4 frame format, so the output is readable by the lz4 command line tool.
func newLZ4Writer(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func newLZ4Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
