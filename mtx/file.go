package mtx

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/arloliu/mtxconv/compress"
	"github.com/arloliu/mtxconv/format"
	"github.com/arloliu/mtxconv/internal/hash"
	"github.com/arloliu/mtxconv/matrix"
	"github.com/arloliu/mtxconv/zone"
)

const ioBufferSize = 256 * 1024

// WriteStats describes a written container.
type WriteStats struct {
	// Compression is the transport selected from the output path.
	Compression format.CompressionType
	// Bytes is the uncompressed container size.
	Bytes int64
	// Checksum is the xxHash64 of the uncompressed container bytes.
	Checksum uint64
}

// WriteFile encodes a container into a new file at path.
//
// The compression transport is selected from the path suffix. Data is flushed
// through the compressor, then the compressor and the file are closed. On any
// failure the partial file is removed and the error is returned.
func WriteFile(path string, zones zone.Set, m *matrix.Dense, opts ...Option) (*WriteStats, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	ct := compress.ForPath(path)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	stats, err := writeTo(f, ct, zones, m, cfg)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	if err != nil {
		return nil, errors.Join(err, removeQuiet(path))
	}

	return stats, nil
}

func writeTo(f *os.File, ct format.CompressionType, zones zone.Set, m *matrix.Dense, cfg *Config) (*WriteStats, error) {
	cw, err := compress.NewWriter(ct, f)
	if err != nil {
		return nil, err
	}

	counter := hash.NewCountingWriter(cw)
	bw := bufio.NewWriterSize(counter, ioBufferSize)

	if err := newEncoder(bw, cfg).Encode(zones, m); err != nil {
		_ = cw.Close()
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		_ = cw.Close()
		return nil, fmt.Errorf("flush output: %w", err)
	}
	if err := cw.Close(); err != nil {
		return nil, fmt.Errorf("close %s writer: %w", ct, err)
	}

	return &WriteStats{
		Compression: ct,
		Bytes:       counter.Count(),
		Checksum:    counter.Sum64(),
	}, nil
}

func removeQuiet(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove partial output: %w", err)
	}

	return nil
}

// ReadFile decodes the container at path, decompressing by path suffix.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	ct := compress.ForPath(path)
	cr, err := compress.NewReader(ct, bufio.NewReaderSize(f, ioBufferSize))
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	return NewDecoder(cr).Decode()
}
