package mtx

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/mtxconv/errs"
	"github.com/arloliu/mtxconv/format"
	"github.com/arloliu/mtxconv/matrix"
	"github.com/arloliu/mtxconv/section"
	"github.com/arloliu/mtxconv/zone"
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

// twoZoneContainer is the encoding of zones {1, 2} with matrix [2, 0, 3, 0].
var twoZoneContainer = []byte{
	0xB2, 0xF1, 0xD4, 0xC4, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x01, 0x00, 0x00, 0x00, // type
	0x02, 0x00, 0x00, 0x00, // dimensions
	0x02, 0x00, 0x00, 0x00, // origin size
	0x02, 0x00, 0x00, 0x00, // destination size
	0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, // origin zones
	0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, // destination zones
	0x00, 0x00, 0x00, 0x40, // 2.0
	0x00, 0x00, 0x00, 0x00, // 0.0
	0x00, 0x00, 0x40, 0x40, // 3.0
	0x00, 0x00, 0x00, 0x00, // 0.0
}

func twoZoneMatrix(t testing.TB) (zone.Set, *matrix.Dense) {
	t.Helper()

	m, err := matrix.FromValues(2, []float32{2, 0, 3, 0})
	require.NoError(t, err)

	return zone.Set{1, 2}, m
}

func encode(t testing.TB, zones zone.Set, m *matrix.Dense, opts ...Option) []byte {
	t.Helper()

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, opts...)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(zones, m))

	return buf.Bytes()
}

func sequentialMatrix(n int) (zone.Set, *matrix.Dense) {
	zones := make(zone.Set, n)
	for i := range zones {
		zones[i] = int32(i*7 - 100)
	}

	m := matrix.NewDense(n)
	cells := m.Values()
	for i := range cells {
		if i%5 != 0 {
			cells[i] = float32(i) * 0.25
		}
	}

	return zones, m
}

func TestEncoder_Encode(t *testing.T) {
	t.Run("exact bytes", func(t *testing.T) {
		zones, m := twoZoneMatrix(t)
		require.Equal(t, twoZoneContainer, encode(t, zones, m))
	})

	t.Run("three zone shape", func(t *testing.T) {
		zones := zone.Set{10, 20, 30}
		data := encode(t, zones, matrix.NewDense(3))

		require.Len(t, data, section.HeaderSize+3*4+3*4+9*4)
		require.EqualValues(t, section.HeaderSize+section.PayloadSize(3), len(data))

		header, err := section.ParseHeader(data)
		require.NoError(t, err)
		require.EqualValues(t, 3, header.OriginSize)
		require.EqualValues(t, 3, header.DestinationSize)

		for axis := range 2 {
			off := section.HeaderSize + axis*12
			for i, id := range zones {
				require.Equal(t, uint32(id), binary.LittleEndian.Uint32(data[off+i*4:]))
			}
		}
	})

	t.Run("empty zone set", func(t *testing.T) {
		data := encode(t, zone.Set{}, matrix.NewDense(0))
		require.Len(t, data, section.HeaderSize)
	})

	t.Run("matrix size mismatch", func(t *testing.T) {
		var buf bytes.Buffer
		enc, err := NewEncoder(&buf)
		require.NoError(t, err)

		require.ErrorIs(t, enc.Encode(zone.Set{1, 2, 3}, matrix.NewDense(2)), errs.ErrMatrixSizeMismatch)
		require.ErrorIs(t, enc.Encode(zone.Set{1}, nil), errs.ErrMatrixSizeMismatch)
		require.Zero(t, buf.Len())
	})

	t.Run("invalid host order", func(t *testing.T) {
		_, err := NewEncoder(&bytes.Buffer{}, WithHostOrder(nil))
		require.Error(t, err)
	})
}

func TestEncoder_HostOrderIndependent(t *testing.T) {
	t.Run("small", func(t *testing.T) {
		zones, m := twoZoneMatrix(t)

		le := encode(t, zones, m, WithHostOrder(binary.LittleEndian))
		be := encode(t, zones, m, WithHostOrder(binary.BigEndian))
		require.Equal(t, le, be)
		require.Equal(t, twoZoneContainer, be)
	})

	t.Run("parallel conversion", func(t *testing.T) {
		// 400² cells span several conversion chunks.
		zones, m := sequentialMatrix(400)
		m.Set(3, 4, float32(math.Inf(-1)))
		m.Set(5, 6, float32(math.NaN()))

		le := encode(t, zones, m, WithHostOrder(binary.LittleEndian))
		be := encode(t, zones, m, WithHostOrder(binary.BigEndian), WithParallelism(4))
		seq := encode(t, zones, m, WithHostOrder(binary.BigEndian), WithParallelism(1))

		require.Equal(t, le, be)
		require.Equal(t, le, seq)
	})

	t.Run("multiple slabs", func(t *testing.T) {
		zones, m := sequentialMatrix(1100)

		le := encode(t, zones, m, WithHostOrder(binary.LittleEndian))
		be := encode(t, zones, m, WithHostOrder(binary.BigEndian))
		require.True(t, bytes.Equal(le, be))
	})
}

func TestDecoder_Decode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		file, err := NewDecoder(bytes.NewReader(twoZoneContainer)).Decode()
		require.NoError(t, err)

		require.Equal(t, zone.Set{1, 2}, file.Zones)
		require.Equal(t, []float32{2, 0, 3, 0}, file.Matrix.Values())
		require.Equal(t, xxhash.Sum64(twoZoneContainer), file.Checksum)
		require.Equal(t, Summary{ZoneCount: 2, FirstZone: 1, LastZone: 2, Sum: 5, NonZero: 2}, file.Summary())
	})

	t.Run("bad magic", func(t *testing.T) {
		data := bytes.Clone(twoZoneContainer)
		data[0] = 0x00

		_, err := NewDecoder(bytes.NewReader(data)).Decode()
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("unsupported version", func(t *testing.T) {
		data := bytes.Clone(twoZoneContainer)
		data[4] = 0x02

		_, err := NewDecoder(bytes.NewReader(data)).Decode()
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("non-square header", func(t *testing.T) {
		data := bytes.Clone(twoZoneContainer)
		data[20] = 0x03

		_, err := NewDecoder(bytes.NewReader(data)).Decode()
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("short header", func(t *testing.T) {
		_, err := NewDecoder(bytes.NewReader(twoZoneContainer[:10])).Decode()
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

		_, err = NewDecoder(bytes.NewReader(nil)).Decode()
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("truncated matrix", func(t *testing.T) {
		_, err := NewDecoder(bytes.NewReader(twoZoneContainer[:len(twoZoneContainer)-2])).Decode()
		require.ErrorContains(t, err, "read matrix")
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("huge declared size on short input", func(t *testing.T) {
		data := bytes.Clone(twoZoneContainer[:section.HeaderSize])
		binary.LittleEndian.PutUint32(data[16:], math.MaxInt32)
		binary.LittleEndian.PutUint32(data[20:], math.MaxInt32)

		_, err := NewDecoder(bytes.NewReader(data)).Decode()
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("axis mismatch", func(t *testing.T) {
		data := bytes.Clone(twoZoneContainer)
		data[section.HeaderSize+8] = 0x05

		_, err := NewDecoder(bytes.NewReader(data)).Decode()
		require.ErrorIs(t, err, errs.ErrAxisMismatch)
	})

	t.Run("trailing data", func(t *testing.T) {
		data := append(bytes.Clone(twoZoneContainer), 0xFF)

		_, err := NewDecoder(bytes.NewReader(data)).Decode()
		require.ErrorIs(t, err, errs.ErrTrailingData)
	})
}

func TestWriteFile_RoundTrip(t *testing.T) {
	zones, m := sequentialMatrix(37)
	want := encode(t, zones, m)

	tests := []struct {
		name     string
		expected format.CompressionType
	}{
		{"matrix.mtx", format.CompressionNone},
		{"matrix.mtx.gz", format.CompressionGzip},
		{"matrix.mtx.zst", format.CompressionZstd},
		{"matrix.mtx.s2", format.CompressionS2},
		{"matrix.mtx.lz4", format.CompressionLZ4},
		{"matrix.mtx.xz", format.CompressionXZ},
		{"MATRIX.MTX.GZ", format.CompressionGzip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name)

			stats, err := WriteFile(path, zones, m)
			require.NoError(t, err)
			require.Equal(t, tt.expected, stats.Compression)
			require.EqualValues(t, len(want), stats.Bytes)
			require.Equal(t, xxhash.Sum64(want), stats.Checksum)

			if tt.expected == format.CompressionNone {
				raw, err := os.ReadFile(path)
				require.NoError(t, err)
				require.Equal(t, want, raw)
			}

			file, err := ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, zones, file.Zones)
			require.Equal(t, m.Values(), file.Matrix.Values())
			require.Equal(t, stats.Checksum, file.Checksum)
		})
	}
}

func TestWriteFile_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		zones, m := twoZoneMatrix(t)

		_, err := WriteFile(filepath.Join(t.TempDir(), "nope", "out.mtx"), zones, m)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("size mismatch removes partial output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.mtx.gz")

		_, err := WriteFile(path, zone.Set{1, 2, 3}, matrix.NewDense(2))
		require.ErrorIs(t, err, errs.ErrMatrixSizeMismatch)
		require.NoFileExists(t, path)
	})

	t.Run("invalid option creates nothing", func(t *testing.T) {
		zones, m := twoZoneMatrix(t)
		path := filepath.Join(t.TempDir(), "out.mtx")

		_, err := WriteFile(path, zones, m, WithHostOrder(nil))
		require.Error(t, err)
		require.NoFileExists(t, path)
	})
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.mtx"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func BenchmarkEncoder_Encode(b *testing.B) {
	zones, m := sequentialMatrix(2000)

	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		b.Run(order.String(), func(b *testing.B) {
			enc, err := NewEncoder(io.Discard, WithHostOrder(order))
			require.NoError(b, err)

			b.SetBytes(section.HeaderSize + section.PayloadSize(zones.Len()))
			b.ReportAllocs()
			for b.Loop() {
				_ = enc.Encode(zones, m)
			}
		})
	}
}
