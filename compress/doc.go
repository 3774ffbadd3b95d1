// Package compress provides stream compression transports for MTX containers.
//
// Compression is a pure transport wrapper: the uncompressed byte sequence of a
// container is identical whichever transport carries it. The transport is
// selected once, from the suffix of the output path:
//
//	Suffix | Type                   | Library
//	-------|------------------------|-----------------------------------
//	.gz    | format.CompressionGzip | github.com/klauspost/compress/gzip
//	.zst   | format.CompressionZstd | github.com/klauspost/compress/zstd
//	.s2    | format.CompressionS2   | github.com/klauspost/compress/s2
//	.lz4   | format.CompressionLZ4  | github.com/pierrec/lz4/v4
//	.xz    | format.CompressionXZ   | github.com/ulikunitz/xz
//	other  | format.CompressionNone | pass-through
//
// All compressors use their library's default level. Building with the
// gozstd tag and cgo enabled swaps the Zstd transport for
// github.com/valyala/gozstd.
//
// # Usage
//
//	ct := compress.ForPath(path)
//	w, err := compress.NewWriter(ct, file)
//	if err != nil {
//	    return err
//	}
//	// write the container to w
//	if err := w.Close(); err != nil { // flushes the compressor, leaves file open
//	    return err
//	}
//
// Closing a writer or reader returned by this package never closes the
// underlying stream.
package compress
