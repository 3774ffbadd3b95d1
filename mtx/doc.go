// Package mtx reads and writes MTX containers.
//
// A container is a little-endian stream of four sections, written in order by
// a single writer:
//
//	header         24 bytes, see section.Header
//	origin zones   n × int32
//	dest zones     n × int32, identical to the origin zones
//	matrix         n × n × float32, row-major by origin
//
// WriteFile and ReadFile select a compression transport from the file suffix
// (see compress.ForPath). Compression wraps the stream and never changes the
// uncompressed bytes.
package mtx
