// Package errs defines the sentinel errors returned by mtxconv packages.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize is returned when a header buffer is not exactly section.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidMagicNumber is returned when the header does not start with the MTX magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	// ErrUnsupportedVersion is returned for container versions other than section.Version.
	ErrUnsupportedVersion = errors.New("unsupported container version")
	// ErrUnsupportedType is returned for container type tags other than section.TypeFloat32.
	ErrUnsupportedType = errors.New("unsupported container type")
	// ErrDimensionMismatch is returned when the header dimensions do not describe a square 2-D matrix.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrAxisMismatch is returned when the origin and destination axes carry different labels.
	ErrAxisMismatch = errors.New("origin and destination axes differ")
	// ErrMatrixSizeMismatch is returned when a matrix does not have len(zones)^2 cells.
	ErrMatrixSizeMismatch = errors.New("matrix size does not match zone count")
	// ErrTrailingData is returned when bytes follow the matrix section of a container.
	ErrTrailingData = errors.New("trailing data after matrix")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
