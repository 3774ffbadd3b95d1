package section

import (
	"fmt"
	"math"

	"github.com/arloliu/mtxconv/endian"
	"github.com/arloliu/mtxconv/errs"
)

// Header represents the fixed-size header at the start of an MTX container.
type Header struct {
	// Magic identifies the container, always MagicNumber for valid files.
	Magic uint32 // byte offset 0-3
	// Version is the container format version.
	Version int32 // byte offset 4-7
	// Type is the matrix cell type tag.
	Type int32 // byte offset 8-11
	// Dimensions is the number of axes.
	Dimensions int32 // byte offset 12-15
	// OriginSize is the number of origin zone labels.
	OriginSize int32 // byte offset 16-19
	// DestinationSize is the number of destination zone labels.
	DestinationSize int32 // byte offset 20-23
}

// CheckZoneCount reports whether zoneCount fits the int32 axis size fields.
func CheckZoneCount(zoneCount int) error {
	if zoneCount < 0 || int64(zoneCount) > math.MaxInt32 {
		return fmt.Errorf("%w: %d zones do not fit an int32 axis size", errs.ErrDimensionMismatch, zoneCount)
	}

	return nil
}

// NewHeader creates a Header for a square matrix over zoneCount zones.
// The count must pass CheckZoneCount.
func NewHeader(zoneCount int) *Header {
	return &Header{
		Magic:           MagicNumber,
		Version:         Version,
		Type:            TypeFloat32,
		Dimensions:      Dimensions,
		OriginSize:      int32(zoneCount),
		DestinationSize: int32(zoneCount),
	}
}

// Bytes serializes the Header into a little-endian byte slice of HeaderSize bytes.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the little-endian header bytes to buf.
func (h *Header) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = engine.AppendUint32(buf, h.Magic)
	buf = engine.AppendUint32(buf, uint32(h.Version))
	buf = engine.AppendUint32(buf, uint32(h.Type))
	buf = engine.AppendUint32(buf, uint32(h.Dimensions))
	buf = engine.AppendUint32(buf, uint32(h.OriginSize))
	buf = engine.AppendUint32(buf, uint32(h.DestinationSize))

	return buf
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 24 bytes, or a validation error
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Magic = engine.Uint32(data[0:4])
	h.Version = int32(engine.Uint32(data[4:8]))
	h.Type = int32(engine.Uint32(data[8:12]))
	h.Dimensions = int32(engine.Uint32(data[12:16]))
	h.OriginSize = int32(engine.Uint32(data[16:20]))
	h.DestinationSize = int32(engine.Uint32(data[20:24]))

	return h.Validate()
}

// Validate checks that the header describes a container this package can read.
func (h *Header) Validate() error {
	if h.Magic != MagicNumber {
		return fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagicNumber, h.Magic)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if h.Type != TypeFloat32 {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedType, h.Type)
	}
	if h.Dimensions != Dimensions {
		return fmt.Errorf("%w: %d dimensions", errs.ErrDimensionMismatch, h.Dimensions)
	}
	if h.OriginSize < 0 || h.OriginSize != h.DestinationSize {
		return fmt.Errorf("%w: origin %d, destination %d", errs.ErrDimensionMismatch, h.OriginSize, h.DestinationSize)
	}

	return nil
}

// ZoneCount returns the number of zones on each axis.
func (h *Header) ZoneCount() int {
	return int(h.OriginSize)
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 24 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or a validation error
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
