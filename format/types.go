package format

type (
	Layout          uint8
	CompressionType uint8
)

const (
	LayoutUnknown     Layout = 0x0 // LayoutUnknown is reported for empty input.
	LayoutSparse      Layout = 0x1 // LayoutSparse represents origin,destination,value rows.
	LayoutRectangular Layout = 0x2 // LayoutRectangular represents a cross-tab with destinations in the first row.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 frame compression.
	CompressionXZ   CompressionType = 0x6 // CompressionXZ represents xz compression.
)

func (l Layout) String() string {
	switch l {
	case LayoutSparse:
		return "Sparse"
	case LayoutRectangular:
		return "Rectangular"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionXZ:
		return "XZ"
	default:
		return "Unknown"
	}
}

// Triple is a single origin-destination observation.
type Triple struct {
	Origin      int32
	Destination int32
	Value       float32
}
