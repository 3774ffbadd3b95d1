package section

const (
	MagicNumber = 0xC4D4F1B2 // MagicNumber identifies an MTX container.
	Version     = 1          // Version is the only container version written and accepted.
	TypeFloat32 = 1          // TypeFloat32 is the type tag for float32 matrix cells.
	Dimensions  = 2          // Dimensions is the axis count of an origin-destination matrix.
)

// offset and section sizes in the container
const (
	HeaderSize = 24         // fixed header size in bytes
	ZoneSize   = 4          // size of one zone label (int32)
	CellSize   = 4          // size of one matrix cell (float32)
	ZoneOffset = HeaderSize // byte offset where the origin zone index starts
)

// PayloadSize returns the number of bytes following the header for n zones.
func PayloadSize(n int) int64 {
	nn := int64(n)
	return 2*nn*ZoneSize + nn*nn*CellSize
}
