// Package section defines the low-level binary structures and constants for the MTX container.
//
// An MTX container is a fixed header followed by two zone axes and a dense
// row-major matrix. Every multi-byte field is little-endian regardless of the
// host byte order.
//
// # Container Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Origin zone index (N × int32)                           │
//	├─────────────────────────────────────────────────────────┤
//	│ Destination zone index (N × int32)                      │
//	│  - identical labels to the origin axis                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Matrix (N × N × float32, row-major, origin-major)       │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field           | Type   | Value
//	-------|-----------------|--------|----------------------------------
//	0-3    | Magic           | uint32 | 0xC4D4F1B2
//	4-7    | Version         | int32  | 1
//	8-11   | Type            | int32  | 1 (float32 cells)
//	12-15  | Dimensions      | int32  | 2
//	16-19  | OriginSize      | int32  | N
//	20-23  | DestinationSize | int32  | N
//
// The payload sizes follow from the header:
//
//	PayloadSize(n) = 4*n + 4*n + 4*n*n
package section
