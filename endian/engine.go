// Package endian provides byte order utilities for the MTX container.
//
// The MTX container is always little-endian on disk. This package detects the
// host byte order once and offers a Converter that turns int32 and float32
// slices into their little-endian byte representation:
//
//   - On little-endian hosts the slice memory is reinterpreted as bytes, no
//     per-element work is done and no copy is made.
//   - On big-endian hosts every element is converted individually. Elements are
//     independent, so large slices are converted in parallel chunks that write
//     into disjoint ranges of one output buffer, preserving element order.
//
// Both paths produce identical bytes.
//
// # Basic Usage
//
//	conv := endian.NewConverter(endian.CheckEndianness(), 0)
//	zoneBytes := conv.Int32s(zones, nil)
//	cellBytes := conv.Float32s(cells, nil)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// EndianEngine instances and Converters are immutable.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256: a big-endian host stores the 0x01 byte first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
