package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.Equal(t, binary.BigEndian, CheckEndianness())
	case 0x02:
		require.Equal(t, binary.LittleEndian, CheckEndianness())
	default:
		require.Failf(t, "unexpected probe byte", "got: %v", first)
	}
}

func TestIsNativeLittleEndian(t *testing.T) {
	require.Equal(t, CheckEndianness() == binary.LittleEndian, IsNativeLittleEndian())
}

func TestGetLittleEndianEngine(t *testing.T) {
	little := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), little)
	require.Equal(t, binary.LittleEndian, little)

	var magic uint32 = 0xC4D4F1B2
	require.Equal(t, []byte{0xB2, 0xF1, 0xD4, 0xC4}, little.AppendUint32(nil, magic))
	require.Equal(t, magic, little.Uint32([]byte{0xB2, 0xF1, 0xD4, 0xC4}))
}
