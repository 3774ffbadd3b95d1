package hash

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingWriter_KnownDigests(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := NewCountingWriter(nil)
			_, err := cw.Write([]byte(tt.data))
			require.NoError(t, err)

			assert.Equal(t, tt.sum, cw.Sum64())
			assert.Equal(t, int64(len(tt.data)), cw.Count())
		})
	}
}

func TestCountingWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewCountingWriter(&out)

	_, err := cw.Write([]byte("this is a longer "))
	require.NoError(t, err)
	_, err = cw.Write([]byte("test string to hash"))
	require.NoError(t, err)

	assert.Equal(t, int64(36), cw.Count())
	assert.Equal(t, "this is a longer test string to hash", out.String())
	assert.Equal(t, uint64(0x69275f7f7ee59dbd), cw.Sum64())
}

func TestCountingWriter_Discard(t *testing.T) {
	cw := NewCountingWriter(nil)

	n, err := cw.Write([]byte("test"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, uint64(0x4fdcca5ddb678139), cw.Sum64())
}
