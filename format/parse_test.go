package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseZoneID(t *testing.T) {
	tests := []struct {
		in       string
		expected int32
		ok       bool
	}{
		{"1", 1, true},
		{"-42", -42, true},
		{"+7", 7, true},
		{"2147483647", math.MaxInt32, true},
		{"-2147483648", math.MinInt32, true},
		{"2147483648", 0, false},
		{" 1", 0, false},
		{"1.0", 0, false},
		{"0x10", 0, false},
		{"", 0, false},
		{"\ufeff1", 0, false},
	}

	for _, tt := range tests {
		id, ok := ParseZoneID(tt.in)
		require.Equal(t, tt.ok, ok, "in=%q", tt.in)
		require.Equal(t, tt.expected, id, "in=%q", tt.in)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in       string
		expected float32
		ok       bool
	}{
		{"2.0", 2, true},
		{"-0.5", -0.5, true},
		{"+7", 7, true},
		{"1e3", 1000, true},
		{".25", 0.25, true},
		{"0", 0, true},
		{"0.1", 0.1, true},
		{"0x1p-2", 0, false},
		{"-0X1P+1", 0, false},
		{"1_000", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{" 1", 0, false},
	}

	for _, tt := range tests {
		v, ok := ParseValue(tt.in)
		require.Equal(t, tt.ok, ok, "in=%q", tt.in)
		require.Equal(t, tt.expected, v, "in=%q", tt.in)
	}

	t.Run("special values", func(t *testing.T) {
		v, ok := ParseValue("1e50")
		require.True(t, ok)
		require.True(t, math.IsInf(float64(v), 1))

		v, ok = ParseValue("-inf")
		require.True(t, ok)
		require.True(t, math.IsInf(float64(v), -1))

		v, ok = ParseValue("NaN")
		require.True(t, ok)
		require.True(t, math.IsNaN(float64(v)))
	})
}
