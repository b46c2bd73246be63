package vrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPointBandwidthOneHertz(t *testing.T) {
	raw := ToFixed64(1.0, 64, 20)
	assert.Equal(t, uint64(0x0000000000100000), raw)
	raw = ToFixed64(-1.0, 64, 20)
	assert.Equal(t, uint64(0xFFFFFFFFFFF00000), raw)
}

func TestFixedPointRoundTrip(t *testing.T) {
	cases := []struct {
		n, r  uint
		value float64
	}{
		{16, 7, 12.5},
		{16, 6, -40.0},
		{64, 20, 2_400_000_000.0},
		{32, 22, 90.0},
		{32, 22, -180.0},
		{32, 5, 400.0},
		{32, 16, -1000.5},
	}
	for _, c := range cases {
		raw := encodeFixed(c.value, c.n, c.r)
		got := decodeFixed(raw, c.n, c.r)
		assert.InDelta(t, c.value, got, 1.0/float64(int64(1)<<c.r))
	}
}

func TestFixedPointSignSymmetry(t *testing.T) {
	pos := encodeFixed(12.5, 16, 7)
	neg := encodeFixed(-12.5, 16, 7)
	posVal := decodeFixed(pos, 16, 7)
	negVal := decodeFixed(neg, 16, 7)
	assert.InDelta(t, posVal, -negVal, 1.0/128)
}

func TestFixedPointSaturates(t *testing.T) {
	raw := ToFixed32(1e9, 16, 7)
	got := FromFixed32(raw, 16, 7)
	require.Less(t, got, 300.0)
}

func TestFixedPointLatitudeMax(t *testing.T) {
	raw := ToFixed32(90.0, 32, 22)
	assert.Equal(t, uint32(0x16800000), raw)
}
