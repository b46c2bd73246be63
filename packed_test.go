package vrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacked32GetSet(t *testing.T) {
	var p Packed32
	p.Set(31, 4, 0b1010)
	assert.Equal(t, uint32(0b1010), p.Get(31, 4))
	assert.Equal(t, uint32(0xA0000000), p.Word())
}

func TestPacked32Bit(t *testing.T) {
	var p Packed32
	assert.False(t, p.Bit(5))
	p.SetBit(5, true)
	assert.True(t, p.Bit(5))
	assert.True(t, p.Any())
	p.SetBit(5, false)
	assert.True(t, p.None())
}

func TestPacked32PackUnpackRoundTrip(t *testing.T) {
	var p Packed32
	p.SetWord(0x12345678)
	buf := make([]byte, 4)
	p.PackInto(buf)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, buf)

	var q Packed32
	q.UnpackFrom(buf)
	assert.Equal(t, p.Word(), q.Word())
}

func TestPacked32FieldIsolation(t *testing.T) {
	var p Packed32
	p.SetBit(31, true)
	p.Set(23, 2, 0b11)
	p.SetBit(1, true)
	assert.True(t, p.Bit(31))
	assert.Equal(t, uint32(0b11), p.Get(23, 2))
	assert.True(t, p.Bit(1))
	assert.False(t, p.Bit(30))
}

func TestGetFieldSetFieldEnum(t *testing.T) {
	var p Packed32
	setField(&p, 23, 2, TSIGPS)
	got := getField[TSI](&p, 23, 2)
	assert.Equal(t, TSIGPS, got)
}
