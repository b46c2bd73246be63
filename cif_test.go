package vrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCIF0EnablesRoundTrip(t *testing.T) {
	var c CIF0Enables
	c.SetContextFieldChange(true)
	c.SetBandwidth(true)
	c.SetCIF1Enable(true)
	assert.True(t, c.Any())

	buf := make([]byte, 4)
	c.PackInto(buf)
	assert.Equal(t, byte(0x80), buf[0]&0x80)

	var c2 CIF0Enables
	c2.UnpackFrom(buf)
	assert.True(t, c2.ContextFieldChange())
	assert.True(t, c2.Bandwidth())
	assert.True(t, c2.CIF1Enable())
	assert.False(t, c2.Gain())
}

func TestCIF1EnablesRoundTrip(t *testing.T) {
	var c CIF1Enables
	c.SetPhaseOffset(true)
	c.SetBufferSize(true)
	buf := make([]byte, 4)
	c.PackInto(buf)

	var c2 CIF1Enables
	c2.UnpackFrom(buf)
	assert.True(t, c2.PhaseOffset())
	assert.True(t, c2.BufferSize())
	assert.False(t, c2.Range())
}

func TestCIF2EnablesRoundTrip(t *testing.T) {
	var c CIF2Enables
	c.SetControlleeID(true)
	c.SetCountryCode(true)
	buf := make([]byte, 4)
	c.PackInto(buf)

	var c2 CIF2Enables
	c2.UnpackFrom(buf)
	assert.True(t, c2.ControlleeID())
	assert.True(t, c2.CountryCode())
	assert.False(t, c2.Bind())
}

func TestCIF3EnablesRoundTrip(t *testing.T) {
	var c CIF3Enables
	c.SetHumidity(true)
	c.SetNetworkID(true)
	buf := make([]byte, 4)
	c.PackInto(buf)

	var c2 CIF3Enables
	c2.UnpackFrom(buf)
	assert.True(t, c2.Humidity())
	assert.True(t, c2.NetworkID())
	assert.False(t, c2.RiseTime())
}

func TestCIF7EnablesRoundTrip(t *testing.T) {
	var c CIF7Enables
	c.SetMeanValue(true)
	c.SetBelief(true)
	buf := make([]byte, 4)
	c.PackInto(buf)

	var c2 CIF7Enables
	c2.UnpackFrom(buf)
	assert.True(t, c2.MeanValue())
	assert.True(t, c2.Belief())
	assert.False(t, c2.CurrentValue())
}
