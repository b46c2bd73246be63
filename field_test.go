package vrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGainRoundTrip(t *testing.T) {
	g := Gain{Stage2: 10.5, Stage1: -3.25}
	buf := make([]byte, g.Size())
	g.PackInto(buf)

	var g2 Gain
	g2.UnpackFrom(buf)
	assert.InDelta(t, g.Stage2, g2.Stage2, 1.0/128)
	assert.InDelta(t, g.Stage1, g2.Stage1, 1.0/128)
}

func TestDeviceIdentifierRoundTrip(t *testing.T) {
	d := DeviceIdentifier{ManufacturerOUI: 0xABCDEF, DeviceCode: 0x1234}
	buf := make([]byte, d.Size())
	d.PackInto(buf)
	assert.Equal(t, byte(0), buf[0])

	var d2 DeviceIdentifier
	d2.UnpackFrom(buf)
	assert.Equal(t, d.ManufacturerOUI, d2.ManufacturerOUI)
	assert.Equal(t, d.DeviceCode, d2.DeviceCode)
}

func TestStateEventIndicatorsEnableValuePairs(t *testing.T) {
	var s StateEventIndicators
	s.SetCalibratedTimeEnable(true)
	s.SetCalibratedTime(true)
	s.SetAssociatedContextPacketCountEnable(true)
	s.SetAssociatedContextPacketCount(42)

	buf := make([]byte, s.Size())
	s.PackInto(buf)

	var s2 StateEventIndicators
	s2.UnpackFrom(buf)
	assert.True(t, s2.CalibratedTimeEnable())
	assert.True(t, s2.CalibratedTime())
	assert.False(t, s2.ValidDataEnable())
	assert.Equal(t, uint8(42), s2.AssociatedContextPacketCount())
}

func TestGeolocationSentinelDefaults(t *testing.T) {
	g := NewGeolocation()
	buf := make([]byte, g.Size())
	g.PackInto(buf)

	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf[4:8])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, buf[8:16])
	for off := 16; off < 44; off += 4 {
		assert.Equal(t, []byte{0x7F, 0xFF, 0xFF, 0xFF}, buf[off:off+4], "offset %d", off)
	}
}

func TestGeolocationLatitudeMaxScenario(t *testing.T) {
	g := NewGeolocation()
	g.Latitude = 90.0
	buf := make([]byte, g.Size())
	g.PackInto(buf)
	assert.Equal(t, []byte{0x16, 0x80, 0x00, 0x00}, buf[16:20])
}

func TestEphemerisSentinelRoundTrip(t *testing.T) {
	e := NewEphemeris()
	buf := make([]byte, e.Size())
	e.PackInto(buf)

	var e2 Ephemeris
	e2.UnpackFrom(buf)
	assert.Equal(t, e.PositionX, e2.PositionX)
	assert.Equal(t, e.VelocityDZ, e2.VelocityDZ)
}

// PayloadFormat round-trip with the exact documented bit pattern.
func TestPayloadFormatRoundTripScenario(t *testing.T) {
	var pf PayloadFormat
	pf.SetPackingMethod(PackingMethodLinkEfficient)
	pf.SetRealComplexType(DataSampleTypeReal)
	pf.SetDataItemFormat(DataItemFormatIEEE754SinglePrecision)
	pf.SetEventTagSize(1)
	pf.SetChannelTagSize(2)
	pf.SetItemPackingFieldSize(4)
	pf.SetDataItemSize(8)
	pf.RepeatCount = 0x1234
	pf.VectorSize = 0x5678

	buf := make([]byte, pf.Size())
	pf.PackInto(buf)
	assert.Equal(t, []byte{0x8E, 0x12, 0x00, 0xC7, 0x12, 0x33, 0x56, 0x77}, buf)

	var pf2 PayloadFormat
	pf2.UnpackFrom(buf)
	assert.Equal(t, PackingMethodLinkEfficient, pf2.PackingMethod())
	assert.Equal(t, DataSampleTypeReal, pf2.RealComplexType())
	assert.Equal(t, DataItemFormatIEEE754SinglePrecision, pf2.DataItemFormat())
	assert.Equal(t, uint8(1), pf2.EventTagSize())
	assert.Equal(t, uint8(2), pf2.ChannelTagSize())
	assert.Equal(t, uint8(4), pf2.ItemPackingFieldSize())
	assert.Equal(t, uint8(8), pf2.DataItemSize())
	assert.Equal(t, uint16(0x1234), pf2.RepeatCount)
	assert.Equal(t, uint16(0x5678), pf2.VectorSize)
}

func TestPayloadFormatSizeMinusOneLaw(t *testing.T) {
	var pf PayloadFormat
	pf.SetItemPackingFieldSize(1)
	pf.SetDataItemSize(1)
	pf.RepeatCount = 1
	pf.VectorSize = 1

	buf := make([]byte, pf.Size())
	pf.PackInto(buf)
	assert.Equal(t, []byte{0x00, 0x00}, buf[2:4])
	assert.Equal(t, []byte{0x00, 0x00}, buf[4:6])
	assert.Equal(t, []byte{0x00, 0x00}, buf[6:8])

	var pf2 PayloadFormat
	pf2.UnpackFrom(buf)
	assert.Equal(t, uint8(1), pf2.ItemPackingFieldSize())
	assert.Equal(t, uint8(1), pf2.DataItemSize())
	assert.Equal(t, uint16(1), pf2.RepeatCount)
	assert.Equal(t, uint16(1), pf2.VectorSize)
}

func TestContextAssociationListsRoundTrip(t *testing.T) {
	c := ContextAssociationLists{
		SourceList:                []uint32{1, 2, 3},
		SystemList:                []uint32{4},
		VectorComponentList:       []uint32{5, 6},
		AsyncChannelList:          []uint32{7, 8},
		AsyncChannelTagListEnable: true,
		AsyncChannelTagList:       []uint32{9, 10},
	}
	buf := make([]byte, c.Size())
	c.PackInto(buf)

	var c2 ContextAssociationLists
	require.NoError(t, c2.UnpackFrom(buf))
	assert.Equal(t, c.SourceList, c2.SourceList)
	assert.Equal(t, c.SystemList, c2.SystemList)
	assert.Equal(t, c.VectorComponentList, c2.VectorComponentList)
	assert.Equal(t, c.AsyncChannelList, c2.AsyncChannelList)
	assert.Equal(t, c.AsyncChannelTagList, c2.AsyncChannelTagList)
}

func TestContextAssociationListsTruncated(t *testing.T) {
	c := ContextAssociationLists{SourceList: []uint32{1, 2, 3}}
	buf := make([]byte, c.Size())
	c.PackInto(buf)

	var c2 ContextAssociationLists
	err := c2.UnpackFrom(buf[:len(buf)-1])
	require.Error(t, err)
	assert.True(t, IsErrTruncated(err))
}

func TestGpsAsciiRoundTripWithPadding(t *testing.T) {
	g := GpsAscii{ManufacturerOUI: 0x00ABCD, ASCII: []byte("GPGGA")}
	buf := make([]byte, g.Size())
	g.PackInto(buf)
	assert.Equal(t, 0, g.Size()%4)

	var g2 GpsAscii
	require.NoError(t, g2.UnpackFrom(buf))
	assert.Equal(t, g.ManufacturerOUI, g2.ManufacturerOUI)
	assert.Equal(t, "GPGGA\x00\x00\x00", string(g2.ASCII))
}

func TestWarningErrorFieldsRoundTrip(t *testing.T) {
	var w WarningErrorFields
	w.SetDeviceFailure(true)
	w.SetRegionalInterference(true)
	buf := make([]byte, w.Size())
	w.PackInto(buf)

	var w2 WarningErrorFields
	w2.UnpackFrom(buf)
	assert.True(t, w2.DeviceFailure())
	assert.True(t, w2.RegionalInterference())
	assert.False(t, w2.Distortion())
}

func TestBeliefProbabilityRoundTrip(t *testing.T) {
	b := Belief{Percent: 200}
	buf := make([]byte, b.Size())
	b.PackInto(buf)
	var b2 Belief
	b2.UnpackFrom(buf)
	assert.Equal(t, b.Percent, b2.Percent)

	p := Probability{Function: 1, Percent: 128}
	buf2 := make([]byte, p.Size())
	p.PackInto(buf2)
	var p2 Probability
	p2.UnpackFrom(buf2)
	assert.Equal(t, p.Function, p2.Function)
	assert.Equal(t, p.Percent, p2.Percent)
}
