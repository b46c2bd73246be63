package vrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderContextRoundTrip(t *testing.T) {
	var h Header
	h.SetPacketType(PacketTypeContext)
	h.SetTSI(TSIUTC)
	h.SetTSF(TSFRealTime)
	h.SetPacketCount(7)
	h.SetPacketSize(42)
	h.SetNotV49D0(true)
	h.SetTSM(TSMCoarse)

	buf := make([]byte, 4)
	h.PackInto(buf)

	var h2 Header
	h2.UnpackFrom(buf)
	assert.Equal(t, PacketTypeContext, h2.PacketType())
	assert.Equal(t, TSIUTC, h2.TSI())
	assert.Equal(t, TSFRealTime, h2.TSF())
	assert.Equal(t, uint8(7), h2.PacketCount())
	assert.Equal(t, uint16(42), h2.PacketSize())
	assert.True(t, h2.NotV49D0())
	assert.Equal(t, TSMCoarse, h2.TSM())
}

func TestHeaderDataVariantBits(t *testing.T) {
	var h Header
	h.SetPacketType(PacketTypeSignalData)
	h.SetTrailerIncluded(true)
	h.SetSpectrumOrTime(true)
	buf := make([]byte, 4)
	h.PackInto(buf)

	var h2 Header
	h2.UnpackFrom(buf)
	assert.True(t, h2.TrailerIncluded())
	assert.True(t, h2.SpectrumOrTime())
}

func TestHeaderCommandVariantBits(t *testing.T) {
	var h Header
	h.SetPacketType(PacketTypeCommand)
	h.SetAcknowledgePacket(true)
	h.SetCancellationPacket(true)
	buf := make([]byte, 4)
	h.PackInto(buf)

	var h2 Header
	h2.UnpackFrom(buf)
	require.True(t, h2.AcknowledgePacket())
	require.True(t, h2.CancellationPacket())
}

func TestPacketTypeClassification(t *testing.T) {
	assert.True(t, PacketTypeSignalData.HasStreamID() == false)
	assert.True(t, PacketTypeContext.HasStreamID())
	assert.True(t, PacketTypeSignalData.IsData())
	assert.True(t, PacketTypeCommand.IsCommand())
	assert.False(t, PacketTypeContext.IsCommand())
	assert.True(t, PacketType(9).IsReserved())
}
