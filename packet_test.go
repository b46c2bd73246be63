package vrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An otherwise-empty Context packet
// with only the Context Field Change Indicator set packs to 12 bytes
// (4 header + 4 stream ID + 4 CIF0), with the CIF0 word's top bit set.
func TestPacketContextFieldChangeIndicator(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.CIF0.SetContextFieldChange(true)

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	require.Equal(t, 12, n)
	assert.Equal(t, []byte{0x80, 0x00, 0x00, 0x00}, buf[8:12])

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.True(t, p2.CIF0.ContextFieldChange())
}

// A Reference Point ID on an
// otherwise-empty Context packet grows the packet to 16 bytes with the
// field value at the tail.
func TestPacketReferencePointID(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.SetReferencePointID(0x12345678)

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, buf[12:16])

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.True(t, p2.CIF0.ReferencePointID())
	assert.Equal(t, uint32(0x12345678), p2.ReferencePointID.Value)
}

// A Bandwidth of 1.0 Hz on a Context
// packet packs its 8-byte N=64 R=20 fixed-point record at offset 12.
func TestPacketBandwidthOneHertz(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.SetBandwidth(1.0)

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	require.Equal(t, 20, n)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00}, buf[12:20])

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.InDelta(t, 1.0, p2.Bandwidth.Value, 1.0/(1<<20))
}

// A Formatted-GPS Geolocation record
// with latitude 90.0 packs 44 bytes onto a 12-byte prologue+CIF0
// header, with the latitude subfield at offset 28.
func TestPacketFormattedGPSLatitudeMax(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.SetFormattedGPS(Geolocation{Latitude: 90.0})

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	require.Equal(t, 56, n)
	assert.Equal(t, []byte{0x16, 0x80, 0x00, 0x00}, buf[28:32])

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.InDelta(t, 90.0, p2.FormattedGPS.Latitude, 1.0/(1<<22))
}

// At the full-packet level: a
// PayloadFormat record round-trips its exact byte pattern inside a
// Context packet.
func TestPacketPayloadFormatExactBytes(t *testing.T) {
	p := NewPacket(PacketTypeContext)
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
	p.SetPayloadFormat(pf)

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	require.Equal(t, 20, n)
	assert.Equal(t, []byte{0x8E, 0x12, 0x00, 0xC7, 0x12, 0x33, 0x56, 0x77}, buf[12:20])

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.Equal(t, PackingMethodLinkEfficient, p2.PayloadFormatField.PackingMethod())
	assert.Equal(t, uint16(0x1234), p2.PayloadFormatField.RepeatCount)
}

// At the full-packet level: a Command
// packet carrying a CAM word round-trips its prologue.
func TestPacketCommandCAMTimingDevice(t *testing.T) {
	p := NewPacket(PacketTypeCommand)
	p.StreamID.Set(0xAABBCCDD)
	p.CAM.SetControlleeEnable(true)
	p.CAM.SetControlleeFormat(IdentifierFormatUUID)
	p.CAM.SetActionMode(ActionModeExecute)
	p.CAM.SetTimingControl(TimestampControlDevice)
	p.MessageID.Set(7)

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	require.Equal(t, 20, n) // header + streamID + CAM + messageID + CIF0

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.True(t, p2.CAM.ControlleeEnable())
	assert.Equal(t, IdentifierFormatUUID, p2.CAM.ControlleeFormat())
	assert.Equal(t, ActionModeExecute, p2.CAM.ActionMode())
	assert.Equal(t, TimestampControlDevice, p2.CAM.TimingControl())
	assert.Equal(t, uint32(7), p2.MessageID.Get())
}

func TestPacketAcknowledgeCarriesWarningsAndErrors(t *testing.T) {
	p := NewPacket(PacketTypeCommand)
	p.Header.SetAcknowledgePacket(true)
	p.Warnings.SetDeviceFailure(true)
	p.Errors.SetDistortion(true)

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.True(t, p2.Header.AcknowledgePacket())
	assert.True(t, p2.Warnings.DeviceFailure())
	assert.True(t, p2.Errors.Distortion())
	assert.Equal(t, n, len(buf))
}

func TestPacketControlOmitsWarningsAndErrors(t *testing.T) {
	p := NewPacket(PacketTypeCommand)
	withAck := NewPacket(PacketTypeCommand)
	withAck.Header.SetAcknowledgePacket(true)
	assert.Equal(t, BytesRequired(p)+8, BytesRequired(withAck))
}

// Signal Data packets never carry CAM, MessageID, CIF words, or
// Warnings/Errors — only prologue plus raw payload bytes.
func TestPacketSignalDataPayloadOnly(t *testing.T) {
	p := NewPacket(PacketTypeSignalDataStreamID)
	p.StreamID.Set(1)
	p.Payload = []byte{0xDE, 0xAD, 0xBE, 0xEF}

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.Equal(t, p.Payload, p2.Payload)
}

// Round-trip law: Pack followed by Unpack reproduces every populated
// field, across a packet exercising all four CIF words.
func TestPacketRoundTripAllCIFWords(t *testing.T) {
	p := NewPacket(PacketTypeExtensionContext)
	p.StreamID.Set(42)
	p.SetBandwidth(2.5)
	p.SetGain(Gain{Stage1: 1.0, Stage2: -1.0})
	p.SetPhaseOffset(3.0)
	p.SetCountryCode(840)
	p.SetNetworkID(99)

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.InDelta(t, 2.5, p2.Bandwidth.Value, 1.0/(1<<20))
	assert.InDelta(t, 1.0, p2.GainField.Stage1, 1.0/128)
	assert.InDelta(t, 3.0, p2.PhaseOffset.Value, 1.0/128)
	assert.Equal(t, uint32(840), p2.CountryCode.Value)
	assert.Equal(t, uint32(99), p2.NetworkID.Value)
}

// Endianness law: every multi-byte word in a packed packet appears
// big-endian, confirmed here via the Stream ID word.
func TestPacketStreamIDIsBigEndian(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.StreamID.Set(0x01020304)

	buf := make([]byte, BytesRequired(p))
	_, err := Pack(p, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf[4:8])
}

// CIF correspondence law: setting a CIF0 enable bit adds exactly that
// field's Size() to the packed length, and clearing it removes exactly
// that much.
func TestPacketCIFCorrespondenceLaw(t *testing.T) {
	base := NewPacket(PacketTypeContext)
	baseLen := BytesRequired(base)

	withGain := NewPacket(PacketTypeContext)
	withGain.CIF0.SetGain(true)
	assert.Equal(t, baseLen+4, BytesRequired(withGain))

	withGPS := NewPacket(PacketTypeContext)
	withGPS.CIF0.SetFormattedGPS(true)
	assert.Equal(t, baseLen+44, BytesRequired(withGPS))
}

// A Context packet declaring a CIF1 bit with no dispatched record
// (the out-of-scope variable-length structures) fails to unpack with
// UnknownFieldError rather than silently dropping bytes.
func TestPacketUnpackRejectsUnimplementedCIF1Bit(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetSpectrum(true)

	buf := make([]byte, BytesRequired(p)+64)
	n, err := Pack(p, buf)
	require.NoError(t, err)

	var p2 Packet
	err = Unpack(&p2, buf[:n])
	require.Error(t, err)
	var fieldErr *UnknownFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "CIF1", fieldErr.CIF)
}

func TestPacketUnpackTruncatedHeader(t *testing.T) {
	var p Packet
	err := Unpack(&p, []byte{0x04})
	require.Error(t, err)
	assert.True(t, IsErrTruncated(err))
}

func TestPacketUnpackTruncatedDeclaredSize(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.SetBandwidth(1.0)
	buf := make([]byte, BytesRequired(p))
	_, err := Pack(p, buf)
	require.NoError(t, err)

	var p2 Packet
	err = Unpack(&p2, buf[:len(buf)-4])
	require.Error(t, err)
	assert.True(t, IsErrTruncated(err))
}

func TestPacketUnpackRejectsReservedPacketType(t *testing.T) {
	buf := make([]byte, 4)
	buf[0] = 0x90 // packet type 9, reserved
	buf[3] = 0x01
	var p Packet
	err := Unpack(&p, buf)
	require.Error(t, err)
	assert.True(t, IsErrUnknownPacketType(err))
}

func TestMatchAcceptsWellFormedPacket(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.SetReferencePointID(1)

	buf := make([]byte, BytesRequired(p))
	_, err := Pack(p, buf)
	require.NoError(t, err)
	assert.True(t, Match(buf))
}

func TestMatchRejectsShortOrMismatchedBuffer(t *testing.T) {
	assert.False(t, Match([]byte{0x00, 0x00, 0x00}))

	p := NewPacket(PacketTypeContext)
	buf := make([]byte, BytesRequired(p))
	_, err := Pack(p, buf)
	require.NoError(t, err)
	assert.False(t, Match(append(buf, 0x00)))
}

// A GPS ASCII payload round-trips through the public Unpack entry
// point. Before unpacking, p2's zero-valued GPSASCIIField reports
// Size() 8 (an empty payload); the dispatch must size the slice from
// the wire's Number-Of-Words word, not from that stale zero value, or
// a non-empty payload spuriously truncates.
func TestPacketUnpackGPSASCIIRoundTrip(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.SetGPSASCII(GpsAscii{ManufacturerOUI: 0xABCDEF, ASCII: []byte("$GPGGA,1234*")})

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.Equal(t, uint32(0xABCDEF), p2.GPSASCIIField.ManufacturerOUI)
	assert.Equal(t, []byte("$GPGGA,1234*"), p2.GPSASCIIField.ASCII)
}

// A Context Association Lists record round-trips through the public
// Unpack entry point, the same stale-Size() hazard as GPS ASCII.
func TestPacketUnpackAssociationListsRoundTrip(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.SetAssociationLists(ContextAssociationLists{
		SourceList:          []uint32{1, 2, 3},
		SystemList:          []uint32{4},
		VectorComponentList: []uint32{5, 6},
		AsyncChannelList:    []uint32{7, 8, 9, 10},
	})

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.Equal(t, []uint32{1, 2, 3}, p2.AssociationLists.SourceList)
	assert.Equal(t, []uint32{4}, p2.AssociationLists.SystemList)
	assert.Equal(t, []uint32{5, 6}, p2.AssociationLists.VectorComponentList)
	assert.Equal(t, []uint32{7, 8, 9, 10}, p2.AssociationLists.AsyncChannelList)
}

// Both variable-length CIF0 fields present together exercise the
// bit-walk dispatch picking the right peekSize for each in sequence.
func TestPacketUnpackGPSASCIIAndAssociationListsTogether(t *testing.T) {
	p := NewPacket(PacketTypeContext)
	p.SetGPSASCII(GpsAscii{ASCII: []byte("abcdefgh")})
	p.SetAssociationLists(ContextAssociationLists{SourceList: []uint32{42}})

	buf := make([]byte, BytesRequired(p))
	n, err := Pack(p, buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var p2 Packet
	require.NoError(t, Unpack(&p2, buf))
	assert.Equal(t, []byte("abcdefgh"), p2.GPSASCIIField.ASCII)
	assert.Equal(t, []uint32{42}, p2.AssociationLists.SourceList)
}
