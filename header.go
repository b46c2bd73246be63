package vrt

/*
header.go is C6: the base 32-bit VRT header plus the packet-type-specific
interpretation of its three variant bits (26, 25, 24), and the small
fixed-width prologue words that follow it per VITA 49.2's packet structure.

Grounded on original_source/include/vrtgen/packing/header.hpp's Header /
DataHeader / ContextHeader / CommandHeader class hierarchy. Go has no
inheritance, so rather than three thin wrapper types embedding a shared
Header the way the C++ source does, a single Header struct exposes every
variant's accessors directly (TrailerIncluded for Data packets,
Acknowledge/CancellationPacket for Command packets, TSM for Context
packets) — which bit position a given variant's bits 26/25/24 mean is
determined by the caller knowing which packet type it is building or has
parsed, exactly as the C++ source requires the caller to pick DataHeader
vs. ContextHeader vs. CommandHeader up front.
*/

const (
	hdrPacketType     = 31
	hdrClassIDEnable  = 27
	hdrVariantBit26   = 26
	hdrVariantBit25   = 25
	hdrVariantBit24   = 24
	hdrTSI            = 23
	hdrTSF            = 21
	hdrPacketCount    = 19
	hdrPacketSize     = 15
)

// Header is the mandatory 32-bit VRT Packet Header (VITA 49.2 §5.1.1).
type Header struct {
	packed Packed32
}

// PacketType returns the 4-bit Packet Type field at bit position 31.
func (h *Header) PacketType() PacketType {
	return getField[PacketType](&h.packed, hdrPacketType, 4)
}

// SetPacketType sets the 4-bit Packet Type field at bit position 31.
func (h *Header) SetPacketType(v PacketType) {
	setField(&h.packed, hdrPacketType, 4, v)
}

// ClassIDEnable returns the 1-bit Class Identifier Enable flag at bit 27.
func (h *Header) ClassIDEnable() bool { return h.packed.Bit(hdrClassIDEnable) }

// SetClassIDEnable sets the Class Identifier Enable flag at bit 27.
func (h *Header) SetClassIDEnable(v bool) { h.packed.SetBit(hdrClassIDEnable, v) }

// TSI returns the 2-bit TimeStamp-Integer code at bit position 23.
func (h *Header) TSI() TSI { return getField[TSI](&h.packed, hdrTSI, 2) }

// SetTSI sets the 2-bit TimeStamp-Integer code at bit position 23.
func (h *Header) SetTSI(v TSI) { setField(&h.packed, hdrTSI, 2, v) }

// TSF returns the 2-bit TimeStamp-Fractional code at bit position 21.
func (h *Header) TSF() TSF { return getField[TSF](&h.packed, hdrTSF, 2) }

// SetTSF sets the 2-bit TimeStamp-Fractional code at bit position 21.
func (h *Header) SetTSF(v TSF) { setField(&h.packed, hdrTSF, 2, v) }

// PacketCount returns the 4-bit, mod-16 monotonic Packet Count at bit 19.
func (h *Header) PacketCount() uint8 { return getField[uint8](&h.packed, hdrPacketCount, 4) }

// SetPacketCount sets the 4-bit Packet Count at bit position 19.
func (h *Header) SetPacketCount(v uint8) { setField(&h.packed, hdrPacketCount, 4, v) }

// PacketSize returns the 16-bit Packet Size field (in 32-bit words) at bit
// position 15.
func (h *Header) PacketSize() uint16 { return getField[uint16](&h.packed, hdrPacketSize, 16) }

// SetPacketSize sets the 16-bit Packet Size field (in 32-bit words).
func (h *Header) SetPacketSize(v uint16) { setField(&h.packed, hdrPacketSize, 16, v) }

// TrailerIncluded returns bit 26 interpreted as the Data header's Trailer
// Included flag. Valid on Signal Data / Extension Data variants only.
func (h *Header) TrailerIncluded() bool { return h.packed.Bit(hdrVariantBit26) }

// SetTrailerIncluded sets bit 26 as the Data header's Trailer Included flag.
func (h *Header) SetTrailerIncluded(v bool) { h.packed.SetBit(hdrVariantBit26, v) }

// NotV49D0 returns bit 25 interpreted as the Not-a-V49.0-Packet indicator.
// Valid on Data and Context variants.
func (h *Header) NotV49D0() bool { return h.packed.Bit(hdrVariantBit25) }

// SetNotV49D0 sets bit 25 as the Not-a-V49.0-Packet indicator.
func (h *Header) SetNotV49D0(v bool) { h.packed.SetBit(hdrVariantBit25, v) }

// SpectrumOrTime returns bit 24 interpreted as the Data header's Signal
// Spectrum-or-Time flag. Valid on Signal Data / Extension Data variants.
func (h *Header) SpectrumOrTime() bool { return h.packed.Bit(hdrVariantBit24) }

// SetSpectrumOrTime sets bit 24 as the Data header's Signal
// Spectrum-or-Time flag.
func (h *Header) SetSpectrumOrTime(v bool) { h.packed.SetBit(hdrVariantBit24, v) }

// TSM returns bit 24 interpreted as the Context header's Timestamp Mode.
// Valid on Context / Extension Context variants.
func (h *Header) TSM() TSM { return TSM(h.packed.Get(hdrVariantBit24, 1)) }

// SetTSM sets bit 24 as the Context header's Timestamp Mode.
func (h *Header) SetTSM(v TSM) { h.packed.Set(hdrVariantBit24, 1, uint32(v)) }

// AcknowledgePacket returns bit 26 interpreted as the Command header's
// Acknowledge Packet flag. Valid on Command / Extension Command variants.
func (h *Header) AcknowledgePacket() bool { return h.packed.Bit(hdrVariantBit26) }

// SetAcknowledgePacket sets bit 26 as the Command header's Acknowledge
// Packet flag.
func (h *Header) SetAcknowledgePacket(v bool) { h.packed.SetBit(hdrVariantBit26, v) }

// CancellationPacket returns bit 24 interpreted as the Command header's
// Cancellation Packet flag.
func (h *Header) CancellationPacket() bool { return h.packed.Bit(hdrVariantBit24) }

// SetCancellationPacket sets bit 24 as the Command header's Cancellation
// Packet flag.
func (h *Header) SetCancellationPacket(v bool) { h.packed.SetBit(hdrVariantBit24, v) }

// Size is the on-wire size of the header in bytes.
func (h *Header) Size() int { return h.packed.Size() }

// PackInto writes the header's 4 bytes big-endian to buf[0:4].
func (h *Header) PackInto(buf []byte) { h.packed.PackInto(buf) }

// UnpackFrom reads the header's 4 bytes big-endian from buf[0:4].
func (h *Header) UnpackFrom(buf []byte) { h.packed.UnpackFrom(buf) }

// StreamIdentifier is the optional 32-bit Stream ID prologue word (present
// for every packet type except plain Signal Data).
type StreamIdentifier struct {
	value uint32
}

func (s *StreamIdentifier) Get() uint32  { return s.value }
func (s *StreamIdentifier) Set(v uint32) { s.value = v }
func (s *StreamIdentifier) Size() int    { return 4 }

func (s *StreamIdentifier) PackInto(buf []byte)   { putBE32(buf, s.value) }
func (s *StreamIdentifier) UnpackFrom(buf []byte) { s.value = fromBE32(buf) }

// ClassIdentifier is the optional 64-bit Class Identifier prologue field:
// a reserved byte, a 24-bit OUI, and two 16-bit packet class codes.
type ClassIdentifier struct {
	oui              uint32 // 24 bits significant
	informationClassCode uint16
	packetClassCode  uint16
}

func (c *ClassIdentifier) OUI() uint32                { return c.oui & 0xFFFFFF }
func (c *ClassIdentifier) SetOUI(v uint32)            { c.oui = v & 0xFFFFFF }
func (c *ClassIdentifier) InformationClassCode() uint16 { return c.informationClassCode }
func (c *ClassIdentifier) SetInformationClassCode(v uint16) { c.informationClassCode = v }
func (c *ClassIdentifier) PacketClassCode() uint16    { return c.packetClassCode }
func (c *ClassIdentifier) SetPacketClassCode(v uint16) { c.packetClassCode = v }

func (c *ClassIdentifier) Size() int { return 8 }

func (c *ClassIdentifier) PackInto(buf []byte) {
	putBE32(buf[0:4], c.oui&0xFFFFFF)
	putBE16(buf[4:6], c.informationClassCode)
	putBE16(buf[6:8], c.packetClassCode)
}

func (c *ClassIdentifier) UnpackFrom(buf []byte) {
	c.oui = fromBE32(buf[0:4]) & 0xFFFFFF
	c.informationClassCode = fromBE16(buf[4:6])
	c.packetClassCode = fromBE16(buf[6:8])
}

// IntegerTimestamp is the optional 32-bit Integer-seconds Timestamp.
type IntegerTimestamp struct{ value uint32 }

func (t *IntegerTimestamp) Get() uint32  { return t.value }
func (t *IntegerTimestamp) Set(v uint32) { t.value = v }
func (t *IntegerTimestamp) Size() int    { return 4 }

func (t *IntegerTimestamp) PackInto(buf []byte)   { putBE32(buf, t.value) }
func (t *IntegerTimestamp) UnpackFrom(buf []byte) { t.value = fromBE32(buf) }

// FractionalTimestamp is the optional 64-bit Fractional-seconds Timestamp.
type FractionalTimestamp struct{ value uint64 }

func (t *FractionalTimestamp) Get() uint64  { return t.value }
func (t *FractionalTimestamp) Set(v uint64) { t.value = v }
func (t *FractionalTimestamp) Size() int    { return 8 }

func (t *FractionalTimestamp) PackInto(buf []byte)   { putBE64(buf, t.value) }
func (t *FractionalTimestamp) UnpackFrom(buf []byte) { t.value = fromBE64(buf) }

// MessageIdentifier is the 32-bit Message ID word following the CAM word
// on Command and Extension Command packets.
type MessageIdentifier struct{ value uint32 }

func (m *MessageIdentifier) Get() uint32  { return m.value }
func (m *MessageIdentifier) Set(v uint32) { m.value = v }
func (m *MessageIdentifier) Size() int    { return 4 }

func (m *MessageIdentifier) PackInto(buf []byte)   { putBE32(buf, m.value) }
func (m *MessageIdentifier) UnpackFrom(buf []byte) { m.value = fromBE32(buf) }

// Sentinel values for unspecified prologue/record subfields.
const (
	sentinel32        uint32 = 0x7FFFFFFF
	sentinelTimestamp32 uint32 = 0xFFFFFFFF
	sentinelTimestamp64 uint64 = 0xFFFFFFFFFFFFFFFF
)
