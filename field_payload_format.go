package vrt

/*
field_payload_format.go is the Signal Data Packet Payload Format field
(VITA 49.2 §9.13.3), grounded on cif0.hpp's PayloadFormat class: a
packed control word followed by 16-bit Repeat Count and Vector Size
subfields. ItemPackingFieldSize, DataItemSize, RepeatCount, and
VectorSize are all stored on the wire as (value - 1); the accessors
below add/subtract 1 so callers always see the true count.
*/

const (
	pfPackingMethod         = 31
	pfRealComplexType       = 30
	pfDataItemFormat        = 28
	pfRepeatIndicator       = 23
	pfEventTagSize          = 22
	pfChannelTagSize        = 19
	pfDataItemFractionSize  = 15
	pfItemPackingFieldSize  = 11
	pfDataItemSize          = 5
)

// PayloadFormat is the Signal Data Packet Payload Format context field.
type PayloadFormat struct {
	packed      Packed32
	RepeatCount uint16
	VectorSize  uint16
}

func (p *PayloadFormat) Size() int { return 8 }

func (p *PayloadFormat) PackingMethod() PackingMethod {
	return getField[PackingMethod](&p.packed, pfPackingMethod, 1)
}
func (p *PayloadFormat) SetPackingMethod(v PackingMethod) {
	setField(&p.packed, pfPackingMethod, 1, v)
}

func (p *PayloadFormat) RealComplexType() DataSampleType {
	return getField[DataSampleType](&p.packed, pfRealComplexType, 2)
}
func (p *PayloadFormat) SetRealComplexType(v DataSampleType) {
	setField(&p.packed, pfRealComplexType, 2, v)
}

func (p *PayloadFormat) DataItemFormat() DataItemFormat {
	return getField[DataItemFormat](&p.packed, pfDataItemFormat, 5)
}
func (p *PayloadFormat) SetDataItemFormat(v DataItemFormat) {
	setField(&p.packed, pfDataItemFormat, 5, v)
}

func (p *PayloadFormat) RepeatIndicator() bool { return p.packed.Bit(pfRepeatIndicator) }
func (p *PayloadFormat) SetRepeatIndicator(v bool) {
	p.packed.SetBit(pfRepeatIndicator, v)
}

func (p *PayloadFormat) EventTagSize() uint8 {
	return getField[uint8](&p.packed, pfEventTagSize, 3)
}
func (p *PayloadFormat) SetEventTagSize(v uint8) {
	setField(&p.packed, pfEventTagSize, 3, v)
}

func (p *PayloadFormat) ChannelTagSize() uint8 {
	return getField[uint8](&p.packed, pfChannelTagSize, 4)
}
func (p *PayloadFormat) SetChannelTagSize(v uint8) {
	setField(&p.packed, pfChannelTagSize, 4, v)
}

func (p *PayloadFormat) DataItemFractionSize() uint8 {
	return getField[uint8](&p.packed, pfDataItemFractionSize, 4)
}
func (p *PayloadFormat) SetDataItemFractionSize(v uint8) {
	setField(&p.packed, pfDataItemFractionSize, 4, v)
}

// ItemPackingFieldSize returns the true field size in bits. The wire
// stores this value minus one (spec's "stored as value-1" rule).
func (p *PayloadFormat) ItemPackingFieldSize() uint8 {
	return getField[uint8](&p.packed, pfItemPackingFieldSize, 6) + 1
}
func (p *PayloadFormat) SetItemPackingFieldSize(v uint8) {
	setField(&p.packed, pfItemPackingFieldSize, 6, v-1)
}

// DataItemSize returns the true per-item size in bits, wire-minus-one.
func (p *PayloadFormat) DataItemSize() uint8 {
	return getField[uint8](&p.packed, pfDataItemSize, 6) + 1
}
func (p *PayloadFormat) SetDataItemSize(v uint8) {
	setField(&p.packed, pfDataItemSize, 6, v-1)
}

func (p *PayloadFormat) PackInto(buf []byte) {
	p.packed.PackInto(buf[0:4])
	putBE16(buf[4:6], p.RepeatCount-1)
	putBE16(buf[6:8], p.VectorSize-1)
}

func (p *PayloadFormat) UnpackFrom(buf []byte) {
	p.packed.UnpackFrom(buf[0:4])
	p.RepeatCount = fromBE16(buf[4:6]) + 1
	p.VectorSize = fromBE16(buf[6:8]) + 1
}
