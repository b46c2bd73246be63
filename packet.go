package vrt

/*
packet.go is C10, the packet aggregate and the assembler/parser that
walks it. original_source's vrtgen generates one bespoke C++ class per
user-declared packet (derived from Data/Context/CommandPacket base
classes whose pack()/unpack() are hand-written in
original_source/include/vrtgen/*.hpp's packet headers); this module
instead carries a single Packet struct wide enough for every VITA 49.2
variant, the way a hand-written Go codec collapses generated-per-schema
types into one runtime-dispatched aggregate. Which prologue words and
CIF bits are valid on a given Packet is determined by its Header's
PacketType, exactly as the generated C++ classes are simply never
compiled with fields their schema didn't declare.

Field coverage draws a line at the most intricate records (Gain,
DeviceIdentifier, StateEventIndicators, Geolocation, Ephemeris,
PayloadFormat, ContextAssociationLists, GpsAscii, WarningErrorFields):
those get named struct fields and full pack/unpack dispatch. CIF1/CIF2/
CIF3's many scalar fields with a named purpose but no byte-exact layout
documented anywhere in the pack (phase offset, polarization, the
identifier family, timing and environmental values) are modeled with
the fixed-point/integer scalar family from field_simple.go, sized to
the nearest documented (N,R) fixed-point family. CIF1's handful of
genuinely variable multi-word structures with no documented byte layout at
all (Spectrum, Sector/Step-Scan, Index List, Array-of-CIFs, Pointing
Vector Structure, Spatial Scan Type, Spatial Reference Type) are outside
this pass: their enable bits exist on CIF1Enables and round-trip
correctly, but the aggregate does not carry or dispatch a typed record
for them. See DESIGN.md.

CIF7 gets a named struct field and dispatch only for the two bits that
name an attached record with a documented byte layout, Belief and
Probability; its other eleven bits (current/mean/median value, standard
deviation, extrema, precision, accuracy, first/second/third derivative)
each describe a statistic computed over every CIF0-3 field also present
in the packet rather than one fixed attached record, which this
aggregate's flat per-field layout has no way to multiply out. Those
bits round-trip correctly on CIF7Enables; see DESIGN.md.
*/

// Packet is a single mutable aggregate covering every VRT packet
// variant. Which prologue words and CIF-gated fields apply to a given
// instance is determined by Header.PacketType.
type Packet struct {
	Header               Header
	StreamID             StreamIdentifier
	ClassID              ClassIdentifier
	IntegerTimestamp     IntegerTimestamp
	FractionalTimestamp  FractionalTimestamp
	CAM                  CAM
	MessageID            MessageIdentifier

	CIF0 CIF0Enables
	CIF1 CIF1Enables
	CIF2 CIF2Enables
	CIF3 CIF3Enables
	CIF7 CIF7Enables

	// CIF0 field records.
	ReferencePointID           UInt32Field
	Bandwidth                  Fixed64Field
	IFReferenceFrequency       Fixed64Field
	RFReferenceFrequency       Fixed64Field
	RFReferenceFrequencyOffset Fixed64Field
	IFBandOffset               Fixed64Field
	ReferenceLevel             Fixed32Field
	GainField                  Gain
	OverRangeCount             UInt32Field
	SampleRate                 Fixed64Field
	TimestampAdjustment        UInt64Field
	TimestampCalibrationTime   UInt32Field
	Temperature                Fixed32Field
	DeviceID                   DeviceIdentifier
	StateEvent                 StateEventIndicators
	PayloadFormatField         PayloadFormat
	FormattedGPS               Geolocation
	FormattedINS               Geolocation
	ECEFEphemeris              Ephemeris
	RelativeEphemeris          Ephemeris
	EphemerisRefID             UInt32Field
	GPSASCIIField              GpsAscii
	AssociationLists           ContextAssociationLists

	// CIF1 scalar field records (§4.2 family-nearest sizing).
	PhaseOffset       Fixed32Field
	Polarization      [2]Fixed32Field // tilt angle, ellipticity angle
	PointingVector    [2]Fixed32Field // azimuth, elevation
	BeamWidth         [2]Fixed32Field // horizontal, vertical
	RangeField        Fixed32Field
	EbNoBER           [2]Fixed32Field // Eb/No, BER
	Threshold         [2]Fixed32Field // stage 1, stage 2
	CompressionPoint  Fixed32Field
	InterceptPoints   [2]Fixed32Field // 2nd order, 3rd order
	SNRNoiseFigure    [2]Fixed32Field // SNR, noise figure
	AuxFrequency      Fixed64Field
	AuxGain           Gain
	AuxBandwidth      Fixed64Field
	DiscreteIO32Field UInt32Field
	DiscreteIO64Field UInt64Field
	HealthStatus      UInt32Field
	V49SpecCompliance UInt32Field
	VersionBuildCode  UInt32Field
	BufferSize        [2]UInt32Field // buffer size, buffer level

	// CIF2 identifier field records.
	Bind               UInt32Field
	CitedSID           UInt32Field
	SiblingSID         UInt32Field
	ParentSID          UInt32Field
	ChildSID           UInt32Field
	CitedMessageID     UInt32Field
	ControlleeID       UInt32Field
	ControlleeUUID     UUIDField
	ControllerID       UInt32Field
	ControllerUUID     UUIDField
	InformationSource  UInt32Field
	TrackID            UInt32Field
	CountryCode        UInt32Field
	Operator           UInt32Field
	PlatformClass      UInt32Field
	PlatformInstance   UInt32Field
	PlatformDisplay    UInt32Field
	EMSDeviceClass     UInt32Field
	EMSDeviceType      UInt32Field
	EMSDeviceInstance  UInt32Field
	ModulationClass    UInt32Field
	ModulationType     UInt32Field
	FunctionID         UInt32Field
	ModeID             UInt32Field
	EventID            UInt32Field
	FunctionPriorityID UInt32Field
	CommPriorityID     UInt32Field
	RFFootprint        UInt32Field
	RFFootprintRange   UInt32Field

	// CIF3 timing and environmental field records.
	TimestampDetails     Fixed64Field
	TimestampSkew        Fixed64Field
	RiseTime             Fixed64Field
	FallTime             Fixed64Field
	OffsetTime           Fixed64Field
	PulseWidth           Fixed64Field
	Period               Fixed64Field
	Duration             Fixed64Field
	Dwell                Fixed64Field
	Jitter               Fixed64Field
	Age                  UInt32Field
	ShelfLife            UInt32Field
	AirTemperature       Fixed32Field
	SeaGroundTemperature Fixed32Field
	Humidity             Fixed32Field
	BarometricPressure   Fixed32Field
	SeaSwellState        UInt32Field
	TroposphericState    UInt32Field
	NetworkID            UInt32Field

	// Command/Acknowledge-only fault and CIF7-shared indicator words.
	Warnings WarningErrorFields
	Errors   WarningErrorFields

	// CIF7 attachment records (see the CIF7 scope note above).
	Belief      Belief
	Probability Probability

	// Signal Data-only opaque payload, copied out of the buffer on unpack
	// and owned on pack per the caller's assignment.
	Payload []byte
}

// NewPacket returns a Packet of the given variant with the header's
// Packet Type set and every sentinel-bearing field defaulted per
// VITA 49.2.
func NewPacket(pt PacketType) *Packet {
	p := &Packet{
		IntegerTimestamp:    IntegerTimestamp{value: sentinelTimestamp32},
		FractionalTimestamp: FractionalTimestamp{value: sentinelTimestamp64},
		FormattedGPS:        NewGeolocation(),
		FormattedINS:        NewGeolocation(),
		ECEFEphemeris:       NewEphemeris(),
		RelativeEphemeris:   NewEphemeris(),
	}
	p.Header.SetPacketType(pt)
	return p
}

// fieldSlot binds one CIF bit position to its typed record's size/pack/
// unpack operations, letting Pack/Unpack walk CIF bits 31 down to 1
// generically instead of repeating the same switch in both directions.
//
// peekSize is set only for records whose Size() depends on data Size()
// cannot see until UnpackFrom has run (ContextAssociationLists,
// GpsAscii). When set, Unpack calls it against the unconsumed buffer to
// learn the true record length before asking the cursor for a slice;
// size() on those records is only accurate once they are already
// populated, which Pack can rely on but Unpack cannot.
type fieldSlot struct {
	bit      int
	name     string
	size     func() int
	pack     func(buf []byte)
	unpack   func(buf []byte) error
	peekSize func(remaining []byte) (int, error)
}

func simpleSlot(bit int, name string, f interface {
	Size() int
	PackInto([]byte)
	UnpackFrom([]byte)
}) fieldSlot {
	return fieldSlot{
		bit:  bit,
		name: name,
		size: f.Size,
		pack: f.PackInto,
		unpack: func(buf []byte) error {
			f.UnpackFrom(buf)
			return nil
		},
	}
}

func errableSlot(bit int, name string, f interface {
	Size() int
	PackInto([]byte)
	UnpackFrom([]byte) error
}) fieldSlot {
	return fieldSlot{bit: bit, name: name, size: f.Size, pack: f.PackInto, unpack: f.UnpackFrom}
}

// errableVarSlot is errableSlot for a record whose Size() is only
// trustworthy after UnpackFrom has populated it; peek computes the true
// on-wire length from the raw unconsumed bytes instead.
func errableVarSlot(bit int, name string, f interface {
	Size() int
	PackInto([]byte)
	UnpackFrom([]byte) error
	PeekSize([]byte) (int, error)
}) fieldSlot {
	return fieldSlot{bit: bit, name: name, size: f.Size, pack: f.PackInto, unpack: f.UnpackFrom, peekSize: f.PeekSize}
}

func (p *Packet) cif0Slots() []fieldSlot {
	return []fieldSlot{
		simpleSlot(cif0ReferencePointID, "ReferencePointID", &p.ReferencePointID),
		simpleSlot(cif0Bandwidth, "Bandwidth", &p.Bandwidth),
		simpleSlot(cif0IFReferenceFrequency, "IFReferenceFrequency", &p.IFReferenceFrequency),
		simpleSlot(cif0RFReferenceFrequency, "RFReferenceFrequency", &p.RFReferenceFrequency),
		simpleSlot(cif0RFReferenceFreqOffset, "RFReferenceFrequencyOffset", &p.RFReferenceFrequencyOffset),
		simpleSlot(cif0IFBandOffset, "IFBandOffset", &p.IFBandOffset),
		simpleSlot(cif0ReferenceLevel, "ReferenceLevel", &p.ReferenceLevel),
		simpleSlot(cif0Gain, "Gain", &p.GainField),
		simpleSlot(cif0OverRangeCount, "OverRangeCount", &p.OverRangeCount),
		simpleSlot(cif0SampleRate, "SampleRate", &p.SampleRate),
		simpleSlot(cif0TimestampAdjustment, "TimestampAdjustment", &p.TimestampAdjustment),
		simpleSlot(cif0TimestampCalTime, "TimestampCalibrationTime", &p.TimestampCalibrationTime),
		simpleSlot(cif0Temperature, "Temperature", &p.Temperature),
		simpleSlot(cif0DeviceID, "DeviceIdentifier", &p.DeviceID),
		simpleSlot(cif0StateEventIndicators, "StateEventIndicators", &p.StateEvent),
		simpleSlot(cif0PayloadFormat, "PayloadFormat", &p.PayloadFormatField),
		simpleSlot(cif0FormattedGPS, "FormattedGPS", &p.FormattedGPS),
		simpleSlot(cif0FormattedINS, "FormattedINS", &p.FormattedINS),
		simpleSlot(cif0ECEFEphemeris, "ECEFEphemeris", &p.ECEFEphemeris),
		simpleSlot(cif0RelativeEphemeris, "RelativeEphemeris", &p.RelativeEphemeris),
		simpleSlot(cif0EphemerisRefID, "EphemerisReferenceID", &p.EphemerisRefID),
		errableVarSlot(cif0GPSASCII, "GpsAscii", &p.GPSASCIIField),
		errableVarSlot(cif0ContextAssocLists, "ContextAssociationLists", &p.AssociationLists),
	}
}

func (p *Packet) cif7Slots() []fieldSlot {
	return []fieldSlot{
		simpleSlot(cif7Belief, "Belief", &p.Belief),
		simpleSlot(cif7Probability, "Probability", &p.Probability),
	}
}

func (p *Packet) cif1Slots() []fieldSlot {
	return []fieldSlot{
		simpleSlot(cif1PhaseOffset, "PhaseOffset", &p.PhaseOffset),
		simpleSlot(cif1Polarization, "Polarization", pairField{&p.Polarization[0], &p.Polarization[1]}),
		simpleSlot(cif1PointingVector, "PointingVector", pairField{&p.PointingVector[0], &p.PointingVector[1]}),
		simpleSlot(cif1BeamWidth, "BeamWidth", pairField{&p.BeamWidth[0], &p.BeamWidth[1]}),
		simpleSlot(cif1Range, "Range", &p.RangeField),
		simpleSlot(cif1EbNoBER, "EbNoBER", pairField{&p.EbNoBER[0], &p.EbNoBER[1]}),
		simpleSlot(cif1Threshold, "Threshold", pairField{&p.Threshold[0], &p.Threshold[1]}),
		simpleSlot(cif1CompressionPoint, "CompressionPoint", &p.CompressionPoint),
		simpleSlot(cif1InterceptPoints, "InterceptPoints", pairField{&p.InterceptPoints[0], &p.InterceptPoints[1]}),
		simpleSlot(cif1SNRNoiseFigure, "SNRNoiseFigure", pairField{&p.SNRNoiseFigure[0], &p.SNRNoiseFigure[1]}),
		simpleSlot(cif1AuxFrequency, "AuxFrequency", &p.AuxFrequency),
		simpleSlot(cif1AuxGain, "AuxGain", &p.AuxGain),
		simpleSlot(cif1AuxBandwidth, "AuxBandwidth", &p.AuxBandwidth),
		simpleSlot(cif1DiscreteIO32, "DiscreteIO32", &p.DiscreteIO32Field),
		simpleSlot(cif1DiscreteIO64, "DiscreteIO64", &p.DiscreteIO64Field),
		simpleSlot(cif1HealthStatus, "HealthStatus", &p.HealthStatus),
		simpleSlot(cif1V49SpecCompliance, "V49SpecCompliance", &p.V49SpecCompliance),
		simpleSlot(cif1VersionBuildCode, "VersionBuildCode", &p.VersionBuildCode),
		simpleSlot(cif1BufferSize, "BufferSize", pairField{&p.BufferSize[0], &p.BufferSize[1]}),
	}
}

func (p *Packet) cif2Slots() []fieldSlot {
	return []fieldSlot{
		simpleSlot(cif2Bind, "Bind", &p.Bind),
		simpleSlot(cif2CitedSID, "CitedSID", &p.CitedSID),
		simpleSlot(cif2SiblingSID, "SiblingSID", &p.SiblingSID),
		simpleSlot(cif2ParentSID, "ParentSID", &p.ParentSID),
		simpleSlot(cif2ChildSID, "ChildSID", &p.ChildSID),
		simpleSlot(cif2CitedMessageID, "CitedMessageID", &p.CitedMessageID),
		simpleSlot(cif2ControlleeID, "ControlleeID", &p.ControlleeID),
		simpleSlot(cif2ControlleeUUID, "ControlleeUUID", &p.ControlleeUUID),
		simpleSlot(cif2ControllerID, "ControllerID", &p.ControllerID),
		simpleSlot(cif2ControllerUUID, "ControllerUUID", &p.ControllerUUID),
		simpleSlot(cif2InformationSource, "InformationSource", &p.InformationSource),
		simpleSlot(cif2TrackID, "TrackID", &p.TrackID),
		simpleSlot(cif2CountryCode, "CountryCode", &p.CountryCode),
		simpleSlot(cif2Operator, "Operator", &p.Operator),
		simpleSlot(cif2PlatformClass, "PlatformClass", &p.PlatformClass),
		simpleSlot(cif2PlatformInstance, "PlatformInstance", &p.PlatformInstance),
		simpleSlot(cif2PlatformDisplay, "PlatformDisplay", &p.PlatformDisplay),
		simpleSlot(cif2EMSDeviceClass, "EMSDeviceClass", &p.EMSDeviceClass),
		simpleSlot(cif2EMSDeviceType, "EMSDeviceType", &p.EMSDeviceType),
		simpleSlot(cif2EMSDeviceInstance, "EMSDeviceInstance", &p.EMSDeviceInstance),
		simpleSlot(cif2ModulationClass, "ModulationClass", &p.ModulationClass),
		simpleSlot(cif2ModulationType, "ModulationType", &p.ModulationType),
		simpleSlot(cif2FunctionID, "FunctionID", &p.FunctionID),
		simpleSlot(cif2ModeID, "ModeID", &p.ModeID),
		simpleSlot(cif2EventID, "EventID", &p.EventID),
		simpleSlot(cif2FunctionPriorityID, "FunctionPriorityID", &p.FunctionPriorityID),
		simpleSlot(cif2CommPriorityID, "CommPriorityID", &p.CommPriorityID),
		simpleSlot(cif2RFFootprint, "RFFootprint", &p.RFFootprint),
		simpleSlot(cif2RFFootprintRange, "RFFootprintRange", &p.RFFootprintRange),
	}
}

func (p *Packet) cif3Slots() []fieldSlot {
	return []fieldSlot{
		simpleSlot(cif3TimestampDetails, "TimestampDetails", &p.TimestampDetails),
		simpleSlot(cif3TimestampSkew, "TimestampSkew", &p.TimestampSkew),
		simpleSlot(cif3RiseTime, "RiseTime", &p.RiseTime),
		simpleSlot(cif3FallTime, "FallTime", &p.FallTime),
		simpleSlot(cif3OffsetTime, "OffsetTime", &p.OffsetTime),
		simpleSlot(cif3PulseWidth, "PulseWidth", &p.PulseWidth),
		simpleSlot(cif3Period, "Period", &p.Period),
		simpleSlot(cif3Duration, "Duration", &p.Duration),
		simpleSlot(cif3Dwell, "Dwell", &p.Dwell),
		simpleSlot(cif3Jitter, "Jitter", &p.Jitter),
		simpleSlot(cif3Age, "Age", &p.Age),
		simpleSlot(cif3ShelfLife, "ShelfLife", &p.ShelfLife),
		simpleSlot(cif3AirTemperature, "AirTemperature", &p.AirTemperature),
		simpleSlot(cif3SeaGroundTemperature, "SeaGroundTemperature", &p.SeaGroundTemperature),
		simpleSlot(cif3Humidity, "Humidity", &p.Humidity),
		simpleSlot(cif3BarometricPressure, "BarometricPressure", &p.BarometricPressure),
		simpleSlot(cif3SeaSwellState, "SeaSwellState", &p.SeaSwellState),
		simpleSlot(cif3TroposphericState, "TroposphericState", &p.TroposphericState),
		simpleSlot(cif3NetworkID, "NetworkID", &p.NetworkID),
	}
}

// pairField adapts two independently-addressable Fixed32Field/UInt32Field
// values into the single Size/PackInto/UnpackFrom shape a fieldSlot
// needs, for the CIF1 fields that pack two like-typed subfields back to
// back in one 8-byte record (polarization, pointing vector, beam width,
// Eb/No+BER, threshold, intercept points, SNR+noise figure, buffer
// size+level).
type pairField struct {
	a, b interface {
		Size() int
		PackInto([]byte)
		UnpackFrom([]byte)
	}
}

func (p pairField) Size() int { return p.a.Size() + p.b.Size() }
func (p pairField) PackInto(buf []byte) {
	n := p.a.Size()
	p.a.PackInto(buf[0:n])
	p.b.PackInto(buf[n : n+p.b.Size()])
}
func (p pairField) UnpackFrom(buf []byte) {
	n := p.a.Size()
	p.a.UnpackFrom(buf[0:n])
	p.b.UnpackFrom(buf[n : n+p.b.Size()])
}

// cif0NoRecordBit marks CIF0 bits that carry no field record of their
// own: bit 31 is the Context Field Change Indicator (a pure flag), and
// bits 7/3/2/1 announce that CIF7/CIF3/CIF2/CIF1 follow rather than
// naming a field. Both are legitimate, fully-handled bit states, not
// unrecognized ones.
var cif0NoRecordBit = map[int]bool{31: true, 7: true, 3: true, 2: true, 1: true}

// cif7NoRecordBit marks the eleven CIF7 bits that name a per-field
// statistic (current/mean/median value, standard deviation, extrema,
// precision, accuracy, first/second/third derivative) rather than a
// single attached record this aggregate can carry; see the CIF7 scope
// note at the top of this file.
var cif7NoRecordBit = map[int]bool{
	cif7CurrentValue: true, cif7MeanValue: true, cif7MedianValue: true,
	cif7StandardDeviation: true, cif7MaxValue: true, cif7MinValue: true,
	cif7Precision: true, cif7Accuracy: true, cif7FirstDerivative: true,
	cif7SecondDerivative: true, cif7ThirdDerivative: true,
}

func bitsDescending(word uint32, from int) []int {
	var bits []int
	for b := from; b >= 1; b-- {
		if word&(1<<uint(b)) != 0 {
			bits = append(bits, b)
		}
	}
	return bits
}

func slotsByBit(slots []fieldSlot) map[int]fieldSlot {
	m := make(map[int]fieldSlot, len(slots))
	for _, s := range slots {
		m[s.bit] = s
	}
	return m
}

// prologueSize returns the byte length of every prologue word this
// packet's header flags say is present, excluding the 4-byte header
// itself.
func (p *Packet) prologueSize() int {
	n := 0
	pt := p.Header.PacketType()
	if pt.HasStreamID() {
		n += p.StreamID.Size()
	}
	if p.Header.ClassIDEnable() {
		n += p.ClassID.Size()
	}
	if p.Header.TSI() != TSINone {
		n += p.IntegerTimestamp.Size()
	}
	if p.Header.TSF() != TSFNone {
		n += p.FractionalTimestamp.Size()
	}
	if pt.IsCommand() {
		n += p.CAM.Size() + p.MessageID.Size()
	}
	return n
}

// RequireStreamID returns the Stream Identifier prologue word, failing
// with MissingPrologueFieldError if p's Packet Type has no Stream ID
// slot.
func (p *Packet) RequireStreamID() (uint32, error) {
	if !p.Header.PacketType().HasStreamID() {
		return 0, &MissingPrologueFieldError{Field: "StreamIdentifier"}
	}
	return p.StreamID.Get(), nil
}

// RequireClassID returns the Class Identifier prologue word, failing
// with MissingPrologueFieldError if the header's Class ID Enable flag
// is clear.
func (p *Packet) RequireClassID() (*ClassIdentifier, error) {
	if !p.Header.ClassIDEnable() {
		return nil, &MissingPrologueFieldError{Field: "ClassIdentifier"}
	}
	return &p.ClassID, nil
}

// RequireIntegerTimestamp returns the Integer-seconds Timestamp, failing
// with MissingPrologueFieldError if the header's TSI code is TSINone.
func (p *Packet) RequireIntegerTimestamp() (uint32, error) {
	if p.Header.TSI() == TSINone {
		return 0, &MissingPrologueFieldError{Field: "IntegerTimestamp"}
	}
	return p.IntegerTimestamp.Get(), nil
}

// RequireFractionalTimestamp returns the Fractional-seconds Timestamp,
// failing with MissingPrologueFieldError if the header's TSF code is
// TSFNone.
func (p *Packet) RequireFractionalTimestamp() (uint64, error) {
	if p.Header.TSF() == TSFNone {
		return 0, &MissingPrologueFieldError{Field: "FractionalTimestamp"}
	}
	return p.FractionalTimestamp.Get(), nil
}

// RequireCAM returns the Control/Acknowledge Mode word, failing with
// MissingPrologueFieldError on a non-Command packet type.
func (p *Packet) RequireCAM() (*CAM, error) {
	if !p.Header.PacketType().IsCommand() {
		return nil, &MissingPrologueFieldError{Field: "CAM"}
	}
	return &p.CAM, nil
}

// RequireMessageID returns the Message Identifier word, failing with
// MissingPrologueFieldError on a non-Command packet type.
func (p *Packet) RequireMessageID() (uint32, error) {
	if !p.Header.PacketType().IsCommand() {
		return 0, &MissingPrologueFieldError{Field: "MessageIdentifier"}
	}
	return p.MessageID.Get(), nil
}

// BytesRequired returns the exact byte length Pack will produce for p.
func BytesRequired(p *Packet) int {
	n := p.Header.Size() + p.prologueSize()
	pt := p.Header.PacketType()
	if pt.IsData() {
		return n + len(p.Payload)
	}

	n += p.CIF0.Size()
	if p.CIF0.CIF1Enable() {
		n += p.CIF1.Size()
	}
	if p.CIF0.CIF2Enable() {
		n += p.CIF2.Size()
	}
	if p.CIF0.CIF3Enable() {
		n += p.CIF3.Size()
	}
	if p.CIF0.CIF7Enable() {
		n += p.CIF7.Size()
	}
	if pt.IsCommand() && p.Header.AcknowledgePacket() {
		n += p.Warnings.Size() + p.Errors.Size()
	}

	cif0 := slotsByBit(p.cif0Slots())
	for _, b := range bitsDescending(p.CIF0.Word(), 31) {
		if s, ok := cif0[b]; ok {
			n += s.size()
		}
	}
	if p.CIF0.CIF1Enable() {
		cif1 := slotsByBit(p.cif1Slots())
		for _, b := range bitsDescending(p.CIF1.Word(), 31) {
			if s, ok := cif1[b]; ok {
				n += s.size()
			}
		}
	}
	if p.CIF0.CIF2Enable() {
		cif2 := slotsByBit(p.cif2Slots())
		for _, b := range bitsDescending(p.CIF2.Word(), 31) {
			if s, ok := cif2[b]; ok {
				n += s.size()
			}
		}
	}
	if p.CIF0.CIF3Enable() {
		cif3 := slotsByBit(p.cif3Slots())
		for _, b := range bitsDescending(p.CIF3.Word(), 31) {
			if s, ok := cif3[b]; ok {
				n += s.size()
			}
		}
	}
	if p.CIF0.CIF7Enable() {
		cif7 := slotsByBit(p.cif7Slots())
		for _, b := range bitsDescending(p.CIF7.Word(), 31) {
			if s, ok := cif7[b]; ok {
				n += s.size()
			}
		}
	}
	return n
}

// Pack serializes p into buf, returning the number of bytes written.
// buf must be at least BytesRequired(p) bytes; Pack never partially
// writes on failure.
func Pack(p *Packet, buf []byte) (int, error) {
	need := BytesRequired(p)
	if len(buf) < need {
		return 0, &BufferTooSmallError{Required: need, Have: len(buf)}
	}

	c := NewCursor(buf[:need])
	hdrSlice, _ := c.Next(p.Header.Size())

	pt := p.Header.PacketType()
	if pt.HasStreamID() {
		s, _ := c.Next(p.StreamID.Size())
		p.StreamID.PackInto(s)
	}
	if p.Header.ClassIDEnable() {
		s, _ := c.Next(p.ClassID.Size())
		p.ClassID.PackInto(s)
	}
	if p.Header.TSI() != TSINone {
		s, _ := c.Next(p.IntegerTimestamp.Size())
		p.IntegerTimestamp.PackInto(s)
	}
	if p.Header.TSF() != TSFNone {
		s, _ := c.Next(p.FractionalTimestamp.Size())
		p.FractionalTimestamp.PackInto(s)
	}
	if pt.IsCommand() {
		s, _ := c.Next(p.CAM.Size())
		p.CAM.PackInto(s)
		s, _ = c.Next(p.MessageID.Size())
		p.MessageID.PackInto(s)
	}

	if !pt.IsData() {
		s, _ := c.Next(p.CIF0.Size())
		p.CIF0.PackInto(s)
		if p.CIF0.CIF1Enable() {
			s, _ := c.Next(p.CIF1.Size())
			p.CIF1.PackInto(s)
		}
		if p.CIF0.CIF2Enable() {
			s, _ := c.Next(p.CIF2.Size())
			p.CIF2.PackInto(s)
		}
		if p.CIF0.CIF3Enable() {
			s, _ := c.Next(p.CIF3.Size())
			p.CIF3.PackInto(s)
		}
		if p.CIF0.CIF7Enable() {
			s, _ := c.Next(p.CIF7.Size())
			p.CIF7.PackInto(s)
		}

		cif0 := slotsByBit(p.cif0Slots())
		for _, b := range bitsDescending(p.CIF0.Word(), 31) {
			if s, ok := cif0[b]; ok {
				slice, _ := c.Next(s.size())
				s.pack(slice)
			}
		}
		if p.CIF0.CIF1Enable() {
			cif1 := slotsByBit(p.cif1Slots())
			for _, b := range bitsDescending(p.CIF1.Word(), 31) {
				if s, ok := cif1[b]; ok {
					slice, _ := c.Next(s.size())
					s.pack(slice)
				}
			}
		}
		if p.CIF0.CIF2Enable() {
			cif2 := slotsByBit(p.cif2Slots())
			for _, b := range bitsDescending(p.CIF2.Word(), 31) {
				if s, ok := cif2[b]; ok {
					slice, _ := c.Next(s.size())
					s.pack(slice)
				}
			}
		}
		if p.CIF0.CIF3Enable() {
			cif3 := slotsByBit(p.cif3Slots())
			for _, b := range bitsDescending(p.CIF3.Word(), 31) {
				if s, ok := cif3[b]; ok {
					slice, _ := c.Next(s.size())
					s.pack(slice)
				}
			}
		}
		if p.CIF0.CIF7Enable() {
			cif7 := slotsByBit(p.cif7Slots())
			for _, b := range bitsDescending(p.CIF7.Word(), 31) {
				if s, ok := cif7[b]; ok {
					slice, _ := c.Next(s.size())
					s.pack(slice)
				}
			}
		}
	}

	if pt.IsCommand() && p.Header.AcknowledgePacket() {
		s, _ := c.Next(p.Warnings.Size())
		p.Warnings.PackInto(s)
		s, _ = c.Next(p.Errors.Size())
		p.Errors.PackInto(s)
	}

	if pt.IsData() {
		s, _ := c.Next(len(p.Payload))
		copy(s, p.Payload)
	}

	p.Header.SetPacketSize(uint16(need / 4))
	p.Header.PackInto(hdrSlice)

	return need, nil
}

// Unpack parses buf into p, dispatching prologue and CIF layout by the
// packet type encoded in buf's header word.
func Unpack(p *Packet, buf []byte) error {
	if len(buf) < 4 {
		return &TruncatedError{Field: "Header", Need: 4, Have: len(buf)}
	}
	var hdr Header
	hdr.UnpackFrom(buf[0:4])
	if hdr.PacketType().IsReserved() {
		return &UnknownPacketTypeError{Code: uint8(hdr.PacketType())}
	}
	declared := int(hdr.PacketSize()) * 4
	if declared > len(buf) {
		return &TruncatedError{Field: "Packet", Need: declared, Have: len(buf)}
	}

	*p = Packet{Header: hdr}
	// Restore the radix points the Set* methods use, which the reset above cleared.
	for _, f := range []*Fixed64Field{&p.Bandwidth, &p.IFReferenceFrequency, &p.RFReferenceFrequency, &p.RFReferenceFrequencyOffset,
		&p.IFBandOffset, &p.SampleRate, &p.AuxFrequency, &p.AuxBandwidth, &p.TimestampDetails, &p.TimestampSkew,
		&p.RiseTime, &p.FallTime, &p.OffsetTime, &p.PulseWidth, &p.Period, &p.Duration, &p.Dwell, &p.Jitter} {
		f.R = rFreq64
	}
	for _, f := range []*Fixed32Field{&p.ReferenceLevel, &p.PhaseOffset, &p.Polarization[0], &p.Polarization[1],
		&p.PointingVector[0], &p.PointingVector[1], &p.BeamWidth[0], &p.BeamWidth[1], &p.RangeField,
		&p.EbNoBER[0], &p.EbNoBER[1], &p.Threshold[0], &p.Threshold[1], &p.CompressionPoint, &p.InterceptPoints[0],
		&p.InterceptPoints[1], &p.SNRNoiseFigure[0], &p.SNRNoiseFigure[1], &p.Humidity, &p.BarometricPressure} {
		f.R = rLevelRatio
	}
	for _, f := range []*Fixed32Field{&p.Temperature, &p.AirTemperature, &p.SeaGroundTemperature} {
		f.R = rTemp
	}
	c := NewCursor(buf[:declared])
	if _, err := c.Next(4); err != nil {
		return err
	}

	pt := hdr.PacketType()
	if pt.HasStreamID() {
		s, err := c.Next(p.StreamID.Size())
		if err != nil {
			return &TruncatedError{Field: "StreamIdentifier", Need: p.StreamID.Size(), Have: c.Remaining()}
		}
		p.StreamID.UnpackFrom(s)
	}
	if hdr.ClassIDEnable() {
		s, err := c.Next(p.ClassID.Size())
		if err != nil {
			return &TruncatedError{Field: "ClassIdentifier", Need: p.ClassID.Size(), Have: c.Remaining()}
		}
		p.ClassID.UnpackFrom(s)
	}
	if hdr.TSI() != TSINone {
		s, err := c.Next(p.IntegerTimestamp.Size())
		if err != nil {
			return &TruncatedError{Field: "IntegerTimestamp", Need: 4, Have: c.Remaining()}
		}
		p.IntegerTimestamp.UnpackFrom(s)
	}
	if hdr.TSF() != TSFNone {
		s, err := c.Next(p.FractionalTimestamp.Size())
		if err != nil {
			return &TruncatedError{Field: "FractionalTimestamp", Need: 8, Have: c.Remaining()}
		}
		p.FractionalTimestamp.UnpackFrom(s)
	}
	if pt.IsCommand() {
		s, err := c.Next(p.CAM.Size())
		if err != nil {
			return &TruncatedError{Field: "CAM", Need: 4, Have: c.Remaining()}
		}
		p.CAM.UnpackFrom(s)
		s, err = c.Next(p.MessageID.Size())
		if err != nil {
			return &TruncatedError{Field: "MessageIdentifier", Need: 4, Have: c.Remaining()}
		}
		p.MessageID.UnpackFrom(s)
	}

	if !pt.IsData() {
		s, err := c.Next(p.CIF0.Size())
		if err != nil {
			return &TruncatedError{Field: "CIF0", Need: 4, Have: c.Remaining()}
		}
		p.CIF0.UnpackFrom(s)

		if p.CIF0.CIF1Enable() {
			s, err := c.Next(p.CIF1.Size())
			if err != nil {
				return &TruncatedError{Field: "CIF1", Need: 4, Have: c.Remaining()}
			}
			p.CIF1.UnpackFrom(s)
		}
		if p.CIF0.CIF2Enable() {
			s, err := c.Next(p.CIF2.Size())
			if err != nil {
				return &TruncatedError{Field: "CIF2", Need: 4, Have: c.Remaining()}
			}
			p.CIF2.UnpackFrom(s)
		}
		if p.CIF0.CIF3Enable() {
			s, err := c.Next(p.CIF3.Size())
			if err != nil {
				return &TruncatedError{Field: "CIF3", Need: 4, Have: c.Remaining()}
			}
			p.CIF3.UnpackFrom(s)
		}
		if p.CIF0.CIF7Enable() {
			s, err := c.Next(p.CIF7.Size())
			if err != nil {
				return &TruncatedError{Field: "CIF7", Need: 4, Have: c.Remaining()}
			}
			p.CIF7.UnpackFrom(s)
		}

		cif0 := slotsByBit(p.cif0Slots())
		for _, b := range bitsDescending(p.CIF0.Word(), 31) {
			s, ok := cif0[b]
			if !ok {
				if !cif0NoRecordBit[b] {
					_lg.Warnf("vrt: unpack: unknown CIF0 bit %d", b)
					return &UnknownFieldError{CIF: "CIF0", Bit: b}
				}
				continue
			}
			sz := s.size()
			if s.peekSize != nil {
				var perr error
				sz, perr = s.peekSize(c.Rest())
				if perr != nil {
					_lg.Warnf("vrt: unpack: %s: %v", s.name, perr)
					return perr
				}
			}
			slice, err := c.Next(sz)
			if err != nil {
				_lg.Warnf("vrt: unpack: truncated reading %s: need %d, have %d", s.name, sz, c.Remaining())
				return &TruncatedError{Field: s.name, Need: sz, Have: c.Remaining()}
			}
			if err := s.unpack(slice); err != nil {
				return err
			}
		}
		if p.CIF0.CIF1Enable() {
			cif1 := slotsByBit(p.cif1Slots())
			for _, b := range bitsDescending(p.CIF1.Word(), 31) {
				s, ok := cif1[b]
				if !ok {
					_lg.Warnf("vrt: unpack: unknown CIF1 bit %d", b)
					return &UnknownFieldError{CIF: "CIF1", Bit: b}
				}
				slice, err := c.Next(s.size())
				if err != nil {
					_lg.Warnf("vrt: unpack: truncated reading %s: need %d, have %d", s.name, s.size(), c.Remaining())
					return &TruncatedError{Field: s.name, Need: s.size(), Have: c.Remaining()}
				}
				if err := s.unpack(slice); err != nil {
					return err
				}
			}
		}
		if p.CIF0.CIF2Enable() {
			cif2 := slotsByBit(p.cif2Slots())
			for _, b := range bitsDescending(p.CIF2.Word(), 31) {
				s, ok := cif2[b]
				if !ok {
					_lg.Warnf("vrt: unpack: unknown CIF2 bit %d", b)
					return &UnknownFieldError{CIF: "CIF2", Bit: b}
				}
				slice, err := c.Next(s.size())
				if err != nil {
					_lg.Warnf("vrt: unpack: truncated reading %s: need %d, have %d", s.name, s.size(), c.Remaining())
					return &TruncatedError{Field: s.name, Need: s.size(), Have: c.Remaining()}
				}
				if err := s.unpack(slice); err != nil {
					return err
				}
			}
		}
		if p.CIF0.CIF3Enable() {
			cif3 := slotsByBit(p.cif3Slots())
			for _, b := range bitsDescending(p.CIF3.Word(), 31) {
				s, ok := cif3[b]
				if !ok {
					_lg.Warnf("vrt: unpack: unknown CIF3 bit %d", b)
					return &UnknownFieldError{CIF: "CIF3", Bit: b}
				}
				slice, err := c.Next(s.size())
				if err != nil {
					_lg.Warnf("vrt: unpack: truncated reading %s: need %d, have %d", s.name, s.size(), c.Remaining())
					return &TruncatedError{Field: s.name, Need: s.size(), Have: c.Remaining()}
				}
				if err := s.unpack(slice); err != nil {
					return err
				}
			}
		}
		if p.CIF0.CIF7Enable() {
			cif7 := slotsByBit(p.cif7Slots())
			for _, b := range bitsDescending(p.CIF7.Word(), 31) {
				s, ok := cif7[b]
				if !ok {
					if !cif7NoRecordBit[b] {
						_lg.Warnf("vrt: unpack: unknown CIF7 bit %d", b)
						return &UnknownFieldError{CIF: "CIF7", Bit: b}
					}
					continue
				}
				slice, err := c.Next(s.size())
				if err != nil {
					_lg.Warnf("vrt: unpack: truncated reading %s: need %d, have %d", s.name, s.size(), c.Remaining())
					return &TruncatedError{Field: s.name, Need: s.size(), Have: c.Remaining()}
				}
				if err := s.unpack(slice); err != nil {
					return err
				}
			}
		}
	}

	if pt.IsCommand() && hdr.AcknowledgePacket() {
		s, err := c.Next(p.Warnings.Size())
		if err != nil {
			return &TruncatedError{Field: "Warnings", Need: 4, Have: c.Remaining()}
		}
		p.Warnings.UnpackFrom(s)
		s, err = c.Next(p.Errors.Size())
		if err != nil {
			return &TruncatedError{Field: "Errors", Need: 4, Have: c.Remaining()}
		}
		p.Errors.UnpackFrom(s)
	}

	if pt.IsData() {
		p.Payload = append([]byte(nil), c.Rest()...)
	}

	return nil
}
