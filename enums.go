package vrt

/*
enums.go is the C4 enumeration catalog: every closed-set code VITA 49.2
defines that this codec touches, grounded on
original_source/include/vrtgen/packing/enums.hpp. Each Go type is a
distinct named integer type over its minimal backing width, matching the
original's `enum class X : uintN_t` pattern, with String() methods for
%v/%s formatting and logging: named int types with doc-comment tables
rather than runtime validation.
*/

// PacketType is the 4-bit Packet Type field in the VRT Packet Header.
// See VITA 49.2 Table 5.1.1-1.
type PacketType uint8

const (
	PacketTypeSignalData           PacketType = 0b0000
	PacketTypeSignalDataStreamID   PacketType = 0b0001
	PacketTypeExtensionData        PacketType = 0b0010
	PacketTypeExtensionDataStreamID PacketType = 0b0011
	PacketTypeContext              PacketType = 0b0100
	PacketTypeExtensionContext     PacketType = 0b0101
	PacketTypeCommand              PacketType = 0b0110
	PacketTypeExtensionCommand     PacketType = 0b0111
)

func (t PacketType) String() string {
	switch t {
	case PacketTypeSignalData:
		return "SignalData"
	case PacketTypeSignalDataStreamID:
		return "SignalDataStreamID"
	case PacketTypeExtensionData:
		return "ExtensionData"
	case PacketTypeExtensionDataStreamID:
		return "ExtensionDataStreamID"
	case PacketTypeContext:
		return "Context"
	case PacketTypeExtensionContext:
		return "ExtensionContext"
	case PacketTypeCommand:
		return "Command"
	case PacketTypeExtensionCommand:
		return "ExtensionCommand"
	default:
		return "Reserved"
	}
}

// IsReserved reports whether code is one of the 8..15 reserved Packet Type
// values not yet assigned by VITA 49.2.
func (t PacketType) IsReserved() bool { return t > PacketTypeExtensionCommand }

// HasStreamID reports whether this packet type carries a Stream Identifier
// word. Every type except plain Signal Data does.
func (t PacketType) HasStreamID() bool { return t != PacketTypeSignalData }

// IsData reports whether this is a Signal Data or Extension Data variant
// (no CIF words, payload instead of typed fields).
func (t PacketType) IsData() bool {
	switch t {
	case PacketTypeSignalData, PacketTypeSignalDataStreamID, PacketTypeExtensionData, PacketTypeExtensionDataStreamID:
		return true
	default:
		return false
	}
}

// IsCommand reports whether this is a Command or Extension Command variant
// (carries a CAM word and Message ID ahead of the CIFs).
func (t PacketType) IsCommand() bool {
	return t == PacketTypeCommand || t == PacketTypeExtensionCommand
}

// TSI is the 2-bit TimeStamp-Integer code in the VRT Packet Header.
// See VITA 49.2 Table 5.1.1-2.
type TSI uint8

const (
	TSINone  TSI = 0b00
	TSIUTC   TSI = 0b01
	TSIGPS   TSI = 0b10
	TSIOther TSI = 0b11
)

func (t TSI) String() string {
	switch t {
	case TSINone:
		return "None"
	case TSIUTC:
		return "UTC"
	case TSIGPS:
		return "GPS"
	case TSIOther:
		return "Other"
	default:
		return "Reserved"
	}
}

// TSF is the 2-bit TimeStamp-Fractional code in the VRT Packet Header.
// See VITA 49.2 Table 5.1.1-3.
type TSF uint8

const (
	TSFNone        TSF = 0b00
	TSFSampleCount TSF = 0b01
	TSFRealTime    TSF = 0b10
	TSFFreeRunning TSF = 0b11
)

func (t TSF) String() string {
	switch t {
	case TSFNone:
		return "None"
	case TSFSampleCount:
		return "SampleCount"
	case TSFRealTime:
		return "RealTime"
	case TSFFreeRunning:
		return "FreeRunning"
	default:
		return "Reserved"
	}
}

// TSM is the 1-bit Timestamp Mode field in a Context packet header.
type TSM uint8

const (
	TSMFine   TSM = 0
	TSMCoarse TSM = 1
)

func (t TSM) String() string {
	if t == TSMCoarse {
		return "Coarse"
	}
	return "Fine"
}

// IdentifierFormat selects Word (32-bit) vs UUID (128-bit) addressing for
// Controllee/Controller identifiers in a CAM word.
type IdentifierFormat uint8

const (
	IdentifierFormatWord IdentifierFormat = 0
	IdentifierFormatUUID IdentifierFormat = 1
)

func (f IdentifierFormat) String() string {
	if f == IdentifierFormatUUID {
		return "UUID"
	}
	return "Word"
}

// ActionMode is the 2-bit Control Action Mode field in a CAM word.
type ActionMode uint8

const (
	ActionModeNoAction ActionMode = 0b00
	ActionModeDryRun   ActionMode = 0b01
	ActionModeExecute  ActionMode = 0b10
)

func (m ActionMode) String() string {
	switch m {
	case ActionModeNoAction:
		return "NoAction"
	case ActionModeDryRun:
		return "DryRun"
	case ActionModeExecute:
		return "Execute"
	default:
		return "Reserved"
	}
}

// TimestampControlMode is the 3-bit Timestamp Control Mode field shared by
// ControlCAM and AcknowledgeCAM. TimingIssues is only meaningful on the
// acknowledge side; this codec accepts and
// round-trips the bit pattern identically on both.
type TimestampControlMode uint8

const (
	TimestampControlIgnore       TimestampControlMode = 0b000
	TimestampControlDevice       TimestampControlMode = 0b001
	TimestampControlLate         TimestampControlMode = 0b010
	TimestampControlEarly        TimestampControlMode = 0b011
	TimestampControlEarlyLate    TimestampControlMode = 0b100
	TimestampControlTimingIssues TimestampControlMode = 0b111
)

func (m TimestampControlMode) String() string {
	switch m {
	case TimestampControlIgnore:
		return "Ignore"
	case TimestampControlDevice:
		return "Device"
	case TimestampControlLate:
		return "Late"
	case TimestampControlEarly:
		return "Early"
	case TimestampControlEarlyLate:
		return "EarlyLate"
	case TimestampControlTimingIssues:
		return "TimingIssues"
	default:
		return "Reserved"
	}
}

// AGCMode is the 1-bit AGC/MGC indicator in certain Gain-adjacent fields.
type AGCMode uint8

const (
	AGCModeMGC AGCMode = 0
	AGCModeAGC AGCMode = 1
)

func (m AGCMode) String() string {
	if m == AGCModeAGC {
		return "AGC"
	}
	return "MGC"
}

// DataItemFormat is the 5-bit Data Item Format code in a PayloadFormat
// record's first word. See VITA 49.2 Table 9.13.3-1.
type DataItemFormat uint8

const (
	DataItemFormatSignedFixed               DataItemFormat = 0x00
	DataItemFormatSignedVRT1                DataItemFormat = 0x01
	DataItemFormatSignedVRT2                DataItemFormat = 0x02
	DataItemFormatSignedVRT3                DataItemFormat = 0x03
	DataItemFormatSignedVRT4                DataItemFormat = 0x04
	DataItemFormatSignedVRT5                DataItemFormat = 0x05
	DataItemFormatSignedVRT6                DataItemFormat = 0x06
	DataItemFormatSignedFixedNonNormalized  DataItemFormat = 0x07
	DataItemFormatIEEE754HalfPrecision      DataItemFormat = 0x0d
	DataItemFormatIEEE754SinglePrecision    DataItemFormat = 0x0e
	DataItemFormatIEEE754DoublePrecision    DataItemFormat = 0x0f
	DataItemFormatUnsignedFixed             DataItemFormat = 0x10
	DataItemFormatUnsignedVRT1              DataItemFormat = 0x11
	DataItemFormatUnsignedVRT2              DataItemFormat = 0x12
	DataItemFormatUnsignedVRT3              DataItemFormat = 0x13
	DataItemFormatUnsignedVRT4              DataItemFormat = 0x14
	DataItemFormatUnsignedVRT5              DataItemFormat = 0x15
	DataItemFormatUnsignedVRT6              DataItemFormat = 0x16
	DataItemFormatUnsignedFixedNonNormalized DataItemFormat = 0x17
)

func (f DataItemFormat) String() string {
	switch f {
	case DataItemFormatSignedFixed:
		return "SignedFixed"
	case DataItemFormatSignedVRT1, DataItemFormatSignedVRT2, DataItemFormatSignedVRT3,
		DataItemFormatSignedVRT4, DataItemFormatSignedVRT5, DataItemFormatSignedVRT6:
		return "SignedVRT"
	case DataItemFormatSignedFixedNonNormalized:
		return "SignedFixedNonNormalized"
	case DataItemFormatIEEE754HalfPrecision:
		return "IEEE754HalfPrecision"
	case DataItemFormatIEEE754SinglePrecision:
		return "IEEE754SinglePrecision"
	case DataItemFormatIEEE754DoublePrecision:
		return "IEEE754DoublePrecision"
	case DataItemFormatUnsignedFixed:
		return "UnsignedFixed"
	case DataItemFormatUnsignedVRT1, DataItemFormatUnsignedVRT2, DataItemFormatUnsignedVRT3,
		DataItemFormatUnsignedVRT4, DataItemFormatUnsignedVRT5, DataItemFormatUnsignedVRT6:
		return "UnsignedVRT"
	case DataItemFormatUnsignedFixedNonNormalized:
		return "UnsignedFixedNonNormalized"
	default:
		return "Reserved"
	}
}

// DataSampleType is the 2-bit real/complex type code in a PayloadFormat
// record.
type DataSampleType uint8

const (
	DataSampleTypeReal             DataSampleType = 0x0
	DataSampleTypeComplexCartesian DataSampleType = 0x1
	DataSampleTypeComplexPolar     DataSampleType = 0x2
)

func (t DataSampleType) String() string {
	switch t {
	case DataSampleTypeReal:
		return "Real"
	case DataSampleTypeComplexCartesian:
		return "ComplexCartesian"
	case DataSampleTypeComplexPolar:
		return "ComplexPolar"
	default:
		return "Reserved"
	}
}

// PackingMethod is the 1-bit item packing method code in a PayloadFormat
// record.
type PackingMethod uint8

const (
	PackingMethodProcessingEfficient PackingMethod = 0
	PackingMethodLinkEfficient       PackingMethod = 1
)

func (m PackingMethod) String() string {
	if m == PackingMethodLinkEfficient {
		return "LinkEfficient"
	}
	return "ProcessingEfficient"
}

// SSI is the Start/Stop of Sample Frame Indication code, used in Signal
// Data headers' packet-specific bits on some VRT profiles and in
// StateEventIndicators-adjacent fields.
type SSI uint8

const (
	SSISingle SSI = 0b00
	SSIFirst  SSI = 0b01
	SSIMiddle SSI = 0b10
	SSIFinal  SSI = 0b11
)

func (s SSI) String() string {
	switch s {
	case SSISingle:
		return "Single"
	case SSIFirst:
		return "First"
	case SSIMiddle:
		return "Middle"
	case SSIFinal:
		return "Final"
	default:
		return "Reserved"
	}
}

// EntrySize is the Index List Entry Size subfield coding (Table 9.3.2-1).
type EntrySize uint8

const (
	EntrySize8  EntrySize = 0b01
	EntrySize16 EntrySize = 0b10
	EntrySize32 EntrySize = 0b11
)

func (e EntrySize) Bits() int {
	switch e {
	case EntrySize8:
		return 8
	case EntrySize16:
		return 16
	case EntrySize32:
		return 32
	default:
		return 0
	}
}

// V49StandardCompliance identifies which revision of the VITA 49 family a
// packet's producer claims compliance with (CIF1 bit 3).
type V49StandardCompliance uint8

const (
	V49StandardV49_0 V49StandardCompliance = 0
	V49StandardV49_1 V49StandardCompliance = 1
	V49StandardV49_A V49StandardCompliance = 2
	V49StandardV49_2 V49StandardCompliance = 3
)

func (v V49StandardCompliance) String() string {
	switch v {
	case V49StandardV49_0:
		return "V49_0"
	case V49StandardV49_1:
		return "V49_1"
	case V49StandardV49_A:
		return "V49_A"
	case V49StandardV49_2:
		return "V49_2"
	default:
		return "Reserved"
	}
}
