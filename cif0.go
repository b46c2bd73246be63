package vrt

/*
cif0.go is the CIF0 enable-mask word, grounded on
original_source/include/vrtgen/packing/indicator_fields.hpp's
IndicatorField0 class. Bit positions match VITA 49.2 Table 9.1.1-1 and the original
source exactly.
*/

const (
	cif0ContextFieldChange   = 31
	cif0ReferencePointID     = 30
	cif0Bandwidth            = 29
	cif0IFReferenceFrequency = 28
	cif0RFReferenceFrequency = 27
	cif0RFReferenceFreqOffset = 26
	cif0IFBandOffset         = 25
	cif0ReferenceLevel       = 24
	cif0Gain                 = 23
	cif0OverRangeCount       = 22
	cif0SampleRate           = 21
	cif0TimestampAdjustment  = 20
	cif0TimestampCalTime     = 19
	cif0Temperature          = 18
	cif0DeviceID             = 17
	cif0StateEventIndicators = 16
	cif0PayloadFormat        = 15
	cif0FormattedGPS         = 14
	cif0FormattedINS         = 13
	cif0ECEFEphemeris        = 12
	cif0RelativeEphemeris    = 11
	cif0EphemerisRefID       = 10
	cif0GPSASCII             = 9
	cif0ContextAssocLists    = 8
	cif0CIF7Enable           = 7
	cif0CIF3Enable           = 3
	cif0CIF2Enable           = 2
	cif0CIF1Enable           = 1
)

// CIF0Enables is the Context Information Field 0 enable-mask word (VITA
// 49.2 §7.1.5.2 / Table 9-1).
type CIF0Enables struct {
	packed Packed32
}

func (c *CIF0Enables) Word() uint32     { return c.packed.Word() }
func (c *CIF0Enables) SetWord(w uint32) { c.packed.SetWord(w) }
func (c *CIF0Enables) Any() bool        { return c.packed.Any() }
func (c *CIF0Enables) Size() int        { return c.packed.Size() }

func (c *CIF0Enables) PackInto(buf []byte)   { c.packed.PackInto(buf) }
func (c *CIF0Enables) UnpackFrom(buf []byte) { c.packed.UnpackFrom(buf) }

func (c *CIF0Enables) ContextFieldChange() bool     { return c.packed.Bit(cif0ContextFieldChange) }
func (c *CIF0Enables) SetContextFieldChange(v bool) { c.packed.SetBit(cif0ContextFieldChange, v) }

func (c *CIF0Enables) ReferencePointID() bool     { return c.packed.Bit(cif0ReferencePointID) }
func (c *CIF0Enables) SetReferencePointID(v bool) { c.packed.SetBit(cif0ReferencePointID, v) }

func (c *CIF0Enables) Bandwidth() bool     { return c.packed.Bit(cif0Bandwidth) }
func (c *CIF0Enables) SetBandwidth(v bool) { c.packed.SetBit(cif0Bandwidth, v) }

func (c *CIF0Enables) IFReferenceFrequency() bool     { return c.packed.Bit(cif0IFReferenceFrequency) }
func (c *CIF0Enables) SetIFReferenceFrequency(v bool) { c.packed.SetBit(cif0IFReferenceFrequency, v) }

func (c *CIF0Enables) RFReferenceFrequency() bool     { return c.packed.Bit(cif0RFReferenceFrequency) }
func (c *CIF0Enables) SetRFReferenceFrequency(v bool) { c.packed.SetBit(cif0RFReferenceFrequency, v) }

func (c *CIF0Enables) RFReferenceFrequencyOffset() bool { return c.packed.Bit(cif0RFReferenceFreqOffset) }
func (c *CIF0Enables) SetRFReferenceFrequencyOffset(v bool) {
	c.packed.SetBit(cif0RFReferenceFreqOffset, v)
}

func (c *CIF0Enables) IFBandOffset() bool     { return c.packed.Bit(cif0IFBandOffset) }
func (c *CIF0Enables) SetIFBandOffset(v bool) { c.packed.SetBit(cif0IFBandOffset, v) }

func (c *CIF0Enables) ReferenceLevel() bool     { return c.packed.Bit(cif0ReferenceLevel) }
func (c *CIF0Enables) SetReferenceLevel(v bool) { c.packed.SetBit(cif0ReferenceLevel, v) }

func (c *CIF0Enables) Gain() bool     { return c.packed.Bit(cif0Gain) }
func (c *CIF0Enables) SetGain(v bool) { c.packed.SetBit(cif0Gain, v) }

func (c *CIF0Enables) OverRangeCount() bool     { return c.packed.Bit(cif0OverRangeCount) }
func (c *CIF0Enables) SetOverRangeCount(v bool) { c.packed.SetBit(cif0OverRangeCount, v) }

func (c *CIF0Enables) SampleRate() bool     { return c.packed.Bit(cif0SampleRate) }
func (c *CIF0Enables) SetSampleRate(v bool) { c.packed.SetBit(cif0SampleRate, v) }

func (c *CIF0Enables) TimestampAdjustment() bool     { return c.packed.Bit(cif0TimestampAdjustment) }
func (c *CIF0Enables) SetTimestampAdjustment(v bool) { c.packed.SetBit(cif0TimestampAdjustment, v) }

func (c *CIF0Enables) TimestampCalibrationTime() bool { return c.packed.Bit(cif0TimestampCalTime) }
func (c *CIF0Enables) SetTimestampCalibrationTime(v bool) {
	c.packed.SetBit(cif0TimestampCalTime, v)
}

func (c *CIF0Enables) Temperature() bool     { return c.packed.Bit(cif0Temperature) }
func (c *CIF0Enables) SetTemperature(v bool) { c.packed.SetBit(cif0Temperature, v) }

func (c *CIF0Enables) DeviceIdentifier() bool     { return c.packed.Bit(cif0DeviceID) }
func (c *CIF0Enables) SetDeviceIdentifier(v bool) { c.packed.SetBit(cif0DeviceID, v) }

func (c *CIF0Enables) StateEventIndicators() bool     { return c.packed.Bit(cif0StateEventIndicators) }
func (c *CIF0Enables) SetStateEventIndicators(v bool) { c.packed.SetBit(cif0StateEventIndicators, v) }

func (c *CIF0Enables) PayloadFormat() bool     { return c.packed.Bit(cif0PayloadFormat) }
func (c *CIF0Enables) SetPayloadFormat(v bool) { c.packed.SetBit(cif0PayloadFormat, v) }

func (c *CIF0Enables) FormattedGPS() bool     { return c.packed.Bit(cif0FormattedGPS) }
func (c *CIF0Enables) SetFormattedGPS(v bool) { c.packed.SetBit(cif0FormattedGPS, v) }

func (c *CIF0Enables) FormattedINS() bool     { return c.packed.Bit(cif0FormattedINS) }
func (c *CIF0Enables) SetFormattedINS(v bool) { c.packed.SetBit(cif0FormattedINS, v) }

func (c *CIF0Enables) ECEFEphemeris() bool     { return c.packed.Bit(cif0ECEFEphemeris) }
func (c *CIF0Enables) SetECEFEphemeris(v bool) { c.packed.SetBit(cif0ECEFEphemeris, v) }

func (c *CIF0Enables) RelativeEphemeris() bool     { return c.packed.Bit(cif0RelativeEphemeris) }
func (c *CIF0Enables) SetRelativeEphemeris(v bool) { c.packed.SetBit(cif0RelativeEphemeris, v) }

func (c *CIF0Enables) EphemerisReferenceID() bool     { return c.packed.Bit(cif0EphemerisRefID) }
func (c *CIF0Enables) SetEphemerisReferenceID(v bool) { c.packed.SetBit(cif0EphemerisRefID, v) }

func (c *CIF0Enables) GPSASCII() bool     { return c.packed.Bit(cif0GPSASCII) }
func (c *CIF0Enables) SetGPSASCII(v bool) { c.packed.SetBit(cif0GPSASCII, v) }

func (c *CIF0Enables) ContextAssociationLists() bool { return c.packed.Bit(cif0ContextAssocLists) }
func (c *CIF0Enables) SetContextAssociationLists(v bool) {
	c.packed.SetBit(cif0ContextAssocLists, v)
}

func (c *CIF0Enables) CIF7Enable() bool     { return c.packed.Bit(cif0CIF7Enable) }
func (c *CIF0Enables) SetCIF7Enable(v bool) { c.packed.SetBit(cif0CIF7Enable, v) }

func (c *CIF0Enables) CIF3Enable() bool     { return c.packed.Bit(cif0CIF3Enable) }
func (c *CIF0Enables) SetCIF3Enable(v bool) { c.packed.SetBit(cif0CIF3Enable, v) }

func (c *CIF0Enables) CIF2Enable() bool     { return c.packed.Bit(cif0CIF2Enable) }
func (c *CIF0Enables) SetCIF2Enable(v bool) { c.packed.SetBit(cif0CIF2Enable, v) }

func (c *CIF0Enables) CIF1Enable() bool     { return c.packed.Bit(cif0CIF1Enable) }
func (c *CIF0Enables) SetCIF1Enable(v bool) { c.packed.SetBit(cif0CIF1Enable, v) }
