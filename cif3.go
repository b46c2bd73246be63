package vrt

/*
cif3.go is the CIF3 enable-mask word, grounded on
original_source/include/vrtgen/packing/indicator_fields.hpp's
IndicatorField3 class. Bits 29-28, 19-18, and 15-8 carry no defined
indicator and are left unused.
*/

const (
	cif3TimestampDetails    = 31
	cif3TimestampSkew       = 30
	cif3RiseTime            = 27
	cif3FallTime            = 26
	cif3OffsetTime          = 25
	cif3PulseWidth          = 24
	cif3Period              = 23
	cif3Duration            = 22
	cif3Dwell               = 21
	cif3Jitter              = 20
	cif3Age                 = 17
	cif3ShelfLife           = 16
	cif3AirTemperature      = 7
	cif3SeaGroundTemperature = 6
	cif3Humidity            = 5
	cif3BarometricPressure  = 4
	cif3SeaSwellState       = 3
	cif3TroposphericState   = 2
	cif3NetworkID           = 1
)

// CIF3Enables is the Context Information Field 3 enable-mask word (VITA
// 49.2 §7.1.5.5 / Table 9.12-1).
type CIF3Enables struct {
	packed Packed32
}

func (c *CIF3Enables) Word() uint32     { return c.packed.Word() }
func (c *CIF3Enables) SetWord(w uint32) { c.packed.SetWord(w) }
func (c *CIF3Enables) Any() bool        { return c.packed.Any() }
func (c *CIF3Enables) Size() int        { return c.packed.Size() }

func (c *CIF3Enables) PackInto(buf []byte)   { c.packed.PackInto(buf) }
func (c *CIF3Enables) UnpackFrom(buf []byte) { c.packed.UnpackFrom(buf) }

func (c *CIF3Enables) TimestampDetails() bool     { return c.packed.Bit(cif3TimestampDetails) }
func (c *CIF3Enables) SetTimestampDetails(v bool) { c.packed.SetBit(cif3TimestampDetails, v) }

func (c *CIF3Enables) TimestampSkew() bool     { return c.packed.Bit(cif3TimestampSkew) }
func (c *CIF3Enables) SetTimestampSkew(v bool) { c.packed.SetBit(cif3TimestampSkew, v) }

func (c *CIF3Enables) RiseTime() bool     { return c.packed.Bit(cif3RiseTime) }
func (c *CIF3Enables) SetRiseTime(v bool) { c.packed.SetBit(cif3RiseTime, v) }

func (c *CIF3Enables) FallTime() bool     { return c.packed.Bit(cif3FallTime) }
func (c *CIF3Enables) SetFallTime(v bool) { c.packed.SetBit(cif3FallTime, v) }

func (c *CIF3Enables) OffsetTime() bool     { return c.packed.Bit(cif3OffsetTime) }
func (c *CIF3Enables) SetOffsetTime(v bool) { c.packed.SetBit(cif3OffsetTime, v) }

func (c *CIF3Enables) PulseWidth() bool     { return c.packed.Bit(cif3PulseWidth) }
func (c *CIF3Enables) SetPulseWidth(v bool) { c.packed.SetBit(cif3PulseWidth, v) }

func (c *CIF3Enables) Period() bool     { return c.packed.Bit(cif3Period) }
func (c *CIF3Enables) SetPeriod(v bool) { c.packed.SetBit(cif3Period, v) }

func (c *CIF3Enables) Duration() bool     { return c.packed.Bit(cif3Duration) }
func (c *CIF3Enables) SetDuration(v bool) { c.packed.SetBit(cif3Duration, v) }

func (c *CIF3Enables) Dwell() bool     { return c.packed.Bit(cif3Dwell) }
func (c *CIF3Enables) SetDwell(v bool) { c.packed.SetBit(cif3Dwell, v) }

func (c *CIF3Enables) Jitter() bool     { return c.packed.Bit(cif3Jitter) }
func (c *CIF3Enables) SetJitter(v bool) { c.packed.SetBit(cif3Jitter, v) }

func (c *CIF3Enables) Age() bool     { return c.packed.Bit(cif3Age) }
func (c *CIF3Enables) SetAge(v bool) { c.packed.SetBit(cif3Age, v) }

func (c *CIF3Enables) ShelfLife() bool     { return c.packed.Bit(cif3ShelfLife) }
func (c *CIF3Enables) SetShelfLife(v bool) { c.packed.SetBit(cif3ShelfLife, v) }

func (c *CIF3Enables) AirTemperature() bool     { return c.packed.Bit(cif3AirTemperature) }
func (c *CIF3Enables) SetAirTemperature(v bool) { c.packed.SetBit(cif3AirTemperature, v) }

func (c *CIF3Enables) SeaGroundTemperature() bool {
	return c.packed.Bit(cif3SeaGroundTemperature)
}
func (c *CIF3Enables) SetSeaGroundTemperature(v bool) {
	c.packed.SetBit(cif3SeaGroundTemperature, v)
}

func (c *CIF3Enables) Humidity() bool     { return c.packed.Bit(cif3Humidity) }
func (c *CIF3Enables) SetHumidity(v bool) { c.packed.SetBit(cif3Humidity, v) }

func (c *CIF3Enables) BarometricPressure() bool { return c.packed.Bit(cif3BarometricPressure) }
func (c *CIF3Enables) SetBarometricPressure(v bool) {
	c.packed.SetBit(cif3BarometricPressure, v)
}

func (c *CIF3Enables) SeaSwellState() bool     { return c.packed.Bit(cif3SeaSwellState) }
func (c *CIF3Enables) SetSeaSwellState(v bool) { c.packed.SetBit(cif3SeaSwellState, v) }

func (c *CIF3Enables) TroposphericState() bool     { return c.packed.Bit(cif3TroposphericState) }
func (c *CIF3Enables) SetTroposphericState(v bool) { c.packed.SetBit(cif3TroposphericState, v) }

func (c *CIF3Enables) NetworkID() bool     { return c.packed.Bit(cif3NetworkID) }
func (c *CIF3Enables) SetNetworkID(v bool) { c.packed.SetBit(cif3NetworkID, v) }
