package vrt

/*
field_ephemeris.go is the ECEF Ephemeris field (VITA 49.2 §9.4.3) and
Relative Ephemeris field (§9.4.9) — identical wire layout, grounded on
cif0.hpp's Ephemeris class: a TSI/TSF/OUI header word, integer and
fractional timestamps, three N=32 R=5 position subfields, three N=32
R=22 attitude subfields, and three N=32 R=16 velocity subfields.
*/

// Ephemeris is the ECEF/Relative Ephemeris context field.
type Ephemeris struct {
	TSI                 TSI
	TSF                 TSF
	ManufacturerOUI     uint32
	IntegerTimestamp    uint32
	FractionalTimestamp uint64
	PositionX           float64
	PositionY           float64
	PositionZ           float64
	AttitudeAlpha       float64
	AttitudeBeta        float64
	AttitudePhi         float64
	VelocityDX          float64
	VelocityDY          float64
	VelocityDZ          float64
}

// NewEphemeris returns an Ephemeris with every optional subfield set to
// its VITA 49.2 unspecified sentinel.
func NewEphemeris() Ephemeris {
	return Ephemeris{
		IntegerTimestamp:    sentinelTimestamp32,
		FractionalTimestamp: sentinelTimestamp64,
		PositionX:           FromFixed32(sentinel32, 32, 5),
		PositionY:           FromFixed32(sentinel32, 32, 5),
		PositionZ:           FromFixed32(sentinel32, 32, 5),
		AttitudeAlpha:       FromFixed32(sentinel32, 32, 22),
		AttitudeBeta:        FromFixed32(sentinel32, 32, 22),
		AttitudePhi:         FromFixed32(sentinel32, 32, 22),
		VelocityDX:          FromFixed32(sentinel32, 32, 16),
		VelocityDY:          FromFixed32(sentinel32, 32, 16),
		VelocityDZ:          FromFixed32(sentinel32, 32, 16),
	}
}

func (e *Ephemeris) Size() int { return 52 }

func (e *Ephemeris) PackInto(buf []byte) {
	var word1 Packed32
	word1.Set(geoTSI, 2, uint32(e.TSI))
	word1.Set(geoTSF, 2, uint32(e.TSF))
	word1.Set(geoOUI, 24, e.ManufacturerOUI&0xFFFFFF)
	word1.PackInto(buf[0:4])
	putBE32(buf[4:8], e.IntegerTimestamp)
	putBE64(buf[8:16], e.FractionalTimestamp)
	putBE32(buf[16:20], ToFixed32(e.PositionX, 32, 5))
	putBE32(buf[20:24], ToFixed32(e.PositionY, 32, 5))
	putBE32(buf[24:28], ToFixed32(e.PositionZ, 32, 5))
	putBE32(buf[28:32], ToFixed32(e.AttitudeAlpha, 32, 22))
	putBE32(buf[32:36], ToFixed32(e.AttitudeBeta, 32, 22))
	putBE32(buf[36:40], ToFixed32(e.AttitudePhi, 32, 22))
	putBE32(buf[40:44], ToFixed32(e.VelocityDX, 32, 16))
	putBE32(buf[44:48], ToFixed32(e.VelocityDY, 32, 16))
	putBE32(buf[48:52], ToFixed32(e.VelocityDZ, 32, 16))
}

func (e *Ephemeris) UnpackFrom(buf []byte) {
	var word1 Packed32
	word1.UnpackFrom(buf[0:4])
	e.TSI = TSI(word1.Get(geoTSI, 2))
	e.TSF = TSF(word1.Get(geoTSF, 2))
	e.ManufacturerOUI = word1.Get(geoOUI, 24)
	e.IntegerTimestamp = fromBE32(buf[4:8])
	e.FractionalTimestamp = fromBE64(buf[8:16])
	e.PositionX = FromFixed32(fromBE32(buf[16:20]), 32, 5)
	e.PositionY = FromFixed32(fromBE32(buf[20:24]), 32, 5)
	e.PositionZ = FromFixed32(fromBE32(buf[24:28]), 32, 5)
	e.AttitudeAlpha = FromFixed32(fromBE32(buf[28:32]), 32, 22)
	e.AttitudeBeta = FromFixed32(fromBE32(buf[32:36]), 32, 22)
	e.AttitudePhi = FromFixed32(fromBE32(buf[36:40]), 32, 22)
	e.VelocityDX = FromFixed32(fromBE32(buf[40:44]), 32, 16)
	e.VelocityDY = FromFixed32(fromBE32(buf[44:48]), 32, 16)
	e.VelocityDZ = FromFixed32(fromBE32(buf[48:52]), 32, 16)
}
