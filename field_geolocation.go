package vrt

/*
field_geolocation.go is the Formatted GPS Geolocation field (VITA 49.2
§9.4.5) and Formatted INS Geolocation field (§9.4.6) — the two share an
identical wire layout, grounded on cif0.hpp's Geolocation class: an
11-word record of a TSI/TSF/OUI header word, integer and fractional
timestamps, and seven N=32 fixed-point subfields (latitude/longitude at
R=22, altitude at R=5, speed over ground/heading/track/magnetic
variation split between R=16 and R=22), each defaulting to the
unspecified sentinel 0x7FFFFFFF.
*/

const (
	geoTSI = 27
	geoTSF = 25
	geoOUI = 23
)

// Geolocation is the Formatted GPS/INS Geolocation context field.
type Geolocation struct {
	TSI                TSI
	TSF                TSF
	ManufacturerOUI    uint32
	IntegerTimestamp   uint32
	FractionalTimestamp uint64
	Latitude           float64
	Longitude          float64
	Altitude           float64
	SpeedOverGround    float64
	HeadingAngle       float64
	TrackAngle         float64
	MagneticVariation  float64
}

// NewGeolocation returns a Geolocation with every optional subfield set
// to its VITA 49.2 unspecified sentinel.
func NewGeolocation() Geolocation {
	return Geolocation{
		IntegerTimestamp:    sentinelTimestamp32,
		FractionalTimestamp: sentinelTimestamp64,
		Latitude:            FromFixed32(sentinel32, 32, 22),
		Longitude:           FromFixed32(sentinel32, 32, 22),
		Altitude:            FromFixed32(sentinel32, 32, 5),
		SpeedOverGround:     FromFixed32(sentinel32, 32, 16),
		HeadingAngle:        FromFixed32(sentinel32, 32, 22),
		TrackAngle:          FromFixed32(sentinel32, 32, 22),
		MagneticVariation:   FromFixed32(sentinel32, 32, 22),
	}
}

func (g *Geolocation) Size() int { return 44 }

func (g *Geolocation) PackInto(buf []byte) {
	var word1 Packed32
	word1.Set(geoTSI, 2, uint32(g.TSI))
	word1.Set(geoTSF, 2, uint32(g.TSF))
	word1.Set(geoOUI, 24, g.ManufacturerOUI&0xFFFFFF)
	word1.PackInto(buf[0:4])
	putBE32(buf[4:8], g.IntegerTimestamp)
	putBE64(buf[8:16], g.FractionalTimestamp)
	putBE32(buf[16:20], ToFixed32(g.Latitude, 32, 22))
	putBE32(buf[20:24], ToFixed32(g.Longitude, 32, 22))
	putBE32(buf[24:28], ToFixed32(g.Altitude, 32, 5))
	putBE32(buf[28:32], ToFixed32(g.SpeedOverGround, 32, 16))
	putBE32(buf[32:36], ToFixed32(g.HeadingAngle, 32, 22))
	putBE32(buf[36:40], ToFixed32(g.TrackAngle, 32, 22))
	putBE32(buf[40:44], ToFixed32(g.MagneticVariation, 32, 22))
}

func (g *Geolocation) UnpackFrom(buf []byte) {
	var word1 Packed32
	word1.UnpackFrom(buf[0:4])
	g.TSI = TSI(word1.Get(geoTSI, 2))
	g.TSF = TSF(word1.Get(geoTSF, 2))
	g.ManufacturerOUI = word1.Get(geoOUI, 24)
	g.IntegerTimestamp = fromBE32(buf[4:8])
	g.FractionalTimestamp = fromBE64(buf[8:16])
	g.Latitude = FromFixed32(fromBE32(buf[16:20]), 32, 22)
	g.Longitude = FromFixed32(fromBE32(buf[20:24]), 32, 22)
	g.Altitude = FromFixed32(fromBE32(buf[24:28]), 32, 5)
	g.SpeedOverGround = FromFixed32(fromBE32(buf[28:32]), 32, 16)
	g.HeadingAngle = FromFixed32(fromBE32(buf[32:36]), 32, 22)
	g.TrackAngle = FromFixed32(fromBE32(buf[36:40]), 32, 22)
	g.MagneticVariation = FromFixed32(fromBE32(buf[40:44]), 32, 22)
}
