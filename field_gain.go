package vrt

/*
field_gain.go is the Gain/Attenuation field (VITA 49.2 §9.5.3), grounded
on original_source/include/vrtgen/packing/cif0.hpp's Gain class: two
16-bit fixed-point (N=16, R=7) subfields, stage 2 in the high half-word
and stage 1 in the low half-word.
*/

// Gain is the Gain/Attenuation context field.
type Gain struct {
	Stage2 float64
	Stage1 float64
}

func (g *Gain) Size() int { return 4 }

func (g *Gain) PackInto(buf []byte) {
	putBE16(buf[0:2], uint16(ToFixed32(g.Stage2, 16, 7)))
	putBE16(buf[2:4], uint16(ToFixed32(g.Stage1, 16, 7)))
}

func (g *Gain) UnpackFrom(buf []byte) {
	g.Stage2 = FromFixed32(uint32(fromBE16(buf[0:2])), 16, 7)
	g.Stage1 = FromFixed32(uint32(fromBE16(buf[2:4])), 16, 7)
}
