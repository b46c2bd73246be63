package vrt

/*
field_gps_ascii.go is the GPS ASCII field (VITA 49.2 §9.4.7), grounded
on VITA 49.2 §9.4.7's layout: a reserved byte + 24-bit Manufacturer
OUI word, a 32-bit Number-Of-Words count, and that many 32-bit words of
opaque ASCII payload, zero-padded at the tail to a 4-byte boundary.
*/

// GpsAscii is the variable-length formatted GPS ASCII context field.
type GpsAscii struct {
	ManufacturerOUI uint32 // low 24 bits significant
	ASCII           []byte // raw payload; after UnpackFrom it includes the tail zero padding
}

// numberOfWords is the wire's Number-Of-Words count: the payload
// rounded up to a whole number of 32-bit words.
func (g *GpsAscii) numberOfWords() int {
	return (len(g.ASCII) + 3) / 4
}

func (g *GpsAscii) Size() int { return 8 + g.numberOfWords()*4 }

func (g *GpsAscii) PackInto(buf []byte) {
	putBE32(buf[0:4], g.ManufacturerOUI&0xFFFFFF)
	n := g.numberOfWords()
	putBE32(buf[4:8], uint32(n))
	dst := buf[8 : 8+n*4]
	for i := range dst {
		dst[i] = 0
	}
	copy(dst, g.ASCII)
}

// PeekSize reads the Number-Of-Words control word out of buf without
// consuming it and returns the true on-wire length it declares, so a
// caller can size a slice before calling UnpackFrom.
func (g *GpsAscii) PeekSize(buf []byte) (int, error) {
	if len(buf) < 8 {
		return 0, &TruncatedError{Field: "GpsAscii", Need: 8, Have: len(buf)}
	}
	n := int(fromBE32(buf[4:8]))
	return 8 + n*4, nil
}

func (g *GpsAscii) UnpackFrom(buf []byte) error {
	if len(buf) < 8 {
		return &TruncatedError{Field: "GpsAscii", Need: 8, Have: len(buf)}
	}
	g.ManufacturerOUI = fromBE32(buf[0:4]) & 0xFFFFFF
	n := int(fromBE32(buf[4:8]))
	need := 8 + n*4
	if need > len(buf) {
		return &TruncatedError{Field: "GpsAscii", Need: need, Have: len(buf)}
	}
	g.ASCII = append([]byte(nil), buf[8:need]...)
	return nil
}
