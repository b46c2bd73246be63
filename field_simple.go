package vrt

/*
field_simple.go covers the large family of CIF0/1/2/3 context fields
that are nothing more than a single scalar occupying one or two 32-bit
words — reference frequencies, bandwidth, temperature, the many CIF1
aux/threshold/range values, CIF2 identifier words, CIF3 timing and
environmental values. original_source/include/vrtgen/packing/cif0.hpp
models each of these as its own bespoke class purely to get a named
to_fp<N,R>/to_int<N,R> accessor pair; here one plain struct type per word
width serves all of them, with the radix point R carried as a runtime
field of the record, per the design note on runtime (msb,width)
bit-field parameters.
*/

// Fixed32Field is a single 32-bit two's-complement fixed-point scalar
// context field with N total bits (always 32 here) and R fractional
// bits, e.g. reference level, temperature, or any CIF1 angle/ratio.
type Fixed32Field struct {
	R     uint
	Value float64
}

func NewFixed32Field(r uint) Fixed32Field { return Fixed32Field{R: r} }

func (f *Fixed32Field) Size() int { return 4 }
func (f *Fixed32Field) PackInto(buf []byte) {
	putBE32(buf, ToFixed32(f.Value, 32, f.R))
}
func (f *Fixed32Field) UnpackFrom(buf []byte) {
	f.Value = FromFixed32(fromBE32(buf), 32, f.R)
}

// Fixed64Field is a 64-bit two's-complement fixed-point scalar context
// field, used by the N=64 R=20 frequency/bandwidth/sample-rate family.
type Fixed64Field struct {
	R     uint
	Value float64
}

func NewFixed64Field(r uint) Fixed64Field { return Fixed64Field{R: r} }

func (f *Fixed64Field) Size() int { return 8 }
func (f *Fixed64Field) PackInto(buf []byte) {
	putBE64(buf, ToFixed64(f.Value, 64, f.R))
}
func (f *Fixed64Field) UnpackFrom(buf []byte) {
	f.Value = FromFixed64(fromBE64(buf), 64, f.R)
}

// UInt32Field is a plain unsigned 32-bit scalar context field with no
// fixed-point interpretation (reference point identifier, over-range
// count, timestamp calibration time, controllee/controller IDs, and the
// like).
type UInt32Field struct {
	Value uint32
}

func (f *UInt32Field) Size() int             { return 4 }
func (f *UInt32Field) PackInto(buf []byte)   { putBE32(buf, f.Value) }
func (f *UInt32Field) UnpackFrom(buf []byte) { f.Value = fromBE32(buf) }

// UInt64Field is a plain unsigned 64-bit scalar context field
// (Timestamp Adjustment, 64-bit Discrete I/O).
type UInt64Field struct {
	Value uint64
}

func (f *UInt64Field) Size() int             { return 8 }
func (f *UInt64Field) PackInto(buf []byte)   { putBE64(buf, f.Value) }
func (f *UInt64Field) UnpackFrom(buf []byte) { f.Value = fromBE64(buf) }

// UUIDField is a 128-bit RFC 4122 UUID context field, used by CIF2's
// Controllee UUID and Controller UUID records when their owning CAM
// identifier-format bit selects UUID addressing over Word addressing.
type UUIDField struct {
	Hi uint64
	Lo uint64
}

func (f *UUIDField) Size() int { return 16 }
func (f *UUIDField) PackInto(buf []byte) {
	putBE64(buf[0:8], f.Hi)
	putBE64(buf[8:16], f.Lo)
}
func (f *UUIDField) UnpackFrom(buf []byte) {
	f.Hi = fromBE64(buf[0:8])
	f.Lo = fromBE64(buf[8:16])
}
