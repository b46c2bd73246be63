package vrt

import "math"

/*
fixedpoint.go is the C2 fixed-point codec: conversion between float64 and a
two's-complement fixed-point integer of N total bits with R fractional bits
(the radix point sits R bits from the LSB). Grounded on the to_fp<N,R> /
to_int<N,R> call sites throughout original_source/include/vrtgen/packing/cif0.hpp,
e.g. Geolocation::latitude() uses N=32,R=22 and Ephemeris::position_x() uses
N=32,R=5.

Spec.md §4.2's table of (N,R) pairs in use:

	Gain, Reference Level               N=16 R=7
	Temperature                         N=16 R=6
	Bandwidth/frequencies/sample rate   N=64 R=20
	Geolocation angle                   N=32 R=22
	Altitude, ephemeris position        N=32 R=5
	Ephemeris velocity, speed over gnd  N=32 R=16

None of these are baked into the codec as special cases; n and r are runtime
parameters so any (N,R) pair VITA 49.2 defines can be represented.
*/

func maskN(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// encodeFixed rounds value*2^r to the nearest integer, saturates it to the
// signed range representable in n bits, and returns the two's-complement
// bit pattern right-aligned in a uint64.
func encodeFixed(value float64, n, r uint) uint64 {
	scaled := math.Round(value * math.Pow(2, float64(r)))
	maxV := int64(1)<<(n-1) - 1
	minV := -(int64(1) << (n - 1))
	iv := int64(scaled)
	if iv > maxV {
		iv = maxV
	}
	if iv < minV {
		iv = minV
	}
	return uint64(iv) & maskN(n)
}

// decodeFixed sign-extends the low n bits of raw from two's-complement by
// subtracting 2^n when bit n-1 is set, then divides by 2^r to recover the
// represented real number. No right shift is involved, so signed shift
// semantics never come into play (design note §9, Open Question on signed
// shift semantics).
func decodeFixed(raw uint64, n, r uint) float64 {
	v := int64(raw & maskN(n))
	signBit := int64(1) << (n - 1)
	if v&signBit != 0 {
		v -= int64(1) << n
	}
	return float64(v) / math.Pow(2, float64(r))
}

// ToFixed32 encodes value as an N-bit (N<=32) fixed-point with R fractional
// bits, returned zero-extended into a uint32 ready for a Packed32 field or
// direct big-endian serialization.
func ToFixed32(value float64, n, r uint) uint32 {
	return uint32(encodeFixed(value, n, r))
}

// FromFixed32 is the inverse of ToFixed32.
func FromFixed32(raw uint32, n, r uint) float64 {
	return decodeFixed(uint64(raw), n, r)
}

// ToFixed64 encodes value as an N-bit (N<=64) fixed-point with R fractional
// bits, such as the 64-bit/R=20 frequency and bandwidth family.
func ToFixed64(value float64, n, r uint) uint64 {
	return encodeFixed(value, n, r)
}

// FromFixed64 is the inverse of ToFixed64.
func FromFixed64(raw uint64, n, r uint) float64 {
	return decodeFixed(raw, n, r)
}
