package vrt

import "encoding/binary"

/*
byteorder.go provides host<->network conversions for the unsigned integer
widths used on the VRT wire. VRT is exclusively big-endian, so
unlike a mixed-endian helper set (some protocols serialize big-endian
frame lengths but little-endian sequence numbers) every helper here is
big-endian only.
*/

func fromBE16(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

func fromBE32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

func fromBE64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

func putBE16(dst []byte, v uint16) { binary.BigEndian.PutUint16(dst, v) }
func putBE32(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }
func putBE64(dst []byte, v uint64) { binary.BigEndian.PutUint64(dst, v) }
