package vrt

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. Each concrete error type below
// wraps one of these so callers can either type-switch for detail or do a
// plain errors.Is(err, vrt.ErrTruncated) check.
var (
	ErrBufferTooSmall      = errors.New("vrt: buffer too small")
	ErrTruncated           = errors.New("vrt: buffer truncated")
	ErrUnknownPacketType   = errors.New("vrt: unknown packet type")
	ErrUnknownField        = errors.New("vrt: unknown field")
	ErrMissingPrologueField = errors.New("vrt: missing prologue field")
)

// BufferTooSmallError is returned by Pack when the destination buffer
// cannot hold the bytes BytesRequired reports.
type BufferTooSmallError struct {
	Required int
	Have     int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("vrt: buffer too small: need %d bytes, have %d", e.Required, e.Have)
}

func (e *BufferTooSmallError) Unwrap() error { return ErrBufferTooSmall }

// IsErrBufferTooSmall reports whether err is a BufferTooSmallError.
func IsErrBufferTooSmall(err error) bool {
	var e *BufferTooSmallError
	return errors.As(err, &e)
}

// TruncatedError is returned by Unpack when the source buffer is shorter
// than the packet size the header declares, or shorter than a field
// requires mid-walk.
type TruncatedError struct {
	Field string
	Need  int
	Have  int
}

func (e *TruncatedError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("vrt: truncated buffer: need %d bytes, have %d", e.Need, e.Have)
	}
	return fmt.Sprintf("vrt: truncated buffer reading %s: need %d bytes, have %d", e.Field, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// IsErrTruncated reports whether err is a TruncatedError.
func IsErrTruncated(err error) bool {
	var e *TruncatedError
	return errors.As(err, &e)
}

// UnknownPacketTypeError is returned when the Packet Type field in the
// header names a reserved, not-yet-assigned code (8..15).
type UnknownPacketTypeError struct {
	Code uint8
}

func (e *UnknownPacketTypeError) Error() string {
	return fmt.Sprintf("vrt: unknown packet type code %#x", e.Code)
}

func (e *UnknownPacketTypeError) Unwrap() error { return ErrUnknownPacketType }

// IsErrUnknownPacketType reports whether err is an UnknownPacketTypeError.
func IsErrUnknownPacketType(err error) bool {
	var e *UnknownPacketTypeError
	return errors.As(err, &e)
}

// UnknownFieldError is returned when a CIF bit is set that this
// implementation does not recognize. It is a forward-compatibility signal,
// not necessarily a malformed packet.
type UnknownFieldError struct {
	CIF string
	Bit int
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("vrt: unknown field: %s bit %d", e.CIF, e.Bit)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// IsErrUnknownField reports whether err is an UnknownFieldError.
func IsErrUnknownField(err error) bool {
	var e *UnknownFieldError
	return errors.As(err, &e)
}

// MissingPrologueFieldError is returned by a prologue accessor when the
// header flag that gates its field says the field was never written.
type MissingPrologueFieldError struct {
	Field string
}

func (e *MissingPrologueFieldError) Error() string {
	return fmt.Sprintf("vrt: prologue field %s not present", e.Field)
}

func (e *MissingPrologueFieldError) Unwrap() error { return ErrMissingPrologueField }

// IsErrMissingPrologueField reports whether err is a MissingPrologueFieldError.
func IsErrMissingPrologueField(err error) bool {
	var e *MissingPrologueFieldError
	return errors.As(err, &e)
}
