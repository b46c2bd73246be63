package vrt

/*
cam.go is the Control/Acknowledge Mode field family (VITA 49.2 §8.2.1,
§8.3.1, §8.4.1), grounded on
original_source/include/vrtgen/packing/command.hpp's
ControlAcknowledgeMode/ControlCAM/AcknowledgeCAM class hierarchy. As
with Header, Go's lack of inheritance means a single CAM struct carries
every variant's fields directly: bits 20..16 are Request flags on a
Control packet and Acknowledge flags on an Acknowledge packet, selected
by which accessor the caller uses.
*/

const (
	camControlleeEnable = 31
	camControlleeFormat = 30
	camControllerEnable = 29
	camControllerFormat = 28
	camPermitPartial    = 27
	camPermitWarnings   = 26
	camPermitErrors     = 25
	camActionMode       = 24
	camNackOnly         = 22
	camTimingControl    = 14

	camReqV  = 20
	camReqX  = 19
	camReqS  = 18
	camReqW  = 17
	camReqEr = 16

	camAckV                 = 20
	camAckX                 = 19
	camAckS                 = 18
	camAckW                 = 17
	camAckEr                = 16
	camPartialAction        = 11
	camScheduledOrExecuted  = 10
)

// CAM is the Control/Acknowledge Mode 32-bit word carried by Command,
// Extension Command, Acknowledge, and Extension Acknowledge packets.
type CAM struct {
	packed Packed32
}

func (c *CAM) Word() uint32     { return c.packed.Word() }
func (c *CAM) SetWord(w uint32) { c.packed.SetWord(w) }
func (c *CAM) Size() int        { return c.packed.Size() }

func (c *CAM) PackInto(buf []byte)   { c.packed.PackInto(buf) }
func (c *CAM) UnpackFrom(buf []byte) { c.packed.UnpackFrom(buf) }

func (c *CAM) ControlleeEnable() bool     { return c.packed.Bit(camControlleeEnable) }
func (c *CAM) SetControlleeEnable(v bool) { c.packed.SetBit(camControlleeEnable, v) }

func (c *CAM) ControlleeFormat() IdentifierFormat {
	return getField[IdentifierFormat](&c.packed, camControlleeFormat, 1)
}
func (c *CAM) SetControlleeFormat(v IdentifierFormat) {
	setField(&c.packed, camControlleeFormat, 1, v)
}

func (c *CAM) ControllerEnable() bool     { return c.packed.Bit(camControllerEnable) }
func (c *CAM) SetControllerEnable(v bool) { c.packed.SetBit(camControllerEnable, v) }

func (c *CAM) ControllerFormat() IdentifierFormat {
	return getField[IdentifierFormat](&c.packed, camControllerFormat, 1)
}
func (c *CAM) SetControllerFormat(v IdentifierFormat) {
	setField(&c.packed, camControllerFormat, 1, v)
}

func (c *CAM) PermitPartial() bool     { return c.packed.Bit(camPermitPartial) }
func (c *CAM) SetPermitPartial(v bool) { c.packed.SetBit(camPermitPartial, v) }

func (c *CAM) PermitWarnings() bool     { return c.packed.Bit(camPermitWarnings) }
func (c *CAM) SetPermitWarnings(v bool) { c.packed.SetBit(camPermitWarnings, v) }

func (c *CAM) PermitErrors() bool     { return c.packed.Bit(camPermitErrors) }
func (c *CAM) SetPermitErrors(v bool) { c.packed.SetBit(camPermitErrors, v) }

func (c *CAM) ActionMode() ActionMode {
	return getField[ActionMode](&c.packed, camActionMode, 2)
}
func (c *CAM) SetActionMode(v ActionMode) { setField(&c.packed, camActionMode, 2, v) }

func (c *CAM) NackOnly() bool     { return c.packed.Bit(camNackOnly) }
func (c *CAM) SetNackOnly(v bool) { c.packed.SetBit(camNackOnly, v) }

func (c *CAM) TimingControl() TimestampControlMode {
	return getField[TimestampControlMode](&c.packed, camTimingControl, 3)
}
func (c *CAM) SetTimingControl(v TimestampControlMode) {
	setField(&c.packed, camTimingControl, 3, v)
}

// Control packet request flags (Control/Extension Control only).

func (c *CAM) RequestValidationAck() bool     { return c.packed.Bit(camReqV) }
func (c *CAM) SetRequestValidationAck(v bool) { c.packed.SetBit(camReqV, v) }

func (c *CAM) RequestExecutionAck() bool     { return c.packed.Bit(camReqX) }
func (c *CAM) SetRequestExecutionAck(v bool) { c.packed.SetBit(camReqX, v) }

func (c *CAM) RequestQueryStateAck() bool     { return c.packed.Bit(camReqS) }
func (c *CAM) SetRequestQueryStateAck(v bool) { c.packed.SetBit(camReqS, v) }

func (c *CAM) RequestWarnings() bool     { return c.packed.Bit(camReqW) }
func (c *CAM) SetRequestWarnings(v bool) { c.packed.SetBit(camReqW, v) }

func (c *CAM) RequestErrors() bool     { return c.packed.Bit(camReqEr) }
func (c *CAM) SetRequestErrors(v bool) { c.packed.SetBit(camReqEr, v) }

// Acknowledge packet response flags (Acknowledge/Extension Acknowledge
// only). These reuse bits 20..16, the same bits as the Request flags
// above, per VITA 49.2's CAM word reuse between Control and
// Acknowledge packets.

func (c *CAM) AckValidation() bool     { return c.packed.Bit(camAckV) }
func (c *CAM) SetAckValidation(v bool) { c.packed.SetBit(camAckV, v) }

func (c *CAM) AckExecution() bool     { return c.packed.Bit(camAckX) }
func (c *CAM) SetAckExecution(v bool) { c.packed.SetBit(camAckX, v) }

func (c *CAM) AckQueryState() bool     { return c.packed.Bit(camAckS) }
func (c *CAM) SetAckQueryState(v bool) { c.packed.SetBit(camAckS, v) }

func (c *CAM) AckWarnings() bool     { return c.packed.Bit(camAckW) }
func (c *CAM) SetAckWarnings(v bool) { c.packed.SetBit(camAckW, v) }

func (c *CAM) AckErrors() bool     { return c.packed.Bit(camAckEr) }
func (c *CAM) SetAckErrors(v bool) { c.packed.SetBit(camAckEr, v) }

func (c *CAM) PartialAction() bool     { return c.packed.Bit(camPartialAction) }
func (c *CAM) SetPartialAction(v bool) { c.packed.SetBit(camPartialAction, v) }

func (c *CAM) ScheduledOrExecuted() bool     { return c.packed.Bit(camScheduledOrExecuted) }
func (c *CAM) SetScheduledOrExecuted(v bool) { c.packed.SetBit(camScheduledOrExecuted, v) }
