package vrt

/*
field_warning_error.go is the Warning/Errors Indicator field family
(VITA 49.2 §8.3.6/§8.3.7, Command/Acknowledge packets), grounded on
VITA 49.2 §8.3.6/§8.3.7's bit table: thirteen boolean fault flags at bits 31..19.
Warnings and Errors are two separate 32-bit words sharing this exact
bit layout, so a single struct serves both — the caller picks which
wire slot it occupies.
*/

const (
	weFieldNotExecuted              = 31
	weDeviceFailure                 = 30
	weErroneousField                = 29
	weParameterOutOfRange           = 28
	weParameterUnsupportedPrecision = 27
	weFieldValueInvalid             = 26
	weTimestampProblem              = 25
	weHazardousPowerLevels          = 24
	weDistortion                    = 23
	weInBandPowerCompliance         = 22
	weOutOfBandPowerCompliance      = 21
	weCositeInterference            = 20
	weRegionalInterference          = 19
)

// WarningErrorFields is the 32-bit fault-indicator word shared by the
// Warnings field and the Errors field on Command and Acknowledge
// packets.
type WarningErrorFields struct {
	packed Packed32
}

func (w *WarningErrorFields) Word() uint32     { return w.packed.Word() }
func (w *WarningErrorFields) SetWord(v uint32) { w.packed.SetWord(v) }
func (w *WarningErrorFields) Any() bool        { return w.packed.Any() }
func (w *WarningErrorFields) Size() int        { return w.packed.Size() }

func (w *WarningErrorFields) PackInto(buf []byte)   { w.packed.PackInto(buf) }
func (w *WarningErrorFields) UnpackFrom(buf []byte) { w.packed.UnpackFrom(buf) }

func (w *WarningErrorFields) FieldNotExecuted() bool     { return w.packed.Bit(weFieldNotExecuted) }
func (w *WarningErrorFields) SetFieldNotExecuted(v bool) { w.packed.SetBit(weFieldNotExecuted, v) }

func (w *WarningErrorFields) DeviceFailure() bool     { return w.packed.Bit(weDeviceFailure) }
func (w *WarningErrorFields) SetDeviceFailure(v bool) { w.packed.SetBit(weDeviceFailure, v) }

func (w *WarningErrorFields) ErroneousField() bool     { return w.packed.Bit(weErroneousField) }
func (w *WarningErrorFields) SetErroneousField(v bool) { w.packed.SetBit(weErroneousField, v) }

func (w *WarningErrorFields) ParameterOutOfRange() bool {
	return w.packed.Bit(weParameterOutOfRange)
}
func (w *WarningErrorFields) SetParameterOutOfRange(v bool) {
	w.packed.SetBit(weParameterOutOfRange, v)
}

func (w *WarningErrorFields) ParameterUnsupportedPrecision() bool {
	return w.packed.Bit(weParameterUnsupportedPrecision)
}
func (w *WarningErrorFields) SetParameterUnsupportedPrecision(v bool) {
	w.packed.SetBit(weParameterUnsupportedPrecision, v)
}

func (w *WarningErrorFields) FieldValueInvalid() bool { return w.packed.Bit(weFieldValueInvalid) }
func (w *WarningErrorFields) SetFieldValueInvalid(v bool) {
	w.packed.SetBit(weFieldValueInvalid, v)
}

func (w *WarningErrorFields) TimestampProblem() bool     { return w.packed.Bit(weTimestampProblem) }
func (w *WarningErrorFields) SetTimestampProblem(v bool) { w.packed.SetBit(weTimestampProblem, v) }

func (w *WarningErrorFields) HazardousPowerLevels() bool {
	return w.packed.Bit(weHazardousPowerLevels)
}
func (w *WarningErrorFields) SetHazardousPowerLevels(v bool) {
	w.packed.SetBit(weHazardousPowerLevels, v)
}

func (w *WarningErrorFields) Distortion() bool     { return w.packed.Bit(weDistortion) }
func (w *WarningErrorFields) SetDistortion(v bool) { w.packed.SetBit(weDistortion, v) }

func (w *WarningErrorFields) InBandPowerCompliance() bool {
	return w.packed.Bit(weInBandPowerCompliance)
}
func (w *WarningErrorFields) SetInBandPowerCompliance(v bool) {
	w.packed.SetBit(weInBandPowerCompliance, v)
}

func (w *WarningErrorFields) OutOfBandPowerCompliance() bool {
	return w.packed.Bit(weOutOfBandPowerCompliance)
}
func (w *WarningErrorFields) SetOutOfBandPowerCompliance(v bool) {
	w.packed.SetBit(weOutOfBandPowerCompliance, v)
}

func (w *WarningErrorFields) CositeInterference() bool {
	return w.packed.Bit(weCositeInterference)
}
func (w *WarningErrorFields) SetCositeInterference(v bool) {
	w.packed.SetBit(weCositeInterference, v)
}

func (w *WarningErrorFields) RegionalInterference() bool {
	return w.packed.Bit(weRegionalInterference)
}
func (w *WarningErrorFields) SetRegionalInterference(v bool) {
	w.packed.SetBit(weRegionalInterference, v)
}
