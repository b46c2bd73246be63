package vrt

/*
field_state_event.go is the State and Event Indicator Field (VITA 49.2
§9.10.8), grounded on cif0.hpp's StateEventIndicators class: eight
enable flags at bits 31-24 paired with eight indicator flags at bits
19-12, plus the Associated Context Packet Count at bits 7-0 (enable bit
7, 7-bit count at bits 6-0) supplemented from the surrounding class
comment block.
*/

const (
	seCalibratedTimeEnable    = 31
	seValidDataEnable         = 30
	seReferenceLockEnable     = 29
	seAGCMGCEnable            = 28
	seDetectedSignalEnable    = 27
	seSpectralInversionEnable = 26
	seOverRangeEnable         = 25
	seSampleLossEnable        = 24
	seCalibratedTime          = 19
	seValidData               = 18
	seReferenceLock           = 17
	seAGCMGC                  = 16
	seDetectedSignal          = 15
	seSpectralInversion       = 14
	seOverRange               = 13
	seSampleLoss              = 12
	seAssocContextCountEnable = 7
	seAssocContextCount       = 6
)

// StateEventIndicators is the State and Event Indicator context field.
type StateEventIndicators struct {
	packed Packed32
}

func (s *StateEventIndicators) Word() uint32     { return s.packed.Word() }
func (s *StateEventIndicators) SetWord(w uint32) { s.packed.SetWord(w) }
func (s *StateEventIndicators) Size() int        { return s.packed.Size() }

func (s *StateEventIndicators) PackInto(buf []byte)   { s.packed.PackInto(buf) }
func (s *StateEventIndicators) UnpackFrom(buf []byte) { s.packed.UnpackFrom(buf) }

func (s *StateEventIndicators) CalibratedTimeEnable() bool { return s.packed.Bit(seCalibratedTimeEnable) }
func (s *StateEventIndicators) SetCalibratedTimeEnable(v bool) {
	s.packed.SetBit(seCalibratedTimeEnable, v)
}

func (s *StateEventIndicators) ValidDataEnable() bool     { return s.packed.Bit(seValidDataEnable) }
func (s *StateEventIndicators) SetValidDataEnable(v bool) { s.packed.SetBit(seValidDataEnable, v) }

func (s *StateEventIndicators) ReferenceLockEnable() bool { return s.packed.Bit(seReferenceLockEnable) }
func (s *StateEventIndicators) SetReferenceLockEnable(v bool) {
	s.packed.SetBit(seReferenceLockEnable, v)
}

func (s *StateEventIndicators) AGCMGCEnable() bool     { return s.packed.Bit(seAGCMGCEnable) }
func (s *StateEventIndicators) SetAGCMGCEnable(v bool) { s.packed.SetBit(seAGCMGCEnable, v) }

func (s *StateEventIndicators) DetectedSignalEnable() bool {
	return s.packed.Bit(seDetectedSignalEnable)
}
func (s *StateEventIndicators) SetDetectedSignalEnable(v bool) {
	s.packed.SetBit(seDetectedSignalEnable, v)
}

func (s *StateEventIndicators) SpectralInversionEnable() bool {
	return s.packed.Bit(seSpectralInversionEnable)
}
func (s *StateEventIndicators) SetSpectralInversionEnable(v bool) {
	s.packed.SetBit(seSpectralInversionEnable, v)
}

func (s *StateEventIndicators) OverRangeEnable() bool     { return s.packed.Bit(seOverRangeEnable) }
func (s *StateEventIndicators) SetOverRangeEnable(v bool) { s.packed.SetBit(seOverRangeEnable, v) }

func (s *StateEventIndicators) SampleLossEnable() bool     { return s.packed.Bit(seSampleLossEnable) }
func (s *StateEventIndicators) SetSampleLossEnable(v bool) { s.packed.SetBit(seSampleLossEnable, v) }

func (s *StateEventIndicators) CalibratedTime() bool { return s.packed.Bit(seCalibratedTime) }

// SetCalibratedTime writes the calibrated-time indicator and asserts its
// enable bit, since an indicator with no enable bit set is indistinguishable
// from one that was never reported.
func (s *StateEventIndicators) SetCalibratedTime(v bool) {
	s.packed.SetBit(seCalibratedTimeEnable, true)
	s.packed.SetBit(seCalibratedTime, v)
}

// ResetCalibratedTime clears both the calibrated-time indicator and its
// enable bit, returning the attribute to not-reported.
func (s *StateEventIndicators) ResetCalibratedTime() {
	s.packed.SetBit(seCalibratedTimeEnable, false)
	s.packed.SetBit(seCalibratedTime, false)
}

func (s *StateEventIndicators) ValidData() bool { return s.packed.Bit(seValidData) }
func (s *StateEventIndicators) SetValidData(v bool) {
	s.packed.SetBit(seValidDataEnable, true)
	s.packed.SetBit(seValidData, v)
}
func (s *StateEventIndicators) ResetValidData() {
	s.packed.SetBit(seValidDataEnable, false)
	s.packed.SetBit(seValidData, false)
}

func (s *StateEventIndicators) ReferenceLock() bool { return s.packed.Bit(seReferenceLock) }
func (s *StateEventIndicators) SetReferenceLock(v bool) {
	s.packed.SetBit(seReferenceLockEnable, true)
	s.packed.SetBit(seReferenceLock, v)
}
func (s *StateEventIndicators) ResetReferenceLock() {
	s.packed.SetBit(seReferenceLockEnable, false)
	s.packed.SetBit(seReferenceLock, false)
}

func (s *StateEventIndicators) AGCMGC() bool { return s.packed.Bit(seAGCMGC) }
func (s *StateEventIndicators) SetAGCMGC(v bool) {
	s.packed.SetBit(seAGCMGCEnable, true)
	s.packed.SetBit(seAGCMGC, v)
}
func (s *StateEventIndicators) ResetAGCMGC() {
	s.packed.SetBit(seAGCMGCEnable, false)
	s.packed.SetBit(seAGCMGC, false)
}

func (s *StateEventIndicators) DetectedSignal() bool { return s.packed.Bit(seDetectedSignal) }
func (s *StateEventIndicators) SetDetectedSignal(v bool) {
	s.packed.SetBit(seDetectedSignalEnable, true)
	s.packed.SetBit(seDetectedSignal, v)
}
func (s *StateEventIndicators) ResetDetectedSignal() {
	s.packed.SetBit(seDetectedSignalEnable, false)
	s.packed.SetBit(seDetectedSignal, false)
}

func (s *StateEventIndicators) SpectralInversion() bool { return s.packed.Bit(seSpectralInversion) }
func (s *StateEventIndicators) SetSpectralInversion(v bool) {
	s.packed.SetBit(seSpectralInversionEnable, true)
	s.packed.SetBit(seSpectralInversion, v)
}
func (s *StateEventIndicators) ResetSpectralInversion() {
	s.packed.SetBit(seSpectralInversionEnable, false)
	s.packed.SetBit(seSpectralInversion, false)
}

func (s *StateEventIndicators) OverRange() bool { return s.packed.Bit(seOverRange) }
func (s *StateEventIndicators) SetOverRange(v bool) {
	s.packed.SetBit(seOverRangeEnable, true)
	s.packed.SetBit(seOverRange, v)
}
func (s *StateEventIndicators) ResetOverRange() {
	s.packed.SetBit(seOverRangeEnable, false)
	s.packed.SetBit(seOverRange, false)
}

func (s *StateEventIndicators) SampleLoss() bool { return s.packed.Bit(seSampleLoss) }
func (s *StateEventIndicators) SetSampleLoss(v bool) {
	s.packed.SetBit(seSampleLossEnable, true)
	s.packed.SetBit(seSampleLoss, v)
}
func (s *StateEventIndicators) ResetSampleLoss() {
	s.packed.SetBit(seSampleLossEnable, false)
	s.packed.SetBit(seSampleLoss, false)
}

func (s *StateEventIndicators) AssociatedContextPacketCountEnable() bool {
	return s.packed.Bit(seAssocContextCountEnable)
}
func (s *StateEventIndicators) SetAssociatedContextPacketCountEnable(v bool) {
	s.packed.SetBit(seAssocContextCountEnable, v)
}

func (s *StateEventIndicators) AssociatedContextPacketCount() uint8 {
	return getField[uint8](&s.packed, seAssocContextCount, 7)
}

// SetAssociatedContextPacketCount writes the count and asserts its enable
// bit.
func (s *StateEventIndicators) SetAssociatedContextPacketCount(v uint8) {
	s.packed.SetBit(seAssocContextCountEnable, true)
	setField(&s.packed, seAssocContextCount, 7, v)
}

// ResetAssociatedContextPacketCount clears the count and its enable bit.
func (s *StateEventIndicators) ResetAssociatedContextPacketCount() {
	s.packed.SetBit(seAssocContextCountEnable, false)
	setField(&s.packed, seAssocContextCount, 7, uint8(0))
}

// Reset clears every indicator and its enable bit, returning the field to
// its zero, all-unreported state.
func (s *StateEventIndicators) Reset() { s.packed.SetWord(0) }
