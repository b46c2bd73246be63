package vrt

/*
packet_setters.go gives every CIF0-3 field record a single-call setter
that writes the value and asserts its owning CIF enable bit together,
matching original_source's generated accessors (e.g.
original_source/cpp/tests/codegen/test_cif0.cpp's
packet_in.setBandwidth(BANDWIDTH_1) is one call that implies both
presence and value). Packet's record fields stay plain, directly
assignable struct fields for callers who build a packet by hand or round-trip
one through Unpack; these setters are the ergonomic, spec-compliant path
for callers constructing a packet field by field.

Radix points not already fixed by a field's own type follow the nearest
documented (N,R) family from fixedpoint.go's table: level/ratio readings
(reference level, phase offset, polarization, pointing vector, beam
width, range, Eb/No, BER, threshold, compression point, intercept
points, SNR, noise figure, humidity, barometric pressure) share Gain's
R=7; temperature readings share R=6; every 64-bit scalar (frequencies,
bandwidth, sample rate, and CIF3's timing-interval family, which has no
documented 64-bit family of its own) shares the N=64 R=20 family.
*/

const (
	rLevelRatio = 7
	rTemp       = 6
	rFreq64     = 20
)

// SetReferencePointID writes the Reference Point ID and asserts CIF0.
func (p *Packet) SetReferencePointID(v uint32) {
	p.CIF0.SetReferencePointID(true)
	p.ReferencePointID = UInt32Field{Value: v}
}

// SetBandwidth writes the Bandwidth field and asserts CIF0.
func (p *Packet) SetBandwidth(hz float64) {
	p.CIF0.SetBandwidth(true)
	p.Bandwidth = Fixed64Field{R: rFreq64, Value: hz}
}

// SetIFReferenceFrequency writes the IF Reference Frequency and asserts CIF0.
func (p *Packet) SetIFReferenceFrequency(hz float64) {
	p.CIF0.SetIFReferenceFrequency(true)
	p.IFReferenceFrequency = Fixed64Field{R: rFreq64, Value: hz}
}

// SetRFReferenceFrequency writes the RF Reference Frequency and asserts CIF0.
func (p *Packet) SetRFReferenceFrequency(hz float64) {
	p.CIF0.SetRFReferenceFrequency(true)
	p.RFReferenceFrequency = Fixed64Field{R: rFreq64, Value: hz}
}

// SetRFReferenceFrequencyOffset writes the RF Reference Frequency Offset and
// asserts CIF0.
func (p *Packet) SetRFReferenceFrequencyOffset(hz float64) {
	p.CIF0.SetRFReferenceFrequencyOffset(true)
	p.RFReferenceFrequencyOffset = Fixed64Field{R: rFreq64, Value: hz}
}

// SetIFBandOffset writes the IF Band Offset and asserts CIF0.
func (p *Packet) SetIFBandOffset(hz float64) {
	p.CIF0.SetIFBandOffset(true)
	p.IFBandOffset = Fixed64Field{R: rFreq64, Value: hz}
}

// SetReferenceLevel writes the Reference Level and asserts CIF0.
func (p *Packet) SetReferenceLevel(dBm float64) {
	p.CIF0.SetReferenceLevel(true)
	p.ReferenceLevel = Fixed32Field{R: rLevelRatio, Value: dBm}
}

// SetGain writes the Gain/Attenuation field and asserts CIF0.
func (p *Packet) SetGain(g Gain) {
	p.CIF0.SetGain(true)
	p.GainField = g
}

// SetOverRangeCount writes the Over-range Count and asserts CIF0.
func (p *Packet) SetOverRangeCount(v uint32) {
	p.CIF0.SetOverRangeCount(true)
	p.OverRangeCount = UInt32Field{Value: v}
}

// SetSampleRate writes the Sample Rate and asserts CIF0.
func (p *Packet) SetSampleRate(hz float64) {
	p.CIF0.SetSampleRate(true)
	p.SampleRate = Fixed64Field{R: rFreq64, Value: hz}
}

// SetTimestampAdjustment writes the Timestamp Adjustment and asserts CIF0.
func (p *Packet) SetTimestampAdjustment(v uint64) {
	p.CIF0.SetTimestampAdjustment(true)
	p.TimestampAdjustment = UInt64Field{Value: v}
}

// SetTimestampCalibrationTime writes the Timestamp Calibration Time and
// asserts CIF0.
func (p *Packet) SetTimestampCalibrationTime(v uint32) {
	p.CIF0.SetTimestampCalibrationTime(true)
	p.TimestampCalibrationTime = UInt32Field{Value: v}
}

// SetTemperature writes the Temperature and asserts CIF0.
func (p *Packet) SetTemperature(celsius float64) {
	p.CIF0.SetTemperature(true)
	p.Temperature = Fixed32Field{R: rTemp, Value: celsius}
}

// SetDeviceID writes the Device Identifier and asserts CIF0.
func (p *Packet) SetDeviceID(d DeviceIdentifier) {
	p.CIF0.SetDeviceIdentifier(true)
	p.DeviceID = d
}

// SetStateEvent writes the State and Event Indicator field and asserts CIF0.
func (p *Packet) SetStateEvent(s StateEventIndicators) {
	p.CIF0.SetStateEventIndicators(true)
	p.StateEvent = s
}

// SetPayloadFormat writes the Signal Data Packet Payload Format field and
// asserts CIF0.
func (p *Packet) SetPayloadFormat(pf PayloadFormat) {
	p.CIF0.SetPayloadFormat(true)
	p.PayloadFormatField = pf
}

// SetFormattedGPS writes the Formatted GPS Geolocation field and asserts
// CIF0.
func (p *Packet) SetFormattedGPS(g Geolocation) {
	p.CIF0.SetFormattedGPS(true)
	p.FormattedGPS = g
}

// SetFormattedINS writes the Formatted INS Geolocation field and asserts
// CIF0.
func (p *Packet) SetFormattedINS(g Geolocation) {
	p.CIF0.SetFormattedINS(true)
	p.FormattedINS = g
}

// SetECEFEphemeris writes the ECEF Ephemeris field and asserts CIF0.
func (p *Packet) SetECEFEphemeris(e Ephemeris) {
	p.CIF0.SetECEFEphemeris(true)
	p.ECEFEphemeris = e
}

// SetRelativeEphemeris writes the Relative Ephemeris field and asserts CIF0.
func (p *Packet) SetRelativeEphemeris(e Ephemeris) {
	p.CIF0.SetRelativeEphemeris(true)
	p.RelativeEphemeris = e
}

// SetEphemerisReferenceID writes the Ephemeris Reference ID and asserts
// CIF0.
func (p *Packet) SetEphemerisReferenceID(v uint32) {
	p.CIF0.SetEphemerisReferenceID(true)
	p.EphemerisRefID = UInt32Field{Value: v}
}

// SetGPSASCII writes the GPS ASCII field and asserts CIF0.
func (p *Packet) SetGPSASCII(g GpsAscii) {
	p.CIF0.SetGPSASCII(true)
	p.GPSASCIIField = g
}

// SetAssociationLists writes the Context Association Lists field and
// asserts CIF0.
func (p *Packet) SetAssociationLists(c ContextAssociationLists) {
	p.CIF0.SetContextAssociationLists(true)
	p.AssociationLists = c
}

// SetPhaseOffset writes the Phase Offset and asserts CIF1.
func (p *Packet) SetPhaseOffset(v float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetPhaseOffset(true)
	p.PhaseOffset = Fixed32Field{R: rLevelRatio, Value: v}
}

// SetPolarization writes the Polarization tilt and ellipticity angles and
// asserts CIF1.
func (p *Packet) SetPolarization(tilt, ellipticity float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetPolarization(true)
	p.Polarization[0] = Fixed32Field{R: rLevelRatio, Value: tilt}
	p.Polarization[1] = Fixed32Field{R: rLevelRatio, Value: ellipticity}
}

// SetPointingVector writes the Pointing Vector azimuth and elevation and
// asserts CIF1.
func (p *Packet) SetPointingVector(azimuth, elevation float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetPointingVector(true)
	p.PointingVector[0] = Fixed32Field{R: rLevelRatio, Value: azimuth}
	p.PointingVector[1] = Fixed32Field{R: rLevelRatio, Value: elevation}
}

// SetBeamWidth writes the horizontal/vertical Beam Width and asserts CIF1.
func (p *Packet) SetBeamWidth(horizontal, vertical float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetBeamWidth(true)
	p.BeamWidth[0] = Fixed32Field{R: rLevelRatio, Value: horizontal}
	p.BeamWidth[1] = Fixed32Field{R: rLevelRatio, Value: vertical}
}

// SetRange writes the Range and asserts CIF1.
func (p *Packet) SetRange(v float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetRange(true)
	p.RangeField = Fixed32Field{R: rLevelRatio, Value: v}
}

// SetEbNoBER writes Eb/No and BER and asserts CIF1.
func (p *Packet) SetEbNoBER(ebNo, ber float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetEbNoBER(true)
	p.EbNoBER[0] = Fixed32Field{R: rLevelRatio, Value: ebNo}
	p.EbNoBER[1] = Fixed32Field{R: rLevelRatio, Value: ber}
}

// SetThreshold writes the stage 1/stage 2 Threshold and asserts CIF1.
func (p *Packet) SetThreshold(stage1, stage2 float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetThreshold(true)
	p.Threshold[0] = Fixed32Field{R: rLevelRatio, Value: stage1}
	p.Threshold[1] = Fixed32Field{R: rLevelRatio, Value: stage2}
}

// SetCompressionPoint writes the Compression Point and asserts CIF1.
func (p *Packet) SetCompressionPoint(v float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetCompressionPoint(true)
	p.CompressionPoint = Fixed32Field{R: rLevelRatio, Value: v}
}

// SetInterceptPoints writes the 2nd/3rd order Intercept Points and asserts
// CIF1.
func (p *Packet) SetInterceptPoints(secondOrder, thirdOrder float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetInterceptPoints(true)
	p.InterceptPoints[0] = Fixed32Field{R: rLevelRatio, Value: secondOrder}
	p.InterceptPoints[1] = Fixed32Field{R: rLevelRatio, Value: thirdOrder}
}

// SetSNRNoiseFigure writes SNR and Noise Figure and asserts CIF1.
func (p *Packet) SetSNRNoiseFigure(snr, noiseFigure float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetSNRNoiseFigure(true)
	p.SNRNoiseFigure[0] = Fixed32Field{R: rLevelRatio, Value: snr}
	p.SNRNoiseFigure[1] = Fixed32Field{R: rLevelRatio, Value: noiseFigure}
}

// SetAuxFrequency writes the Auxiliary Frequency and asserts CIF1.
func (p *Packet) SetAuxFrequency(hz float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetAuxFrequency(true)
	p.AuxFrequency = Fixed64Field{R: rFreq64, Value: hz}
}

// SetAuxGain writes the Auxiliary Gain/Attenuation field and asserts CIF1.
func (p *Packet) SetAuxGain(g Gain) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetAuxGain(true)
	p.AuxGain = g
}

// SetAuxBandwidth writes the Auxiliary Bandwidth and asserts CIF1.
func (p *Packet) SetAuxBandwidth(hz float64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetAuxBandwidth(true)
	p.AuxBandwidth = Fixed64Field{R: rFreq64, Value: hz}
}

// SetDiscreteIO32 writes the 32-bit Discrete I/O field and asserts CIF1.
func (p *Packet) SetDiscreteIO32(v uint32) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetDiscreteIO32(true)
	p.DiscreteIO32Field = UInt32Field{Value: v}
}

// SetDiscreteIO64 writes the 64-bit Discrete I/O field and asserts CIF1.
func (p *Packet) SetDiscreteIO64(v uint64) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetDiscreteIO64(true)
	p.DiscreteIO64Field = UInt64Field{Value: v}
}

// SetHealthStatus writes the Health Status and asserts CIF1.
func (p *Packet) SetHealthStatus(v uint32) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetHealthStatus(true)
	p.HealthStatus = UInt32Field{Value: v}
}

// SetV49SpecCompliance writes the V49 Spec Compliance code and asserts CIF1.
func (p *Packet) SetV49SpecCompliance(v uint32) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetV49SpecCompliance(true)
	p.V49SpecCompliance = UInt32Field{Value: v}
}

// SetVersionBuildCode writes the Version and Build Code and asserts CIF1.
func (p *Packet) SetVersionBuildCode(v uint32) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetVersionBuildCode(true)
	p.VersionBuildCode = UInt32Field{Value: v}
}

// SetBufferSize writes the buffer size and buffer level and asserts CIF1.
func (p *Packet) SetBufferSize(size, level uint32) {
	p.CIF0.SetCIF1Enable(true)
	p.CIF1.SetBufferSize(true)
	p.BufferSize[0] = UInt32Field{Value: size}
	p.BufferSize[1] = UInt32Field{Value: level}
}

// SetBind writes the Bind identifier and asserts CIF2.
func (p *Packet) SetBind(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetBind(true)
	p.Bind = UInt32Field{Value: v}
}

// SetCitedSID writes the Cited Stream ID and asserts CIF2.
func (p *Packet) SetCitedSID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetCitedSID(true)
	p.CitedSID = UInt32Field{Value: v}
}

// SetSiblingSID writes the Sibling Stream ID and asserts CIF2.
func (p *Packet) SetSiblingSID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetSiblingSID(true)
	p.SiblingSID = UInt32Field{Value: v}
}

// SetParentSID writes the Parent Stream ID and asserts CIF2.
func (p *Packet) SetParentSID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetParentSID(true)
	p.ParentSID = UInt32Field{Value: v}
}

// SetChildSID writes the Child Stream ID and asserts CIF2.
func (p *Packet) SetChildSID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetChildSID(true)
	p.ChildSID = UInt32Field{Value: v}
}

// SetCitedMessageID writes the Cited Message ID and asserts CIF2.
func (p *Packet) SetCitedMessageID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetCitedMessageID(true)
	p.CitedMessageID = UInt32Field{Value: v}
}

// SetControlleeID writes the Controllee ID (Word addressing) and asserts
// CIF2.
func (p *Packet) SetControlleeID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetControlleeID(true)
	p.ControlleeID = UInt32Field{Value: v}
}

// SetControlleeUUID writes the Controllee UUID (UUID addressing) and
// asserts CIF2.
func (p *Packet) SetControlleeUUID(hi, lo uint64) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetControlleeUUID(true)
	p.ControlleeUUID = UUIDField{Hi: hi, Lo: lo}
}

// SetControllerID writes the Controller ID (Word addressing) and asserts
// CIF2.
func (p *Packet) SetControllerID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetControllerID(true)
	p.ControllerID = UInt32Field{Value: v}
}

// SetControllerUUID writes the Controller UUID (UUID addressing) and
// asserts CIF2.
func (p *Packet) SetControllerUUID(hi, lo uint64) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetControllerUUID(true)
	p.ControllerUUID = UUIDField{Hi: hi, Lo: lo}
}

// SetInformationSource writes the Information Source and asserts CIF2.
func (p *Packet) SetInformationSource(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetInformationSource(true)
	p.InformationSource = UInt32Field{Value: v}
}

// SetTrackID writes the Track ID and asserts CIF2.
func (p *Packet) SetTrackID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetTrackID(true)
	p.TrackID = UInt32Field{Value: v}
}

// SetCountryCode writes the Country Code and asserts CIF2.
func (p *Packet) SetCountryCode(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetCountryCode(true)
	p.CountryCode = UInt32Field{Value: v}
}

// SetOperator writes the Operator identifier and asserts CIF2.
func (p *Packet) SetOperator(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetOperator(true)
	p.Operator = UInt32Field{Value: v}
}

// SetPlatformClass writes the Platform Class and asserts CIF2.
func (p *Packet) SetPlatformClass(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetPlatformClass(true)
	p.PlatformClass = UInt32Field{Value: v}
}

// SetPlatformInstance writes the Platform Instance and asserts CIF2.
func (p *Packet) SetPlatformInstance(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetPlatformInstance(true)
	p.PlatformInstance = UInt32Field{Value: v}
}

// SetPlatformDisplay writes the Platform Display and asserts CIF2.
func (p *Packet) SetPlatformDisplay(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetPlatformDisplay(true)
	p.PlatformDisplay = UInt32Field{Value: v}
}

// SetEMSDeviceClass writes the EMS Device Class and asserts CIF2.
func (p *Packet) SetEMSDeviceClass(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetEMSDeviceClass(true)
	p.EMSDeviceClass = UInt32Field{Value: v}
}

// SetEMSDeviceType writes the EMS Device Type and asserts CIF2.
func (p *Packet) SetEMSDeviceType(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetEMSDeviceType(true)
	p.EMSDeviceType = UInt32Field{Value: v}
}

// SetEMSDeviceInstance writes the EMS Device Instance and asserts CIF2.
func (p *Packet) SetEMSDeviceInstance(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetEMSDeviceInstance(true)
	p.EMSDeviceInstance = UInt32Field{Value: v}
}

// SetModulationClass writes the Modulation Class and asserts CIF2.
func (p *Packet) SetModulationClass(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetModulationClass(true)
	p.ModulationClass = UInt32Field{Value: v}
}

// SetModulationType writes the Modulation Type and asserts CIF2.
func (p *Packet) SetModulationType(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetModulationType(true)
	p.ModulationType = UInt32Field{Value: v}
}

// SetFunctionID writes the Function ID and asserts CIF2.
func (p *Packet) SetFunctionID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetFunctionID(true)
	p.FunctionID = UInt32Field{Value: v}
}

// SetModeID writes the Mode ID and asserts CIF2.
func (p *Packet) SetModeID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetModeID(true)
	p.ModeID = UInt32Field{Value: v}
}

// SetEventID writes the Event ID and asserts CIF2.
func (p *Packet) SetEventID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetEventID(true)
	p.EventID = UInt32Field{Value: v}
}

// SetFunctionPriorityID writes the Function Priority ID and asserts CIF2.
func (p *Packet) SetFunctionPriorityID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetFunctionPriorityID(true)
	p.FunctionPriorityID = UInt32Field{Value: v}
}

// SetCommPriorityID writes the Communication Priority ID and asserts CIF2.
func (p *Packet) SetCommPriorityID(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetCommunicationPriorityID(true)
	p.CommPriorityID = UInt32Field{Value: v}
}

// SetRFFootprint writes the RF Footprint and asserts CIF2.
func (p *Packet) SetRFFootprint(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetRFFootprint(true)
	p.RFFootprint = UInt32Field{Value: v}
}

// SetRFFootprintRange writes the RF Footprint Range and asserts CIF2.
func (p *Packet) SetRFFootprintRange(v uint32) {
	p.CIF0.SetCIF2Enable(true)
	p.CIF2.SetRFFootprintRange(true)
	p.RFFootprintRange = UInt32Field{Value: v}
}

// SetTimestampDetails writes the Timestamp Details and asserts CIF3.
func (p *Packet) SetTimestampDetails(v float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetTimestampDetails(true)
	p.TimestampDetails = Fixed64Field{R: rFreq64, Value: v}
}

// SetTimestampSkew writes the Timestamp Skew and asserts CIF3.
func (p *Packet) SetTimestampSkew(v float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetTimestampSkew(true)
	p.TimestampSkew = Fixed64Field{R: rFreq64, Value: v}
}

// SetRiseTime writes the Rise Time and asserts CIF3.
func (p *Packet) SetRiseTime(seconds float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetRiseTime(true)
	p.RiseTime = Fixed64Field{R: rFreq64, Value: seconds}
}

// SetFallTime writes the Fall Time and asserts CIF3.
func (p *Packet) SetFallTime(seconds float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetFallTime(true)
	p.FallTime = Fixed64Field{R: rFreq64, Value: seconds}
}

// SetOffsetTime writes the Offset Time and asserts CIF3.
func (p *Packet) SetOffsetTime(seconds float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetOffsetTime(true)
	p.OffsetTime = Fixed64Field{R: rFreq64, Value: seconds}
}

// SetPulseWidth writes the Pulse Width and asserts CIF3.
func (p *Packet) SetPulseWidth(seconds float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetPulseWidth(true)
	p.PulseWidth = Fixed64Field{R: rFreq64, Value: seconds}
}

// SetPeriod writes the Period and asserts CIF3.
func (p *Packet) SetPeriod(seconds float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetPeriod(true)
	p.Period = Fixed64Field{R: rFreq64, Value: seconds}
}

// SetDuration writes the Duration and asserts CIF3.
func (p *Packet) SetDuration(seconds float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetDuration(true)
	p.Duration = Fixed64Field{R: rFreq64, Value: seconds}
}

// SetDwell writes the Dwell and asserts CIF3.
func (p *Packet) SetDwell(seconds float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetDwell(true)
	p.Dwell = Fixed64Field{R: rFreq64, Value: seconds}
}

// SetJitter writes the Jitter and asserts CIF3.
func (p *Packet) SetJitter(seconds float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetJitter(true)
	p.Jitter = Fixed64Field{R: rFreq64, Value: seconds}
}

// SetAge writes the Age and asserts CIF3.
func (p *Packet) SetAge(v uint32) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetAge(true)
	p.Age = UInt32Field{Value: v}
}

// SetShelfLife writes the Shelf Life and asserts CIF3.
func (p *Packet) SetShelfLife(v uint32) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetShelfLife(true)
	p.ShelfLife = UInt32Field{Value: v}
}

// SetAirTemperature writes the Air Temperature and asserts CIF3.
func (p *Packet) SetAirTemperature(celsius float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetAirTemperature(true)
	p.AirTemperature = Fixed32Field{R: rTemp, Value: celsius}
}

// SetSeaGroundTemperature writes the Sea/Ground Temperature and asserts
// CIF3.
func (p *Packet) SetSeaGroundTemperature(celsius float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetSeaGroundTemperature(true)
	p.SeaGroundTemperature = Fixed32Field{R: rTemp, Value: celsius}
}

// SetHumidity writes the Humidity and asserts CIF3.
func (p *Packet) SetHumidity(v float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetHumidity(true)
	p.Humidity = Fixed32Field{R: rLevelRatio, Value: v}
}

// SetBarometricPressure writes the Barometric Pressure and asserts CIF3.
func (p *Packet) SetBarometricPressure(v float64) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetBarometricPressure(true)
	p.BarometricPressure = Fixed32Field{R: rLevelRatio, Value: v}
}

// SetSeaSwellState writes the Sea and Swell State code and asserts CIF3.
func (p *Packet) SetSeaSwellState(v uint32) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetSeaSwellState(true)
	p.SeaSwellState = UInt32Field{Value: v}
}

// SetTroposphericState writes the Tropospheric State code and asserts CIF3.
func (p *Packet) SetTroposphericState(v uint32) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetTroposphericState(true)
	p.TroposphericState = UInt32Field{Value: v}
}

// SetNetworkID writes the Network ID and asserts CIF3.
func (p *Packet) SetNetworkID(v uint32) {
	p.CIF0.SetCIF3Enable(true)
	p.CIF3.SetNetworkID(true)
	p.NetworkID = UInt32Field{Value: v}
}

// SetBelief writes the Belief attachment and asserts CIF7.
func (p *Packet) SetBelief(b Belief) {
	p.CIF0.SetCIF7Enable(true)
	p.CIF7.SetBelief(true)
	p.Belief = b
}

// SetProbability writes the Probability attachment and asserts CIF7.
func (p *Packet) SetProbability(pr Probability) {
	p.CIF0.SetCIF7Enable(true)
	p.CIF7.SetProbability(true)
	p.Probability = pr
}
