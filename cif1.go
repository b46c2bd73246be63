package vrt

/*
cif1.go is the CIF1 enable-mask word, grounded on
original_source/include/vrtgen/packing/indicator_fields.hpp's
IndicatorField1 class. Bit positions below match that class's private
packed_tag comment block exactly, gaps included: bits 23-21, bit 12 and
bit 8 carry no defined indicator in VITA 49.2 and are left unused.
*/

const (
	cif1PhaseOffset          = 31
	cif1Polarization         = 30
	cif1PointingVector       = 29
	cif1PointingVectorStruct = 28
	cif1SpatialScanType      = 27
	cif1SpatialRefType       = 26
	cif1BeamWidth            = 25
	cif1Range                = 24
	cif1EbNoBER              = 20
	cif1Threshold            = 19
	cif1CompressionPoint     = 18
	cif1InterceptPoints      = 17
	cif1SNRNoiseFigure       = 16
	cif1AuxFrequency         = 15
	cif1AuxGain              = 14
	cif1AuxBandwidth         = 13
	cif1ArrayOfCIFs          = 11
	cif1Spectrum             = 10
	cif1SectorStepScan       = 9
	cif1IndexList            = 7
	cif1DiscreteIO32         = 6
	cif1DiscreteIO64         = 5
	cif1HealthStatus         = 4
	cif1V49SpecCompliance    = 3
	cif1VersionBuildCode     = 2
	cif1BufferSize           = 1
)

// CIF1Enables is the Context Information Field 1 enable-mask word (VITA
// 49.2 §7.1.5.3 / Table 9.10).
type CIF1Enables struct {
	packed Packed32
}

func (c *CIF1Enables) Word() uint32     { return c.packed.Word() }
func (c *CIF1Enables) SetWord(w uint32) { c.packed.SetWord(w) }
func (c *CIF1Enables) Any() bool        { return c.packed.Any() }
func (c *CIF1Enables) Size() int        { return c.packed.Size() }

func (c *CIF1Enables) PackInto(buf []byte)   { c.packed.PackInto(buf) }
func (c *CIF1Enables) UnpackFrom(buf []byte) { c.packed.UnpackFrom(buf) }

func (c *CIF1Enables) PhaseOffset() bool     { return c.packed.Bit(cif1PhaseOffset) }
func (c *CIF1Enables) SetPhaseOffset(v bool) { c.packed.SetBit(cif1PhaseOffset, v) }

func (c *CIF1Enables) Polarization() bool     { return c.packed.Bit(cif1Polarization) }
func (c *CIF1Enables) SetPolarization(v bool) { c.packed.SetBit(cif1Polarization, v) }

func (c *CIF1Enables) PointingVector() bool     { return c.packed.Bit(cif1PointingVector) }
func (c *CIF1Enables) SetPointingVector(v bool) { c.packed.SetBit(cif1PointingVector, v) }

func (c *CIF1Enables) PointingVectorStructure() bool {
	return c.packed.Bit(cif1PointingVectorStruct)
}
func (c *CIF1Enables) SetPointingVectorStructure(v bool) {
	c.packed.SetBit(cif1PointingVectorStruct, v)
}

func (c *CIF1Enables) SpatialScanType() bool     { return c.packed.Bit(cif1SpatialScanType) }
func (c *CIF1Enables) SetSpatialScanType(v bool) { c.packed.SetBit(cif1SpatialScanType, v) }

func (c *CIF1Enables) SpatialReferenceType() bool     { return c.packed.Bit(cif1SpatialRefType) }
func (c *CIF1Enables) SetSpatialReferenceType(v bool) { c.packed.SetBit(cif1SpatialRefType, v) }

func (c *CIF1Enables) BeamWidth() bool     { return c.packed.Bit(cif1BeamWidth) }
func (c *CIF1Enables) SetBeamWidth(v bool) { c.packed.SetBit(cif1BeamWidth, v) }

func (c *CIF1Enables) Range() bool     { return c.packed.Bit(cif1Range) }
func (c *CIF1Enables) SetRange(v bool) { c.packed.SetBit(cif1Range, v) }

func (c *CIF1Enables) EbNoBER() bool     { return c.packed.Bit(cif1EbNoBER) }
func (c *CIF1Enables) SetEbNoBER(v bool) { c.packed.SetBit(cif1EbNoBER, v) }

func (c *CIF1Enables) Threshold() bool     { return c.packed.Bit(cif1Threshold) }
func (c *CIF1Enables) SetThreshold(v bool) { c.packed.SetBit(cif1Threshold, v) }

func (c *CIF1Enables) CompressionPoint() bool     { return c.packed.Bit(cif1CompressionPoint) }
func (c *CIF1Enables) SetCompressionPoint(v bool) { c.packed.SetBit(cif1CompressionPoint, v) }

func (c *CIF1Enables) InterceptPoints() bool     { return c.packed.Bit(cif1InterceptPoints) }
func (c *CIF1Enables) SetInterceptPoints(v bool) { c.packed.SetBit(cif1InterceptPoints, v) }

func (c *CIF1Enables) SNRNoiseFigure() bool     { return c.packed.Bit(cif1SNRNoiseFigure) }
func (c *CIF1Enables) SetSNRNoiseFigure(v bool) { c.packed.SetBit(cif1SNRNoiseFigure, v) }

func (c *CIF1Enables) AuxFrequency() bool     { return c.packed.Bit(cif1AuxFrequency) }
func (c *CIF1Enables) SetAuxFrequency(v bool) { c.packed.SetBit(cif1AuxFrequency, v) }

func (c *CIF1Enables) AuxGain() bool     { return c.packed.Bit(cif1AuxGain) }
func (c *CIF1Enables) SetAuxGain(v bool) { c.packed.SetBit(cif1AuxGain, v) }

func (c *CIF1Enables) AuxBandwidth() bool     { return c.packed.Bit(cif1AuxBandwidth) }
func (c *CIF1Enables) SetAuxBandwidth(v bool) { c.packed.SetBit(cif1AuxBandwidth, v) }

func (c *CIF1Enables) ArrayOfCIFs() bool     { return c.packed.Bit(cif1ArrayOfCIFs) }
func (c *CIF1Enables) SetArrayOfCIFs(v bool) { c.packed.SetBit(cif1ArrayOfCIFs, v) }

func (c *CIF1Enables) Spectrum() bool     { return c.packed.Bit(cif1Spectrum) }
func (c *CIF1Enables) SetSpectrum(v bool) { c.packed.SetBit(cif1Spectrum, v) }

func (c *CIF1Enables) SectorStepScan() bool     { return c.packed.Bit(cif1SectorStepScan) }
func (c *CIF1Enables) SetSectorStepScan(v bool) { c.packed.SetBit(cif1SectorStepScan, v) }

func (c *CIF1Enables) IndexList() bool     { return c.packed.Bit(cif1IndexList) }
func (c *CIF1Enables) SetIndexList(v bool) { c.packed.SetBit(cif1IndexList, v) }

func (c *CIF1Enables) DiscreteIO32() bool     { return c.packed.Bit(cif1DiscreteIO32) }
func (c *CIF1Enables) SetDiscreteIO32(v bool) { c.packed.SetBit(cif1DiscreteIO32, v) }

func (c *CIF1Enables) DiscreteIO64() bool     { return c.packed.Bit(cif1DiscreteIO64) }
func (c *CIF1Enables) SetDiscreteIO64(v bool) { c.packed.SetBit(cif1DiscreteIO64, v) }

func (c *CIF1Enables) HealthStatus() bool     { return c.packed.Bit(cif1HealthStatus) }
func (c *CIF1Enables) SetHealthStatus(v bool) { c.packed.SetBit(cif1HealthStatus, v) }

func (c *CIF1Enables) V49SpecCompliance() bool     { return c.packed.Bit(cif1V49SpecCompliance) }
func (c *CIF1Enables) SetV49SpecCompliance(v bool) { c.packed.SetBit(cif1V49SpecCompliance, v) }

func (c *CIF1Enables) VersionBuildCode() bool     { return c.packed.Bit(cif1VersionBuildCode) }
func (c *CIF1Enables) SetVersionBuildCode(v bool) { c.packed.SetBit(cif1VersionBuildCode, v) }

func (c *CIF1Enables) BufferSize() bool     { return c.packed.Bit(cif1BufferSize) }
func (c *CIF1Enables) SetBufferSize(v bool) { c.packed.SetBit(cif1BufferSize, v) }
