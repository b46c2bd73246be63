package vrt

/*
cif2.go is the CIF2 enable-mask word, grounded on
original_source/include/vrtgen/packing/indicator_fields.hpp's
IndicatorField2 class. Bits 2 and 1 carry no defined indicator and are
left unused.
*/

const (
	cif2Bind                 = 31
	cif2CitedSID             = 30
	cif2SiblingSID           = 29
	cif2ParentSID            = 28
	cif2ChildSID             = 27
	cif2CitedMessageID       = 26
	cif2ControlleeID         = 25
	cif2ControlleeUUID       = 24
	cif2ControllerID         = 23
	cif2ControllerUUID       = 22
	cif2InformationSource    = 21
	cif2TrackID              = 20
	cif2CountryCode          = 19
	cif2Operator             = 18
	cif2PlatformClass        = 17
	cif2PlatformInstance     = 16
	cif2PlatformDisplay      = 15
	cif2EMSDeviceClass       = 14
	cif2EMSDeviceType        = 13
	cif2EMSDeviceInstance    = 12
	cif2ModulationClass      = 11
	cif2ModulationType       = 10
	cif2FunctionID           = 9
	cif2ModeID               = 8
	cif2EventID              = 7
	cif2FunctionPriorityID   = 6
	cif2CommPriorityID       = 5
	cif2RFFootprint          = 4
	cif2RFFootprintRange     = 3
)

// CIF2Enables is the Context Information Field 2 enable-mask word (VITA
// 49.2 §7.1.5.4 / Table 9.11).
type CIF2Enables struct {
	packed Packed32
}

func (c *CIF2Enables) Word() uint32     { return c.packed.Word() }
func (c *CIF2Enables) SetWord(w uint32) { c.packed.SetWord(w) }
func (c *CIF2Enables) Any() bool        { return c.packed.Any() }
func (c *CIF2Enables) Size() int        { return c.packed.Size() }

func (c *CIF2Enables) PackInto(buf []byte)   { c.packed.PackInto(buf) }
func (c *CIF2Enables) UnpackFrom(buf []byte) { c.packed.UnpackFrom(buf) }

func (c *CIF2Enables) Bind() bool     { return c.packed.Bit(cif2Bind) }
func (c *CIF2Enables) SetBind(v bool) { c.packed.SetBit(cif2Bind, v) }

func (c *CIF2Enables) CitedSID() bool     { return c.packed.Bit(cif2CitedSID) }
func (c *CIF2Enables) SetCitedSID(v bool) { c.packed.SetBit(cif2CitedSID, v) }

func (c *CIF2Enables) SiblingSID() bool     { return c.packed.Bit(cif2SiblingSID) }
func (c *CIF2Enables) SetSiblingSID(v bool) { c.packed.SetBit(cif2SiblingSID, v) }

func (c *CIF2Enables) ParentSID() bool     { return c.packed.Bit(cif2ParentSID) }
func (c *CIF2Enables) SetParentSID(v bool) { c.packed.SetBit(cif2ParentSID, v) }

func (c *CIF2Enables) ChildSID() bool     { return c.packed.Bit(cif2ChildSID) }
func (c *CIF2Enables) SetChildSID(v bool) { c.packed.SetBit(cif2ChildSID, v) }

func (c *CIF2Enables) CitedMessageID() bool     { return c.packed.Bit(cif2CitedMessageID) }
func (c *CIF2Enables) SetCitedMessageID(v bool) { c.packed.SetBit(cif2CitedMessageID, v) }

func (c *CIF2Enables) ControlleeID() bool     { return c.packed.Bit(cif2ControlleeID) }
func (c *CIF2Enables) SetControlleeID(v bool) { c.packed.SetBit(cif2ControlleeID, v) }

func (c *CIF2Enables) ControlleeUUID() bool     { return c.packed.Bit(cif2ControlleeUUID) }
func (c *CIF2Enables) SetControlleeUUID(v bool) { c.packed.SetBit(cif2ControlleeUUID, v) }

func (c *CIF2Enables) ControllerID() bool     { return c.packed.Bit(cif2ControllerID) }
func (c *CIF2Enables) SetControllerID(v bool) { c.packed.SetBit(cif2ControllerID, v) }

func (c *CIF2Enables) ControllerUUID() bool     { return c.packed.Bit(cif2ControllerUUID) }
func (c *CIF2Enables) SetControllerUUID(v bool) { c.packed.SetBit(cif2ControllerUUID, v) }

func (c *CIF2Enables) InformationSource() bool     { return c.packed.Bit(cif2InformationSource) }
func (c *CIF2Enables) SetInformationSource(v bool) { c.packed.SetBit(cif2InformationSource, v) }

func (c *CIF2Enables) TrackID() bool     { return c.packed.Bit(cif2TrackID) }
func (c *CIF2Enables) SetTrackID(v bool) { c.packed.SetBit(cif2TrackID, v) }

func (c *CIF2Enables) CountryCode() bool     { return c.packed.Bit(cif2CountryCode) }
func (c *CIF2Enables) SetCountryCode(v bool) { c.packed.SetBit(cif2CountryCode, v) }

func (c *CIF2Enables) Operator() bool     { return c.packed.Bit(cif2Operator) }
func (c *CIF2Enables) SetOperator(v bool) { c.packed.SetBit(cif2Operator, v) }

func (c *CIF2Enables) PlatformClass() bool     { return c.packed.Bit(cif2PlatformClass) }
func (c *CIF2Enables) SetPlatformClass(v bool) { c.packed.SetBit(cif2PlatformClass, v) }

func (c *CIF2Enables) PlatformInstance() bool     { return c.packed.Bit(cif2PlatformInstance) }
func (c *CIF2Enables) SetPlatformInstance(v bool) { c.packed.SetBit(cif2PlatformInstance, v) }

func (c *CIF2Enables) PlatformDisplay() bool     { return c.packed.Bit(cif2PlatformDisplay) }
func (c *CIF2Enables) SetPlatformDisplay(v bool) { c.packed.SetBit(cif2PlatformDisplay, v) }

func (c *CIF2Enables) EMSDeviceClass() bool     { return c.packed.Bit(cif2EMSDeviceClass) }
func (c *CIF2Enables) SetEMSDeviceClass(v bool) { c.packed.SetBit(cif2EMSDeviceClass, v) }

func (c *CIF2Enables) EMSDeviceType() bool     { return c.packed.Bit(cif2EMSDeviceType) }
func (c *CIF2Enables) SetEMSDeviceType(v bool) { c.packed.SetBit(cif2EMSDeviceType, v) }

func (c *CIF2Enables) EMSDeviceInstance() bool     { return c.packed.Bit(cif2EMSDeviceInstance) }
func (c *CIF2Enables) SetEMSDeviceInstance(v bool) { c.packed.SetBit(cif2EMSDeviceInstance, v) }

func (c *CIF2Enables) ModulationClass() bool     { return c.packed.Bit(cif2ModulationClass) }
func (c *CIF2Enables) SetModulationClass(v bool) { c.packed.SetBit(cif2ModulationClass, v) }

func (c *CIF2Enables) ModulationType() bool     { return c.packed.Bit(cif2ModulationType) }
func (c *CIF2Enables) SetModulationType(v bool) { c.packed.SetBit(cif2ModulationType, v) }

func (c *CIF2Enables) FunctionID() bool     { return c.packed.Bit(cif2FunctionID) }
func (c *CIF2Enables) SetFunctionID(v bool) { c.packed.SetBit(cif2FunctionID, v) }

func (c *CIF2Enables) ModeID() bool     { return c.packed.Bit(cif2ModeID) }
func (c *CIF2Enables) SetModeID(v bool) { c.packed.SetBit(cif2ModeID, v) }

func (c *CIF2Enables) EventID() bool     { return c.packed.Bit(cif2EventID) }
func (c *CIF2Enables) SetEventID(v bool) { c.packed.SetBit(cif2EventID, v) }

func (c *CIF2Enables) FunctionPriorityID() bool     { return c.packed.Bit(cif2FunctionPriorityID) }
func (c *CIF2Enables) SetFunctionPriorityID(v bool) { c.packed.SetBit(cif2FunctionPriorityID, v) }

func (c *CIF2Enables) CommunicationPriorityID() bool { return c.packed.Bit(cif2CommPriorityID) }
func (c *CIF2Enables) SetCommunicationPriorityID(v bool) {
	c.packed.SetBit(cif2CommPriorityID, v)
}

func (c *CIF2Enables) RFFootprint() bool     { return c.packed.Bit(cif2RFFootprint) }
func (c *CIF2Enables) SetRFFootprint(v bool) { c.packed.SetBit(cif2RFFootprint, v) }

func (c *CIF2Enables) RFFootprintRange() bool     { return c.packed.Bit(cif2RFFootprintRange) }
func (c *CIF2Enables) SetRFFootprintRange(v bool) { c.packed.SetBit(cif2RFFootprintRange, v) }
