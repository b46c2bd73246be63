package vrt

/*
cif7.go is the CIF7 attribute-association enable-mask word, grounded on
original_source/include/vrtgen/packing/indicator_fields.hpp's
IndicatorField7 class. Unlike CIF0-3, which enable distinct context
fields, CIF7's bits each select an attribute (current value, mean,
median, standard deviation, extrema, precision, accuracy, first/second/
third derivative, probability, belief) that gets attached to every field
named by the CIF0-3 words also present in the same packet (VITA 49.2
§9.12). No bit gaps; bits 31 down to 19 are all defined.
*/

const (
	cif7CurrentValue      = 31
	cif7MeanValue         = 30
	cif7MedianValue       = 29
	cif7StandardDeviation = 28
	cif7MaxValue          = 27
	cif7MinValue          = 26
	cif7Precision         = 25
	cif7Accuracy          = 24
	cif7FirstDerivative   = 23
	cif7SecondDerivative  = 22
	cif7ThirdDerivative   = 21
	cif7Probability       = 20
	cif7Belief            = 19
)

// CIF7Enables is the Context Information Field 7 attribute-association
// enable-mask word (VITA 49.2 §9.12).
type CIF7Enables struct {
	packed Packed32
}

func (c *CIF7Enables) Word() uint32     { return c.packed.Word() }
func (c *CIF7Enables) SetWord(w uint32) { c.packed.SetWord(w) }
func (c *CIF7Enables) Any() bool        { return c.packed.Any() }
func (c *CIF7Enables) Size() int        { return c.packed.Size() }

func (c *CIF7Enables) PackInto(buf []byte)   { c.packed.PackInto(buf) }
func (c *CIF7Enables) UnpackFrom(buf []byte) { c.packed.UnpackFrom(buf) }

func (c *CIF7Enables) CurrentValue() bool     { return c.packed.Bit(cif7CurrentValue) }
func (c *CIF7Enables) SetCurrentValue(v bool) { c.packed.SetBit(cif7CurrentValue, v) }

func (c *CIF7Enables) MeanValue() bool     { return c.packed.Bit(cif7MeanValue) }
func (c *CIF7Enables) SetMeanValue(v bool) { c.packed.SetBit(cif7MeanValue, v) }

func (c *CIF7Enables) MedianValue() bool     { return c.packed.Bit(cif7MedianValue) }
func (c *CIF7Enables) SetMedianValue(v bool) { c.packed.SetBit(cif7MedianValue, v) }

func (c *CIF7Enables) StandardDeviation() bool     { return c.packed.Bit(cif7StandardDeviation) }
func (c *CIF7Enables) SetStandardDeviation(v bool) { c.packed.SetBit(cif7StandardDeviation, v) }

func (c *CIF7Enables) MaxValue() bool     { return c.packed.Bit(cif7MaxValue) }
func (c *CIF7Enables) SetMaxValue(v bool) { c.packed.SetBit(cif7MaxValue, v) }

func (c *CIF7Enables) MinValue() bool     { return c.packed.Bit(cif7MinValue) }
func (c *CIF7Enables) SetMinValue(v bool) { c.packed.SetBit(cif7MinValue, v) }

func (c *CIF7Enables) Precision() bool     { return c.packed.Bit(cif7Precision) }
func (c *CIF7Enables) SetPrecision(v bool) { c.packed.SetBit(cif7Precision, v) }

func (c *CIF7Enables) Accuracy() bool     { return c.packed.Bit(cif7Accuracy) }
func (c *CIF7Enables) SetAccuracy(v bool) { c.packed.SetBit(cif7Accuracy, v) }

func (c *CIF7Enables) FirstDerivative() bool     { return c.packed.Bit(cif7FirstDerivative) }
func (c *CIF7Enables) SetFirstDerivative(v bool) { c.packed.SetBit(cif7FirstDerivative, v) }

func (c *CIF7Enables) SecondDerivative() bool     { return c.packed.Bit(cif7SecondDerivative) }
func (c *CIF7Enables) SetSecondDerivative(v bool) { c.packed.SetBit(cif7SecondDerivative, v) }

func (c *CIF7Enables) ThirdDerivative() bool     { return c.packed.Bit(cif7ThirdDerivative) }
func (c *CIF7Enables) SetThirdDerivative(v bool) { c.packed.SetBit(cif7ThirdDerivative, v) }

func (c *CIF7Enables) Probability() bool     { return c.packed.Bit(cif7Probability) }
func (c *CIF7Enables) SetProbability(v bool) { c.packed.SetBit(cif7Probability, v) }

func (c *CIF7Enables) Belief() bool     { return c.packed.Bit(cif7Belief) }
func (c *CIF7Enables) SetBelief(v bool) { c.packed.SetBit(cif7Belief, v) }
