package vrt

/*
field_belief_probability.go is the Belief and Probability fields (VITA
49.2 §9.12): each a 32-bit word with only the
low byte(s) populated. Belief carries an 8-bit percentage at bits 7..0.
Probability carries an 8-bit function selector at bits 15..8 (0 =
uniform, 1 = normal, 2..255 user-defined) plus an 8-bit percent at bits
7..0, where a percent value of N denotes N/255 of full scale.
*/

// Belief is the CIF7 Belief attachment field: an 8-bit percentage.
type Belief struct {
	Percent uint8
}

func (b *Belief) Size() int { return 4 }

func (b *Belief) PackInto(buf []byte)   { putBE32(buf, uint32(b.Percent)) }
func (b *Belief) UnpackFrom(buf []byte) { b.Percent = uint8(fromBE32(buf)) }

// Probability is the CIF7 Probability attachment field: a function
// selector plus an 8-bit percent of full scale (N/255).
type Probability struct {
	Function uint8
	Percent  uint8
}

func (p *Probability) Size() int { return 4 }

func (p *Probability) PackInto(buf []byte) {
	putBE32(buf, uint32(p.Function)<<8|uint32(p.Percent))
}

func (p *Probability) UnpackFrom(buf []byte) {
	v := fromBE32(buf)
	p.Function = uint8(v >> 8)
	p.Percent = uint8(v)
}
