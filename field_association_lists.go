package vrt

/*
field_association_lists.go is the Context Association Lists field
(VITA 49.2 §9.13.2), grounded on cif0.hpp's ContextAssociationLists
class: two size/control words followed by five variable-length uint32
lists (Source, System, Vector-Component, Async-Channel, and optionally
Async-Channel-Tag, the last only present when its enable bit is set and
always sized to match the Async-Channel list: Pack writes one tag per
async-channel ID, zero-filling missing tags and dropping extra ones).
*/

const (
	calSourceListSize            = 24
	calSystemListSize            = 8
	calVectorComponentListSize   = 31
	calAsyncChannelTagListEnable = 15
	calAsyncChannelListSize      = 14
)

// ContextAssociationLists is the Context Association Lists context
// field.
type ContextAssociationLists struct {
	AsyncChannelTagListEnable bool
	SourceList                []uint32
	SystemList                []uint32
	VectorComponentList       []uint32
	AsyncChannelList          []uint32
	AsyncChannelTagList       []uint32
}

// Size returns the on-wire size in bytes given the current list
// contents. The async-channel-tag list only contributes bytes when its
// enable flag is set, and then one word per async-channel ID.
func (c *ContextAssociationLists) Size() int {
	n := 8 // two control words
	n += len(c.SourceList) * 4
	n += len(c.SystemList) * 4
	n += len(c.VectorComponentList) * 4
	n += len(c.AsyncChannelList) * 4
	if c.AsyncChannelTagListEnable {
		n += len(c.AsyncChannelList) * 4
	}
	return n
}

func (c *ContextAssociationLists) PackInto(buf []byte) {
	var word1, word2 Packed32
	word1.Set(calSourceListSize, 9, uint32(len(c.SourceList)))
	word1.Set(calSystemListSize, 9, uint32(len(c.SystemList)))
	word2.Set(calVectorComponentListSize, 16, uint32(len(c.VectorComponentList)))
	word2.SetBit(calAsyncChannelTagListEnable, c.AsyncChannelTagListEnable)
	word2.Set(calAsyncChannelListSize, 15, uint32(len(c.AsyncChannelList)))
	word1.PackInto(buf[0:4])
	word2.PackInto(buf[4:8])

	off := 8
	for _, v := range c.SourceList {
		putBE32(buf[off:off+4], v)
		off += 4
	}
	for _, v := range c.SystemList {
		putBE32(buf[off:off+4], v)
		off += 4
	}
	for _, v := range c.VectorComponentList {
		putBE32(buf[off:off+4], v)
		off += 4
	}
	for _, v := range c.AsyncChannelList {
		putBE32(buf[off:off+4], v)
		off += 4
	}
	if c.AsyncChannelTagListEnable {
		for i := range c.AsyncChannelList {
			var v uint32
			if i < len(c.AsyncChannelTagList) {
				v = c.AsyncChannelTagList[i]
			}
			putBE32(buf[off:off+4], v)
			off += 4
		}
	}
}

// PeekSize reads the two leading control words out of buf without
// consuming them and returns the true on-wire length they declare, so
// a caller can size a slice before calling UnpackFrom.
func (c *ContextAssociationLists) PeekSize(buf []byte) (int, error) {
	if len(buf) < 8 {
		return 0, &TruncatedError{Field: "ContextAssociationLists", Need: 8, Have: len(buf)}
	}
	var word1, word2 Packed32
	word1.UnpackFrom(buf[0:4])
	word2.UnpackFrom(buf[4:8])

	sourceN := int(word1.Get(calSourceListSize, 9))
	systemN := int(word1.Get(calSystemListSize, 9))
	vectorN := int(word2.Get(calVectorComponentListSize, 16))
	tagEnable := word2.Bit(calAsyncChannelTagListEnable)
	asyncN := int(word2.Get(calAsyncChannelListSize, 15))

	n := 8 + (sourceN+systemN+vectorN+asyncN)*4
	if tagEnable {
		n += asyncN * 4
	}
	return n, nil
}

func (c *ContextAssociationLists) UnpackFrom(buf []byte) error {
	var word1, word2 Packed32
	word1.UnpackFrom(buf[0:4])
	word2.UnpackFrom(buf[4:8])

	sourceN := int(word1.Get(calSourceListSize, 9))
	systemN := int(word1.Get(calSystemListSize, 9))
	vectorN := int(word2.Get(calVectorComponentListSize, 16))
	c.AsyncChannelTagListEnable = word2.Bit(calAsyncChannelTagListEnable)
	asyncN := int(word2.Get(calAsyncChannelListSize, 15))

	off := 8
	need := off + (sourceN+systemN+vectorN+asyncN)*4
	if c.AsyncChannelTagListEnable {
		need += asyncN * 4
	}
	if need > len(buf) {
		return &TruncatedError{Field: "ContextAssociationLists", Need: need, Have: len(buf)}
	}

	c.SourceList = readUint32List(buf, &off, sourceN)
	c.SystemList = readUint32List(buf, &off, systemN)
	c.VectorComponentList = readUint32List(buf, &off, vectorN)
	c.AsyncChannelList = readUint32List(buf, &off, asyncN)
	if c.AsyncChannelTagListEnable {
		c.AsyncChannelTagList = readUint32List(buf, &off, asyncN)
	} else {
		c.AsyncChannelTagList = nil
	}
	return nil
}

func readUint32List(buf []byte, off *int, n int) []uint32 {
	if n == 0 {
		return nil
	}
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = fromBE32(buf[*off : *off+4])
		*off += 4
	}
	return out
}
