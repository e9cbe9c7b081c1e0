package wire

import (
	"fmt"
)

// maxSchemaWidth is the widest value a schema can carry.
const maxSchemaWidth = 64

// Part is one contiguous bit range of a field: a mask within the unit at
// Index (relative to the message's first unit).
type Part struct {
	Index int
	Mask  uint32
}

// Schema locates one field in both unit kinds. Parts are ordered most
// significant first, so a field whose low bits are stored before its high
// bits (the 14-bit MIDI 1.0 values) is declared with the later unit's part
// first.
type Schema struct {
	words []Part
	bytes []Part
}

// Ump declares a word-form schema with one mask per word index. Zero masks
// are skipped. Panics on a non-contiguous mask or a total width over 64 bits.
func Ump(masks ...uint32) Schema {
	return Schema{words: partsFromMasks(masks, 0xFFFF_FFFF)}
}

// WordParts declares a word-form schema from explicit ordered parts.
func WordParts(parts ...Part) Schema {
	return Schema{words: checkParts(parts, 0xFFFF_FFFF)}
}

// ByteParts declares a byte-only schema from explicit ordered parts.
func ByteParts(parts ...Part) Schema {
	return Schema{bytes: checkParts(parts, 0xFF)}
}

// WithBytes adds the byte-form location of the field, one mask per byte
// index. The byte form must carry the same number of bits as the word form.
func (s Schema) WithBytes(masks ...uint32) Schema {
	return s.WithByteParts(partsFromMasks(masks, 0xFF)...)
}

// WithByteParts adds the byte-form location from explicit ordered parts.
func (s Schema) WithByteParts(parts ...Part) Schema {
	parts = checkParts(parts, 0xFF)
	if len(s.words) > 0 && width(parts) != width(s.words) {
		panic(fmt.Sprintf("wire: byte schema width %d differs from word schema width %d", width(parts), width(s.words)))
	}
	s.bytes = parts
	return s
}

func partsFromMasks(masks []uint32, limit uint32) []Part {
	var parts []Part
	for i, m := range masks {
		if m != 0 {
			parts = append(parts, Part{Index: i, Mask: m})
		}
	}
	return checkParts(parts, limit)
}

func checkParts(parts []Part, limit uint32) []Part {
	for _, p := range parts {
		if !contiguous(p.Mask) || p.Mask&^limit != 0 {
			panic(fmt.Sprintf("wire: invalid mask %#x", p.Mask))
		}
		if p.Index < 0 {
			panic(fmt.Sprintf("wire: negative unit index %d", p.Index))
		}
	}
	if width(parts) > maxSchemaWidth {
		panic(fmt.Sprintf("wire: schema width %d exceeds %d bits", width(parts), maxSchemaWidth))
	}
	return append([]Part(nil), parts...)
}

func width(parts []Part) int {
	n := 0
	for _, p := range parts {
		n += MaskWidth(p.Mask)
	}
	return n
}

// Parts returns the ordered parts for kind.
func (s Schema) Parts(k Kind) []Part {
	if k == KindByte {
		return s.bytes
	}
	return s.words
}

// Supports reports whether the field exists in kind.
func (s Schema) Supports(k Kind) bool {
	return len(s.Parts(k)) > 0
}

// Width returns the field width in bits for kind.
func (s Schema) Width(k Kind) int {
	return width(s.Parts(k))
}

// Extent returns the number of units, counted from the message start, the
// field needs in kind.
func (s Schema) Extent(k Kind) int {
	n := 0
	for _, p := range s.Parts(k) {
		if p.Index+1 > n {
			n = p.Index + 1
		}
	}
	return n
}

// Read extracts the raw field value from v, with every unit index shifted by
// offset. A schema without parts for v's kind reads as zero.
func (s Schema) Read(v View, offset int) (uint64, error) {
	parts := s.Parts(v.Kind())
	if need := s.Extent(v.Kind()) + offset; need > v.Len() {
		return 0, &SizeError{Need: need, Have: v.Len()}
	}
	var raw uint64
	for _, p := range parts {
		raw = raw<<MaskWidth(p.Mask) | uint64(Extract(v.Unit(p.Index+offset), p.Mask))
	}
	return raw, nil
}

// Write stores raw into the field's bits, with every unit index shifted by
// offset. Bounds are checked before any unit is touched. raw must fit the
// schema width.
func (s Schema) Write(v MutableView, offset int, raw uint64) error {
	parts := s.Parts(v.Kind())
	if need := s.Extent(v.Kind()) + offset; need > v.Len() {
		return &SizeError{Need: need, Have: v.Len()}
	}
	if w := width(parts); w < maxSchemaWidth && raw>>w != 0 {
		return fmt.Errorf("%w: %#x does not fit in %d bits", ErrInvalidFieldValue, raw, w)
	}
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		idx := p.Index + offset
		v.SetUnit(idx, Insert(v.Unit(idx), p.Mask, uint32(raw)))
		raw >>= MaskWidth(p.Mask)
	}
	return nil
}

// Overlaps reports whether s and other share any bit in kind.
func (s Schema) Overlaps(other Schema, k Kind) bool {
	for _, a := range s.Parts(k) {
		for _, b := range other.Parts(k) {
			if a.Index == b.Index && a.Mask&b.Mask != 0 {
				return true
			}
		}
	}
	return false
}
