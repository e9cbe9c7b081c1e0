package wire

import "math/bits"

// MaskShift returns the position of the lowest set bit of mask.
func MaskShift(mask uint32) int {
	return bits.TrailingZeros32(mask)
}

// MaskWidth returns the number of set bits in mask.
func MaskWidth(mask uint32) int {
	return bits.OnesCount32(mask)
}

// contiguous reports whether mask is a single run of set bits.
func contiguous(mask uint32) bool {
	if mask == 0 {
		return false
	}
	m := mask >> MaskShift(mask)
	return m&(m+1) == 0
}

// Extract returns the bits of u selected by mask, shifted down to bit 0.
func Extract(u, mask uint32) uint32 {
	return (u & mask) >> MaskShift(mask)
}

// Insert replaces the bits of u selected by mask with v. Bits of v that do
// not fit the mask are dropped.
func Insert(u, mask, v uint32) uint32 {
	return u&^mask | (v<<MaskShift(mask))&mask
}

// Nibble returns nibble n of a word, 0 being the most significant.
func Nibble(word uint32, n int) uint8 {
	return uint8(word >> (28 - 4*n) & 0xF)
}

// SetNibble returns word with nibble n replaced by v.
func SetNibble(word uint32, n int, v uint8) uint32 {
	shift := 28 - 4*n
	return word&^(0xF<<shift) | uint32(v&0xF)<<shift
}

// Octet returns byte n of a word, 0 being the most significant.
func Octet(word uint32, n int) uint8 {
	return uint8(word >> (24 - 8*n))
}

// SetOctet returns word with byte n replaced by v.
func SetOctet(word uint32, n int, v uint8) uint32 {
	shift := 24 - 8*n
	return word&^(0xFF<<shift) | uint32(v)<<shift
}
