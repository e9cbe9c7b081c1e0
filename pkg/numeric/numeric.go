// Package numeric provides the bounded unsigned integer types used by UMP
// message fields.
//
// Each type is backed by the smallest Go integer that holds it. The New*
// constructors truncate to the type's width, the Try* constructors reject
// values that do not fit.
package numeric

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by the Try* constructors.
var ErrOutOfRange = errors.New("numeric: value out of range")

// U4 is a 4-bit unsigned integer (group, channel, nibble-sized codes).
type U4 uint8

// U7 is a 7-bit unsigned integer (MIDI 1.0 data bytes).
type U7 uint8

// U14 is a 14-bit unsigned integer (pitch bend, song position, bank).
type U14 uint16

// U20 is a 20-bit unsigned integer (delta clockstamp ticks).
type U20 uint32

const (
	MaxU4  U4  = 0x0F
	MaxU7  U7  = 0x7F
	MaxU14 U14 = 0x3FFF
	MaxU20 U20 = 0xF_FFFF
)

// NewU4 truncates v to 4 bits.
func NewU4(v uint8) U4 { return U4(v) & MaxU4 }

// NewU7 truncates v to 7 bits.
func NewU7(v uint8) U7 { return U7(v) & MaxU7 }

// NewU14 truncates v to 14 bits.
func NewU14(v uint16) U14 { return U14(v) & MaxU14 }

// NewU20 truncates v to 20 bits.
func NewU20(v uint32) U20 { return U20(v) & MaxU20 }

// TryU4 returns v as a U4, or ErrOutOfRange if it does not fit.
func TryU4(v uint8) (U4, error) {
	if v > uint8(MaxU4) {
		return 0, rangeError("u4", uint64(v))
	}
	return U4(v), nil
}

// TryU7 returns v as a U7, or ErrOutOfRange if it does not fit.
func TryU7(v uint8) (U7, error) {
	if v > uint8(MaxU7) {
		return 0, rangeError("u7", uint64(v))
	}
	return U7(v), nil
}

// TryU14 returns v as a U14, or ErrOutOfRange if it does not fit.
func TryU14(v uint16) (U14, error) {
	if v > uint16(MaxU14) {
		return 0, rangeError("u14", uint64(v))
	}
	return U14(v), nil
}

// TryU20 returns v as a U20, or ErrOutOfRange if it does not fit.
func TryU20(v uint32) (U20, error) {
	if v > uint32(MaxU20) {
		return 0, rangeError("u20", uint64(v))
	}
	return U20(v), nil
}

func rangeError(kind string, v uint64) error {
	return fmt.Errorf("%w: %d does not fit in %s", ErrOutOfRange, v, kind)
}

// U14FromBytes joins a 7-bit LSB and MSB pair the way MIDI 1.0 transmits them.
func U14FromBytes(lsb, msb U7) U14 {
	return U14(msb)<<7 | U14(lsb)
}

// Bytes splits v into its 7-bit LSB and MSB.
func (v U14) Bytes() (lsb, msb U7) {
	return U7(v & 0x7F), U7(v >> 7 & 0x7F)
}
