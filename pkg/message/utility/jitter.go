package utility

import (
	"fmt"

	"github.com/ump-protocol/ump-go/pkg/wire"
)

// JitterReductionKind selects which jitter-reduction message a prefix word
// holds.
type JitterReductionKind uint8

const (
	JitterReductionKindClock     JitterReductionKind = StatusJitterReductionClock
	JitterReductionKindTimestamp JitterReductionKind = StatusJitterReductionTimestamp
)

// String returns the kind name.
func (k JitterReductionKind) String() string {
	switch k {
	case JitterReductionKindClock:
		return "clock"
	case JitterReductionKindTimestamp:
		return "timestamp"
	default:
		return "UNKNOWN"
	}
}

// JitterReduction is the value carried by a prefix word.
type JitterReduction struct {
	Kind JitterReductionKind
	Time uint16
}

// Clock returns a jitter-reduction clock prefix value.
func Clock(t uint16) *JitterReduction {
	return &JitterReduction{Kind: JitterReductionKindClock, Time: t}
}

// Timestamp returns a jitter-reduction timestamp prefix value.
func Timestamp(t uint16) *JitterReduction {
	return &JitterReduction{Kind: JitterReductionKindTimestamp, Time: t}
}

func (j JitterReduction) String() string {
	return fmt.Sprintf("%s(%d)", j.Kind, j.Time)
}

// The prefix word is read as its low 24 bits: status in bits 23-20, time in
// bits 15-0. A NoOp word (status 0) is a present but empty prefix.
var jitterReductionCodec = wire.CodecFunc[JitterReduction]{
	DecodeFunc: func(raw uint64) (JitterReduction, error) {
		switch kind := JitterReductionKind(raw >> 20 & 0xF); kind {
		case JitterReductionKindClock, JitterReductionKindTimestamp:
			return JitterReduction{Kind: kind, Time: uint16(raw)}, nil
		default:
			return JitterReduction{}, fmt.Errorf("%w: utility status %#x cannot prefix a message", wire.ErrInvalidFieldValue, uint8(kind))
		}
	},
	EncodeFunc: func(j JitterReduction) (uint64, error) {
		switch j.Kind {
		case JitterReductionKindClock, JitterReductionKindTimestamp:
			return uint64(j.Kind)<<20 | uint64(j.Time), nil
		default:
			return 0, fmt.Errorf("%w: unknown jitter reduction kind %d", wire.ErrInvalidFieldValue, j.Kind)
		}
	},
}

// JitterReductionField is the prefix field shared by every message that
// accepts a jitter-reduction prefix.
var JitterReductionField = wire.PrefixField[JitterReduction]{
	Name:   "jitter reduction",
	Schema: wire.Ump(0x00FF_FFFF),
	Codec:  wire.OptionalMasked[JitterReduction](0xF0_0000, 0, jitterReductionCodec),
}

// IsPrefixWord reports whether word can stand in the prefix position: a
// NoOp, clock or timestamp utility word.
func IsPrefixWord(word uint32) bool {
	if wire.PacketType(word) != PacketType {
		return false
	}
	switch wire.Extract(word, statusMask) {
	case StatusNoOp, StatusJitterReductionClock, StatusJitterReductionTimestamp:
		return true
	default:
		return false
	}
}
