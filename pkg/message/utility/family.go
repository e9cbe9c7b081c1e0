// Package utility implements the groupless utility messages (UMP packet type
// 0x0) and the jitter-reduction prefix that other families accept in front
// of their messages.
package utility

import (
	"github.com/ump-protocol/ump-go/pkg/wire"
)

//go:generate go run ../../../cmd/ump-msggen -input messages.yaml -output messages_gen.go

// Family is the dispatch name used in errors and logs.
const Family = "utility"

// PacketType is the UMP packet type of every utility message.
const PacketType = 0x0

// Status codes (word 0 bits 23-20).
const (
	StatusNoOp                     = 0x0
	StatusJitterReductionClock     = 0x1
	StatusJitterReductionTimestamp = 0x2
	StatusDeltaClockstampTPQ       = 0x3
	StatusDeltaClockstamp          = 0x4
)

const statusMask = 0x00F0_0000

var packetTypeDiscriminant = wire.Discriminant{
	Name:   "packet type",
	Schema: wire.Ump(0xF000_0000),
	Value:  PacketType,
}

// Message is one of NoOp, JitterReductionClock, JitterReductionTimestamp,
// DeltaClockstampTPQ or DeltaClockstamp.
type Message interface {
	wire.Decoded
	isUtility()
}

func (NoOp) isUtility()                     {}
func (JitterReductionClock) isUtility()     {}
func (JitterReductionTimestamp) isUtility() {}
func (DeltaClockstampTPQ) isUtility()       {}
func (DeltaClockstamp) isUtility()          {}

// Parse classifies v by status and parses it as the matching message.
func Parse(v wire.View) (Message, error) {
	if v.Kind() != wire.KindWord {
		return nil, &wire.VariantError{Family: Family, Level: 1, Name: "unit kind", Code: uint64(v.Kind())}
	}
	if v.Len() == 0 {
		return nil, &wire.SizeError{Shape: Family, Need: 1, Have: 0}
	}
	word := v.Unit(0)
	if pt := wire.PacketType(word); pt != PacketType {
		return nil, &wire.VariantError{Family: Family, Level: 1, Name: "packet type", Code: uint64(pt)}
	}
	switch status := wire.Extract(word, statusMask); status {
	case StatusNoOp:
		return parseAs(ParseNoOp, v)
	case StatusJitterReductionClock:
		return parseAs(ParseJitterReductionClock, v)
	case StatusJitterReductionTimestamp:
		return parseAs(ParseJitterReductionTimestamp, v)
	case StatusDeltaClockstampTPQ:
		return parseAs(ParseDeltaClockstampTPQ, v)
	case StatusDeltaClockstamp:
		return parseAs(ParseDeltaClockstamp, v)
	default:
		return nil, &wire.VariantError{Family: Family, Level: 2, Name: "status", Code: uint64(status)}
	}
}

func parseAs[T Message](parse func(wire.View) (T, error), v wire.View) (Message, error) {
	m, err := parse(v)
	if err != nil {
		return nil, &wire.DispatchError{Family: Family, Level: 2, Err: err}
	}
	return m, nil
}

// Shapes returns every utility shape, in status order.
func Shapes() []*wire.Shape {
	return append([]*wire.Shape(nil), shapes...)
}
