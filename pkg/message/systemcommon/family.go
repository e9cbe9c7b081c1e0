// Package systemcommon implements the system common and system real time
// messages: UMP packet type 0x1 in word form, status bytes 0xF1 to 0xFF in
// byte form.
package systemcommon

import (
	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

//go:generate go run ../../../cmd/ump-msggen -input messages.yaml -output messages_gen.go

// Family is the dispatch name used in errors and logs.
const Family = "system common"

// PacketType is the UMP packet type of every system message.
const PacketType = 0x1

// Status bytes.
const (
	StatusTimeCode            = 0xF1
	StatusSongPositionPointer = 0xF2
	StatusSongSelect          = 0xF3
	StatusTuneRequest         = 0xF6
	StatusTimingClock         = 0xF8
	StatusStart               = 0xFA
	StatusContinue            = 0xFB
	StatusStop                = 0xFC
	StatusActiveSensing       = 0xFE
	StatusReset               = 0xFF
)

var packetTypeDiscriminant = wire.Discriminant{
	Name:   "packet type",
	Schema: wire.Ump(0xF000_0000),
	Value:  PacketType,
}

var groupField = wire.Field[numeric.U4]{
	Name:   "group",
	Schema: wire.Ump(0x0F00_0000),
	Codec:  wire.Uint[numeric.U4](),
}

// Message is any system common or real time message.
type Message interface {
	wire.Decoded
	// Group reads as zero in byte form.
	Group() numeric.U4
	isSystemCommon()
}

func (TimeCode) isSystemCommon()            {}
func (SongPositionPointer) isSystemCommon() {}
func (SongSelect) isSystemCommon()          {}
func (TuneRequest) isSystemCommon()         {}
func (TimingClock) isSystemCommon()         {}
func (Start) isSystemCommon()               {}
func (Continue) isSystemCommon()            {}
func (Stop) isSystemCommon()                {}
func (ActiveSensing) isSystemCommon()       {}
func (Reset) isSystemCommon()               {}

// Parse classifies v by packet type (word form) or status nibble (byte form),
// then by status byte.
func Parse(v wire.View) (Message, error) {
	unit, _, err := wire.FirstUnit(v)
	if err != nil {
		return nil, err
	}
	var status uint32
	if v.Kind() == wire.KindWord {
		if pt := wire.PacketType(unit); pt != PacketType {
			return nil, &wire.VariantError{Family: Family, Level: 1, Name: "packet type", Code: uint64(pt)}
		}
		status = wire.Extract(unit, 0x00FF_0000)
	} else {
		if nibble := unit >> 4; nibble != 0xF {
			return nil, &wire.VariantError{Family: Family, Level: 1, Name: "status nibble", Code: uint64(nibble)}
		}
		status = unit
	}
	switch status {
	case StatusTimeCode:
		return parseAs(ParseTimeCode, v)
	case StatusSongPositionPointer:
		return parseAs(ParseSongPositionPointer, v)
	case StatusSongSelect:
		return parseAs(ParseSongSelect, v)
	case StatusTuneRequest:
		return parseAs(ParseTuneRequest, v)
	case StatusTimingClock:
		return parseAs(ParseTimingClock, v)
	case StatusStart:
		return parseAs(ParseStart, v)
	case StatusContinue:
		return parseAs(ParseContinue, v)
	case StatusStop:
		return parseAs(ParseStop, v)
	case StatusActiveSensing:
		return parseAs(ParseActiveSensing, v)
	case StatusReset:
		return parseAs(ParseReset, v)
	default:
		return nil, &wire.VariantError{Family: Family, Level: 2, Name: "status", Code: uint64(status)}
	}
}

// ParseBytes parses a legacy MIDI 1.0 system message.
func ParseBytes(data []byte) (Message, error) {
	return Parse(wire.Bytes(data))
}

func parseAs[T Message](parse func(wire.View) (T, error), v wire.View) (Message, error) {
	m, err := parse(v)
	if err != nil {
		return nil, &wire.DispatchError{Family: Family, Level: 2, Err: err}
	}
	return m, nil
}

// Shapes returns every system shape, in status order.
func Shapes() []*wire.Shape {
	return append([]*wire.Shape(nil), shapes...)
}
