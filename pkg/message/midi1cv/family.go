// Package midi1cv implements the MIDI 1.0 channel voice messages, both as
// UMP packet type 0x2 and as legacy status bytes 0x80 to 0xEF.
package midi1cv

import (
	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

//go:generate go run ../../../cmd/ump-msggen -input messages.yaml -output messages_gen.go

// Family is the dispatch name used in errors and logs.
const Family = "midi1 channel voice"

// PacketType is the UMP packet type of every MIDI 1.0 channel voice message.
const PacketType = 0x2

// Status nibbles.
const (
	StatusNoteOff         = 0x8
	StatusNoteOn          = 0x9
	StatusKeyPressure     = 0xA
	StatusControlChange   = 0xB
	StatusProgramChange   = 0xC
	StatusChannelPressure = 0xD
	StatusPitchBend       = 0xE
)

var packetTypeDiscriminant = wire.Discriminant{
	Name:   "packet type",
	Schema: wire.Ump(0xF000_0000),
	Value:  PacketType,
}

var (
	groupField = wire.Field[numeric.U4]{
		Name:   "group",
		Schema: wire.Ump(0x0F00_0000),
		Codec:  wire.Uint[numeric.U4](),
	}
	channelField = wire.Field[numeric.U4]{
		Name:   "channel",
		Schema: wire.Ump(0x000F_0000).WithBytes(0x0F),
		Codec:  wire.Uint[numeric.U4](),
	}
)

// Message is any MIDI 1.0 channel voice message.
type Message interface {
	wire.Decoded
	// Group reads as zero in byte form.
	Group() numeric.U4
	Channel() numeric.U4
	isMIDI1ChannelVoice()
}

func (NoteOff) isMIDI1ChannelVoice()         {}
func (NoteOn) isMIDI1ChannelVoice()          {}
func (KeyPressure) isMIDI1ChannelVoice()     {}
func (ControlChange) isMIDI1ChannelVoice()   {}
func (ProgramChange) isMIDI1ChannelVoice()   {}
func (ChannelPressure) isMIDI1ChannelVoice() {}
func (PitchBend) isMIDI1ChannelVoice()       {}

// Parse classifies v by packet type (word form only), then by status nibble.
func Parse(v wire.View) (Message, error) {
	unit, _, err := wire.FirstUnit(v)
	if err != nil {
		return nil, err
	}
	var status uint32
	level := 2
	if v.Kind() == wire.KindWord {
		if pt := wire.PacketType(unit); pt != PacketType {
			return nil, &wire.VariantError{Family: Family, Level: 1, Name: "packet type", Code: uint64(pt)}
		}
		status = wire.Extract(unit, 0x00F0_0000)
	} else {
		status = unit >> 4
		level = 1
	}
	switch status {
	case StatusNoteOff:
		return parseAs(ParseNoteOff, v, level)
	case StatusNoteOn:
		return parseAs(ParseNoteOn, v, level)
	case StatusKeyPressure:
		return parseAs(ParseKeyPressure, v, level)
	case StatusControlChange:
		return parseAs(ParseControlChange, v, level)
	case StatusProgramChange:
		return parseAs(ParseProgramChange, v, level)
	case StatusChannelPressure:
		return parseAs(ParseChannelPressure, v, level)
	case StatusPitchBend:
		return parseAs(ParsePitchBend, v, level)
	default:
		return nil, &wire.VariantError{Family: Family, Level: level, Name: "status", Code: uint64(status)}
	}
}

// ParseBytes parses a legacy MIDI 1.0 channel voice message.
func ParseBytes(data []byte) (Message, error) {
	return Parse(wire.Bytes(data))
}

func parseAs[T Message](parse func(wire.View) (T, error), v wire.View, level int) (Message, error) {
	m, err := parse(v)
	if err != nil {
		return nil, &wire.DispatchError{Family: Family, Level: level, Err: err}
	}
	return m, nil
}

// Shapes returns every MIDI 1.0 channel voice shape, in status order.
func Shapes() []*wire.Shape {
	return append([]*wire.Shape(nil), shapes...)
}
