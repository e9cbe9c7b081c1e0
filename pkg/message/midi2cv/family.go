// Package midi2cv implements the MIDI 2.0 channel voice messages (UMP packet
// type 0x4). Every message is two words long and may be preceded by a
// jitter-reduction prefix word.
package midi2cv

import (
	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

//go:generate go run ../../../cmd/ump-msggen -input messages.yaml -output messages_gen.go

// Family is the dispatch name used in errors and logs.
const Family = "midi2 channel voice"

// PacketType is the UMP packet type of every MIDI 2.0 channel voice message.
const PacketType = 0x4

// Status nibbles.
const (
	StatusRegisteredPerNoteController  = 0x0
	StatusAssignablePerNoteController  = 0x1
	StatusRegisteredController         = 0x2
	StatusAssignableController         = 0x3
	StatusRelativeRegisteredController = 0x4
	StatusRelativeAssignableController = 0x5
	StatusPerNotePitchBend             = 0x6
	StatusNoteOff                      = 0x8
	StatusNoteOn                       = 0x9
	StatusKeyPressure                  = 0xA
	StatusControlChange                = 0xB
	StatusProgramChange                = 0xC
	StatusChannelPressure              = 0xD
	StatusPitchBend                    = 0xE
	StatusPerNoteManagement            = 0xF
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
		Schema: wire.Ump(0x000F_0000),
		Codec:  wire.Uint[numeric.U4](),
	}
)

// Message is any MIDI 2.0 channel voice message.
type Message interface {
	wire.Decoded
	Group() numeric.U4
	Channel() numeric.U4
	isMIDI2ChannelVoice()
}

func (RegisteredPerNoteController) isMIDI2ChannelVoice()  {}
func (AssignablePerNoteController) isMIDI2ChannelVoice()  {}
func (RegisteredController) isMIDI2ChannelVoice()         {}
func (AssignableController) isMIDI2ChannelVoice()         {}
func (RelativeRegisteredController) isMIDI2ChannelVoice() {}
func (RelativeAssignableController) isMIDI2ChannelVoice() {}
func (PerNotePitchBend) isMIDI2ChannelVoice()             {}
func (NoteOff) isMIDI2ChannelVoice()                      {}
func (NoteOn) isMIDI2ChannelVoice()                       {}
func (KeyPressure) isMIDI2ChannelVoice()                  {}
func (ControlChange) isMIDI2ChannelVoice()                {}
func (ProgramChange) isMIDI2ChannelVoice()                {}
func (ChannelPressure) isMIDI2ChannelVoice()              {}
func (PitchBend) isMIDI2ChannelVoice()                    {}
func (PerNoteManagement) isMIDI2ChannelVoice()            {}

// Parse classifies v by packet type, then by status nibble.
func Parse(v wire.View) (Message, error) {
	if v.Kind() != wire.KindWord {
		return nil, &wire.VariantError{Family: Family, Level: 1, Name: "unit kind", Code: uint64(v.Kind())}
	}
	word, _, err := wire.FirstUnit(v)
	if err != nil {
		return nil, err
	}
	if pt := wire.PacketType(word); pt != PacketType {
		return nil, &wire.VariantError{Family: Family, Level: 1, Name: "packet type", Code: uint64(pt)}
	}
	switch status := wire.Extract(word, 0x00F0_0000); status {
	case StatusRegisteredPerNoteController:
		return parseAs(ParseRegisteredPerNoteController, v)
	case StatusAssignablePerNoteController:
		return parseAs(ParseAssignablePerNoteController, v)
	case StatusRegisteredController:
		return parseAs(ParseRegisteredController, v)
	case StatusAssignableController:
		return parseAs(ParseAssignableController, v)
	case StatusRelativeRegisteredController:
		return parseAs(ParseRelativeRegisteredController, v)
	case StatusRelativeAssignableController:
		return parseAs(ParseRelativeAssignableController, v)
	case StatusPerNotePitchBend:
		return parseAs(ParsePerNotePitchBend, v)
	case StatusNoteOff:
		return parseAs(ParseNoteOff, v)
	case StatusNoteOn:
		return parseAs(ParseNoteOn, v)
	case StatusKeyPressure:
		return parseAs(ParseKeyPressure, v)
	case StatusControlChange:
		return parseAs(ParseControlChange, v)
	case StatusProgramChange:
		return parseAs(ParseProgramChange, v)
	case StatusChannelPressure:
		return parseAs(ParseChannelPressure, v)
	case StatusPitchBend:
		return parseAs(ParsePitchBend, v)
	case StatusPerNoteManagement:
		return parseAs(ParsePerNoteManagement, v)
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

// Shapes returns every MIDI 2.0 channel voice shape, in status order.
func Shapes() []*wire.Shape {
	return append([]*wire.Shape(nil), shapes...)
}
