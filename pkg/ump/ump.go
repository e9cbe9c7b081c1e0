// Package ump dispatches untyped Universal MIDI Packets to the message
// families. Parse classifies one packet by unit kind and packet type; Split
// and Decoder walk a stream of packets.
package ump

import (
	"github.com/ump-protocol/ump-go/pkg/message/flexdata"
	"github.com/ump-protocol/ump-go/pkg/message/midi1cv"
	"github.com/ump-protocol/ump-go/pkg/message/midi2cv"
	"github.com/ump-protocol/ump-go/pkg/message/systemcommon"
	"github.com/ump-protocol/ump-go/pkg/message/utility"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// Dispatcher is the family name top-level errors are reported under.
const Dispatcher = "ump"

// Family describes one message family known to Parse.
type Family struct {
	Name       string
	PacketType uint8
	// Bytes reports whether the family has a legacy byte form.
	Bytes  bool
	Shapes []*wire.Shape
	Parse  func(wire.View) (wire.Decoded, error)
}

func families() []Family {
	return []Family{
		{utility.Family, utility.PacketType, false, utility.Shapes(), func(v wire.View) (wire.Decoded, error) { return utility.Parse(v) }},
		{systemcommon.Family, systemcommon.PacketType, true, systemcommon.Shapes(), func(v wire.View) (wire.Decoded, error) { return systemcommon.Parse(v) }},
		{midi1cv.Family, midi1cv.PacketType, true, midi1cv.Shapes(), func(v wire.View) (wire.Decoded, error) { return midi1cv.Parse(v) }},
		{midi2cv.Family, midi2cv.PacketType, false, midi2cv.Shapes(), func(v wire.View) (wire.Decoded, error) { return midi2cv.Parse(v) }},
		{flexdata.Family, flexdata.PacketType, false, flexdata.Shapes(), func(v wire.View) (wire.Decoded, error) { return flexdata.Parse(v) }},
	}
}

// Families returns every family Parse dispatches to, in packet type order.
func Families() []Family {
	return families()
}

// Parse classifies v and parses it with the matching family. Word-form
// packets are classified by packet type, after a leading utility word when
// a non-utility word follows it. Byte-form packets are classified by their
// status byte.
func Parse(v wire.View) (wire.Decoded, error) {
	if v.Kind() == wire.KindByte {
		return parseBytes(v)
	}
	if v.Len() == 0 {
		return nil, &wire.SizeError{Shape: Dispatcher, Need: 1, Have: 0}
	}
	pt := wire.PacketType(v.Unit(0))
	if pt == utility.PacketType && v.Len() > 1 {
		if next := wire.PacketType(v.Unit(1)); next != utility.PacketType {
			pt = next
		}
	}
	switch pt {
	case utility.PacketType:
		return utility.Parse(v)
	case systemcommon.PacketType:
		return systemcommon.Parse(v)
	case midi1cv.PacketType:
		return midi1cv.Parse(v)
	case midi2cv.PacketType:
		return midi2cv.Parse(v)
	case flexdata.PacketType:
		return flexdata.Parse(v)
	default:
		return nil, &wire.VariantError{Family: Dispatcher, Level: 1, Name: "packet type", Code: uint64(pt)}
	}
}

// ParseBytes parses a legacy MIDI 1.0 byte-form message.
func ParseBytes(data []byte) (wire.Decoded, error) {
	return parseBytes(wire.Bytes(data))
}

func parseBytes(v wire.View) (wire.Decoded, error) {
	if v.Len() == 0 {
		return nil, &wire.SizeError{Shape: Dispatcher, Need: 1, Have: 0}
	}
	switch status := v.Unit(0); {
	case status >= 0xF0:
		return systemcommon.Parse(v)
	case status >= 0x80:
		return midi1cv.Parse(v)
	default:
		return nil, &wire.VariantError{Family: Dispatcher, Level: 1, Name: "status", Code: uint64(status)}
	}
}

// FamilyOf returns the family name of a message returned by Parse, or the
// empty string for anything else.
func FamilyOf(m wire.Decoded) string {
	switch m.(type) {
	case utility.Message:
		return utility.Family
	case systemcommon.Message:
		return systemcommon.Family
	case midi1cv.Message:
		return midi1cv.Family
	case midi2cv.Message:
		return midi2cv.Family
	case flexdata.Message:
		return flexdata.Family
	default:
		return ""
	}
}
