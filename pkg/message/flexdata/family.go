// Package flexdata implements the single-packet Flex Data messages of the
// setup and performance bank (UMP packet type 0xD, bank 0x00, format
// complete). Multi-packet formats and the text banks are rejected by Parse.
package flexdata

import (
	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

//go:generate go run ../../../cmd/ump-msggen -input messages.yaml -output messages_gen.go

// Family is the dispatch name used in errors and logs.
const Family = "flex data"

// PacketType is the UMP packet type of every Flex Data message.
const PacketType = 0xD

// FormatComplete marks a message that fits in one packet.
const FormatComplete = 0x0

// BankSetupAndPerformance is the only status bank this package decodes.
const BankSetupAndPerformance = 0x00

// Status codes within the setup and performance bank.
const (
	StatusSetTempo         = 0x00
	StatusSetTimeSignature = 0x01
	StatusSetMetronome     = 0x02
	StatusSetKeySignature  = 0x05
	StatusSetChordName     = 0x06
)

const (
	formatMask = 0x00C0_0000
	bankMask   = 0x0000_FF00
	statusMask = 0x0000_00FF
)

var (
	packetTypeDiscriminant = wire.Discriminant{
		Name:   "packet type",
		Schema: wire.Ump(0xF000_0000),
		Value:  PacketType,
	}
	formatDiscriminant = wire.Discriminant{
		Name:   "format",
		Schema: wire.Ump(formatMask),
		Value:  FormatComplete,
	}
	bankDiscriminant = wire.Discriminant{
		Name:   "bank",
		Schema: wire.Ump(bankMask),
		Value:  BankSetupAndPerformance,
	}
)

var (
	groupField = wire.Field[numeric.U4]{
		Name:   "group",
		Schema: wire.Ump(0x0F00_0000),
		Codec:  wire.Uint[numeric.U4](),
	}
	optionalChannelField = wire.Field[*numeric.U4]{
		Name:   "channel",
		Schema: wire.Ump(0x003F_0000),
		Codec:  optionalChannelCodec,
	}
)

// Message is any Flex Data message this package decodes.
type Message interface {
	wire.Decoded
	Group() numeric.U4
	// OptionalChannel is nil when the message addresses the whole group.
	OptionalChannel() *numeric.U4
	isFlexData()
}

func (SetTempo) isFlexData()         {}
func (SetTimeSignature) isFlexData() {}
func (SetMetronome) isFlexData()     {}
func (SetKeySignature) isFlexData()  {}
func (SetChordName) isFlexData()     {}

// Parse classifies v by packet type, then format and bank, then status.
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
	if format := wire.Extract(word, formatMask); format != FormatComplete {
		return nil, &wire.VariantError{Family: Family, Level: 2, Name: "format", Code: uint64(format)}
	}
	if bank := wire.Extract(word, bankMask); bank != BankSetupAndPerformance {
		return nil, &wire.VariantError{Family: Family, Level: 2, Name: "bank", Code: uint64(bank)}
	}
	switch status := wire.Extract(word, statusMask); status {
	case StatusSetTempo:
		return parseAs(ParseSetTempo, v)
	case StatusSetTimeSignature:
		return parseAs(ParseSetTimeSignature, v)
	case StatusSetMetronome:
		return parseAs(ParseSetMetronome, v)
	case StatusSetKeySignature:
		return parseAs(ParseSetKeySignature, v)
	case StatusSetChordName:
		return parseAs(ParseSetChordName, v)
	default:
		return nil, &wire.VariantError{Family: Family, Level: 3, Name: "status", Code: uint64(status)}
	}
}

func parseAs[T Message](parse func(wire.View) (T, error), v wire.View) (Message, error) {
	m, err := parse(v)
	if err != nil {
		return nil, &wire.DispatchError{Family: Family, Level: 3, Err: err}
	}
	return m, nil
}

// Shapes returns every Flex Data shape, in status order.
func Shapes() []*wire.Shape {
	return append([]*wire.Shape(nil), shapes...)
}
