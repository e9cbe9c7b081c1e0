package midi2cv

import (
	"fmt"

	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// Attribute is the optional per-note attribute of a MIDI 2.0 note message.
type Attribute struct {
	Kind AttributeKind
	Data uint16
}

// ManufacturerSpecific returns a manufacturer specific attribute.
func ManufacturerSpecific(data uint16) *Attribute {
	return &Attribute{Kind: AttributeKindManufacturerSpecific, Data: data}
}

// ProfileSpecific returns a profile specific attribute.
func ProfileSpecific(data uint16) *Attribute {
	return &Attribute{Kind: AttributeKindProfileSpecific, Data: data}
}

// Pitch7_9 returns a pitch attribute: a 7-bit note plus a 9-bit fraction of
// a semitone.
func Pitch7_9(note numeric.U7, fraction uint16) *Attribute {
	return &Attribute{Kind: AttributeKindPitch7_9, Data: uint16(note)<<9 | fraction&0x1FF}
}

// Pitch splits a Pitch7_9 attribute into note and fraction.
func (a Attribute) Pitch() (numeric.U7, uint16) {
	return numeric.NewU7(uint8(a.Data >> 9)), a.Data & 0x1FF
}

func (a Attribute) String() string {
	if a.Kind == AttributeKindPitch7_9 {
		note, fraction := a.Pitch()
		return fmt.Sprintf("%s(%d+%d/512)", a.Kind, note, fraction)
	}
	return fmt.Sprintf("%s(%#04x)", a.Kind, a.Data)
}

// The attribute schema concatenates the type byte of word 0 with the data
// half of word 1. Type 0 means no attribute.
var attributeCodec = wire.OptionalMasked[Attribute](0xFF_0000, 0, wire.CodecFunc[Attribute]{
	DecodeFunc: func(raw uint64) (Attribute, error) {
		kind, err := attributeKindCodec.Decode(raw >> 16)
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{Kind: kind, Data: uint16(raw)}, nil
	},
	EncodeFunc: func(a Attribute) (uint64, error) {
		code, err := attributeKindCodec.Encode(a.Kind)
		if err != nil {
			return 0, err
		}
		return code<<16 | uint64(a.Data), nil
	},
})

// The bank schema is the bank-valid flag followed by bank MSB and LSB.
var programBankCodec = wire.OptionalMasked[numeric.U14](0x4000, 0, wire.CodecFunc[numeric.U14]{
	DecodeFunc: func(raw uint64) (numeric.U14, error) {
		return numeric.NewU14(uint16(raw)), nil
	},
	EncodeFunc: func(bank numeric.U14) (uint64, error) {
		if bank > numeric.MaxU14 {
			return 0, fmt.Errorf("%w: bank %d exceeds 14 bits", wire.ErrInvalidFieldValue, bank)
		}
		return 0x4000 | uint64(bank), nil
	},
})
