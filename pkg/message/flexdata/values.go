package flexdata

import (
	"fmt"
	"strings"

	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// Alteration changes one degree of a chord.
type Alteration struct {
	Kind   AlterationKind
	Degree numeric.U4
}

// Add returns an alteration adding degree.
func Add(degree numeric.U4) *Alteration {
	return &Alteration{Kind: AlterationKindAdd, Degree: degree}
}

// Subtract returns an alteration removing degree.
func Subtract(degree numeric.U4) *Alteration {
	return &Alteration{Kind: AlterationKindSubtract, Degree: degree}
}

// Raise returns an alteration raising degree by a semitone.
func Raise(degree numeric.U4) *Alteration {
	return &Alteration{Kind: AlterationKindRaise, Degree: degree}
}

// Lower returns an alteration lowering degree by a semitone.
func Lower(degree numeric.U4) *Alteration {
	return &Alteration{Kind: AlterationKindLower, Degree: degree}
}

func (a Alteration) String() string {
	return fmt.Sprintf("%s(%d)", strings.ToLower(a.Kind.String()), a.Degree)
}

// An alteration octet is a kind nibble followed by a degree nibble. Kind 0
// means no alteration, whatever the degree.
var alterationCodec = wire.OptionalMasked[Alteration](0xF0, 0, wire.CodecFunc[Alteration]{
	DecodeFunc: func(raw uint64) (Alteration, error) {
		kind, err := alterationKindCodec.Decode(raw >> 4)
		if err != nil {
			return Alteration{}, err
		}
		return Alteration{Kind: kind, Degree: numeric.NewU4(uint8(raw))}, nil
	},
	EncodeFunc: func(a Alteration) (uint64, error) {
		code, err := alterationKindCodec.Encode(a.Kind)
		if err != nil {
			return 0, err
		}
		if a.Degree > numeric.MaxU4 {
			return 0, fmt.Errorf("%w: alteration degree %d exceeds 4 bits", wire.ErrInvalidFieldValue, a.Degree)
		}
		return code<<4 | uint64(a.Degree), nil
	},
})

// keyNonStandard marks a key signature that is not expressible as a count
// of sharps or flats.
const keyNonStandard = 0x8

// The key signature count is a two's complement nibble.
var keySharpsFlatsCodec = wire.Optional[int8](keyNonStandard, wire.CodecFunc[int8]{
	DecodeFunc: func(raw uint64) (int8, error) {
		return int8(raw<<4) >> 4, nil
	},
	EncodeFunc: func(v int8) (uint64, error) {
		if v < -8 || v > 7 {
			return 0, fmt.Errorf("%w: %d sharps/flats does not fit a signed nibble", wire.ErrInvalidFieldValue, v)
		}
		return uint64(uint8(v) & 0xF), nil
	},
})

// The optional channel schema is the 2-bit address followed by the channel.
// Address 0 targets a channel, address 1 the whole group.
const (
	addressChannel = 0x0
	addressGroup   = 0x1
)

var optionalChannelCodec = wire.OptionalMasked[numeric.U4](0x30, addressGroup<<4, wire.CodecFunc[numeric.U4]{
	DecodeFunc: func(raw uint64) (numeric.U4, error) {
		if address := raw >> 4; address != addressChannel {
			return 0, fmt.Errorf("%w: couldn't interpret address code %#x", wire.ErrInvalidFieldValue, address)
		}
		return numeric.NewU4(uint8(raw)), nil
	},
	EncodeFunc: func(ch numeric.U4) (uint64, error) {
		if ch > numeric.MaxU4 {
			return 0, fmt.Errorf("%w: channel %d exceeds 4 bits", wire.ErrInvalidFieldValue, ch)
		}
		return addressChannel<<4 | uint64(ch), nil
	},
})
