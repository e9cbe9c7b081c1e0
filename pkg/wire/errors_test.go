package wire

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"size", &SizeError{Shape: "NoteOn", Need: 2, Have: 1}, ErrBufferTooShort},
		{"discriminant", &DiscriminantError{Shape: "NoteOn", Name: "status", Want: 0x9, Got: 0x8}, ErrInvalidDiscriminant},
		{"field", &FieldError{Shape: "NoteOn", Field: "note", Err: errors.New("out of range")}, ErrInvalidFieldValue},
		{"variant", &VariantError{Family: "flex data", Level: 2, Name: "bank", Code: 0x7}, ErrUnknownVariant},
		{"dispatch wraps", &DispatchError{Family: "midi2 channel voice", Level: 2, Err: &SizeError{Need: 2}}, ErrBufferTooShort},
		{"fmt wrapped", fmt.Errorf("decode: %w", &VariantError{Family: "utility", Level: 1}), ErrUnknownVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, KindOf(tt.err))
			matched := 0
			for _, k := range []error{ErrBufferTooShort, ErrInvalidDiscriminant, ErrInvalidFieldValue, ErrUnknownVariant} {
				if errors.Is(tt.err, k) {
					matched++
				}
			}
			assert.Equal(t, 1, matched, "error matches exactly one kind")
		})
	}

	assert.Nil(t, KindOf(errors.New("other")))
	assert.Nil(t, KindOf(nil))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "buffer too short: need 2 units, have 0",
		(&SizeError{Need: 2}).Error())
	assert.Equal(t, "NoteOn: buffer too short: need 2 units, have 1",
		(&SizeError{Shape: "NoteOn", Need: 2, Have: 1}).Error())
	assert.Equal(t, "NoteOn: invalid discriminant: status is 0x8, want 0x9",
		(&DiscriminantError{Shape: "NoteOn", Name: "status", Want: 0x9, Got: 0x8}).Error())
	assert.Equal(t, "flex data: unknown variant: unknown bank 0x7 at level 2",
		(&VariantError{Family: "flex data", Level: 2, Name: "bank", Code: 0x7}).Error())
	assert.Equal(t, "tonic: bad",
		(&FieldError{Field: "tonic", Err: errors.New("bad")}).Error())
}

func TestFieldErrorUnwraps(t *testing.T) {
	cause := errors.New("cause")
	err := &FieldError{Shape: "S", Field: "f", Err: cause}
	assert.ErrorIs(t, err, cause)

	var fe *FieldError
	require.ErrorAs(t, &DispatchError{Family: "x", Level: 3, Err: err}, &fe)
	assert.Equal(t, "f", fe.Field)
}

func TestPrefixOffset(t *testing.T) {
	tests := []struct {
		name string
		v    View
		want int
	}{
		{"empty", Words{}, 0},
		{"utility first", Words{0x0010_0042, 0x4090_3C00}, 1},
		{"channel voice first", Words{0x4090_3C00, 0xFFFF_0000}, 0},
		{"bytes never", Bytes{0x00, 0x90}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrefixOffset(tt.v))
		})
	}
}

func TestResolveOffset(t *testing.T) {
	prefixed := Words{0x0020_1234, 0x4290_3C00, 0xFFFF_0000}
	assert.Equal(t, 1, ResolveOffset(testShape, prefixed))
	assert.Equal(t, 0, ResolveOffset(testByteShape, prefixed), "shape without a prefix field")

	utilityShape := &Shape{Name: "Clock", PacketType: UtilityPacketType, MinWords: 1, Prefix: testPrefix}
	assert.Equal(t, 0, ResolveOffset(utilityShape, Words{0x0010_0001}))
}

func TestFirstUnit(t *testing.T) {
	unit, offset, err := FirstUnit(Words{0x0010_0042, 0x2090_3C7F})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2090_3C7F), unit)
	assert.Equal(t, 1, offset)

	unit, offset, err = FirstUnit(Words{0x2090_3C7F})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2090_3C7F), unit)
	assert.Zero(t, offset)

	_, _, err = FirstUnit(Words{0x0010_0042})
	assert.ErrorIs(t, err, ErrBufferTooShort)

	_, _, err = FirstUnit(Words{})
	var se *SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Need)
}

func TestPacketType(t *testing.T) {
	assert.Equal(t, uint8(0xD), PacketType(0xD70B_0006))
	assert.Equal(t, uint8(0x0), PacketType(0x0020_1234))
}
