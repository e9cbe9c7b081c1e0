package wire

import (
	"fmt"
)

// Codec maps the raw integer held by a schema to a domain value and back.
// Codecs are pure and safe for concurrent use.
type Codec[T any] interface {
	Decode(raw uint64) (T, error)
	Encode(v T) (uint64, error)
}

// Unsigned is the set of integer types Uint can carry.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type uintCodec[T Unsigned] struct{}

// Uint returns the identity codec for an unsigned integer type. The schema
// width bounds the value: decode never fails, encode of a value wider than
// the schema fails at write time.
func Uint[T Unsigned]() Codec[T] { return uintCodec[T]{} }

func (uintCodec[T]) Decode(raw uint64) (T, error) { return T(raw), nil }
func (uintCodec[T]) Encode(v T) (uint64, error)   { return uint64(v), nil }

type boolCodec struct{}

// Bool returns the codec for a single-bit flag.
func Bool() Codec[bool] { return boolCodec{} }

func (boolCodec) Decode(raw uint64) (bool, error) { return raw != 0, nil }

func (boolCodec) Encode(v bool) (uint64, error) {
	if v {
		return 1, nil
	}
	return 0, nil
}

// EnumCode pairs a domain value with its wire code.
type EnumCode[T comparable] struct {
	Value T
	Code  uint64
}

// Code is shorthand for building an EnumCode table.
func Code[T comparable](v T, code uint64) EnumCode[T] {
	return EnumCode[T]{Value: v, Code: code}
}

type enumCodec[T comparable] struct {
	name  string
	codes []EnumCode[T]
}

// Enum returns a codec for a closed set of values with sparse wire codes.
// name appears in the error for an unknown code or value.
func Enum[T comparable](name string, codes ...EnumCode[T]) Codec[T] {
	return enumCodec[T]{name: name, codes: codes}
}

func (c enumCodec[T]) Decode(raw uint64) (T, error) {
	for _, e := range c.codes {
		if e.Code == raw {
			return e.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: couldn't interpret %s code %#x", ErrInvalidFieldValue, c.name, raw)
}

func (c enumCodec[T]) Encode(v T) (uint64, error) {
	for _, e := range c.codes {
		if e.Value == v {
			return e.Code, nil
		}
	}
	return 0, fmt.Errorf("%w: no %s code for %v", ErrInvalidFieldValue, c.name, v)
}

// CodecFunc adapts a pair of functions to Codec.
type CodecFunc[T any] struct {
	DecodeFunc func(raw uint64) (T, error)
	EncodeFunc func(v T) (uint64, error)
}

func (c CodecFunc[T]) Decode(raw uint64) (T, error) { return c.DecodeFunc(raw) }
func (c CodecFunc[T]) Encode(v T) (uint64, error)   { return c.EncodeFunc(v) }

type optionalCodec[T any] struct {
	presence uint64
	sentinel uint64
	inner    Codec[T]
}

// Optional returns a codec where the raw pattern sentinel means absent (nil)
// and anything else is decoded by inner. Encoding a value that inner maps to
// the sentinel fails, since it would read back as absent.
func Optional[T any](sentinel uint64, inner Codec[T]) Codec[*T] {
	return optionalCodec[T]{presence: ^uint64(0), sentinel: sentinel, inner: inner}
}

// OptionalMasked is Optional where only the bits in presence are compared
// against sentinel. Absent encodes as sentinel with every other bit clear.
// Decoding is lenient: when the presence bits read absent, the remaining
// bits are ignored, so such input does not re-encode to the same bits.
func OptionalMasked[T any](presence, sentinel uint64, inner Codec[T]) Codec[*T] {
	return optionalCodec[T]{presence: presence, sentinel: sentinel, inner: inner}
}

func (c optionalCodec[T]) Decode(raw uint64) (*T, error) {
	if raw&c.presence == c.sentinel {
		return nil, nil
	}
	v, err := c.inner.Decode(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c optionalCodec[T]) Encode(v *T) (uint64, error) {
	if v == nil {
		return c.sentinel, nil
	}
	raw, err := c.inner.Encode(*v)
	if err != nil {
		return 0, err
	}
	if raw&c.presence == c.sentinel {
		return 0, fmt.Errorf("%w: value %v collides with the absent marker", ErrInvalidFieldValue, *v)
	}
	return raw, nil
}
