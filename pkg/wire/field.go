package wire

import (
	"reflect"
)

// FieldSpec is the type-erased view of a field that a Shape validates and
// describes.
type FieldSpec interface {
	FieldName() string
	FieldSchema() Schema
	// Validate decodes the field from v and reports any error.
	Validate(v View, offset int) error
	// Describe returns the decoded value, with optional values dereferenced
	// and absent ones as nil.
	Describe(v View, offset int) any
	// Transcode decodes the field from src and encodes it into dst. The two
	// views may be of different kinds.
	Transcode(dst MutableView, dstOffset int, src View, srcOffset int) error
	// WriteDefault stores the value an unset field holds in a new message.
	WriteDefault(dst MutableView, offset int) error
}

// Field binds a name, a schema and a codec.
type Field[T any] struct {
	Name   string
	Schema Schema
	Codec  Codec[T]
}

// Read decodes the field. A field that does not exist in v's kind reads as
// the zero value.
func (f Field[T]) Read(v View, offset int) (T, error) {
	var zero T
	if !f.Schema.Supports(v.Kind()) {
		return zero, nil
	}
	raw, err := f.Schema.Read(v, offset)
	if err != nil {
		return zero, err
	}
	val, err := f.Codec.Decode(raw)
	if err != nil {
		return zero, &FieldError{Field: f.Name, Err: err}
	}
	return val, nil
}

// Write encodes val into the field. Writing a field that does not exist in
// v's kind is a no-op.
func (f Field[T]) Write(v MutableView, offset int, val T) error {
	if !f.Schema.Supports(v.Kind()) {
		return nil
	}
	raw, err := f.Codec.Encode(val)
	if err != nil {
		return &FieldError{Field: f.Name, Err: err}
	}
	if err := f.Schema.Write(v, offset, raw); err != nil {
		if _, ok := err.(*SizeError); ok {
			return err
		}
		return &FieldError{Field: f.Name, Err: err}
	}
	return nil
}

// Get reads the field from a parsed message. Parse has validated every
// field, so the error path only yields the zero value.
func (f Field[T]) Get(m Message) T {
	val, _ := f.Read(m.view, m.offset)
	return val
}

// Set writes val through the builder.
func (f Field[T]) Set(b *Builder, val T) {
	b.apply(func(buf MutableView, offset int) error {
		return f.Write(buf, offset, val)
	})
}

func (f Field[T]) FieldName() string   { return f.Name }
func (f Field[T]) FieldSchema() Schema { return f.Schema }

func (f Field[T]) Validate(v View, offset int) error {
	_, err := f.Read(v, offset)
	return err
}

func (f Field[T]) Describe(v View, offset int) any {
	val, err := f.Read(v, offset)
	if err != nil {
		return nil
	}
	return deref(val)
}

func (f Field[T]) Transcode(dst MutableView, dstOffset int, src View, srcOffset int) error {
	val, err := f.Read(src, srcOffset)
	if err != nil {
		return err
	}
	return f.Write(dst, dstOffset, val)
}

// WriteDefault writes the absent marker of an optional field. Other fields
// keep the zeroed bits NewBuilder starts from.
func (f Field[T]) WriteDefault(dst MutableView, offset int) error {
	var zero T
	if reflect.TypeOf(&zero).Elem().Kind() != reflect.Pointer {
		return nil
	}
	return f.Write(dst, offset, zero)
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return v
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}

// PrefixField is the optional value held in the jitter-reduction prefix
// word. Its schema is absolute: index 0 is the prefix word itself, not the
// message's first word.
type PrefixField[T any] struct {
	Name   string
	Schema Schema
	Codec  Codec[*T]
}

// Read returns nil when the message has no prefix word.
func (f PrefixField[T]) Read(v View, offset int) (*T, error) {
	if offset == 0 || v.Kind() != KindWord {
		return nil, nil
	}
	return Field[*T](f).Read(v, 0)
}

// Write stores val in the prefix word. Writing a value when the layout has no
// prefix word fails with a SizeError; writing nil there is a no-op.
func (f PrefixField[T]) Write(v MutableView, offset int, val *T) error {
	if offset == 0 || v.Kind() != KindWord {
		if val != nil {
			return &SizeError{Need: 1, Have: 0}
		}
		return nil
	}
	return Field[*T](f).Write(v, 0, val)
}

// Get reads the prefix value of a parsed message.
func (f PrefixField[T]) Get(m Message) *T {
	val, _ := f.Read(m.view, m.offset)
	return val
}

// Set writes the prefix value through the builder.
func (f PrefixField[T]) Set(b *Builder, val *T) {
	b.apply(func(buf MutableView, offset int) error {
		return f.Write(buf, offset, val)
	})
}

func (f PrefixField[T]) FieldName() string   { return f.Name }
func (f PrefixField[T]) FieldSchema() Schema { return f.Schema }

func (f PrefixField[T]) Validate(v View, offset int) error {
	_, err := f.Read(v, offset)
	return err
}

func (f PrefixField[T]) Describe(v View, offset int) any {
	val, err := f.Read(v, offset)
	if err != nil || val == nil {
		return nil
	}
	return *val
}

func (f PrefixField[T]) Transcode(dst MutableView, dstOffset int, src View, srcOffset int) error {
	val, err := f.Read(src, srcOffset)
	if err != nil {
		return err
	}
	return f.Write(dst, dstOffset, val)
}

// WriteDefault writes nil, which leaves a reserved prefix word a NoOp.
func (f PrefixField[T]) WriteDefault(dst MutableView, offset int) error {
	return f.Write(dst, offset, nil)
}

// Discriminant is a constant field that identifies a shape. Parse checks it,
// builders always write it.
type Discriminant struct {
	Name   string
	Schema Schema
	Value  uint64
}

func (d Discriminant) check(shape string, v View, offset int) error {
	if !d.Schema.Supports(v.Kind()) {
		return nil
	}
	got, err := d.Schema.Read(v, offset)
	if err != nil {
		return err
	}
	if got != d.Value {
		return &DiscriminantError{Shape: shape, Name: d.Name, Want: d.Value, Got: got}
	}
	return nil
}

func (d Discriminant) emit(v MutableView, offset int) error {
	if !d.Schema.Supports(v.Kind()) {
		return nil
	}
	return d.Schema.Write(v, offset, d.Value)
}

// Compile-time interface satisfaction checks.
var (
	_ FieldSpec = Field[uint8]{}
	_ FieldSpec = PrefixField[uint8]{}
)
