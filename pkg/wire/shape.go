package wire

import (
	"errors"
)

// Shape is the static description of one concrete message layout.
type Shape struct {
	// Name identifies the shape in errors and logs.
	Name string
	// PacketType is the UMP packet type of the word form.
	PacketType uint8
	// MinWords and MinBytes are the message sizes per kind, excluding any
	// prefix. Zero means the kind is not supported.
	MinWords int
	MinBytes int
	// Prefix is the jitter-reduction field, or nil if the shape does not
	// accept a prefix word.
	Prefix FieldSpec
	// Discriminants are checked in order by Parse and written by NewBuilder.
	Discriminants []Discriminant
	// Fields lists the non-constant fields in declaration order.
	Fields []FieldSpec
}

// Supports reports whether the shape has a form in kind.
func (s *Shape) Supports(k Kind) bool {
	return s.Size(k) > 0
}

// Size returns the message size in units for kind, excluding the prefix.
func (s *Shape) Size(k Kind) int {
	if k == KindByte {
		return s.MinBytes
	}
	return s.MinWords
}

func (s *Shape) kindError(k Kind) error {
	want := KindWord
	if k == KindWord {
		want = KindByte
	}
	return &DiscriminantError{Shape: s.Name, Name: "unit kind", Want: uint64(want), Got: uint64(k)}
}

// Parse validates v as an instance of s and wraps it without copying. Checks
// run in a fixed order: unit kind, size, discriminants, prefix, fields.
func (s *Shape) Parse(v View) (Message, error) {
	if !s.Supports(v.Kind()) {
		return Message{}, s.kindError(v.Kind())
	}
	offset := ResolveOffset(s, v)
	if need := s.Size(v.Kind()) + offset; v.Len() < need {
		return Message{}, &SizeError{Shape: s.Name, Need: need, Have: v.Len()}
	}
	for _, d := range s.Discriminants {
		if err := d.check(s.Name, v, offset); err != nil {
			return Message{}, err
		}
	}
	if s.Prefix != nil {
		if err := s.Prefix.Validate(v, offset); err != nil {
			return Message{}, s.annotate(err)
		}
	}
	for _, f := range s.Fields {
		if err := f.Validate(v, offset); err != nil {
			return Message{}, s.annotate(err)
		}
	}
	return Message{shape: s, view: v, offset: offset}, nil
}

func (s *Shape) annotate(err error) error {
	var fe *FieldError
	if errors.As(err, &fe) && fe.Shape == "" {
		fe.Shape = s.Name
	}
	var se *SizeError
	if errors.As(err, &se) && se.Shape == "" {
		se.Shape = s.Name
	}
	return err
}

// Message is a validated view of one message. The zero Message is invalid.
type Message struct {
	shape  *Shape
	view   View
	offset int
}

// Shape returns the message's shape.
func (m Message) Shape() *Shape { return m.shape }

// View returns the underlying buffer, read-only.
func (m Message) View() View { return ReadOnly(m.view) }

// Offset is 1 if the message has a prefix word.
func (m Message) Offset() int { return m.offset }

// HasPrefix reports whether a prefix word precedes the message.
func (m Message) HasPrefix() bool { return m.offset == 1 }

// Kind returns the unit kind of the underlying buffer.
func (m Message) Kind() Kind { return m.view.Kind() }

// Len returns the number of units the message occupies, prefix included.
func (m Message) Len() int {
	if m.shape == nil {
		return 0
	}
	return m.shape.Size(m.view.Kind()) + m.offset
}

// Raw returns the untyped message. Typed wrappers inherit it, which lets
// generic code such as Transcode reach the message behind a family interface.
func (m Message) Raw() Message { return m }

// Words returns a copy of the message words, prefix included. It returns nil
// for byte-form messages.
func (m Message) Words() []uint32 {
	if m.shape == nil || m.view.Kind() != KindWord {
		return nil
	}
	out := make([]uint32, m.Len())
	for i := range out {
		out[i] = m.view.Unit(i)
	}
	return out
}

// Bytes returns a copy of the message bytes. It returns nil for word-form
// messages.
func (m Message) Bytes() []byte {
	if m.shape == nil || m.view.Kind() != KindByte {
		return nil
	}
	out := make([]byte, m.Len())
	for i := range out {
		out[i] = byte(m.view.Unit(i))
	}
	return out
}

// FieldValue is one decoded field.
type FieldValue struct {
	Name  string
	Value any
}

// Fields decodes every field in declaration order, the prefix first when the
// shape accepts one. Absent optional values are nil.
func (m Message) Fields() []FieldValue {
	if m.shape == nil {
		return nil
	}
	var out []FieldValue
	if m.shape.Prefix != nil {
		out = append(out, FieldValue{Name: m.shape.Prefix.FieldName(), Value: m.shape.Prefix.Describe(m.view, m.offset)})
	}
	for _, f := range m.shape.Fields {
		out = append(out, FieldValue{Name: f.FieldName(), Value: f.Describe(m.view, m.offset)})
	}
	return out
}

// Decoded is the method set every typed message exposes through its embedded
// Message. Family dispatch returns values of this shape.
type Decoded interface {
	Shape() *Shape
	Kind() Kind
	Len() int
	HasPrefix() bool
	Words() []uint32
	Bytes() []byte
	Fields() []FieldValue
	Raw() Message
}

var _ Decoded = Message{}

// Transcode rebuilds m in dst field by field, converting between unit kinds
// when dst's kind differs from m's. A prefix value is carried over only when
// the new layout has a prefix word; fields that do not exist in dst's kind
// are dropped.
func Transcode(m Message, dst MutableView, opts ...BuildOption) (Message, error) {
	if m.shape == nil {
		return Message{}, &SizeError{Need: 1, Have: 0}
	}
	b := NewBuilder(m.shape, dst, opts...)
	if m.shape.Prefix != nil && b.offset == 1 {
		b.apply(func(buf MutableView, offset int) error {
			return m.shape.Prefix.Transcode(buf, offset, m.view, m.offset)
		})
	}
	for _, f := range m.shape.Fields {
		b.apply(func(buf MutableView, offset int) error {
			return f.Transcode(buf, offset, m.view, m.offset)
		})
	}
	return b.Finish()
}
