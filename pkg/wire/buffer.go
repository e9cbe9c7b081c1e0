package wire

// Kind is the physical unit size of a buffer.
type Kind uint8

const (
	// KindWord is a Universal MIDI Packet buffer of 32-bit words.
	KindWord Kind = 0
	// KindByte is a legacy MIDI 1.0 byte stream buffer.
	KindByte Kind = 1
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWord:
		return "WORD"
	case KindByte:
		return "BYTE"
	default:
		return "UNKNOWN"
	}
}

// Bits returns the width of one unit.
func (k Kind) Bits() int {
	if k == KindByte {
		return 8
	}
	return 32
}

// View is read access to a sequence of units. Units are returned widened to
// uint32 regardless of kind.
type View interface {
	Kind() Kind
	Len() int
	Unit(i int) uint32
}

// MutableView adds unit writes. SetUnit truncates u to the unit width.
type MutableView interface {
	View
	SetUnit(i int, u uint32)
}

// Growable is a MutableView that can extend itself with zeroed units.
type Growable interface {
	MutableView
	// EnsureCapacity grows the buffer to at least n units. It never
	// truncates.
	EnsureCapacity(n int)
}

// Words is a fixed-length word buffer over a caller-owned slice.
type Words []uint32

func (w Words) Kind() Kind              { return KindWord }
func (w Words) Len() int                { return len(w) }
func (w Words) Unit(i int) uint32       { return w[i] }
func (w Words) SetUnit(i int, u uint32) { w[i] = u }

// Bytes is a fixed-length byte buffer over a caller-owned slice.
type Bytes []byte

func (b Bytes) Kind() Kind              { return KindByte }
func (b Bytes) Len() int                { return len(b) }
func (b Bytes) Unit(i int) uint32       { return uint32(b[i]) }
func (b Bytes) SetUnit(i int, u uint32) { b[i] = byte(u) }

// WordBuffer is an owned, growable word buffer. The zero value is empty and
// ready to use.
type WordBuffer struct {
	words []uint32
}

// NewWordBuffer returns a buffer holding a copy of words.
func NewWordBuffer(words ...uint32) *WordBuffer {
	return &WordBuffer{words: append([]uint32(nil), words...)}
}

func (b *WordBuffer) Kind() Kind              { return KindWord }
func (b *WordBuffer) Len() int                { return len(b.words) }
func (b *WordBuffer) Unit(i int) uint32       { return b.words[i] }
func (b *WordBuffer) SetUnit(i int, u uint32) { b.words[i] = u }

// EnsureCapacity appends zero words until the buffer holds n.
func (b *WordBuffer) EnsureCapacity(n int) {
	for len(b.words) < n {
		b.words = append(b.words, 0)
	}
}

// Words returns the underlying slice.
func (b *WordBuffer) Words() []uint32 { return b.words }

// ByteBuffer is an owned, growable byte buffer.
type ByteBuffer struct {
	bytes []byte
}

// NewByteBuffer returns a buffer holding a copy of data.
func NewByteBuffer(data ...byte) *ByteBuffer {
	return &ByteBuffer{bytes: append([]byte(nil), data...)}
}

func (b *ByteBuffer) Kind() Kind              { return KindByte }
func (b *ByteBuffer) Len() int                { return len(b.bytes) }
func (b *ByteBuffer) Unit(i int) uint32       { return uint32(b.bytes[i]) }
func (b *ByteBuffer) SetUnit(i int, u uint32) { b.bytes[i] = byte(u) }

// EnsureCapacity appends zero bytes until the buffer holds n.
func (b *ByteBuffer) EnsureCapacity(n int) {
	for len(b.bytes) < n {
		b.bytes = append(b.bytes, 0)
	}
}

// Bytes returns the underlying slice.
func (b *ByteBuffer) Bytes() []byte { return b.bytes }

type readOnly struct{ v View }

func (r readOnly) Kind() Kind        { return r.v.Kind() }
func (r readOnly) Len() int          { return r.v.Len() }
func (r readOnly) Unit(i int) uint32 { return r.v.Unit(i) }

// ReadOnly hides any mutating methods of v, so a parsed message can be handed
// out without exposing its buffer for writes through a type assertion.
func ReadOnly(v View) View {
	if r, ok := v.(readOnly); ok {
		return r
	}
	return readOnly{v: v}
}

// Compile-time interface satisfaction checks.
var (
	_ MutableView = Words(nil)
	_ MutableView = Bytes(nil)
	_ Growable    = (*WordBuffer)(nil)
	_ Growable    = (*ByteBuffer)(nil)
)
