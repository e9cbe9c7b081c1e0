package log

import (
	"errors"
	"time"

	"github.com/ump-protocol/ump-go/pkg/wire"
)

// Event represents a codec log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the decoder or encoder run (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates whether units were parsed or built.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Source names the input, such as a file path or port name.
	Source string `cbor:"6,keyasint,omitempty"`

	// Index is the packet's position within the session.
	Index int `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Packet  *PacketEvent    `cbor:"10,keyasint,omitempty"` // Stream layer
	Message *MessageEvent   `cbor:"11,keyasint,omitempty"` // Decoded shape
	Error   *ErrorEventData `cbor:"12,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of conversion.
type Direction uint8

const (
	// DirectionDecode indicates units were parsed into a message.
	DirectionDecode Direction = 0
	// DirectionEncode indicates a message was built into units.
	DirectionEncode Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionDecode:
		return "DECODE"
	case DirectionEncode:
		return "ENCODE"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which codec layer captured the event.
type Layer uint8

const (
	// LayerStream is the packet splitting layer (raw units).
	LayerStream Layer = 0
	// LayerDispatch is the family classification layer.
	LayerDispatch Layer = 1
	// LayerShape is the per-shape field layer.
	LayerShape Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerStream:
		return "STREAM"
	case LayerDispatch:
		return "DISPATCH"
	case LayerShape:
		return "SHAPE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies log events.
type Category uint8

const (
	// CategoryPacket is a raw packet split from a stream.
	CategoryPacket Category = 0
	// CategoryMessage is a decoded or built message.
	CategoryMessage Category = 1
	// CategoryError is a codec error.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPacket:
		return "PACKET"
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// PacketEvent captures the raw units of one packet.
// Exactly one of Words and Bytes is set.
type PacketEvent struct {
	Words     []uint32 `cbor:"1,keyasint,omitempty"`
	Bytes     []byte   `cbor:"2,keyasint,omitempty"`
	Size      int      `cbor:"3,keyasint"`
	Truncated bool     `cbor:"4,keyasint,omitempty"`
}

// NewPacketEvent captures the units of v.
func NewPacketEvent(v wire.View) *PacketEvent {
	p := &PacketEvent{Size: v.Len()}
	if v.Kind() == wire.KindByte {
		p.Bytes = make([]byte, v.Len())
		for i := range p.Bytes {
			p.Bytes[i] = byte(v.Unit(i))
		}
		return p
	}
	p.Words = make([]uint32, v.Len())
	for i := range p.Words {
		p.Words[i] = v.Unit(i)
	}
	return p
}

// MessageEvent captures a decoded message.
type MessageEvent struct {
	Family string       `cbor:"1,keyasint"`
	Shape  string       `cbor:"2,keyasint"`
	Prefix bool         `cbor:"3,keyasint,omitempty"`
	Fields []FieldEvent `cbor:"4,keyasint,omitempty"`
}

// FieldEvent is one printed field value. Absent optional values print as
// "absent".
type FieldEvent struct {
	Name  string `cbor:"1,keyasint"`
	Value string `cbor:"2,keyasint"`
}

// NewMessageEvent captures m's shape and field values.
func NewMessageEvent(family string, m wire.Decoded) *MessageEvent {
	e := &MessageEvent{Family: family, Prefix: m.HasPrefix()}
	if s := m.Shape(); s != nil {
		e.Shape = s.Name
	}
	for _, f := range m.Fields() {
		e.Fields = append(e.Fields, FieldEvent{Name: f.Name, Value: FormatValue(f.Value)})
	}
	return e
}

// ErrorEventData captures an error at any layer.
type ErrorEventData struct {
	Layer   Layer  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`
	// Kind is one of the wire error kinds, or empty for non-codec errors.
	Kind    string `cbor:"3,keyasint,omitempty"`
	Family  string `cbor:"4,keyasint,omitempty"`
	Level   int    `cbor:"5,keyasint,omitempty"`
	Context string `cbor:"6,keyasint,omitempty"`
}

// NewErrorEvent classifies err. Dispatch failures record the family and
// level they were raised at.
func NewErrorEvent(layer Layer, err error) *ErrorEventData {
	e := &ErrorEventData{Layer: layer, Message: err.Error()}
	if kind := wire.KindOf(err); kind != nil {
		e.Kind = kind.Error()
	}
	var de *wire.DispatchError
	var ve *wire.VariantError
	switch {
	case errors.As(err, &de):
		e.Family, e.Level = de.Family, de.Level
	case errors.As(err, &ve):
		e.Family, e.Level = ve.Family, ve.Level
	}
	var fe *wire.FieldError
	if errors.As(err, &fe) {
		e.Context = fe.Shape + "." + fe.Field
	}
	return e
}
