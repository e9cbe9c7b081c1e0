package ump

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ump-protocol/ump-go/pkg/log"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// Decoder decodes a word stream one packet at a time. A jitter-reduction
// word directly in front of a non-utility packet is decoded as that
// packet's prefix. Each packet is reported to the configured Logger as a
// stream event followed by a message or error event.
type Decoder struct {
	packets  []wire.Words
	pos      int
	last     wire.View
	splitErr error

	// remainder is the trailing partial packet, if any.
	remainder wire.Words

	sessionID string
	source    string
	logger    log.Logger
	now       func() time.Time
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithLogger sets the codec event logger. The default discards events.
func WithLogger(l log.Logger) DecoderOption {
	return func(d *Decoder) { d.logger = log.OrNoop(l) }
}

// WithSource names the input in log events.
func WithSource(source string) DecoderOption {
	return func(d *Decoder) { d.source = source }
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) DecoderOption {
	return func(d *Decoder) { d.sessionID = id }
}

// NewDecoder returns a Decoder over words. The words are not copied.
func NewDecoder(words []uint32, opts ...DecoderOption) *Decoder {
	packets, err := Split(words)
	consumed := 0
	for _, p := range packets {
		consumed += len(p)
	}
	d := &Decoder{
		packets:   Attach(packets),
		splitErr:  err,
		remainder: wire.Words(words[consumed:]),
		sessionID: uuid.NewString(),
		logger:    log.NoopLogger{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SessionID returns the id stamped on every event of this decoder.
func (d *Decoder) SessionID() string {
	return d.sessionID
}

// Next decodes the next packet. It returns io.EOF once the stream is
// exhausted. A packet that fails to decode is skipped: its error is
// returned and the following call moves on. A trailing partial packet is
// reported once as ErrBufferTooShort before io.EOF.
func (d *Decoder) Next() (wire.Decoded, error) {
	if d.pos >= len(d.packets) {
		if err := d.splitErr; err != nil {
			d.splitErr = nil
			d.pos++
			d.last = d.remainder
			packet := log.NewPacketEvent(d.remainder)
			packet.Truncated = true
			d.log(log.Event{Layer: log.LayerStream, Category: log.CategoryPacket, Packet: packet})
			d.logError(log.LayerStream, err)
			return nil, err
		}
		return nil, io.EOF
	}
	p := d.packets[d.pos]
	d.pos++
	d.last = p

	d.log(log.Event{
		Layer:    log.LayerStream,
		Category: log.CategoryPacket,
		Packet:   log.NewPacketEvent(p),
	})

	m, err := Parse(p)
	if err != nil {
		d.logError(errorLayer(err), err)
		return nil, err
	}
	d.log(log.Event{
		Layer:    log.LayerDispatch,
		Category: log.CategoryMessage,
		Message:  log.NewMessageEvent(FamilyOf(m), m),
	})
	return m, nil
}

// Last returns the units of the packet the previous Next call consumed,
// or the trailing partial packet after a split error.
func (d *Decoder) Last() wire.View {
	if d.last == nil {
		return wire.Words{}
	}
	return wire.ReadOnly(d.last)
}

// All decodes the rest of the stream, stopping at the first error.
func (d *Decoder) All() ([]wire.Decoded, error) {
	var out []wire.Decoded
	for {
		m, err := d.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
}

func (d *Decoder) logError(layer log.Layer, err error) {
	d.log(log.Event{
		Layer:    layer,
		Category: log.CategoryError,
		Error:    log.NewErrorEvent(layer, err),
	})
}

func (d *Decoder) log(e log.Event) {
	e.Timestamp = d.now()
	e.SessionID = d.sessionID
	e.Direction = log.DirectionDecode
	e.Source = d.source
	e.Index = d.pos - 1
	d.logger.Log(e)
}

// errorLayer attributes an error to dispatch when no shape was selected and
// to the shape layer otherwise.
func errorLayer(err error) log.Layer {
	switch wire.KindOf(err) {
	case wire.ErrUnknownVariant:
		return log.LayerDispatch
	default:
		return log.LayerShape
	}
}
