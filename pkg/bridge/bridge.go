// Package bridge converts between decoded messages and gomidi's byte-form
// midi.Message, so UMP traffic can be fed to MIDI 1.0 ports and back.
package bridge

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/ump"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

// ErrNoByteForm is returned for messages that only exist as UMP words.
var ErrNoByteForm = errors.New("message has no MIDI 1.0 byte form")

var groupSchema = wire.Ump(0x0F00_0000)

// ToMIDI renders m in MIDI 1.0 byte form. The group and any
// jitter-reduction prefix are dropped.
func ToMIDI(m wire.Decoded) (midi.Message, error) {
	if !m.Shape().Supports(wire.KindByte) {
		return nil, fmt.Errorf("%s: %w", m.Shape().Name, ErrNoByteForm)
	}
	out, err := wire.Transcode(m.Raw(), &wire.ByteBuffer{})
	if err != nil {
		return nil, err
	}
	return midi.Message(out.Bytes()), nil
}

// FromMIDI decodes a MIDI 1.0 byte-form message.
func FromMIDI(msg midi.Message) (wire.Decoded, error) {
	return ump.ParseBytes(msg.Bytes())
}

// ToUMP decodes msg and re-encodes it as a UMP word-form message addressed
// to group.
func ToUMP(msg midi.Message, group numeric.U4) (wire.Decoded, error) {
	m, err := FromMIDI(msg)
	if err != nil {
		return nil, err
	}
	buf := &wire.WordBuffer{}
	if _, err := wire.Transcode(m.Raw(), buf); err != nil {
		return nil, err
	}
	if err := groupSchema.Write(buf, 0, uint64(group)); err != nil {
		return nil, fmt.Errorf("group: %w", err)
	}
	return ump.Parse(buf)
}

// Sender delivers byte-form messages, as a gomidi output port's send
// function does.
type Sender func(midi.Message) error

// Forward converts each message to byte form and passes it to send. Word-only
// messages are skipped and counted.
func Forward(send Sender, msgs ...wire.Decoded) (skipped int, err error) {
	for _, m := range msgs {
		out, err := ToMIDI(m)
		if errors.Is(err, ErrNoByteForm) {
			skipped++
			continue
		}
		if err != nil {
			return skipped, err
		}
		if err := send(out); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}
