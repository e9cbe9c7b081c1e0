package bridge_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	"github.com/ump-protocol/ump-go/pkg/bridge"
	"github.com/ump-protocol/ump-go/pkg/message/midi1cv"
	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/ump"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

func TestToMIDI(t *testing.T) {
	tests := []struct {
		name  string
		words wire.Words
		want  midi.Message
	}{
		{"note on", wire.Words{0x2593_3C64}, midi.NoteOn(3, 60, 100)},
		{"note off", wire.Words{0x2080_4000}, midi.NoteOff(0, 64)},
		{"control change", wire.Words{0x21B2_0740}, midi.ControlChange(2, 7, 64)},
		{"program change", wire.Words{0x2FCA_0500}, midi.ProgramChange(10, 5)},
		{"prefixed", wire.Words{0x0010_0001, 0x2093_3C64}, midi.NoteOn(3, 60, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ump.Parse(tt.words)
			require.NoError(t, err)
			got, err := bridge.ToMIDI(m)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Bytes(), got.Bytes())
		})
	}
}

func TestToMIDIWordOnly(t *testing.T) {
	m, err := ump.Parse(wire.Words{0x4090_3C00, 0xC000_0000})
	require.NoError(t, err)
	_, err = bridge.ToMIDI(m)
	assert.ErrorIs(t, err, bridge.ErrNoByteForm)
}

func TestFromMIDI(t *testing.T) {
	m, err := bridge.FromMIDI(midi.NoteOn(9, 36, 127))
	require.NoError(t, err)
	on, ok := m.(midi1cv.NoteOn)
	require.True(t, ok)
	assert.Equal(t, numeric.U4(9), on.Channel())
	assert.Equal(t, numeric.U7(36), on.Note())
	assert.Equal(t, numeric.U7(127), on.Velocity())

	_, err = bridge.FromMIDI(midi.Message{0x24})
	assert.ErrorIs(t, err, wire.ErrUnknownVariant)
}

func TestToUMP(t *testing.T) {
	m, err := bridge.ToUMP(midi.ControlChange(2, 7, 64), numeric.NewU4(0xB))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x2BB2_0740}, m.Words())
	cc, ok := m.(midi1cv.ControlChange)
	require.True(t, ok)
	assert.Equal(t, numeric.U4(0xB), cc.Group())

	_, err = bridge.ToUMP(midi.NoteOn(0, 1, 1), numeric.U4(0x10))
	assert.ErrorIs(t, err, wire.ErrInvalidFieldValue)
}

func TestForward(t *testing.T) {
	var sent []midi.Message
	send := func(msg midi.Message) error {
		sent = append(sent, msg)
		return nil
	}

	dec := ump.NewDecoder([]uint32{
		0x2093_3C64,
		0x4090_3C00, 0xC000_0000,
		0x10F8_0000,
	})
	msgs, err := dec.All()
	require.NoError(t, err)

	skipped, err := bridge.Forward(send, msgs...)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, sent, 2)
	assert.Equal(t, midi.NoteOn(3, 60, 100).Bytes(), sent[0].Bytes())
	assert.Equal(t, []byte{0xF8}, sent[1].Bytes())
}

func TestForwardStopsOnSendError(t *testing.T) {
	boom := errors.New("port closed")
	m, err := ump.Parse(wire.Words{0x2093_3C64})
	require.NoError(t, err)

	_, err = bridge.Forward(func(midi.Message) error { return boom }, m, m)
	assert.ErrorIs(t, err, boom)
}
