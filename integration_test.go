package ump_test

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	"github.com/ump-protocol/ump-go/pkg/bridge"
	"github.com/ump-protocol/ump-go/pkg/inspect"
	"github.com/ump-protocol/ump-go/pkg/log"
	"github.com/ump-protocol/ump-go/pkg/message/flexdata"
	"github.com/ump-protocol/ump-go/pkg/message/midi1cv"
	"github.com/ump-protocol/ump-go/pkg/message/midi2cv"
	"github.com/ump-protocol/ump-go/pkg/message/utility"
	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/ump"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

var chordWords = []uint32{0x0020_1234, 0xD70B_0006, 0xF703_3519, 0x4B00_0000, 0x110A_0020}

func buildStream(t *testing.T) []uint32 {
	t.Helper()

	noteOn2 := &wire.WordBuffer{}
	_, err := midi2cv.NewNoteOnBuilder(noteOn2, wire.WithPrefix()).
		JitterReduction(utility.Clock(0x42)).
		Group(numeric.NewU4(2)).
		Channel(numeric.NewU4(3)).
		Note(numeric.NewU7(60)).
		Velocity(0xFFFF).
		Finish()
	require.NoError(t, err)

	noteOn1 := &wire.WordBuffer{}
	_, err = midi1cv.NewNoteOnBuilder(noteOn1).
		Group(numeric.NewU4(1)).
		Note(numeric.NewU7(64)).
		Velocity(numeric.NewU7(100)).
		Finish()
	require.NoError(t, err)

	var stream []uint32
	stream = append(stream, noteOn2.Words()...)
	stream = append(stream, chordWords...)
	stream = append(stream, noteOn1.Words()...)
	return append(stream, 0x4090_0000) // first word of a truncated packet
}

// TestE2E_DecodeStreamWithLog decodes a built stream and reads the codec log
// it produced back from disk.
func TestE2E_DecodeStreamWithLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "e2e.ulog")
	logger, err := log.NewFileLogger(path)
	require.NoError(t, err)

	dec := ump.NewDecoder(buildStream(t), ump.WithLogger(logger), ump.WithSource("e2e"))

	var decoded []wire.Decoded
	var streamErr error
	for {
		m, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			streamErr = err
			continue
		}
		decoded = append(decoded, m)
	}
	require.NoError(t, logger.Close())

	require.Len(t, decoded, 3)
	on2, ok := decoded[0].(midi2cv.NoteOn)
	require.True(t, ok, "got %T", decoded[0])
	assert.Equal(t, utility.Clock(0x42), on2.JitterReduction())
	assert.Equal(t, numeric.U4(3), on2.Channel())
	assert.Equal(t, uint16(0xFFFF), on2.Velocity())
	assert.Nil(t, on2.Attribute())

	chord, ok := decoded[1].(flexdata.SetChordName)
	require.True(t, ok, "got %T", decoded[1])
	assert.Equal(t, flexdata.TonicG, chord.Tonic())
	assert.Equal(t, chordWords, chord.Words())

	on1, ok := decoded[2].(midi1cv.NoteOn)
	require.True(t, ok, "got %T", decoded[2])
	assert.False(t, on1.HasPrefix())
	assert.Equal(t, numeric.U7(64), on1.Note())

	assert.ErrorIs(t, streamErr, wire.ErrBufferTooShort)

	messages := readLog(t, path, log.Filter{Category: ptr(log.CategoryMessage)})
	require.Len(t, messages, 3)
	assert.Equal(t, "SetChordName", messages[1].Message.Shape)
	assert.True(t, messages[1].Message.Prefix)
	for _, e := range messages {
		assert.Equal(t, dec.SessionID(), e.SessionID)
		assert.Equal(t, "e2e", e.Source)
	}

	errs := readLog(t, path, log.Filter{Category: ptr(log.CategoryError)})
	require.Len(t, errs, 1)
	assert.Equal(t, log.LayerStream, errs[0].Error.Layer)
	assert.Equal(t, wire.ErrBufferTooShort.Error(), errs[0].Error.Kind)

	packets := readLog(t, path, log.Filter{Layer: ptr(log.LayerStream), Category: ptr(log.CategoryPacket)})
	require.Len(t, packets, 4)
	assert.True(t, packets[3].Packet.Truncated)
	assert.Equal(t, []uint32{0x4090_0000}, packets[3].Packet.Words)
}

// TestE2E_LegacyBridge converts gomidi byte messages to UMP and back.
func TestE2E_LegacyBridge(t *testing.T) {
	msgs := []midi.Message{
		midi.NoteOn(1, 60, 100),
		midi.ControlChange(2, 7, 90),
		midi.ProgramChange(0, 5),
		midi.Pitchbend(3, 1000),
	}

	var words []uint32
	for _, msg := range msgs {
		m, err := bridge.ToUMP(msg, numeric.NewU4(5))
		require.NoError(t, err, msg.String())
		w := m.Words()
		require.NotEmpty(t, w)
		assert.Equal(t, uint32(0x25), w[0]>>24, "packet type 2, group 5")
		words = append(words, w...)
	}

	all, err := ump.NewDecoder(words).All()
	require.NoError(t, err)
	require.Len(t, all, len(msgs))

	var sent []midi.Message
	skipped, err := bridge.Forward(func(msg midi.Message) error {
		sent = append(sent, msg)
		return nil
	}, all...)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, sent, len(msgs))
	for i := range msgs {
		assert.Equal(t, msgs[i].Bytes(), sent[i].Bytes(), msgs[i].String())
	}
}

// TestE2E_InspectChordName renders the chord name scenario as a person would
// see it.
func TestE2E_InspectChordName(t *testing.T) {
	reports := inspect.NewInspector(nil, "").InspectStream(chordWords)
	require.Len(t, reports, 1)
	r := reports[0]
	require.Nil(t, r.Error)
	assert.Equal(t, "SetChordName", r.Shape)
	assert.True(t, r.Prefix)

	text := inspect.NewFormatter().FormatReport(r)
	assert.True(t, strings.HasPrefix(text, "SetChordName (flex data) [00201234 D70B0006 F7033519 4B000000 110A0020]"), text)

	out, err := inspect.FormatYAML(reports)
	require.NoError(t, err)
	assert.Contains(t, out, "shape: SetChordName")
}

func readLog(t *testing.T, path string, filter log.Filter) []log.Event {
	t.Helper()
	r, err := log.NewFilteredReader(path, filter)
	require.NoError(t, err)
	defer r.Close()

	var out []log.Event
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, e)
	}
}

func ptr[T any](v T) *T { return &v }
