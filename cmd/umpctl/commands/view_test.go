package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ump-protocol/ump-go/pkg/log"
)

func TestFormatPacketEvent(t *testing.T) {
	ts := time.Date(2026, 3, 2, 9, 30, 0, 123456000, time.UTC)
	event := log.Event{
		Timestamp: ts,
		SessionID: "abc12345-6789-0123-4567-890abcdef012",
		Index:     4,
		Layer:     log.LayerStream,
		Category:  log.CategoryPacket,
		Source:    "track.ump",
		Packet:    &log.PacketEvent{Words: []uint32{0x4090_3C00, 0xC000_0000}, Size: 2},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	for _, want := range []string{
		"2026-03-02T09:30:00.123456Z",
		"[session:abc12345]",
		"#4 DECODE STREAM Packet",
		"Source: track.ump",
		"Size: 2 words",
		"Units: 40903C00 C0000000",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "truncated") {
		t.Errorf("complete packet marked truncated: %s", output)
	}
}

func TestFormatTruncatedBytePacket(t *testing.T) {
	event := log.Event{
		Layer:    log.LayerStream,
		Category: log.CategoryPacket,
		Packet:   &log.PacketEvent{Bytes: []byte{0x90, 0x3C}, Size: 2, Truncated: true},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "Size: 2 bytes") {
		t.Errorf("expected byte size, got: %s", output)
	}
	if !strings.Contains(output, "Units: 90 3C (truncated)") {
		t.Errorf("expected truncated units, got: %s", output)
	}
}

func TestFormatMessageEvent(t *testing.T) {
	event := log.Event{
		Layer:    log.LayerDispatch,
		Category: log.CategoryMessage,
		Message: &log.MessageEvent{
			Family: "midi2 channel voice",
			Shape:  "NoteOn",
			Prefix: true,
			Fields: []log.FieldEvent{{Name: "note", Value: "60"}, {Name: "attribute", Value: "absent"}},
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	for _, want := range []string{"DISPATCH NoteOn", "Family: midi2 channel voice", "Prefix: yes", "note: 60", "attribute: absent"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestFormatErrorEvent(t *testing.T) {
	event := log.Event{
		Layer:    log.LayerShape,
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   log.LayerShape,
			Message: "KeySignature.sharps/flats: invalid field value",
			Kind:    "invalid field value",
			Context: "KeySignature.sharps/flats",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	for _, want := range []string{"SHAPE Error", "Kind: invalid field value", "Context: KeySignature.sharps/flats"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "Family:") {
		t.Errorf("unexpected family line: %s", output)
	}
}

func TestShortenSessionID(t *testing.T) {
	if got := shortenSessionID("abc12345-6789"); got != "abc12345" {
		t.Errorf("got %q", got)
	}
	if got := shortenSessionID("abc"); got != "abc" {
		t.Errorf("got %q", got)
	}
}

func TestParseFlags(t *testing.T) {
	layer, err := ParseLayerFlag("Dispatch")
	if err != nil || layer != log.LayerDispatch {
		t.Errorf("ParseLayerFlag: got %v, %v", layer, err)
	}
	if _, err := ParseLayerFlag("wire"); err == nil {
		t.Error("expected error for unknown layer")
	}

	dir, err := ParseDirectionFlag("ENCODE")
	if err != nil || dir != log.DirectionEncode {
		t.Errorf("ParseDirectionFlag: got %v, %v", dir, err)
	}
	if _, err := ParseDirectionFlag("in"); err == nil {
		t.Error("expected error for unknown direction")
	}

	cat, err := ParseCategoryFlag("packet")
	if err != nil || cat != log.CategoryPacket {
		t.Errorf("ParseCategoryFlag: got %v, %v", cat, err)
	}
	if _, err := ParseCategoryFlag("state"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRunViewFilters(t *testing.T) {
	ts := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	path := createTestLogFile(t, sampleSession(ts))

	category := log.CategoryError
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &category}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "Error") || strings.Contains(output, "Packet") {
		t.Errorf("expected only the error event, got: %s", output)
	}

	buf.Reset()
	if err := RunView(path, ViewFilter{Shape: "NoteOn"}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if got := strings.Count(buf.String(), "[session:"); got != 1 {
		t.Errorf("expected 1 event, got %d: %s", got, buf.String())
	}
}

func TestRunViewMissingFile(t *testing.T) {
	err := RunView("/nonexistent/file.ulog", ViewFilter{}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected error for missing file")
	}
}
