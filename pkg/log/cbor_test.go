package log

import (
	"bufio"
	"bytes"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp: ts,
		SessionID: "abc12345-def6-7890-abcd-ef1234567890",
		Direction: DirectionEncode,
		Layer:     LayerShape,
		Category:  CategoryMessage,
		Source:    "capture.bin",
		Index:     12,
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.SessionID != original.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, original.SessionID)
	}
	if decoded.Direction != original.Direction {
		t.Errorf("Direction: got %v, want %v", decoded.Direction, original.Direction)
	}
	if decoded.Layer != original.Layer {
		t.Errorf("Layer: got %v, want %v", decoded.Layer, original.Layer)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category: got %v, want %v", decoded.Category, original.Category)
	}
	if decoded.Source != original.Source {
		t.Errorf("Source: got %q, want %q", decoded.Source, original.Source)
	}
	if decoded.Index != original.Index {
		t.Errorf("Index: got %d, want %d", decoded.Index, original.Index)
	}
}

func TestPacketEventCBORRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		packet *PacketEvent
	}{
		{"words", &PacketEvent{Words: []uint32{0x0010_0042, 0x4294_3C00, 0xFFFF_0000}, Size: 3}},
		{"bytes", &PacketEvent{Bytes: []byte{0x93, 0x3C}, Size: 2, Truncated: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(Event{Timestamp: time.Now(), Category: CategoryPacket, Packet: tt.packet})
			if err != nil {
				t.Fatalf("EncodeEvent failed: %v", err)
			}
			decoded, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent failed: %v", err)
			}
			p := decoded.Packet
			if p == nil {
				t.Fatal("Packet is nil")
			}
			if p.Size != tt.packet.Size || p.Truncated != tt.packet.Truncated {
				t.Errorf("Packet = %+v, want %+v", p, tt.packet)
			}
			if len(p.Words) != len(tt.packet.Words) {
				t.Fatalf("Words: got %d, want %d", len(p.Words), len(tt.packet.Words))
			}
			for i := range p.Words {
				if p.Words[i] != tt.packet.Words[i] {
					t.Errorf("Words[%d]: got %#x, want %#x", i, p.Words[i], tt.packet.Words[i])
				}
			}
			if string(p.Bytes) != string(tt.packet.Bytes) {
				t.Errorf("Bytes: got %x, want %x", p.Bytes, tt.packet.Bytes)
			}
		})
	}
}

func TestMessageEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		Category:  CategoryMessage,
		Message: &MessageEvent{
			Family: "midi2 channel voice",
			Shape:  "NoteOn",
			Prefix: true,
			Fields: []FieldEvent{
				{Name: "jitter reduction", Value: "clock(66)"},
				{Name: "note", Value: "60"},
				{Name: "attribute", Value: Absent},
			},
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	m := decoded.Message
	if m == nil {
		t.Fatal("Message is nil")
	}
	if m.Family != original.Message.Family || m.Shape != original.Message.Shape || !m.Prefix {
		t.Errorf("Message = %+v, want %+v", m, original.Message)
	}
	if len(m.Fields) != 3 {
		t.Fatalf("Fields: got %d, want 3", len(m.Fields))
	}
	for i, f := range m.Fields {
		if f != original.Message.Fields[i] {
			t.Errorf("Fields[%d]: got %+v, want %+v", i, f, original.Message.Fields[i])
		}
	}
}

func TestErrorEventCBORRoundTrip(t *testing.T) {
	original := &ErrorEventData{
		Layer:   LayerDispatch,
		Message: "flex data: unknown variant: bank 0x2 at level 2",
		Kind:    "unknown variant",
		Family:  "flex data",
		Level:   2,
	}

	data, err := EncodeEvent(Event{Timestamp: time.Now(), Category: CategoryError, Error: original})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.Error == nil {
		t.Fatal("Error is nil")
	}
	if *decoded.Error != *original {
		t.Errorf("Error: got %+v, want %+v", decoded.Error, original)
	}
}

func TestEventCBORUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{
		Timestamp: time.Now(),
		SessionID: "s",
		Packet:    &PacketEvent{Words: []uint32{1}, Size: 1},
	})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var raw map[any]any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for k := range raw {
		if _, ok := k.(uint64); !ok {
			t.Errorf("key %v has type %T, want uint64", k, k)
		}
	}
	if _, ok := raw[uint64(10)]; !ok {
		t.Error("packet payload missing at key 10")
	}
}

func TestFileMagicIsSequenceTag(t *testing.T) {
	want, err := logEncMode.Marshal(cbor.Tag{Number: fileMagicTag, Content: []byte("BOR")})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Equal(fileMagic, want) {
		t.Errorf("fileMagic = % X, want % X", fileMagic, want)
	}
}

func TestSkipHeader(t *testing.T) {
	event, err := EncodeEvent(Event{SessionID: "s"})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	tests := []struct {
		name  string
		input []byte
		found bool
	}{
		{"with header", append(append([]byte(nil), fileMagic...), event...), true},
		{"without header", event, false},
		{"empty", nil, false},
		{"short", fileMagic[:3], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(bytes.NewReader(tt.input))
			found, err := SkipHeader(r)
			if err != nil {
				t.Fatalf("SkipHeader failed: %v", err)
			}
			if found != tt.found {
				t.Errorf("found = %v, want %v", found, tt.found)
			}
			if len(tt.input) < len(event) {
				return
			}
			var e Event
			if err := NewDecoder(r).Decode(&e); err != nil {
				t.Fatalf("Decode after header failed: %v", err)
			}
			if e.SessionID != "s" {
				t.Errorf("SessionID = %q, want s", e.SessionID)
			}
		})
	}
}
