package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ulog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return read
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
}

func sampleEvents(base time.Time) []Event {
	return []Event{
		{Timestamp: base, SessionID: "s-A", Direction: DirectionDecode, Layer: LayerStream, Category: CategoryPacket,
			Packet: &PacketEvent{Words: []uint32{0x2093_3C64}, Size: 1}},
		{Timestamp: base.Add(time.Second), SessionID: "s-A", Direction: DirectionDecode, Layer: LayerDispatch, Category: CategoryMessage,
			Message: &MessageEvent{Family: "midi1 channel voice", Shape: "NoteOn"}},
		{Timestamp: base.Add(2 * time.Second), SessionID: "s-B", Direction: DirectionEncode, Layer: LayerShape, Category: CategoryMessage,
			Message: &MessageEvent{Family: "flex data", Shape: "SetTempo"}},
		{Timestamp: base.Add(3 * time.Second), SessionID: "s-B", Direction: DirectionDecode, Layer: LayerDispatch, Category: CategoryError,
			Error: &ErrorEventData{Layer: LayerDispatch, Message: "bank", Family: "flex data", Level: 2}},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	path := createTestLogFile(t, sampleEvents(time.Now()))

	read := readAll(t, path, Filter{})
	if len(read) != 4 {
		t.Fatalf("got %d events, want 4", len(read))
	}
	if read[0].Packet == nil {
		t.Error("first event has no packet")
	}
	if read[3].Error == nil || read[3].Error.Level != 2 {
		t.Errorf("last event error = %+v", read[3].Error)
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Now()
	path := createTestLogFile(t, sampleEvents(base))

	decode := DirectionDecode
	dispatch := LayerDispatch
	errCat := CategoryError
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"session", Filter{SessionID: "s-B"}, 2},
		{"direction", Filter{Direction: &decode}, 3},
		{"layer", Filter{Layer: &dispatch}, 2},
		{"category", Filter{Category: &errCat}, 1},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"family", Filter{Family: "flex data"}, 2},
		{"shape", Filter{Shape: "NoteOn"}, 1},
		{"combined", Filter{SessionID: "s-B", Family: "flex data", Category: &errCat}, 1},
		{"no match", Filter{SessionID: "s-C"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(readAll(t, path, tt.filter)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.ulog")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	enc := NewEncoder(f)
	for _, e := range sampleEvents(time.Now()) {
		if err := enc.Encode(e); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}
	f.Close()

	if got := len(readAll(t, path, Filter{})); got != 4 {
		t.Errorf("got %d events, want 4", got)
	}
}
