package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ump-protocol/ump-go/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ulog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func sampleSession(ts time.Time) []log.Event {
	return []log.Event{
		{
			Timestamp: ts,
			SessionID: "abc12345-6789-0123-4567-890abcdef012",
			Layer:     log.LayerStream,
			Category:  log.CategoryPacket,
			Source:    "track.ump",
			Packet:    &log.PacketEvent{Words: []uint32{0x2090_3C7F}, Size: 1},
		},
		{
			Timestamp: ts.Add(time.Millisecond),
			SessionID: "abc12345-6789-0123-4567-890abcdef012",
			Layer:     log.LayerDispatch,
			Category:  log.CategoryMessage,
			Message: &log.MessageEvent{
				Family: "midi1 channel voice",
				Shape:  "NoteOn",
				Fields: []log.FieldEvent{{Name: "note", Value: "60"}, {Name: "velocity", Value: "127"}},
			},
		},
		{
			Timestamp: ts.Add(2 * time.Millisecond),
			SessionID: "abc12345-6789-0123-4567-890abcdef012",
			Index:     1,
			Layer:     log.LayerDispatch,
			Category:  log.CategoryError,
			Error: &log.ErrorEventData{
				Layer:   log.LayerDispatch,
				Message: "flex data: unknown variant",
				Kind:    "unknown variant",
				Family:  "flex data",
				Level:   3,
			},
		},
	}
}

func TestExportToJSONL(t *testing.T) {
	ts := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	path := createTestLogFile(t, sampleSession(ts))
	outPath := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	msg, ok := decoded["Message"].(map[string]any)
	if !ok {
		t.Fatalf("expected Message object, got %v", decoded["Message"])
	}
	if msg["Shape"] != "NoteOn" {
		t.Errorf("expected NoteOn shape, got %v", msg["Shape"])
	}
}

func TestExportToCSV(t *testing.T) {
	ts := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	path := createTestLogFile(t, sampleSession(ts))
	outPath := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "session_id" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][8] != "20903C7F" {
		t.Errorf("expected packet units, got %q", rows[1][8])
	}
	if rows[2][6] != "midi1 channel voice" || rows[2][7] != "NoteOn" {
		t.Errorf("unexpected message row: %v", rows[2])
	}
	if rows[3][2] != "1" || rows[3][9] != "flex data: unknown variant" {
		t.Errorf("unexpected error row: %v", rows[3])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, nil)
	err := RunExport(path, "xml", "")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
