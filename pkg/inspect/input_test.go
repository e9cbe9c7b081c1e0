package inspect

import (
	"errors"
	"testing"

	"github.com/ump-protocol/ump-go/pkg/wire"
)

func TestParseWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  wire.Words
	}{
		{"prefixed hex", "0x4090_3C00 0xC000_0000", wire.Words{0x4090_3C00, 0xC000_0000}},
		{"bare hex", "40903C00,C0000000", wire.Words{0x4090_3C00, 0xC000_0000}},
		{"brackets", "[0x20933C64]", wire.Words{0x2093_3C64}},
		{"decimal", "16 255", wire.Words{16, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWords(tt.input)
			if err != nil {
				t.Fatalf("ParseWords(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWords(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("word %d = %#x, want %#x", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	got, err := ParseBytes("90 3C 0x7F 12")
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	want := wire.Bytes{0x90, 0x3C, 0x7F, 0x12}
	if string(got) != string(want) {
		t.Errorf("ParseBytes = %x, want %x", got, want)
	}
}

func TestParseInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
		input string
		want  error
	}{
		{"empty words", func(s string) error { _, err := ParseWords(s); return err }, "  ", ErrEmptyInput},
		{"bad word", func(s string) error { _, err := ParseWords(s); return err }, "0xZZ", ErrInvalidNumber},
		{"word too wide", func(s string) error { _, err := ParseWords(s); return err }, "0x1_0000_0000", ErrInvalidNumber},
		{"byte too wide", func(s string) error { _, err := ParseBytes(s); return err }, "0x100", ErrInvalidNumber},
		{"empty bytes", func(s string) error { _, err := ParseBytes(s); return err }, "", ErrEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.parse(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFormatUnits(t *testing.T) {
	if got := FormatUnits(wire.Words{0x0010_0042, 0x2093_3C64}); got != "00100042 20933C64" {
		t.Errorf("words: got %q", got)
	}
	if got := FormatUnits(wire.Bytes{0x93, 0x3C, 0x64}); got != "93 3C 64" {
		t.Errorf("bytes: got %q", got)
	}
	if got := FormatUnits(wire.Words{}); got != "" {
		t.Errorf("empty: got %q", got)
	}
}
