package numeric

import (
	"errors"
	"testing"
)

func TestNewTruncates(t *testing.T) {
	if got := NewU4(0xAB); got != 0x0B {
		t.Errorf("NewU4(0xAB) = %#x, want 0x0B", got)
	}
	if got := NewU7(0xFF); got != 0x7F {
		t.Errorf("NewU7(0xFF) = %#x, want 0x7F", got)
	}
	if got := NewU14(0xFFFF); got != 0x3FFF {
		t.Errorf("NewU14(0xFFFF) = %#x, want 0x3FFF", got)
	}
	if got := NewU20(0x12345678); got != 0x45678 {
		t.Errorf("NewU20(0x12345678) = %#x, want 0x45678", got)
	}
}

func TestTryRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"u4", func() error { _, err := TryU4(0x10); return err }},
		{"u7", func() error { _, err := TryU7(0x80); return err }},
		{"u14", func() error { _, err := TryU14(0x4000); return err }},
		{"u20", func() error { _, err := TryU20(0x10_0000); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange, got %v", err)
			}
		})
	}
}

func TestTryAcceptsMax(t *testing.T) {
	if v, err := TryU4(0x0F); err != nil || v != MaxU4 {
		t.Errorf("TryU4(0x0F) = %v, %v", v, err)
	}
	if v, err := TryU7(0x7F); err != nil || v != MaxU7 {
		t.Errorf("TryU7(0x7F) = %v, %v", v, err)
	}
	if v, err := TryU14(0x3FFF); err != nil || v != MaxU14 {
		t.Errorf("TryU14(0x3FFF) = %v, %v", v, err)
	}
	if v, err := TryU20(0xF_FFFF); err != nil || v != MaxU20 {
		t.Errorf("TryU20(0xFFFFF) = %v, %v", v, err)
	}
}

func TestU14Bytes(t *testing.T) {
	v := NewU14(0x2A55)
	lsb, msb := v.Bytes()
	if lsb != 0x55 || msb != 0x54 {
		t.Fatalf("Bytes() = %#x, %#x", lsb, msb)
	}
	if got := U14FromBytes(lsb, msb); got != v {
		t.Errorf("U14FromBytes = %#x, want %#x", got, v)
	}
}
