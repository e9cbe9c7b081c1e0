package wire

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package and by the message
// families matches exactly one of these under errors.Is.
var (
	ErrBufferTooShort      = errors.New("buffer too short")
	ErrInvalidDiscriminant = errors.New("invalid discriminant")
	ErrInvalidFieldValue   = errors.New("invalid field value")
	ErrUnknownVariant      = errors.New("unknown variant")
)

// SizeError reports a buffer with fewer units than a message needs.
type SizeError struct {
	Shape string
	Need  int
	Have  int
}

func (e *SizeError) Error() string {
	if e.Shape == "" {
		return fmt.Sprintf("%v: need %d units, have %d", ErrBufferTooShort, e.Need, e.Have)
	}
	return fmt.Sprintf("%s: %v: need %d units, have %d", e.Shape, ErrBufferTooShort, e.Need, e.Have)
}

func (e *SizeError) Is(target error) bool { return target == ErrBufferTooShort }

// DiscriminantError reports a fixed code that does not match its shape.
type DiscriminantError struct {
	Shape string
	Name  string
	Want  uint64
	Got   uint64
}

func (e *DiscriminantError) Error() string {
	return fmt.Sprintf("%s: %v: %s is %#x, want %#x", e.Shape, ErrInvalidDiscriminant, e.Name, e.Got, e.Want)
}

func (e *DiscriminantError) Is(target error) bool { return target == ErrInvalidDiscriminant }

// FieldError reports a field whose bits do not decode to a valid value, or a
// value that cannot be encoded into its bits.
type FieldError struct {
	Shape string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Shape == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Shape, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func (e *FieldError) Is(target error) bool { return target == ErrInvalidFieldValue }

// VariantError reports a discriminant code that dispatch does not recognise.
// Level counts from 1 (packet type).
type VariantError struct {
	Family string
	Level  int
	Name   string
	Code   uint64
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%s: %v: unknown %s %#x at level %d", e.Family, ErrUnknownVariant, e.Name, e.Code, e.Level)
}

func (e *VariantError) Is(target error) bool { return target == ErrUnknownVariant }

// DispatchError wraps the parse failure of the shape dispatch selected.
type DispatchError struct {
	Family string
	Level  int
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s (level %d): %v", e.Family, e.Level, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// KindOf returns the taxonomy sentinel err matches, or nil if it matches none.
func KindOf(err error) error {
	for _, k := range []error{ErrBufferTooShort, ErrInvalidDiscriminant, ErrInvalidFieldValue, ErrUnknownVariant} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
