// Package wire is the bit-field codec engine behind every UMP message shape.
//
// A message is a short sequence of units: 32-bit words for Universal MIDI
// Packets, or bytes for the legacy MIDI 1.0 stream form. Each field of a
// message is declared once as a Schema (which bits of which units hold it)
// plus a Codec (how the raw integer maps to a typed value). A Shape binds a
// list of such fields to one concrete layout and provides Parse and a Builder.
//
// # Bit Numbering
//
// Bits are numbered big-endian within a unit: bit 31 is the most significant
// bit of a word, bit 7 the most significant bit of a byte. Masks are written
// the way MIDI 2.0 packet diagrams draw them, e.g. 0x00F0_0000 for the status
// nibble of word 0.
//
// # Jitter Reduction Prefix
//
// Shapes that accept a prefix may be preceded by one utility word carrying a
// jitter-reduction clock or timestamp. The prefix offset (0 or 1) is resolved
// once per Parse or NewBuilder and added to every field's unit index, so
// schemas are always written relative to the message's own first word.
//
// # Errors
//
// Every failure is one of four kinds, testable with errors.Is:
//   - ErrBufferTooShort: the buffer cannot hold the message (*SizeError)
//   - ErrInvalidDiscriminant: a fixed code does not match (*DiscriminantError)
//   - ErrInvalidFieldValue: a field holds no valid value (*FieldError)
//   - ErrUnknownVariant: dispatch found no shape for a code (*VariantError)
package wire
