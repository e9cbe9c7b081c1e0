package wire

// UtilityPacketType is the packet type of utility messages, the only kind of
// word allowed in the prefix position.
const UtilityPacketType = 0x0

// PacketType returns the top nibble of a word.
func PacketType(word uint32) uint8 {
	return uint8(word >> 28)
}

// ResolveOffset returns 1 when v starts with a jitter-reduction prefix word
// for shape s, 0 otherwise. A prefix is recognised when the shape accepts
// one, v is word-form, and word 0 is a utility word while the shape itself
// is not a utility message.
func ResolveOffset(s *Shape, v View) int {
	if s.Prefix == nil {
		return 0
	}
	if s.PacketType == UtilityPacketType {
		return 0
	}
	return PrefixOffset(v)
}

// PrefixOffset returns 1 when v is word-form and starts with a utility word,
// which dispatch of a non-utility family treats as a prefix.
func PrefixOffset(v View) int {
	if v.Kind() != KindWord || v.Len() == 0 {
		return 0
	}
	if PacketType(v.Unit(0)) != UtilityPacketType {
		return 0
	}
	return 1
}

func buildOffset(s *Shape, buf View, cfg buildConfig) int {
	if s.Prefix == nil || buf.Kind() != KindWord {
		return 0
	}
	if cfg.prefix || buf.Len() == s.MinWords+1 {
		return 1
	}
	return 0
}

// FirstUnit returns the first unit of v after any prefix word, along with
// the prefix offset. It is the unit non-utility families dispatch on.
func FirstUnit(v View) (uint32, int, error) {
	offset := PrefixOffset(v)
	if v.Len() <= offset {
		return 0, offset, &SizeError{Need: offset + 1, Have: v.Len()}
	}
	return v.Unit(offset), offset, nil
}
