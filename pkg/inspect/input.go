// Package inspect renders decoded UMP packets for people.
//
// The inspect package offers a unified interface for:
//   - Parsing hex unit lists (e.g. "0x4090_3C00 0xC000_0000" or "90 3C 7F")
//   - Resolving family and shape names
//   - Decoding packets into Reports
//   - Formatting Reports as text or YAML
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ump-protocol/ump-go/pkg/wire"
)

// Input errors.
var (
	ErrEmptyInput    = errors.New("empty input")
	ErrInvalidNumber = errors.New("invalid unit value")
)

// ParseWords parses a whitespace or comma separated list of 32-bit words.
// Values may be hex with a 0x prefix or decimal; underscores are allowed as
// digit separators. Bare tokens of exactly eight hex digits are read as hex.
func ParseWords(input string) (wire.Words, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	words := make(wire.Words, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseUnit(tok, 8, 32)
		if err != nil {
			return nil, err
		}
		words = append(words, uint32(v))
	}
	return words, nil
}

// ParseBytes parses a list of bytes in the same syntax as ParseWords. Bare
// tokens of two hex digits are read as hex.
func ParseBytes(input string) (wire.Bytes, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	data := make(wire.Bytes, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseUnit(tok, 2, 8)
		if err != nil {
			return nil, err
		}
		data = append(data, byte(v))
	}
	return data, nil
}

func tokenize(input string) ([]string, error) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '[' || r == ']'
	})
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	return tokens, nil
}

// parseUnit parses one token. Tokens of exactly hexDigits characters without
// a prefix are hex, others follow Go literal syntax.
func parseUnit(tok string, hexDigits, bits int) (uint64, error) {
	clean := strings.ReplaceAll(tok, "_", "")
	var (
		v   uint64
		err error
	)
	switch {
	case strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X"):
		v, err = strconv.ParseUint(clean[2:], 16, bits)
	case len(clean) == hexDigits && isHex(clean):
		v, err = strconv.ParseUint(clean, 16, bits)
	default:
		v, err = strconv.ParseUint(clean, 10, bits)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, tok)
	}
	return v, nil
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// FormatUnits prints v as space separated hex, eight digits per word and two
// per byte.
func FormatUnits(v wire.View) string {
	var sb strings.Builder
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if v.Kind() == wire.KindByte {
			fmt.Fprintf(&sb, "%02X", v.Unit(i))
		} else {
			fmt.Fprintf(&sb, "%08X", v.Unit(i))
		}
	}
	return sb.String()
}
