package ump

import (
	"github.com/ump-protocol/ump-go/pkg/message/utility"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

var packetSizes = [16]int{
	0x0: 1, 0x1: 1, 0x2: 1, 0x3: 2,
	0x4: 2, 0x5: 4, 0x6: 1, 0x7: 1,
	0x8: 2, 0x9: 2, 0xA: 2, 0xB: 3,
	0xC: 3, 0xD: 4, 0xE: 4, 0xF: 4,
}

// PacketSize returns the number of words in a packet of the given type.
func PacketSize(packetType uint8) int {
	return packetSizes[packetType&0xF]
}

// Split cuts words into packets by the packet type of each first word. The
// packets share words' backing array. A trailing partial packet is an
// ErrBufferTooShort error; the complete packets before it are returned.
func Split(words []uint32) ([]wire.Words, error) {
	var packets []wire.Words
	for pos := 0; pos < len(words); {
		size := PacketSize(wire.PacketType(words[pos]))
		if pos+size > len(words) {
			return packets, &wire.SizeError{Shape: Dispatcher, Need: size, Have: len(words) - pos}
		}
		packets = append(packets, wire.Words(words[pos:pos+size:pos+size]))
		pos += size
	}
	return packets, nil
}

// Attach merges each jitter-reduction or NoOp word that directly precedes a
// non-utility packet into that packet, so the family parser sees it as a
// prefix. Packets must be contiguous slices of one stream, as Split
// returns them.
func Attach(packets []wire.Words) []wire.Words {
	out := make([]wire.Words, 0, len(packets))
	for i := 0; i < len(packets); i++ {
		p := packets[i]
		if i+1 < len(packets) && isPrefix(p) && !isUtility(packets[i+1]) {
			next := packets[i+1]
			merged := make(wire.Words, 0, len(p)+len(next))
			merged = append(merged, p...)
			merged = append(merged, next...)
			out = append(out, merged)
			i++
			continue
		}
		out = append(out, p)
	}
	return out
}

func isPrefix(p wire.Words) bool {
	return len(p) == 1 && isUtility(p) && utility.IsPrefixWord(p[0])
}

func isUtility(p wire.Words) bool {
	return len(p) > 0 && wire.PacketType(p[0]) == utility.PacketType
}
