package ump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ump-protocol/ump-go/pkg/ump"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

func TestPacketSize(t *testing.T) {
	want := map[uint8]int{
		0x0: 1, 0x1: 1, 0x2: 1, 0x6: 1, 0x7: 1,
		0x3: 2, 0x4: 2, 0x8: 2, 0x9: 2, 0xA: 2,
		0xB: 3, 0xC: 3,
		0x5: 4, 0xD: 4, 0xE: 4, 0xF: 4,
	}
	for pt, size := range want {
		assert.Equal(t, size, ump.PacketSize(pt), "packet type %#x", pt)
	}
}

func TestSplit(t *testing.T) {
	stream := []uint32{
		0x0010_0042,
		0x4294_3C00, 0xFFFF_0000,
		0x2093_3C64,
		0xD010_0000, 500_000, 0, 0,
	}
	packets, err := ump.Split(stream)
	require.NoError(t, err)
	assert.Equal(t, []wire.Words{
		{0x0010_0042},
		{0x4294_3C00, 0xFFFF_0000},
		{0x2093_3C64},
		{0xD010_0000, 500_000, 0, 0},
	}, packets)
}

func TestSplitTrailingPartial(t *testing.T) {
	packets, err := ump.Split([]uint32{0x2093_3C64, 0x4294_3C00})
	require.Len(t, packets, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, wire.ErrBufferTooShort)
	var se *wire.SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Need)
	assert.Equal(t, 1, se.Have)
}

func TestSplitPacketsDoNotAlias(t *testing.T) {
	stream := []uint32{0x2093_3C64, 0x2083_3C00}
	packets, err := ump.Split(stream)
	require.NoError(t, err)
	grown := append(packets[0], 0xFFFF_FFFF)
	assert.Equal(t, uint32(0x2083_3C00), stream[1])
	assert.Len(t, grown, 2)
}

func TestAttach(t *testing.T) {
	tests := []struct {
		name    string
		packets []wire.Words
		want    []wire.Words
	}{
		{
			name:    "clock before midi2",
			packets: []wire.Words{{0x0010_0042}, {0x4294_3C00, 0xFFFF_0000}},
			want:    []wire.Words{{0x0010_0042, 0x4294_3C00, 0xFFFF_0000}},
		},
		{
			name:    "no-op before midi1",
			packets: []wire.Words{{0x0000_0000}, {0x2093_3C64}},
			want:    []wire.Words{{0x0000_0000, 0x2093_3C64}},
		},
		{
			name:    "delta clockstamp stays",
			packets: []wire.Words{{0x0040_0010}, {0x2093_3C64}},
			want:    []wire.Words{{0x0040_0010}, {0x2093_3C64}},
		},
		{
			name:    "two utility words",
			packets: []wire.Words{{0x0010_0001}, {0x0020_0002}},
			want:    []wire.Words{{0x0010_0001}, {0x0020_0002}},
		},
		{
			name:    "trailing prefix",
			packets: []wire.Words{{0x2093_3C64}, {0x0010_0001}},
			want:    []wire.Words{{0x2093_3C64}, {0x0010_0001}},
		},
		{
			name:    "second of two prefixes attaches",
			packets: []wire.Words{{0x0010_0001}, {0x0020_0002}, {0x2093_3C64}},
			want:    []wire.Words{{0x0010_0001}, {0x0020_0002, 0x2093_3C64}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ump.Attach(tt.packets))
		})
	}
}
