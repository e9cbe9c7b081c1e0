package utility_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ump-protocol/ump-go/internal/vectors"
	"github.com/ump-protocol/ump-go/pkg/message/utility"
	"github.com/ump-protocol/ump-go/pkg/numeric"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

func parse(v wire.View) (wire.Decoded, error) {
	return utility.Parse(v)
}

func TestVectors(t *testing.T) {
	vectors.Run(t, "testdata/vectors.yaml", parse)
}

func TestParseDispatch(t *testing.T) {
	m, err := utility.Parse(wire.Words{0x0010_1234})
	require.NoError(t, err)
	clock, ok := m.(utility.JitterReductionClock)
	require.True(t, ok)
	assert.Equal(t, uint16(0x1234), clock.Time())

	m, err = utility.Parse(wire.Words{0x0040_0010})
	require.NoError(t, err)
	dcs, ok := m.(utility.DeltaClockstamp)
	require.True(t, ok)
	assert.Equal(t, numeric.U20(0x10), dcs.Ticks())
}

func TestParseUnknownStatus(t *testing.T) {
	_, err := utility.Parse(wire.Words{0x00A0_0000})
	var ve *wire.VariantError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, utility.Family, ve.Family)
	assert.Equal(t, 2, ve.Level)
	assert.Equal(t, uint64(0xA), ve.Code)
}

func TestParseEmpty(t *testing.T) {
	_, err := utility.Parse(wire.Words{})
	assert.ErrorIs(t, err, wire.ErrBufferTooShort)
}

func TestBuildDeltaClockstamp(t *testing.T) {
	buf := &wire.WordBuffer{}
	m, err := utility.NewDeltaClockstampBuilder(buf).Ticks(numeric.MaxU20).Finish()
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x004F_FFFF}, buf.Words())
	assert.Equal(t, numeric.MaxU20, m.Ticks())
}

func TestBuildDeltaClockstampTooWide(t *testing.T) {
	_, err := utility.NewDeltaClockstampBuilder(&wire.WordBuffer{}).Ticks(numeric.U20(1 << 20)).Finish()
	assert.ErrorIs(t, err, wire.ErrInvalidFieldValue)
}

func TestUtilityIgnoresPrefixOption(t *testing.T) {
	buf := &wire.WordBuffer{}
	m, err := utility.NewJitterReductionTimestampBuilder(buf, wire.WithPrefix()).Time(7).Finish()
	require.NoError(t, err)
	assert.False(t, m.HasPrefix())
	assert.Equal(t, []uint32{0x0020_0007}, buf.Words())
}

func TestShapesAreCopied(t *testing.T) {
	shapes := utility.Shapes()
	require.Len(t, shapes, 5)
	shapes[0] = nil
	assert.NotNil(t, utility.Shapes()[0])
}
