package vectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ump-protocol/ump-go/pkg/wire"
)

// ParseFunc is a family dispatcher adapted to return the common interface.
type ParseFunc func(wire.View) (wire.Decoded, error)

// Run loads the vector file at path and checks every vector against parse as
// a subtest.
func Run(t *testing.T, path string, parse ParseFunc) {
	t.Helper()
	f, err := Load(path)
	require.NoError(t, err)
	for _, v := range f.Vectors {
		t.Run(v.Name, func(t *testing.T) {
			Check(t, v, parse)
		})
	}
}

// Check decodes one vector and compares the outcome. Successful non-lossy
// vectors are also rebuilt through wire.Transcode and must reproduce the
// input units.
func Check(t *testing.T, v Vector, parse ParseFunc) {
	t.Helper()
	m, err := parse(v.View())
	if v.Error != "" {
		require.Error(t, err)
		assert.ErrorIs(t, err, v.ExpectedError())
		assert.Equal(t, v.ExpectedError(), wire.KindOf(err))
		return
	}
	require.NoError(t, err)
	assert.Equal(t, v.Message, m.Shape().Name)

	got := FormatFields(m.Fields())
	for name, want := range v.Fields {
		value, ok := got[name]
		if assert.True(t, ok, "field %q missing, have %v", name, got) {
			assert.Equal(t, want, value, "field %q", name)
		}
	}
	if v.Prefix != "" && m.Shape().Prefix != nil {
		assert.Equal(t, v.Prefix, got[m.Shape().Prefix.FieldName()])
	}
	if v.Lossy {
		return
	}

	var opts []wire.BuildOption
	if m.HasPrefix() {
		opts = append(opts, wire.WithPrefix())
	}
	if m.Kind() == wire.KindByte {
		buf := &wire.ByteBuffer{}
		_, err := wire.Transcode(m.Raw(), buf, opts...)
		require.NoError(t, err)
		assert.Equal(t, m.Bytes(), buf.Bytes())
		return
	}
	buf := &wire.WordBuffer{}
	_, err = wire.Transcode(m.Raw(), buf, opts...)
	require.NoError(t, err)
	assert.Equal(t, m.Words(), buf.Words())
}
