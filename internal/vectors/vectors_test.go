package vectors_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ump-protocol/ump-go/internal/vectors"
	"github.com/ump-protocol/ump-go/pkg/wire"
)

func TestParseBasic(t *testing.T) {
	data := `
family: midi1cv
vectors:
  - name: channel pressure
    words: ["0x2FD6_0900"]
    message: ChannelPressure
    fields:
      channel: "6"
  - name: program change bytes
    bytes: ["0xC7", "0x63"]
    message: ProgramChange
  - name: truncated
    words: ["0x4090_3C00"]
    error: BufferTooShort
    lossy: true
`
	f, err := vectors.Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "midi1cv", f.Family)
	require.Len(t, f.Vectors, 3)

	v := f.Vectors[0]
	assert.Equal(t, []vectors.Word{0x2FD6_0900}, v.Words)
	assert.Equal(t, wire.Words{0x2FD6_0900}, v.View())
	assert.Equal(t, "6", v.Fields["channel"])
	assert.NoError(t, v.ExpectedError())

	v = f.Vectors[1]
	assert.Equal(t, wire.Bytes{0xC7, 0x63}, v.View())

	v = f.Vectors[2]
	assert.Equal(t, wire.ErrBufferTooShort, v.ExpectedError())
	assert.True(t, v.Lossy)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "family: x\n"},
		{"no name", "vectors:\n  - words: [\"0x0\"]\n    message: NoOp\n"},
		{"no units", "vectors:\n  - name: a\n    message: NoOp\n"},
		{"both units", "vectors:\n  - name: a\n    words: [\"0x0\"]\n    bytes: [\"0x0\"]\n    message: NoOp\n"},
		{"unknown error", "vectors:\n  - name: a\n    words: [\"0x0\"]\n    error: Oops\n"},
		{"message and error", "vectors:\n  - name: a\n    words: [\"0x0\"]\n    message: NoOp\n    error: UnknownVariant\n"},
		{"no outcome", "vectors:\n  - name: a\n    words: [\"0x0\"]\n"},
		{"bad word", "vectors:\n  - name: a\n    words: [\"0x1_0000_0000\"]\n    message: NoOp\n"},
		{"bad byte", "vectors:\n  - name: a\n    bytes: [\"zz\"]\n    message: NoOp\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vectors.Parse([]byte(tt.yaml))
			require.Error(t, err)
			var le *vectors.LoadError
			assert.True(t, errors.As(err, &le))
		})
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	write("a.yaml", "vectors:\n  - name: a\n    words: [\"0x0\"]\n    message: NoOp\n")
	write("b.yml", "vectors:\n  - name: b\n    words: [\"0x0\"]\n    message: NoOp\n")
	write("notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	files, err := vectors.LoadDirectory(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestLoadErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vectors: []\n"), 0o600))

	_, err := vectors.Load(path)
	var le *vectors.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.File)
	assert.Contains(t, err.Error(), "bad.yaml")

	_, err = vectors.Load(filepath.Join(dir, "missing.yaml"))
	require.True(t, errors.As(err, &le))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type shade uint8

func (s shade) String() string { return [...]string{"red", "green"}[s] }

func TestFormatFields(t *testing.T) {
	got := vectors.FormatFields([]wire.FieldValue{
		{Name: "note", Value: uint8(60)},
		{Name: "shade", Value: shade(1)},
		{Name: "bank", Value: nil},
		{Name: "flag", Value: true},
	})
	assert.Equal(t, map[string]string{
		"note":  "60",
		"shade": "green",
		"bank":  vectors.Absent,
		"flag":  "true",
	}, got)
}
