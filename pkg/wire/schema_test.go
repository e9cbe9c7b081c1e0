package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitHelpers(t *testing.T) {
	assert.Equal(t, 20, MaskShift(0x00F0_0000))
	assert.Equal(t, 4, MaskWidth(0x00F0_0000))
	assert.Equal(t, uint32(0x9), Extract(0x4390_0000, 0x00F0_0000))
	assert.Equal(t, uint32(0x43A0_0000), Insert(0x4390_0000, 0x00F0_0000, 0xA))
	// Bits beyond the mask are dropped.
	assert.Equal(t, uint32(0x43F0_0000), Insert(0x4390_0000, 0x00F0_0000, 0x1F))

	assert.Equal(t, uint8(0x4), Nibble(0x4390_1234, 0))
	assert.Equal(t, uint8(0x4), Nibble(0x4390_1234, 7))
	assert.Equal(t, uint32(0x4350_1234), SetNibble(0x4390_1234, 2, 0x5))
	assert.Equal(t, uint8(0x90), Octet(0x4390_1234, 1))
	assert.Equal(t, uint32(0x43AB_1234), SetOctet(0x4390_1234, 1, 0xAB))
}

func TestContiguous(t *testing.T) {
	assert.True(t, contiguous(0x1))
	assert.True(t, contiguous(0xFFFF_FFFF))
	assert.True(t, contiguous(0x00F0_0000))
	assert.False(t, contiguous(0))
	assert.False(t, contiguous(0x0101))
}

func TestSchemaSplitField(t *testing.T) {
	// 14-bit value stored LSB in bits 14-8 and MSB in bits 6-0.
	s := WordParts(Part{Index: 0, Mask: 0x0000_007F}, Part{Index: 0, Mask: 0x0000_7F00})
	buf := Words{0x2000_0000}

	require.NoError(t, s.Write(buf, 0, 0x2A55))
	assert.Equal(t, uint32(0x2000_5554), buf[0])

	raw, err := s.Read(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x2A55), raw)
	assert.Equal(t, 14, s.Width(KindWord))
}

func TestSchemaMultiWord(t *testing.T) {
	s := Ump(0x0000_FFFF, 0xFFFF_0000)
	buf := Words{0xD000_0000, 0x0000_ABCD}

	require.NoError(t, s.Write(buf, 0, 0x1234_5678))
	assert.Equal(t, Words{0xD000_1234, 0x5678_ABCD}, buf)

	raw, err := s.Read(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1234_5678), raw)
	assert.Equal(t, 2, s.Extent(KindWord))
}

func TestSchemaOffset(t *testing.T) {
	s := Ump(0x0000_FF00)
	buf := Words{0x0020_0000, 0x4000_0000}

	require.NoError(t, s.Write(buf, 1, 0x42))
	assert.Equal(t, Words{0x0020_0000, 0x4000_4200}, buf)

	raw, err := s.Read(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x42), raw)
}

func TestSchemaBytes(t *testing.T) {
	s := Ump(0x0000_7F00).WithBytes(0, 0x7F)
	assert.True(t, s.Supports(KindWord))
	assert.True(t, s.Supports(KindByte))

	buf := Bytes{0x90, 0x00, 0x00}
	require.NoError(t, s.Write(buf, 0, 0x3C))
	assert.Equal(t, Bytes{0x90, 0x3C, 0x00}, buf)

	raw, err := s.Read(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3C), raw)
}

func TestSchemaWriteTooWide(t *testing.T) {
	s := Ump(0x0000_7F00)
	buf := Words{0}
	err := s.Write(buf, 0, 0x80)
	assert.True(t, errors.Is(err, ErrInvalidFieldValue))
	assert.Equal(t, Words{0}, buf)
}

func TestSchemaOutOfBounds(t *testing.T) {
	s := Ump(0x0000_FFFF, 0xFFFF_0000)
	buf := Words{0x1111_1111}

	err := s.Write(buf, 0, 0xFFFF_FFFF)
	var se *SizeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Need)
	assert.Equal(t, 1, se.Have)
	assert.True(t, errors.Is(err, ErrBufferTooShort))
	// Bounds are checked before any unit is touched.
	assert.Equal(t, Words{0x1111_1111}, buf)

	_, err = s.Read(buf, 0)
	assert.True(t, errors.Is(err, ErrBufferTooShort))
}

func TestSchemaInvalidDeclarations(t *testing.T) {
	assert.Panics(t, func() { Ump(0x0101) })
	assert.Panics(t, func() { WordParts(Part{Index: -1, Mask: 0xF}) })
	assert.Panics(t, func() { Ump(0xFFFF_FFFF, 0xFFFF_FFFF, 0x1) })
	assert.Panics(t, func() { Ump(0x7F).WithBytes(0x1FF) })
	assert.Panics(t, func() { Ump(0x7F).WithBytes(0x0F) })
}

func TestSchemaOverlaps(t *testing.T) {
	a := Ump(0x00F0_0000)
	b := Ump(0x000F_0000)
	c := Ump(0x0FF0_0000)
	assert.False(t, a.Overlaps(b, KindWord))
	assert.True(t, a.Overlaps(c, KindWord))
	assert.False(t, Ump(0, 0xFF).Overlaps(Ump(0xFF), KindWord))
}

func TestGrowableBuffers(t *testing.T) {
	wb := NewWordBuffer(0x1)
	wb.EnsureCapacity(3)
	assert.Equal(t, []uint32{0x1, 0, 0}, wb.Words())
	wb.EnsureCapacity(1)
	assert.Equal(t, 3, wb.Len())

	bb := &ByteBuffer{}
	bb.EnsureCapacity(2)
	bb.SetUnit(1, 0x1FF)
	assert.Equal(t, []byte{0, 0xFF}, bb.Bytes())
	assert.Equal(t, KindByte, bb.Kind())
}

func TestReadOnlyHidesMutation(t *testing.T) {
	v := ReadOnly(Words{1, 2})
	_, ok := v.(MutableView)
	assert.False(t, ok)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, uint32(2), v.Unit(1))
	assert.Equal(t, v, ReadOnly(v))
}
