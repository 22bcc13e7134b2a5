package bitbuffer

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitConcatenatesFrames(t *testing.T) {
	var out bytes.Buffer
	w := bitio.NewWriter(&out)

	frame := make([]byte, 2)
	bw := NewBitWriter(frame)
	require.True(t, bw.WriteBits(0b101, 3))
	require.True(t, bw.WriteBits(0b11, 2))
	require.NoError(t, bw.Emit(w))

	bw.Reset()
	require.True(t, bw.WriteBits(0x3FF, 10))
	require.True(t, bw.WriteBit(false))
	require.NoError(t, bw.Emit(w))

	require.NoError(t, w.Close())

	// 5 + 11 bits, no padding between the frames
	assert.Equal(t, []byte{0b10111111, 0b11111110}, out.Bytes())
}

func TestEmitWholeBytes(t *testing.T) {
	var out bytes.Buffer
	w := bitio.NewWriter(&out)

	bw := NewBitWriter(make([]byte, 3))
	require.True(t, bw.WriteBuffer([]byte{0x33, 0xCC}, 16))
	require.NoError(t, bw.Emit(w))
	require.NoError(t, w.Close())

	assert.Equal(t, []byte{0x33, 0xCC}, out.Bytes())
}

func TestEmitNothing(t *testing.T) {
	var out bytes.Buffer
	w := bitio.NewWriter(&out)

	require.NoError(t, NewBitWriter(make([]byte, 3)).Emit(w))
	require.NoError(t, w.Close())

	assert.Empty(t, out.Bytes())
}

func TestFill(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x42, 0x00}))
	buf := make([]byte, 6)
	bw := NewBitWriter(buf)
	require.True(t, bw.WriteBits(0b1, 1))

	n, err := bw.Fill(r, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, n)
	assert.Equal(t, 41, bw.BitsWritten())

	br := NewBitReader(buf)
	assert.Equal(t, uint32(1), br.ReadBits(1))
	assert.Equal(t, uint32(0xDEADBEEF), br.ReadBits(32))
	assert.Equal(t, uint32(0x42), br.ReadBits(8))
}

func TestFillInsufficientCapacity(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader([]byte{0xFF, 0xFF}))
	buf := make([]byte, 1)
	bw := NewBitWriter(buf)

	n, err := bw.Fill(r, 9)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, bw.BitsWritten())

	// the stream was not touched
	v, err := r.ReadBits(16)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFFF), v)
}

func TestFillStreamEnds(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader([]byte{0xAB, 0xCD, 0xEF, 0x01, 0x23}))
	bw := NewBitWriter(make([]byte, 16))

	n, err := bw.Fill(r, 64)
	assert.Error(t, err)
	assert.Equal(t, 32, n)
	assert.Equal(t, 32, bw.BitsWritten())
	assert.Equal(t, []byte{0xAB, 0xCD, 0xEF, 0x01}, bw.Bytes())
}
