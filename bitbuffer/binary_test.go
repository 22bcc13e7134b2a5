package bitbuffer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBinary(t *testing.T) {
	tests := []struct {
		name      string
		buf       []byte
		delimiter string
		want      string
	}{
		{"empty", nil, " ", "\n"},
		{"single byte", []byte{0b01010100}, " ", "01010100 \n"},
		{"two bytes", []byte{0xA5, 0x0F}, " ", "10100101 00001111 \n"},
		{"no delimiter", []byte{0xFF, 0x00}, "", "1111111100000000\n"},
		{"long delimiter", []byte{0x80}, " | ", "10000000 | \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBinary(tt.buf, tt.delimiter))
		})
	}
}

func TestPrintBinary(t *testing.T) {
	buf := []byte{0b11001010, 0b10101010, 0b10100000}

	var out bytes.Buffer
	require.NoError(t, PrintBinary(&out, buf, 2, ","))
	assert.Equal(t, "11001010,10101010,\n", out.String())

	out.Reset()
	require.NoError(t, PrintBinary(&out, buf, 10, " "))
	assert.Equal(t, "11001010 10101010 10100000 \n", out.String())

	out.Reset()
	require.NoError(t, PrintBinary(&out, buf, -1, " "))
	assert.Equal(t, "\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestPrintBinaryWriteError(t *testing.T) {
	err := PrintBinary(failingWriter{}, []byte{0x01}, 1, " ")
	assert.EqualError(t, err, "sink closed")
}
