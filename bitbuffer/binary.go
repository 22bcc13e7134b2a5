package bitbuffer

import (
	"io"
	"strings"
)

// FormatBinary renders buf as '1' and '0' characters, MSB-first, with
// delimiter after every byte and a trailing newline.
//
//	FormatBinary([]byte{0xA5, 0x0F}, " ") == "10100101 00001111 \n"
func FormatBinary(buf []byte, delimiter string) string {
	var sb strings.Builder
	sb.Grow(len(buf)*(8+len(delimiter)) + 1)

	for _, b := range buf {
		for mask := FirstBit; mask != 0; mask >>= 1 {
			if b&mask != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(delimiter)
	}
	sb.WriteByte('\n')

	return sb.String()
}

// PrintBinary writes the first length bytes of buf to w in the format of
// FormatBinary. length is limited to len(buf).
func PrintBinary(w io.Writer, buf []byte, length int, delimiter string) error {
	length = max(0, min(length, len(buf)))
	_, err := io.WriteString(w, FormatBinary(buf[:length], delimiter))
	return err
}
