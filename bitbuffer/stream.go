package bitbuffer

import (
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// ErrInsufficientCapacity is returned when a transfer does not fit in the
// remaining capacity of a BitWriter.
var ErrInsufficientCapacity = errors.New("not enough room in buffer")

// Emit writes the bits written so far to w, without padding.
//
// Frames emitted one after another are packed back to back in the
// stream. Closing w pads the final byte with zeros.
func (bw *BitWriter) Emit(w *bitio.Writer) error {
	whole := bw.pos >> 3
	for _, b := range bw.data[:whole] {
		if err := w.WriteByte(b); err != nil {
			return fmt.Errorf("emit byte: %w", err)
		}
	}

	if rem := uint8(bw.pos & 0b111); rem > 0 {
		if err := w.WriteBits(uint64(bw.data[whole]>>(8-rem)), rem); err != nil {
			return fmt.Errorf("emit trailing %d bits: %w", rem, err)
		}
	}

	return nil
}

// Fill transfers up to bits bits from r into the writer and returns the
// number of bits transferred.
//
// Fill fails with ErrInsufficientCapacity, reading nothing, when bits
// exceeds BitsRemaining. If r runs dry the fields read so far are kept and
// the stream error is returned.
func (bw *BitWriter) Fill(r *bitio.Reader, bits int) (int, error) {
	if bits > bw.BitsRemaining() {
		return 0, fmt.Errorf("fill %d bits with %d remaining: %w",
			bits, bw.BitsRemaining(), ErrInsufficientCapacity)
	}

	n := 0
	for n < bits {
		chunk := uint8(min(bits-n, MaxFieldBits))
		v, err := r.ReadBits(chunk)
		if err != nil {
			return n, fmt.Errorf("fill after %d bits: %w", n, err)
		}
		bw.WriteBits(uint32(v), chunk)
		n += int(chunk)
	}

	return n, nil
}
