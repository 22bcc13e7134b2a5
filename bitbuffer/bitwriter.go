package bitbuffer

// ResetMode selects how a BitWriter prepares its buffer for a new session.
type ResetMode int

const (
	// ZeroOnReset zero-fills the whole buffer on every Reset. Writes then
	// only ever need to set 1 bits.
	ZeroOnReset ResetMode = iota

	// ClearOnWrite leaves the buffer alone on Reset. Every written bit is
	// explicitly set or cleared, and bits past the cursor keep their old
	// contents.
	ClearOnWrite
)

// String implements fmt.Stringer.
func (m ResetMode) String() string {
	switch m {
	case ZeroOnReset:
		return "zero-on-reset"
	case ClearOnWrite:
		return "clear-on-write"
	default:
		return "unknown"
	}
}

// BitWriter provides sequential bit-level writing into a fixed-size buffer.
//
// Bits are written MSB-first within each byte:
//   - First bit written goes to bit position 7
//   - Second bit goes to position 6, etc.
//
// A write that does not fit in the remaining capacity fails and leaves
// both the buffer and the position unchanged.
type BitWriter struct {
	data []byte
	mode ResetMode
	cursor
}

// NewBitWriter creates a new bit writer over data in ZeroOnReset mode.
// The buffer is zero-filled.
func NewBitWriter(data []byte) *BitWriter {
	return NewBitWriterMode(data, ZeroOnReset)
}

// NewBitWriterMode creates a new bit writer over data using mode.
func NewBitWriterMode(data []byte, mode ResetMode) *BitWriter {
	bw := &BitWriter{data: data, mode: mode}
	bw.Reset()
	return bw
}

// Mode returns the reset mode of the writer.
func (bw *BitWriter) Mode() ResetMode {
	return bw.mode
}

// Reset starts a new write session at the first bit of the buffer.
func (bw *BitWriter) Reset() {
	bw.rewind()
	if bw.mode == ZeroOnReset {
		clear(bw.data)
	}
}

// BitsWritten returns the number of bits written since the last Reset.
func (bw *BitWriter) BitsWritten() int {
	return bw.pos
}

// BitsRemaining returns the number of bits that can still be written.
func (bw *BitWriter) BitsRemaining() int {
	return len(bw.data)*8 - bw.pos
}

// Bytes returns the part of the buffer holding the bits written so far.
// The last byte is partial when BitsWritten is not a multiple of 8.
func (bw *BitWriter) Bytes() []byte {
	return bw.data[:(bw.pos+7)>>3]
}

// WriteBit writes a single bit.
// It returns false if the buffer is full.
func (bw *BitWriter) WriteBit(bit bool) bool {
	if bw.BitsRemaining() == 0 {
		return false
	}

	bw.writeBit(bit)
	return true
}

// WriteBits writes the low numBits bits of bits, MSB-first.
//
// It returns false, writing nothing, if numBits exceeds MaxFieldBits or
// the remaining capacity.
func (bw *BitWriter) WriteBits(bits uint32, numBits uint8) bool {
	if numBits > MaxFieldBits || int(numBits) > bw.BitsRemaining() {
		return false
	}
	if numBits == 0 {
		return true
	}

	// shift the bits so the first bit to write is left-most
	bits <<= MaxFieldBits - numBits

	for i := uint8(0); i < numBits; i++ {
		bw.writeBit(bits&FirstBitOfInt != 0)
		bits <<= 1
	}

	return true
}

// WriteBuffer writes the first bitsToWrite bits of src, MSB-first.
//
// It returns false, writing nothing, if the bits do not fit in the
// remaining capacity or src holds fewer than bitsToWrite bits.
func (bw *BitWriter) WriteBuffer(src []byte, bitsToWrite int) bool {
	if bitsToWrite < 0 || bitsToWrite > bw.BitsRemaining() || bitsToWrite > len(src)*8 {
		return false
	}

	srcIndex := 0
	srcMask := FirstBit
	for i := 0; i < bitsToWrite; i++ {
		bw.writeBit(src[srcIndex]&srcMask != 0)

		srcMask >>= 1
		if srcMask == 0 {
			srcIndex++
			srcMask = FirstBit
		}
	}

	return true
}

// writeBit stores one bit at the cursor and advances. The caller has
// already checked the capacity.
func (bw *BitWriter) writeBit(bit bool) {
	switch {
	case bit:
		bw.data[bw.index] |= bw.mask
	case bw.mode == ClearOnWrite:
		bw.data[bw.index] &^= bw.mask
	}
	// ZeroOnReset buffers start out all 0's so only 1's need writing

	bw.advance()
}
