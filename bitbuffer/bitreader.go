package bitbuffer

// BitReader provides sequential bit-level reading from a byte buffer.
//
// Bits are read MSB-first within each byte:
//   - First bit read is bit position 7 (MSB)
//   - Last bit read is bit position 0 (LSB)
//
// Reading past the available bits is not an error. Reads saturate: they
// return zero and leave the position where it is, so callers detect the
// end of data by checking BitsRemaining or the number of bits returned.
//
// The buffer is borrowed, never copied or modified.
type BitReader struct {
	data     []byte
	bitCount int
	cursor
}

// NewBitReader creates a new bit reader over data with every bit readable.
func NewBitReader(data []byte) *BitReader {
	br := &BitReader{data: data}
	br.Reset(len(data) * 8)
	return br
}

// Reset starts a new read session at the first bit of the buffer with
// bitsAvailable readable bits.
//
// bitsAvailable never exceeds the buffer size. Reset returns false when
// the requested size had to be clamped.
func (br *BitReader) Reset(bitsAvailable int) bool {
	br.bitCount = bitsAvailable
	if maxBits := len(br.data) * 8; br.bitCount > maxBits {
		br.bitCount = maxBits
	}
	if br.bitCount < 0 {
		br.bitCount = 0
	}
	br.rewind()

	return br.bitCount == bitsAvailable
}

// BitCount returns the number of bits readable in this session.
func (br *BitReader) BitCount() int {
	return br.bitCount
}

// BitPosition returns the number of bits read since the last Reset.
func (br *BitReader) BitPosition() int {
	return br.pos
}

// BitsRemaining returns the number of bits left to read.
func (br *BitReader) BitsRemaining() int {
	return br.bitCount - br.pos
}

// ReadBit reads and consumes a single bit.
// It returns false without advancing when no bits remain.
func (br *BitReader) ReadBit() bool {
	if br.pos >= br.bitCount {
		return false
	}

	bit := br.data[br.index]&br.mask != 0
	br.advance()

	return bit
}

// ReadBits reads and consumes up to numBits bits as an integer, MSB-first.
//
// numBits is limited to MaxFieldBits and then to BitsRemaining. The bits
// actually read form the low bits of the result; when no bits remain the
// result is 0 and the position does not change.
func (br *BitReader) ReadBits(numBits uint8) uint32 {
	n := br.clamp(int(min(numBits, MaxFieldBits)))

	var result uint32
	for i := 0; i < n; i++ {
		// shift the read bits, and set the next bit from the buffer
		result <<= 1
		if br.data[br.index]&br.mask != 0 {
			result |= 1
		}
		br.advance()
	}

	return result
}

// ReadBuffer copies up to bitsToRead bits into dst, MSB-first, and returns
// the number of bits copied.
//
// The count is limited to BitsRemaining and to the capacity of dst. Any
// unused low bits of the last destination byte are zero.
func (br *BitReader) ReadBuffer(dst []byte, bitsToRead int) int {
	n := br.clamp(min(bitsToRead, len(dst)*8))
	if n == 0 {
		return 0
	}

	// byte-aligned reads are a plain copy
	if br.aligned() {
		return br.readAligned(dst, n)
	}

	var acc byte
	accBits := 0
	out := 0
	for i := 0; i < n; i++ {
		acc <<= 1
		if br.data[br.index]&br.mask != 0 {
			acc |= 1
		}
		br.advance()

		accBits++
		if accBits == 8 {
			dst[out] = acc
			out++
			acc = 0
			accBits = 0
		}
	}

	// left-justify the bits of a trailing partial byte
	if accBits > 0 {
		dst[out] = acc << (8 - accBits)
	}

	return n
}

// readAligned copies n bits starting on a byte boundary.
func (br *BitReader) readAligned(dst []byte, n int) int {
	numBytes := n >> 3
	copy(dst, br.data[br.index:br.index+numBytes])

	if rem := n & 0b111; rem > 0 {
		dst[numBytes] = br.data[br.index+numBytes] & (0xFF << (8 - rem))
	}

	br.skip(n)
	return n
}

// clamp limits a read of n bits to what is left in the session.
func (br *BitReader) clamp(n int) int {
	if n <= 0 {
		return 0
	}
	if remaining := br.BitsRemaining(); n > remaining {
		return remaining
	}
	return n
}
