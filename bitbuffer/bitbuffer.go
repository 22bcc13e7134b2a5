package bitbuffer

// Version is the current version of the Go implementation
const Version = "0.1.0"

const (
	// FirstBit is the mask of the first (most significant) bit of a byte.
	FirstBit byte = 0b10000000

	// FirstBitOfInt is the mask of the first bit of a 32-bit field.
	FirstBitOfInt uint32 = 0x80000000

	// MaxFieldBits is the widest integer field ReadBits and WriteBits handle.
	MaxFieldBits = 32
)

// cursor tracks a bit position within a byte buffer.
//
// The linear bit offset is cached as a byte index and a single-bit mask so
// the hot paths never divide:
//
//	index*8 + (bits between FirstBit and mask) == pos
type cursor struct {
	pos   int
	index int
	mask  byte
}

// rewind moves the cursor back to the first bit of the buffer.
func (c *cursor) rewind() {
	c.pos = 0
	c.index = 0
	c.mask = FirstBit
}

// aligned reports whether the cursor is on a byte boundary.
func (c *cursor) aligned() bool {
	return c.mask == FirstBit
}

// advance moves the cursor forward by one bit.
func (c *cursor) advance() {
	c.mask >>= 1
	if c.mask == 0 {
		// no more bits in the current byte, move to the next
		c.index++
		c.mask = FirstBit
	}
	c.pos++
}

// skip moves the cursor forward by n bits.
func (c *cursor) skip(n int) {
	c.pos += n
	c.index = c.pos >> 3
	c.mask = FirstBit >> (c.pos & 0b111)
}
