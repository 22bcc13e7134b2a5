// Package bitbuffer reads and writes bit fields in fixed-size byte buffers
// for compact binary protocols.
//
// A BitWriter packs integer fields of 1 to 32 bits and raw bit spans into
// a caller-owned buffer. A BitReader unpacks them again. Neither allocates
// and neither owns its buffer: both can be Reset to reuse one buffer for
// many messages.
//
// Bit Ordering:
//
// Reading and writing start at byte 0. Within each byte bits go from the
// left-most (most significant) bit to the right-most bit, with no padding
// between bytes:
//
//	bytes   0xCA       0xAA       0xA0
//	bits    1100 1010  1010 1010  1010 0000
//	fields  aaaa bbbb  bbcd dddd  ddd
//
// Basic usage:
//
//	buf := make([]byte, 3)
//	bw := bitbuffer.NewBitWriter(buf)
//	bw.WriteBits(0b1100, 4)
//	bw.WriteBits(0b101010, 6)
//	bw.WriteBit(true)
//	bw.WriteBits(0b01010101, 8)
//
//	br := bitbuffer.NewBitReader(buf)
//	br.Reset(bw.BitsWritten())
//	a := br.ReadBits(4) // 0b1100
//
// Error Handling:
//
// Writers report overflow with a false return and leave the buffer
// untouched. Readers never fail: reading past the end yields zero bits,
// which callers detect through BitsRemaining.
//
// Neither type is safe for concurrent use.
package bitbuffer
