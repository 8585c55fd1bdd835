// Package bits implements the MSB-first bit reader used by the SBR bitstream
// parser.
package bits

// Reader reads bits from a byte buffer, most significant bit first.
//
// Two 32-bit words are kept loaded:
//   - bufa holds the word currently being consumed
//   - bufb holds the following word for reads that straddle a boundary
//
// Reads past the end of the buffer return zero bits. Callers compare
// Position against their own bit budget.
type Reader struct {
	buffer   []byte
	bufa     uint32 // word being consumed
	bufb     uint32 // look-ahead word
	bitsLeft uint32 // unread bits in bufa (1-32)
	pos      int    // byte offset of the next word to load
}

// NewReader creates a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	r := &Reader{buffer: data}
	r.seekByte(0)
	return r
}

// seekByte reloads both words starting at byte offset off.
func (r *Reader) seekByte(off int) {
	r.bufa = r.loadWord(off)
	r.bufb = r.loadWord(off + 4)
	r.pos = off + 8
	r.bitsLeft = 32
}

// loadWord loads up to 4 bytes at offset as a big-endian word, padding a
// short tail with zeros on the right.
func (r *Reader) loadWord(offset int) uint32 {
	if offset < 0 || offset >= len(r.buffer) {
		return 0
	}

	remaining := len(r.buffer) - offset
	if remaining >= 4 {
		return uint32(r.buffer[offset])<<24 |
			uint32(r.buffer[offset+1])<<16 |
			uint32(r.buffer[offset+2])<<8 |
			uint32(r.buffer[offset+3])
	}

	var result uint32
	switch remaining {
	case 3:
		result = uint32(r.buffer[offset])<<24 |
			uint32(r.buffer[offset+1])<<16 |
			uint32(r.buffer[offset+2])<<8
	case 2:
		result = uint32(r.buffer[offset])<<24 |
			uint32(r.buffer[offset+1])<<16
	case 1:
		result = uint32(r.buffer[offset]) << 24
	}
	return result
}

// Len returns the size of the underlying buffer in bits.
func (r *Reader) Len() int {
	return 8 * len(r.buffer)
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() int {
	return 8*(r.pos-8) + int(32-r.bitsLeft)
}

// SetPosition moves the reader to an absolute bit offset. Offsets past the
// end are allowed; subsequent reads return zeros.
func (r *Reader) SetPosition(bit int) {
	if bit < 0 {
		bit = 0
	}
	r.seekByte(bit / 8)
	r.skip(uint(bit % 8))
}

// ShowBits returns the next n bits without consuming them. n must be 0-32.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}

	if n <= uint(r.bitsLeft) {
		return (r.bufa << (32 - r.bitsLeft)) >> (32 - n)
	}

	fromB := n - uint(r.bitsLeft)
	return ((r.bufa & ((1 << r.bitsLeft) - 1)) << fromB) |
		(r.bufb >> (32 - fromB))
}

// skip discards n bits, n <= 32.
func (r *Reader) skip(n uint) {
	if n < uint(r.bitsLeft) {
		r.bitsLeft -= uint32(n)
		return
	}

	r.bufa = r.bufb
	r.bufb = r.loadWord(r.pos)
	r.pos += 4
	r.bitsLeft += 32 - uint32(n)
}

// ReadBits reads n bits, n in 0-32.
func (r *Reader) ReadBits(n uint) uint32 {
	if n == 0 {
		return 0
	}

	ret := r.ShowBits(n)
	r.skip(n)
	return ret
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() uint8 {
	if r.bitsLeft > 1 {
		r.bitsLeft--
		return uint8((r.bufa >> r.bitsLeft) & 1)
	}
	return uint8(r.ReadBits(1))
}

// ReadBool reads a single bit as a flag.
func (r *Reader) ReadBool() bool {
	return r.ReadBit() == 1
}
