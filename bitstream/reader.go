package bitstream

import "github.com/calebcase/oops"

// MaxPeek is the widest lookahead Peek provides.
const MaxPeek = 8

// Reader consumes bit fields from a byte slice. The slice is never modified.
type Reader struct {
	buf []byte

	// off is the index of the byte holding the next bit and bit the
	// number of bits of buf[off] already consumed (0..7).
	off int
	bit uint
}

// NewReader returns a reader positioned at the first bit of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{
		buf: buf,
	}
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() uint64 {
	return uint64(len(r.buf)-r.off)*8 - uint64(r.bit)
}

// Offset returns the number of bits consumed so far.
func (r *Reader) Offset() uint64 {
	return uint64(r.off)*8 + uint64(r.bit)
}

// Peek returns up to n upcoming bits without consuming them. got is the number
// of bits actually available (at most n); the bits above got are zero. It
// fails with EndOfStream when no bits remain.
func (r *Reader) Peek(n uint) (bits uint64, got uint, err error) {
	if n > MaxPeek {
		return 0, 0, oops.Trace(ErrInvalidWidth)
	}

	remaining := r.Remaining()
	if remaining == 0 {
		return 0, 0, EndOfStream.New("peek at bit %d", r.Offset())
	}

	got = n
	if uint64(got) > remaining {
		got = uint(remaining)
	}

	saved := *r

	bits, err = r.ReadBits(got)
	*r = saved

	return bits, got, err
}

// ReadBits consumes n bits and returns them packed from the lowest bit up. If
// fewer than n bits remain nothing is consumed and EndOfStream is returned.
func (r *Reader) ReadBits(n uint) (v uint64, err error) {
	if n > MaxWidth {
		return 0, oops.Trace(ErrInvalidWidth)
	}

	if remaining := r.Remaining(); uint64(n) > remaining {
		return 0, EndOfStream.New(
			"read %d bits at bit %d: %d remaining",
			n,
			r.Offset(),
			remaining,
		)
	}

	if n == 0 {
		return 0, nil
	}

	var got uint

	// Start
	if r.bit != 0 {
		avail := 8 - r.bit
		v = uint64(r.buf[r.off] >> r.bit)

		if n < avail {
			r.bit += n

			return v & (1<<n - 1), nil
		}

		got = avail
		r.off++
		r.bit = 0
	}

	// Whole bytes
	for ; n-got >= 8; got += 8 {
		v |= uint64(r.buf[r.off]) << got
		r.off++
	}

	// Remainder
	if rem := n - got; rem > 0 {
		v |= uint64(r.buf[r.off]&(1<<rem-1)) << got
		r.bit = rem
	}

	return v, nil
}

// Skip consumes n bits.
func (r *Reader) Skip(n uint) (err error) {
	_, err = r.ReadBits(n)

	return err
}
