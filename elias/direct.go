package elias

import (
	"math/bits"

	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/bitstream"
)

// MaxInitialBits is the widest direct field DirectDelta accepts.
const MaxInitialBits = 8

// DirectDelta is a delta code with a direct escape for small values: a value
// below 2^InitialBits is written as a one bit followed by InitialBits bits of
// the value. Larger values are shifted down past the direct range and written
// in the delta layout, which always starts with a zero bit.
type DirectDelta struct {
	// InitialBits is the width of the direct field, 1 through 8.
	InitialBits uint
}

var _ smallint.Codec = DirectDelta{}

func (d DirectDelta) check() (err error) {
	if d.InitialBits < 1 || d.InitialBits > MaxInitialBits {
		return Error.New("initial bits %d outside 1..%d", d.InitialBits, MaxInitialBits)
	}

	return nil
}

// max is the largest directly written value.
func (d DirectDelta) max() uint64 {
	return 1<<d.InitialBits - 1
}

// Size returns the encoded length of v in bits.
func (d DirectDelta) Size(v uint64) uint {
	if v <= d.max() {
		return d.InitialBits + 1
	}

	n := uint(bits.Len64(v - d.max() + 1))
	l := uint(bits.Len(n)) - 1

	return 2*l + n
}

func (d DirectDelta) emit(w *bitstream.Writer, v uint64) {
	if v <= d.max() {
		w.Emit(v<<1|1, d.InitialBits+1)

		return
	}

	v = v - d.max() + 1
	n := uint(bits.Len64(v))
	l := uint(bits.Len(n)) - 1

	w.Emit(1<<l, l+1)
	w.Emit(uint64(n), l)
	w.Emit(v, n-1)
}

func (d DirectDelta) next(r *bitstream.Reader) (v uint64, err error) {
	start := r.Offset()

	l, err := unary(r, maxLengthBits)
	if err != nil {
		return 0, err
	}

	if l == 0 {
		return read(r, d.InitialBits)
	}

	low, err := read(r, l)
	if err != nil {
		return 0, err
	}

	n := uint(1)<<l | uint(low)
	if n > 64 {
		return 0, smallint.RangeError.New("value at bit %d has %d bits", start, n)
	}

	tail, err := read(r, n-1)
	if err != nil {
		return 0, err
	}

	v, carry := bits.Add64(1<<(n-1)|tail, d.max()-1, 0)
	if carry != 0 {
		return 0, smallint.RangeError.New("value at bit %d exceeds 64 bits", start)
	}

	return v, nil
}

// Encode writes values in order with no separators. It fails with Error if
// InitialBits is out of range.
func (d DirectDelta) Encode(values []uint64) (data []byte, err error) {
	err = d.check()
	if err != nil {
		return nil, err
	}

	return encode(values, d.emit)
}

// Decode reads exactly count values from the front of data. It fails with
// Error if InitialBits is out of range.
func (d DirectDelta) Decode(data []byte, count int) (values []uint64, err error) {
	err = d.check()
	if err != nil {
		return nil, err
	}

	return decode(data, count, true, d.next)
}
