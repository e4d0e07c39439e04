package elias

import (
	"math"
	"math/bits"

	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/bitstream"
)

// maxLengthBits bounds L for Delta: N is at most 65, so L = bitlen(N)-1 is at
// most 6.
const maxLengthBits = 6

// Delta is the Elias delta code. The zero value is ready to use.
type Delta struct{}

var _ smallint.Codec = Delta{}

// Size returns the encoded length of v in bits.
func (Delta) Size(v uint64) uint {
	n, _ := length(v)
	l := uint(bits.Len(n)) - 1

	return 2*l + n
}

func (Delta) emit(w *bitstream.Writer, v uint64) {
	n, tail := length(v)
	l := uint(bits.Len(n)) - 1

	w.Emit(1<<l, l+1)
	w.Emit(uint64(n), l)
	w.Emit(tail, n-1)
}

func (Delta) next(r *bitstream.Reader) (v uint64, err error) {
	start := r.Offset()

	l, err := unary(r, maxLengthBits)
	if err != nil {
		return 0, err
	}

	low, err := read(r, l)
	if err != nil {
		return 0, err
	}

	n := uint(1)<<l | uint(low)
	if n > wideBits {
		return 0, smallint.RangeError.New("value at bit %d has %d bits", start, n)
	}

	tail, err := read(r, n-1)
	if err != nil {
		return 0, err
	}

	if n == wideBits {
		if tail != 0 {
			return 0, smallint.RangeError.New("value at bit %d exceeds 64 bits", start)
		}

		return math.MaxUint64, nil
	}

	return (1<<(n-1) | tail) - 1, nil
}

// Encode writes values in order with no separators.
func (d Delta) Encode(values []uint64) (data []byte, err error) {
	return encode(values, d.emit)
}

// Decode reads exactly count values from the front of data.
func (d Delta) Decode(data []byte, count int) (values []uint64, err error) {
	return decode(data, count, true, d.next)
}
