package elias

import (
	"math"

	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/bitstream"
)

// Gamma is the Elias gamma code. The zero value is ready to use.
type Gamma struct{}

var _ smallint.Codec = Gamma{}

// Size returns the encoded length of v in bits.
func (Gamma) Size(v uint64) uint {
	n, _ := length(v)

	return 2*n - 1
}

func (Gamma) emit(w *bitstream.Writer, v uint64) {
	n, tail := length(v)

	w.Emit(0, n-1)
	w.Emit(1, 1)
	w.Emit(tail, n-1)
}

func (Gamma) next(r *bitstream.Reader) (v uint64, err error) {
	start := r.Offset()

	zeros, err := unary(r, wideBits-1)
	if err != nil {
		return 0, err
	}

	tail, err := read(r, zeros)
	if err != nil {
		return 0, err
	}

	if zeros == wideBits-1 {
		if tail != 0 {
			return 0, smallint.RangeError.New("value at bit %d exceeds 64 bits", start)
		}

		return math.MaxUint64, nil
	}

	return (1<<zeros | tail) - 1, nil
}

// Encode writes values in order with no separators.
func (g Gamma) Encode(values []uint64) (data []byte, err error) {
	return encode(values, g.emit)
}

// Decode reads exactly count values from the front of data.
func (g Gamma) Decode(data []byte, count int) (values []uint64, err error) {
	return decode(data, count, true, g.next)
}
