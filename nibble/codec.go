package nibble

import (
	"math"
	"math/bits"

	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/bitstream"
)

const (
	// ChunkBits is the width of one chunk.
	ChunkBits = 4

	// ValueBits is the number of value bits in a chunk.
	ValueBits = 3

	valueMask = 1<<ValueBits - 1
	more      = 1 << ValueBits
)

// Codec is the nibble continuation codec. The zero value is ready to use.
type Codec struct{}

// Default is a ready codec.
var Default = Codec{}

var _ smallint.Codec = Codec{}

// Encode writes values in order with no separators.
func (Codec) Encode(values []uint64) (data []byte, err error) {
	w := bitstream.NewWriter(make([]byte, 0, len(values)))

	for _, v := range values {
		for {
			chunk := v & valueMask
			v >>= ValueBits

			if v != 0 {
				chunk |= more
			}

			w.Emit(chunk, ChunkBits)

			if v == 0 {
				break
			}

			v--
		}
	}

	return w.Bytes(), nil
}

// Decode reads exactly count values from the front of data.
func (Codec) Decode(data []byte, count int) (values []uint64, err error) {
	err = smallint.CheckCount(count)
	if err != nil {
		return nil, err
	}

	r := bitstream.NewReader(data)
	values = make([]uint64, 0, min(count, len(data)*2))

	for len(values) < count {
		if r.Remaining() == 0 {
			return nil, smallint.OverRequestError.New(
				"requested %d values, data holds %d",
				count,
				len(values),
			)
		}

		v, err := value(r)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

func value(r *bitstream.Reader) (v uint64, err error) {
	start := r.Offset()

	for shift := uint(0); ; shift += ValueBits {
		chunk, err := r.ReadBits(ChunkBits)
		if err != nil {
			return 0, smallint.TruncatedError.Wrap(err)
		}

		part := chunk & valueMask
		if shift > 0 {
			if shift >= 64 || part+1 > math.MaxUint64>>shift {
				return 0, smallint.RangeError.New("value at bit %d exceeds 64 bits", start)
			}

			part = (part + 1) << shift
		}

		var carry uint64
		v, carry = bits.Add64(v, part, 0)
		if carry != 0 {
			return 0, smallint.RangeError.New("value at bit %d exceeds 64 bits", start)
		}

		if chunk&more == 0 {
			return v, nil
		}
	}
}
