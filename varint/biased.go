package varint

import (
	"math"
	"math/bits"

	"github.com/calebcase/smallint"
)

const (
	valueBits = 7
	valueMask = 1<<valueBits - 1
	more      = 1 << valueBits
)

// MaxLen is the longest encoding of a 64-bit value in either code.
const MaxLen = 10

// Biased is the biased byte continuation codec. The zero value is ready to
// use.
type Biased struct{}

var _ smallint.Codec = Biased{}

// AppendBiased appends the encoding of v to buf.
func AppendBiased(buf []byte, v uint64) []byte {
	for {
		b := byte(v & valueMask)
		v >>= valueBits

		if v == 0 {
			return append(buf, b)
		}

		buf = append(buf, b|more)
		v--
	}
}

// ConsumeBiased decodes one value from the front of data and returns it with
// the number of bytes read.
func ConsumeBiased(data []byte) (v uint64, n int, err error) {
	for shift := uint(0); ; shift += valueBits {
		if n >= len(data) {
			return 0, 0, smallint.TruncatedError.New("value ends after %d bytes", n)
		}

		b := data[n]
		n++

		part := uint64(b & valueMask)
		if shift > 0 {
			if shift >= 64 || part+1 > math.MaxUint64>>shift {
				return 0, 0, smallint.RangeError.New("value exceeds 64 bits after %d bytes", n)
			}

			part = (part + 1) << shift
		}

		var carry uint64
		v, carry = bits.Add64(v, part, 0)
		if carry != 0 {
			return 0, 0, smallint.RangeError.New("value exceeds 64 bits after %d bytes", n)
		}

		if b&more == 0 {
			return v, n, nil
		}
	}
}

// Encode writes values in order with no separators.
func (Biased) Encode(values []uint64) (data []byte, err error) {
	data = make([]byte, 0, len(values))

	for _, v := range values {
		data = AppendBiased(data, v)
	}

	return data, nil
}

// Decode reads exactly count values from the front of data.
func (Biased) Decode(data []byte, count int) (values []uint64, err error) {
	return decode(data, count, ConsumeBiased)
}

// decode runs consume until count values are read.
func decode(data []byte, count int, consume func([]byte) (uint64, int, error)) (values []uint64, err error) {
	err = smallint.CheckCount(count)
	if err != nil {
		return nil, err
	}

	values = make([]uint64, 0, min(count, len(data)))

	off := 0
	for len(values) < count {
		if off == len(data) {
			return nil, smallint.OverRequestError.New(
				"requested %d values, data holds %d",
				count,
				len(values),
			)
		}

		v, n, err := consume(data[off:])
		if err != nil {
			return nil, err
		}

		values = append(values, v)
		off += n
	}

	return values, nil
}
