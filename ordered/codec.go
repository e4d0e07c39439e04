package ordered

import "github.com/calebcase/smallint"

// Codec is the order-preserving codec. The zero value is ready to use.
type Codec struct{}

// Default is a ready codec.
var Default = Codec{}

var _ smallint.Codec = Codec{}

// Encode writes unsigned values in order with no separators.
func (Codec) Encode(values []uint64) (data []byte, err error) {
	data = make([]byte, 0, len(values))

	for _, v := range values {
		data = AppendUint(data, v)
	}

	return data, nil
}

// EncodeInt writes signed values in order with no separators.
func (Codec) EncodeInt(values []int64) (data []byte, err error) {
	data = make([]byte, 0, len(values))

	for _, v := range values {
		data = AppendInt(data, v)
	}

	return data, nil
}

// Decode reads exactly count unsigned values from the front of data. A
// negative value fails with RangeError.
func (Codec) Decode(data []byte, count int) (values []uint64, err error) {
	return decode(data, count, ConsumeUint)
}

// DecodeInt reads exactly count signed values from the front of data. A value
// above math.MaxInt64 fails with RangeError.
func (Codec) DecodeInt(data []byte, count int) (values []int64, err error) {
	return decode(data, count, ConsumeInt)
}

func decode[T int64 | uint64](data []byte, count int, consume func([]byte) (T, int, error)) (values []T, err error) {
	err = smallint.CheckCount(count)
	if err != nil {
		return nil, err
	}

	values = make([]T, 0, min(count, len(data)))

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
