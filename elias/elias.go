package elias

import (
	"math"
	"math/bits"

	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/bitstream"
)

// wideBits is the bit length of n = 2^64, the successor of the largest value.
const wideBits = 65

// length returns the bit length N of n = v+1 and the N-1 bits of n below its
// leading one.
func length(v uint64) (n uint, tail uint64) {
	if v == math.MaxUint64 {
		return wideBits, 0
	}

	n = uint(bits.Len64(v + 1))

	return n, (v + 1) &^ (1 << (n - 1))
}

// unary consumes a run of zero bits and the one bit that ends it and returns
// the length of the run. A run longer than limit fails with RangeError.
func unary(r *bitstream.Reader, limit uint) (n uint, err error) {
	start := r.Offset()

	for {
		peek, got, err := r.Peek(bitstream.MaxPeek)
		if err != nil {
			return 0, smallint.TruncatedError.Wrap(err)
		}

		tz := uint(bits.TrailingZeros64(peek))
		if tz > got {
			tz = got
		}

		n += tz
		if n > limit {
			return 0, smallint.RangeError.New("length prefix at bit %d exceeds %d", start, limit)
		}

		skip := tz
		if tz < got {
			skip++
		}

		err = r.Skip(skip)
		if err != nil {
			return 0, smallint.TruncatedError.Wrap(err)
		}

		if tz < got {
			return n, nil
		}
	}
}

// read consumes n bits, translating the end of the data into TruncatedError.
func read(r *bitstream.Reader, n uint) (v uint64, err error) {
	v, err = r.ReadBits(n)
	if err != nil {
		return 0, smallint.TruncatedError.Wrap(err)
	}

	return v, nil
}

// padding reports whether only zero padding of a final byte remains.
func padding(r *bitstream.Reader) bool {
	remaining := r.Remaining()
	if remaining >= 8 {
		return false
	}

	peek, _, err := r.Peek(bitstream.MaxPeek)

	return err == nil && peek == 0
}

// decode reads count values with next. If padded is set trailing zero
// padding counts as the end of the data.
func decode(data []byte, count int, padded bool, next func(r *bitstream.Reader) (uint64, error)) (values []uint64, err error) {
	err = smallint.CheckCount(count)
	if err != nil {
		return nil, err
	}

	r := bitstream.NewReader(data)
	values = make([]uint64, 0, min(count, len(data)*8))

	for len(values) < count {
		if r.Remaining() == 0 || (padded && padding(r)) {
			return nil, smallint.OverRequestError.New(
				"requested %d values, data holds %d",
				count,
				len(values),
			)
		}

		v, err := next(r)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

// encode writes every value with emit.
func encode(values []uint64, emit func(w *bitstream.Writer, v uint64)) (data []byte, err error) {
	w := bitstream.NewWriter(make([]byte, 0, len(values)))

	for _, v := range values {
		emit(w, v)
	}

	return w.Bytes(), nil
}
