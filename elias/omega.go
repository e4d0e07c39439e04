package elias

import (
	"math"
	"math/bits"

	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/bitstream"
)

// maxSegments bounds the segments of one Omega code: 2^64, 64, 6, 2.
const maxSegments = 4

// Omega is the Elias omega code. The zero value is ready to use.
type Omega struct{}

var _ smallint.Codec = Omega{}

type segment struct {
	tail uint64
	bits uint
}

// segments returns the segments of v, last written first.
func segments(v uint64) (segs [maxSegments]segment, count int) {
	n, tail := length(v)

	for n > 1 {
		segs[count] = segment{tail: tail, bits: n - 1}
		count++

		next := uint64(n - 1)
		n = uint(bits.Len64(next))
		tail = next &^ (1 << (n - 1))
	}

	return segs, count
}

// Size returns the encoded length of v in bits.
func (Omega) Size(v uint64) (size uint) {
	segs, count := segments(v)
	for _, s := range segs[:count] {
		size += 1 + s.bits
	}

	return size + 1
}

func (Omega) emit(w *bitstream.Writer, v uint64) {
	segs, count := segments(v)

	for i := count - 1; i >= 0; i-- {
		w.Emit(1, 1)
		w.Emit(segs[i].tail, segs[i].bits)
	}

	w.Emit(0, 1)
}

// omegaDecoder holds the state of the value being read.
type omegaDecoder struct {
	r *bitstream.Reader

	// cur is the value of the last segment read, which is also the number
	// of tail bits in the next one. wide is set once cur reached 2^64.
	cur  uint64
	wide bool
}

func (d *omegaDecoder) next(r *bitstream.Reader) (v uint64, err error) {
	start := r.Offset()
	d.r, d.cur, d.wide = r, 1, false

	for {
		bit, err := read(d.r, 1)
		if err != nil {
			return 0, err
		}

		if bit == 0 {
			if d.wide {
				return math.MaxUint64, nil
			}

			return d.cur - 1, nil
		}

		if d.wide || d.cur > 64 {
			return 0, smallint.RangeError.New("value at bit %d exceeds 64 bits", start)
		}

		tail, err := read(d.r, uint(d.cur))
		if err != nil {
			return 0, err
		}

		if d.cur == 64 {
			if tail != 0 {
				return 0, smallint.RangeError.New("value at bit %d exceeds 64 bits", start)
			}

			d.wide = true

			continue
		}

		d.cur = 1<<d.cur | tail
	}
}

// Encode writes values in order with no separators.
func (o Omega) Encode(values []uint64) (data []byte, err error) {
	return encode(values, o.emit)
}

// Decode reads exactly count values from the front of data. Zero padding in
// a final partial byte decodes as zero values.
func (Omega) Decode(data []byte, count int) (values []uint64, err error) {
	d := &omegaDecoder{}

	return decode(data, count, false, d.next)
}
