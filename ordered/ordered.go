package ordered

import (
	"math"
	"math/bits"

	"github.com/calebcase/smallint"
)

// Markers for the ranges of the first byte.
const (
	negMulti = 0x10
	neg2Byte = 0x20
	neg1Byte = 0x40
	pos1Byte = 0x80
	pos2Byte = 0xc0
	posMulti = 0xe0
)

// Range limits.
const (
	neg1ByteMin = -(1 << 6)
	neg2ByteMin = -(1 << 13) + neg1ByteMin
	pos1ByteMax = 1<<6 - 1
	pos2ByteMax = 1<<13 + pos1ByteMax
)

// MaxLen is the longest encoding.
const MaxLen = 9

// appendBig appends the low n bytes of v, most significant first.
func appendBig(buf []byte, v uint64, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		buf = append(buf, byte(v>>(8*i)))
	}

	return buf
}

// AppendUint appends the encoding of v to buf.
func AppendUint(buf []byte, v uint64) []byte {
	switch {
	case v <= pos1ByteMax:
		return append(buf, pos1Byte|byte(v))
	case v <= pos2ByteMax:
		x := v - (pos1ByteMax + 1)

		return append(buf, pos2Byte|byte(x>>8), byte(x))
	}

	x := v - (pos2ByteMax + 1)
	n := max(1, (bits.Len64(x)+7)/8)

	return appendBig(append(buf, posMulti|byte(n)), x, n)
}

// AppendInt appends the encoding of v to buf.
func AppendInt(buf []byte, v int64) []byte {
	switch {
	case v >= 0:
		return AppendUint(buf, uint64(v))
	case v >= neg1ByteMin:
		return append(buf, neg1Byte|byte(v-neg1ByteMin))
	case v >= neg2ByteMin:
		x := v - neg2ByteMin

		return append(buf, neg2Byte|byte(x>>8), byte(x))
	}

	// Leading 0xff bytes of the two's complement are implied by the marker.
	lz := bits.LeadingZeros64(^uint64(v)) / 8

	return appendBig(append(buf, negMulti|byte(lz)), uint64(v), 8-lz)
}

// consume decodes the value at the front of data. Negative values come back
// as their two's complement with neg set.
func consume(data []byte) (v uint64, neg bool, n int, err error) {
	if len(data) == 0 {
		return 0, false, 0, smallint.TruncatedError.New("no marker byte")
	}

	b := data[0]

	need := func(extra int) (err error) {
		if len(data) < 1+extra {
			return smallint.TruncatedError.New(
				"marker %#02x needs %d bytes, have %d",
				b,
				extra,
				len(data)-1,
			)
		}

		return nil
	}

	switch {
	case b&0xf0 == negMulti:
		lz := int(b & 0x0f)
		if lz > 7 {
			return 0, false, 0, smallint.MalformedError.New("marker %#02x: negative length %d", b, 8-lz)
		}

		err = need(8 - lz)
		if err != nil {
			return 0, false, 0, err
		}

		// The dropped leading bytes are all 0xff.
		v = math.MaxUint64
		for _, p := range data[1 : 9-lz] {
			v = v<<8 | uint64(p)
		}

		if int64(v) >= 0 {
			return 0, false, 0, smallint.MalformedError.New("marker %#02x: non-negative payload", b)
		}

		return v, true, 9 - lz, nil
	case b&0xe0 == neg2Byte:
		err = need(1)
		if err != nil {
			return 0, false, 0, err
		}

		x := int64(b&0x1f)<<8 | int64(data[1])

		return uint64(x + neg2ByteMin), true, 2, nil
	case b&0xc0 == neg1Byte:
		return uint64(int64(b&0x3f) + neg1ByteMin), true, 1, nil
	case b&0xc0 == pos1Byte:
		return uint64(b & 0x3f), false, 1, nil
	case b&0xe0 == pos2Byte:
		err = need(1)
		if err != nil {
			return 0, false, 0, err
		}

		x := uint64(b&0x1f)<<8 | uint64(data[1])

		return x + pos1ByteMax + 1, false, 2, nil
	case b&0xf0 == posMulti:
		l := int(b & 0x0f)
		if l == 0 || l > 8 {
			return 0, false, 0, smallint.MalformedError.New("marker %#02x: positive length %d", b, l)
		}

		err = need(l)
		if err != nil {
			return 0, false, 0, err
		}

		var x uint64
		for _, p := range data[1 : 1+l] {
			x = x<<8 | uint64(p)
		}

		v, carry := bits.Add64(x, pos2ByteMax+1, 0)
		if carry != 0 {
			return 0, false, 0, smallint.RangeError.New("marker %#02x: value exceeds 64 bits", b)
		}

		return v, false, 1 + l, nil
	}

	return 0, false, 0, smallint.MalformedError.New("unused marker %#02x", b)
}

// ConsumeUint decodes one non-negative value from the front of data and
// returns it with the number of bytes read.
func ConsumeUint(data []byte) (v uint64, n int, err error) {
	v, neg, n, err := consume(data)
	if err != nil {
		return 0, 0, err
	}

	if neg {
		return 0, 0, smallint.RangeError.New("negative value %d", int64(v))
	}

	return v, n, nil
}

// ConsumeInt decodes one signed value from the front of data and returns it
// with the number of bytes read.
func ConsumeInt(data []byte) (v int64, n int, err error) {
	u, neg, n, err := consume(data)
	if err != nil {
		return 0, 0, err
	}

	if !neg && u > math.MaxInt64 {
		return 0, 0, smallint.RangeError.New("value %d exceeds int64", u)
	}

	return int64(u), n, nil
}
