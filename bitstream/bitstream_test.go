package bitstream_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/smallint/bitstream"
)

var testByteSequence = []byte{
	//        LSB        MSB
	0x00, // (0) 00000000
	0x01, // (1) 10000000
	0x02, // (2) 01000000
	0x10, // (3) 00001000
	0x80, // (4) 00000001
	0x3A, // (5) 01011100
	0x02, // (6) 01000000
	0x3C, // (7) 00111100
}

var testBitSequence = []struct {
	bits  uint64
	count uint
	pos   uint64
}{
	{bits: 0, count: 2, pos: 2},
	{bits: 0, count: 3, pos: 5},
	{bits: 0, count: 3, pos: 8},
	{bits: 1, count: 3, pos: 11},
	{bits: 64, count: 10, pos: 21},
	{bits: 128, count: 10, pos: 31},
	{bits: 1280, count: 11, pos: 42},
	{bits: 142, count: 11, pos: 53},
	{bits: 0, count: 5, pos: 58},
	{bits: 7, count: 3, pos: 61},
	{bits: 1, count: 3, pos: 64},
}

func TestWriter(t *testing.T) {
	t.Run("sequence", func(t *testing.T) {
		w := bitstream.NewWriter(nil)

		for _, tc := range testBitSequence {
			w.Emit(tc.bits, tc.count)
			require.Equal(t, tc.pos, w.Len())
		}

		require.Equal(t, testByteSequence, w.Bytes(), spew.Sdump(w.Bytes()))
		require.True(t, w.Aligned())
	})

	t.Run("fields", func(t *testing.T) {
		type TC struct {
			Name   string
			Fn     func(w *bitstream.Writer)
			Output []byte
			Mark   error
		}

		tcs := []TC{
			{
				Name:   "empty",
				Fn:     func(w *bitstream.Writer) {},
				Output: nil,
				Mark:   oops.New("unexpected"),
			},
			{
				Name: "zero width",
				Fn: func(w *bitstream.Writer) {
					w.Emit(0xFF, 0)
				},
				Output: nil,
				Mark:   oops.New("unexpected"),
			},
			{
				Name: "partial byte kept",
				Fn: func(w *bitstream.Writer) {
					w.Emit(0b1, 1)
				},
				Output: []byte{0b_0000_0001},
				Mark:   oops.New("unexpected"),
			},
			{
				Name: "high bits masked",
				Fn: func(w *bitstream.Writer) {
					w.Emit(0xFF, 3)
				},
				Output: []byte{0b_0000_0111},
				Mark:   oops.New("unexpected"),
			},
			{
				Name: "straddle",
				Fn: func(w *bitstream.Writer) {
					w.Emit(0b1, 1)
					w.Emit(0b10110, 5)
					w.Emit(0b111, 3)
				},
				Output: []byte{0b_1110_1101, 0b_0000_0001},
				Mark:   oops.New("unexpected"),
			},
			{
				Name: "full width aligned",
				Fn: func(w *bitstream.Writer) {
					w.Emit(0x0807060504030201, 64)
				},
				Output: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
				Mark:   oops.New("unexpected"),
			},
			{
				Name: "full width unaligned",
				Fn: func(w *bitstream.Writer) {
					w.Emit(0b1111, 4)
					w.Emit(math.MaxUint64, 64)
				},
				Output: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F},
				Mark:   oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			t.Run(tc.Name, func(t *testing.T) {
				w := bitstream.NewWriter(nil)
				tc.Fn(w)

				require.Equal(t, tc.Output, w.Bytes(), tc.Mark)
			})
		}
	})

	t.Run("append", func(t *testing.T) {
		w := bitstream.NewWriter([]byte{0xAA})
		w.Emit(0b11, 2)

		require.Equal(t, []byte{0xAA, 0b_0000_0011}, w.Bytes())
		require.Equal(t, uint64(10), w.Len())
		require.False(t, w.Aligned())
	})

	t.Run("too wide", func(t *testing.T) {
		w := bitstream.NewWriter(nil)

		require.Panics(t, func() {
			w.Emit(0, 65)
		})
	})
}

func TestReader(t *testing.T) {
	t.Run("sequence", func(t *testing.T) {
		r := bitstream.NewReader(testByteSequence)

		for i, tc := range testBitSequence {
			v, err := r.ReadBits(tc.count)
			require.NoError(t, err, i)
			require.Equal(t, tc.bits, v, i)
			require.Equal(t, tc.pos, r.Offset(), i)
		}

		require.Equal(t, uint64(0), r.Remaining())

		_, err := r.ReadBits(1)
		require.True(t, bitstream.EndOfStream.Has(err), err)
	})

	t.Run("peek", func(t *testing.T) {
		r := bitstream.NewReader([]byte{0b_1110_1101, 0b_0000_0001})

		bits, got, err := r.Peek(8)
		require.NoError(t, err)
		require.Equal(t, uint(8), got)
		require.Equal(t, uint64(0b_1110_1101), bits)
		require.Equal(t, uint64(0), r.Offset())

		v, err := r.ReadBits(6)
		require.NoError(t, err)
		require.Equal(t, uint64(0b_10_1101), v)

		bits, got, err = r.Peek(8)
		require.NoError(t, err)
		require.Equal(t, uint(8), got)
		require.Equal(t, uint64(0b_0000_0111), bits)

		v, err = r.ReadBits(7)
		require.NoError(t, err)
		require.Equal(t, uint64(0b_000_0111), v)

		bits, got, err = r.Peek(8)
		require.NoError(t, err)
		require.Equal(t, uint(3), got)
		require.Equal(t, uint64(0), bits)

		require.NoError(t, r.Skip(3))

		_, _, err = r.Peek(8)
		require.True(t, bitstream.EndOfStream.Has(err), err)
	})

	t.Run("short read consumes nothing", func(t *testing.T) {
		r := bitstream.NewReader([]byte{0xFF, 0xFF})

		require.NoError(t, r.Skip(3))

		_, err := r.ReadBits(14)
		require.True(t, bitstream.EndOfStream.Has(err), err)
		require.Equal(t, uint64(3), r.Offset())

		v, err := r.ReadBits(13)
		require.NoError(t, err)
		require.Equal(t, uint64(1<<13-1), v)
	})

	t.Run("invalid width", func(t *testing.T) {
		r := bitstream.NewReader(make([]byte, 16))

		_, _, err := r.Peek(9)
		require.Error(t, err)

		_, err = r.ReadBits(65)
		require.Error(t, err)
	})
}

func TestRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(876543))

	type field struct {
		value uint64
		width uint
	}

	fields := make([]field, 2000)
	for i := range fields {
		width := uint(rng.Intn(bitstream.MaxWidth + 1))

		value := rng.Uint64()
		if width < bitstream.MaxWidth {
			value &= 1<<width - 1
		}

		fields[i] = field{value, width}
	}

	w := bitstream.NewWriter(nil)
	var total uint64

	for _, f := range fields {
		w.Emit(f.value, f.width)
		total += uint64(f.width)
	}

	require.Equal(t, total, w.Len())
	require.Equal(t, int((total+7)/8), len(w.Bytes()))

	r := bitstream.NewReader(w.Bytes())

	for i, f := range fields {
		v, err := r.ReadBits(f.width)
		require.NoError(t, err, i)
		require.Equal(t, f.value, v, "field %d width %d", i, f.width)
	}

	require.Less(t, r.Remaining(), uint64(8))
}
