package integer_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/calebcase/oops"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/form"
	"github.com/calebcase/smallint/integer"
)

func TestToFromUnsigned(t *testing.T) {
	type TC struct {
		name string
		u    uint64
	}

	tcs := []TC{
		{name: "0", u: 0},
		{name: "-1", u: 1},
		{name: "+1", u: 2},
		{name: "-2", u: 3},
		{name: "+2", u: 4},
		{name: "-64", u: 127},
		{name: "+63", u: 126},
		{name: "+9223372036854775807", u: math.MaxUint64 - 1},
		{name: "-9223372036854775808", u: math.MaxUint64},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			// These checks ensure that our test case name matches the value.
			n, err := strconv.ParseInt(tc.name, 10, 64)
			require.NoError(t, err)

			require.Equal(t, tc.u, integer.ToUnsigned(n))
			require.Equal(t, n, integer.FromUnsigned[int64](tc.u))
		})
	}
}

func TestNarrowTypes(t *testing.T) {
	for n := math.MinInt8; n <= math.MaxInt8; n++ {
		u := integer.ToUnsigned(int8(n))
		require.Equal(t, integer.ToUnsigned(int64(n)), u)
		require.Less(t, u, uint64(256))
		require.Equal(t, int8(n), integer.FromUnsigned[int8](u))
	}

	require.Equal(t, uint64(math.MaxUint32), integer.ToUnsigned(int32(math.MinInt32)))
}

func TestCodec(t *testing.T) {
	c := integer.New(form.Default)
	require.Equal(t, smallint.Codec(form.Default), c.Unsigned())

	type TC struct {
		values []int64
		data   []byte
		Mark   error
	}

	tcs := []TC{
		{
			values: []int64{},
			data:   []byte{},
			Mark:   oops.New("unexpected"),
		},
		{
			// 0 -> 0, -1 -> 1: two form 1 codes.
			values: []int64{0, -1},
			data:   []byte{0b0000_1000},
			Mark:   oops.New("unexpected"),
		},
		{
			// +1 -> 2: form 2 with payload 0.
			values: []int64{1},
			data:   []byte{0b0000_0001},
			Mark:   oops.New("unexpected"),
		},
		{
			// -19 -> 37: top of form 3.
			values: []int64{-19},
			data:   []byte{0xfb},
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.values), func(t *testing.T) {
			data, err := c.Encode(tc.values)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.data, data, tc.Mark)

			values, err := c.Decode(data, len(tc.values))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.values, values, tc.Mark)
		})
	}
}

func TestCodecRoundtrip(t *testing.T) {
	c := integer.New(form.Default)

	rng := rand.New(rand.NewSource(7))

	values := []int64{math.MinInt64, math.MaxInt64, 0, -1, 1}
	for i := 0; i < 1000; i++ {
		// Spread magnitudes across every form.
		v := rng.Int63() >> rng.Intn(63)
		if rng.Intn(2) == 0 {
			v = -v
		}

		values = append(values, v)
	}

	data, err := c.Encode(values)
	require.NoError(t, err)

	decoded, err := c.Decode(data, len(values))
	require.NoError(t, err)

	if diff := cmp.Diff(values, decoded); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestCodecErrors(t *testing.T) {
	c := integer.New(form.Default)

	_, err := c.Decode([]byte{}, 1)
	require.Error(t, err)
	require.True(t, smallint.OverRequestError.Has(err), "%+v", err)

	_, err = c.Decode([]byte{0x1f}, 1)
	require.Error(t, err)
	require.True(t, smallint.TruncatedError.Has(err), "%+v", err)

	_, err = c.Decode([]byte{}, -1)
	require.Error(t, err)
	require.True(t, smallint.RangeError.Has(err), "%+v", err)
}

func BenchmarkCodecEncode(b *testing.B) {
	c := integer.New(form.Default)
	values := []int64{-1, 2, -300, 70000, math.MinInt64}

	for n := 0; n < b.N; n++ {
		_, err := c.Encode(values)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
