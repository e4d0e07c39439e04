package varint

import (
	"errors"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/calebcase/smallint"
)

// Standard is the protobuf varint codec. The zero value is ready to use.
type Standard struct{}

var _ smallint.Codec = Standard{}

// ConsumeStandard decodes one value from the front of data and returns it
// with the number of bytes read.
func ConsumeStandard(data []byte) (v uint64, n int, err error) {
	v, n = protowire.ConsumeVarint(data)
	if n < 0 {
		err = protowire.ParseError(n)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, 0, smallint.TruncatedError.Wrap(err)
		}

		return 0, 0, smallint.RangeError.Wrap(err)
	}

	return v, n, nil
}

// Encode writes values in order with no separators.
func (Standard) Encode(values []uint64) (data []byte, err error) {
	data = make([]byte, 0, len(values))

	for _, v := range values {
		data = protowire.AppendVarint(data, v)
	}

	return data, nil
}

// Decode reads exactly count values from the front of data.
func (Standard) Decode(data []byte, count int) (values []uint64, err error) {
	return decode(data, count, ConsumeStandard)
}
