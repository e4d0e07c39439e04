package integer

import "github.com/calebcase/smallint"

// Codec encodes signed values by mapping them with ToUnsigned and handing
// them to an unsigned codec.
type Codec struct {
	codec smallint.Codec
}

// New returns a signed codec over c.
func New(c smallint.Codec) *Codec {
	return &Codec{
		codec: c,
	}
}

// Unsigned returns the wrapped codec.
func (c *Codec) Unsigned() smallint.Codec {
	return c.codec
}

// Encode encodes values in order.
func (c *Codec) Encode(values []int64) (data []byte, err error) {
	us := make([]uint64, len(values))
	for i, v := range values {
		us[i] = ToUnsigned(v)
	}

	return c.codec.Encode(us)
}

// Decode reads exactly count values from the front of data.
func (c *Codec) Decode(data []byte, count int) (values []int64, err error) {
	us, err := c.codec.Decode(data, count)
	if err != nil {
		return nil, err
	}

	values = make([]int64, len(us))
	for i, u := range us {
		values[i] = FromUnsigned[int64](u)
	}

	return values, nil
}
