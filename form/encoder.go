package form

import (
	"github.com/calebcase/smallint/bitstream"
)

type encoder struct {
	table *Table
	w     *bitstream.Writer
}

func (e *encoder) value(v uint64) (err error) {
	c, err := e.table.Select(v)
	if err != nil {
		return err
	}

	e.w.Emit(c.Prefix, c.PrefixBits)
	e.w.Emit(c.Payload, c.PayloadBits)

	return nil
}

// Encode writes values in order with no separators. On error no data is
// returned.
func (c *Codec) Encode(values []uint64) (data []byte, err error) {
	e := &encoder{
		table: c.table,
		w:     bitstream.NewWriter(make([]byte, 0, len(values))),
	}

	for _, v := range values {
		err = e.value(v)
		if err != nil {
			return nil, err
		}
	}

	return e.w.Bytes(), nil
}
