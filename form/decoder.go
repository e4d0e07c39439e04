package form

import (
	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/bitstream"
)

type decoder struct {
	table *Table
	r     *bitstream.Reader

	// count is the number of values requested and decoded the number
	// produced so far.
	count   int
	decoded int

	// peek holds the lookahead of the value being classified and got the
	// number of valid bits in it.
	peek byte
	got  uint
}

// next decodes one value.
func (d *decoder) next() (v uint64, err error) {
	if d.r.Remaining() == 0 {
		return 0, smallint.OverRequestError.New(
			"requested %d values, data holds %d",
			d.count,
			d.decoded,
		)
	}

	bits, got, err := d.r.Peek(bitstream.MaxPeek)
	if err != nil {
		return 0, smallint.TruncatedError.Wrap(err)
	}

	d.peek, d.got = byte(bits), got

	c, err := d.table.Classify(d.peek, d.got)
	if err != nil {
		return 0, err
	}

	if c.Form == d.table.raw.Index {
		// The control byte was fully peeked.
		err = d.r.Skip(c.PrefixBits)
		if err != nil {
			return 0, smallint.TruncatedError.Wrap(err)
		}

		c.Payload, err = d.r.ReadBits(c.PayloadBits)
		if err != nil {
			return 0, smallint.TruncatedError.Wrap(err)
		}
	} else {
		code, err := d.r.ReadBits(c.Width())
		if err != nil {
			return 0, smallint.TruncatedError.Wrap(err)
		}

		c.Payload = code >> c.PrefixBits
	}

	v, err = d.table.Value(c)
	if err != nil {
		return 0, err
	}

	d.decoded++

	return v, nil
}

// Decode reads exactly count values from the front of data. Bits after the
// last value are ignored. Zero padding in a final partial byte decodes as 0
// values when more values are requested than were encoded.
func (c *Codec) Decode(data []byte, count int) (values []uint64, err error) {
	err = smallint.CheckCount(count)
	if err != nil {
		return nil, err
	}

	d := &decoder{
		table: c.table,
		r:     bitstream.NewReader(data),
		count: count,
	}

	values = make([]uint64, 0, min(count, len(data)*8))

	for d.decoded < count {
		v, err := d.next()
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}
