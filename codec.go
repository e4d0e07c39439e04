package smallint

// Encoder turns values into bytes.
type Encoder interface {
	Encode(values []uint64) (data []byte, err error)
}

// Decoder reads exactly count values from the front of data.
type Decoder interface {
	Decode(data []byte, count int) (values []uint64, err error)
}

// Codec is a bit pattern policy that can both encode and decode.
type Codec interface {
	Encoder
	Decoder
}

// CheckCount validates a requested decode count.
func CheckCount(count int) (err error) {
	if count < 0 {
		return RangeError.New("count must be non-negative: %d", count)
	}

	return nil
}
