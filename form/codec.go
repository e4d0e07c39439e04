package form

// Codec encodes and decodes values with a fixed table. It holds no per call
// state and is safe for concurrent use.
type Codec struct {
	table *Table
}

// New returns a codec using table t.
func New(t *Table) *Codec {
	return &Codec{
		table: t,
	}
}

// Default is the codec for DefaultTable.
var Default = New(DefaultTable)

// Table returns the codec's table.
func (c *Codec) Table() *Table {
	return c.table
}

// Encode encodes values with the default codec.
func Encode(values []uint64) (data []byte, err error) {
	return Default.Encode(values)
}

// Decode decodes count values with the default codec.
func Decode(data []byte, count int) (values []uint64, err error) {
	return Default.Decode(data, count)
}
