package bitstream

import "fmt"

// MaxWidth is the widest field Emit and ReadBits handle.
const MaxWidth = 64

// Writer appends bit fields to a growable byte slice.
type Writer struct {
	buf []byte

	// bit is the number of bits used in the last byte of buf. Zero means
	// the next field starts a new byte.
	bit uint
}

// NewWriter returns a writer that appends to buf. buf is treated as byte
// aligned.
func NewWriter(buf []byte) *Writer {
	return &Writer{
		buf: buf,
	}
}

// Emit appends the low n bits of value. It panics if n is above MaxWidth.
func (w *Writer) Emit(value uint64, n uint) {
	if n > MaxWidth {
		panic(fmt.Sprintf("bitstream: emit width %d exceeds %d", n, MaxWidth))
	}

	if n < MaxWidth {
		value &= 1<<n - 1
	}

	// Start: fill the partial last byte.
	if w.bit != 0 {
		avail := 8 - w.bit
		w.buf[len(w.buf)-1] |= byte(value << w.bit)

		if n < avail {
			w.bit += n

			return
		}

		value >>= avail
		n -= avail
		w.bit = 0
	}

	// Whole bytes
	for ; n >= 8; n -= 8 {
		w.buf = append(w.buf, byte(value))
		value >>= 8
	}

	// Remainder
	if n > 0 {
		w.buf = append(w.buf, byte(value))
		w.bit = n
	}
}

// Bytes returns the written bytes. A final partial byte is included.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bits written, counting buf as given to NewWriter.
func (w *Writer) Len() uint64 {
	if w.bit == 0 {
		return uint64(len(w.buf)) * 8
	}

	return uint64(len(w.buf)-1)*8 + uint64(w.bit)
}

// Aligned reports whether the next field starts a new byte.
func (w *Writer) Aligned() bool {
	return w.bit == 0
}
