// Package nibble implements a continuation code over 4-bit chunks.
//
// Each chunk holds three value bits and a continuation flag:
//
//	bit  3   2   1   0
//	    +---+-----------+
//	    | F |  v  v  v  |
//	    +---+-----------+
//
// F is set when another chunk of the same value follows. Chunks are written
// least significant first and the first chunk fills the low half of a byte,
// so values 0 through 7 encode to their own value. Every chunk after the
// first stores its part minus one: a continued value is known to be non-zero
// above the bits already written, which removes the redundant encodings and
// makes each length start where the previous one ended.
//
//	chunks  range
//	     1  0 .. 7
//	     2  8 .. 71
//	     3  72 .. 583
//	     4  584 .. 4679
//
// A value that ends on the low half of a byte leaves the high half zero. That
// padding decodes as a 0 value if a caller asks for one more value than was
// encoded.
package nibble
