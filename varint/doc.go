// Package varint implements byte continuation codes.
//
// Both codes store seven value bits per byte, least significant group first,
// with bit 7 set when another byte of the same value follows:
//
//	bit  7   6 .. 0
//	    +---+--------------+
//	    | F |  v v v v v v v|
//	    +---+--------------+
//
// Standard is the protobuf base-128 varint. Biased stores every byte after
// the first minus one, the same trick the nibble code uses, so that each
// length starts where the previous one ended and no value has two encodings:
//
//	bytes  Standard         Biased
//	    1  0 .. 127         0 .. 127
//	    2  128 .. 16383     128 .. 16511
//	    3  16384 .. 2^21-1  16512 .. 2113663
//
// Both need at most 10 bytes for a 64-bit value.
package varint
