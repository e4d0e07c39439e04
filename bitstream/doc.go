// Package bitstream packs and unpacks bit fields least-significant-bit first.
//
// The first bit of a stream is bit 0 of byte 0. A field of n bits is written
// starting with its lowest bit, so a field that straddles a byte boundary keeps
// its low bits in the earlier byte:
//
//  Emit(0b1, 1); Emit(0b10110, 5); Emit(0b111, 3)
//
//  byte  0                 1
//       +-----------------+-----------------+
//       |7 6 5 4 3 2 1 0  |7 6 5 4 3 2 1 0  |
//       |1 1 1 0 1 1 0 1  |. . . . . . . 1  |
//       +-----------------+-----------------+
//
// The unused high bits of a final partial byte are zero.
package bitstream
