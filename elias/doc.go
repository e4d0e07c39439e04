// Package elias implements the Elias universal codes on the LSB-first bit
// substrate.
//
// All codes map v to n = v+1 so that zero is representable. Bits are listed
// in stream order (first bit written first) and every tail is written least
// significant bit first.
//
//	code         layout                                  v=0   v=1     v=2
//	Gamma        N-1 zeros, 1, N-1 tail bits of n        1     010     011
//	Delta        L zeros, 1, L bits of N, N-1 tail of n  1     0100    0101
//	DirectDelta  1, k bits of v               (v < 2^k)  10    11      0100
//	             Delta layout, n = v-2^k+2    (v >= 2^k)
//	Omega        segments "1 tail" then a 0              0     100     110
//
// DirectDelta is shown with k=1. N is the bit length of n and L is the bit
// length of N minus one. Values up to 2^64-1 are supported, which makes n up
// to 2^64 (65 bits).
//
// A partial final byte is zero padded. For Gamma, Delta and DirectDelta a
// code never starts with a full run of padding, so trailing padding reads as
// the end of the data. For Omega a single 0 bit is the code for 0, so
// padding bits decode as zero values when more values are requested than
// were encoded.
package elias
