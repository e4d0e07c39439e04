// Package form provides the form table codec.
//
// A table partitions the unsigned 64-bit domain into contiguous ranges
// ("forms"). Each regularized form has a prefix pattern and a fixed payload
// width holding the value minus the form's starting value (its shift). The
// prefixes are prefix-free, so the decoder classifies the next value from at
// most 8 bits of lookahead. Values above the last regularized form use the raw
// form: a control byte followed by a minimal number of payload bytes.
//
// Default Table
//
// Prefix and payload bits are shown in stream order (the first bit read is on
// the left). The payload is stored least significant bit first. The control
// byte family is 11111 followed by a 3 bit N.
//
//  | Form | Prefix   | Prefix Bits | Data Bits | Total Bits | Values                |
//  |------|----------|-------------|-----------|------------|-----------------------|
//  | 1    | 0        | 1           | 1         | 2          | 0 .. 1                |
//  | 2    | 10       | 2           | 2         | 4          | 2 .. 5                |
//  | 3    | 110      | 3           | 5         | 8          | 6 .. 37               |
//  | 4    | 11111000 | 8 (N=0)     | 8         | 16         | 38 .. 293             |
//  | 5    | 1110     | 4           | 12        | 16         | 294 .. 4389           |
//  | 6    | 11111100 | 8 (N=1)     | 16        | 24         | 4390 .. 69925         |
//  | 7    | 11110    | 5           | 19        | 24         | 69926 .. 594213       |
//  | raw  | 11111NNN | 8 (N>=2)    | 8*(N+1)   | 8+8*(N+1)  | 594214 .. 2^64-1      |
//
// As bytes (bit 7 on the left) the first byte of each form looks like:
//
//  1:   . . . .  . . x 0
//  2:   . . . .  x x 0 1
//  3:   x x x x  x 0 1 1
//  4:   0 0 0 1  1 1 1 1    x x x x  x x x x
//  5:   x x x x  0 1 1 1    x x x x  x x x x
//  6:   0 0 1 1  1 1 1 1    x x x x  x x x x    x x x x  x x x x
//  7:   x x x 0  1 1 1 1    x x x x  x x x x    x x x x  x x x x
//  raw: N N N 1  1 1 1 1    (N+1 bytes of value-594214, little endian)
//
// Values do not start on byte boundaries; a value begins at the bit where the
// previous one ended.
//
// The raw payload is the shortest byte count holding value-594214, but never
// fewer than 3 bytes (N=0 and N=1 belong to forms 4 and 6).
//
// A stream that does not end on a byte boundary is zero padded, and two zero
// bits are the form 1 code for 0. Asking Decode for more values than were
// encoded therefore returns padding zeros while at least two padding bits
// remain, and fails with OverRequestError only once the data is used up.
package form
