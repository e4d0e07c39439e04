// Package ordered implements a byte code whose encodings sort like the values
// they hold. Comparing two encodings with bytes.Compare gives the same result
// as comparing the integers, across all of int64 and all of uint64.
//
// The first byte selects the range and, for the widest ranges, the number of
// bytes that follow:
//
//	First byte | Next bytes | Min                | Max
//	-----------+------------+--------------------+---------------------
//	0000 xxxx  | -          | unused             |
//	0001 llll  | 8-llll     | -2^63              | -2^13-2^6-1
//	001x xxxx  | 1          | -2^13-2^6          | -2^6-1
//	01xx xxxx  | 0          | -2^6               | -1
//	10xx xxxx  | 0          | 0                  | 2^6-1
//	110x xxxx  | 1          | 2^6                | 2^13+2^6-1
//	1110 llll  | llll       | 2^13+2^6           | 2^64-1
//	1111 xxxx  | -          | unused             |
//
// Small ranges store the offset from the range minimum in the free bits of
// the first byte and the next byte, most significant bits first. The large
// negative range stores the low 8-llll bytes of the two's complement, with
// llll counting the leading 0xff bytes dropped. The large positive range
// stores the offset from 2^13+2^6 big endian in the fewest bytes possible,
// with at least one byte, so 8256 is E1 00.
package ordered
