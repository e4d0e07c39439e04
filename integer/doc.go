// Package integer carries signed integers over the unsigned codecs.
//
// The mapping moves the magnitude up one bit and stores the sign in the low
// bit, with negative values stored as their complement so that no value is
// wasted:
//
//	 signed  unsigned
//	      0         0
//	     -1         1
//	      1         2
//	     -2         3
//	      2         4
//	MinInt64  MaxUint64
//	MaxInt64  MaxUint64-1
package integer
