package integer

import "golang.org/x/exp/constraints"

// ToUnsigned maps a signed integer onto the unsigned domain so that small
// magnitudes stay small: the magnitude moves up one bit and the low bit holds
// the sign. 0, -1, 1, -2, 2, ... become 0, 1, 2, 3, 4, ...
func ToUnsigned[T constraints.Signed](n T) uint64 {
	if n < 0 {
		return uint64(^n)<<1 | 1
	}

	return uint64(n) << 1
}

// FromUnsigned is the inverse of ToUnsigned. Values that do not fit T wrap.
func FromUnsigned[T constraints.Signed](u uint64) T {
	if u&1 == 1 {
		return ^T(u >> 1)
	}

	return T(u >> 1)
}
