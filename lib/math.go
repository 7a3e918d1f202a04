package lib

import (
	"golang.org/x/exp/constraints"
)

type SignedNumber interface {
	constraints.Signed | constraints.Float
}

func Abs[T SignedNumber](v T) T {
	if v >= T(0) {
		return v
	}
	return -v
}

func Clamp[T constraints.Ordered](v, min, max T) T {
	if v <= min {
		return min
	}
	if v >= max {
		return max
	}
	return v
}

// Mod returns n modulo m in range [0, m), also for negative n.
func Mod[T constraints.Integer](n, m T) T {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// Parity is 0 for even and 1 for odd integers, including negative ones.
func Parity[T constraints.Integer](n T) int {
	return int(Mod(n, 2))
}
