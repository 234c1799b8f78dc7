package render

import (
	"math"
	mathbits "math/bits"
)

func pow2(exp int) uint64 {
	if exp < 0 {
		return 0
	}
	if exp >= 64 {
		return math.MaxUint64
	}
	return uint64(1) << uint(exp)
}

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func saturatingMul(a, b uint64) uint64 {
	hi, lo := mathbits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
