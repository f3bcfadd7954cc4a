package math

import "github.com/chewxy/math32"

// Abs returns |x|.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi]. NaN is mapped to lo.
func Clamp(x, lo, hi float32) float32 {
	if math32.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Finite returns x, or 0 if x is NaN or infinite.
func Finite(x float32) float32 {
	if math32.IsNaN(x) || math32.IsInf(x, 0) {
		return 0
	}
	return x
}
