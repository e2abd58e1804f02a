package fourier

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// Abs returns the magnitude of z.
func Abs(z complex128) float64 {
	return cmplx.Abs(z)
}

// Arg returns the phase of z in (-π, π]. Arg(0) is 0.
func Arg(z complex128) float64 {
	p := cmplx.Phase(z)
	// atan2 reports -π for a negative real with a -0 imaginary part.
	if p == -math.Pi {
		return math.Pi
	}
	return p
}

// FromPolar returns r·exp(iθ).
func FromPolar(r, theta float64) complex128 {
	s, c := math.Sincos(theta)
	return complex(r*c, r*s)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. It returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// log2 returns the exponent of a power of two.
func log2(n int) uint {
	return uint(bits.TrailingZeros(uint(n)))
}

// reverseBits reverses the low width bits of i.
func reverseBits(i uint, width uint) uint {
	if width == 0 {
		return 0
	}
	return bits.Reverse(i) >> (bits.UintSize - width)
}
