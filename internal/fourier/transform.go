package fourier

import (
	"math"
	"math/cmplx"
)

// Strategy identifies the algorithm Transform runs for a given length.
type Strategy uint8

const (
	// StrategyDirect is the O(n²) DFT, used for any length.
	StrategyDirect Strategy = iota
	// StrategyRadix2 is the iterative Cooley-Tukey FFT for powers of two.
	StrategyRadix2
)

func (s Strategy) String() string {
	switch s {
	case StrategyRadix2:
		return "radix2"
	default:
		return "direct"
	}
}

// StrategyFor reports which algorithm Transform and Inverse use for n samples.
func StrategyFor(n int) Strategy {
	if IsPowerOfTwo(n) {
		return StrategyRadix2
	}
	return StrategyDirect
}

// Transform returns the normalized discrete Fourier transform of samples:
//
//	X[k] = (1/n) Σ x[j]·exp(-2πi·j·k/n)
//
// The input is not modified. Callers never need to know which strategy ran.
func Transform(samples []complex128) []complex128 {
	return FFT(samples)
}

// Inverse undoes Transform: Inverse(Transform(x)) ≈ x for every length.
func Inverse(coeffs []complex128) []complex128 {
	return InverseFFT(coeffs)
}

// DFT computes the normalized transform directly in O(n²). An empty input
// yields an empty output.
func DFT(samples []complex128) []complex128 {
	out := make([]complex128, len(samples))
	dft(out, samples)
	return out
}

// FFT computes the normalized transform with the radix-2 algorithm when
// len(samples) is a power of two and falls back to DFT otherwise.
func FFT(samples []complex128) []complex128 {
	out := make([]complex128, len(samples))
	if StrategyFor(len(samples)) == StrategyRadix2 {
		radix2(out, samples)
		normalize(out)
		return out
	}
	dft(out, samples)
	return out
}

// InverseFFT maps coefficients produced by FFT back to samples. Powers of two
// reuse the forward FFT on the conjugated, rescaled input; other lengths sum
// x[i] = Σ X[k]·exp(2πi·k·i/n) directly.
func InverseFFT(coeffs []complex128) []complex128 {
	n := len(coeffs)
	out := make([]complex128, n)
	if StrategyFor(n) != StrategyRadix2 {
		idft(out, coeffs)
		return out
	}

	// The scratch buffer lives for this call only.
	scratch := make([]complex128, n)
	scale := complex(float64(n), 0)
	for i, c := range coeffs {
		scratch[i] = cmplx.Conj(c) * scale
	}
	radix2(out, scratch)
	normalize(out)
	for i := range out {
		out[i] = cmplx.Conj(out[i])
	}
	return out
}

// dft writes the normalized direct transform of src into dst.
func dft(dst, src []complex128) {
	n := len(src)
	if n == 0 {
		return
	}
	step := -2 * math.Pi / float64(n)
	inv := complex(1/float64(n), 0)
	for k := range n {
		var sum complex128
		for j, x := range src {
			// j·k mod n keeps the angle small without changing its value.
			sum += x * FromPolar(1, step*float64((j*k)%n))
		}
		dst[k] = sum * inv
	}
}

// idft writes the unnormalized inverse transform of src into dst.
func idft(dst, src []complex128) {
	n := len(src)
	if n == 0 {
		return
	}
	step := 2 * math.Pi / float64(n)
	for i := range n {
		var sum complex128
		for k, c := range src {
			sum += c * FromPolar(1, step*float64((k*i)%n))
		}
		dst[i] = sum
	}
}

// radix2 performs an unnormalized iterative decimation-in-time FFT of src
// into dst. len(src) must be a power of two.
func radix2(dst, src []complex128) {
	n := len(src)
	width := log2(n)

	// Bit-reversal permutation
	for i, x := range src {
		dst[reverseBits(uint(i), width)] = x
	}

	// Butterfly stages over blocks of size m = 2^s
	for m := 2; m <= n; m <<= 1 {
		half := m >> 1
		wm := FromPolar(1, -2*math.Pi/float64(m))
		for k := 0; k < n; k += m {
			w := complex(1, 0)
			for j := range half {
				a := k + j
				b := a + half
				t := w * dst[b]
				u := dst[a]
				dst[a] = u + t
				dst[b] = u - t
				w *= wm
			}
		}
	}
}

func normalize(x []complex128) {
	if len(x) == 0 {
		return
	}
	inv := complex(1/float64(len(x)), 0)
	for i := range x {
		x[i] *= inv
	}
}
