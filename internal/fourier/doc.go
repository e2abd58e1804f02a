// Package fourier computes the discrete Fourier transform of a path given as
// complex samples and ranks the resulting bins as epicycle coefficients.
//
// The forward transform is normalized by 1/n, so a coefficient's amplitude is
// directly the radius of its epicycle. Transform picks an iterative radix-2
// FFT when the length is a power of two and the direct O(n²) DFT otherwise;
// both produce the same ordering and scale.
//
// Bins above n/2 are reported with negative frequencies (bin i maps to i-n),
// so that summing the ranked coefficients with exp(i·(phase + t·frequency))
// retraces the input once as t sweeps [0, 2π).
package fourier
