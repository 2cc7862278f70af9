// Package reference provides float64 views of BFP data and a direct DFT.
// It exists to measure the error of the fixed-point code.
package reference

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-bfp/internal/fftypes"
)

// FromS16 returns the values m[i] * 2^exp.
func FromS16(mant []int16, exp int) []float64 {
	out := make([]float64, len(mant))
	for i, v := range mant {
		out[i] = math.Ldexp(float64(v), exp)
	}

	return out
}

// FromS32 returns the values m[i] * 2^exp.
func FromS32(mant []int32, exp int) []float64 {
	out := make([]float64, len(mant))
	for i, v := range mant {
		out[i] = math.Ldexp(float64(v), exp)
	}

	return out
}

// FromComplexS16 returns the values (re[i] + j*im[i]) * 2^exp.
func FromComplexS16(re, im []int16, exp int) []complex128 {
	out := make([]complex128, len(re))
	for i := range re {
		out[i] = complex(math.Ldexp(float64(re[i]), exp), math.Ldexp(float64(im[i]), exp))
	}

	return out
}

// FromComplexS32 returns the values x[i] * 2^exp.
func FromComplexS32(x []fftypes.ComplexS32, exp int) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(math.Ldexp(float64(v.Re), exp), math.Ldexp(float64(v.Im), exp))
	}

	return out
}

// DFT returns the forward DFT of x, computed directly in O(n^2).
func DFT(x []complex128) []complex128 {
	return dft(x, -1)
}

// IDFT returns the inverse DFT of x including the 1/n factor.
func IDFT(x []complex128) []complex128 {
	out := dft(x, 1)

	scale := 1 / float64(len(x))
	for i := range out {
		out[i] *= complex(scale, 0)
	}

	return out
}

// RealDFT returns bins 0..n/2 of the DFT of a real sequence.
func RealDFT(x []float64) []complex128 {
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = complex(v, 0)
	}

	return DFT(c)[:len(x)/2+1]
}

func dft(x []complex128, sign float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128

		for t, v := range x {
			// Reduce the index product first so the angle stays exact.
			angle := sign * 2 * math.Pi * float64((k*t)%n) / float64(n)
			sum += v * cmplx.Rect(1, angle)
		}

		out[k] = sum
	}

	return out
}

// MaxError returns the largest absolute difference between got and want.
func MaxError(got, want []float64) float64 {
	var worst float64
	for i := range got {
		worst = max(worst, math.Abs(got[i]-want[i]))
	}

	return worst
}

// MaxComplexError returns the largest difference per part between got and
// want.
func MaxComplexError(got, want []complex128) float64 {
	var worst float64
	for i := range got {
		d := got[i] - want[i]
		worst = max(worst, math.Abs(real(d)), math.Abs(imag(d)))
	}

	return worst
}

// LSB returns the value of one mantissa step at exponent exp.
func LSB(exp int) float64 {
	return math.Ldexp(1, exp)
}
