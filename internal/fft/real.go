package fft

import m "github.com/cwbudde/algo-bfp/internal/math"

// realFrac is the number of fractional bits the merge and split steps carry
// before their single rounding. Twiddle products are truncated from Q30 to
// this so that sums of two full-scale bins stay inside int64.
const realFrac = twiddleQ - 2

// realOutFrac is the scale of the merge and split outputs, which include a
// halving.
const realOutFrac = realFrac + 1

// mergeBin returns bins k and M-k of the packed real spectrum, carrying
// realOutFrac fractional bits, from bins k and M-k of z.
//
// 2E = Z[k] + conj(Z[M-k]), 2O = (Z[k] - conj(Z[M-k])) / j,
// X[k] = E + W^k O, X[M-k] = conj(E - W^k O).
func mergeBin(z []ComplexS32, k int, w ComplexS32) (kr, ki, mr, mi int64) {
	ar, ai := int64(z[k].Re), int64(z[k].Im)
	br, bi := int64(z[len(z)-k].Re), int64(z[len(z)-k].Im)

	er, ei := (ar+br)<<realFrac, (ai-bi)<<realFrac
	tr, ti := twiddleMul(w, ai+bi, br-ar)
	tr, ti = tr>>(twiddleQ-realFrac), ti>>(twiddleQ-realFrac)

	return er + tr, ei + ti, er - tr, ti - ei
}

// splitBin is the inverse of mergeBin.
//
// 2E = X[k] + conj(X[M-k]), 2O = conj(W^k) (X[k] - conj(X[M-k])),
// Z[k] = E + jO, Z[M-k] = conj(E) + j conj(O).
func splitBin(z []ComplexS32, k int, w ComplexS32) (kr, ki, mr, mi int64) {
	ar, ai := int64(z[k].Re), int64(z[k].Im)
	br, bi := int64(z[len(z)-k].Re), int64(z[len(z)-k].Im)

	er, ei := (ar+br)<<realFrac, (ai-bi)<<realFrac

	w.Im = -w.Im
	or, oi := twiddleMul(w, ar-br, ai+bi)
	or, oi = or>>(twiddleQ-realFrac), oi>>(twiddleQ-realFrac)

	return er - oi, ei + or, er + oi, or - ei
}

type binFunc func(z []ComplexS32, k int, w ComplexS32) (kr, ki, mr, mi int64)

// recombine applies bin to every pair (k, M-k) with 1 <= k <= M/2 and sets
// z[0] from dc and nyquist, all carrying realOutFrac fractional bits. The
// outputs are shifted by exactly their growth beyond int32.
func recombine(z []ComplexS32, exp int, dc, nyquist int64, bin binFunc) (int, int) {
	half := len(z)
	tw := twiddles()
	step := twiddleStep(2 * half)

	mask := m.SignMask(dc) | m.SignMask(nyquist)

	for k := 1; k <= half/2; k++ {
		kr, ki, mr, mi := bin(z, k, tw[k*step])
		mask |= m.SignMask(kr) | m.SignMask(ki) | m.SignMask(mr) | m.SignMask(mi)
	}

	shift := growthShift(mask, realOutFrac)
	s := realOutFrac + shift

	z[0] = ComplexS32{Re: clamp32(roundShift(dc, s)), Im: clamp32(roundShift(nyquist, s))}
	mask = m.SignMask(int64(z[0].Re)) | m.SignMask(int64(z[0].Im))

	for k := 1; k <= half/2; k++ {
		kr, ki, mr, mi := bin(z, k, tw[k*step])

		xk := ComplexS32{Re: clamp32(roundShift(kr, s)), Im: clamp32(roundShift(ki, s))}
		xm := ComplexS32{Re: clamp32(roundShift(mr, s)), Im: clamp32(roundShift(mi, s))}
		z[k], z[half-k] = xk, xm

		mask |= m.SignMask(int64(xk.Re)) | m.SignMask(int64(xk.Im)) |
			m.SignMask(int64(xm.Re)) | m.SignMask(int64(xm.Im))
	}

	return exp + shift, m.HeadroomOfMask(mask, 32)
}

// MergeReal turns z, the length-M DFT of x[2n] + j*x[2n+1], into the packed
// spectrum of the real sequence x of length 2M: bins 1..M-1 in place, the DC
// bin in Re z[0] and the Nyquist bin in Im z[0].
//
// Caller guarantees M is a power of two and 2M <= MaxLength.
func MergeReal(z []ComplexS32, exp, hr int) (int, int) {
	if len(z) == 0 {
		return exp, hr
	}

	x0, xh := int64(z[0].Re), int64(z[0].Im)

	return recombine(z, exp, (x0+xh)<<realOutFrac, (x0-xh)<<realOutFrac, mergeBin)
}

// SplitReal is the inverse of MergeReal: it turns a packed spectrum of a
// real sequence of length 2M back into the length-M spectrum whose inverse
// DFT is x[2n] + j*x[2n+1].
func SplitReal(z []ComplexS32, exp, hr int) (int, int) {
	if len(z) == 0 {
		return exp, hr
	}

	x0, xh := int64(z[0].Re), int64(z[0].Im)

	return recombine(z, exp, (x0+xh)<<realFrac, (x0-xh)<<realFrac, splitBin)
}
