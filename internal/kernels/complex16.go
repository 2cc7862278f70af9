package kernels

import (
	"github.com/cwbudde/algo-bfp/internal/fftypes"
	m "github.com/cwbudde/algo-bfp/internal/math"
)

// The 16-bit complex kernels work on split storage: real parts in one
// slice, imaginary parts in another. Element-wise ops that treat the parts
// independently (shift, add, real multiply) reuse the real kernels per part.

// ComplexHeadroom16 returns the headroom over both parts.
func ComplexHeadroom16(re, im []int16) int {
	return min(Headroom(re), Headroom(im))
}

// ComplexMul16 computes a = (b * c) >> sat.
func ComplexMul16(aRe, aIm, bRe, bIm, cRe, cIm []int16, sat int) int {
	var mask uint64

	for i := range bRe {
		br, bi := int64(bRe[i]), int64(bIm[i])
		cr, ci := int64(cRe[i]), int64(cIm[i])

		re := saturate16(shiftWide(br*cr-bi*ci, sat))
		im := saturate16(shiftWide(br*ci+bi*cr, sat))
		aRe[i], aIm[i] = re, im
		mask |= m.SignMask(int64(re)) | m.SignMask(int64(im))
	}

	return m.HeadroomOfMask(mask, 16)
}

// ComplexConjMul16 computes a = (b * conj(c)) >> sat.
func ComplexConjMul16(aRe, aIm, bRe, bIm, cRe, cIm []int16, sat int) int {
	var mask uint64

	for i := range bRe {
		br, bi := int64(bRe[i]), int64(bIm[i])
		cr, ci := int64(cRe[i]), int64(cIm[i])

		re := saturate16(shiftWide(br*cr+bi*ci, sat))
		im := saturate16(shiftWide(bi*cr-br*ci, sat))
		aRe[i], aIm[i] = re, im
		mask |= m.SignMask(int64(re)) | m.SignMask(int64(im))
	}

	return m.HeadroomOfMask(mask, 16)
}

// ComplexScale16 computes a = (b * alpha) >> sat.
func ComplexScale16(aRe, aIm, bRe, bIm []int16, alpha fftypes.ComplexS16, sat int) int {
	cr, ci := int64(alpha.Re), int64(alpha.Im)

	var mask uint64

	for i := range bRe {
		br, bi := int64(bRe[i]), int64(bIm[i])

		re := saturate16(shiftWide(br*cr-bi*ci, sat))
		im := saturate16(shiftWide(br*ci+bi*cr, sat))
		aRe[i], aIm[i] = re, im
		mask |= m.SignMask(int64(re)) | m.SignMask(int64(im))
	}

	return m.HeadroomOfMask(mask, 16)
}

// ComplexSquaredMag16 computes a[i] = (re^2 + im^2) >> sat.
func ComplexSquaredMag16(a, bRe, bIm []int16, sat int) int {
	var mask uint64

	for i := range bRe {
		br, bi := int64(bRe[i]), int64(bIm[i])

		r := saturate16(shiftWide(br*br+bi*bi, sat))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, 16)
}

// ComplexMag16 computes a[i] = |b[i]| >> bShr, rounded to nearest.
func ComplexMag16(a, bRe, bIm []int16, bShr int) int {
	var mask uint64

	for i := range bRe {
		r := saturate16(magnitude(int64(bRe[i]), int64(bIm[i]), bShr))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, 16)
}

// ComplexSum16 returns the exact sum of b.
func ComplexSum16(bRe, bIm []int16) fftypes.ComplexS64 {
	return fftypes.ComplexS64{Re: Sum(bRe), Im: Sum(bIm)}
}
