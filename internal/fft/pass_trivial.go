package fft

import m "github.com/cwbudde/algo-bfp/internal/math"

// firstPassTrivial is pass 0 without multiplies: every twiddle is 1.
func firstPassTrivial(x []ComplexS32, exp, hr int, inverse bool) (int, int) {
	shift := headroomShift(0, hr)

	if !inverse {
		var mask uint64
		for i := 0; i < len(x); i += 2 {
			y := x[i+1]
			mask |= butterflyMask(x[i], int64(y.Re), int64(y.Im), 0)
		}

		shift = growthShift(mask, 0)
	}

	var mask uint64

	for i := 0; i < len(x); i += 2 {
		y := x[i+1]
		mask |= butterfly(x, i, i+1, int64(y.Re), int64(y.Im), 0, shift)
	}

	return exp + shift, m.HeadroomOfMask(mask, 32)
}

// minusJ returns -j*y, or +j*y for the inverse.
func minusJ(y ComplexS32, inverse bool) (int64, int64) {
	if inverse {
		return -int64(y.Im), int64(y.Re)
	}

	return int64(y.Im), -int64(y.Re)
}

// secondPassTrivial is pass 1 without multiplies: the twiddles are 1 and
// -j (+j for the inverse), which only swap and negate parts.
func secondPassTrivial(x []ComplexS32, exp, hr int, inverse bool) (int, int) {
	shift := headroomShift(1, hr)

	if !inverse {
		var mask uint64

		for base := 0; base < len(x); base += 4 {
			y := x[base+2]
			mask |= butterflyMask(x[base], int64(y.Re), int64(y.Im), 0)

			tr, ti := minusJ(x[base+3], false)
			mask |= butterflyMask(x[base+1], tr, ti, 0)
		}

		shift = growthShift(mask, 0)
	}

	var mask uint64

	for base := 0; base < len(x); base += 4 {
		y := x[base+2]
		mask |= butterfly(x, base, base+2, int64(y.Re), int64(y.Im), 0, shift)

		tr, ti := minusJ(x[base+3], inverse)
		mask |= butterfly(x, base+1, base+3, tr, ti, 0, shift)
	}

	return exp + shift, m.HeadroomOfMask(mask, 32)
}
