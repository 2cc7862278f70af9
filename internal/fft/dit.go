package fft

import (
	"math"
	"math/bits"

	m "github.com/cwbudde/algo-bfp/internal/math"
)

// Forward computes the in-place DFT of x using the passes selected for the
// current CPU. len(x) must be a power of two no larger than MaxLength.
// exp and hr describe x on entry; the results describe the spectrum.
func Forward(x []ComplexS32, exp, hr int) (int, int) {
	return Transform(x, exp, hr, false, defaultPasses())
}

// Inverse computes the in-place inverse DFT of x, including the 1/N factor,
// which is applied to the exponent.
func Inverse(x []ComplexS32, exp, hr int) (int, int) {
	return Transform(x, exp, hr, true, defaultPasses())
}

// Transform runs the radix-2 decimation-in-time transform with explicit
// pass implementations.
//
// The input is first normalised to zero headroom. Every butterfly is then
// evaluated exactly in int64 and rounded once, to nearest with ties to even.
// A forward pass measures the growth of its outputs and shifts by exactly
// that much. An inverse pass shifts by the headroom it lacks: one bit for
// the first pass and two for the rest.
func Transform(x []ComplexS32, exp, hr int, inverse bool, passes Passes) (int, int) {
	n := len(x)
	if n < 2 {
		return exp, hr
	}

	m.BitReversePermute(x)
	exp, hr = normalize(x, exp, hr)

	stages := m.Log2(n)
	for p := range stages {
		var pass passFunc

		switch {
		case p == 0 && passes.First != nil:
			pass = passes.First
		case p == 1 && passes.Second != nil:
			pass = passes.Second
		}

		if pass != nil {
			exp, hr = pass(x, exp, hr, inverse)
		} else {
			exp, hr = genericPass(x, p, exp, hr, inverse)
		}
	}

	if inverse {
		exp -= stages
	}

	return exp, hr
}

// normalize shifts x left by its headroom hr. A block of zeros and minus
// ones (hr 31) is left alone.
func normalize(x []ComplexS32, exp, hr int) (int, int) {
	if hr <= 0 || hr >= 31 {
		return exp, hr
	}

	for i, v := range x {
		x[i] = ComplexS32{Re: v.Re << hr, Im: v.Im << hr}
	}

	return exp - hr, 0
}

// headroomShift returns the output shift of inverse pass p entered with
// headroom hr.
func headroomShift(p, hr int) int {
	need := 2
	if p == 0 {
		need = 1
	}

	return max(need-hr, 0)
}

// growthShift returns the right shift that brings values carrying frac
// fractional bits, whose OR-ed sign masks are mask, into int32 range.
func growthShift(mask uint64, frac int) int {
	return max(bits.Len64(mask)-frac-31, 0)
}

// roundShift returns v / 2^s rounded to nearest, ties to even.
func roundShift(v int64, s int) int64 {
	if s <= 0 {
		return v
	}

	q := v >> s
	rem := v - q<<s
	half := int64(1) << (s - 1)

	if rem > half || (rem == half && q&1 != 0) {
		q++
	}

	return q
}

func clamp32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < -math.MaxInt32:
		return -math.MaxInt32
	}

	return int32(v)
}

// twiddleMul returns w * (yr + j*yi) exactly, carrying twiddleQ fractional
// bits.
func twiddleMul(w ComplexS32, yr, yi int64) (int64, int64) {
	wr, wi := int64(w.Re), int64(w.Im)

	return wr*yr - wi*yi, wr*yi + wi*yr
}

// butterflyMask returns the sign mask of u*2^frac + t and u*2^frac - t.
func butterflyMask(u ComplexS32, tr, ti int64, frac int) uint64 {
	ur, ui := int64(u.Re)<<frac, int64(u.Im)<<frac

	return m.SignMask(ur+tr) | m.SignMask(ui+ti) | m.SignMask(ur-tr) | m.SignMask(ui-ti)
}

// butterfly sets x[top], x[bot] = (x[top]*2^frac + t, x[top]*2^frac - t),
// each divided by 2^(frac+shift) with rounding, and returns the sign mask
// of what it wrote.
func butterfly(x []ComplexS32, top, bot int, tr, ti int64, frac, shift int) uint64 {
	ur, ui := int64(x[top].Re)<<frac, int64(x[top].Im)<<frac
	s := frac + shift

	r0, i0 := clamp32(roundShift(ur+tr, s)), clamp32(roundShift(ui+ti, s))
	r1, i1 := clamp32(roundShift(ur-tr, s)), clamp32(roundShift(ui-ti, s))

	x[top] = ComplexS32{Re: r0, Im: i0}
	x[bot] = ComplexS32{Re: r1, Im: i1}

	return m.SignMask(int64(r0)) | m.SignMask(int64(i0)) | m.SignMask(int64(r1)) | m.SignMask(int64(i1))
}

// genericPass runs pass p: butterflies of span 2^(p+1) with a twiddle
// multiply on every bottom input.
func genericPass(x []ComplexS32, p, exp, hr int, inverse bool) (int, int) {
	span := 2 << p
	half := span >> 1
	step := twiddleStep(span)
	tw := twiddles()

	shift := headroomShift(p, hr)

	if !inverse {
		var mask uint64

		for base := 0; base < len(x); base += span {
			for j := range half {
				y := x[base+j+half]
				tr, ti := twiddleMul(tw[j*step], int64(y.Re), int64(y.Im))
				mask |= butterflyMask(x[base+j], tr, ti, twiddleQ)
			}
		}

		shift = growthShift(mask, twiddleQ)
	}

	var mask uint64

	for base := 0; base < len(x); base += span {
		for j := range half {
			w := tw[j*step]
			if inverse {
				w.Im = -w.Im
			}

			y := x[base+j+half]
			tr, ti := twiddleMul(w, int64(y.Re), int64(y.Im))
			mask |= butterfly(x, base+j, base+j+half, tr, ti, twiddleQ, shift)
		}
	}

	return exp + shift, m.HeadroomOfMask(mask, 32)
}
