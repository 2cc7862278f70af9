package kernels

import (
	"github.com/cwbudde/algo-bfp/internal/fftypes"
	m "github.com/cwbudde/algo-bfp/internal/math"
)

// ComplexS32 is an interleaved 32-bit complex element.
type ComplexS32 = fftypes.ComplexS32

func mask32(v ComplexS32) uint64 {
	return m.SignMask(int64(v.Re)) | m.SignMask(int64(v.Im))
}

// ComplexHeadroom32 returns the headroom over both parts of b.
func ComplexHeadroom32(b []ComplexS32) int {
	var mask uint64
	for _, v := range b {
		mask |= mask32(v)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexSet32 fills a with v.
func ComplexSet32(a []ComplexS32, v ComplexS32) int {
	for i := range a {
		a[i] = v
	}

	if len(a) == 0 {
		return 31
	}

	return m.HeadroomOfMask(mask32(v), 32)
}

// ComplexShl32 computes a[i] = sat(b[i] << shl) on both parts.
func ComplexShl32(a, b []ComplexS32, shl int) int {
	var mask uint64

	for i := range b {
		r := ComplexS32{
			Re: saturate32(shiftElem(int64(b[i].Re), -shl, 32)),
			Im: saturate32(shiftElem(int64(b[i].Im), -shl, 32)),
		}
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexAdd32 computes a = b >> bShr + c >> cShr.
func ComplexAdd32(a, b, c []ComplexS32, bShr, cShr int) int {
	var mask uint64

	for i := range b {
		x, y := b[i], c[i]
		r := ComplexS32{
			Re: saturate32(shiftElem(int64(x.Re), bShr, 32) + shiftElem(int64(y.Re), cShr, 32)),
			Im: saturate32(shiftElem(int64(x.Im), bShr, 32) + shiftElem(int64(y.Im), cShr, 32)),
		}
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexSub32 computes a = b >> bShr - c >> cShr.
func ComplexSub32(a, b, c []ComplexS32, bShr, cShr int) int {
	var mask uint64

	for i := range b {
		x, y := b[i], c[i]
		r := ComplexS32{
			Re: saturate32(shiftElem(int64(x.Re), bShr, 32) - shiftElem(int64(y.Re), cShr, 32)),
			Im: saturate32(shiftElem(int64(x.Im), bShr, 32) - shiftElem(int64(y.Im), cShr, 32)),
		}
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexRealMul32 computes a[i] = (b[i] * c[i]) >> sat for real c.
func ComplexRealMul32(a, b []ComplexS32, c []int32, sat int) int {
	var mask uint64

	for i := range b {
		k := int64(c[i])
		r := ComplexS32{
			Re: saturate32(shiftWide(int64(b[i].Re)*k, sat)),
			Im: saturate32(shiftWide(int64(b[i].Im)*k, sat)),
		}
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexRealScale32 computes a[i] = (b[i] * alpha) >> sat for real alpha.
func ComplexRealScale32(a, b []ComplexS32, alpha int32, sat int) int {
	k := int64(alpha)

	var mask uint64

	for i := range b {
		r := ComplexS32{
			Re: saturate32(shiftWide(int64(b[i].Re)*k, sat)),
			Im: saturate32(shiftWide(int64(b[i].Im)*k, sat)),
		}
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

func mulShift(xr, xi, yr, yi int64, sat int) ComplexS32 {
	return ComplexS32{
		Re: saturate32(shiftSum(xr*yr, -(xi * yi), sat)),
		Im: saturate32(shiftSum(xr*yi, xi*yr, sat)),
	}
}

// ComplexMul32 computes a = (b * c) >> sat.
func ComplexMul32(a, b, c []ComplexS32, sat int) int {
	var mask uint64

	for i := range b {
		x, y := b[i], c[i]
		r := mulShift(int64(x.Re), int64(x.Im), int64(y.Re), int64(y.Im), sat)
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexConjMul32 computes a = (b * conj(c)) >> sat.
func ComplexConjMul32(a, b, c []ComplexS32, sat int) int {
	var mask uint64

	for i := range b {
		x, y := b[i], c[i]
		r := mulShift(int64(x.Re), int64(x.Im), int64(y.Re), -int64(y.Im), sat)
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexScale32 computes a = (b * alpha) >> sat.
func ComplexScale32(a, b []ComplexS32, alpha ComplexS32, sat int) int {
	yr, yi := int64(alpha.Re), int64(alpha.Im)

	var mask uint64

	for i := range b {
		r := mulShift(int64(b[i].Re), int64(b[i].Im), yr, yi, sat)
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexSquaredMag32 computes a[i] = (re^2 + im^2) >> sat.
func ComplexSquaredMag32(a []int32, b []ComplexS32, sat int) int {
	var mask uint64

	for i := range b {
		re, im := int64(b[i].Re), int64(b[i].Im)
		r := saturate32(shiftSum(re*re, im*im, sat))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexMag32 computes a[i] = |b[i]| >> bShr, rounded to nearest.
func ComplexMag32(a []int32, b []ComplexS32, bShr int) int {
	var mask uint64

	for i := range b {
		r := saturate32(magnitude(int64(b[i].Re), int64(b[i].Im), bShr))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexSum32 returns the exact sum of b.
func ComplexSum32(b []ComplexS32) fftypes.ComplexS64 {
	var s fftypes.ComplexS64
	for _, v := range b {
		s.Re += int64(v.Re)
		s.Im += int64(v.Im)
	}

	return s
}
