package kernels

import m "github.com/cwbudde/algo-bfp/internal/math"

// Copy copies b into a and returns the headroom of a.
func Copy[T Mantissa](a, b []T) int {
	copy(a, b)

	return Headroom(a[:len(b)])
}

// S16ToS32 widens b into a. Values are copied unchanged.
func S16ToS32(a []int32, b []int16) int {
	var mask uint64

	for i, v := range b {
		a[i] = int32(v)
		mask |= m.SignMask(int64(v))
	}

	return m.HeadroomOfMask(mask, 32)
}

// S32ToS16 computes a[i] = sat(b[i] >> bShr).
func S32ToS16(a []int16, b []int32, bShr int) int {
	var mask uint64

	for i := range b {
		r := saturate16(shiftElem(int64(b[i]), bShr, 32))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, 16)
}

// ComplexS16ToS32 interleaves and widens split 16-bit parts into a.
func ComplexS16ToS32(a []ComplexS32, bRe, bIm []int16) int {
	var mask uint64

	for i := range bRe {
		r := ComplexS32{Re: int32(bRe[i]), Im: int32(bIm[i])}
		a[i] = r
		mask |= mask32(r)
	}

	return m.HeadroomOfMask(mask, 32)
}

// ComplexS32ToS16 computes the split parts of sat(b[i] >> bShr).
func ComplexS32ToS16(aRe, aIm []int16, b []ComplexS32, bShr int) int {
	var mask uint64

	for i := range b {
		re := saturate16(shiftElem(int64(b[i].Re), bShr, 32))
		im := saturate16(shiftElem(int64(b[i].Im), bShr, 32))
		aRe[i], aIm[i] = re, im
		mask |= m.SignMask(int64(re)) | m.SignMask(int64(im))
	}

	return m.HeadroomOfMask(mask, 16)
}

// FromReal32 sets a[i] = b[i] + 0j.
func FromReal32(a []ComplexS32, b []int32) int {
	var mask uint64

	for i, v := range b {
		a[i] = ComplexS32{Re: v}
		mask |= m.SignMask(int64(v))
	}

	return m.HeadroomOfMask(mask, 32)
}

// RealPart32 sets a[i] = Re b[i].
func RealPart32(a []int32, b []ComplexS32) int {
	var mask uint64

	for i := range b {
		v := b[i].Re
		a[i] = v
		mask |= m.SignMask(int64(v))
	}

	return m.HeadroomOfMask(mask, 32)
}

// ImagPart32 sets a[i] = Im b[i].
func ImagPart32(a []int32, b []ComplexS32) int {
	var mask uint64

	for i := range b {
		v := b[i].Im
		a[i] = v
		mask |= m.SignMask(int64(v))
	}

	return m.HeadroomOfMask(mask, 32)
}
