package kernels

import m "github.com/cwbudde/algo-bfp/internal/math"

// Set fills a with v.
func Set[T Mantissa](a []T, v T) int {
	for i := range a {
		a[i] = v
	}

	w := width[T]()
	if len(a) == 0 {
		return w - 1
	}

	return m.HeadroomOfMask(m.SignMask(int64(v)), w)
}

// Shl computes a[i] = sat(b[i] << shl). Negative shl shifts right.
func Shl[T Mantissa](a, b []T, shl int) int {
	w := width[T]()

	var mask uint64

	for i := range b {
		r := saturate[T](shiftElem(int64(b[i]), -shl, w))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, w)
}

// Add computes a[i] = sat(b[i] >> bShr + c[i] >> cShr).
func Add[T Mantissa](a, b, c []T, bShr, cShr int) int {
	w := width[T]()

	var mask uint64

	for i := range b {
		r := saturate[T](shiftElem(int64(b[i]), bShr, w) + shiftElem(int64(c[i]), cShr, w))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, w)
}

// Sub computes a[i] = sat(b[i] >> bShr - c[i] >> cShr).
func Sub[T Mantissa](a, b, c []T, bShr, cShr int) int {
	w := width[T]()

	var mask uint64

	for i := range b {
		r := saturate[T](shiftElem(int64(b[i]), bShr, w) - shiftElem(int64(c[i]), cShr, w))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, w)
}

// Mul computes a[i] = sat((b[i] * c[i]) >> sat).
func Mul[T Mantissa](a, b, c []T, sat int) int {
	w := width[T]()

	var mask uint64

	for i := range b {
		r := saturate[T](shiftWide(int64(b[i])*int64(c[i]), sat))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, w)
}

// ScalarMul computes a[i] = sat((b[i] * alpha) >> sat).
func ScalarMul[T Mantissa](a, b []T, alpha T, sat int) int {
	w := width[T]()
	k := int64(alpha)

	var mask uint64

	for i := range b {
		r := saturate[T](shiftWide(int64(b[i])*k, sat))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, w)
}

// Abs computes a[i] = |b[i]|, saturating the most negative value.
func Abs[T Mantissa](a, b []T) int {
	w := width[T]()

	var mask uint64

	for i := range b {
		r := saturate[T](abs64(int64(b[i])))
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, w)
}

// Rect computes a[i] = max(b[i], 0).
func Rect[T Mantissa](a, b []T) int {
	w := width[T]()

	var mask uint64

	for i := range b {
		r := max(b[i], 0)
		a[i] = r
		mask |= m.SignMask(int64(r))
	}

	return m.HeadroomOfMask(mask, w)
}

// Sum returns the exact sum of b.
func Sum[T Mantissa](b []T) int64 {
	var s int64
	for _, v := range b {
		s += int64(v)
	}

	return s
}
