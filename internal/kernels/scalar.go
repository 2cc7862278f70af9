// Package kernels implements the integer vector kernels behind the BFP
// operations. Kernels take the shifts chosen by package params, write their
// output and return its headroom. They do not check slice lengths: the
// output and every input must hold at least as many elements as the first
// input.
package kernels

import (
	"unsafe"

	"github.com/cwbudde/algo-bfp/internal/fftypes"
	m "github.com/cwbudde/algo-bfp/internal/math"
)

// Mantissa is the set of real element types the generic kernels accept.
type Mantissa = fftypes.Mantissa

// maxShift bounds left shifts. Any non-zero 32-bit value shifted by it
// saturates, and the result still fits in an int64.
const maxShift = 31

func width[T Mantissa]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}

// limit returns the symmetric saturation bound 2^(w-1) - 1.
func limit(w int) int64 {
	return int64(1)<<(w-1) - 1
}

func saturate[T Mantissa](v int64) T {
	l := limit(width[T]())

	switch {
	case v > l:
		return T(l)
	case v < -l:
		return T(-l)
	}

	return T(v)
}

func saturate16(v int64) int16 {
	return saturate[int16](v)
}

func saturate32(v int64) int32 {
	return saturate[int32](v)
}

// shiftElem shifts a w-bit element right by s (left when s is negative).
// Right shifts floor; a right shift of w or more gives 0.
func shiftElem(v int64, s, w int) int64 {
	switch {
	case s >= w:
		return 0
	case s > 0:
		return v >> s
	case s < 0:
		return v << min(-s, maxShift)
	}

	return v
}

// shiftWide is shiftElem for 64-bit intermediates such as products.
func shiftWide(v int64, s int) int64 {
	switch {
	case s >= 63:
		return 0
	case s > 0:
		return v >> s
	case s < 0:
		return v << min(-s, maxShift)
	}

	return v
}

// shiftSum returns floor((p + q) / 2^s) for products p, q of two 32-bit
// values, whose sum may not fit in an int64.
func shiftSum(p, q int64, s int) int64 {
	if s <= 0 {
		return shiftWide(p+q, s)
	}

	half := p>>1 + q>>1 + (p & q & 1)

	return shiftWide(half, s-1)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// Headroom returns the headroom of b, or width-1 when b is empty.
func Headroom[T Mantissa](b []T) int {
	var mask uint64
	for _, v := range b {
		mask |= m.SignMask(int64(v))
	}

	return m.HeadroomOfMask(mask, width[T]())
}
