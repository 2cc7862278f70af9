// Package params chooses result exponents and operand shifts for BFP
// operations. Every function is pure: it looks only at exponents and
// headrooms, never at mantissas.
package params

// AddSub returns the output exponent and the right shifts to apply to b and c
// for a = b + c or a = b - c on bits-wide mantissas.
//
// The output exponent leaves one bit of growth above the operand with the
// larger minimum exponent. With allowSat the growth bit is dropped when the
// minima are at least bits-1 apart: the smaller operand then shifts down to
// 0 or -1, so the sum leaves range only by a unit at either extreme.
// Shifts are clamped to bits; a shift of bits zeroes the operand.
func AddSub(bits, bExp, cExp, bHR, cHR int, allowSat bool) (aExp, bShr, cShr int) {
	bMin := bExp - bHR
	cMin := cExp - cHR

	aExp = max(bMin, cMin) + 1
	if allowSat && abs(bMin-cMin) >= bits-1 {
		aExp--
	}

	bShr = min(aExp-bExp, bits)
	cShr = min(aExp-cExp, bits)

	return aExp, bShr, cShr
}

// Mul returns the output exponent and the right shift applied to each
// element-wise product of two bits-wide mantissas.
func Mul(bits, bExp, cExp, bHR, cHR int, allowSat bool) (aExp, sat int) {
	sat = productShift(bits, bHR+cHR, allowSat)

	return bExp + cExp + sat, sat
}

// ComplexMul is Mul for complex products, which need one more bit because
// each output part is the sum of two products.
func ComplexMul(bits, bExp, cExp, bHR, cHR int, allowSat bool) (aExp, sat int) {
	sat = productShift(bits+1, bHR+cHR, allowSat)

	return bExp + cExp + sat, sat
}

// Scale is Mul with c replaced by a scalar of headroom alphaHR.
func Scale(bits, bExp, alphaExp, bHR, alphaHR int, allowSat bool) (aExp, sat int) {
	return Mul(bits, bExp, alphaExp, bHR, alphaHR, allowSat)
}

// ComplexScale is ComplexMul with c replaced by a complex scalar of headroom
// alphaHR.
func ComplexScale(bits, bExp, alphaExp, bHR, alphaHR int, allowSat bool) (aExp, sat int) {
	return ComplexMul(bits, bExp, alphaExp, bHR, alphaHR, allowSat)
}

// Mag returns the output exponent and input shift for the magnitude of a
// complex vector. The input is normalised so the larger part fills all but
// one bit, which leaves room for the sqrt(2) growth of the magnitude.
func Mag(bExp, bHR int) (aExp, bShr int) {
	bShr = 1 - bHR

	return bExp + bShr, bShr
}

// SquaredMag returns the output exponent and product shift for re^2 + im^2.
func SquaredMag(bits, bExp, bHR int, allowSat bool) (aExp, sat int) {
	sat = productShift(bits+1, 2*bHR, allowSat)

	return 2*bExp + sat, sat
}

// Narrow returns the output exponent and right shift that convert a 32-bit
// vector with headroom bHR into 16-bit mantissas without losing the top bit.
func Narrow(bExp, bHR int) (aExp, bShr int) {
	bShr = 16 - bHR

	return bExp + bShr, bShr
}

// Widen returns the exponent and headroom of a 16-bit vector promoted to
// 32 bits. Mantissas are copied unchanged.
func Widen(bExp, bHR int) (aExp, aHR int) {
	return bExp, bHR + 16
}

// productShift returns the right shift that brings a product of operands
// with hrSum combined headroom back into bits-wide range.
func productShift(bits, hrSum int, allowSat bool) int {
	sat := bits - hrSum
	if allowSat {
		sat--
	}

	return max(sat, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
