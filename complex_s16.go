package algobfp

import (
	"github.com/cwbudde/algo-bfp/internal/kernels"
	bm "github.com/cwbudde/algo-bfp/internal/math"
	"github.com/cwbudde/algo-bfp/internal/params"
)

// ComplexVectorS16 is a BFP vector of 16-bit complex mantissas stored as
// two parallel slices. Real and Imag must have equal length.
type ComplexVectorS16 struct {
	Real []int16
	Imag []int16
	Exp  int
	HR   int
}

// NewComplexVectorS16 binds re and im with exponent exp and computes the
// headroom.
func NewComplexVectorS16(re, im []int16, exp int) *ComplexVectorS16 {
	a := &ComplexVectorS16{Real: re, Imag: im, Exp: exp}
	a.Headroom()

	return a
}

// Init binds re and im with exponent exp and an asserted headroom hr.
func (a *ComplexVectorS16) Init(re, im []int16, exp, hr int) {
	a.Real, a.Imag, a.Exp, a.HR = re, im, exp, hr
}

// Len returns the number of elements.
func (a *ComplexVectorS16) Len() int { return len(a.Real) }

// Headroom recomputes, stores and returns the headroom over both parts.
func (a *ComplexVectorS16) Headroom() int {
	a.HR = kernels.ComplexHeadroom16(a.Real, a.Imag)

	return a.HR
}

// resize sets the length of both parts to n.
func (a *ComplexVectorS16) resize(n int) {
	a.Real = a.Real[:n]
	a.Imag = a.Imag[:n]
}

// Set sets every element to m * 2^exp.
func (a *ComplexVectorS16) Set(m ComplexS16, exp int) {
	a.Exp = exp
	a.HR = min(kernels.Set(a.Real, m.Re), kernels.Set(a.Imag, m.Im))
}

// Shl sets a[i] = b[i] * 2^shl, saturating. The exponent is copied from b.
func (a *ComplexVectorS16) Shl(b *ComplexVectorS16, shl int) {
	n := b.Len()
	assertLengths("ComplexVectorS16.Shl", n, a.Len())

	a.Exp = b.Exp
	a.resize(n)
	a.HR = min(kernels.Shl(a.Real, b.Real, shl), kernels.Shl(a.Imag, b.Imag, shl))
}

// Add sets a = b + c.
func (a *ComplexVectorS16) Add(b, c *ComplexVectorS16) {
	n := b.Len()
	assertLengths("ComplexVectorS16.Add", n, a.Len(), c.Len())

	exp, bShr, cShr := params.AddSub(16, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.resize(n)
	a.HR = min(
		kernels.Add(a.Real, b.Real, c.Real, bShr, cShr),
		kernels.Add(a.Imag, b.Imag, c.Imag, bShr, cShr),
	)
}

// Sub sets a = b - c.
func (a *ComplexVectorS16) Sub(b, c *ComplexVectorS16) {
	n := b.Len()
	assertLengths("ComplexVectorS16.Sub", n, a.Len(), c.Len())

	exp, bShr, cShr := params.AddSub(16, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.resize(n)
	a.HR = min(
		kernels.Sub(a.Real, b.Real, c.Real, bShr, cShr),
		kernels.Sub(a.Imag, b.Imag, c.Imag, bShr, cShr),
	)
}

// RealMul sets a[i] = b[i] * c[i] for a real vector c.
func (a *ComplexVectorS16) RealMul(b *ComplexVectorS16, c *VectorS16) {
	n := b.Len()
	assertLengths("ComplexVectorS16.RealMul", n, a.Len(), c.Len())

	exp, sat := params.Mul(16, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.resize(n)
	a.HR = min(
		kernels.Mul(a.Real, b.Real, c.Data, sat),
		kernels.Mul(a.Imag, b.Imag, c.Data, sat),
	)
}

// Mul sets a[i] = b[i] * c[i].
func (a *ComplexVectorS16) Mul(b, c *ComplexVectorS16) {
	n := b.Len()
	assertLengths("ComplexVectorS16.Mul", n, a.Len(), c.Len())

	exp, sat := params.ComplexMul(16, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.resize(n)
	a.HR = kernels.ComplexMul16(a.Real, a.Imag, b.Real, b.Imag, c.Real, c.Imag, sat)
}

// ConjMul sets a[i] = b[i] * conj(c[i]).
func (a *ComplexVectorS16) ConjMul(b, c *ComplexVectorS16) {
	n := b.Len()
	assertLengths("ComplexVectorS16.ConjMul", n, a.Len(), c.Len())

	exp, sat := params.ComplexMul(16, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.resize(n)
	a.HR = kernels.ComplexConjMul16(a.Real, a.Imag, b.Real, b.Imag, c.Real, c.Imag, sat)
}

// RealScale sets a[i] = b[i] * alpha * 2^alphaExp for a real scalar.
func (a *ComplexVectorS16) RealScale(b *ComplexVectorS16, alpha int16, alphaExp int) {
	n := b.Len()
	assertLengths("ComplexVectorS16.RealScale", n, a.Len())

	exp, sat := params.Scale(16, b.Exp, alphaExp, b.HR, bm.HR16(alpha), AllowSaturation)
	a.Exp = exp
	a.resize(n)
	a.HR = min(
		kernels.ScalarMul(a.Real, b.Real, alpha, sat),
		kernels.ScalarMul(a.Imag, b.Imag, alpha, sat),
	)
}

// Scale sets a[i] = b[i] * alpha * 2^alphaExp for a complex scalar.
func (a *ComplexVectorS16) Scale(b *ComplexVectorS16, alpha ComplexS16, alphaExp int) {
	n := b.Len()
	assertLengths("ComplexVectorS16.Scale", n, a.Len())

	alphaHR := min(bm.HR16(alpha.Re), bm.HR16(alpha.Im))
	exp, sat := params.ComplexScale(16, b.Exp, alphaExp, b.HR, alphaHR, AllowSaturation)
	a.Exp = exp
	a.resize(n)
	a.HR = kernels.ComplexScale16(a.Real, a.Imag, b.Real, b.Imag, alpha, sat)
}

// Sum returns the exact sum of the mantissas, at exponent a.Exp.
func (a *ComplexVectorS16) Sum() ComplexS64 {
	return kernels.ComplexSum16(a.Real, a.Imag)
}

// FromComplexS32 converts b to 16-bit split storage, shifting out the low
// bits that do not fit.
func (a *ComplexVectorS16) FromComplexS32(b *ComplexVectorS32) {
	n := b.Len()
	assertLengths("ComplexVectorS16.FromComplexS32", n, a.Len())

	exp, bShr := params.Narrow(b.Exp, b.HR)
	a.Exp = exp
	a.resize(n)
	a.HR = kernels.ComplexS32ToS16(a.Real, a.Imag, b.Data, bShr)
}

// FromReal sets a[i] = b[i] + 0j.
func (a *ComplexVectorS16) FromReal(b *VectorS16) {
	n := b.Len()
	assertLengths("ComplexVectorS16.FromReal", n, a.Len())

	a.Exp = b.Exp
	a.resize(n)
	hr := kernels.Copy(a.Real, b.Data)
	a.HR = min(hr, kernels.Set(a.Imag, 0))
}
