package algobfp

import (
	"github.com/cwbudde/algo-bfp/internal/kernels"
	bm "github.com/cwbudde/algo-bfp/internal/math"
	"github.com/cwbudde/algo-bfp/internal/params"
)

// ComplexVectorS32 is a BFP vector of interleaved 32-bit complex mantissas.
type ComplexVectorS32 struct {
	Data []ComplexS32
	Exp  int
	HR   int
}

// NewComplexVectorS32 binds data with exponent exp and computes the
// headroom.
func NewComplexVectorS32(data []ComplexS32, exp int) *ComplexVectorS32 {
	a := &ComplexVectorS32{Data: data, Exp: exp}
	a.Headroom()

	return a
}

// Init binds data with exponent exp and an asserted headroom hr.
func (a *ComplexVectorS32) Init(data []ComplexS32, exp, hr int) {
	a.Data, a.Exp, a.HR = data, exp, hr
}

// Len returns the number of elements.
func (a *ComplexVectorS32) Len() int { return len(a.Data) }

// Headroom recomputes, stores and returns the headroom over both parts.
func (a *ComplexVectorS32) Headroom() int {
	a.HR = kernels.ComplexHeadroom32(a.Data)

	return a.HR
}

// Set sets every element to m * 2^exp.
func (a *ComplexVectorS32) Set(m ComplexS32, exp int) {
	a.Exp = exp
	a.HR = kernels.ComplexSet32(a.Data, m)
}

// Shl sets a[i] = b[i] * 2^shl, saturating. The exponent is copied from b.
func (a *ComplexVectorS32) Shl(b *ComplexVectorS32, shl int) {
	n := b.Len()
	assertLengths("ComplexVectorS32.Shl", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexShl32(a.Data, b.Data, shl)
}

// Add sets a = b + c.
func (a *ComplexVectorS32) Add(b, c *ComplexVectorS32) {
	n := b.Len()
	assertLengths("ComplexVectorS32.Add", n, a.Len(), c.Len())

	exp, bShr, cShr := params.AddSub(32, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexAdd32(a.Data, b.Data, c.Data, bShr, cShr)
}

// Sub sets a = b - c.
func (a *ComplexVectorS32) Sub(b, c *ComplexVectorS32) {
	n := b.Len()
	assertLengths("ComplexVectorS32.Sub", n, a.Len(), c.Len())

	exp, bShr, cShr := params.AddSub(32, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexSub32(a.Data, b.Data, c.Data, bShr, cShr)
}

// RealMul sets a[i] = b[i] * c[i] for a real vector c.
func (a *ComplexVectorS32) RealMul(b *ComplexVectorS32, c *VectorS32) {
	n := b.Len()
	assertLengths("ComplexVectorS32.RealMul", n, a.Len(), c.Len())

	exp, sat := params.Mul(32, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexRealMul32(a.Data, b.Data, c.Data, sat)
}

// Mul sets a[i] = b[i] * c[i].
func (a *ComplexVectorS32) Mul(b, c *ComplexVectorS32) {
	n := b.Len()
	assertLengths("ComplexVectorS32.Mul", n, a.Len(), c.Len())

	exp, sat := params.ComplexMul(32, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexMul32(a.Data, b.Data, c.Data, sat)
}

// ConjMul sets a[i] = b[i] * conj(c[i]).
func (a *ComplexVectorS32) ConjMul(b, c *ComplexVectorS32) {
	n := b.Len()
	assertLengths("ComplexVectorS32.ConjMul", n, a.Len(), c.Len())

	exp, sat := params.ComplexMul(32, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexConjMul32(a.Data, b.Data, c.Data, sat)
}

// RealScale sets a[i] = b[i] * alpha * 2^alphaExp for a real scalar.
func (a *ComplexVectorS32) RealScale(b *ComplexVectorS32, alpha int32, alphaExp int) {
	n := b.Len()
	assertLengths("ComplexVectorS32.RealScale", n, a.Len())

	exp, sat := params.Scale(32, b.Exp, alphaExp, b.HR, bm.HR32(alpha), AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexRealScale32(a.Data, b.Data, alpha, sat)
}

// Scale sets a[i] = b[i] * alpha * 2^alphaExp for a complex scalar.
func (a *ComplexVectorS32) Scale(b *ComplexVectorS32, alpha ComplexS32, alphaExp int) {
	n := b.Len()
	assertLengths("ComplexVectorS32.Scale", n, a.Len())

	alphaHR := min(bm.HR32(alpha.Re), bm.HR32(alpha.Im))
	exp, sat := params.ComplexScale(32, b.Exp, alphaExp, b.HR, alphaHR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexScale32(a.Data, b.Data, alpha, sat)
}

// Sum returns the exact sum of the mantissas, at exponent a.Exp.
func (a *ComplexVectorS32) Sum() ComplexS64 {
	return kernels.ComplexSum32(a.Data)
}

// FromComplexS16 widens b to interleaved 32-bit storage. Mantissas and
// exponent are unchanged.
func (a *ComplexVectorS32) FromComplexS16(b *ComplexVectorS16) {
	n := b.Len()
	assertLengths("ComplexVectorS32.FromComplexS16", n, a.Len())

	exp, _ := params.Widen(b.Exp, b.HR)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexS16ToS32(a.Data, b.Real, b.Imag)
}

// FromReal sets a[i] = b[i] + 0j.
func (a *ComplexVectorS32) FromReal(b *VectorS32) {
	n := b.Len()
	assertLengths("ComplexVectorS32.FromReal", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.FromReal32(a.Data, b.Data)
}
