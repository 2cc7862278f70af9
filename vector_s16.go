package algobfp

import (
	"github.com/cwbudde/algo-bfp/internal/kernels"
	bm "github.com/cwbudde/algo-bfp/internal/math"
	"github.com/cwbudde/algo-bfp/internal/params"
)

// VectorS16 is a BFP vector of 16-bit real mantissas.
type VectorS16 struct {
	Data []int16
	Exp  int
	HR   int
}

// NewVectorS16 binds data with exponent exp and computes its headroom.
func NewVectorS16(data []int16, exp int) *VectorS16 {
	a := &VectorS16{Data: data, Exp: exp}
	a.Headroom()

	return a
}

// Init binds data with exponent exp and an asserted headroom hr.
func (a *VectorS16) Init(data []int16, exp, hr int) {
	a.Data, a.Exp, a.HR = data, exp, hr
}

// Len returns the number of elements.
func (a *VectorS16) Len() int { return len(a.Data) }

// Headroom recomputes, stores and returns the headroom. Call it after
// modifying Data directly.
func (a *VectorS16) Headroom() int {
	a.HR = kernels.Headroom(a.Data)

	return a.HR
}

// Set sets every element to m * 2^exp.
func (a *VectorS16) Set(m int16, exp int) {
	a.Exp = exp
	a.HR = kernels.Set(a.Data, m)
}

// Shl sets a[i] = b[i] * 2^shl, saturating. The exponent is copied from b,
// so the represented values change. Negative shl shifts right.
func (a *VectorS16) Shl(b *VectorS16, shl int) {
	n := b.Len()
	assertLengths("VectorS16.Shl", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.Shl(a.Data, b.Data, shl)
}

// Add sets a = b + c.
func (a *VectorS16) Add(b, c *VectorS16) {
	n := b.Len()
	assertLengths("VectorS16.Add", n, a.Len(), c.Len())

	exp, bShr, cShr := params.AddSub(16, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.Add(a.Data, b.Data, c.Data, bShr, cShr)
}

// Sub sets a = b - c.
func (a *VectorS16) Sub(b, c *VectorS16) {
	n := b.Len()
	assertLengths("VectorS16.Sub", n, a.Len(), c.Len())

	exp, bShr, cShr := params.AddSub(16, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.Sub(a.Data, b.Data, c.Data, bShr, cShr)
}

// Mul sets a[i] = b[i] * c[i].
func (a *VectorS16) Mul(b, c *VectorS16) {
	n := b.Len()
	assertLengths("VectorS16.Mul", n, a.Len(), c.Len())

	exp, sat := params.Mul(16, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.Mul(a.Data, b.Data, c.Data, sat)
}

// Scale sets a[i] = b[i] * alpha * 2^alphaExp.
func (a *VectorS16) Scale(b *VectorS16, alpha int16, alphaExp int) {
	n := b.Len()
	assertLengths("VectorS16.Scale", n, a.Len())

	exp, sat := params.Scale(16, b.Exp, alphaExp, b.HR, bm.HR16(alpha), AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ScalarMul(a.Data, b.Data, alpha, sat)
}

// Abs sets a[i] = |b[i]|.
func (a *VectorS16) Abs(b *VectorS16) {
	n := b.Len()
	assertLengths("VectorS16.Abs", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.Abs(a.Data, b.Data)
}

// Rect sets a[i] = max(b[i], 0).
func (a *VectorS16) Rect(b *VectorS16) {
	n := b.Len()
	assertLengths("VectorS16.Rect", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.Rect(a.Data, b.Data)
}

// Sum returns the exact sum of the mantissas, at exponent a.Exp.
func (a *VectorS16) Sum() int64 {
	return kernels.Sum(a.Data)
}

// SquaredMag sets a[i] = |b[i]|^2.
func (a *VectorS16) SquaredMag(b *ComplexVectorS16) {
	n := b.Len()
	assertLengths("VectorS16.SquaredMag", n, a.Len())

	exp, sat := params.SquaredMag(16, b.Exp, b.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexSquaredMag16(a.Data, b.Real, b.Imag, sat)
}

// Mag sets a[i] = |b[i]|.
func (a *VectorS16) Mag(b *ComplexVectorS16) {
	n := b.Len()
	assertLengths("VectorS16.Mag", n, a.Len())

	exp, bShr := params.Mag(b.Exp, b.HR)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexMag16(a.Data, b.Real, b.Imag, bShr)
}

// FromS32 converts b to 16 bits, shifting out the low bits that do not fit.
func (a *VectorS16) FromS32(b *VectorS32) {
	n := b.Len()
	assertLengths("VectorS16.FromS32", n, a.Len())

	exp, bShr := params.Narrow(b.Exp, b.HR)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.S32ToS16(a.Data, b.Data, bShr)
}

// RealPart sets a to the real parts of b.
func (a *VectorS16) RealPart(b *ComplexVectorS16) {
	n := b.Len()
	assertLengths("VectorS16.RealPart", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.Copy(a.Data, b.Real)
}

// ImagPart sets a to the imaginary parts of b.
func (a *VectorS16) ImagPart(b *ComplexVectorS16) {
	n := b.Len()
	assertLengths("VectorS16.ImagPart", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.Copy(a.Data, b.Imag)
}
