package algobfp

import (
	"github.com/cwbudde/algo-bfp/internal/kernels"
	bm "github.com/cwbudde/algo-bfp/internal/math"
	"github.com/cwbudde/algo-bfp/internal/params"
)

// VectorS32 is a BFP vector of 32-bit real mantissas.
type VectorS32 struct {
	Data []int32
	Exp  int
	HR   int
}

// NewVectorS32 binds data with exponent exp and computes its headroom.
func NewVectorS32(data []int32, exp int) *VectorS32 {
	a := &VectorS32{Data: data, Exp: exp}
	a.Headroom()

	return a
}

// Init binds data with exponent exp and an asserted headroom hr.
func (a *VectorS32) Init(data []int32, exp, hr int) {
	a.Data, a.Exp, a.HR = data, exp, hr
}

// Len returns the number of elements.
func (a *VectorS32) Len() int { return len(a.Data) }

// Headroom recomputes, stores and returns the headroom. Call it after
// modifying Data directly.
func (a *VectorS32) Headroom() int {
	a.HR = kernels.Headroom(a.Data)

	return a.HR
}

// Set sets every element to m * 2^exp.
func (a *VectorS32) Set(m int32, exp int) {
	a.Exp = exp
	a.HR = kernels.Set(a.Data, m)
}

// Shl sets a[i] = b[i] * 2^shl, saturating. The exponent is copied from b,
// so the represented values change. Negative shl shifts right.
func (a *VectorS32) Shl(b *VectorS32, shl int) {
	n := b.Len()
	assertLengths("VectorS32.Shl", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.Shl(a.Data, b.Data, shl)
}

// Add sets a = b + c.
func (a *VectorS32) Add(b, c *VectorS32) {
	n := b.Len()
	assertLengths("VectorS32.Add", n, a.Len(), c.Len())

	exp, bShr, cShr := params.AddSub(32, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.Add(a.Data, b.Data, c.Data, bShr, cShr)
}

// Sub sets a = b - c.
func (a *VectorS32) Sub(b, c *VectorS32) {
	n := b.Len()
	assertLengths("VectorS32.Sub", n, a.Len(), c.Len())

	exp, bShr, cShr := params.AddSub(32, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.Sub(a.Data, b.Data, c.Data, bShr, cShr)
}

// Mul sets a[i] = b[i] * c[i].
func (a *VectorS32) Mul(b, c *VectorS32) {
	n := b.Len()
	assertLengths("VectorS32.Mul", n, a.Len(), c.Len())

	exp, sat := params.Mul(32, b.Exp, c.Exp, b.HR, c.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.Mul(a.Data, b.Data, c.Data, sat)
}

// Scale sets a[i] = b[i] * alpha * 2^alphaExp.
func (a *VectorS32) Scale(b *VectorS32, alpha int32, alphaExp int) {
	n := b.Len()
	assertLengths("VectorS32.Scale", n, a.Len())

	exp, sat := params.Scale(32, b.Exp, alphaExp, b.HR, bm.HR32(alpha), AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ScalarMul(a.Data, b.Data, alpha, sat)
}

// Abs sets a[i] = |b[i]|.
func (a *VectorS32) Abs(b *VectorS32) {
	n := b.Len()
	assertLengths("VectorS32.Abs", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.Abs(a.Data, b.Data)
}

// Rect sets a[i] = max(b[i], 0).
func (a *VectorS32) Rect(b *VectorS32) {
	n := b.Len()
	assertLengths("VectorS32.Rect", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.Rect(a.Data, b.Data)
}

// Sum returns the exact sum of the mantissas, at exponent a.Exp.
func (a *VectorS32) Sum() int64 {
	return kernels.Sum(a.Data)
}

// SquaredMag sets a[i] = |b[i]|^2.
func (a *VectorS32) SquaredMag(b *ComplexVectorS32) {
	n := b.Len()
	assertLengths("VectorS32.SquaredMag", n, a.Len())

	exp, sat := params.SquaredMag(32, b.Exp, b.HR, AllowSaturation)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexSquaredMag32(a.Data, b.Data, sat)
}

// Mag sets a[i] = |b[i]|.
func (a *VectorS32) Mag(b *ComplexVectorS32) {
	n := b.Len()
	assertLengths("VectorS32.Mag", n, a.Len())

	exp, bShr := params.Mag(b.Exp, b.HR)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.ComplexMag32(a.Data, b.Data, bShr)
}

// FromS16 widens b to 32 bits. Mantissas and exponent are unchanged.
func (a *VectorS32) FromS16(b *VectorS16) {
	n := b.Len()
	assertLengths("VectorS32.FromS16", n, a.Len())

	exp, _ := params.Widen(b.Exp, b.HR)
	a.Exp = exp
	a.Data = a.Data[:n]
	a.HR = kernels.S16ToS32(a.Data, b.Data)
}

// RealPart sets a to the real parts of b.
func (a *VectorS32) RealPart(b *ComplexVectorS32) {
	n := b.Len()
	assertLengths("VectorS32.RealPart", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.RealPart32(a.Data, b.Data)
}

// ImagPart sets a to the imaginary parts of b.
func (a *VectorS32) ImagPart(b *ComplexVectorS32) {
	n := b.Len()
	assertLengths("VectorS32.ImagPart", n, a.Len())

	a.Exp = b.Exp
	a.Data = a.Data[:n]
	a.HR = kernels.ImagPart32(a.Data, b.Data)
}
