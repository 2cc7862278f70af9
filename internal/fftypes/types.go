// Package fftypes holds the element types shared by the BFP packages.
package fftypes

// ComplexS16 is a complex number with 16-bit integer parts.
type ComplexS16 struct {
	Re, Im int16
}

// ComplexS32 is a complex number with 32-bit integer parts. Its layout is two
// consecutive int32 values, so a []int32 of even length can be viewed as a
// []ComplexS32 of half the length.
type ComplexS32 struct {
	Re, Im int32
}

// ComplexS64 is a complex number with 64-bit integer parts, used for sums.
type ComplexS64 struct {
	Re, Im int64
}

// Mantissa is the set of real mantissa element types.
type Mantissa interface {
	~int16 | ~int32
}
