package fft

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-bfp/internal/fftypes"
)

// MaxLog2 is log2 of the largest supported complex transform length.
const MaxLog2 = 15

// MaxLength is the largest supported transform length.
const MaxLength = 1 << MaxLog2

// twiddleQ is the fractional precision of the twiddle table (Q30).
const twiddleQ = 30

// ComplexS32 is the element type the transforms operate on.
type ComplexS32 = fftypes.ComplexS32

// twiddles holds e^(-j*2*pi*k/MaxLength) in Q30 for k < MaxLength/2.
// A transform of length n reads every (MaxLength/n)-th entry.
var twiddles = sync.OnceValue(func() []ComplexS32 {
	table := make([]ComplexS32, MaxLength/2)
	one := math.Ldexp(1, twiddleQ)

	for k := range table {
		angle := -2 * math.Pi * float64(k) / MaxLength
		table[k] = ComplexS32{
			Re: int32(math.Round(math.Cos(angle) * one)),
			Im: int32(math.Round(math.Sin(angle) * one)),
		}
	}

	return table
})

// twiddleStep returns the table stride for a butterfly span of the given
// length.
func twiddleStep(span int) int {
	return MaxLength / span
}
