package algobfp

import "github.com/cwbudde/algo-bfp/internal/fftypes"

// ComplexS16 is a complex scalar with 16-bit parts.
// The canonical definition is in internal/fftypes.
type ComplexS16 = fftypes.ComplexS16

// ComplexS32 is a complex scalar with 32-bit parts. A []ComplexS32 has the
// same layout as a []int32 of twice the length.
type ComplexS32 = fftypes.ComplexS32

// ComplexS64 is a complex scalar with 64-bit parts, returned by sums.
type ComplexS64 = fftypes.ComplexS64
