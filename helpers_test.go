package algobfp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-bfp/internal/reference"
)

func randomS16(r *rand.Rand, n, hr int) []int16 {
	span := int64(1) << (15 - hr)
	out := make([]int16, n)

	for i := range out {
		out[i] = int16(r.Int63n(2*span-1) - span + 1)
	}

	return out
}

func randomS32(r *rand.Rand, n, hr int) []int32 {
	span := int64(1) << (31 - hr)
	out := make([]int32, n)

	for i := range out {
		out[i] = int32(r.Int63n(2*span-1) - span + 1)
	}

	return out
}

func randomComplexS32(r *rand.Rand, n, hr int) []ComplexS32 {
	re, im := randomS32(r, n, hr), randomS32(r, n, hr)
	out := make([]ComplexS32, n)

	for i := range out {
		out[i] = ComplexS32{Re: re[i], Im: im[i]}
	}

	return out
}

// cloneC32 copies v, keeping the spare capacity of its storage.
func cloneC32(v *ComplexVectorS32) *ComplexVectorS32 {
	data := make([]ComplexS32, len(v.Data), cap(v.Data))
	copy(data, v.Data)

	return &ComplexVectorS32{Data: data, Exp: v.Exp, HR: v.HR}
}

// requireWithinLSB checks that got*2^exp matches want to within tol steps
// of 2^exp.
func requireWithinLSB(t *testing.T, want, got []float64, exp int, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))

	lsb := reference.LSB(exp)
	for i := range want {
		err := math.Abs(got[i]-want[i]) / lsb
		require.LessOrEqual(t, err, tol, "element %d: got %g want %g (exp %d)", i, got[i], want[i], exp)
	}
}

func requireComplexWithinLSB(t *testing.T, want, got []complex128, exp int, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))

	err := reference.MaxComplexError(got, want) / reference.LSB(exp)
	require.LessOrEqual(t, err, tol, "exp %d", exp)
}

func requireHeadroomS16(t *testing.T, v *VectorS16) {
	t.Helper()

	want := v.HR
	require.Equal(t, want, v.Headroom(), "stored headroom is stale")
}

func requireHeadroomS32(t *testing.T, v *VectorS32) {
	t.Helper()

	want := v.HR
	require.Equal(t, want, v.Headroom(), "stored headroom is stale")
}

func requireHeadroomC16(t *testing.T, v *ComplexVectorS16) {
	t.Helper()

	want := v.HR
	require.Equal(t, want, v.Headroom(), "stored headroom is stale")
}

func requireHeadroomC32(t *testing.T, v *ComplexVectorS32) {
	t.Helper()

	want := v.HR
	require.Equal(t, want, v.Headroom(), "stored headroom is stale")
}
