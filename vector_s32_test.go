package algobfp

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-bfp/internal/reference"
)

func TestVectorS32SubVectors(t *testing.T) {
	t.Parallel()

	if AllowSaturation {
		t.Skip("vectors assume exponents chosen without saturation")
	}

	type operand struct {
		m   int32
		exp int
	}

	tests := []struct {
		b, c    operand
		want    int32
		wantExp int
	}{
		{operand{-0x10000, 0}, operand{0x10000, 0}, -0x40000000, -13},
		{operand{0xFF00, 0}, operand{-0xFF00, 0}, 0x7F800000, -14},
		{operand{0x100, 0}, operand{0, 0}, 0x20000000, -21},
		{operand{0x200, 0}, operand{0, 0}, 0x20000000, -20},
		{operand{0, 0}, operand{-0x111100, 0}, 0x22220000, -9},
		{operand{0x100, 0}, operand{-0x100, 0}, 0x40000000, -21},
		{operand{-0x10000, 1}, operand{0x10000, 1}, -0x40000000, -12},
		{operand{0x100, 1}, operand{-0x100, 1}, 0x40000000, -20},
		{operand{0x100, 1}, operand{-0x100, 0}, 0x30000000, -20},
		{operand{0x100, 0}, operand{-0x100, 1}, 0x60000000, -21},
		{operand{0x200, 0}, operand{-0x100, 0}, 0x30000000, -20},
		{operand{0x200, 0}, operand{-0x1000, -4}, 0x30000000, -20},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x_%d-%#x_%d", tt.b.m, tt.b.exp, tt.c.m, tt.c.exp), func(t *testing.T) {
			t.Parallel()

			b := NewVectorS32([]int32{tt.b.m}, tt.b.exp)
			c := NewVectorS32([]int32{tt.c.m}, tt.c.exp)
			a := NewVectorS32(make([]int32, 1), 0)

			a.Sub(b, c)
			assert.Equal(t, tt.want, a.Data[0])
			assert.Equal(t, tt.wantExp, a.Exp)
			requireHeadroomS32(t, a)
		})
	}
}

func TestVectorS32SubAligned(t *testing.T) {
	t.Parallel()

	if AllowSaturation {
		t.Skip("vectors assume exponents chosen without saturation")
	}

	a := NewVectorS32(make([]int32, 1), 0)
	a.Sub(NewVectorS32([]int32{0x000200}, 0), NewVectorS32([]int32{-0x000000}, 0))
	assert.Equal(t, []int32{0x20000000}, a.Data)
	assert.Equal(t, -20, a.Exp)
	assert.Equal(t, 1, a.HR)
}

func TestVectorS32Ops(t *testing.T) {
	t.Parallel()

	type op struct {
		name  string
		tol   float64
		apply func(a, b, c *VectorS32)
		want  func(b, c []float64) []float64
	}

	ops := []op{
		{"Add", 2, func(a, b, c *VectorS32) { a.Add(b, c) }, func(b, c []float64) []float64 {
			return zipWith(b, c, func(x, y float64) float64 { return x + y })
		}},
		{"Sub", 2, func(a, b, c *VectorS32) { a.Sub(b, c) }, func(b, c []float64) []float64 {
			return zipWith(b, c, func(x, y float64) float64 { return x - y })
		}},
		{"Mul", 1, func(a, b, c *VectorS32) { a.Mul(b, c) }, func(b, c []float64) []float64 {
			return zipWith(b, c, func(x, y float64) float64 { return x * y })
		}},
		{"Scale", 1, func(a, b, _ *VectorS32) { a.Scale(b, 0x12345, 4) }, func(b, _ []float64) []float64 {
			return zipWith(b, b, func(x, _ float64) float64 { return x * 0x12345 * 16 })
		}},
	}

	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			t.Parallel()

			r := rand.New(rand.NewSource(int64(len(o.name)) + 100))

			for trial := range 50 {
				n := 1 + r.Intn(50)
				b := NewVectorS32(randomS32(r, n, r.Intn(20)), r.Intn(60)-30)
				c := NewVectorS32(randomS32(r, n, r.Intn(20)), r.Intn(60)-30)
				a := NewVectorS32(make([]int32, n), 0)

				want := o.want(reference.FromS32(b.Data, b.Exp), reference.FromS32(c.Data, c.Exp))
				o.apply(a, b, c)
				requireHeadroomS32(t, a)
				requireWithinLSB(t, want, reference.FromS32(a.Data, a.Exp), a.Exp, o.tol)

				// Writing over the second operand gives the same result.
				alias := NewVectorS32(append([]int32(nil), c.Data...), c.Exp)
				o.apply(alias, b, alias)
				require.Equal(t, a, alias, "trial %d", trial)
			}
		})
	}
}

func TestVectorS32Mag(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))

	for _, hr := range []int{0, 1, 5, 17} {
		b := NewComplexVectorS32(randomComplexS32(r, 64, hr), -12)
		a := NewVectorS32(make([]int32, 64), 0)

		want := make([]float64, 64)
		sq := make([]float64, 64)

		for i, v := range reference.FromComplexS32(b.Data, b.Exp) {
			re, im := real(v), imag(v)
			sq[i] = re*re + im*im
			want[i] = math.Sqrt(sq[i])
		}

		a.Mag(b)
		requireHeadroomS32(t, a)
		requireWithinLSB(t, want, reference.FromS32(a.Data, a.Exp), a.Exp, 1)

		a.SquaredMag(b)
		requireHeadroomS32(t, a)
		requireWithinLSB(t, sq, reference.FromS32(a.Data, a.Exp), a.Exp, 1)
	}
}

func TestVectorS32AbsRectSum(t *testing.T) {
	t.Parallel()

	b := NewVectorS32([]int32{-0x7FFFFFFF, 12, -3, 0}, 5)
	a := NewVectorS32(make([]int32, 4), 0)

	a.Abs(b)
	assert.Equal(t, []int32{0x7FFFFFFF, 12, 3, 0}, a.Data)
	assert.Equal(t, 5, a.Exp)
	requireHeadroomS32(t, a)

	a.Rect(b)
	assert.Equal(t, []int32{0, 12, 0, 0}, a.Data)
	requireHeadroomS32(t, a)

	assert.Equal(t, int64(-0x7FFFFFFF+9), b.Sum())
}
