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

func TestVectorS16SubVectors(t *testing.T) {
	t.Parallel()

	if AllowSaturation {
		t.Skip("vectors assume exponents chosen without saturation")
	}

	type operand struct {
		m   int16
		exp int
	}

	tests := []struct {
		b, c    operand
		want    int16
		wantExp int
	}{
		{operand{-0x100, 0}, operand{0x100, 0}, -0x4000, -5},
		{operand{0xFF, 0}, operand{-0xFF, 0}, 0x7F80, -6},
		{operand{1, 0}, operand{0, 0}, 0x2000, -13},
		{operand{2, 0}, operand{0, 0}, 0x2000, -12},
		{operand{0, 0}, operand{-0x1111, 0}, 0x2222, -1},
		{operand{1, 0}, operand{-1, 0}, 0x4000, -13},
		{operand{-0x100, 1}, operand{0x100, 1}, -0x4000, -4},
		{operand{0xFF, 1}, operand{-0xFF, 1}, 0x7F80, -5},
		{operand{1, 1}, operand{0, 1}, 0x2000, -12},
		{operand{1, 1}, operand{-1, 1}, 0x4000, -12},
		{operand{1, 1}, operand{-1, 0}, 0x3000, -12},
		{operand{1, 0}, operand{-1, 1}, 0x6000, -13},
		{operand{2, 0}, operand{-1, 0}, 0x3000, -12},
		{operand{2, 0}, operand{-0x10, -4}, 0x3000, -12},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x_%d-%#x_%d", tt.b.m, tt.b.exp, tt.c.m, tt.c.exp), func(t *testing.T) {
			t.Parallel()

			b := NewVectorS16([]int16{tt.b.m}, tt.b.exp)
			c := NewVectorS16([]int16{tt.c.m}, tt.c.exp)
			a := NewVectorS16(make([]int16, 1), 0)

			a.Sub(b, c)
			assert.Equal(t, tt.want, a.Data[0])
			assert.Equal(t, tt.wantExp, a.Exp)
			requireHeadroomS16(t, a)
		})
	}
}

func TestVectorS16SubScenarios(t *testing.T) {
	t.Parallel()

	if AllowSaturation {
		t.Skip("vectors assume exponents chosen without saturation")
	}

	a := NewVectorS16(make([]int16, 1), 0)

	a.Sub(NewVectorS16([]int16{-0x0100}, 0), NewVectorS16([]int16{0x0100}, 0))
	assert.Equal(t, []int16{-0x4000}, a.Data)
	assert.Equal(t, -5, a.Exp)
	assert.Equal(t, 1, a.HR)

	a.Sub(NewVectorS16([]int16{0x0002}, 0), NewVectorS16([]int16{-0x0010}, -4))
	assert.Equal(t, []int16{0x3000}, a.Data)
	assert.Equal(t, -12, a.Exp)
	assert.Equal(t, 1, a.HR)
}

func TestVectorS16Lifecycle(t *testing.T) {
	t.Parallel()

	v := NewVectorS16([]int16{0x10, -0x200, 3}, -7)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 6, v.HR)

	var w VectorS16
	w.Init(v.Data, 2, 6)
	assert.Equal(t, v.Data, w.Data)
	assert.Equal(t, 2, w.Exp)

	empty := NewVectorS16(nil, 0)
	assert.Equal(t, 15, empty.HR)

	v.Set(-1, 4)
	assert.Equal(t, []int16{-1, -1, -1}, v.Data)
	assert.Equal(t, 4, v.Exp)
	assert.Equal(t, 15, v.HR)

	v.Data[1] = 0x4000
	assert.Equal(t, 0, v.Headroom())
}

func TestVectorS16Ops(t *testing.T) {
	t.Parallel()

	type op struct {
		name  string
		tol   float64
		apply func(a, b, c *VectorS16)
		want  func(b, c []float64) []float64
	}

	ops := []op{
		{"Add", 2, func(a, b, c *VectorS16) { a.Add(b, c) }, func(b, c []float64) []float64 {
			return zipWith(b, c, func(x, y float64) float64 { return x + y })
		}},
		{"Sub", 2, func(a, b, c *VectorS16) { a.Sub(b, c) }, func(b, c []float64) []float64 {
			return zipWith(b, c, func(x, y float64) float64 { return x - y })
		}},
		{"Mul", 1, func(a, b, c *VectorS16) { a.Mul(b, c) }, func(b, c []float64) []float64 {
			return zipWith(b, c, func(x, y float64) float64 { return x * y })
		}},
		{"Scale", 1, func(a, b, _ *VectorS16) { a.Scale(b, -0x1234, -3) }, func(b, _ []float64) []float64 {
			return zipWith(b, b, func(x, _ float64) float64 { return x * -0x1234 / 8 })
		}},
		{"Abs", 0, func(a, b, _ *VectorS16) { a.Abs(b) }, func(b, _ []float64) []float64 {
			return zipWith(b, b, func(x, _ float64) float64 { return math.Abs(x) })
		}},
		{"Rect", 0, func(a, b, _ *VectorS16) { a.Rect(b) }, func(b, _ []float64) []float64 {
			return zipWith(b, b, func(x, _ float64) float64 { return max(x, 0) })
		}},
	}

	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			t.Parallel()

			r := rand.New(rand.NewSource(int64(len(o.name))))

			for trial := range 50 {
				n := 1 + r.Intn(50)
				b := NewVectorS16(randomS16(r, n, r.Intn(10)), r.Intn(40)-20)
				c := NewVectorS16(randomS16(r, n, r.Intn(10)), r.Intn(40)-20)
				a := NewVectorS16(make([]int16, n), 0)

				want := o.want(reference.FromS16(b.Data, b.Exp), reference.FromS16(c.Data, c.Exp))
				o.apply(a, b, c)
				requireHeadroomS16(t, a)
				requireWithinLSB(t, want, reference.FromS16(a.Data, a.Exp), a.Exp, o.tol)

				// Writing over the first operand gives the same result.
				alias := NewVectorS16(append([]int16(nil), b.Data...), b.Exp)
				o.apply(alias, alias, c)
				require.Equal(t, a, alias, "trial %d", trial)
			}
		})
	}
}

func zipWith(b, c []float64, f func(x, y float64) float64) []float64 {
	out := make([]float64, len(b))
	for i := range b {
		out[i] = f(b[i], c[i])
	}

	return out
}

func TestVectorS16AddSelf(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(9))
	data := randomS16(r, 40, 0)
	want := make([]float64, len(data))

	for i, v := range data {
		want[i] = 2 * float64(v) * 8
	}

	a := NewVectorS16(data, 3)
	a.Add(a, a)
	requireHeadroomS16(t, a)
	requireWithinLSB(t, want, reference.FromS16(a.Data, a.Exp), a.Exp, 2)
}

func TestVectorS16ShlAndSum(t *testing.T) {
	t.Parallel()

	b := NewVectorS16([]int16{0x0100, -0x0300, 0x0020}, -2)
	a := NewVectorS16(make([]int16, 3), 0)

	a.Shl(b, 5)
	assert.Equal(t, []int16{0x2000, -0x6000, 0x0400}, a.Data)
	assert.Equal(t, -2, a.Exp)
	requireHeadroomS16(t, a)

	a.Shl(b, 7)
	assert.Equal(t, []int16{0x7FFF, -0x7FFF, 0x1000}, a.Data)
	requireHeadroomS16(t, a)

	assert.Equal(t, int64(0x0100-0x0300+0x0020), b.Sum())
}

func TestVectorS16Conversions(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(10))
	b := NewVectorS16(randomS16(r, 32, 2), -9)

	wide := NewVectorS32(make([]int32, 32), 0)
	wide.FromS16(b)
	assert.Equal(t, b.Exp, wide.Exp)
	assert.Equal(t, b.HR+16, wide.HR)
	requireHeadroomS32(t, wide)

	back := NewVectorS16(make([]int16, 32), 0)
	back.FromS32(wide)
	requireHeadroomS16(t, back)
	assert.Equal(t, 0, back.HR)
	requireWithinLSB(t, reference.FromS16(b.Data, b.Exp), reference.FromS16(back.Data, back.Exp), back.Exp, 1)

	c := NewComplexVectorS16(make([]int16, 32), make([]int16, 32), 0)
	c.FromReal(b)
	assert.Equal(t, b.Data, c.Real)
	assert.Equal(t, make([]int16, 32), c.Imag)
	assert.Equal(t, b.HR, c.HR)

	re := NewVectorS16(make([]int16, 32), 0)
	re.RealPart(c)
	assert.Equal(t, b.Data, re.Data)
	assert.Equal(t, b.Exp, re.Exp)
	requireHeadroomS16(t, re)

	im := NewVectorS16(make([]int16, 32), 0)
	im.ImagPart(c)
	assert.Equal(t, 15, im.HR)
}
