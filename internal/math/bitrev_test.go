package math

import (
	"fmt"
	"testing"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, nbits, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 4},
		{6, 3, 3},
		{3, 4, 12},
		{1, 10, 512},
		{0x3ff, 10, 0x3ff},
	}

	for _, tt := range tests {
		if got := ReverseBits(tt.x, tt.nbits); got != tt.want {
			t.Errorf("ReverseBits(%d, %d) = %d, want %d", tt.x, tt.nbits, got, tt.want)
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for k := range 16 {
		if got := Log2(1 << k); got != k {
			t.Errorf("Log2(%d) = %d, want %d", 1<<k, got, k)
		}
	}
}

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want bool
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{12, false},
		{32768, true},
	}

	for _, tt := range tests {
		if got := IsPowerOf2(tt.n); got != tt.want {
			t.Errorf("IsPowerOf2(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestComputeBitReversalIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		n      int
		expect []int
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"n=1", 1, []int{0}},
		{"n=2", 2, []int{0, 1}},
		{"n=4", 4, []int{0, 2, 1, 3}},
		{"n=8", 8, []int{0, 4, 2, 6, 1, 5, 3, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeBitReversalIndices(tt.n)
			if len(got) != len(tt.expect) {
				t.Fatalf("ComputeBitReversalIndices(%d) returned length %d, want %d",
					tt.n, len(got), len(tt.expect))
			}

			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("ComputeBitReversalIndices(%d)[%d] = %d, want %d",
						tt.n, i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestBitReversePermute(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 64, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := make([]int, n)
			for i := range x {
				x[i] = i
			}

			BitReversePermute(x)

			want := ComputeBitReversalIndices(n)
			for i := range x {
				if x[i] != want[i] {
					t.Fatalf("x[%d] = %d, want %d", i, x[i], want[i])
				}
			}

			// The permutation is an involution.
			BitReversePermute(x)

			for i := range x {
				if x[i] != i {
					t.Fatalf("after second permute x[%d] = %d, want %d", i, x[i], i)
				}
			}
		})
	}
}

func BenchmarkBitReversePermute(b *testing.B) {
	x := make([]int32, 4096)

	b.ReportAllocs()

	for range b.N {
		BitReversePermute(x)
	}
}
