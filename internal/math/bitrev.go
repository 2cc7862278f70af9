package math

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 FFT.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	nbits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, nbits)
	}

	return bitrev
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ReverseBits reverses the lower 'nbits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, nbits int) int {
	result := 0
	for range nbits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// BitReversePermute reorders x in place into bit-reversed index order.
// len(x) must be a power of two.
func BitReversePermute[T any](x []T) {
	n := len(x)
	if n <= 2 {
		return
	}

	nbits := Log2(n)

	for i := range n {
		j := ReverseBits(i, nbits)
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}
}
