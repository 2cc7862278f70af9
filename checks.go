package algobfp

import "fmt"

// assertLengths panics when any of lengths differs from want. It compiles
// to nothing without the bfpdebug tag.
func assertLengths(op string, want int, lengths ...int) {
	if !debugChecks {
		return
	}

	for _, n := range lengths {
		if n != want {
			panic(fmt.Errorf("%w: %s: %d != %d", ErrLengthMismatch, op, n, want))
		}
	}
}

// assertFFTLength panics when n is not a valid transform length.
func assertFFTLength(op string, n int, isReal bool) {
	if !debugChecks {
		return
	}

	if err := CheckFFTLength(n, isReal); err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
}
