package algobfp

import (
	"errors"
	"fmt"

	bm "github.com/cwbudde/algo-bfp/internal/math"
)

// Sentinel errors. Operations on vectors do not return errors; builds with
// the bfpdebug tag panic with one of these wrapped when an argument breaks
// a precondition. CheckFFTLength and the stereo helpers return them.
var (
	// ErrInvalidLength is returned when an FFT length is not a power of two
	// in the supported range.
	ErrInvalidLength = errors.New("algobfp: invalid FFT length")

	// ErrLengthMismatch is returned when operand vectors differ in length.
	ErrLengthMismatch = errors.New("algobfp: vector length mismatch")

	// ErrCapacity is returned when a buffer lacks the spare capacity an
	// operation needs, such as the extra bin written by Unpack.
	ErrCapacity = errors.New("algobfp: insufficient capacity")
)

// CheckFFTLength reports whether n is a valid transform length. Complex
// transforms accept powers of two from 4 to 2^MaxFFTLog2, real transforms
// from 8 to 2^MaxFFTLog2.
func CheckFFTLength(n int, isReal bool) error {
	lo := minComplexFFT
	if isReal {
		lo = minRealFFT
	}

	if n < lo || n > 1<<MaxFFTLog2 || !bm.IsPowerOf2(n) {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return nil
}
