package algobfp

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ForwardStereo transforms two real channels of equal length concurrently.
// The channels must not share storage. Both inputs are left empty.
//
// Deprecated: call VectorS32.ForwardFFT on each channel.
func ForwardStereo(left, right *VectorS32) (*ComplexVectorS32, *ComplexVectorS32, error) {
	if err := checkStereo(left.Len(), right.Len()); err != nil {
		return nil, nil, fmt.Errorf("ForwardStereo: %w", err)
	}

	var l, r *ComplexVectorS32

	err := runStereo("ForwardStereo",
		func() { l = left.ForwardFFT() },
		func() { r = right.ForwardFFT() },
	)
	if err != nil {
		return nil, nil, err
	}

	return l, r, nil
}

// InverseStereo is the inverse of ForwardStereo.
//
// Deprecated: call ComplexVectorS32.InverseRealFFT on each channel.
func InverseStereo(left, right *ComplexVectorS32) (*VectorS32, *VectorS32, error) {
	if err := checkStereo(2*left.Len(), 2*right.Len()); err != nil {
		return nil, nil, fmt.Errorf("InverseStereo: %w", err)
	}

	var l, r *VectorS32

	err := runStereo("InverseStereo",
		func() { l = left.InverseRealFFT() },
		func() { r = right.InverseRealFFT() },
	)
	if err != nil {
		return nil, nil, err
	}

	return l, r, nil
}

func checkStereo(n, m int) error {
	if n != m {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, n, m)
	}

	return CheckFFTLength(n, true)
}

// runStereo runs both channel transforms concurrently. A panic in either
// one, such as a failed bfpdebug assertion, is returned as an error.
func runStereo(op string, left, right func()) error {
	var g errgroup.Group

	g.Go(func() error { return recoverChannel(op, left) })
	g.Go(func() error { return recoverChannel(op, right) })

	return g.Wait()
}

func recoverChannel(op string, fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if e, ok := r.(error); ok {
			err = fmt.Errorf("%s: %w", op, e)
		} else {
			err = fmt.Errorf("%s: panic: %v", op, r)
		}
	}()

	fn()

	return nil
}
