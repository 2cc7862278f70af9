package algobfp

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-bfp/internal/fft"
)

// MaxFFTLog2 is log2 of the largest supported transform length.
const MaxFFTLog2 = fft.MaxLog2

const (
	minComplexFFT = 4
	minRealFFT    = 8
)

// realAsComplex views an even-length []int32 as []ComplexS32 over the same
// memory, keeping the spare capacity.
func realAsComplex(data []int32) []ComplexS32 {
	if cap(data) < 2 {
		return nil
	}

	full := unsafe.Slice((*ComplexS32)(unsafe.Pointer(unsafe.SliceData(data))), cap(data)/2)

	return full[:len(data)/2]
}

// complexAsReal views a []ComplexS32 as []int32 over the same memory.
func complexAsReal(data []ComplexS32) []int32 {
	if cap(data) == 0 {
		return nil
	}

	full := unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(data))), 2*cap(data))

	return full[:2*len(data)]
}

// ForwardFFT computes the DFT of the real vector a in place and returns the
// packed spectrum over the same storage: bins 0..N/2-1, with the real
// Nyquist bin held in the imaginary part of bin 0. a is left empty.
//
// len(a.Data) must be a power of two between 8 and 2^MaxFFTLog2.
func (a *VectorS32) ForwardFFT() *ComplexVectorS32 {
	assertFFTLength("VectorS32.ForwardFFT", a.Len(), true)

	z := realAsComplex(a.Data)
	exp, hr := fft.Forward(z, a.Exp, a.HR)
	exp, hr = fft.MergeReal(z, exp, hr)

	a.Data = nil

	return &ComplexVectorS32{Data: z, Exp: exp, HR: hr}
}

// InverseRealFFT is the inverse of VectorS32.ForwardFFT. a must hold a
// packed spectrum; it is left empty and the real signal is returned over
// the same storage.
func (a *ComplexVectorS32) InverseRealFFT() *VectorS32 {
	assertFFTLength("ComplexVectorS32.InverseRealFFT", 2*a.Len(), true)

	exp, hr := fft.SplitReal(a.Data, a.Exp, a.HR)
	exp, hr = fft.Inverse(a.Data, exp, hr)

	x := complexAsReal(a.Data)
	a.Data = nil

	return &VectorS32{Data: x, Exp: exp, HR: hr}
}

// ForwardFFT computes the DFT of a in place. len(a.Data) must be a power
// of two between 4 and 2^MaxFFTLog2.
func (a *ComplexVectorS32) ForwardFFT() {
	assertFFTLength("ComplexVectorS32.ForwardFFT", a.Len(), false)

	a.Exp, a.HR = fft.Forward(a.Data, a.Exp, a.HR)
}

// InverseFFT computes the inverse DFT of a in place, including the 1/N
// factor.
func (a *ComplexVectorS32) InverseFFT() {
	assertFFTLength("ComplexVectorS32.InverseFFT", a.Len(), false)

	a.Exp, a.HR = fft.Inverse(a.Data, a.Exp, a.HR)
}

// Unpack turns a packed spectrum of N/2 bins into N/2+1 bins: the Nyquist
// value moves from the imaginary part of bin 0 to the real part of bin N/2,
// and both imaginary parts become zero. The slice must have capacity for
// the extra bin. Headroom is unchanged.
func (a *ComplexVectorS32) Unpack() {
	if cap(a.Data) <= len(a.Data) {
		panic(fmt.Errorf("%w: Unpack needs capacity %d, have %d", ErrCapacity, len(a.Data)+1, cap(a.Data)))
	}

	a.Data = fft.Unpack(a.Data)
}

// Pack is the inverse of Unpack. The imaginary parts of bins 0 and N/2,
// which are zero for a real signal, are dropped and the headroom is
// recomputed.
func (a *ComplexVectorS32) Pack() {
	if debugChecks && a.Len() < 2 {
		panic(fmt.Errorf("%w: Pack of %d bins", ErrInvalidLength, a.Len()))
	}

	a.Data = fft.Pack(a.Data)
	a.Headroom()
}
