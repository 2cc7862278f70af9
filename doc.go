// Package algobfp implements block floating-point (BFP) vector arithmetic
// and FFTs for fixed-point signal processing.
//
// A BFP vector is a slice of 16- or 32-bit integer mantissas that share one
// binary exponent: element i stands for Data[i] * 2^Exp. Each vector also
// records its headroom HR, the number of redundant leading sign bits of its
// largest-magnitude mantissa. Operations read exponents and headrooms to
// pick output exponents and pre-shifts, so results neither overflow nor
// throw away precision, and every operation leaves HR exact for the data it
// wrote.
//
// Operations write into the receiver:
//
//	a.Add(b, c) // a = b + c
//
// Any of a, b and c may share storage. The library never allocates mantissa
// storage; vectors borrow the caller's slices.
//
// Forward real FFTs convert a VectorS32 into a ComplexVectorS32 over the
// same storage and leave the source empty. The spectrum is packed: the
// Nyquist bin is held in the imaginary part of bin 0 until Unpack moves it.
//
// Build tags select policy at compile time:
//
//	bfp_saturate  allow results to saturate at the extreme values in
//	              exchange for one more bit of precision
//	bfpdebug      check argument preconditions and panic on violations
package algobfp
