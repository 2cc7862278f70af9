package fft

// Unpack moves the Nyquist bin out of Im x[0] into a new element x[M] and
// returns the extended slice. x must have capacity for one more element.
func Unpack(x []ComplexS32) []ComplexS32 {
	n := len(x)
	x = x[:n+1]
	x[n] = ComplexS32{Re: x[0].Im}
	x[0].Im = 0

	return x
}

// Pack is the inverse of Unpack. The imaginary parts of the DC and Nyquist
// bins are discarded.
func Pack(x []ComplexS32) []ComplexS32 {
	n := len(x) - 1
	x[0].Im = x[n].Re

	return x[:n]
}
