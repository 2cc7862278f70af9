package fftypes

// PassStrategy controls how the FFT runs its first two butterfly passes.
type PassStrategy uint32

const (
	PassAuto    PassStrategy = iota // Pick from the detected CPU features
	PassGeneric                     // Twiddle multiply on every pass
	PassTrivial                     // Multiplication-free passes for twiddles 1 and -j
)

// String returns a human-readable name for the strategy.
func (s PassStrategy) String() string {
	switch s {
	case PassAuto:
		return "auto"
	case PassGeneric:
		return "generic"
	case PassTrivial:
		return "trivial"
	default:
		return "unknown"
	}
}

// SIMDLevel describes the best vector instruction set the CPU reports.
type SIMDLevel uint8

const (
	SIMDNone   SIMDLevel = iota // Pure Go implementation
	SIMDSSE2                    // SSE2 (x86_64 baseline)
	SIMDAVX2                    // AVX2
	SIMDAVX512                  // AVX-512
	SIMDNEON                    // ARM NEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}
