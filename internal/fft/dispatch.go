package fft

import (
	"github.com/cwbudde/algo-bfp/internal/cpu"
	"github.com/cwbudde/algo-bfp/internal/fftypes"
)

// passFunc runs one butterfly pass over x, which holds exp and hr on entry,
// and returns the exponent and headroom of the output.
type passFunc func(x []ComplexS32, exp, hr int, inverse bool) (int, int)

// Passes holds the implementations chosen for the leading passes. A nil
// entry means the generic twiddle-multiply pass is used.
type Passes struct {
	Strategy fftypes.PassStrategy
	First    passFunc
	Second   passFunc
}

// SelectPasses returns the best pass implementations for the features.
func SelectPasses(features cpu.Features) Passes {
	return SelectPassesWithStrategy(features, fftypes.PassAuto)
}

// SelectPassesWithStrategy returns pass implementations for an explicit
// strategy. PassAuto defers to the features.
func SelectPassesWithStrategy(features cpu.Features, strategy fftypes.PassStrategy) Passes {
	if strategy == fftypes.PassAuto {
		strategy = features.PassStrategy()
	}

	switch strategy {
	case fftypes.PassTrivial:
		return Passes{
			Strategy: fftypes.PassTrivial,
			First:    firstPassTrivial,
			Second:   secondPassTrivial,
		}
	default:
		return Passes{Strategy: fftypes.PassGeneric}
	}
}

// defaultPasses is resolved per call so that cpu.SetForcedFeatures takes
// effect immediately.
func defaultPasses() Passes {
	return SelectPasses(cpu.DetectFeatures())
}
