// Package cpu reports the CPU features relevant to FFT pass dispatch.
package cpu

import (
	"os"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-bfp/internal/fftypes"
)

// ForceGenericEnv names the environment variable that forces the generic
// FFT passes when set to "1".
const ForceGenericEnv = "ALGOBFP_FORCE_GENERIC"

// Features describes the CPU capabilities seen by the library. The SIMD
// flags are reported by SIMDLevel and the benchmark banner; every pass is
// pure Go, so only ForceGeneric changes dispatch.
type Features struct {
	HasSSE2   bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric disables every specialised code path.
	ForceGeneric bool

	Architecture string
}

// SIMDLevel returns the best instruction set level in f.
func (f Features) SIMDLevel() fftypes.SIMDLevel {
	switch {
	case f.ForceGeneric:
		return fftypes.SIMDNone
	case f.HasAVX512:
		return fftypes.SIMDAVX512
	case f.HasAVX2:
		return fftypes.SIMDAVX2
	case f.HasSSE2:
		return fftypes.SIMDSSE2
	case f.HasNEON:
		return fftypes.SIMDNEON
	default:
		return fftypes.SIMDNone
	}
}

// PassStrategy resolves the FFT pass strategy for f. The trivial passes
// need no multiplier, so they win on every architecture; the SIMD flags
// are not consulted.
func (f Features) PassStrategy() fftypes.PassStrategy {
	if f.ForceGeneric {
		return fftypes.PassGeneric
	}

	return fftypes.PassTrivial
}

var (
	detectOnce sync.Once
	detected   Features

	mu     sync.RWMutex
	forced *Features
)

// DetectFeatures returns the process-wide features. Detection runs once;
// SetForcedFeatures overrides the result until ResetDetection is called.
func DetectFeatures() Features {
	mu.RLock()
	f := forced
	mu.RUnlock()

	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
		detected.Architecture = runtime.GOARCH
		detected.ForceGeneric = os.Getenv(ForceGenericEnv) == "1"
	})

	return detected
}

// SetForcedFeatures overrides detection. Intended for tests and benchmarks.
func SetForcedFeatures(f Features) {
	mu.Lock()
	forced = &f
	mu.Unlock()
}

// ResetDetection drops any override set by SetForcedFeatures.
func ResetDetection() {
	mu.Lock()
	forced = nil
	mu.Unlock()
}
