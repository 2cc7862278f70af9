package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-bfp/internal/fftypes"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	f := DetectFeatures()
	assert.Equal(t, runtime.GOARCH, f.Architecture)

	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		assert.False(t, f.HasAVX2, "AVX2 reported on %s", runtime.GOARCH)
	}

	if runtime.GOARCH != "arm64" {
		assert.False(t, f.HasNEON, "NEON reported on %s", runtime.GOARCH)
	}
}

func TestSetForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{ForceGeneric: true, Architecture: "test"})
	t.Cleanup(ResetDetection)

	f := DetectFeatures()
	assert.True(t, f.ForceGeneric)
	assert.Equal(t, "test", f.Architecture)
	assert.Equal(t, fftypes.PassGeneric, f.PassStrategy())

	ResetDetection()
	assert.Equal(t, runtime.GOARCH, DetectFeatures().Architecture)
}

func TestSIMDLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    Features
		want fftypes.SIMDLevel
	}{
		{"none", Features{}, fftypes.SIMDNone},
		{"sse2", Features{HasSSE2: true}, fftypes.SIMDSSE2},
		{"avx2", Features{HasSSE2: true, HasAVX2: true}, fftypes.SIMDAVX2},
		{"avx512", Features{HasSSE2: true, HasAVX2: true, HasAVX512: true}, fftypes.SIMDAVX512},
		{"neon", Features{HasNEON: true}, fftypes.SIMDNEON},
		{"forced", Features{HasAVX2: true, ForceGeneric: true}, fftypes.SIMDNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.f.SIMDLevel())
		})
	}
}

func TestPassStrategy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fftypes.PassTrivial, Features{}.PassStrategy())
	assert.Equal(t, fftypes.PassGeneric, Features{ForceGeneric: true}.PassStrategy())

	for _, f := range []Features{
		{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
		{HasSSE2: true, HasAVX2: true, HasAVX512: true, Architecture: "amd64"},
		{HasNEON: true, Architecture: "arm64"},
	} {
		assert.Equal(t, fftypes.PassTrivial, f.PassStrategy(), "%+v", f)
	}

	assert.Equal(t, fftypes.PassGeneric,
		Features{HasAVX2: true, HasNEON: true, ForceGeneric: true}.PassStrategy())
}
