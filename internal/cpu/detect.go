package cpu

import "golang.org/x/sys/cpu"

// detectFeaturesImpl reads CPUID / HWCAP flags through golang.org/x/sys/cpu.
// Fields for foreign architectures are always false there.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:   cpu.X86.HasSSE2,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
		HasNEON:   cpu.ARM64.HasASIMD,
	}
}
