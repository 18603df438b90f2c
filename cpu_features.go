package gemmcheck

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction set extensions that matter for float32
// microkernels on the host.
type CPUFeatures struct {
	HasSSE4    bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool
	HasNEON    bool
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX2:    cpu.X86.HasAVX2,
		HasFMA:     cpu.X86.HasFMA,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasNEON:    cpu.ARM64.HasASIMD,
	}
}

// DefaultSIMDWidth returns the float32 lane count of the widest vector unit
// on the host. A Tester defaults to width 1; kernels that pack B for the
// host's vector unit should be tested against this width so the padded
// stride matches what the kernel loads.
func DefaultSIMDWidth() int {
	switch {
	case cpuFeatures.HasAVX512F:
		return AVX512VectorWidth
	case cpuFeatures.HasAVX2 && cpuFeatures.HasFMA:
		return AVX2VectorWidth
	case cpuFeatures.HasSSE4:
		return SSEVectorWidth
	case cpuFeatures.HasNEON:
		return NEONVectorWidth
	}
	return 1
}

// CPUInfo returns a string describing available CPU features
func CPUInfo() string {
	features := []string{}

	if cpuFeatures.HasSSE4 {
		features = append(features, "SSE4")
	}
	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasFMA {
		features = append(features, "FMA")
	}
	if cpuFeatures.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if cpuFeatures.HasNEON {
		features = append(features, "NEON")
	}

	if len(features) == 0 {
		return "No SIMD extensions detected"
	}
	return "CPU features: " + strings.Join(features, ", ")
}
