package gemmcheck

import (
	"testing"
)

func TestDefaultSIMDWidth(t *testing.T) {
	w := DefaultSIMDWidth()
	switch w {
	case 1, SSEVectorWidth, AVX2VectorWidth, AVX512VectorWidth:
	default:
		t.Errorf("DefaultSIMDWidth() = %d, not a known lane width", w)
	}

	if cpuFeatures.HasAVX512F && w != AVX512VectorWidth {
		t.Errorf("AVX512F host reports width %d, want %d", w, AVX512VectorWidth)
	}
}

func TestCPUInfo(t *testing.T) {
	if CPUInfo() == "" {
		t.Error("CPUInfo returned an empty string")
	}
}
