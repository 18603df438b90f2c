// Package gemmcheck configuration constants
package gemmcheck

// Buffer alignment
const (
	// BufferAlignment is the byte boundary guaranteed for the A and B
	// panels handed to a kernel. 32 bytes covers a full AVX or paired
	// NEON vector load; a kernel issuing wider loads must also be given
	// a simdWidth that pads B accordingly.
	BufferAlignment = 32
)

// SIMD vector widths in float32 lanes
const (
	// SSE vector width in float32 elements
	SSEVectorWidth = 4

	// AVX2 vector width in float32 elements
	AVX2VectorWidth = 8

	// AVX512 vector width in float32 elements
	AVX512VectorWidth = 16

	// NEON vector width in float32 elements
	NEONVectorWidth = 4
)

// Harness defaults
const (
	// DefaultIterations is the trial count per tile shape
	DefaultIterations = 1000

	// DefaultErrorLimit is the maximum tolerable median relative error
	DefaultErrorLimit = 1.0e-5
)
