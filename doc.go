// Package gemmcheck is a statistical correctness harness for hand-optimized
// SGEMM microkernels.
//
// A microkernel computes one mr x nr output tile from packed panels of A and
// B: A holds kc blocks of mr contiguous values, B holds kc blocks of nr (or
// SIMD-padded) contiguous values, and C is written row-major through an
// explicit row stride. Kernels like these trade generality for throughput
// and are easy to get subtly wrong: off-by-one strides, a wrong accumulation
// order, or a partial tile left uninitialized.
//
// The harness exercises a kernel under many random inputs, computes a
// trusted naive product over the same packed layout, and fails when the
// worst per-element median relative error across trials exceeds a configured
// limit. The median filters the rare trials where floating-point
// cancellation inflates the error of either the kernel or the reference.
// Output buffers are seeded with NaN sentinels before every invocation, so
// any element the kernel fails to write is detected through the error
// metric rather than silently passing as leftover zeros.
//
// Two call conventions are supported: a fixed-tile kernel tested at exactly
// the configured (mr, nr, kc), and a ranged kernel swept across every shape
// below the configured bounds with B padded to the kernel's SIMD width.
package gemmcheck
