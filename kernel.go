// Package gemmcheck microkernel call conventions and built-in kernels
package gemmcheck

// FixedKernel is the fixed-tile SGEMM microkernel convention. The kernel
// multiplies packed panels a (kc blocks of mr values) and b (kc blocks of
// nr values) and writes exactly mr*nr floats into c at row stride ldc.
// update == 0 means overwrite; any other value means accumulate into the
// existing contents of c.
type FixedKernel func(kc, update int, a, b, c []float32, ldc int)

// RangedKernel is the shape-parameterized SGEMM microkernel convention.
// Semantics match FixedKernel generalized over (mr, nr), with b packed at
// the kernel's SIMD-padded stride: nr rounded up to the kernel's lane width.
type RangedKernel func(mr, nr, kc, update int, a, b, c []float32, ldc int)

// FixedReference returns a fixed-tile kernel that computes the product
// exactly the way the harness's reference evaluator does. It must pass the
// harness at (mr, nr) for any depth and seed, which makes it the baseline
// for harness self-tests and for differential runs against real kernels.
func FixedReference(mr, nr int) FixedKernel {
	return func(kc, update int, a, b, c []float32, ldc int) {
		writeTile(mr, nr, kc, nr, update, a, b, c, ldc)
	}
}

// RangedReference returns a ranged kernel whose B stride is nr padded up to
// simdWidth, matching a vector kernel that loads B in full lanes. Test it
// with a Tester configured to the same SIMD width.
func RangedReference(simdWidth int) RangedKernel {
	return func(mr, nr, kc, update int, a, b, c []float32, ldc int) {
		bStride := (nr + simdWidth - 1) / simdWidth * simdWidth
		writeTile(mr, nr, kc, bStride, update, a, b, c, ldc)
	}
}

// writeTile computes into a scratch accumulator and stores through ldc,
// honoring the update flag.
func writeTile(mr, nr, kc, bStride, update int, a, b, c []float32, ldc int) {
	acc := make([]float32, mr*nr)
	Reference{}.GEMMTile(mr, nr, kc, bStride, a, b, acc)
	for m := 0; m < mr; m++ {
		for n := 0; n < nr; n++ {
			if update == 0 {
				c[m*ldc+n] = acc[m*nr+n]
			} else {
				c[m*ldc+n] += acc[m*nr+n]
			}
		}
	}
}

// Fixed4x4 returns a hand-unrolled scalar 4x4 microkernel over the packed
// layout: sixteen register-resident accumulators, one pass over the k
// dimension. This is the shape of kernel the harness exists to validate,
// kept here as a worked example and as a target for the harness's own tests.
func Fixed4x4() FixedKernel {
	return func(kc, update int, a, b, c []float32, ldc int) {
		var (
			c00, c01, c02, c03 float32
			c10, c11, c12, c13 float32
			c20, c21, c22, c23 float32
			c30, c31, c32, c33 float32
		)
		for k := 0; k < kc; k++ {
			a0 := a[k*4+0]
			a1 := a[k*4+1]
			a2 := a[k*4+2]
			a3 := a[k*4+3]
			b0 := b[k*4+0]
			b1 := b[k*4+1]
			b2 := b[k*4+2]
			b3 := b[k*4+3]

			c00 += a0 * b0
			c01 += a0 * b1
			c02 += a0 * b2
			c03 += a0 * b3
			c10 += a1 * b0
			c11 += a1 * b1
			c12 += a1 * b2
			c13 += a1 * b3
			c20 += a2 * b0
			c21 += a2 * b1
			c22 += a2 * b2
			c23 += a2 * b3
			c30 += a3 * b0
			c31 += a3 * b1
			c32 += a3 * b2
			c33 += a3 * b3
		}

		if update == 0 {
			c[0*ldc+0] = c00
			c[0*ldc+1] = c01
			c[0*ldc+2] = c02
			c[0*ldc+3] = c03
			c[1*ldc+0] = c10
			c[1*ldc+1] = c11
			c[1*ldc+2] = c12
			c[1*ldc+3] = c13
			c[2*ldc+0] = c20
			c[2*ldc+1] = c21
			c[2*ldc+2] = c22
			c[2*ldc+3] = c23
			c[3*ldc+0] = c30
			c[3*ldc+1] = c31
			c[3*ldc+2] = c32
			c[3*ldc+3] = c33
		} else {
			c[0*ldc+0] += c00
			c[0*ldc+1] += c01
			c[0*ldc+2] += c02
			c[0*ldc+3] += c03
			c[1*ldc+0] += c10
			c[1*ldc+1] += c11
			c[1*ldc+2] += c12
			c[1*ldc+3] += c13
			c[2*ldc+0] += c20
			c[2*ldc+1] += c21
			c[2*ldc+2] += c22
			c[2*ldc+3] += c23
			c[3*ldc+0] += c30
			c[3*ldc+1] += c31
			c[3*ldc+2] += c32
			c[3*ldc+3] += c33
		}
	}
}
