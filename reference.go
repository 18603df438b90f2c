// Package gemmcheck reference implementations for verification
package gemmcheck

// Reference contains the trusted naive implementation the harness judges
// kernels against. It is deliberately independent of any kernel code: a
// plain triple-nested accumulation over the packed panel layout.
type Reference struct{}

// GEMMTile accumulates the mr x nr product of packed panels into c.
//
// A is k-major: kc blocks of mr contiguous values, so element (m, k) lives
// at a[k*mr+m]. B is k-major with an explicit stride: kc blocks of bStride
// contiguous values, of which the first nr are consumed per block. C is
// row-major mr x nr and is accumulated into, not overwritten. The packed
// layout is the contract under test, which is why the loop indexes it
// directly instead of a textbook row-major matrix.
func (Reference) GEMMTile(mr, nr, kc, bStride int, a, b, c []float32) {
	for k := 0; k < kc; k++ {
		for m := 0; m < mr; m++ {
			for n := 0; n < nr; n++ {
				c[m*nr+n] += a[k*mr+m] * b[k*bStride+n]
			}
		}
	}
}
