// Package gemmcheck aligned buffer allocation for kernel panels
package gemmcheck

import (
	"fmt"
	"sync"
	"unsafe"
)

// AlignedFloat32 allocates n float32 values whose backing array starts on
// the given byte boundary. Kernels may issue full-width vector loads from
// the A and B panels, so the harness allocates them through this function.
// alignment must be a power of two and a multiple of 4.
func AlignedFloat32(n, alignment int) ([]float32, error) {
	if n <= 0 {
		return nil, NewMemoryError("AlignedFloat32",
			fmt.Sprintf("element count must be positive, got %d", n), nil)
	}
	if alignment < 4 || alignment&(alignment-1) != 0 {
		return nil, NewMemoryError("AlignedFloat32",
			fmt.Sprintf("alignment %d is not a power-of-two multiple of 4", alignment), nil)
	}

	// Over-allocate by one alignment unit and re-slice to the boundary.
	raw := make([]float32, n+alignment/4)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) % uintptr(alignment)); rem != 0 {
		// The base of a []float32 is always 4-aligned, so rem is a
		// multiple of 4 and the offset lands exactly on the boundary.
		off = (alignment - rem) / 4
	}
	return raw[off : off+n : off+n], nil
}

// IsAligned reports whether the slice's backing array starts on the given
// byte boundary. An empty slice has no address and reports false.
func IsAligned(s []float32, alignment int) bool {
	if len(s) == 0 || alignment <= 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(alignment) == 0
}

// bufferPool recycles aligned panels so a large sweep does not reallocate
// for every (mr, nr) point. Reused buffers keep their alignment because the
// pool only stores slices minted by AlignedFloat32.
type bufferPool struct {
	mu   sync.Mutex
	free [][]float32
}

// get returns an aligned slice of length n, reusing a pooled buffer when one
// is large enough.
func (p *bufferPool) get(n, alignment int) ([]float32, error) {
	p.mu.Lock()
	for i, buf := range p.free {
		if cap(buf) >= n && IsAligned(buf[:1], alignment) {
			p.free = append(p.free[:i], p.free[i+1:]...)
			p.mu.Unlock()
			return buf[:n], nil
		}
	}
	p.mu.Unlock()
	return AlignedFloat32(n, alignment)
}

// put returns a buffer to the pool for reuse.
func (p *bufferPool) put(buf []float32) {
	if len(buf) == 0 {
		return
	}
	p.mu.Lock()
	p.free = append(p.free, buf)
	p.mu.Unlock()
}
