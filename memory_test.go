package gemmcheck

import (
	"testing"
)

func TestAlignedFloat32(t *testing.T) {
	for _, alignment := range []int{8, 16, 32, 64} {
		for _, n := range []int{1, 3, 7, 64, 1000} {
			buf, err := AlignedFloat32(n, alignment)
			if err != nil {
				t.Fatalf("AlignedFloat32(%d, %d) failed: %v", n, alignment, err)
			}
			if len(buf) != n {
				t.Fatalf("AlignedFloat32(%d, %d) returned length %d", n, alignment, len(buf))
			}
			if !IsAligned(buf, alignment) {
				t.Errorf("AlignedFloat32(%d, %d) not aligned", n, alignment)
			}
			// The slice must be writable end to end.
			buf[0] = 1
			buf[n-1] = 2
		}
	}
}

func TestAlignedFloat32Invalid(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		alignment int
	}{
		{name: "Zero_Count", n: 0, alignment: 32},
		{name: "Negative_Count", n: -4, alignment: 32},
		{name: "Alignment_Not_Power_Of_Two", n: 16, alignment: 24},
		{name: "Alignment_Too_Small", n: 16, alignment: 2},
		{name: "Alignment_Zero", n: 16, alignment: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AlignedFloat32(tt.n, tt.alignment)
			if err == nil {
				t.Fatalf("AlignedFloat32(%d, %d) succeeded, want error", tt.n, tt.alignment)
			}
			if !IsMemoryError(err) {
				t.Errorf("AlignedFloat32(%d, %d) returned %T, want memory error", tt.n, tt.alignment, err)
			}
		})
	}
}

func TestIsAlignedEmpty(t *testing.T) {
	if IsAligned(nil, 32) {
		t.Error("nil slice reported as aligned")
	}
	if IsAligned([]float32{}, 32) {
		t.Error("empty slice reported as aligned")
	}
}

func TestBufferPoolReuse(t *testing.T) {
	var pool bufferPool

	first, err := pool.get(64, BufferAlignment)
	if err != nil {
		t.Fatal(err)
	}
	first[0] = 42
	pool.put(first)

	// A smaller request must reuse the pooled buffer.
	second, err := pool.get(32, BufferAlignment)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 32 {
		t.Fatalf("got length %d, want 32", len(second))
	}
	if !IsAligned(second, BufferAlignment) {
		t.Error("reused buffer lost its alignment")
	}
	if &second[0] != &first[0] {
		t.Error("pool allocated a fresh buffer instead of reusing")
	}

	// A larger request allocates fresh and stays aligned.
	third, err := pool.get(128, BufferAlignment)
	if err != nil {
		t.Fatal(err)
	}
	if len(third) != 128 || !IsAligned(third, BufferAlignment) {
		t.Errorf("fresh allocation: length %d, aligned %v", len(third), IsAligned(third, BufferAlignment))
	}
}
