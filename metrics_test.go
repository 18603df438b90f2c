package gemmcheck

import (
	"math"
	"testing"
)

func TestRelativeError(t *testing.T) {
	tests := []struct {
		name      string
		reference float32
		actual    float32
		expected  float32
	}{
		{name: "Identical_One", reference: 1.0, actual: 1.0, expected: 0},
		{name: "Identical_Negative", reference: -3.25, actual: -3.25, expected: 0},
		{name: "Identical_Large", reference: 1e30, actual: 1e30, expected: 0},
		{name: "Identical_MaxFloat", reference: math.MaxFloat32, actual: math.MaxFloat32, expected: 0},
		{name: "Ten_Percent", reference: 2.0, actual: 1.8, expected: 0.1},
		{name: "Double", reference: 1.0, actual: 2.0, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relativeError(tt.reference, tt.actual)
			diff := float32(math.Abs(float64(got - tt.expected)))
			if diff > 1e-6 {
				t.Errorf("relativeError(%g, %g) = %g, want %g", tt.reference, tt.actual, got, tt.expected)
			}
		})
	}
}

// float32EdgeCases holds the values that probe relativeError's special
// cases: signed zero, denormals, extremes, infinities, and NaN.
func float32EdgeCases() []float32 {
	return []float32{
		0.0,
		float32(math.Copysign(0, -1)),
		1.0,
		-1.0,
		math.SmallestNonzeroFloat32,
		-math.SmallestNonzeroFloat32,
		1e-40, // denormal, below the FLT_MIN floor
		-1e-40,
		math.MaxFloat32,
		-math.MaxFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		float32(math.NaN()),
	}
}

// An identical finite pair is always a zero error; an infinite reference
// matched by an infinite actual reads as NaN (Inf - Inf), which the verdict
// treats as a failure rather than a pass.
func TestRelativeErrorEdgeCases(t *testing.T) {
	for _, x := range float32EdgeCases() {
		got := relativeError(x, x)
		f := float64(x)
		switch {
		case math.IsNaN(f) || math.IsInf(f, 0):
			if !math.IsNaN(float64(got)) {
				t.Errorf("relativeError(%g, %g) = %g, want NaN", x, x, got)
			}
		default:
			if got != 0 {
				t.Errorf("relativeError(%g, %g) = %g, want 0", x, x, got)
			}
		}
	}
}

func TestRelativeErrorSignedZero(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	if got := relativeError(negZero, 0); got != 0 {
		t.Errorf("relativeError(-0, 0) = %g, want 0", got)
	}
	if got := relativeError(0, negZero); got != 0 {
		t.Errorf("relativeError(0, -0) = %g, want 0", got)
	}
}

// The denominator floor is the smallest normal float32, not the smallest
// denormal: a denormal reference against zero lands well under 1, where a
// denormal floor would report an error in the tens of thousands.
func TestRelativeErrorDenormalFloor(t *testing.T) {
	const denormal = float32(1e-40)
	got := relativeError(denormal, 0)
	if !(got > 0 && got < 1) {
		t.Errorf("relativeError(1e-40, 0) = %g, want a small positive error", got)
	}
}

// A zero reference must not blow the quotient up to infinity: the floored
// denominator turns a zero-vs-nonzero mismatch into a large finite error.
func TestRelativeErrorZeroReference(t *testing.T) {
	for _, actual := range []float32{1e-3, 1e-20, math.SmallestNonzeroFloat32} {
		got := relativeError(0, actual)
		if math.IsInf(float64(got), 0) || math.IsNaN(float64(got)) {
			t.Fatalf("relativeError(0, %g) = %g, want finite", actual, got)
		}
	}

	// A genuinely wrong value against a zero reference must still read as
	// a large error, not a pass.
	if got := relativeError(0, 1e-3); got < 1 {
		t.Errorf("relativeError(0, 1e-3) = %g, want a large finite error", got)
	}
}

func TestRelativeErrorNaN(t *testing.T) {
	nan := float32(math.NaN())
	if got := relativeError(1.0, nan); !math.IsNaN(float64(got)) {
		t.Errorf("relativeError(1, NaN) = %g, want NaN", got)
	}
	if got := relativeError(nan, 1.0); !math.IsNaN(float64(got)) {
		t.Errorf("relativeError(NaN, 1) = %g, want NaN", got)
	}
}

func TestMedianFloat32(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name     string
		history  []float32
		expected float32
	}{
		{name: "Single", history: []float32{7}, expected: 7},
		{name: "Odd", history: []float32{3, 1, 2}, expected: 2},
		// Even lengths take the lower of the two central candidates.
		{name: "Even_LowerMiddle", history: []float32{4, 1, 3, 2}, expected: 2},
		{name: "Even_Duplicates", history: []float32{100, 2, 5, 2}, expected: 2},
		{name: "NaN_Sorts_Last", history: []float32{1, nan, 3}, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := medianFloat32(tt.history); got != tt.expected {
				t.Errorf("median = %g, want %g", got, tt.expected)
			}
		})
	}

	t.Run("All_NaN", func(t *testing.T) {
		got := medianFloat32([]float32{nan, nan, nan})
		if !math.IsNaN(float64(got)) {
			t.Errorf("median of all-NaN history = %g, want NaN", got)
		}
	})
}

func TestWorstMedian(t *testing.T) {
	if got := worstMedian([]float32{1, 5, 3}); got != 5 {
		t.Errorf("worstMedian = %g, want 5", got)
	}
	if got := worstMedian([]float32{2}); got != 2 {
		t.Errorf("worstMedian = %g, want 2", got)
	}

	nan := float32(math.NaN())
	for _, medians := range [][]float32{{nan, 1}, {1, nan, 2}, {nan}} {
		if got := worstMedian(medians); !math.IsNaN(float64(got)) {
			t.Errorf("worstMedian(%v) = %g, want NaN", medians, got)
		}
	}
}

func TestErrorHistory(t *testing.T) {
	hist := newErrorHistory(2, 3)

	hist.record([]float32{1, 2}, []float32{1, 2}) // both exact
	hist.record([]float32{1, 2}, []float32{2, 2}) // element 0 off by 100%
	hist.record([]float32{1, 2}, []float32{1, 4}) // element 1 off by 100%

	medians := hist.medians()
	if len(medians) != 2 {
		t.Fatalf("got %d medians, want 2", len(medians))
	}
	// One bad trial out of three cannot move a median off zero.
	if medians[0] != 0 || medians[1] != 0 {
		t.Errorf("medians = %v, want [0 0]", medians)
	}
}
