// Package gemmcheck error metric and robust per-element reduction
package gemmcheck

import (
	"math"
	"sort"
)

// minNormalFloat32 is the smallest normal positive float32 (C's FLT_MIN).
// It floors the denominator of relativeError so a zero or near-zero
// reference cannot blow the quotient up to infinity. A kernel producing a
// non-negligible value where zero is expected still reports a large, finite
// error, which is the intended signal.
const minNormalFloat32 = float32(0x1p-126)

// relativeError returns |reference - actual| normalized by the magnitude of
// the reference, floored at minNormalFloat32. NaN in either argument
// propagates to a NaN result, as does an infinite reference matched by an
// infinite actual (Inf - Inf); both read as failures at the verdict.
func relativeError(reference, actual float32) float32 {
	num := float32(math.Abs(float64(reference - actual)))
	den := float32(math.Abs(float64(reference)))
	if den < minNormalFloat32 {
		den = minNormalFloat32
	}
	return num / den
}

// errorHistory retains one relative error per trial for every output
// element. Histories are append-only during the trial loop and reduced
// exactly once at the end.
type errorHistory struct {
	perElement [][]float32
}

func newErrorHistory(elements, trials int) *errorHistory {
	h := &errorHistory{perElement: make([][]float32, elements)}
	for i := range h.perElement {
		h.perElement[i] = make([]float32, 0, trials)
	}
	return h
}

// record appends the per-element relative error of one trial.
// reference and actual must both have one value per element.
func (h *errorHistory) record(reference, actual []float32) {
	for i := range h.perElement {
		h.perElement[i] = append(h.perElement[i], relativeError(reference[i], actual[i]))
	}
}

// medians reduces every element's history to its median. The histories are
// sorted in place; callers must not record after reducing.
func (h *errorHistory) medians() []float32 {
	out := make([]float32, len(h.perElement))
	for i, errs := range h.perElement {
		out[i] = medianFloat32(errs)
	}
	return out
}

// medianFloat32 selects the value occupying the middle position of s once
// sorted. Even lengths take the lower of the two central candidates, a
// reproducible tie-break rather than an average. NaN entries sort after
// every finite value, so an element whose trials were never written (all
// NaN) still reduces to NaN.
func medianFloat32(s []float32) float32 {
	sort.Slice(s, func(i, j int) bool {
		a, b := s[i], s[j]
		if math.IsNaN(float64(b)) {
			return !math.IsNaN(float64(a))
		}
		return a < b
	})
	return s[(len(s)-1)/2]
}

// worstMedian is the verdict statistic: the maximum across per-element
// medians. A NaN median dominates, so the caller's !(worst < limit) check
// fails for under-written outputs.
func worstMedian(medians []float32) float32 {
	worst := medians[0]
	for _, m := range medians[1:] {
		if math.IsNaN(float64(m)) {
			return m
		}
		if m > worst {
			worst = m
		}
	}
	return worst
}
