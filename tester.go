// Package gemmcheck tester configuration and trial engine
package gemmcheck

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Reporter receives assertion failures. *testing.T satisfies it, so the
// harness plugs directly into go test; Collector satisfies it for callers
// that want to inspect failures programmatically.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Tester drives randomized trials of an SGEMM microkernel against the naive
// reference and applies a median-of-trials verdict per output element.
// Configure with the fluent With* setters, then call TestFixed or TestSweep.
//
// The configured (mr, nr) means two different things by convention:
// TestFixed tests exactly that tile shape, while TestSweep treats it as the
// exclusive upper bound of a shape sweep.
type Tester struct {
	mr         int
	nr         int
	kc         int
	simdWidth  int
	iterations int
	errorLimit float32
	seed       uint64
	stopOnFail bool
}

// NewTester returns a Tester with the defaults: 1x1 tile, depth 1, scalar
// SIMD width, 1000 iterations, error limit 1e-5, and a wall-clock seed.
func NewTester() *Tester {
	return &Tester{
		mr:         1,
		nr:         1,
		kc:         1,
		simdWidth:  1,
		iterations: DefaultIterations,
		errorLimit: DefaultErrorLimit,
	}
}

// WithMr sets the tile row count (TestFixed) or the exclusive row sweep
// bound (TestSweep).
func (tk *Tester) WithMr(mr int) *Tester {
	tk.mr = mr
	return tk
}

// Mr returns the configured tile row count.
func (tk *Tester) Mr() int {
	return tk.mr
}

// WithNr sets the tile column count (TestFixed) or the exclusive column
// sweep bound (TestSweep).
func (tk *Tester) WithNr(nr int) *Tester {
	tk.nr = nr
	return tk
}

// Nr returns the configured tile column count.
func (tk *Tester) Nr() int {
	return tk.nr
}

// WithKc sets the reduction depth.
func (tk *Tester) WithKc(kc int) *Tester {
	tk.kc = kc
	return tk
}

// Kc returns the configured reduction depth.
func (tk *Tester) Kc() int {
	return tk.kc
}

// WithSIMDWidth sets the vector lane width used to pad B's column stride.
// It must match the lane width of the kernel under test.
func (tk *Tester) WithSIMDWidth(w int) *Tester {
	tk.simdWidth = w
	return tk
}

// SIMDWidth returns the configured vector lane width.
func (tk *Tester) SIMDWidth() int {
	return tk.simdWidth
}

// WithIterations sets the trial count per tile shape.
func (tk *Tester) WithIterations(n int) *Tester {
	tk.iterations = n
	return tk
}

// Iterations returns the configured trial count.
func (tk *Tester) Iterations() int {
	return tk.iterations
}

// WithErrorLimit sets the maximum tolerable median relative error.
func (tk *Tester) WithErrorLimit(limit float32) *Tester {
	tk.errorLimit = limit
	return tk
}

// ErrorLimit returns the configured error limit.
func (tk *Tester) ErrorLimit() float32 {
	return tk.errorLimit
}

// WithSeed sets the RNG seed for the trial stimulus. Zero (the default)
// derives a seed from the wall clock at test start, so runs are not
// reproducible; set an explicit seed for regression testing.
func (tk *Tester) WithSeed(seed uint64) *Tester {
	tk.seed = seed
	return tk
}

// Seed returns the configured seed, zero meaning wall-clock.
func (tk *Tester) Seed() uint64 {
	return tk.seed
}

// WithStopOnFailure controls whether a sweep aborts at the first failing
// shape. The default is false: every point is evaluated and reported
// independently.
func (tk *Tester) WithStopOnFailure(stop bool) *Tester {
	tk.stopOnFail = stop
	return tk
}

// StopOnFailure returns whether a sweep aborts at the first failure.
func (tk *Tester) StopOnFailure() bool {
	return tk.stopOnFail
}

// NrStride is nr rounded up to the next multiple of the SIMD width: the
// padded column count the ranged kernel convention requires for B.
func (tk *Tester) NrStride(nr int) int {
	return (nr + tk.simdWidth - 1) / tk.simdWidth * tk.simdWidth
}

// validate rejects degenerate configuration eagerly. Silent corruption from
// a zero-sized tile or zero trials is worse than a loud precondition check.
func (tk *Tester) validate(op string) error {
	switch {
	case tk.mr < 1:
		return NewConfigError(op, fmt.Sprintf("mr must be positive, got %d", tk.mr))
	case tk.nr < 1:
		return NewConfigError(op, fmt.Sprintf("nr must be positive, got %d", tk.nr))
	case tk.kc < 1:
		return NewConfigError(op, fmt.Sprintf("kc must be positive, got %d", tk.kc))
	case tk.simdWidth < 1:
		return NewConfigError(op, fmt.Sprintf("simd width must be positive, got %d", tk.simdWidth))
	case tk.iterations < 1:
		return NewConfigError(op, fmt.Sprintf("iterations must be positive, got %d", tk.iterations))
	case !(tk.errorLimit > 0):
		return NewConfigError(op, fmt.Sprintf("error limit must be positive, got %g", tk.errorLimit))
	}
	return nil
}

// resolveSeed turns the configured seed into the effective one, drawing
// from the wall clock when unset.
func (tk *Tester) resolveSeed() uint64 {
	if tk.seed != 0 {
		return tk.seed
	}
	return timeSeed()
}

// RunFixed exercises a fixed-tile kernel at exactly the configured shape and
// returns the shape's result without judging it. Most callers want
// TestFixed; RunFixed is for drivers that render their own verdicts.
func (tk *Tester) RunFixed(kernel FixedKernel) (PointResult, error) {
	if err := tk.validate("RunFixed"); err != nil {
		return PointResult{}, err
	}
	rng := newTrialRNG(tk.resolveSeed())
	var pool bufferPool
	return tk.runPoint(rng, &pool, tk.mr, tk.nr, tk.nr, func(a, b, c []float32) {
		kernel(tk.kc, 0, a, b, c, tk.nr)
	})
}

// TestFixed runs the configured number of trials of a fixed-tile kernel and
// reports through r when the worst per-element median relative error is not
// below the configured limit. The returned error covers configuration and
// allocation problems only, never the verdict.
func (tk *Tester) TestFixed(r Reporter, kernel FixedKernel) error {
	res, err := tk.RunFixed(kernel)
	if err != nil {
		return err
	}
	if !res.Pass {
		r.Errorf("max median relative error %e not below limit %e: Mr x Nr = %d x %d, Kc = %d",
			res.MaxMedianError, tk.errorLimit, res.Mr, res.Nr, res.Kc)
	}
	return nil
}

// RunSweep exercises a ranged kernel at every shape (mr, nr) with
// 1 <= mr < Mr() and 1 <= nr < Nr(), collecting one PointResult per shape.
// B is allocated and the reference computed at the SIMD-padded stride
// NrStride(nr). With StopOnFailure the sweep returns after the first
// failing point, keeping the results gathered so far.
func (tk *Tester) RunSweep(kernel RangedKernel) (*SweepReport, error) {
	if err := tk.validate("RunSweep"); err != nil {
		return nil, err
	}
	seed := tk.resolveSeed()
	rng := newTrialRNG(seed)
	var pool bufferPool

	rep := &SweepReport{
		MrBound:    tk.mr,
		NrBound:    tk.nr,
		Kc:         tk.kc,
		SIMDWidth:  tk.simdWidth,
		Iterations: tk.iterations,
		ErrorLimit: tk.errorLimit,
		Seed:       seed,
		Started:    time.Now(),
	}
	for mr := 1; mr < tk.mr; mr++ {
		for nr := 1; nr < tk.nr; nr++ {
			res, err := tk.runPoint(rng, &pool, mr, nr, tk.NrStride(nr), func(a, b, c []float32) {
				kernel(mr, nr, tk.kc, 0, a, b, c, nr)
			})
			if err != nil {
				return nil, err
			}
			rep.Points = append(rep.Points, res)
			if !res.Pass && tk.stopOnFail {
				return rep, nil
			}
		}
	}
	return rep, nil
}

// TestSweep runs RunSweep and reports every failing point through r, one
// diagnostic per (mr, nr) pair.
func (tk *Tester) TestSweep(r Reporter, kernel RangedKernel) error {
	rep, err := tk.RunSweep(kernel)
	if err != nil {
		return err
	}
	for _, p := range rep.Points {
		if !p.Pass {
			r.Errorf("max median relative error %e not below limit %e: Mr x Nr = %d x %d, Kc = %d",
				p.MaxMedianError, tk.errorLimit, p.Mr, p.Nr, p.Kc)
		}
	}
	return nil
}

// runPoint owns the full trial loop for one tile shape: stimulus, NaN
// sentinels, kernel invocation, reference accumulation, and the one-shot
// median reduction. bStride is the physical column count of B, already
// padded by the caller when the convention requires it.
func (tk *Tester) runPoint(rng *rand.Rand, pool *bufferPool, mr, nr, bStride int, invoke func(a, b, c []float32)) (PointResult, error) {
	a, err := pool.get(mr*tk.kc, BufferAlignment)
	if err != nil {
		return PointResult{}, err
	}
	defer pool.put(a)
	b, err := pool.get(bStride*tk.kc, BufferAlignment)
	if err != nil {
		return PointResult{}, err
	}
	defer pool.put(b)

	c := make([]float32, mr*nr)
	cReference := make([]float32, mr*nr)
	hist := newErrorHistory(mr*nr, tk.iterations)
	ref := Reference{}

	for iter := 0; iter < tk.iterations; iter++ {
		fillUniform(rng, a)
		fillUniform(rng, b)
		fillNaN(c)
		clear(cReference)

		invoke(a, b, c)
		ref.GEMMTile(mr, nr, tk.kc, bStride, a, b, cReference)
		hist.record(cReference, c)
	}

	worst := worstMedian(hist.medians())
	return PointResult{
		Mr:             mr,
		Nr:             nr,
		Kc:             tk.kc,
		MaxMedianError: ErrorStat(worst),
		// NaN compares false, so an unwritten element cannot pass.
		Pass: worst < tk.errorLimit,
	}, nil
}
