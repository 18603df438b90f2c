// Command gemmcheck drives the microkernel harness against the built-in
// kernels from the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/numkit/gemmcheck"
)

func main() {
	var (
		mr     = flag.Int("mr", 4, "tile rows (fixed) or exclusive row bound (sweep)")
		nr     = flag.Int("nr", 4, "tile columns (fixed) or exclusive column bound (sweep)")
		kc     = flag.Int("kc", 8, "reduction depth")
		simd   = flag.Int("simd", 1, "SIMD lane width used to pad B (0 = host width)")
		iters  = flag.Int("iterations", gemmcheck.DefaultIterations, "trials per shape")
		limit  = flag.Float64("limit", gemmcheck.DefaultErrorLimit, "maximum tolerable median relative error")
		seed   = flag.Uint64("seed", 0, "RNG seed (0 = wall clock)")
		sweep  = flag.Bool("sweep", false, "sweep every shape below the configured bounds")
		stop   = flag.Bool("stop-on-failure", false, "abort a sweep at the first failing shape")
		kernel = flag.String("kernel", "reference", "kernel under test: reference or 4x4 (4x4 is fixed-mode only, mr=nr=4)")
		out    = flag.String("out", "", "write a JSON sweep report to this path")
	)
	flag.Parse()

	if *simd == 0 {
		*simd = gemmcheck.DefaultSIMDWidth()
	}
	log.Printf("%s, testing with SIMD width %d", gemmcheck.CPUInfo(), *simd)

	tk := gemmcheck.NewTester().
		WithMr(*mr).
		WithNr(*nr).
		WithKc(*kc).
		WithSIMDWidth(*simd).
		WithIterations(*iters).
		WithErrorLimit(float32(*limit)).
		WithSeed(*seed).
		WithStopOnFailure(*stop)

	if *sweep {
		runSweep(tk, *kernel, *simd, *out)
		return
	}
	runFixed(tk, *kernel, *mr, *nr)
}

func runFixed(tk *gemmcheck.Tester, name string, mr, nr int) {
	kernel, err := fixedKernel(name, mr, nr)
	if err != nil {
		log.Fatal(err)
	}

	var rc gemmcheck.Collector
	if err := tk.TestFixed(&rc, kernel); err != nil {
		log.Fatal(err)
	}
	for _, msg := range rc.Failures() {
		log.Printf("FAIL: %s", msg)
	}
	if rc.Failed() {
		os.Exit(1)
	}
	log.Printf("PASS: kernel %s at Mr x Nr = %d x %d, Kc = %d", name, mr, nr, tk.Kc())
}

func runSweep(tk *gemmcheck.Tester, name string, simd int, out string) {
	kernel, err := rangedKernel(name, simd)
	if err != nil {
		log.Fatal(err)
	}

	rep, err := tk.RunSweep(kernel)
	if err != nil {
		log.Fatal(err)
	}
	rep.Kernel = name

	failed := rep.Failed()
	for _, p := range failed {
		log.Printf("FAIL: max median relative error %e at Mr x Nr = %d x %d, Kc = %d",
			p.MaxMedianError, p.Mr, p.Nr, p.Kc)
	}
	log.Printf("%d shapes tested, %d failed", len(rep.Points), len(failed))

	if out != "" {
		if err := rep.Save(out); err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
		log.Printf("report written to %s", out)
	}
	if len(failed) > 0 {
		os.Exit(1)
	}
}

func fixedKernel(name string, mr, nr int) (gemmcheck.FixedKernel, error) {
	switch name {
	case "reference":
		return gemmcheck.FixedReference(mr, nr), nil
	case "4x4":
		if mr != 4 || nr != 4 {
			return nil, fmt.Errorf("kernel 4x4 requires -mr 4 -nr 4, got %d x %d", mr, nr)
		}
		return gemmcheck.Fixed4x4(), nil
	}
	return nil, fmt.Errorf("unknown fixed kernel %q", name)
}

func rangedKernel(name string, simd int) (gemmcheck.RangedKernel, error) {
	switch name {
	case "reference":
		return gemmcheck.RangedReference(simd), nil
	}
	return nil, fmt.Errorf("unknown ranged kernel %q", name)
}
