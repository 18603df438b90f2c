package gemmcheck_test

import (
	"fmt"
	"log"

	"github.com/numkit/gemmcheck"
)

func ExampleTester_TestFixed() {
	tk := gemmcheck.NewTester().
		WithMr(4).WithNr(4).WithKc(8).
		WithIterations(25).
		WithSeed(1)

	var rc gemmcheck.Collector
	if err := tk.TestFixed(&rc, gemmcheck.Fixed4x4()); err != nil {
		log.Fatal(err)
	}
	fmt.Println(rc.Failed())
	// Output: false
}

func ExampleTester_RunSweep() {
	tk := gemmcheck.NewTester().
		WithMr(3).WithNr(3).WithKc(4).
		WithSIMDWidth(2).
		WithIterations(10).
		WithSeed(1)

	rep, err := tk.RunSweep(gemmcheck.RangedReference(2))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(rep.Points), len(rep.Failed()))
	// Output: 4 0
}
