// Package perf times BP-PQ and BP-CRT against a Fermat-factorization
// baseline across a range of bit-reveal rates, mirroring
// performance_test.py's run_branch_prune/run_crt_pruning/
// run_fermat_factorization/compare_algorithms, and renders the comparison
// as an HTML line chart via go-echarts.
package perf

import (
	"math/big"
	"time"

	"github.com/corvidlabs/bpprune/bpcrt"
	"github.com/corvidlabs/bpprune/bppq"
	"github.com/corvidlabs/bpprune/rsasynth"
)

// Result is one timed run at a given reveal rate.
type Result struct {
	RevealRate float64
	Elapsed    time.Duration
	Found      bool
}

// RunBPPQ generates a fresh erasure example at the given bit size and
// reveal rate and times BranchAndPrune against it, grounded on
// performance_test.py's run_branch_prune.
func RunBPPQ(revealRate float64, bitSize int) (Result, error) {
	key, knownP, knownQ, err := rsasynth.GenerateFactorExample(bitSize, revealRate)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	_, err = bppq.BranchAndPrune(key.N, knownP, knownQ)
	elapsed := time.Since(start)

	found := err == nil
	if err != nil && err != bppq.ErrNoSolution {
		return Result{}, err
	}

	return Result{RevealRate: revealRate, Elapsed: elapsed, Found: found}, nil
}

// RunBPCRT generates a fresh CRT erasure example and times
// BranchAndPruneCRT against it, grounded on performance_test.py's
// run_crt_pruning.
func RunBPCRT(revealRate float64, bitSize int, e *big.Int) (Result, error) {
	key, knownDp, knownDq, err := rsasynth.GenerateCRTExample(bitSize, e, revealRate)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	_, err = bpcrt.BranchAndPruneCRT(key.N, key.E, knownDp, knownDq)
	elapsed := time.Since(start)

	found := err == nil
	if err != nil && err != bpcrt.ErrNoSolution {
		return Result{}, err
	}

	return Result{RevealRate: revealRate, Elapsed: elapsed, Found: found}, nil
}

// RunFermat generates the same kind of example as RunBPPQ (the reveal rate
// only affects which example is drawn, not Fermat's own inputs — Fermat
// never looks at the erased bits, matching run_fermat_factorization's
// signature in the original) and times FermatFactorize against N.
func RunFermat(revealRate float64, bitSize int) (Result, error) {
	key, _, _, err := rsasynth.GenerateFactorExample(bitSize, revealRate)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	_, _, ok := FermatFactorize(key.N)
	elapsed := time.Since(start)

	return Result{RevealRate: revealRate, Elapsed: elapsed, Found: ok}, nil
}

// Comparison holds the three algorithms' timed results across the same set
// of reveal rates, ready for RenderComparisonChart.
type Comparison struct {
	RevealRates []float64
	BPPQ        []Result
	BPCRT       []Result
	Fermat      []Result
}

// CompareAcrossRevealRates runs all three algorithms at each reveal rate in
// revealRates, grounded on performance_test.py's compare_algorithms.
func CompareAcrossRevealRates(bitSize int, e *big.Int, revealRates []float64) (Comparison, error) {
	cmp := Comparison{RevealRates: revealRates}

	for _, rate := range revealRates {
		r1, err := RunBPPQ(rate, bitSize)
		if err != nil {
			return Comparison{}, err
		}
		cmp.BPPQ = append(cmp.BPPQ, r1)

		r2, err := RunBPCRT(rate, bitSize, e)
		if err != nil {
			return Comparison{}, err
		}
		cmp.BPCRT = append(cmp.BPCRT, r2)

		r3, err := RunFermat(rate, bitSize)
		if err != nil {
			return Comparison{}, err
		}
		cmp.Fermat = append(cmp.Fermat, r3)
	}

	return cmp, nil
}
