// Command bpprune reproduces main.py's CLI: by default it runs the
// textbook BP-PQ and BP-CRT examples, then one randomly generated example
// of each at the requested reveal rate and bit size; with --test it runs
// the reveal-rate comparison harness instead and writes an HTML chart.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/corvidlabs/bpprune/bitvec"
	"github.com/corvidlabs/bpprune/bpcrt"
	"github.com/corvidlabs/bpprune/bppq"
	"github.com/corvidlabs/bpprune/internal/tracelog"
	"github.com/corvidlabs/bpprune/perf"
	"github.com/corvidlabs/bpprune/rsasynth"
)

func main() {
	var (
		test       = pflag.Bool("test", false, "Run the reveal-rate performance comparison instead of the textbook examples.")
		revealRate = pflag.Float64("revealrate", 0.5, "Bit reveal rate for generated examples.")
		bitSize    = pflag.IntP("bitsize", "b", 10, "Bit size for generated RSA primes.")
		eFlag      = pflag.Int64("e", 17, "Public exponent for RSA.")
		printTree  = pflag.Bool("print_tree", false, "Trace each search engine's node expansions.")
		verbose    = pflag.CountP("verbose", "v", "Increase log verbosity (-v, -vv).")
		chartOut   = pflag.String("chart", "bpprune-comparison.html", "Output path for the --test comparison chart.")
	)
	pflag.Parse()

	logger := tracelog.Default()
	switch {
	case *verbose >= 2 || *printTree:
		logger.SetLevel(log.DebugLevel)
	case *verbose == 1:
		logger.SetLevel(log.InfoLevel)
	}

	e := big.NewInt(*eFlag)

	if *test {
		runComparison(*bitSize, e, *chartOut, logger)
		return
	}

	runTextbookExamples(logger, *printTree)
	runGeneratedExamples(*revealRate, *bitSize, e, logger, *printTree)
}

func runComparison(bitSize int, e *big.Int, chartOut string, logger *tracelog.Logger) {
	revealRates := []float64{0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	logger.Infof("running comparison: bitsize=%d e=%s rates=%v", bitSize, e, revealRates)

	cmp, err := perf.CompareAcrossRevealRates(bitSize, e, revealRates)
	if err != nil {
		fmt.Fprintln(os.Stderr, "comparison failed:", err)
		os.Exit(1)
	}

	for i, rate := range revealRates {
		fmt.Printf("reveal=%.2f  bppq=%v (found=%v)  bpcrt=%v (found=%v)  fermat=%v (found=%v)\n",
			rate,
			cmp.BPPQ[i].Elapsed, cmp.BPPQ[i].Found,
			cmp.BPCRT[i].Elapsed, cmp.BPCRT[i].Found,
			cmp.Fermat[i].Elapsed, cmp.Fermat[i].Found,
		)
	}

	f, err := os.Create(chartOut)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chart output failed:", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := perf.RenderComparisonChart(f, cmp); err != nil {
		fmt.Fprintln(os.Stderr, "chart render failed:", err)
		os.Exit(1)
	}
	fmt.Println("wrote comparison chart to", chartOut)
}

func runTextbookExamples(logger *tracelog.Logger, printTree bool) {
	fmt.Println("Algorithm 1: Branch and Prune with Textbook Example")
	fmt.Println("Textbook example with N = 899, p = 31, q = 29")

	n := big.NewInt(899)
	knownP := msb("?11?1")
	knownQ := msb("?1?0?")

	opts := traceOpts(printTree, logger)
	sols, err := bppq.BranchAndPrune(n, knownP, knownQ, opts...)
	printPQResult(sols, err)

	fmt.Println("\nAlgorithm 2: CRT Pruning with Textbook Example")
	fmt.Println("Textbook example with N = 899, e = 17, dp = 23, dq = 5")

	e := big.NewInt(17)
	knownDp := msb("?0??1")
	knownDq := msb("?0?0?")

	crtOpts := crtTraceOpts(printTree, logger)
	sol, err := bpcrt.BranchAndPruneCRT(n, e, knownDp, knownDq, crtOpts...)
	if err != nil {
		fmt.Println("No solution found")
	} else {
		fmt.Printf("Recovered p: %s, q: %s, dp: %s, dq: %s, kp: %s, kq: %s\n",
			sol.P, sol.Q, sol.Dp, sol.Dq, sol.Kp, sol.Kq)
	}
}

func runGeneratedExamples(revealRate float64, bitSize int, e *big.Int, logger *tracelog.Logger, printTree bool) {
	fmt.Println("\nExample using a generated key pair with the requested reveal rate and bit size")

	key, knownP, knownQ, err := rsasynth.GenerateFactorExample(bitSize, revealRate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generation failed:", err)
		return
	}
	fmt.Printf("N: %s  p: %s  q: %s\n", key.N, key.P, key.Q)

	sols, err := bppq.BranchAndPrune(key.N, knownP, knownQ, traceOpts(printTree, logger)...)
	printPQResult(sols, err)

	keyCRT, knownDp, knownDq, err := rsasynth.GenerateCRTExample(bitSize, e, revealRate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "CRT generation failed:", err)
		return
	}
	fmt.Printf("\nN: %s  e: %s  dp: %s  dq: %s\n", keyCRT.N, keyCRT.E, keyCRT.Dp, keyCRT.Dq)

	sol, err := bpcrt.BranchAndPruneCRT(keyCRT.N, keyCRT.E, knownDp, knownDq, crtTraceOpts(printTree, logger)...)
	if err != nil {
		fmt.Println("No solution found")
	} else {
		fmt.Printf("Recovered p: %s, q: %s, dp: %s, dq: %s, kp: %s, kq: %s\n",
			sol.P, sol.Q, sol.Dp, sol.Dq, sol.Kp, sol.Kq)
	}
}

func printPQResult(sols []bppq.Solution, err error) {
	if err != nil {
		fmt.Println("No solution found")
		return
	}
	for _, s := range sols {
		fmt.Printf("Recovered p: %s  q: %s\n", s.P, s.Q)
	}
}

func traceOpts(printTree bool, logger *tracelog.Logger) []bppq.Option {
	if !printTree {
		return nil
	}

	return []bppq.Option{bppq.WithTrace(func(pos, validChildren int) {
		logger.Node(pos, validChildren)
	})}
}

func crtTraceOpts(printTree bool, logger *tracelog.Logger) []bpcrt.Option {
	if !printTree {
		return nil
	}

	return []bpcrt.Option{bpcrt.WithTrace(func(kp *big.Int, pos, validChildren int) {
		logger.NodeCRT(kp, pos, validChildren)
	})}
}

// msb builds a []bitvec.Trit from a compact string of '0','1','?'.
func msb(pattern string) []bitvec.Trit {
	out := make([]bitvec.Trit, len(pattern))
	for i, c := range pattern {
		switch c {
		case '0':
			out[i] = bitvec.Zero
		case '1':
			out[i] = bitvec.One
		case '?':
			out[i] = bitvec.Unknown
		}
	}

	return out
}
