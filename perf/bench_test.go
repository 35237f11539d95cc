// Package perf_test — benchmarks for the branch-and-prune search engines
// and the Fermat baseline they are compared against.
//
// Policy:
//   - Fixed small textbook instance (N=899) for the search benchmarks so
//     results are comparable run over run; no random key generation in the
//     timed loop.
//   - Fermat is benchmarked on a close-prime instance where it is fast, and
//     a far-prime instance where it is not, to make the contrast visible.
package perf_test

import (
	"math/big"
	"testing"

	"github.com/corvidlabs/bpprune/bitvec"
	"github.com/corvidlabs/bpprune/bppq"
	"github.com/corvidlabs/bpprune/perf"
)

// msb builds a []bitvec.Trit from a compact string of '0','1','?'.
func msb(pattern string) []bitvec.Trit {
	out := make([]bitvec.Trit, len(pattern)) // one trit per pattern char
	for i, c := range pattern {              // walk the pattern left to right
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

// BenchmarkBranchAndPrune_S1 measures BP-PQ on the spec's toy instance
// (N=899=31*29) at a moderate erasure level.
func BenchmarkBranchAndPrune_S1(b *testing.B) {
	n := big.NewInt(899)           // textbook modulus, fixed across iterations
	knownP := msb("?11?1")         // p=31 with two bits erased
	knownQ := msb("?1?0?")         // q=29 with three bits erased

	b.ReportAllocs() // track per-run allocation volume
	b.ResetTimer()   // exclude setup above from the timed region
	var it int
	for it = 0; it < b.N; it++ { // repeat per the harness
		var _, err = bppq.BranchAndPrune(n, knownP, knownQ) // run the search
		if err != nil {
			b.Fatalf("BranchAndPrune failed: %v", err)
		}
	}
}

// BenchmarkFermatFactorize_ClosePrimes measures Fermat's method where it is
// fast: p and q differ only slightly.
func BenchmarkFermatFactorize_ClosePrimes(b *testing.B) {
	n := big.NewInt(10403) // 101 * 103, close primes — Fermat's best case

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		var _, _, ok = perf.FermatFactorize(n)
		if !ok {
			b.Fatalf("FermatFactorize failed on %v", n)
		}
	}
}

// BenchmarkFermatFactorize_FarPrimes measures Fermat's method where it is
// slow: p and q are far apart, forcing many a-increments.
func BenchmarkFermatFactorize_FarPrimes(b *testing.B) {
	n := big.NewInt(7 * 9973) // factors far apart — Fermat's worst case

	b.ReportAllocs()
	b.ResetTimer()
	var it int
	for it = 0; it < b.N; it++ {
		var _, _, ok = perf.FermatFactorize(n)
		if !ok {
			b.Fatalf("FermatFactorize failed on %v", n)
		}
	}
}
