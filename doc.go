// Package bpprune (bpprune) implements Heninger–Shacham-style bit-level
// branch-and-prune recovery of an RSA key from a partial, erasure-corrupted
// view of its private material.
//
// Two attacks are provided, each in its own subpackage:
//
//	bppq/  — recover (p, q) from partial bit patterns of p and q
//	bpcrt/ — recover (p, q, dp, dq) from partial bit patterns of the CRT
//	         exponents dp = d mod (p-1), dq = d mod (q-1)
//
// Supporting packages:
//
//	bitvec/   — fixed-length trit vector {0, 1, unknown}, LSB-first
//	modarith/ — gcd, modular inverse, and the kq-from-kp / p-from-dp
//	            number-theoretic helpers shared by both attacks
//	rsasynth/ — prime/keypair generation, encrypt/decrypt, and erasure-mask
//	            example generators used to exercise the attacks in tests
//	perf/     — timed comparison harness (branch-and-prune vs. Fermat
//	            factorization) with an HTML chart of the results
//
// Neither attack performs error correction: a flipped (as opposed to erased)
// bit causes every branch to prune and the search to report no solution.
//
//	go get github.com/corvidlabs/bpprune
package bpprune
