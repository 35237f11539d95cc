// Package bppq implements the BP-PQ branch-and-prune search: recovering RSA
// primes (p, q) from N and a partial, erasure-corrupted view of their bits
// (§4.3).
//
// The engine is an explicit-stack depth-first search over bit positions
// 0..L-1 (LSB to MSB). At each position it branches over the unknown bits
// of p and q, keeping only children whose partial product already agrees
// with N modulo 2^(i+1) (see package prune). Branch order is fixed
// ((0,0),(0,1),(1,0),(1,1)) so that, stack aliasing aside, repeated runs on
// identical input are deterministic (§8.3).
//
// Errors:
//
//	ErrNoSolution     - the search exhausted without a verified terminal.
//	ErrMalformedInput - a known-bit slice was empty, or N was not positive.
package bppq

import (
	"context"
	"errors"
	"math/big"
)

// Sentinel errors for the BP-PQ engine.
var (
	// ErrNoSolution indicates the search exhausted its stack without finding
	// a terminal assignment whose product equals N exactly.
	ErrNoSolution = errors.New("bppq: no solution found")

	// ErrMalformedInput indicates a zero-length known-bit vector or a
	// non-positive N was supplied.
	ErrMalformedInput = errors.New("bppq: malformed input")
)

// Solution is a single recovered factor pair, both fully determined.
type Solution struct {
	P *big.Int
	Q *big.Int
}

// Option configures BranchAndPrune. Use with DefaultOptions() overrides.
type Option func(*Options)

// Options controls the search engine's behavior. The zero value is not
// meaningful; construct via DefaultOptions().
type Options struct {
	// Ctx allows cooperative cancellation, checked at the top of every node
	// expansion (§5 "Suspension points"). Defaults to context.Background().
	Ctx context.Context

	// StopAtFirst, if true, returns after the first verified solution instead
	// of exhausting the stack to enumerate every solution consistent with the
	// known bits. Default: false (enumerate all, per §8.2 completeness).
	StopAtFirst bool

	// Trace, if non-nil, is called once per node expansion with the bit
	// position and the number of valid children produced; it backs the
	// optional search-tree debug view (§9). Default: nil (no tracing).
	Trace func(pos int, validChildren int)
}

// DefaultOptions returns the default Options: background context, enumerate
// all solutions, no tracing.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		StopAtFirst: false,
	}
}

// WithContext overrides the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithStopAtFirst toggles early exit on the first verified solution.
func WithStopAtFirst(stop bool) Option {
	return func(o *Options) { o.StopAtFirst = stop }
}

// WithTrace installs a per-node trace callback.
func WithTrace(fn func(pos int, validChildren int)) Option {
	return func(o *Options) { o.Trace = fn }
}
