// Package bpcrt implements the BP-CRT branch-and-prune search: recovering
// an RSA key (p, q, dp, dq) from N, the public exponent e, and a partial,
// erasure-corrupted view of the CRT exponents dp = d mod (p-1) and
// dq = d mod (q-1) (§4.4).
//
// For each candidate kp in [1, e), the driver derives kq via the kq-from-kp
// relation (package modarith) and runs an explicit-stack search over bit
// positions 0..L-1, coupling each dp/dq bit to a p/q bit through the
// congruences in §4.4. The first kp whose search produces a fully
// post-verified terminal wins; kp is otherwise embarrassingly parallel
// (§5), though this package runs it sequentially by default.
//
// Errors:
//
//	ErrNoSolution     - no kp in [1, e) produced a verified solution.
//	ErrMalformedInput - a known-bit slice was empty, or N/e was not positive.
package bpcrt

import (
	"context"
	"errors"
	"math/big"
)

// Sentinel errors for the BP-CRT engine.
var (
	// ErrNoSolution indicates every kp in [1, e) either failed to derive a
	// kq or produced a search that exhausted without a verified terminal.
	ErrNoSolution = errors.New("bpcrt: no solution found")

	// ErrMalformedInput indicates a zero-length known-bit vector, or a
	// non-positive N or e, was supplied.
	ErrMalformedInput = errors.New("bpcrt: malformed input")
)

// Solution is a single recovered key, fully determined and post-verified.
type Solution struct {
	P  *big.Int
	Q  *big.Int
	Dp *big.Int
	Dq *big.Int
	Kp *big.Int
	Kq *big.Int
}

// Option configures BranchAndPruneCRT.
type Option func(*Options)

// Options controls the search engine's behavior. The zero value is not
// meaningful; construct via DefaultOptions().
type Options struct {
	// Ctx allows cooperative cancellation, checked at the top of every kp
	// iteration and every node expansion.
	Ctx context.Context

	// Trace, if non-nil, is called once per node expansion with the kp
	// value currently being tried, the bit position, and the number of
	// valid children produced; backs the optional search-tree debug view.
	Trace func(kp *big.Int, pos int, validChildren int)
}

// DefaultOptions returns the default Options: background context, no tracing.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext overrides the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithTrace installs a per-node trace callback.
func WithTrace(fn func(kp *big.Int, pos int, validChildren int)) Option {
	return func(o *Options) { o.Trace = fn }
}
