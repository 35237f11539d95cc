package bppq

import (
	"math/big"

	"github.com/corvidlabs/bpprune/bitvec"
	"github.com/corvidlabs/bpprune/prune"
)

// frame is one SearchNode (§3): p and q are fully determined in [0, i) and
// satisfy p*q ≡ N (mod 2^i). frame is pushed/popped by value; every child's
// p and q come from BitVec.Set, which copies, so no two frames on the stack
// share bits.
type frame struct {
	p, q bitvec.BitVec
	i    int
}

// engine holds the search configuration and the explicit DFS stack, mirroring
// the dedicated-struct-over-closures shape used by the teacher's
// Branch-and-Bound engine: dependencies are explicit fields, not captured
// closure state, which keeps the hot loop's allocations predictable.
type engine struct {
	n       *big.Int
	length  int
	opts    Options
	knownP  bitvec.BitVec
	knownQ  bitvec.BitVec
	stack   []frame
	results []Solution
}

// branchOrder fixes the (b_p, b_q) iteration order of §4.3: (0,0),(0,1),(1,0),(1,1).
var branchOrder = [4][2]bitvec.Trit{
	{bitvec.Zero, bitvec.Zero},
	{bitvec.Zero, bitvec.One},
	{bitvec.One, bitvec.Zero},
	{bitvec.One, bitvec.One},
}

// run drives the DFS to completion (or to the first solution, if
// opts.StopAtFirst), pushing/popping e.stack and appending to e.results.
// Returns early with ctx.Err() if the context is cancelled between node
// expansions (§5).
func (e *engine) run() error {
	for len(e.stack) > 0 {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}

		node := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		if node.i == e.length {
			pInt, errP := node.p.ToInt()
			qInt, errQ := node.q.ToInt()
			if errP == nil && errQ == nil {
				product := new(big.Int).Mul(pInt, qInt)
				if product.Cmp(e.n) == 0 {
					e.results = append(e.results, Solution{P: pInt, Q: qInt})
					if e.opts.StopAtFirst {
						return nil
					}
				}
			}
			continue
		}

		valid := e.expand(node)
		if e.opts.Trace != nil {
			e.opts.Trace(node.i, valid)
		}
	}

	return nil
}

// expand produces every child of node consistent with the known bits at
// position node.i and the product congruence, pushing valid children onto
// the stack. Returns the number of children pushed (for tracing).
func (e *engine) expand(node frame) int {
	knownPBit := e.knownP.MustGet(node.i)
	knownQBit := e.knownQ.MustGet(node.i)

	pushed := 0
	for _, pair := range branchOrder {
		bp, bq := pair[0], pair[1]
		if knownPBit != bitvec.Unknown && bp != knownPBit {
			continue
		}
		if knownQBit != bitvec.Unknown && bq != knownQBit {
			continue
		}

		pNext, err := node.p.Set(node.i, bp)
		if err != nil {
			panic(err) // unreachable: node.i is always in [0, length)
		}
		qNext, err := node.q.Set(node.i, bq)
		if err != nil {
			panic(err)
		}

		ok, err := prune.IsValid(pNext, qNext, node.i, e.n)
		if err != nil {
			panic(err) // unreachable: positions [0, i] are fully determined by construction
		}
		if !ok {
			continue
		}

		e.stack = append(e.stack, frame{p: pNext, q: qNext, i: node.i + 1})
		pushed++
	}

	return pushed
}
