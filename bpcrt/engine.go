package bpcrt

import (
	"math/big"

	"github.com/corvidlabs/bpprune/bitvec"
	"github.com/corvidlabs/bpprune/modarith"
	"github.com/corvidlabs/bpprune/prune"
)

// frame is one SearchNode of the CRT search: p, q, dp, dq are fully
// determined in [0, i) for a fixed (kp, kq) pair.
type frame struct {
	p, q, dp, dq bitvec.BitVec
	i            int
}

// engine runs the CRT search for a single (kp, kq) pair, mirroring the
// explicit-stack shape of package bppq's engine.
type engine struct {
	n, e    *big.Int
	kp, kq  *big.Int
	length  int
	opts    Options
	knownDp bitvec.BitVec
	knownDq bitvec.BitVec
	stack   []frame
	solution *Solution
}

// dpdqBranchOrder fixes the (b_dp, b_dq) iteration order, mirroring bppq's
// fixed branch order for determinism.
var dpdqBranchOrder = [4][2]bitvec.Trit{
	{bitvec.Zero, bitvec.Zero},
	{bitvec.Zero, bitvec.One},
	{bitvec.One, bitvec.Zero},
	{bitvec.One, bitvec.One},
}

// pqBranchOrder is the full enumerate-and-test fallback's (b_p, b_q) order
// (§9 OQ1), used only when kp or kq is even and the direct formula's modular
// inverse does not exist.
var pqBranchOrder = [4][2]bitvec.Trit{
	{bitvec.Zero, bitvec.Zero},
	{bitvec.Zero, bitvec.One},
	{bitvec.One, bitvec.Zero},
	{bitvec.One, bitvec.One},
}

// run drives the DFS for this (kp, kq) to the first post-verified terminal,
// populating e.solution and returning nil on success. Returns ErrNoSolution
// if the stack exhausts without one, or ctx.Err() if cancelled.
func (e *engine) run() error {
	for len(e.stack) > 0 {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}

		node := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		if node.i == e.length {
			if sol := e.verifyTerminal(node); sol != nil {
				e.solution = sol
				return nil
			}
			continue
		}

		valid := e.expand(node)
		if e.opts.Trace != nil {
			e.opts.Trace(e.kp, node.i, valid)
		}
	}

	return ErrNoSolution
}

// verifyTerminal applies the terminal acceptance test once every bit has
// been decided: p*q == N exactly, and e*dp ≡ 1 (mod p-1), e*dq ≡ 1 (mod q-1).
// Returns nil if any check fails.
func (e *engine) verifyTerminal(node frame) *Solution {
	pInt, err := node.p.ToInt()
	if err != nil {
		return nil
	}
	qInt, err := node.q.ToInt()
	if err != nil {
		return nil
	}
	dpInt, err := node.dp.ToInt()
	if err != nil {
		return nil
	}
	dqInt, err := node.dq.ToInt()
	if err != nil {
		return nil
	}

	if new(big.Int).Mul(pInt, qInt).Cmp(e.n) != 0 {
		return nil
	}

	pMinus1 := new(big.Int).Sub(pInt, big.NewInt(1))
	if pMinus1.Sign() <= 0 {
		return nil
	}
	if new(big.Int).Mod(new(big.Int).Mul(e.e, dpInt), pMinus1).Cmp(big.NewInt(1)) != 0 {
		return nil
	}

	qMinus1 := new(big.Int).Sub(qInt, big.NewInt(1))
	if qMinus1.Sign() <= 0 {
		return nil
	}
	if new(big.Int).Mod(new(big.Int).Mul(e.e, dqInt), qMinus1).Cmp(big.NewInt(1)) != 0 {
		return nil
	}

	return &Solution{P: pInt, Q: qInt, Dp: dpInt, Dq: dqInt, Kp: e.kp, Kq: e.kq}
}

// expand produces every child of node consistent with the known dp/dq bits
// at position node.i and the three §4.4 congruences, pushing valid children.
// Returns the number of children pushed (for tracing).
func (e *engine) expand(node frame) int {
	knownDpBit := e.knownDp.MustGet(node.i)
	knownDqBit := e.knownDq.MustGet(node.i)

	pushed := 0
	for _, dpdq := range dpdqBranchOrder {
		bdp, bdq := dpdq[0], dpdq[1]
		if knownDpBit != bitvec.Unknown && bdp != knownDpBit {
			continue
		}
		if knownDqBit != bitvec.Unknown && bdq != knownDqBit {
			continue
		}

		dpNext, err := node.dp.Set(node.i, bdp)
		if err != nil {
			panic(err)
		}
		dqNext, err := node.dq.Set(node.i, bdq)
		if err != nil {
			panic(err)
		}

		for _, pq := range e.pqCandidates(node, dpNext, dqNext) {
			bp, bq := pq[0], pq[1]
			pNext, err := node.p.Set(node.i, bp)
			if err != nil {
				panic(err)
			}
			qNext, err := node.q.Set(node.i, bq)
			if err != nil {
				panic(err)
			}

			if !e.checkCoupling(pNext, dpNext, e.kp, node.i) {
				continue
			}
			if !e.checkCoupling(qNext, dqNext, e.kq, node.i) {
				continue
			}
			ok, err := prune.IsValid(pNext, qNext, node.i, e.n)
			if err != nil {
				panic(err)
			}
			if !ok {
				continue
			}

			e.stack = append(e.stack, frame{p: pNext, q: qNext, dp: dpNext, dq: dqNext, i: node.i + 1})
			pushed++
		}
	}

	return pushed
}

// pqCandidates returns the (b_p, b_q) pairs worth trying at this bit. When
// both kp and kq are odd under the current modulus, the direct formula of
// §4.4 narrows this to the single pair it derives (still re-verified by
// checkCoupling/prune.IsValid below rather than trusted outright). Otherwise
// it falls back to the full four-pair enumerate-and-test form (§9 OQ1).
func (e *engine) pqCandidates(node frame, dpNext, dqNext bitvec.BitVec) [][2]bitvec.Trit {
	if modarith.IsOddUnderModulus(e.kp) && modarith.IsOddUnderModulus(e.kq) {
		dpInt, errDp := dpNext.ToInt()
		dqInt, errDq := dqNext.ToInt()
		if errDp == nil && errDq == nil {
			pReq, errP := modarith.PFromDP(dpInt, e.kp, e.e, node.i)
			qReq, errQ := modarith.QFromDQ(dqInt, e.kq, e.e, node.i)
			if errP == nil && errQ == nil {
				return [][2]bitvec.Trit{{bitAt(pReq, node.i), bitAt(qReq, node.i)}}
			}
		}
	}

	out := make([][2]bitvec.Trit, len(pqBranchOrder))
	copy(out, pqBranchOrder[:])

	return out
}

// bitAt returns bit i of n as a Trit.
func bitAt(n *big.Int, i int) bitvec.Trit {
	if n.Bit(i) == 1 {
		return bitvec.One
	}

	return bitvec.Zero
}

// checkCoupling tests one side of the §4.4 coupling congruence:
//
//	x * k ≡ (e*d - 1 + k)   (mod 2^(i+1))
func (e *engine) checkCoupling(x, d bitvec.BitVec, k *big.Int, i int) bool {
	xInt, err := x.ToInt()
	if err != nil {
		return false
	}
	dInt, err := d.ToInt()
	if err != nil {
		return false
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), uint(i+1))

	lhs := new(big.Int).Mul(xInt, k)
	lhs.Mod(lhs, modulus)

	rhs := new(big.Int).Mul(e.e, dInt)
	rhs.Sub(rhs, big.NewInt(1))
	rhs.Add(rhs, k)
	rhs.Mod(rhs, modulus)

	return lhs.Cmp(rhs) == 0
}
