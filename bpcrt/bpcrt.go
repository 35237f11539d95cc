package bpcrt

import (
	"math/big"

	"github.com/corvidlabs/bpprune/bitvec"
	"github.com/corvidlabs/bpprune/modarith"
)

// BranchAndPruneCRT recovers (p, q, dp, dq) from N, the public exponent e,
// and the supplied MSB-first known-bit patterns of dp and dq (§6
// "branch_and_prune_crt"). It sweeps kp over [1, e) (§4.4 "Driver loop"),
// deriving kq from kp via modarith.FindKQFromKP and skipping any kp for
// which that derivation fails, and returns the first kp whose search
// produces a fully post-verified terminal.
//
// Returns ErrMalformedInput if N or e is not positive, or either known-bit
// slice is empty. Returns ErrNoSolution if every kp in [1, e) was exhausted
// without a verified solution.
func BranchAndPruneCRT(n, e *big.Int, knownDp, knownDq []bitvec.Trit, opts ...Option) (Solution, error) {
	if n == nil || n.Sign() <= 0 || e == nil || e.Sign() <= 0 {
		return Solution{}, ErrMalformedInput
	}
	if len(knownDp) == 0 || len(knownDq) == 0 {
		return Solution{}, ErrMalformedInput
	}

	options := DefaultOptions()
	for _, fn := range opts {
		fn(&options)
	}

	dpVec, err := bitvec.FromMSBFirst(knownDp)
	if err != nil {
		return Solution{}, ErrMalformedInput
	}
	dqVec, err := bitvec.FromMSBFirst(knownDq)
	if err != nil {
		return Solution{}, ErrMalformedInput
	}
	dpVec, dqVec = bitvec.PadToMatch(dpVec, dqVec)
	length := dpVec.Len()

	for kp := big.NewInt(1); kp.Cmp(e) < 0; kp.Add(kp, big.NewInt(1)) {
		if err := options.Ctx.Err(); err != nil {
			return Solution{}, err
		}

		kq, err := modarith.FindKQFromKP(kp, n, e)
		if err != nil {
			continue
		}
		if !modarith.CheckKQ(kp, kq, n, e) {
			continue
		}

		root, err := seedRoot(dpVec, dqVec, length)
		if err != nil {
			return Solution{}, err
		}

		eng := &engine{
			n:       n,
			e:       e,
			kp:      new(big.Int).Set(kp),
			kq:      kq,
			length:  length,
			opts:    options,
			knownDp: dpVec,
			knownDq: dqVec,
			stack:   []frame{root},
		}

		runErr := eng.run()
		if runErr == nil && eng.solution != nil {
			return *eng.solution, nil
		}
		if runErr != nil && runErr != ErrNoSolution {
			return Solution{}, runErr
		}
	}

	return Solution{}, ErrNoSolution
}

// seedRoot builds the i=0 root node per §4.4: p and q start at all-zero
// (they carry no known-bit input in the CRT variant), while dp and dq seed
// their LSB from the known patterns, matching the reference construction.
func seedRoot(dp, dq bitvec.BitVec, length int) (frame, error) {
	pZero, err := bitvec.NewZeros(length)
	if err != nil {
		return frame{}, err
	}
	qZero, err := bitvec.NewZeros(length)
	if err != nil {
		return frame{}, err
	}

	dpLSB, err := dp.Get(0)
	if err != nil {
		return frame{}, err
	}
	dqLSB, err := dq.Get(0)
	if err != nil {
		return frame{}, err
	}

	dpRoot, err := bitvec.WithLSB(dpLSB, length)
	if err != nil {
		return frame{}, err
	}
	dqRoot, err := bitvec.WithLSB(dqLSB, length)
	if err != nil {
		return frame{}, err
	}

	return frame{p: pZero, q: qZero, dp: dpRoot, dq: dqRoot, i: 0}, nil
}
