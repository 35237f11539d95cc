package bppq

import (
	"math/big"

	"github.com/corvidlabs/bpprune/bitvec"
)

// BranchAndPrune recovers every (p, q) consistent with N and the supplied
// MSB-first known-bit patterns of p and q (§6 "branch_and_prune"). The
// shorter of knownP/knownQ is zero-extended at the MSB end to match the
// other (§3 "Known-bit inputs").
//
// Returns ErrMalformedInput if N is not positive or either known-bit slice
// is empty. Returns ErrNoSolution if the search exhausts its stack without a
// verified terminal. Otherwise returns every solution found, in DFS
// discovery order (§8.3 determinism): repeated calls with identical inputs
// return the same solutions in the same order.
func BranchAndPrune(n *big.Int, knownP, knownQ []bitvec.Trit, opts ...Option) ([]Solution, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, ErrMalformedInput
	}
	if len(knownP) == 0 || len(knownQ) == 0 {
		return nil, ErrMalformedInput
	}

	options := DefaultOptions()
	for _, fn := range opts {
		fn(&options)
	}

	pVec, err := bitvec.FromMSBFirst(knownP)
	if err != nil {
		return nil, ErrMalformedInput
	}
	qVec, err := bitvec.FromMSBFirst(knownQ)
	if err != nil {
		return nil, ErrMalformedInput
	}
	pVec, qVec = bitvec.PadToMatch(pVec, qVec)
	length := pVec.Len()

	root, err := seedRoot(pVec, qVec, length)
	if err != nil {
		return nil, err
	}

	e := &engine{
		n:      n,
		length: length,
		opts:   options,
		knownP: pVec,
		knownQ: qVec,
		stack:  []frame{root},
	}

	if err := e.run(); err != nil {
		return nil, err
	}
	if len(e.results) == 0 {
		return nil, ErrNoSolution
	}

	return e.results, nil
}

// seedRoot builds the i=0 root node per §4.3: with_lsb(known_p[0], L) /
// with_lsb(known_q[0], L). The root's bit 0 is overwritten during the first
// expansion regardless, since expand always sets position i on every child;
// seeding it from the known LSB only matches the reference construction
// faithfully, it has no behavioral effect.
func seedRoot(p, q bitvec.BitVec, length int) (frame, error) {
	lsbP, err := p.Get(0)
	if err != nil {
		return frame{}, err
	}
	lsbQ, err := q.Get(0)
	if err != nil {
		return frame{}, err
	}

	pRoot, err := bitvec.WithLSB(lsbP, length)
	if err != nil {
		return frame{}, err
	}
	qRoot, err := bitvec.WithLSB(lsbQ, length)
	if err != nil {
		return frame{}, err
	}

	return frame{p: pRoot, q: qRoot, i: 0}, nil
}
