// Package prune implements the single congruence-based pruning predicate
// (§4.2) shared by both the BP-PQ and BP-CRT search engines:
//
//	is_valid(p, q, i, N) := (p * q) mod 2^(i+1) == N mod 2^(i+1)
//
// The modulus is 2^(i+1), not 2^i: after deciding bit i, the lowest i+1 bits
// of the product must already match N. p and q must be fully determined in
// [0, i] when IsValid is called during expansion — bits above i are expected
// to still be Zero, an invariant the search engines maintain by only writing
// positions <= i while walking the tree.
package prune

import (
	"math/big"

	"github.com/corvidlabs/bpprune/bitvec"
)

// IsValid reports whether p and q satisfy p*q ≡ N (mod 2^(i+1)). p and q
// must be fully determined (no Unknown trits); it returns an error wrapping
// bitvec.ErrUnknownBit if not.
func IsValid(p, q bitvec.BitVec, i int, n *big.Int) (bool, error) {
	pInt, err := p.ToInt()
	if err != nil {
		return false, err
	}
	qInt, err := q.ToInt()
	if err != nil {
		return false, err
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), uint(i+1))

	lhs := new(big.Int).Mul(pInt, qInt)
	lhs.Mod(lhs, modulus)

	rhs := new(big.Int).Mod(n, modulus)

	return lhs.Cmp(rhs) == 0, nil
}
