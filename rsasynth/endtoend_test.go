package rsasynth_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/bpprune/bitvec"
	"github.com/corvidlabs/bpprune/bppq"
	"github.com/corvidlabs/bpprune/rsasynth"
)

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
		default:
			panic("bad pattern char")
		}
	}

	return out
}

// TestRecoverFactorsAndDecrypt is the most convincing possible test of the
// whole module: a message is encrypted under a real RSA key (N=899, e=17,
// the same p=31/q=29 as spec §8 scenario S1), bppq.BranchAndPrune recovers
// (p, q) from nothing but N and an erasure-masked view of their bits, and
// the recovered factors alone — not the original p, q — decrypt the
// ciphertext back to the original plaintext.
func TestRecoverFactorsAndDecrypt(t *testing.T) {
	n := big.NewInt(899)
	e := big.NewInt(17)

	p := big.NewInt(31)
	q := big.NewInt(29)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, big.NewInt(1)),
		new(big.Int).Sub(q, big.NewInt(1)),
	)
	d := new(big.Int).ModInverse(e, phi)
	require.NotNil(t, d)

	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	key := &rsasynth.KeyPair{
		N: n, E: e, D: d,
		P: p, Q: q,
		Dp:   new(big.Int).Mod(d, pMinus1),
		Dq:   new(big.Int).Mod(d, qMinus1),
		Qinv: new(big.Int).ModInverse(q, p),
	}

	plaintext := big.NewInt(42)
	ciphertext, err := key.Encrypt(plaintext)
	require.NoError(t, err)

	knownP := msb("?11?1")
	knownQ := msb("?1?0?")
	sols, err := bppq.BranchAndPrune(n, knownP, knownQ)
	require.NoError(t, err)
	require.NotEmpty(t, sols)

	var recoveredP, recoveredQ *big.Int
	for _, s := range sols {
		if s.P.Cmp(p) == 0 && s.Q.Cmp(q) == 0 {
			recoveredP, recoveredQ = s.P, s.Q
		}
	}
	require.NotNil(t, recoveredP, "search must recover the planted (p, q)")

	recovered, err := rsasynth.DecryptWithFactors(n, e, recoveredP, recoveredQ, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, recovered)
}
