package rsasynth

import (
	"math/big"
	mrand "math/rand/v2"

	"github.com/corvidlabs/bpprune/bitvec"
)

// ErasedBits returns value's MSB-first bit pattern, zero-extended/truncated
// to length, with each position independently erased (set to
// bitvec.Unknown) unless a per-bit coin flip falls below revealRate. This is
// the Go shape of helpers.py's erase_bits, adapted to the MSB-first
// external convention (§3, §9 OQ2) that bitvec.FromMSBFirst expects.
func ErasedBits(value *big.Int, length int, revealRate float64) []bitvec.Trit {
	out := make([]bitvec.Trit, length)
	for pos := 0; pos < length; pos++ {
		msbIndex := length - 1 - pos
		bit := bitvec.Zero
		if value.Bit(pos) == 1 {
			bit = bitvec.One
		}
		if mrand.Float64() < revealRate {
			out[msbIndex] = bit
		} else {
			out[msbIndex] = bitvec.Unknown
		}
	}

	return out
}

// GenerateFactorExample draws a fresh key pair and returns erasure-masked
// MSB-first bit patterns of p and q suitable for bppq.BranchAndPrune,
// grounded on helpers.py's example_generator.
func GenerateFactorExample(bits int, revealRate float64, opts ...Option) (*KeyPair, []bitvec.Trit, []bitvec.Trit, error) {
	key, err := GenerateKeyPair(bits, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	length := max(key.P.BitLen(), key.Q.BitLen())
	knownP := ErasedBits(key.P, length, revealRate)
	knownQ := ErasedBits(key.Q, length, revealRate)

	return key, knownP, knownQ, nil
}

// GenerateCRTExample draws a fresh key pair using public exponent e
// (generation retries with fresh primes until e is coprime to phi(N); e is
// not compared against phi(N)) and returns erasure-masked
// MSB-first bit patterns of dp and dq suitable for bpcrt.BranchAndPruneCRT,
// grounded on helpers.py's example_generator_crt_pruning.
func GenerateCRTExample(bits int, e *big.Int, revealRate float64) (*KeyPair, []bitvec.Trit, []bitvec.Trit, error) {
	key, err := GenerateKeyPair(bits, WithPublicExponent(e))
	if err != nil {
		return nil, nil, nil, err
	}

	// GenerateKeyPair only retries on gcd failure for the exponent it was
	// given and keeps redrawing primes until e is usable, so key.E is always
	// the caller's e.
	length := key.N.BitLen()
	knownDp := ErasedBits(key.Dp, length, revealRate)
	knownDq := ErasedBits(key.Dq, length, revealRate)

	return key, knownDp, knownDq, nil
}
