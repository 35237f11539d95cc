package rsasynth

import "math/big"

// Encrypt raises plaintext (as a nonnegative integer strictly less than N)
// to the e-th power mod N, per rsa.py's encrypt. The caller is responsible
// for any text-to-integer encoding; this package only handles the modular
// exponentiation.
func (k *KeyPair) Encrypt(plaintext *big.Int) (*big.Int, error) {
	if plaintext.Sign() < 0 || plaintext.Cmp(k.N) >= 0 {
		return nil, ErrPlaintextTooLarge
	}

	return new(big.Int).Exp(plaintext, k.E, k.N), nil
}

// Decrypt recovers the plaintext integer from ciphertext via the CRT
// recombination in rsa.py's decrypt: compute m_p = c^dp mod p and
// m_q = c^dq mod q, then combine m = m_p*q*qinv + m_q*p*pinv (mod N) using
// Garner's formula with the precomputed qinv — the same shortcut that makes
// dp, dq worth recovering in the first place rather than just d.
func (k *KeyPair) Decrypt(ciphertext *big.Int) *big.Int {
	mp := new(big.Int).Exp(ciphertext, k.Dp, k.P)
	mq := new(big.Int).Exp(ciphertext, k.Dq, k.Q)

	h := new(big.Int).Sub(mp, mq)
	h.Mul(h, k.Qinv)
	h.Mod(h, k.P)

	m := new(big.Int).Mul(h, k.Q)
	m.Add(m, mq)
	m.Mod(m, k.N)

	return m
}

// DecryptWithFactors reconstructs the CRT components from a recovered
// (p, q) and the original public key (n, e) and decrypts ciphertext — the
// operation that makes recovering (p, q) via BP-PQ materially useful: an
// attacker who only has N, e, and a partial bit pattern of p and q ends up,
// after a successful search, able to read traffic encrypted under N.
func DecryptWithFactors(n, e, p, q, ciphertext *big.Int) (*big.Int, error) {
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, big.NewInt(1)),
		new(big.Int).Sub(q, big.NewInt(1)),
	)
	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, ErrNoSuitableExponent
	}

	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	dp := new(big.Int).Mod(d, pMinus1)
	dq := new(big.Int).Mod(d, qMinus1)
	qinv := new(big.Int).ModInverse(q, p)
	if qinv == nil {
		return nil, ErrNoSuitableExponent
	}

	k := &KeyPair{N: n, E: e, D: d, P: p, Q: q, Dp: dp, Dq: dq, Qinv: qinv}

	return k.Decrypt(ciphertext), nil
}
