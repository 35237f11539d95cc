package rsasynth

import (
	"crypto/rand"
	"math/big"
)

// GenerateKeyPair generates a fresh RSA key pair with primes of the given
// bit size, grounded on rsa.py's generate_keypair: draw p, q, require p≠q,
// pick e (defaulting to 65537) subject to gcd(e, phi(N)) == 1, derive d and
// the CRT components dp, dq, qinv.
//
// Primality testing is crypto/rand.Prime, which runs Miller-Rabin rounds
// internally via big.Int.ProbablyPrime — the direct Go equivalent of
// rsa.py's hand-rolled miller_rabin, and the only cryptographically sound
// way to draw a prime in Go; no pack library offers prime generation, and
// hand-rolling Miller-Rabin again on top of math/big would just be a worse
// copy of what the standard library already provides.
func GenerateKeyPair(bits int, opts ...Option) (*KeyPair, error) {
	if bits < 5 {
		return nil, ErrBitSizeTooSmall
	}

	options := DefaultOptions()
	for _, fn := range opts {
		fn(&options)
	}

	// phi(N) = (p-1)(q-1) is always even for two odd primes, so an even e
	// can never be coprime to it; retrying with fresh primes would loop
	// forever. Reject it up front rather than hanging.
	if options.PublicExponent == nil || options.PublicExponent.Cmp(big.NewInt(1)) <= 0 || options.PublicExponent.Bit(0) == 0 {
		return nil, ErrNoSuitableExponent
	}
	e := new(big.Int).Set(options.PublicExponent)

	for {
		p, err := rand.Prime(rand.Reader, bits)
		if err != nil {
			return nil, err
		}
		q, err := rand.Prime(rand.Reader, bits)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, big.NewInt(1)),
			new(big.Int).Sub(q, big.NewInt(1)),
		)

		if new(big.Int).GCD(nil, nil, e, phi).Cmp(big.NewInt(1)) != 0 {
			continue
		}

		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			continue
		}

		pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
		qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
		dp := new(big.Int).Mod(d, pMinus1)
		dq := new(big.Int).Mod(d, qMinus1)
		qinv := new(big.Int).ModInverse(q, p)
		if qinv == nil {
			continue
		}

		return &KeyPair{
			N: n, E: e, D: d,
			P: p, Q: q,
			Dp: dp, Dq: dq, Qinv: qinv,
		}, nil
	}
}
