package modarith

import "math/big"

// GCD returns the nonnegative greatest common divisor of a and b via
// Euclid's algorithm. Neither argument is mutated.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// ModInverse returns the inverse of a modulo m via the extended Euclidean
// algorithm. Returns ErrNotInvertible if gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrNotInvertible
	}

	return inv, nil
}

// FindKQFromKP derives kq from kp, N, and e per §4.4:
//
//	(kp - 1 - kp*N) * kq ≡ (kp - 1)  (mod e)
//
// Returns ErrNotInvertible if the left-hand coefficient
// (kp - 1 - kp*N) mod e shares a factor with e — the caller (bpcrt's driver
// loop) is expected to skip this kp and try the next one.
func FindKQFromKP(kp, n, e *big.Int) (*big.Int, error) {
	lhs := new(big.Int).Mul(kp, n)
	lhs.Sub(new(big.Int).Sub(kp, big.NewInt(1)), lhs)
	lhs.Mod(lhs, e)

	rhs := new(big.Int).Sub(kp, big.NewInt(1))
	rhs.Mod(rhs, e)

	lhsInv, err := ModInverse(lhs, e)
	if err != nil {
		return nil, err
	}

	kq := new(big.Int).Mul(rhs, lhsInv)
	kq.Mod(kq, e)

	return kq, nil
}

// CheckKQ is the sanity predicate from §4.4/§8.5:
//
//	(kp-1)(kq-1) ≡ kp*kq*N (mod e)
func CheckKQ(kp, kq, n, e *big.Int) bool {
	lhs := new(big.Int).Mul(
		new(big.Int).Sub(kp, big.NewInt(1)),
		new(big.Int).Sub(kq, big.NewInt(1)),
	)
	lhs.Mod(lhs, e)

	rhs := new(big.Int).Mul(kp, kq)
	rhs.Mul(rhs, n)
	rhs.Mod(rhs, e)

	return lhs.Cmp(rhs) == 0
}

// IsOddUnderModulus reports whether kp is odd, i.e. gcd(kp, 2^(i+1)) == 1.
// This is the precondition for the direct formula in PFromDP/QFromDQ (§4.4);
// when false, callers must fall back to the enumerate-and-test form instead.
func IsOddUnderModulus(kp *big.Int) bool {
	return kp.Bit(0) == 1
}

// PFromDP computes the required low (i+1) bits of p directly from dp, per
// the "often used for efficiency" formula in §4.4:
//
//	p ≡ (kp^-1 mod 2^(i+1)) * (e*dp - 1 + kp)   (mod 2^(i+1))
//
// Returns ErrNotInvertible if kp is even (gcd(kp, 2^(i+1)) != 1), in which
// case the caller must use the enumerate-and-test fallback instead of this
// shortcut (§9 OQ1).
func PFromDP(dp, kp, e *big.Int, i int) (*big.Int, error) {
	return fromD(dp, kp, e, i)
}

// QFromDQ is the q-side analog of PFromDP, identical in form with kq in
// place of kp and dq in place of dp.
func QFromDQ(dq, kq, e *big.Int, i int) (*big.Int, error) {
	return fromD(dq, kq, e, i)
}

// fromD implements the shared shape of PFromDP/QFromDQ:
// x ≡ (k^-1 mod 2^(i+1)) * (e*d - 1 + k)  (mod 2^(i+1)).
func fromD(d, k, e *big.Int, i int) (*big.Int, error) {
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(i+1))

	kInv, err := ModInverse(k, modulus)
	if err != nil {
		return nil, err
	}

	rhs := new(big.Int).Mul(e, d)
	rhs.Sub(rhs, big.NewInt(1))
	rhs.Add(rhs, k)

	x := new(big.Int).Mul(kInv, rhs)
	x.Mod(x, modulus)

	return x, nil
}
