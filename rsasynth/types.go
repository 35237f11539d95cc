// Package rsasynth synthesizes the RSA key material that branch-and-prune
// attacks against (bppq, bpcrt) — key generation, CRT-accelerated
// encrypt/decrypt, and erasure-mask example generators that turn a freshly
// generated key into the partial bit patterns the search engines consume.
//
// None of this is part of the attack itself (§2 Non-goals: "key
// generation... not in scope" for the search engines proper); it exists so
// a recovered key can be exercised end-to-end, and so tests and the CLI's
// --test mode have a source of realistic, erasure-corrupted input.
package rsasynth

import (
	"errors"
	"math/big"
)

// Sentinel errors for key generation and CRT decryption.
var (
	// ErrBitSizeTooSmall indicates a requested prime bit size below 5:
	// crypto/rand.Prime sets the top two bits of every candidate, so at 4 bits
	// or fewer it cannot yield two distinct primes.
	ErrBitSizeTooSmall = errors.New("rsasynth: bit size too small")

	// ErrNoSuitableExponent indicates an unusable public exponent: key
	// generation returns it for an exponent that is nil, <= 1, or even (never
	// coprime to the even phi(N)), and DecryptWithFactors returns it when e or
	// q has no inverse modulo phi(N) or p respectively.
	ErrNoSuitableExponent = errors.New("rsasynth: no public exponent coprime to phi(N)")

	// ErrPlaintextTooLarge indicates the plaintext integer is not smaller
	// than the modulus N, so it cannot round-trip through Encrypt/Decrypt.
	ErrPlaintextTooLarge = errors.New("rsasynth: plaintext too large for modulus")
)

// KeyPair is a full RSA key, including the CRT components used by Decrypt.
type KeyPair struct {
	N *big.Int // modulus, p*q
	E *big.Int // public exponent
	D *big.Int // private exponent, e*d ≡ 1 (mod phi(N))

	P *big.Int
	Q *big.Int

	Dp   *big.Int // d mod (p-1)
	Dq   *big.Int // d mod (q-1)
	Qinv *big.Int // q^-1 mod p
}

// Option configures GenerateKeyPair.
type Option func(*Options)

// Options controls key generation. The zero value is not meaningful;
// construct via DefaultOptions().
type Options struct {
	// PublicExponent is the exponent used; if it is not coprime to phi(N)
	// (gcd != 1), generation retries with a fresh prime pair. Default: 65537.
	PublicExponent *big.Int
}

// DefaultOptions returns the default Options: public exponent 65537, the
// conventional RSA choice rsa.py also falls back to first.
func DefaultOptions() Options {
	return Options{PublicExponent: big.NewInt(65537)}
}

// WithPublicExponent overrides the candidate public exponent.
func WithPublicExponent(e *big.Int) Option {
	return func(o *Options) { o.PublicExponent = e }
}
