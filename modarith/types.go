// Package modarith implements the modular-arithmetic helpers shared by the
// bppq and bpcrt search engines: gcd, modular inverse, the kq-from-kp
// derivation (§4.4), and the direct p/q-from-dp/dq formula used as a fast
// path when kp and kq are odd (§4.4, §4.5, §9 OQ1).
//
// Errors:
//
//	ErrNotInvertible - the requested value has no inverse modulo m (gcd != 1).
package modarith

import "errors"

// ErrNotInvertible indicates ModInverse was asked to invert a value that
// shares a nontrivial factor with the modulus.
var ErrNotInvertible = errors.New("modarith: value is not invertible modulo m")
