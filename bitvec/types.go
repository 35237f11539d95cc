// Package bitvec implements a fixed-length vector of trits — digits over
// {0, 1, unknown} — used to represent partially-known bit patterns of RSA
// key material.
//
// Index 0 is always the least significant bit. Vectors are immutable after
// creation: Set returns a new vector rather than mutating its receiver, so a
// search engine can share prefixes between sibling branches without
// aliasing bugs.
//
// Errors:
//
//	ErrUnknownBit     - ToInt was called on a vector with an unresolved trit.
//	ErrIndexOutOfRange - Get/Set addressed a position outside [0, Len).
//	ErrInvalidTrit    - a trit value outside {Zero, One, Unknown} was supplied.
package bitvec

import "errors"

// Sentinel errors for bitvec operations.
var (
	// ErrUnknownBit indicates ToInt was called while at least one trit is Unknown.
	ErrUnknownBit = errors.New("bitvec: vector has an unresolved (unknown) bit")

	// ErrIndexOutOfRange indicates a bit position outside [0, Len) was addressed.
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")

	// ErrInvalidTrit indicates a trit value outside {Zero, One, Unknown} was supplied.
	ErrInvalidTrit = errors.New("bitvec: invalid trit value")

	// ErrEmptyVector indicates a zero-length vector was supplied where one is required.
	ErrEmptyVector = errors.New("bitvec: vector has zero length")
)

// Trit is a three-valued digit: a known 0, a known 1, or an erased/unknown bit.
// It is a defined type rather than a sentinel integer (e.g. -1) so that an
// unresolved bit can never silently participate in arithmetic.
type Trit int8

const (
	// Zero is a known bit with value 0.
	Zero Trit = iota
	// One is a known bit with value 1.
	One
	// Unknown is an erased bit: its position is known but its value is not.
	Unknown
)

// String renders a Trit as '0', '1', or '?'.
func (t Trit) String() string {
	switch t {
	case Zero:
		return "0"
	case One:
		return "1"
	case Unknown:
		return "?"
	default:
		return "!"
	}
}

// valid reports whether t is one of Zero, One, Unknown.
func (t Trit) valid() bool {
	return t == Zero || t == One || t == Unknown
}

// BitVec is an immutable, fixed-length sequence of trits, index 0 = LSB.
type BitVec struct {
	bits []Trit
}

// Len returns the fixed length of v.
func (v BitVec) Len() int { return len(v.bits) }

// Get returns the trit at position i. Returns ErrIndexOutOfRange if i is
// outside [0, Len).
func (v BitVec) Get(i int) (Trit, error) {
	if i < 0 || i >= len(v.bits) {
		return Zero, ErrIndexOutOfRange
	}

	return v.bits[i], nil
}

// MustGet is like Get but panics on error; used internally where the index
// has already been validated by the caller (e.g. the search engine, which
// only ever addresses positions it itself pushed).
func (v BitVec) MustGet(i int) Trit {
	t, err := v.Get(i)
	if err != nil {
		panic(err)
	}

	return t
}

// IsKnown reports whether the trit at position i is Zero or One.
func (v BitVec) IsKnown(i int) bool {
	t, err := v.Get(i)

	return err == nil && t != Unknown
}
