package prune_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/bpprune/bitvec"
	"github.com/corvidlabs/bpprune/prune"
)

func TestIsValid_TextbookS1(t *testing.T) {
	// N = 899 = 31 * 29. Check the full 5-bit product matches exactly.
	n := big.NewInt(899)
	p, err := bitvec.FromInt(big.NewInt(31), 5)
	require.NoError(t, err)
	q, err := bitvec.FromInt(big.NewInt(29), 5)
	require.NoError(t, err)

	ok, err := prune.IsValid(p, q, 4, n)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIsValid_MismatchFails(t *testing.T) {
	n := big.NewInt(899)
	p, err := bitvec.FromInt(big.NewInt(31), 5)
	require.NoError(t, err)
	q, err := bitvec.FromInt(big.NewInt(30), 5) // 31*30 = 930 != 899
	require.NoError(t, err)

	ok, err := prune.IsValid(p, q, 4, n)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsValid_UnknownBitErrors(t *testing.T) {
	n := big.NewInt(899)
	p, err := bitvec.NewZeros(5)
	require.NoError(t, err)
	p, err = p.Set(0, bitvec.Unknown)
	require.NoError(t, err)
	q, err := bitvec.FromInt(big.NewInt(29), 5)
	require.NoError(t, err)

	_, err = prune.IsValid(p, q, 4, n)
	require.ErrorIs(t, err, bitvec.ErrUnknownBit)
}
