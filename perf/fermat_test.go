package perf_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/bpprune/perf"
)

func TestFermatFactorize_TextbookS1(t *testing.T) {
	p, q, ok := perf.FermatFactorize(big.NewInt(899))
	require.True(t, ok)
	require.Equal(t, big.NewInt(899), new(big.Int).Mul(p, q))
}

func TestFermatFactorize_ClosePrimes(t *testing.T) {
	// Fermat's method is fast precisely when p and q are close: 101*103.
	p, q, ok := perf.FermatFactorize(big.NewInt(10403))
	require.True(t, ok)
	require.Equal(t, big.NewInt(10403), new(big.Int).Mul(p, q))
}

func TestFermatFactorize_EvenRejected(t *testing.T) {
	_, _, ok := perf.FermatFactorize(big.NewInt(100))
	require.False(t, ok)
}
