package modarith_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/corvidlabs/bpprune/modarith"
)

func TestGCD(t *testing.T) {
	require.Equal(t, big.NewInt(6), modarith.GCD(big.NewInt(54), big.NewInt(24)))
	require.Equal(t, big.NewInt(1), modarith.GCD(big.NewInt(17), big.NewInt(5)))
	require.Equal(t, big.NewInt(5), modarith.GCD(big.NewInt(0), big.NewInt(5)))
}

func TestModInverse(t *testing.T) {
	inv, err := modarith.ModInverse(big.NewInt(3), big.NewInt(11))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(4), inv) // 3*4 = 12 ≡ 1 mod 11

	_, err = modarith.ModInverse(big.NewInt(2), big.NewInt(4))
	require.ErrorIs(t, err, modarith.ErrNotInvertible)
}

// TestFindKQFromKP_TextbookS3 grounds spec §8 S3/S6: N=899, e=17.
func TestFindKQFromKP_TextbookS3(t *testing.T) {
	n := big.NewInt(899)
	e := big.NewInt(17)

	found := false
	for kpInt := int64(1); kpInt < 17; kpInt++ {
		kp := big.NewInt(kpInt)
		kq, err := modarith.FindKQFromKP(kp, n, e)
		if err != nil {
			continue
		}
		if modarith.CheckKQ(kp, kq, n, e) {
			found = true
		}
	}
	require.True(t, found, "at least one kp in [1,e) must yield a valid kq")
}

// TestCheckKQ_Property is spec §8.5: for all kp in [1,e) where derivation
// succeeds, the returned kq satisfies the kq law.
func TestCheckKQ_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		eInt := rapid.Int64Range(3, 97).Draw(t, "e")
		nInt := rapid.Int64Range(4, 100000).Draw(t, "n")
		e := big.NewInt(eInt)
		n := big.NewInt(nInt)

		for kpInt := int64(1); kpInt < eInt; kpInt++ {
			kp := big.NewInt(kpInt)
			kq, err := modarith.FindKQFromKP(kp, n, e)
			if err != nil {
				continue
			}
			require.True(t, modarith.CheckKQ(kp, kq, n, e),
				"kq law must hold for kp=%d kq=%v e=%d n=%d", kpInt, kq, eInt, nInt)
		}
	})
}

func TestPFromDP_RoundTrip(t *testing.T) {
	// p = 31 (11111), kp odd, e = 17, i = 4 (full 5-bit width).
	p := big.NewInt(31)
	kp := big.NewInt(3) // arbitrary odd kp for this synthetic check
	e := big.NewInt(17)
	i := 4

	modulus := new(big.Int).Lsh(big.NewInt(1), uint(i+1))
	// dp chosen so that e*dp - 1 + kp ≡ kp*p (mod 2^(i+1)).
	rhs := new(big.Int).Mul(kp, p)
	rhs.Add(rhs, big.NewInt(1))
	rhs.Sub(rhs, kp)
	eInv, err := modarith.ModInverse(e, modulus)
	require.NoError(t, err)
	dp := new(big.Int).Mul(eInv, rhs)
	dp.Mod(dp, modulus)

	got, err := modarith.PFromDP(dp, kp, e, i)
	require.NoError(t, err)
	require.Equal(t, new(big.Int).Mod(p, modulus), got)
}

func TestPFromDP_EvenKPFails(t *testing.T) {
	_, err := modarith.PFromDP(big.NewInt(5), big.NewInt(4), big.NewInt(17), 3)
	require.ErrorIs(t, err, modarith.ErrNotInvertible)
}

func TestIsOddUnderModulus(t *testing.T) {
	require.True(t, modarith.IsOddUnderModulus(big.NewInt(7)))
	require.False(t, modarith.IsOddUnderModulus(big.NewInt(8)))
}
