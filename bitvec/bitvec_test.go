package bitvec_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/corvidlabs/bpprune/bitvec"
)

func TestWithLSB_SetsOnlyLSB(t *testing.T) {
	v, err := bitvec.WithLSB(bitvec.One, 5)
	require.NoError(t, err)
	require.Equal(t, 5, v.Len())

	b, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, bitvec.One, b)

	for i := 1; i < 5; i++ {
		b, err = v.Get(i)
		require.NoError(t, err)
		require.Equal(t, bitvec.Zero, b)
	}
}

func TestToInt_UnknownBitFails(t *testing.T) {
	v, err := bitvec.NewZeros(4)
	require.NoError(t, err)
	v, err = v.Set(2, bitvec.Unknown)
	require.NoError(t, err)

	_, err = v.ToInt()
	require.ErrorIs(t, err, bitvec.ErrUnknownBit)
}

func TestSet_OutOfRange(t *testing.T) {
	v, err := bitvec.NewZeros(3)
	require.NoError(t, err)
	_, err = v.Set(3, bitvec.One)
	require.ErrorIs(t, err, bitvec.ErrIndexOutOfRange)
	_, err = v.Set(-1, bitvec.One)
	require.ErrorIs(t, err, bitvec.ErrIndexOutOfRange)
}

func TestSet_InvalidTrit(t *testing.T) {
	v, err := bitvec.NewZeros(3)
	require.NoError(t, err)
	_, err = v.Set(0, bitvec.Trit(99))
	require.ErrorIs(t, err, bitvec.ErrInvalidTrit)
}

func TestSet_IsNonMutating(t *testing.T) {
	v, err := bitvec.NewZeros(3)
	require.NoError(t, err)
	v2, err := v.Set(1, bitvec.One)
	require.NoError(t, err)

	b0, _ := v.Get(1)
	b1, _ := v2.Get(1)
	require.Equal(t, bitvec.Zero, b0, "original vector must not be mutated")
	require.Equal(t, bitvec.One, b1)
}

func TestPadTo_Idempotent(t *testing.T) {
	v, err := bitvec.WithLSB(bitvec.One, 4)
	require.NoError(t, err)
	padded := v.PadTo(4)
	require.Equal(t, v, padded, "padding to the current length must be a no-op")
}

func TestPadTo_ZeroExtendsAtMSB(t *testing.T) {
	v, err := bitvec.WithLSB(bitvec.One, 2)
	require.NoError(t, err)
	padded := v.PadTo(5)
	require.Equal(t, 5, padded.Len())

	n, err := padded.ToInt()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1), n)
}

func TestFromMSBFirst_ToMSBFirst_RoundTrip(t *testing.T) {
	msb := []bitvec.Trit{bitvec.One, bitvec.Zero, bitvec.Unknown, bitvec.One}
	v, err := bitvec.FromMSBFirst(msb)
	require.NoError(t, err)
	require.Equal(t, msb, v.ToMSBFirst())
}

func TestFromMSBFirst_Empty(t *testing.T) {
	_, err := bitvec.FromMSBFirst(nil)
	require.ErrorIs(t, err, bitvec.ErrEmptyVector)
}

// TestRoundTrip_FromIntToInt is the property from spec §8.6: FromInt(ToInt(v),
// len(v)) == v for any fully-determined v.
func TestRoundTrip_FromIntToInt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		length := rapid.IntRange(1, 64).Draw(t, "length")
		n := rapid.Uint64Range(0, (uint64(1)<<uint(min(length, 63)))-1).Draw(t, "n")

		v, err := bitvec.FromInt(new(big.Int).SetUint64(n), length)
		require.NoError(t, err)

		got, err := v.ToInt()
		require.NoError(t, err)
		require.Equal(t, new(big.Int).SetUint64(n), got)

		v2, err := bitvec.FromInt(got, length)
		require.NoError(t, err)
		require.Equal(t, v, v2)
	})
}

// TestPadToMatch_Property checks that the pairwise padding helper brings both
// vectors to the same length, max(len(a), len(b)).
func TestPadToMatch_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		la := rapid.IntRange(1, 32).Draw(t, "la")
		lb := rapid.IntRange(1, 32).Draw(t, "lb")

		a, err := bitvec.NewZeros(la)
		require.NoError(t, err)
		b, err := bitvec.NewZeros(lb)
		require.NoError(t, err)

		pa, pb := bitvec.PadToMatch(a, b)
		require.Equal(t, pa.Len(), pb.Len())

		want := la
		if lb > want {
			want = lb
		}
		require.Equal(t, want, pa.Len())
	})
}
