package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU8ConstructionRange(t *testing.T) {
	_, err := NewU8(256)
	require.Error(t, err)
	_, err = NewU8(-1)
	require.Error(t, err)
	v, err := NewU8(200)
	require.NoError(t, err)
	require.Equal(t, 200, v.ToInt())
}

func TestU8WrappingArithmetic(t *testing.T) {
	require.Equal(t, 0, OfU8(255).Add(OfU8(1)).ToInt())
	require.Equal(t, 255, OfU8(0).Sub(OfU8(1)).ToInt())
}

func TestI8WrappingArithmetic(t *testing.T) {
	require.Equal(t, -128, OfI8(127).Add(OfI8(1)).ToInt())
	require.Equal(t, 127, OfI8(-128).Sub(OfI8(1)).ToInt())
}

func TestI8MinNegatesToItself(t *testing.T) {
	require.Equal(t, -128, OfI8(-128).Neg().ToInt())
}

func TestI16MinNegatesToItself(t *testing.T) {
	require.Equal(t, -32768, OfI16(-32768).Neg().ToInt())
}

func TestU16HighLowRoundTrip(t *testing.T) {
	for _, raw := range []int{0, 1, 255, 256, 0x1234, 0xFFFF} {
		v := OfU16(raw)
		rebuilt := U16From(v.High(), v.Low())
		require.Equal(t, v, rebuilt)
	}
}

func TestU8ToU16LowByteRoundTrip(t *testing.T) {
	v := OfU8(0xAB)
	require.Equal(t, 0xAB, v.ToU16().Low().ToInt())
}

func TestAlgebraicLawsU8(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			x, y := OfU8(a), OfU8(b)
			require.Equal(t, x.Add(y), y.Add(x))
			require.Equal(t, x.Mul(y), y.Mul(x))
			require.Equal(t, x, x.Add(U8Zero))
			require.Equal(t, OfU8(0), x.Mul(U8Zero))
			require.Equal(t, x, x.And(x))
			require.Equal(t, x, x.Or(x))
			require.Equal(t, OfU8(0), x.Xor(x))
		}
	}
}

func TestShiftRoundTripWhenTopBitsZero(t *testing.T) {
	for raw := 0; raw <= 63; raw++ {
		a := OfU8(raw)
		require.Equal(t, a, a.Shl(2).Shr(2))
	}
}

func TestComparisonAgreesWithRawOrdering(t *testing.T) {
	require.Equal(t, -1, OfU8(1).Cmp(OfU8(2)))
	require.Equal(t, 1, OfU8(2).Cmp(OfU8(1)))
	require.Equal(t, 0, OfU8(5).Cmp(OfU8(5)))
}

func TestClampIsTotal(t *testing.T) {
	require.Equal(t, OfU8(10), OfU8(5).Clamp(OfU8(10), OfU8(20)))
	require.Equal(t, OfU8(20), OfU8(50).Clamp(OfU8(10), OfU8(20)))
	require.Equal(t, OfU8(15), OfU8(15).Clamp(OfU8(10), OfU8(20)))
}

func TestZeroAndMaxConstants(t *testing.T) {
	require.Equal(t, 0, U8Zero.ToInt())
	require.Equal(t, 255, U8Max.ToInt())
	require.Equal(t, 0, U16Zero.ToInt())
	require.Equal(t, 65535, U16Max.ToInt())
}
