package frontend

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueMap(t *testing.T) {
	v := Known(big.NewInt(3))
	doubled := v.Map(func(x *big.Int) *big.Int { return new(big.Int).Lsh(x, 1) })
	got, ok := doubled.Get()
	require.True(t, ok)
	require.Equal(t, int64(6), got.Int64())
}

func TestValueMapUnknown(t *testing.T) {
	called := false
	v := Unknown().Map(func(x *big.Int) *big.Int {
		called = true
		return x
	})
	require.False(t, v.IsKnown())
	require.False(t, called, "closure must not run on an unknown value")
}

func TestValueZip(t *testing.T) {
	a := Known(big.NewInt(7))
	b := Known(big.NewInt(5))
	sum := a.Zip(b, func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) })
	got, ok := sum.Get()
	require.True(t, ok)
	require.Equal(t, int64(12), got.Int64())

	// unknown-ness propagates from either side
	require.False(t, a.Zip(Unknown(), func(x, y *big.Int) *big.Int { return x }).IsKnown())
	require.False(t, Unknown().Zip(b, func(x, y *big.Int) *big.Int { return x }).IsKnown())
}
