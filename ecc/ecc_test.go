package ecc

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func testCurves() []Curve {
	return []Curve{Pallas(), Vesta(), Secp256k1()}
}

func TestGeneratorOnCurve(t *testing.T) {
	for _, c := range testCurves() {
		require.True(t, IsOnCurve(c, c.Generator()), "generator of %s not on curve", c.ID())
	}
}

func TestPastaCycle(t *testing.T) {
	// base field of one pasta curve is the scalar field of the other
	require.Equal(t, 0, Pallas().BaseModulus().Cmp(Vesta().ScalarModulus()))
	require.Equal(t, 0, Vesta().BaseModulus().Cmp(Pallas().ScalarModulus()))
	require.NotEqual(t, 0, Pallas().BaseModulus().Cmp(Pallas().ScalarModulus()))
}

func TestDoubleAddConsistency(t *testing.T) {
	for _, c := range testCurves() {
		g := c.Generator()
		g2 := Double(c, g)
		g3 := Add(c, g2, g)
		g4 := Double(c, g2)

		require.True(t, IsOnCurve(c, g2), c.ID())
		require.True(t, IsOnCurve(c, g3), c.ID())
		require.True(t, g2.Equal(ScalarMul(c, big.NewInt(2), g)), c.ID())
		require.True(t, g3.Equal(ScalarMul(c, big.NewInt(3), g)), c.ID())
		require.True(t, g4.Equal(ScalarMul(c, big.NewInt(4), g)), c.ID())

		// coinciding operands route through Double
		require.True(t, Add(c, g, g).Equal(Double(c, g)), c.ID())
	}
}

func TestAddInversePanics(t *testing.T) {
	c := Pallas()
	g := c.Generator()
	require.Panics(t, func() {
		Add(c, g, Neg(c, g))
	})
}

func TestScalarMulByOne(t *testing.T) {
	for _, c := range testCurves() {
		g := c.Generator()
		require.True(t, ScalarMul(c, big.NewInt(1), g).Equal(g), c.ID())
	}
}

func TestScalarMulZeroPanics(t *testing.T) {
	c := Vesta()
	require.Panics(t, func() {
		ScalarMul(c, big.NewInt(0), c.Generator())
	})
}

func TestSignVerify(t *testing.T) {
	for _, c := range testCurves() {
		priv, pub, err := GenerateKey(c, rand.Reader)
		require.NoError(t, err)
		require.True(t, IsOnCurve(c, pub), c.ID())

		hash := HashToScalar(c, []byte("benchmark payload"))
		r, s, err := Sign(c, priv, hash, rand.Reader)
		require.NoError(t, err)

		require.True(t, Verify(c, pub, hash, r, s), c.ID())

		// a random s must not verify
		badS, err := RandomScalar(c, rand.Reader)
		require.NoError(t, err)
		if badS.Cmp(s) != 0 {
			require.False(t, Verify(c, pub, hash, r, badS), c.ID())
		}
	}
}

func TestSignVerifyProp(t *testing.T) {
	c := Pallas()
	priv, pub, err := GenerateKey(c, rand.Reader)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10
	properties := gopter.NewProperties(parameters)

	properties.Property("honest signatures verify", prop.ForAll(
		func(msg []byte) bool {
			hash := HashToScalar(c, msg)
			if hash.Sign() == 0 {
				return true
			}
			r, s, err := Sign(c, priv, hash, rand.Reader)
			if err != nil {
				return false
			}
			return Verify(c, pub, hash, r, s)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestHashToScalarRange(t *testing.T) {
	for _, c := range testCurves() {
		h := HashToScalar(c, []byte{0xde, 0xad, 0xbe, 0xef})
		require.True(t, h.Cmp(c.ScalarModulus()) < 0)
		require.True(t, h.Sign() >= 0)
	}
}
