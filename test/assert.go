package test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosemary-crypto/zkvm-benchmark/ecc"
	"github.com/rosemary-crypto/zkvm-benchmark/frontend"
)

// Assert is a helper to test circuits against the mock engine.
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert embedding a testify/require object for
// convenience.
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Accepted synthesizes the circuit and requires the witness to satisfy it.
func (a *Assert) Accepted(circuit frontend.Circuit, curve ecc.Curve, instance [][]*big.Int) {
	a.t.Helper()
	e, err := Run(circuit, curve, instance)
	a.NoError(err, "synthesis failed")
	a.NoError(e.Verify())
}

// Rejected synthesizes the circuit and requires verification to fail with a
// constraint violation.
func (a *Assert) Rejected(circuit frontend.Circuit, curve ecc.Curve, instance [][]*big.Int) {
	a.t.Helper()
	e, err := Run(circuit, curve, instance)
	a.NoError(err, "synthesis failed")
	a.ErrorIs(e.Verify(), ErrUnsatisfiedConstraint)
}
