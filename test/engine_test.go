package test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosemary-crypto/zkvm-benchmark/ecc"
	"github.com/rosemary-crypto/zkvm-benchmark/frontend"
)

var errMissingInput = errors.New("missing input")

// squareCircuit proves knowledge of x with x² equal to a public value.
type squareCircuit struct {
	X *big.Int

	shape bool
	cfg   squareConfig
}

type squareConfig struct {
	x, y frontend.Advice
	pub  frontend.Instance
	q    frontend.Selector
}

func (c *squareCircuit) Configure(cs *frontend.ConstraintSystem) {
	c.cfg = squareConfig{
		x:   cs.AdviceColumn(),
		y:   cs.AdviceColumn(),
		pub: cs.InstanceColumn(),
		q:   cs.Selector(),
	}
	cs.CreateGate("square", func(q *frontend.Queries) []frontend.Expression {
		qs := q.Selector(c.cfg.q)
		x := q.Advice(c.cfg.x)
		y := q.Advice(c.cfg.y)
		pub := q.Instance(c.cfg.pub)
		return []frontend.Expression{
			frontend.Mul(qs, frontend.Sub(frontend.Mul(x, x), y)),
			frontend.Mul(qs, frontend.Sub(y, pub)),
		}
	})
}

func (c *squareCircuit) Synthesize(l *frontend.Layouter) error {
	var x frontend.Value
	switch {
	case c.shape:
		x = frontend.Unknown()
	case c.X == nil:
		return errMissingInput
	default:
		x = frontend.Known(c.X)
	}

	return l.AssignRegion("square", func(r *frontend.Region) error {
		if err := r.EnableSelector(c.cfg.q, 0); err != nil {
			return err
		}
		if _, err := r.AssignAdvice("x", c.cfg.x, 0, x); err != nil {
			return err
		}
		y := x.Map(func(v *big.Int) *big.Int { return new(big.Int).Mul(v, v) })
		_, err := r.AssignAdvice("y", c.cfg.y, 0, y)
		return err
	})
}

func (c *squareCircuit) WithoutWitnesses() frontend.Circuit {
	return &squareCircuit{shape: true}
}

func TestEngineAccepts(t *testing.T) {
	assert := NewAssert(t)
	circuit := &squareCircuit{X: big.NewInt(3)}
	assert.Accepted(circuit, ecc.Pallas(), [][]*big.Int{{big.NewInt(9)}})
}

func TestEngineRejects(t *testing.T) {
	assert := NewAssert(t)
	circuit := &squareCircuit{X: big.NewInt(3)}
	assert.Rejected(circuit, ecc.Pallas(), [][]*big.Int{{big.NewInt(8)}})
}

func TestEngineRejectionNamesRegion(t *testing.T) {
	circuit := &squareCircuit{X: big.NewInt(3)}
	e, err := Run(circuit, ecc.Pallas(), [][]*big.Int{{big.NewInt(8)}})
	require.NoError(t, err)
	err = e.Verify()
	require.ErrorIs(t, err, ErrUnsatisfiedConstraint)
	require.ErrorContains(t, err, `gate "square"`)
	require.ErrorContains(t, err, `region "square"`)
}

func TestEngineSynthesisError(t *testing.T) {
	_, err := Run(&squareCircuit{}, ecc.Pallas(), [][]*big.Int{{big.NewInt(9)}})
	require.ErrorIs(t, err, errMissingInput)
}

func TestEngineInstanceArity(t *testing.T) {
	_, err := Run(&squareCircuit{X: big.NewInt(3)}, ecc.Pallas(), nil)
	require.ErrorContains(t, err, "instance columns")
}
