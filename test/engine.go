// Package test provides a mock evaluation engine to check circuits without a
// proving backend: it synthesizes the witness, then verifies that every gate
// identity vanishes at selector-enabled rows and that copy constraints and
// public instance columns are consistent.
package test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/rosemary-crypto/zkvm-benchmark/ecc"
	"github.com/rosemary-crypto/zkvm-benchmark/frontend"
	"github.com/rosemary-crypto/zkvm-benchmark/logger"
)

var (
	// ErrUnsatisfiedConstraint is wrapped by Verify when a gate identity does
	// not vanish; this is the intended rejection path for invalid witnesses.
	ErrUnsatisfiedConstraint = errors.New("constraint not satisfied")
)

var (
	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
)

// Engine holds a synthesized circuit: the shape and the witness assignment,
// ready for verification.
type Engine struct {
	curve    ecc.Curve
	cs       *frontend.ConstraintSystem
	layouter *frontend.Layouter
}

// Run configures and synthesizes the circuit over the scalar field of the
// given curve. instance holds the public values, indexed by instance column
// then row; one slice per declared instance column is required.
//
// When the circuit supports it, a structure-only pass runs first with all
// witness values unresolved, mirroring what a real keygen phase would see.
func Run(circuit frontend.Circuit, curve ecc.Curve, instance [][]*big.Int) (*Engine, error) {
	log := logger.Logger()

	cs := frontend.NewConstraintSystem(curve.ScalarModulus())
	circuit.Configure(cs)

	if len(instance) != cs.NbInstance() {
		return nil, fmt.Errorf("got %d instance columns, shape declares %d", len(instance), cs.NbInstance())
	}

	if sc, ok := circuit.(frontend.ShapeCircuit); ok {
		shape := sc.WithoutWitnesses()
		shapeCS := frontend.NewConstraintSystem(curve.ScalarModulus())
		shape.Configure(shapeCS)
		sl := frontend.NewLayouter(shapeCS, nil)
		if err := shape.Synthesize(sl); err != nil {
			return nil, fmt.Errorf("structure pass: %w", err)
		}
		log.Debug().Int("rows", sl.Rows()).Int("gates", len(shapeCS.Gates())).Msg("structure pass done")
	}

	l := frontend.NewLayouter(cs, instance)
	if err := circuit.Synthesize(l); err != nil {
		return nil, fmt.Errorf("witness pass: %w", err)
	}
	log.Debug().Str("curve", curve.ID()).Int("rows", l.Rows()).Msg("witness pass done")

	return &Engine{curve: curve, cs: cs, layouter: l}, nil
}

// Verify evaluates every gate identity at every row and checks the recorded
// copy constraints. A nil return means the witness satisfies the circuit.
func (e *Engine) Verify() error {
	mod := e.cs.Modulus()
	rows := e.layouter.Rows()

	for _, gate := range e.cs.Gates() {
		for row := 0; row < rows; row++ {
			for i, poly := range gate.Polys {
				v := poly.Eval(e, row, mod)
				if v.Sign() != 0 {
					region := "unplaced"
					if info, ok := e.layouter.RegionAt(row); ok {
						region = info.Name
					}
					return fmt.Errorf("%w: gate %q identity %d at row %d (region %q) evaluates to %s",
						ErrUnsatisfiedConstraint, gate.Name, i, row, region, v.String())
				}
			}
		}
	}

	for _, pair := range e.layouter.Copies() {
		va, err := e.cellValue(pair[0])
		if err != nil {
			return err
		}
		vb, err := e.cellValue(pair[1])
		if err != nil {
			return err
		}
		if va.Cmp(vb) != 0 {
			return fmt.Errorf("%w: copy constraint between (%d,%d) and (%d,%d): %s != %s",
				ErrUnsatisfiedConstraint,
				pair[0].Column, pair[0].Row, pair[1].Column, pair[1].Row,
				va.String(), vb.String())
		}
	}

	return nil
}

func (e *Engine) cellValue(c frontend.Cell) (*big.Int, error) {
	switch c.Kind {
	case frontend.KindAdvice:
		if v, ok := e.layouter.AdviceValue(c.Column, c.Row); ok {
			return v, nil
		}
	case frontend.KindInstance:
		if v, ok := e.layouter.InstanceValue(c.Column, c.Row); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("copy constraint references unassigned cell (kind %d, column %d, row %d)", c.Kind, c.Column, c.Row)
}

// Advice implements frontend.Wiring; unassigned cells read as zero.
func (e *Engine) Advice(column, row int) *big.Int {
	if v, ok := e.layouter.AdviceValue(column, row); ok {
		return v
	}
	return bigZero
}

// Instance implements frontend.Wiring; missing public values read as zero.
func (e *Engine) Instance(column, row int) *big.Int {
	if v, ok := e.layouter.InstanceValue(column, row); ok {
		return v
	}
	return bigZero
}

// Selector implements frontend.Wiring.
func (e *Engine) Selector(selector, row int) *big.Int {
	if e.layouter.SelectorEnabled(selector, row) {
		return bigOne
	}
	return bigZero
}
