package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/rosemary-crypto/zkvm-benchmark/ecc"
	"github.com/rosemary-crypto/zkvm-benchmark/frontend"
)

// ErrMissingWitness reports a witness-pass synthesis with an unset input.
var ErrMissingWitness = errors.New("ecdsa: missing witness input")

// Signature is an ECDSA signature. Both components are elements of the
// scalar field of the curve the signature was produced on.
type Signature struct {
	R, S *big.Int
}

// Config holds the column and selector handles of the verification circuit.
type Config struct {
	QEnable frontend.Selector

	X, Y frontend.Advice // point coordinates, then u1/u2, then the recovered point
	R, S frontend.Advice // signature components
	W    frontend.Advice // witnessed inverse of s

	Hash frontend.Instance
}

// Circuit verifies one ECDSA signature. Curve fixes the wire field (its
// scalar field) and the gate constant b; the signature, public key and hash
// live on the sister curve of the 2-cycle.
type Circuit struct {
	Curve ecc.Curve

	PublicKey   *ecc.Point
	MessageHash *big.Int
	Signature   *Signature

	shape bool
	cfg   Config
}

// Configure declares the five advice columns, the hash instance column and
// the single verification gate.
func (c *Circuit) Configure(cs *frontend.ConstraintSystem) {
	c.cfg = Config{
		QEnable: cs.Selector(),
		X:       cs.AdviceColumn(),
		Y:       cs.AdviceColumn(),
		R:       cs.AdviceColumn(),
		S:       cs.AdviceColumn(),
		W:       cs.AdviceColumn(),
		Hash:    cs.InstanceColumn(),
	}

	cs.EnableEquality(c.cfg.X)
	cs.EnableEquality(c.cfg.Y)
	cs.EnableEquality(c.cfg.R)
	cs.EnableEquality(c.cfg.S)
	cs.EnableEquality(c.cfg.Hash)

	b := c.Curve.B()
	cs.CreateGate("ecdsa_verify", func(q *frontend.Queries) []frontend.Expression {
		qe := q.Selector(c.cfg.QEnable)
		x := q.Advice(c.cfg.X)
		y := q.Advice(c.cfg.Y)
		r := q.Advice(c.cfg.R)
		s := q.Advice(c.cfg.S)
		w := q.Advice(c.cfg.W)

		one := frontend.Const(big.NewInt(1))
		cube := frontend.Mul(frontend.Mul(x, x), x)
		return []frontend.Expression{
			frontend.Mul(qe, frontend.Sub(frontend.Mul(s, w), one)),
			frontend.Mul(qe, frontend.Sub(frontend.Mul(y, y), frontend.Add(cube, frontend.Const(b)))),
			frontend.Mul(qe, frontend.Sub(r, x)),
		}
	})
}

// WithoutWitnesses returns a copy of the circuit with all inputs cleared,
// used for the structure pass.
func (c *Circuit) WithoutWitnesses() frontend.Circuit {
	return &Circuit{Curve: c.Curve, shape: true}
}

// Synthesize lays out the full verification flow: input assignment, the two
// scalar multiplications, the final addition, and the gate row restating the
// recovered point.
func (c *Circuit) Synthesize(l *frontend.Layouter) error {
	sister, ok := ecc.Sister(c.Curve)
	if !ok {
		return fmt.Errorf("ecdsa: curve %s is not part of a 2-cycle", c.Curve.ID())
	}
	ch := newChip(c.cfg, c.Curve)

	pkX, pkY := frontend.Unknown(), frontend.Unknown()
	rRaw, sRaw, hashRaw := frontend.Unknown(), frontend.Unknown(), frontend.Unknown()
	if !c.shape {
		switch {
		case c.PublicKey == nil:
			return fmt.Errorf("public key: %w", ErrMissingWitness)
		case c.MessageHash == nil:
			return fmt.Errorf("message hash: %w", ErrMissingWitness)
		case c.Signature == nil || c.Signature.R == nil || c.Signature.S == nil:
			return fmt.Errorf("signature: %w", ErrMissingWitness)
		}
		pkX, pkY = frontend.Known(c.PublicKey.X), frontend.Known(c.PublicKey.Y)
		rRaw = frontend.Known(c.Signature.R)
		sRaw = frontend.Known(c.Signature.S)
		hashRaw = frontend.Known(c.MessageHash)
	}

	// r, s and the hash are elements of the coordinate field of the
	// parametrizing curve; the wires are over its scalar field
	rVal := rRaw.Map(func(v *big.Int) *big.Int { return BaseToScalar(c.Curve, v) })
	sVal := sRaw.Map(func(v *big.Int) *big.Int { return BaseToScalar(c.Curve, v) })

	// w witnesses the invertibility of s in the wire field
	sInv := sVal.Map(ch.inv)

	// u1 = hash·s⁻¹ and u2 = r·s⁻¹ over the signature's scalar field,
	// then bridged onto the wires
	scalarMod := c.Curve.BaseModulus()
	sInvScalar := sRaw.Map(func(v *big.Int) *big.Int {
		r := new(big.Int).ModInverse(v, scalarMod)
		if r == nil {
			panic("ecdsa: s not invertible")
		}
		return r
	})
	modMul := func(a, b *big.Int) *big.Int {
		return new(big.Int).Mod(new(big.Int).Mul(a, b), scalarMod)
	}
	u1Val := hashRaw.Zip(sInvScalar, modMul).Map(func(v *big.Int) *big.Int { return BaseToScalar(c.Curve, v) })
	u2Val := rRaw.Zip(sInvScalar, modMul).Map(func(v *big.Int) *big.Int { return BaseToScalar(c.Curve, v) })

	g := sister.Generator()

	var (
		pkCells, gCells pointCells
		u1Cell, u2Cell  frontend.AssignedCell
		rCell, sCell    frontend.AssignedCell
	)
	err := l.Namespace("main assignments").AssignRegion("ecdsa verify", func(rg *frontend.Region) error {
		var err error
		if pkCells.x, err = rg.AssignAdvice("pk_x", c.cfg.X, 0, pkX); err != nil {
			return err
		}
		if pkCells.y, err = rg.AssignAdvice("pk_y", c.cfg.Y, 0, pkY); err != nil {
			return err
		}
		if rCell, err = rg.AssignAdvice("r", c.cfg.R, 0, rVal); err != nil {
			return err
		}
		if sCell, err = rg.AssignAdvice("s", c.cfg.S, 0, sVal); err != nil {
			return err
		}
		if _, err = rg.AssignAdvice("w", c.cfg.W, 0, sInv); err != nil {
			return err
		}
		if u1Cell, err = rg.AssignAdvice("u1", c.cfg.X, 1, u1Val); err != nil {
			return err
		}
		if u2Cell, err = rg.AssignAdvice("u2", c.cfg.Y, 1, u2Val); err != nil {
			return err
		}
		if gCells.x, err = rg.AssignAdvice("g_x", c.cfg.X, 2, frontend.Known(g.X)); err != nil {
			return err
		}
		gCells.y, err = rg.AssignAdvice("g_y", c.cfg.Y, 2, frontend.Known(g.Y))
		return err
	})
	if err != nil {
		return err
	}

	var gMult, pkMult, rPoint pointCells
	err = l.Namespace("g_mult").AssignRegion("scalar mult g", func(rg *frontend.Region) error {
		var err error
		gMult, err = ch.scalarMult(rg, u1Cell, gCells)
		return err
	})
	if err != nil {
		return err
	}
	err = l.Namespace("pk_mult").AssignRegion("scalar mult pk", func(rg *frontend.Region) error {
		var err error
		pkMult, err = ch.scalarMult(rg, u2Cell, pkCells)
		return err
	})
	if err != nil {
		return err
	}
	err = l.Namespace("final addition").AssignRegion("point addition", func(rg *frontend.Region) error {
		var err error
		rPoint, err = ch.pointAdd(rg, gMult, pkMult, 0)
		return err
	})
	if err != nil {
		return err
	}

	// the gate row: the recovered point next to r, s and w, tied by copy
	// constraints to the cells the layout produced
	return l.Namespace("recovered point").AssignRegion("ecdsa check", func(rg *frontend.Region) error {
		if err := rg.EnableSelector(c.cfg.QEnable, 0); err != nil {
			return err
		}
		xCell, err := rg.AssignAdvice("R_x", c.cfg.X, 0, rPoint.x.Value())
		if err != nil {
			return err
		}
		yCell, err := rg.AssignAdvice("R_y", c.cfg.Y, 0, rPoint.y.Value())
		if err != nil {
			return err
		}
		r2, err := rg.AssignAdvice("r", c.cfg.R, 0, rVal)
		if err != nil {
			return err
		}
		s2, err := rg.AssignAdvice("s", c.cfg.S, 0, sVal)
		if err != nil {
			return err
		}
		if _, err := rg.AssignAdvice("w", c.cfg.W, 0, sInv); err != nil {
			return err
		}
		if err := rg.ConstrainEqual(xCell.Cell(), rPoint.x.Cell()); err != nil {
			return err
		}
		if err := rg.ConstrainEqual(yCell.Cell(), rPoint.y.Cell()); err != nil {
			return err
		}
		if err := rg.ConstrainEqual(r2.Cell(), rCell.Cell()); err != nil {
			return err
		}
		return rg.ConstrainEqual(s2.Cell(), sCell.Cell())
	})
}
