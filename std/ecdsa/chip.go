package ecdsa

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/rosemary-crypto/zkvm-benchmark/ecc"
	"github.com/rosemary-crypto/zkvm-benchmark/frontend"
)

// pointCells is an affine point held in assigned cells.
type pointCells struct {
	x, y frontend.AssignedCell
}

// chip evaluates affine curve arithmetic on wire values and lays the
// intermediate results out in advice cells. All field arithmetic is modulo
// the wire field, which is the coordinate field of the curve the witness
// points live on.
type chip struct {
	cfg  Config
	mod  *big.Int
	bits int
}

func newChip(cfg Config, c ecc.Curve) *chip {
	return &chip{cfg: cfg, mod: c.ScalarModulus(), bits: c.ScalarBits()}
}

func (ch *chip) add(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), ch.mod)
}

func (ch *chip) sub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), ch.mod)
}

func (ch *chip) mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), ch.mod)
}

func (ch *chip) inv(a *big.Int) *big.Int {
	r := new(big.Int).ModInverse(a, ch.mod)
	if r == nil {
		panic("ecdsa: no inverse")
	}
	return r
}

func zip3(a, b, c frontend.Value, f func(a, b, c *big.Int) *big.Int) frontend.Value {
	av, ok := a.Get()
	bv, ok2 := b.Get()
	cv, ok3 := c.Get()
	if !ok || !ok2 || !ok3 {
		return frontend.Unknown()
	}
	return frontend.Known(f(av, bv, cv))
}

func zip4(a, b, c, d frontend.Value, f func(a, b, c, d *big.Int) *big.Int) frontend.Value {
	av, ok := a.Get()
	bv, ok2 := b.Get()
	cv, ok3 := c.Get()
	dv, ok4 := d.Get()
	if !ok || !ok2 || !ok3 || !ok4 {
		return frontend.Unknown()
	}
	return frontend.Known(f(av, bv, cv, dv))
}

// pointDouble computes 2·p through the tangent slope λ = 3x²/2y and assigns
// the result one row past offset. Doubling a point with y = 0 panics in the
// slope inversion.
func (ch *chip) pointDouble(rg *frontend.Region, p pointCells, offset int) (pointCells, error) {
	xv, yv := p.x.Value(), p.y.Value()
	lambda := xv.Zip(yv, func(x, y *big.Int) *big.Int {
		xx := ch.mul(x, x)
		num := ch.add(ch.add(xx, xx), xx)
		return ch.mul(num, ch.inv(ch.add(y, y)))
	})
	xr := lambda.Zip(xv, func(l, x *big.Int) *big.Int {
		return ch.sub(ch.sub(ch.mul(l, l), x), x)
	})
	yr := zip4(lambda, xv, xr, yv, func(l, x, xr, y *big.Int) *big.Int {
		return ch.sub(ch.mul(l, ch.sub(x, xr)), y)
	})

	xc, err := rg.AssignAdvice("x_double", ch.cfg.X, offset+1, xr)
	if err != nil {
		return pointCells{}, err
	}
	yc, err := rg.AssignAdvice("y_double", ch.cfg.Y, offset+1, yr)
	if err != nil {
		return pointCells{}, err
	}
	return pointCells{x: xc, y: yc}, nil
}

// pointAdd computes p1 + p2 through the chord slope λ = (y2−y1)/(x2−x1) and
// assigns the result two rows past offset. Operands sharing an x-coordinate
// panic in the slope inversion; callers route coinciding operands to
// pointDouble.
func (ch *chip) pointAdd(rg *frontend.Region, p1, p2 pointCells, offset int) (pointCells, error) {
	x1, y1 := p1.x.Value(), p1.y.Value()
	x2, y2 := p2.x.Value(), p2.y.Value()
	lambda := zip4(x1, y1, x2, y2, func(x1, y1, x2, y2 *big.Int) *big.Int {
		return ch.mul(ch.sub(y2, y1), ch.inv(ch.sub(x2, x1)))
	})
	xr := zip3(lambda, x1, x2, func(l, x1, x2 *big.Int) *big.Int {
		return ch.sub(ch.sub(ch.mul(l, l), x1), x2)
	})
	yr := zip4(lambda, x1, xr, y1, func(l, x1, xr, y1 *big.Int) *big.Int {
		return ch.sub(ch.mul(l, ch.sub(x1, xr)), y1)
	})

	xc, err := rg.AssignAdvice("x_add", ch.cfg.X, offset+2, xr)
	if err != nil {
		return pointCells{}, err
	}
	yc, err := rg.AssignAdvice("y_add", ch.cfg.Y, offset+2, yr)
	if err != nil {
		return pointCells{}, err
	}
	return pointCells{x: xc, y: yc}, nil
}

// scalarMult computes k·p by double-and-add, most significant set bit first.
// The bits of k are extracted from the wire value by repeated parity checks
// and multiplication by 2⁻¹; the parity bit is cleared before the halving,
// so the division is exact and the loop recovers the binary digits of the
// integer representative rather than a modular alias. When the scalar is
// unknown (structure pass) no cells are assigned and p is returned unchanged.
// A scalar ≡ 0 panics.
func (ch *chip) scalarMult(rg *frontend.Region, scalar frontend.AssignedCell, p pointCells) (pointCells, error) {
	kv, known := scalar.Value().Get()
	if !known {
		return p, nil
	}

	inv2 := new(big.Int).ModInverse(big.NewInt(2), ch.mod)
	bits := bitset.New(uint(ch.bits))
	k := new(big.Int).Set(kv)
	for i := 0; i < ch.bits; i++ {
		if k.Bit(0) == 1 {
			bits.Set(uint(i))
			k.Sub(k, oneBI)
		}
		k.Mul(k, inv2).Mod(k, ch.mod)
	}

	top := -1
	for i := ch.bits - 1; i >= 0; i-- {
		if bits.Test(uint(i)) {
			top = i
			break
		}
	}
	if top < 0 {
		panic("ecdsa: scalar multiplication by zero")
	}

	// the accumulator starts at p, consuming the most significant set bit
	acc := p
	offset := 0
	var err error
	for i := top - 1; i >= 0; i-- {
		if acc, err = ch.pointDouble(rg, acc, offset); err != nil {
			return pointCells{}, err
		}
		offset++
		if bits.Test(uint(i)) {
			if acc, err = ch.pointAdd(rg, acc, p, offset); err != nil {
				return pointCells{}, err
			}
			offset += 2
		}
	}
	return acc, nil
}
