// Package ecc declares the short Weierstrass curves (y² = x³ + b, a = 0) the
// verification circuit is generic over, together with the native group and
// signature operations the benchmark harness needs to construct test inputs.
//
// Points are always affine and finite: there is no point-at-infinity variant.
// Operations whose affine formulas are undefined (doubling a point with y = 0,
// adding two points with the same x-coordinate) are caller-enforced
// preconditions and panic when violated.
package ecc

import "math/big"

// Curve describes a prime-order curve y² = x³ + b over a prime base field,
// with a distinct prime scalar field.
type Curve interface {
	// ID returns a short identifying string, e.g. "pallas".
	ID() string

	// BaseModulus returns the characteristic of the coordinate field.
	BaseModulus() *big.Int

	// ScalarModulus returns the order of the curve, i.e. the characteristic
	// of the scalar field.
	ScalarModulus() *big.Int

	// B returns the curve constant b in y² = x³ + b.
	B() *big.Int

	// Generator returns the conventional base point.
	Generator() Point

	// ScalarBits returns the bit-width of the scalar field.
	ScalarBits() int
}

// curve is the shared implementation behind the package-level curve instances.
type curve struct {
	id   string
	p    *big.Int // base field modulus
	r    *big.Int // scalar field modulus
	b    *big.Int
	gx   *big.Int
	gy   *big.Int
	bits int
}

func (c *curve) ID() string { return c.id }

func (c *curve) BaseModulus() *big.Int { return new(big.Int).Set(c.p) }

func (c *curve) ScalarModulus() *big.Int { return new(big.Int).Set(c.r) }

func (c *curve) B() *big.Int { return new(big.Int).Set(c.b) }

func (c *curve) Generator() Point {
	return Point{X: new(big.Int).Set(c.gx), Y: new(big.Int).Set(c.gy)}
}

func (c *curve) ScalarBits() int { return c.bits }
