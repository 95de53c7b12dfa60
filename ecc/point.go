package ecc

import "math/big"

// Point is an affine curve point. Both coordinates are elements of the
// curve's base field. The zero value is not a valid point.
type Point struct {
	X, Y *big.Int
}

// Coordinates returns the affine coordinates of p.
func (p Point) Coordinates() (x, y *big.Int) {
	return p.X, p.Y
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// IsOnCurve reports whether p satisfies y² = x³ + b over the base field of c.
func IsOnCurve(c Curve, p Point) bool {
	pm := c.BaseModulus()
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, pm)
	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, c.B())
	rhs.Mod(rhs, pm)
	return lhs.Cmp(rhs) == 0
}

// Double returns 2·p. It panics when p.Y = 0, where the tangent slope
// 3x²/2y is undefined.
func Double(c Curve, p Point) Point {
	pm := c.BaseModulus()

	// λ = 3x² / 2y
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	den := new(big.Int).Lsh(p.Y, 1)
	lambda := num.Mul(num, modInverse(den, pm))
	lambda.Mod(lambda, pm)

	// x' = λ² − 2x
	xr := new(big.Int).Mul(lambda, lambda)
	xr.Sub(xr, p.X).Sub(xr, p.X).Mod(xr, pm)

	// y' = λ(x − x') − y
	yr := new(big.Int).Sub(p.X, xr)
	yr.Mul(yr, lambda).Sub(yr, p.Y).Mod(yr, pm)

	return Point{X: xr, Y: yr}
}

// Add returns p1 + p2. Coinciding operands are routed to Double; operands with
// equal x-coordinates but distinct y-coordinates are inverses of each other,
// the sum is the (unrepresentable) identity and Add panics.
func Add(c Curve, p1, p2 Point) Point {
	if p1.X.Cmp(p2.X) == 0 {
		if p1.Y.Cmp(p2.Y) == 0 {
			return Double(c, p1)
		}
		panic("ecc: sum of inverse points is the point at infinity")
	}
	pm := c.BaseModulus()

	// λ = (y2 − y1) / (x2 − x1)
	num := new(big.Int).Sub(p2.Y, p1.Y)
	den := new(big.Int).Sub(p2.X, p1.X)
	lambda := num.Mul(num, modInverse(den, pm))
	lambda.Mod(lambda, pm)

	// x' = λ² − x1 − x2
	xr := new(big.Int).Mul(lambda, lambda)
	xr.Sub(xr, p1.X).Sub(xr, p2.X).Mod(xr, pm)

	// y' = λ(x1 − x') − y1
	yr := new(big.Int).Sub(p1.X, xr)
	yr.Mul(yr, lambda).Sub(yr, p1.Y).Mod(yr, pm)

	return Point{X: xr, Y: yr}
}

// ScalarMul returns k·p by double-and-add over the bits of k, most significant
// first. It panics when k ≡ 0, since the result would be the identity.
func ScalarMul(c Curve, k *big.Int, p Point) Point {
	kk := new(big.Int).Mod(k, c.ScalarModulus())
	if kk.Sign() == 0 {
		panic("ecc: scalar multiplication by zero")
	}
	acc := Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
	for i := kk.BitLen() - 2; i >= 0; i-- {
		acc = Double(c, acc)
		if kk.Bit(i) == 1 {
			acc = Add(c, acc, p)
		}
	}
	return acc
}

// Neg returns −p, i.e. (x, −y).
func Neg(c Curve, p Point) Point {
	y := new(big.Int).Neg(p.Y)
	y.Mod(y, c.BaseModulus())
	return Point{X: new(big.Int).Set(p.X), Y: y}
}

func modInverse(a, m *big.Int) *big.Int {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		panic("no inverse")
	}
	return inv
}
