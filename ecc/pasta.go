package ecc

import "math/big"

// The Pasta curves form a 2-cycle: the base field of one is the scalar field
// of the other. Both have b = 5 and generator (−1, 2).
//
//	Pallas base: 0x40000000000000000000000000000000224698fc094cf91b992d30ed00000001
//	Vesta base:  0x40000000000000000000000000000000224698fc0994a8dd8c46eb2100000001
var (
	pallasP = mustHex("40000000000000000000000000000000224698fc094cf91b992d30ed00000001")
	vestaP  = mustHex("40000000000000000000000000000000224698fc0994a8dd8c46eb2100000001")

	pallas = &curve{
		id:   "pallas",
		p:    pallasP,
		r:    vestaP,
		b:    big.NewInt(5),
		gx:   new(big.Int).Sub(pallasP, big.NewInt(1)),
		gy:   big.NewInt(2),
		bits: vestaP.BitLen(),
	}
	vesta = &curve{
		id:   "vesta",
		p:    vestaP,
		r:    pallasP,
		b:    big.NewInt(5),
		gx:   new(big.Int).Sub(vestaP, big.NewInt(1)),
		gy:   big.NewInt(2),
		bits: pallasP.BitLen(),
	}
)

// Pallas returns the Pallas curve.
func Pallas() Curve { return pallas }

// Vesta returns the Vesta curve.
func Vesta() Curve { return vesta }

// Sister returns the other member of a curve's 2-cycle: the curve defined by
// the same equation over the scalar field of c, whose own scalar field is the
// base field of c. Curves outside a known cycle return false.
func Sister(c Curve) (Curve, bool) {
	switch c.ID() {
	case "pallas":
		return vesta, true
	case "vesta":
		return pallas, true
	}
	return nil, false
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: invalid hex constant")
	}
	return v
}
