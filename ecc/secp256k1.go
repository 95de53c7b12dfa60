package ecc

import (
	"math/big"

	fp_secp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	fr_secp "github.com/consensys/gnark-crypto/ecc/secp256k1/fr"
)

// secp256k1 has b = 7; field moduli come from gnark-crypto.
var secp256k1 = &curve{
	id:   "secp256k1",
	p:    fp_secp.Modulus(),
	r:    fr_secp.Modulus(),
	b:    big.NewInt(7),
	gx:   mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
	gy:   mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	bits: fr_secp.Modulus().BitLen(),
}

// Secp256k1 returns the secp256k1 curve.
func Secp256k1() Curve { return secp256k1 }
