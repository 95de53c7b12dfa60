package ecdsa

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/rosemary-crypto/zkvm-benchmark/ecc"
)

// BaseToScalar reinterprets an element of the coordinate field of c as an
// element of its scalar field. The bits of v are decomposed little-endian,
// byte by byte, then reaccumulated most significant first, so the integer
// value is preserved exactly as long as it fits below the scalar modulus.
// For the Pasta curves the base modulus is smaller than the paired scalar
// modulus and no reduction ever occurs for canonical inputs.
func BaseToScalar(c ecc.Curve, v *big.Int) *big.Int {
	nbBits := uint(((c.BaseModulus().BitLen() + 7) / 8) * 8)
	bits := bitset.New(nbBits)
	buf := v.Bytes() // big-endian
	for i := 0; i < len(buf); i++ {
		b := buf[len(buf)-1-i]
		for j := uint(0); j < 8; j++ {
			if (b>>j)&1 == 1 {
				bits.Set(uint(i)*8 + j)
			}
		}
	}
	acc := new(big.Int)
	for i := int(nbBits) - 1; i >= 0; i-- {
		acc.Lsh(acc, 1)
		if bits.Test(uint(i)) {
			acc.Or(acc, oneBI)
		}
	}
	return acc.Mod(acc, c.ScalarModulus())
}

var oneBI = big.NewInt(1)
