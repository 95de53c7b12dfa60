package ecc

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// GenerateKey returns a random private scalar in [1, r−1] and the matching
// public key priv·G.
func GenerateKey(c Curve, rng io.Reader) (priv *big.Int, pub Point, err error) {
	priv, err = RandomScalar(c, rng)
	if err != nil {
		return nil, Point{}, fmt.Errorf("generating private key: %w", err)
	}
	return priv, ScalarMul(c, priv, c.Generator()), nil
}

// Sign produces an ECDSA signature (r, s) of hash under priv:
//
//	R = k·G, r = R.x mod n, s = k⁻¹(hash + r·priv) mod n
//
// for a fresh random nonce k. Nonces yielding r = 0 or s = 0 are retried.
func Sign(c Curve, priv, hash *big.Int, rng io.Reader) (r, s *big.Int, err error) {
	n := c.ScalarModulus()
	for {
		k, err := RandomScalar(c, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("generating nonce: %w", err)
		}
		R := ScalarMul(c, k, c.Generator())
		r = new(big.Int).Mod(R.X, n)
		if r.Sign() == 0 {
			continue
		}
		s = new(big.Int).Mul(r, priv)
		s.Add(s, hash)
		s.Mul(s, new(big.Int).ModInverse(k, n))
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}
		return r, s, nil
	}
}

// Verify checks an ECDSA signature natively (out of circuit):
//
//	u1 = hash·s⁻¹, u2 = r·s⁻¹, R' = u1·G + u2·pub, accept iff r = R'.x mod n
func Verify(c Curve, pub Point, hash, r, s *big.Int) bool {
	n := c.ScalarModulus()
	if r.Sign() == 0 || s.Sign() == 0 {
		return false
	}
	w := new(big.Int).ModInverse(s, n)
	if w == nil {
		return false
	}
	u1 := new(big.Int).Mul(hash, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, n)
	R := Add(c, ScalarMul(c, u1, c.Generator()), ScalarMul(c, u2, pub))
	return new(big.Int).Mod(R.X, n).Cmp(r) == 0
}

// HashToScalar hashes msg with SHA3-256 and reduces the digest into the
// scalar field of c.
func HashToScalar(c Curve, msg []byte) *big.Int {
	digest := sha3.Sum256(msg)
	h := new(big.Int).SetBytes(digest[:])
	return h.Mod(h, c.ScalarModulus())
}

// RandomScalar returns a uniformly random element of [1, r−1].
func RandomScalar(c Curve, rng io.Reader) (*big.Int, error) {
	max := new(big.Int).Sub(c.ScalarModulus(), big.NewInt(1))
	k, err := rand.Int(rng, max)
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}
