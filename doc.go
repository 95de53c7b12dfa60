// Package zkvmbenchmark provides a PLONKish arithmetization of ECDSA signature
// verification and benchmark scaffolds for several zero-knowledge proving systems.
//
// The repository is organized as follows:
//   - ecc declares the curves the circuit is generic over (Pallas, Vesta, secp256k1)
//     and the native group and signature operations used by the harness
//   - frontend declares the constraint-system builder: columns, selectors, gates,
//     regions and lazily resolved witness values
//   - std/ecdsa is the signature-verification circuit itself
//   - test runs circuits against a mock evaluation engine
//   - benchmark and cmd/* hold the per-proving-system metrics scaffolds
package zkvmbenchmark

import (
	"github.com/blang/semver/v4"
)

// Version of the module; serialized constraint systems embed it in their header.
var Version = semver.MustParse("0.1.0")
