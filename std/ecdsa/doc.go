// Package ecdsa implements in-circuit ECDSA signature verification over the
// Pasta 2-cycle.
//
// The circuit is parametrized by the curve whose scalar field carries the
// wires (e.g. Pallas). The signature itself lives on the sister curve of the
// cycle (Vesta for a Pallas-parametrized circuit): its coordinate field is the
// wire field, so the affine chord-tangent formulas evaluated on the wires are
// genuine group operations, and its scalar field is the coordinate field of
// the parametrizing curve, so r, s and the message hash cross into the wires
// through the base-to-scalar bridge.
//
// Verification follows the textbook equation: u1 = hash·s⁻¹ and u2 = r·s⁻¹
// over the signature's scalar field, R = u1·G + u2·PK by double-and-add over
// the wires, accept iff r = R.x. The single verification gate enforces, on
// its enabled row,
//
//	s·w − 1 = 0        (s is invertible, w its witnessed inverse)
//	y² − x³ − b = 0    (the recovered point lies on the curve)
//	r − x = 0          (its x-coordinate equals r)
//
// and copy constraints tie the gate row to the cells the rest of the layout
// produced.
//
// Affine-only arithmetic carries preconditions rather than edge handling:
// doubling a point with y = 0, adding points sharing an x-coordinate and
// multiplying by a scalar ≡ 0 all panic. Callers supply inputs for which the
// flow never reaches those cases; for random signatures the probability of
// hitting one is negligible.
package ecdsa
