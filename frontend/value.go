package frontend

import "math/big"

// Value is a witness value that may not be resolved yet. During the
// structure-only synthesis pass every Value is unknown; during the witness
// pass concrete field elements flow through the combinators. Combinators on
// unknown values never invoke their closure.
type Value struct {
	v     *big.Int
	known bool
}

// Known wraps a resolved field element.
func Known(v *big.Int) Value {
	return Value{v: v, known: true}
}

// Unknown returns an unresolved Value.
func Unknown() Value {
	return Value{}
}

// IsKnown reports whether v is resolved.
func (v Value) IsKnown() bool { return v.known }

// Get returns the underlying element and whether it is resolved.
func (v Value) Get() (*big.Int, bool) { return v.v, v.known }

// Map applies f to the underlying element, propagating unknown-ness.
func (v Value) Map(f func(*big.Int) *big.Int) Value {
	if !v.known {
		return Unknown()
	}
	return Known(f(v.v))
}

// Zip combines v and o through f, unknown if either operand is unknown.
func (v Value) Zip(o Value, f func(a, b *big.Int) *big.Int) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	return Known(f(v.v, o.v))
}
