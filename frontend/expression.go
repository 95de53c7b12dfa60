package frontend

import "math/big"

// Wiring resolves column queries at a given row. Unassigned cells resolve to
// zero, matching the behavior of a real prover's zero-padded tables.
type Wiring interface {
	Advice(column, row int) *big.Int
	Instance(column, row int) *big.Int
	Selector(selector, row int) *big.Int
}

// Expression is a polynomial over column queries and constants. A gate's
// identities are Expressions that must evaluate to zero at every
// selector-enabled row.
type Expression interface {
	Eval(w Wiring, row int, mod *big.Int) *big.Int
}

// Constant is a fixed field element.
type Constant struct {
	Value *big.Int
}

// AdviceQuery reads an advice column at the current row.
type AdviceQuery struct {
	Column int
}

// InstanceQuery reads an instance column at the current row.
type InstanceQuery struct {
	Column int
}

// SelectorQuery reads a selector at the current row, as 0 or 1.
type SelectorQuery struct {
	Selector int
}

// Sum is A + B.
type Sum struct {
	A, B Expression
}

// Product is A · B.
type Product struct {
	A, B Expression
}

// Negated is −A.
type Negated struct {
	A Expression
}

func (e Constant) Eval(_ Wiring, _ int, mod *big.Int) *big.Int {
	return new(big.Int).Mod(e.Value, mod)
}

func (e AdviceQuery) Eval(w Wiring, row int, mod *big.Int) *big.Int {
	return new(big.Int).Mod(w.Advice(e.Column, row), mod)
}

func (e InstanceQuery) Eval(w Wiring, row int, mod *big.Int) *big.Int {
	return new(big.Int).Mod(w.Instance(e.Column, row), mod)
}

func (e SelectorQuery) Eval(w Wiring, row int, _ *big.Int) *big.Int {
	return w.Selector(e.Selector, row)
}

func (e Sum) Eval(w Wiring, row int, mod *big.Int) *big.Int {
	r := new(big.Int).Add(e.A.Eval(w, row, mod), e.B.Eval(w, row, mod))
	return r.Mod(r, mod)
}

func (e Product) Eval(w Wiring, row int, mod *big.Int) *big.Int {
	r := new(big.Int).Mul(e.A.Eval(w, row, mod), e.B.Eval(w, row, mod))
	return r.Mod(r, mod)
}

func (e Negated) Eval(w Wiring, row int, mod *big.Int) *big.Int {
	r := new(big.Int).Neg(e.A.Eval(w, row, mod))
	return r.Mod(r, mod)
}

// Const wraps v as a constant Expression.
func Const(v *big.Int) Expression { return Constant{Value: v} }

// Add returns a + b.
func Add(a, b Expression) Expression { return Sum{A: a, B: b} }

// Sub returns a − b.
func Sub(a, b Expression) Expression { return Sum{A: a, B: Neg(b)} }

// Mul returns a · b.
func Mul(a, b Expression) Expression { return Product{A: a, B: b} }

// Neg returns −a.
func Neg(a Expression) Expression { return Negated{A: a} }
