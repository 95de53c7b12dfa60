package frontend

import "math/big"

// ColumnKind discriminates cell references across column families.
type ColumnKind uint8

const (
	KindAdvice ColumnKind = iota
	KindInstance
)

// Column is implemented by Advice and Instance column handles.
type Column interface {
	kind() ColumnKind
	Index() int
}

// Advice is a private witness column.
type Advice struct {
	index int
}

func (c Advice) kind() ColumnKind { return KindAdvice }

// Index returns the column index within the advice family.
func (c Advice) Index() int { return c.index }

// Instance is a public input column, populated by the verifier side.
type Instance struct {
	index int
}

func (c Instance) kind() ColumnKind { return KindInstance }

// Index returns the column index within the instance family.
func (c Instance) Index() int { return c.index }

// Selector is a per-row boolean flag activating gates.
type Selector struct {
	index int
}

// Index returns the selector index.
func (s Selector) Index() int { return s.index }

// Gate is a named set of polynomial identities, active wherever its selector
// queries evaluate to 1.
type Gate struct {
	Name  string
	Polys []Expression
}

// ConstraintSystem collects the circuit shape: columns, selectors, equality
// permissions and gates. It holds no witness data.
type ConstraintSystem struct {
	modulus *big.Int

	nbAdvice    int
	nbInstance  int
	nbSelectors int

	adviceEquality   map[int]struct{}
	instanceEquality map[int]struct{}

	gates []Gate
}

// NewConstraintSystem returns an empty shape over the prime field of the
// given modulus.
func NewConstraintSystem(modulus *big.Int) *ConstraintSystem {
	return &ConstraintSystem{
		modulus:          new(big.Int).Set(modulus),
		adviceEquality:   make(map[int]struct{}),
		instanceEquality: make(map[int]struct{}),
	}
}

// Modulus returns the field modulus the shape is defined over.
func (cs *ConstraintSystem) Modulus() *big.Int { return new(big.Int).Set(cs.modulus) }

// AdviceColumn allocates a new advice column.
func (cs *ConstraintSystem) AdviceColumn() Advice {
	c := Advice{index: cs.nbAdvice}
	cs.nbAdvice++
	return c
}

// InstanceColumn allocates a new instance column.
func (cs *ConstraintSystem) InstanceColumn() Instance {
	c := Instance{index: cs.nbInstance}
	cs.nbInstance++
	return c
}

// Selector allocates a new selector.
func (cs *ConstraintSystem) Selector() Selector {
	s := Selector{index: cs.nbSelectors}
	cs.nbSelectors++
	return s
}

// EnableEquality allows cells of the column to participate in copy
// constraints.
func (cs *ConstraintSystem) EnableEquality(c Column) {
	switch c.kind() {
	case KindAdvice:
		cs.adviceEquality[c.Index()] = struct{}{}
	case KindInstance:
		cs.instanceEquality[c.Index()] = struct{}{}
	}
}

// EqualityEnabled reports whether the column accepts copy constraints.
func (cs *ConstraintSystem) EqualityEnabled(c Column) bool {
	switch c.kind() {
	case KindAdvice:
		_, ok := cs.adviceEquality[c.Index()]
		return ok
	case KindInstance:
		_, ok := cs.instanceEquality[c.Index()]
		return ok
	}
	return false
}

// CreateGate registers a named gate. The callback builds the identity
// polynomials from column queries.
func (cs *ConstraintSystem) CreateGate(name string, f func(q *Queries) []Expression) {
	cs.gates = append(cs.gates, Gate{Name: name, Polys: f(&Queries{})})
}

// Gates returns the registered gates.
func (cs *ConstraintSystem) Gates() []Gate { return cs.gates }

// NbAdvice returns the number of advice columns.
func (cs *ConstraintSystem) NbAdvice() int { return cs.nbAdvice }

// NbInstance returns the number of instance columns.
func (cs *ConstraintSystem) NbInstance() int { return cs.nbInstance }

// NbSelectors returns the number of selectors.
func (cs *ConstraintSystem) NbSelectors() int { return cs.nbSelectors }

// Queries builds gate expressions from column handles; passed to the
// CreateGate callback.
type Queries struct{}

// Advice queries an advice column at the current row.
func (q *Queries) Advice(c Advice) Expression { return AdviceQuery{Column: c.index} }

// Instance queries an instance column at the current row.
func (q *Queries) Instance(c Instance) Expression { return InstanceQuery{Column: c.index} }

// Selector queries a selector at the current row.
func (q *Queries) Selector(s Selector) Expression { return SelectorQuery{Selector: s.index} }
