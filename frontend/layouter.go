package frontend

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/rosemary-crypto/zkvm-benchmark/logger"
)

// Cell references a (column, row) location in the assignment tables.
type Cell struct {
	Kind   ColumnKind
	Column int
	Row    int
}

// AssignedCell is a Cell together with its (possibly unresolved) value.
type AssignedCell struct {
	cell Cell
	val  Value
}

// Cell returns the referenced location.
func (a AssignedCell) Cell() Cell { return a.cell }

// Value returns the assigned value.
func (a AssignedCell) Value() Value { return a.val }

// RegionInfo describes a placed region, for diagnostics.
type RegionInfo struct {
	Name  string
	Index int
	Start int
	Rows  int
}

// layoutState is the assignment context shared by a layouter and its
// namespaces: row cursor, witness tables, selector activations, copy
// constraints and region bookkeeping. It is recreated for every synthesis
// call; nothing here outlives the circuit instance.
type layoutState struct {
	cs       *ConstraintSystem
	instance [][]*big.Int

	advice    map[int]map[int]*big.Int
	selectors map[int]map[int]struct{}
	copies    [][2]Cell

	regions []RegionInfo
	cursor  int
}

// Layouter places regions and records witness assignments. Namespaces share
// the underlying state and only extend the human-readable scope used in
// region names.
type Layouter struct {
	st    *layoutState
	scope []string
}

// NewLayouter returns a Layouter over a fresh assignment for the given shape.
// instance holds the public values, indexed by instance column then row.
func NewLayouter(cs *ConstraintSystem, instance [][]*big.Int) *Layouter {
	return &Layouter{
		st: &layoutState{
			cs:        cs,
			instance:  instance,
			advice:    make(map[int]map[int]*big.Int),
			selectors: make(map[int]map[int]struct{}),
		},
	}
}

// Namespace returns a layouter sharing the same assignment under an extended
// scope name.
func (l *Layouter) Namespace(name string) *Layouter {
	scope := make([]string, len(l.scope), len(l.scope)+1)
	copy(scope, l.scope)
	return &Layouter{st: l.st, scope: append(scope, name)}
}

// AssignRegion places a new region at the current row cursor and runs f on
// it. The cursor advances past the region's highest assigned row, so regions
// never overlap.
func (l *Layouter) AssignRegion(name string, f func(r *Region) error) error {
	full := name
	if len(l.scope) > 0 {
		full = strings.Join(l.scope, "/") + "/" + name
	}
	region := &Region{st: l.st, start: l.st.cursor}
	if err := f(region); err != nil {
		return fmt.Errorf("region %q: %w", full, err)
	}
	info := RegionInfo{
		Name:  full,
		Index: len(l.st.regions),
		Start: region.start,
		Rows:  region.height,
	}
	l.st.regions = append(l.st.regions, info)
	l.st.cursor += region.height
	log := logger.Logger()
	log.Trace().Str("region", full).Int("start", info.Start).Int("rows", info.Rows).Msg("region placed")
	return nil
}

// Rows returns the total number of rows occupied by placed regions.
func (l *Layouter) Rows() int { return l.st.cursor }

// Regions returns the placed regions in placement order.
func (l *Layouter) Regions() []RegionInfo { return l.st.regions }

// RegionAt returns the region covering the given absolute row.
func (l *Layouter) RegionAt(row int) (RegionInfo, bool) {
	for _, info := range l.st.regions {
		if row >= info.Start && row < info.Start+info.Rows {
			return info, true
		}
	}
	return RegionInfo{}, false
}

// AdviceValue returns the value assigned to an advice cell, if any.
func (l *Layouter) AdviceValue(column, row int) (*big.Int, bool) {
	v, ok := l.st.advice[column][row]
	return v, ok
}

// InstanceValue returns the public value of an instance cell, if provided.
func (l *Layouter) InstanceValue(column, row int) (*big.Int, bool) {
	if column >= len(l.st.instance) || row >= len(l.st.instance[column]) {
		return nil, false
	}
	return l.st.instance[column][row], true
}

// SelectorEnabled reports whether the selector is active at the given row.
func (l *Layouter) SelectorEnabled(selector, row int) bool {
	_, ok := l.st.selectors[selector][row]
	return ok
}

// Copies returns the recorded copy constraints.
func (l *Layouter) Copies() [][2]Cell { return l.st.copies }

// Region is a named horizontal slice of the assignment, addressed by offsets
// relative to its start row. Assigning twice to the same cell overwrites it.
type Region struct {
	st     *layoutState
	start  int
	height int
}

// AssignAdvice writes a value into an advice cell of the region. An unknown
// value still reserves the cell (shape pass); only known values are stored.
func (r *Region) AssignAdvice(label string, col Advice, offset int, v Value) (AssignedCell, error) {
	if offset < 0 {
		return AssignedCell{}, fmt.Errorf("assigning %q: negative offset %d", label, offset)
	}
	r.grow(offset)
	row := r.start + offset
	if val, ok := v.Get(); ok {
		cells := r.st.advice[col.index]
		if cells == nil {
			cells = make(map[int]*big.Int)
			r.st.advice[col.index] = cells
		}
		cells[row] = new(big.Int).Mod(val, r.st.cs.modulus)
	}
	return AssignedCell{cell: Cell{Kind: KindAdvice, Column: col.index, Row: row}, val: v}, nil
}

// EnableSelector activates sel at the given offset.
func (r *Region) EnableSelector(sel Selector, offset int) error {
	if offset < 0 {
		return fmt.Errorf("enabling selector: negative offset %d", offset)
	}
	r.grow(offset)
	rows := r.st.selectors[sel.index]
	if rows == nil {
		rows = make(map[int]struct{})
		r.st.selectors[sel.index] = rows
	}
	rows[r.start+offset] = struct{}{}
	return nil
}

// ConstrainEqual records a copy constraint between two cells. Both columns
// must have equality enabled.
func (r *Region) ConstrainEqual(a, b Cell) error {
	for _, c := range [...]Cell{a, b} {
		var col Column
		switch c.Kind {
		case KindAdvice:
			col = Advice{index: c.Column}
		case KindInstance:
			col = Instance{index: c.Column}
		}
		if !r.st.cs.EqualityEnabled(col) {
			return fmt.Errorf("copy constraint on column %d (kind %d): equality not enabled", c.Column, c.Kind)
		}
	}
	r.st.copies = append(r.st.copies, [2]Cell{a, b})
	return nil
}

func (r *Region) grow(offset int) {
	if offset+1 > r.height {
		r.height = offset + 1
	}
}
