package frontend

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionPlacement(t *testing.T) {
	cs := NewConstraintSystem(big.NewInt(101))
	a := cs.AdviceColumn()
	sel := cs.Selector()

	l := NewLayouter(cs, nil)

	err := l.Namespace("outer").AssignRegion("first", func(r *Region) error {
		if err := r.EnableSelector(sel, 0); err != nil {
			return err
		}
		_, err := r.AssignAdvice("v", a, 2, Known(big.NewInt(205)))
		return err
	})
	require.NoError(t, err)

	err = l.AssignRegion("second", func(r *Region) error {
		_, err := r.AssignAdvice("w", a, 0, Known(big.NewInt(9)))
		return err
	})
	require.NoError(t, err)

	require.Equal(t, 4, l.Rows())

	regions := l.Regions()
	require.Len(t, regions, 2)
	require.Equal(t, "outer/first", regions[0].Name)
	require.Equal(t, 0, regions[0].Start)
	require.Equal(t, 3, regions[0].Rows)
	require.Equal(t, "second", regions[1].Name)
	require.Equal(t, 3, regions[1].Start)

	// values reduced mod the field, placed at absolute rows
	v, ok := l.AdviceValue(a.Index(), 2)
	require.True(t, ok)
	require.Equal(t, int64(3), v.Int64()) // 205 mod 101

	v, ok = l.AdviceValue(a.Index(), 3)
	require.True(t, ok)
	require.Equal(t, int64(9), v.Int64())

	require.True(t, l.SelectorEnabled(sel.Index(), 0))
	require.False(t, l.SelectorEnabled(sel.Index(), 3))

	info, ok := l.RegionAt(3)
	require.True(t, ok)
	require.Equal(t, "second", info.Name)
}

func TestUnknownValueReservesShape(t *testing.T) {
	cs := NewConstraintSystem(big.NewInt(101))
	a := cs.AdviceColumn()
	l := NewLayouter(cs, nil)

	err := l.AssignRegion("shape", func(r *Region) error {
		_, err := r.AssignAdvice("v", a, 1, Unknown())
		return err
	})
	require.NoError(t, err)

	require.Equal(t, 2, l.Rows())
	_, assigned := l.AdviceValue(a.Index(), 1)
	require.False(t, assigned)
}

func TestConstrainEqualRequiresEquality(t *testing.T) {
	cs := NewConstraintSystem(big.NewInt(101))
	a := cs.AdviceColumn()
	b := cs.AdviceColumn()
	cs.EnableEquality(a)

	l := NewLayouter(cs, nil)
	err := l.AssignRegion("copies", func(r *Region) error {
		ca, err := r.AssignAdvice("a", a, 0, Known(big.NewInt(1)))
		if err != nil {
			return err
		}
		cb, err := r.AssignAdvice("b", b, 0, Known(big.NewInt(1)))
		if err != nil {
			return err
		}
		return r.ConstrainEqual(ca.Cell(), cb.Cell())
	})
	require.ErrorContains(t, err, "equality not enabled")

	cs.EnableEquality(b)
	l = NewLayouter(cs, nil)
	err = l.AssignRegion("copies", func(r *Region) error {
		ca, err := r.AssignAdvice("a", a, 0, Known(big.NewInt(1)))
		if err != nil {
			return err
		}
		cb, err := r.AssignAdvice("b", b, 0, Known(big.NewInt(1)))
		if err != nil {
			return err
		}
		return r.ConstrainEqual(ca.Cell(), cb.Cell())
	})
	require.NoError(t, err)
	require.Len(t, l.Copies(), 1)
}
