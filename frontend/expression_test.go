package frontend

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNegEvaluatesModularly(t *testing.T) {
	mod := big.NewInt(101)
	w := tableWiring{
		advice: map[[2]int]*big.Int{{0, 0}: big.NewInt(3)},
	}
	q := &Queries{}
	a := q.Advice(Advice{index: 0})

	require.Equal(t, int64(98), Neg(a).Eval(w, 0, mod).Int64())
	require.Zero(t, Neg(Const(big.NewInt(0))).Eval(w, 0, mod).Sign())
}

func TestSubNegatesSecondOperand(t *testing.T) {
	mod := big.NewInt(101)
	w := tableWiring{
		advice: map[[2]int]*big.Int{{0, 0}: big.NewInt(3), {1, 0}: big.NewInt(10)},
	}
	q := &Queries{}
	a, b := q.Advice(Advice{index: 0}), q.Advice(Advice{index: 1})

	require.Equal(t, int64(94), Sub(a, b).Eval(w, 0, mod).Int64())
	require.Equal(t, int64(7), Sub(b, a).Eval(w, 0, mod).Int64())
}
