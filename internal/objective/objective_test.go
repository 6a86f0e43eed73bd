package objective

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
)

func TestReduce_CommonDenominator(t *testing.T) {
	o := New("energy").Add(
		Term{Lit: 1, Weight: big.NewRat(1, 2)},
		Term{Lit: 2, Weight: big.NewRat(1, 3)},
	)

	terms, err := o.Reduce()
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.EqualValues(t, 3, terms[0].Weight) // 1/2 * 6
	assert.EqualValues(t, 2, terms[1].Weight) // 1/3 * 6
}

func TestReduce_Overflow(t *testing.T) {
	o := New("huge").Add(Term{Lit: 1, Weight: new(big.Rat).SetFrac(
		new(big.Int).Lsh(big.NewInt(1), 60), big.NewInt(1))})
	_, err := o.Reduce()
	assert.Error(t, err)
}

func TestManager_DivisionMerged(t *testing.T) {
	m := NewManager()
	m.Set(New("wastageNum").Add(Term{Lit: pbsolver.Lit(1), Weight: big.NewRat(1, 1), Source: Numerator}))
	m.Set(New("wastageDen").Add(Term{Lit: pbsolver.Lit(2), Weight: big.NewRat(2, 1), Source: Denominator}))

	merged, err := m.DivisionMerged("wastageNum", "wastageDen")
	require.NoError(t, err)
	assert.Len(t, merged.Terms, 2)
}

func TestManager_DivisionSplit(t *testing.T) {
	m := NewManager()
	num := New("n").Add(Term{Lit: pbsolver.Lit(1), Weight: big.NewRat(1, 1)})
	den := New("d").Add(Term{Lit: pbsolver.Lit(2), Weight: big.NewRat(1, 1)})
	m.Set(num)
	m.Set(den)

	gotNum, gotDen, err := m.DivisionSplit("n", "d")
	require.NoError(t, err)
	assert.Equal(t, num, gotNum)
	assert.Equal(t, den, gotDen)
}
