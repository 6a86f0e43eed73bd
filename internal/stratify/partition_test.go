package stratify

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmcwm/vmcwm/internal/objective"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
)

func ratOf(n int64) *big.Rat { return big.NewRat(n, 1) }

func terms(weights ...int64) []objective.IntTerm {
	out := make([]objective.IntTerm, len(weights))
	for i, w := range weights {
		out[i] = objective.IntTerm{Lit: pbsolver.Lit(i + 1), Weight: w}
	}
	return out
}

func TestLWR_OpensPartitionAtRatio(t *testing.T) {
	parts := LWR(terms(5, 5, 5, 3, 3, 1), 2)
	require.NotEmpty(t, parts)
	// The first two 5s reach 2 literals / 1 distinct weight = ratio 2 and
	// close the first partition.
	assert.Len(t, parts[0].Literals, 2)
	for i := 1; i < len(parts); i++ {
		prev := parts[i-1].Literals
		assert.GreaterOrEqual(t, prev[len(prev)-1].Weight, parts[i].Literals[0].Weight)
	}
	var total int
	for _, p := range parts {
		total += len(p.Literals)
	}
	assert.Equal(t, 6, total)
}

func TestLWR_Empty(t *testing.T) {
	assert.Nil(t, LWR(nil, 2))
}

func TestFixedPartition_CountAndOrder(t *testing.T) {
	parts := FixedPartition(terms(10, 8, 6, 4, 2), 3)
	assert.LessOrEqual(t, len(parts), 3)
	var total int
	for _, p := range parts {
		total += len(p.Literals)
	}
	assert.Equal(t, 5, total)
	for i := 1; i < len(parts); i++ {
		assert.GreaterOrEqual(t, parts[i-1].Literals[0].Weight, parts[i].Literals[0].Weight)
	}
}

func TestFixedPartition_NExceedsLen(t *testing.T) {
	parts := FixedPartition(terms(1, 2), 10)
	assert.Len(t, parts, 2)
}

func TestFold(t *testing.T) {
	a := Partition{Literals: terms(3), Optimal: false}
	b := Partition{Literals: terms(1), Optimal: true}
	folded := Fold(a, b)
	assert.False(t, folded.Optimal)
	assert.Len(t, folded.Literals, 2)
}

func TestMerged(t *testing.T) {
	mgr := objective.NewManager()
	mgr.Set(objective.New("num").Add(objective.Term{Lit: 1, Weight: ratOf(2)}))
	mgr.Set(objective.New("den").Add(objective.Term{Lit: 2, Weight: ratOf(3)}))

	parts, err := Merged(mgr, "num", "den", Mode{Ratio: 2})
	require.NoError(t, err)
	var total int
	for _, p := range parts {
		total += len(p.Literals)
	}
	assert.Equal(t, 2, total)
}

func TestSplitStream_DrainsBoth(t *testing.T) {
	mgr := objective.NewManager()
	mgr.Set(objective.New("num").Add(objective.Term{Lit: 1, Weight: ratOf(10)}, objective.Term{Lit: 2, Weight: ratOf(1)}))
	mgr.Set(objective.New("den").Add(objective.Term{Lit: 3, Weight: ratOf(5)}))

	stream, err := Split(mgr, "num", "den", Mode{Ratio: 1})
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	var gotNum, gotDen int
	for {
		_, fromNum, ok := stream.Next(r)
		if !ok {
			break
		}
		if fromNum {
			gotNum++
		} else {
			gotDen++
		}
	}
	assert.Equal(t, 2, gotNum)
	assert.Equal(t, 1, gotDen)
}
