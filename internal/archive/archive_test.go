package archive

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmcwm/vmcwm/internal/model"
)

func vec(e, w int64, m int64) model.ObjectiveVector {
	return model.ObjectiveVector{Energy: big.NewRat(e, 1), Wastage: big.NewRat(w, 1), Migration: m}
}

func TestArchive_InsertDominatedDuplicate(t *testing.T) {
	a := New()

	assert.Equal(t, Inserted, a.Insert(vec(5, 5, 5), model.Mapping{}))
	assert.Equal(t, Duplicate, a.Insert(vec(5, 5, 5), model.Mapping{}))

	// Strictly worse in every dimension: dominated, rejected.
	assert.Equal(t, Dominated, a.Insert(vec(6, 6, 6), model.Mapping{}))

	// Strictly better in every dimension: inserted, and prunes the first.
	assert.Equal(t, Inserted, a.Insert(vec(1, 1, 1), model.Mapping{}))
	assert.Equal(t, 1, a.Len())

	entries := a.Iter()
	assert.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Vector.Energy.Cmp(big.NewRat(1, 1)))
}

func TestArchive_IncomparableBothSurvive(t *testing.T) {
	a := New()
	assert.Equal(t, Inserted, a.Insert(vec(1, 5, 0), model.Mapping{}))
	assert.Equal(t, Inserted, a.Insert(vec(5, 1, 0), model.Mapping{}))
	assert.Equal(t, 2, a.Len())
}

func TestArchive_Contains(t *testing.T) {
	a := New()
	v := vec(2, 2, 2)
	a.Insert(v, model.Mapping{})
	assert.True(t, a.Contains(v))
	assert.False(t, a.Contains(vec(3, 3, 3)))
}

func TestArchive_RebuildPreservesOrder(t *testing.T) {
	a := New()
	for i := int64(40); i > 0; i-- {
		a.Insert(vec(i, i, i), model.Mapping{})
	}
	// Every later insert dominates every earlier one here, so only the
	// last (lowest-valued) entry should remain live, and a rebuild should
	// have fired at least once given minRebuildThreshold.
	entries := a.Iter()
	assert.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Vector.Energy.Cmp(big.NewRat(1, 1)))
}

func TestCone_Forbids(t *testing.T) {
	c := Cone{Ref: vec(1, 1, 1)}
	assert.True(t, c.Forbids(vec(2, 2, 2)))
	assert.False(t, c.Forbids(vec(1, 1, 1)))
	assert.False(t, c.Forbids(vec(0, 2, 2)))
}
