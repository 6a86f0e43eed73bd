package model

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_Singleton mirrors spec.md §8 scenario 1: one PM (4/4,
// idle 1, full 3), one VM (1/1), no prior mapping.
func TestEvaluate_Singleton(t *testing.T) {
	inst := Instance{
		PMs: []PhysicalMachine{
			{ID: 1, CPU: 4, Mem: 4, Idle: big.NewRat(1, 1), Full: big.NewRat(3, 1)},
		},
		Jobs: []Job{
			{ID: "j0", VMs: []VirtualMachine{{Key: VMKey{"j0", 0}, CPU: 1, Mem: 1}}},
		},
		Current:             Mapping{},
		MigrationPercentile: big.NewRat(0, 1),
	}
	placement := Mapping{{"j0", 0}: 1}

	v := Evaluate(inst, placement)
	assert.Equal(t, 0, v.Energy.Cmp(big.NewRat(3, 2)), "energy: got %s want 3/2", v.Energy)
	assert.Equal(t, 0, v.Wastage.Cmp(new(big.Rat)), "wastage: got %s want 0", v.Wastage)
	assert.EqualValues(t, 0, v.Migration)
	require.NoError(t, ValidatePlacement(inst, placement))
}

// TestEvaluate_TightCapacityAntiColocated mirrors scenario 2: 2 PMs
// (2/2, idle 1, full 2), 2 anti-colocated VMs (2/2 each) of the same job.
func TestEvaluate_TightCapacityAntiColocated(t *testing.T) {
	inst := Instance{
		PMs: []PhysicalMachine{
			{ID: 1, CPU: 2, Mem: 2, Idle: big.NewRat(1, 1), Full: big.NewRat(2, 1)},
			{ID: 2, CPU: 2, Mem: 2, Idle: big.NewRat(1, 1), Full: big.NewRat(2, 1)},
		},
		Jobs: []Job{
			{ID: "j0", VMs: []VirtualMachine{
				{Key: VMKey{"j0", 0}, CPU: 2, Mem: 2, AntiColocate: true},
				{Key: VMKey{"j0", 1}, CPU: 2, Mem: 2, AntiColocate: true},
			}},
		},
		MigrationPercentile: big.NewRat(0, 1),
	}
	placement := Mapping{{"j0", 0}: 1, {"j0", 1}: 2}

	v := Evaluate(inst, placement)
	assert.Equal(t, 0, v.Energy.Cmp(big.NewRat(4, 1)), "energy: got %s want 4", v.Energy)
	assert.Equal(t, 0, v.Wastage.Cmp(new(big.Rat)))
	require.NoError(t, ValidatePlacement(inst, placement))

	// Co-locating both VMs on one PM violates anti-colocation and capacity.
	bad := Mapping{{"j0", 0}: 1, {"j0", 1}: 1}
	assert.Error(t, ValidatePlacement(inst, bad))
}

func TestValidatePlacement_MigrationBudgetZero(t *testing.T) {
	inst := Instance{
		PMs: []PhysicalMachine{
			{ID: 1, CPU: 4, Mem: 4, Idle: big.NewRat(1, 1), Full: big.NewRat(3, 1)},
			{ID: 2, CPU: 4, Mem: 4, Idle: big.NewRat(1, 1), Full: big.NewRat(3, 1)},
		},
		Jobs: []Job{
			{ID: "j0", VMs: []VirtualMachine{{Key: VMKey{"j0", 0}, CPU: 1, Mem: 1}}},
		},
		Current:             Mapping{{"j0", 0}: 1},
		MigrationPercentile: big.NewRat(0, 1),
	}

	stay := Mapping{{"j0", 0}: 1}
	require.NoError(t, ValidatePlacement(inst, stay))

	move := Mapping{{"j0", 0}: 2}
	assert.Error(t, ValidatePlacement(inst, move))
}

func TestObjectiveVector_Dominates(t *testing.T) {
	a := ObjectiveVector{Energy: big.NewRat(1, 1), Wastage: big.NewRat(0, 1), Migration: 0}
	b := ObjectiveVector{Energy: big.NewRat(2, 1), Wastage: big.NewRat(0, 1), Migration: 0}
	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))
	assert.False(t, a.Dominates(a))
}

func TestPhysicalMachine_AlwaysUnused(t *testing.T) {
	assert.True(t, PhysicalMachine{CPU: 0, Mem: 4}.AlwaysUnused())
	assert.True(t, PhysicalMachine{CPU: 4, Mem: 0}.AlwaysUnused())
	assert.False(t, PhysicalMachine{CPU: 4, Mem: 4}.AlwaysUnused())
}
