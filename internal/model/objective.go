package model

import (
	"fmt"
	"math/big"

	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// ObjectiveVector is the triple (energy, wastage, migration) a placement is
// scored on. Energy and wastage are rationals (never compared as floating
// point, per spec.md §9); migration is an exact integer memory count.
type ObjectiveVector struct {
	Energy    *big.Rat
	Wastage   *big.Rat
	Migration int64
}

// ZeroVector returns the additive identity objective vector.
func ZeroVector() ObjectiveVector {
	return ObjectiveVector{Energy: new(big.Rat), Wastage: new(big.Rat), Migration: 0}
}

// LessOrEqual reports whether every component of v is ≤ the matching
// component of other.
func (v ObjectiveVector) LessOrEqual(other ObjectiveVector) bool {
	return v.Energy.Cmp(other.Energy) <= 0 &&
		v.Wastage.Cmp(other.Wastage) <= 0 &&
		v.Migration <= other.Migration
}

// Equal reports whether v and other have identical components.
func (v ObjectiveVector) Equal(other ObjectiveVector) bool {
	return v.Energy.Cmp(other.Energy) == 0 &&
		v.Wastage.Cmp(other.Wastage) == 0 &&
		v.Migration == other.Migration
}

// Dominates reports whether v Pareto-dominates other: v ⪯ other
// componentwise, and strictly less in at least one component.
func (v ObjectiveVector) Dominates(other ObjectiveVector) bool {
	return v.LessOrEqual(other) && !v.Equal(other)
}

func (v ObjectiveVector) String() string {
	return fmt.Sprintf("e=%s w=%s m=%d", v.Energy.RatString(), v.Wastage.RatString(), v.Migration)
}

// perPMUsage accumulates demand for one PM across a placement.
type perPMUsage struct {
	cpu, mem int64
}

func usageByPM(inst Instance, placement Mapping) map[int]perPMUsage {
	usage := make(map[int]perPMUsage)
	for _, vm := range inst.AllVMs() {
		pmID, ok := placement.Get(vm.Key)
		if !ok {
			continue
		}
		u := usage[pmID]
		u.cpu += vm.CPU
		u.mem += vm.Mem
		usage[pmID] = u
	}
	return usage
}

// Evaluate computes the reference objective vector for placement against
// inst, independent of (and checked against) the PB-encoded model's own
// objective computation (spec.md §4.1 guarantee (ii)). It does not itself
// validate feasibility; call ValidatePlacement for that.
func Evaluate(inst Instance, placement Mapping) ObjectiveVector {
	usage := usageByPM(inst, placement)

	energy := new(big.Rat)
	wastage := new(big.Rat)

	for _, pm := range inst.PMs {
		u, used := usage[pm.ID]
		if !used || (u.cpu == 0 && u.mem == 0) {
			continue
		}

		cpuUtil := new(big.Rat)
		if pm.CPU > 0 {
			cpuUtil.SetFrac64(u.cpu, pm.CPU)
		}
		memUtil := new(big.Rat)
		if pm.Mem > 0 {
			memUtil.SetFrac64(u.mem, pm.Mem)
		}
		util := cpuUtil
		if memUtil.Cmp(cpuUtil) > 0 {
			util = memUtil
		}

		delta := new(big.Rat).Sub(pm.Full, pm.Idle)
		pmEnergy := new(big.Rat).Add(pm.Idle, new(big.Rat).Mul(util, delta))
		energy.Add(energy, pmEnergy)

		leftoverCPU := pm.CPU - u.cpu
		leftoverMem := pm.Mem - u.mem
		diff := leftoverCPU - leftoverMem
		if diff < 0 {
			diff = -diff
		}
		usedTotal := u.cpu + u.mem
		if usedTotal > 0 {
			pmWastage := new(big.Rat).SetFrac64(diff, usedTotal)
			wastage.Add(wastage, pmWastage)
		}
	}

	var migration int64
	for _, vm := range inst.AllVMs() {
		cur, hadCurrent := inst.Current.Get(vm.Key)
		if !hadCurrent {
			continue
		}
		if newPM, ok := placement.Get(vm.Key); ok && newPM != cur {
			migration += vm.Mem
		}
	}

	return ObjectiveVector{Energy: energy, Wastage: wastage, Migration: migration}
}

// ValidatePlacement checks placement against every invariant in spec.md
// §3: exactly one PM per VM, capacity, anti-colocation, platform, and
// migration-budget feasibility. Returns vmerr.ErrInstanceInfeasible
// wrapped with a diagnostic on the first violation found.
func ValidatePlacement(inst Instance, placement Mapping) error {
	usage := usageByPM(inst, placement)

	for _, vm := range inst.AllVMs() {
		pmID, ok := placement.Get(vm.Key)
		if !ok {
			return fmt.Errorf("%w: vm %s/%d has no assignment", vmerr.ErrInstanceInfeasible, vm.Key.JobID, vm.Key.Index)
		}
		if _, exists := inst.PMByID(pmID); !exists {
			return fmt.Errorf("%w: vm %s/%d assigned to unknown pm %d", vmerr.ErrInstanceInfeasible, vm.Key.JobID, vm.Key.Index, pmID)
		}
		if !vm.IsAllowed(pmID) {
			return fmt.Errorf("%w: vm %s/%d assigned to disallowed pm %d", vmerr.ErrInstanceInfeasible, vm.Key.JobID, vm.Key.Index, pmID)
		}
	}

	for _, pm := range inst.PMs {
		u := usage[pm.ID]
		if u.cpu > pm.CPU {
			return fmt.Errorf("%w: pm %d cpu overflow (%d > %d)", vmerr.ErrInstanceInfeasible, pm.ID, u.cpu, pm.CPU)
		}
		if u.mem > pm.Mem {
			return fmt.Errorf("%w: pm %d mem overflow (%d > %d)", vmerr.ErrInstanceInfeasible, pm.ID, u.mem, pm.Mem)
		}
	}

	for _, job := range inst.Jobs {
		seen := make(map[int]VMKey)
		for _, key := range job.AntiColocatedGroup() {
			pmID, ok := placement.Get(key)
			if !ok {
				continue
			}
			if other, clash := seen[pmID]; clash {
				return fmt.Errorf("%w: anti-colocated vms %s/%d and %s/%d share pm %d",
					vmerr.ErrInstanceInfeasible, other.JobID, other.Index, key.JobID, key.Index, pmID)
			}
			seen[pmID] = key
		}
	}

	v := Evaluate(inst, placement)
	budget := inst.MaxMigrationMem()
	if v.Migration > budget {
		return fmt.Errorf("%w: migration cost %d exceeds budget %d", vmerr.ErrInstanceInfeasible, v.Migration, budget)
	}

	return nil
}
