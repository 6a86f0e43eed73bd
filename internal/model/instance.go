package model

import "math/big"

// Instance bundles physical machines, jobs, the current mapping (possibly
// empty), and the migration budget as a percentile of total memory.
type Instance struct {
	PMs                 []PhysicalMachine
	Jobs                []Job
	Current             Mapping
	MigrationPercentile *big.Rat // in [0, 1]
}

// AllVMs returns every VM across every job, in job order then VM order —
// the canonical enumeration order used for encoder variable indexing and
// the population dump's placement encoding, so that results are
// reproducible.
func (inst Instance) AllVMs() []VirtualMachine {
	var out []VirtualMachine
	for _, j := range inst.Jobs {
		out = append(out, j.VMs...)
	}
	return out
}

// TotalMemCapacity sums the memory capacity of every PM.
func (inst Instance) TotalMemCapacity() int64 {
	var total int64
	for _, p := range inst.PMs {
		total += p.Mem
	}
	return total
}

// MaxMigrationMem returns the migration budget in memory units:
// MigrationPercentile × TotalMemCapacity, floored to an integer (migration
// cost is always compared against this as an upper bound, so flooring is
// conservative rather than permissive).
func (inst Instance) MaxMigrationMem() int64 {
	if inst.MigrationPercentile == nil {
		return inst.TotalMemCapacity()
	}
	total := new(big.Int).SetInt64(inst.TotalMemCapacity())
	budget := new(big.Rat).Mul(inst.MigrationPercentile, new(big.Rat).SetInt(total))
	q := new(big.Int).Quo(budget.Num(), budget.Denom())
	return q.Int64()
}

// PMByID returns the PM with the given id, or false if none exists.
func (inst Instance) PMByID(id int) (PhysicalMachine, bool) {
	for _, p := range inst.PMs {
		if p.ID == id {
			return p, true
		}
	}
	return PhysicalMachine{}, false
}
