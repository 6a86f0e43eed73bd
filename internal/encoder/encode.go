package encoder

import (
	"fmt"
	"sort"

	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// Encode translates inst under opts into a hard pseudo-Boolean constraint
// system on a fresh pbsolver.Solver, per spec.md §4.1. Every satisfying
// assignment of the returned Solver maps bijectively (via VarIndex.Decode)
// to a feasible VMCwM placement.
func Encode(inst model.Instance, opts Options) (*pbsolver.Solver, *VarIndex, error) {
	for _, vm := range inst.AllVMs() {
		if len(allowedPMIDs(inst, vm, opts)) == 0 {
			return nil, nil, fmt.Errorf("%w: vm %s/%d has an empty allowed-pm set",
				vmerr.ErrInstanceInfeasible, vm.Key.JobID, vm.Key.Index)
		}
	}

	var demandCPU, demandMem, capCPU, capMem int64
	for _, vm := range inst.AllVMs() {
		demandCPU += vm.CPU
		demandMem += vm.Mem
	}
	for _, pm := range inst.PMs {
		capCPU += pm.CPU
		capMem += pm.Mem
	}
	if demandCPU > capCPU || demandMem > capMem {
		return nil, nil, fmt.Errorf("%w: total demand (cpu %d, mem %d) exceeds total capacity (cpu %d, mem %d)",
			vmerr.ErrInstanceInfeasible, demandCPU, demandMem, capCPU, capMem)
	}

	s := pbsolver.NewSolver()
	vi := newVarIndex()

	for _, vm := range inst.AllVMs() {
		byPM := make(map[int]pbsolver.Lit)
		for _, pmID := range allowedPMIDs(inst, vm, opts) {
			byPM[pmID] = s.NewVar()
		}
		vi.X[vm.Key] = byPM
	}

	pmIDsSorted := sortedPMIDs(inst)
	for _, id := range pmIDsSorted {
		vi.Y[id] = s.NewVar()
	}

	addExactlyOne(s, vi)
	addUsedIndicatorConstraints(s, inst, vi)
	addCapacityConstraints(s, inst, vi)
	if !opts.IgnoreAntiColocation {
		addAntiColocationConstraints(s, inst, vi)
	}
	if err := addMigrationConstraint(s, inst, vi); err != nil {
		return nil, nil, err
	}
	if opts.SymmetryBreaking {
		addSymmetryBreaking(s, inst, vi, pmIDsSorted)
	}

	return s, vi, nil
}

func sortedPMIDs(inst model.Instance) []int {
	ids := make([]int, len(inst.PMs))
	for i, p := range inst.PMs {
		ids[i] = p.ID
	}
	sort.Ints(ids)
	return ids
}

func sortedKeys(byPM map[int]pbsolver.Lit) []int {
	ids := make([]int, 0, len(byPM))
	for id := range byPM {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// addExactlyOne adds, for every VM, "at least one PM" plus pairwise
// "at most one PM" clauses over its allocated x literals.
func addExactlyOne(s *pbsolver.Solver, vi *VarIndex) {
	for _, byPM := range vi.X {
		ids := sortedKeys(byPM)
		var atLeastOne pbsolver.Clause
		for _, id := range ids {
			atLeastOne = append(atLeastOne, byPM[id])
		}
		_ = s.AddClause(atLeastOne)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				_ = s.AddClause(pbsolver.Clause{-byPM[ids[i]], -byPM[ids[j]]})
			}
		}
	}
}

// addUsedIndicatorConstraints wires y[p] to mean "at least one VM on p":
// x[v,p] → y[p] for every possible assignment, and y[p] → (∃v: x[v,p])
// for PMs with at least one potential occupant. Zero-capacity PMs are
// forced unused (§3 "always-unused" invariant).
func addUsedIndicatorConstraints(s *pbsolver.Solver, inst model.Instance, vi *VarIndex) {
	for _, pm := range inst.PMs {
		if pm.AlwaysUnused() {
			_ = s.AddClause(pbsolver.Clause{-vi.Y[pm.ID]})
		}
	}

	for _, vm := range inst.AllVMs() {
		for _, pmID := range sortedKeys(vi.X[vm.Key]) {
			x := vi.X[vm.Key][pmID]
			_ = s.AddClause(pbsolver.Clause{-x, vi.Y[pmID]})
		}
	}

	for _, pm := range inst.PMs {
		var supporters pbsolver.Clause
		for _, vm := range inst.AllVMs() {
			if x, ok := vi.X[vm.Key][pm.ID]; ok {
				supporters = append(supporters, x)
			}
		}
		if len(supporters) == 0 {
			continue // already forced false above, or unreachable: no clause needed either way
		}
		clause := append(pbsolver.Clause{-vi.Y[pm.ID]}, supporters...)
		_ = s.AddClause(clause)
	}
}

func addCapacityConstraints(s *pbsolver.Solver, inst model.Instance, vi *VarIndex) {
	for _, pm := range inst.PMs {
		var cpuTerms, memTerms []pbsolver.Term
		for _, vm := range inst.AllVMs() {
			x, ok := vi.X[vm.Key][pm.ID]
			if !ok {
				continue
			}
			if vm.CPU > 0 {
				cpuTerms = append(cpuTerms, pbsolver.Term{Lit: x, Weight: vm.CPU})
			}
			if vm.Mem > 0 {
				memTerms = append(memTerms, pbsolver.Term{Lit: x, Weight: vm.Mem})
			}
		}
		if len(cpuTerms) > 0 {
			_ = s.AddPBConstraint(cpuTerms, pbsolver.LE, pm.CPU)
		}
		if len(memTerms) > 0 {
			_ = s.AddPBConstraint(memTerms, pbsolver.LE, pm.Mem)
		}
	}
}

func addAntiColocationConstraints(s *pbsolver.Solver, inst model.Instance, vi *VarIndex) {
	for _, job := range inst.Jobs {
		group := job.AntiColocatedGroup()
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				for pmID, xi := range vi.X[group[i]] {
					if xj, ok := vi.X[group[j]][pmID]; ok {
						_ = s.AddClause(pbsolver.Clause{-xi, -xj})
					}
				}
			}
		}
	}
}

// addMigrationConstraint encodes Σ mem(v)·(1−x[v,currentPM(v)]) ≤ budget
// as the equivalent GE form Σ mem(v)·x[v,currentPM(v)] ≥ totalCurrentMem
// − budget over the "stay" literals.
func addMigrationConstraint(s *pbsolver.Solver, inst model.Instance, vi *VarIndex) error {
	budget := inst.MaxMigrationMem()
	var stayTerms []pbsolver.Term
	var totalCurrentMem int64

	for _, vm := range inst.AllVMs() {
		cur, ok := inst.Current.Get(vm.Key)
		if !ok {
			continue
		}
		x, exists := vi.X[vm.Key][cur]
		if !exists {
			// The VM's current PM is no longer in its allowed set: it
			// must migrate unconditionally, which only tightens
			// feasibility, never an encoder error.
			continue
		}
		stayTerms = append(stayTerms, pbsolver.Term{Lit: x, Weight: vm.Mem})
		totalCurrentMem += vm.Mem
	}

	if len(stayTerms) > 0 {
		return s.AddPBConstraint(stayTerms, pbsolver.GE, totalCurrentMem-budget)
	}
	return nil
}

// addSymmetryBreaking forces usage order among PMs that share identical
// capacity and energy-cost parameters: if PM j (of a symmetric pair i<j)
// is used, PM i must be used too.
func addSymmetryBreaking(s *pbsolver.Solver, inst model.Instance, vi *VarIndex, pmIDsSorted []int) {
	pmByID := make(map[int]model.PhysicalMachine, len(inst.PMs))
	for _, pm := range inst.PMs {
		pmByID[pm.ID] = pm
	}

	groups := make(map[string][]int)
	for _, id := range pmIDsSorted {
		pm := pmByID[id]
		key := fmt.Sprintf("%d/%d/%s/%s", pm.CPU, pm.Mem, pm.Idle.RatString(), pm.Full.RatString())
		groups[key] = append(groups[key], id)
	}

	for _, ids := range groups {
		for i := 0; i < len(ids)-1; i++ {
			_ = s.AddClause(pbsolver.Clause{-vi.Y[ids[i+1]], vi.Y[ids[i]]})
		}
	}
}
