package encoder

import (
	"sort"

	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
)

// VarIndex maps the problem's VM/PM structure onto solver variables, and
// back from a solver model onto a model.Mapping. Allocation order is
// job order, then VM order within job, then ascending PM id — fixed for
// a given instance and option set so variable indices are reproducible
// (spec.md §4.1 guarantee (iii)).
type VarIndex struct {
	X map[model.VMKey]map[int]pbsolver.Lit
	Y map[int]pbsolver.Lit
}

func newVarIndex() *VarIndex {
	return &VarIndex{
		X: make(map[model.VMKey]map[int]pbsolver.Lit),
		Y: make(map[int]pbsolver.Lit),
	}
}

// X var-allocation order: for each VM (job order, VM order), for each PM
// id in ascending order that the VM may run on (post IgnorePlatform).
func allowedPMIDs(inst model.Instance, vm model.VirtualMachine, opts Options) []int {
	var ids []int
	for _, pm := range inst.PMs {
		if !opts.IgnorePlatform && !vm.IsAllowed(pm.ID) {
			continue
		}
		ids = append(ids, pm.ID)
	}
	sort.Ints(ids)
	return ids
}

// Decode reads a solved model (as returned by pbsolver.Solver.Solve) back
// into a model.Mapping using the X variables: the assigned PM for each VM
// is whichever x[v,p] literal is true (Encode's exactly-one constraint
// guarantees there is exactly one per VM in any satisfying model).
func (vi *VarIndex) Decode(solverModel []bool) model.Mapping {
	out := make(model.Mapping, len(vi.X))
	for key, byPM := range vi.X {
		for pmID, lit := range byPM {
			if solverModel[lit.Var()-1] {
				out[key] = pmID
				break
			}
		}
	}
	return out
}
