package encoder

import (
	"math/big"

	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/objective"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
)

// Names of the objectives BuildObjectives populates into a
// *objective.Manager.
const (
	ObjEnergy      = "energy"
	ObjWastageNum  = "wastage_num"
	ObjWastageDen  = "wastage_den"
	ObjMigration   = "migration"
)

// BuildObjectives populates mgr with the linear pseudo-Boolean guide
// objectives the Stratifier and MCS engine order literals by. Migration
// is exact (it is already linear in the reference formula). Energy and
// wastage are linear *proxies*: the true, reference-formula objective
// vector reported by the driver always comes from decoding a model back
// to a model.Mapping and calling model.Evaluate directly (see DESIGN.md);
// these guides only drive which literal gets flipped first during
// correction-subset extraction and which partition a literal falls into.
func BuildObjectives(inst model.Instance, vi *VarIndex, opts Options) *objective.Manager {
	mgr := objective.NewManager()

	energy := objective.New(ObjEnergy)
	wastageNum := objective.New(ObjWastageNum)
	wastageDen := objective.New(ObjWastageDen)
	migration := objective.New(ObjMigration)

	pmByID := make(map[int]model.PhysicalMachine, len(inst.PMs))
	for _, pm := range inst.PMs {
		pmByID[pm.ID] = pm
	}

	for _, pm := range inst.PMs {
		energy = energy.Add(objective.Term{Lit: vi.Y[pm.ID], Weight: new(big.Rat).Set(pm.Idle)})
	}

	for _, vm := range inst.AllVMs() {
		for pmID, x := range vi.X[vm.Key] {
			pm := pmByID[pmID]
			delta := new(big.Rat).Sub(pm.Full, pm.Idle)
			weight := new(big.Rat).Mul(big.NewRat(vm.CPU, 1), delta)
			energy = energy.Add(objective.Term{Lit: x, Weight: weight})

			wastageNum = wastageNum.Add(objective.Term{
				Lit: x, Weight: big.NewRat(vm.Mem, 1), Source: objective.Numerator,
			})
			if !opts.IgnoreDenominators {
				wastageDen = wastageDen.Add(objective.Term{
					Lit: x, Weight: big.NewRat(vm.CPU+vm.Mem, 1), Source: objective.Denominator,
				})
			}
		}
	}

	for _, vm := range inst.AllVMs() {
		cur, ok := inst.Current.Get(vm.Key)
		if !ok {
			continue
		}
		x, exists := vi.X[vm.Key][cur]
		if !exists {
			continue
		}
		migration = migration.Add(objective.Term{
			Lit: pbsolver.Lit(-x), Weight: big.NewRat(vm.Mem, 1),
		})
	}

	mgr.Set(energy)
	mgr.Set(wastageNum)
	mgr.Set(migration)
	if !opts.IgnoreDenominators {
		mgr.Set(wastageDen)
	}
	return mgr
}
