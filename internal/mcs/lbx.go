package mcs

import (
	"github.com/vmcwm/vmcwm/internal/objective"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// RunLBX implements Literal-Based eXtraction (spec.md §4.4): iterate over
// the soft literals one at a time, tentatively assuming each; keep it on
// SAT, add its weight to cost on UNSAT. Uses one solver call per literal
// rather than CLD's repeated whole-set calls.
func RunLBX(facade pbsolver.Facade, terms []objective.IntTerm, conflictBudget int) (Result, error) {
	var kept []pbsolver.Lit
	var cost int64
	var lastModel []bool

	for _, t := range terms {
		l := -t.Lit
		assumptions := append(append([]pbsolver.Lit(nil), kept...), l)
		status, model, err := facade.Solve(assumptions, conflictBudget)
		switch status {
		case pbsolver.StatusSat:
			kept = append(kept, l)
			lastModel = model
		case pbsolver.StatusUnsat:
			cost += t.Weight
		case pbsolver.StatusBudgetExceeded:
			return Result{Model: lastModel, Cost: cost, Optimal: false}, nil
		}
		if err != nil && status != pbsolver.StatusBudgetExceeded {
			return Result{}, err
		}
	}

	if lastModel == nil {
		status, model, err := facade.Solve(kept, conflictBudget)
		if err != nil {
			return Result{}, err
		}
		if status != pbsolver.StatusSat {
			return Result{}, vmerr.ErrUnsat
		}
		lastModel = model
	}
	return Result{Model: lastModel, Cost: cost, Optimal: true}, nil
}
