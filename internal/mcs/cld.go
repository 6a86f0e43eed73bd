package mcs

import (
	"github.com/vmcwm/vmcwm/internal/objective"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
)

// RunCLD implements Core-guided Linear search with Disjoint cores
// (spec.md §4.4): try to satisfy every soft literal; on UNSAT, relax the
// lowest-weight remaining soft literal (playing the role of the minimal
// correction subset a full core extractor would return) and retry, until a
// model is found or the budget is exhausted. terms must already be sorted
// highest-weight-first, as internal/stratify's partitions are.
func RunCLD(facade pbsolver.Facade, terms []objective.IntTerm, conflictBudget int) (Result, error) {
	soft := make([]pbsolver.Lit, len(terms))
	weight := make([]int64, len(terms))
	for i, t := range terms {
		soft[i] = -t.Lit
		weight[i] = t.Weight
	}

	remaining := append([]pbsolver.Lit(nil), soft...)
	remainingWeight := append([]int64(nil), weight...)
	var cost int64

	for {
		status, model, err := facade.Solve(remaining, conflictBudget)
		switch status {
		case pbsolver.StatusSat:
			return Result{Model: model, Cost: cost, Optimal: true}, nil
		case pbsolver.StatusBudgetExceeded:
			return Result{Cost: cost, Optimal: false}, nil
		}
		if err != nil {
			return Result{}, err
		}
		// StatusUnsat under `remaining`: the whole remaining soft set cannot
		// be jointly satisfied. Relax the lowest-weight literal still in
		// play (end of the slice, since it is weight-descending) and retry.
		if len(remaining) == 0 {
			return Result{Cost: cost, Optimal: true}, nil
		}
		last := len(remaining) - 1
		cost += remainingWeight[last]
		remaining = remaining[:last]
		remainingWeight = remainingWeight[:last]
	}
}
