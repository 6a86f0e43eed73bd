package mcs

import (
	"github.com/vmcwm/vmcwm/internal/pbsolver"
	"github.com/vmcwm/vmcwm/internal/stratify"
)

// RunPartitions drives partitions through CLD or LBX in order, locking in
// each partition's satisfied soft literals as hard clauses before moving on
// (spec.md §4.6 step 1), and folding any partition whose budget was
// exhausted before proof of optimality into its successor (spec.md §4.5).
// partitions is mutated in place by folding.
func RunPartitions(facade pbsolver.Facade, partitions []stratify.Partition, mode Mode, conflictBudget int) ([]Result, error) {
	var results []Result

	for i := 0; i < len(partitions); i++ {
		part := partitions[i]

		var res Result
		var err error
		switch mode {
		case LBX:
			res, err = RunLBX(facade, part.Literals, conflictBudget)
		default:
			res, err = RunCLD(facade, part.Literals, conflictBudget)
		}
		if err != nil {
			return results, err
		}

		if !res.Optimal && i+1 < len(partitions) {
			partitions[i+1] = stratify.Fold(part, partitions[i+1])
			continue
		}

		for _, t := range part.Literals {
			l := -t.Lit
			if modelSatisfies(res.Model, l) {
				_ = facade.AddClause(pbsolver.Clause{l})
			}
		}
		results = append(results, res)
	}

	return results, nil
}
