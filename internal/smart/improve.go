package smart

import (
	"errors"

	"github.com/vmcwm/vmcwm/internal/encoder"
	"github.com/vmcwm/vmcwm/internal/mcs"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// Improve runs a short stratified Pareto-CLD pass seeded from a feasible
// candidate and returns the best dominant neighbor found, or candidate
// unchanged if none improves on it (spec.md §4.8). Returns an error if
// candidate itself is infeasible — callers should Repair first.
//
// The reference "seeded with the candidate as a solution hint" language
// describes phase-saving bias toward the hint during search; internal/
// pbsolver has no phase-saving, so the hint here serves only as the
// baseline Improve compares its result against, not as a branching bias
// (see DESIGN.md).
func (s *Service) Improve(candidate model.Mapping) (model.Mapping, error) {
	if err := model.ValidatePlacement(s.inst, candidate); err != nil {
		return candidate, err
	}

	solver, vi, err := encoder.Encode(s.inst, s.encOpts)
	if err != nil {
		return candidate, err
	}
	mgr := encoder.BuildObjectives(s.inst, vi, s.encOpts)
	terms, err := guideTerms(mgr, s.opts.IgnoreDenEval)
	if err != nil {
		return candidate, err
	}

	partBudget := s.opts.PartMaxConflicts
	if s.opts.ImproveMaxConflicts > 0 && (partBudget <= 0 || s.opts.ImproveMaxConflicts < partBudget) {
		// internal/mcs has no cumulative-conflict accounting across
		// partitions, so the total cap is approximated by clamping every
		// partition's own budget to it.
		partBudget = s.opts.ImproveMaxConflicts
	}

	partitions := s.opts.StratifyMode.Apply(terms)
	results, err := mcs.RunPartitions(solver, partitions, mcs.CLD, partBudget)
	if err != nil {
		if errors.Is(err, vmerr.ErrUnsat) {
			return candidate, nil
		}
		return candidate, err
	}
	if len(results) == 0 {
		return candidate, nil
	}

	last := results[len(results)-1]
	if last.Model == nil {
		return candidate, nil
	}

	neighbor := vi.Decode(last.Model)
	neighborVec := model.Evaluate(s.inst, neighbor)
	currentVec := model.Evaluate(s.inst, candidate)

	if neighborVec.Dominates(currentVec) {
		s.log.Debug("smart improvement: found dominant neighbor")
		return neighbor, nil
	}
	return candidate, nil
}
