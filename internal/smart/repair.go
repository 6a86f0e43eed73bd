package smart

import (
	"fmt"
	"math"

	"github.com/vmcwm/vmcwm/internal/encoder"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
	"github.com/vmcwm/vmcwm/internal/rng"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// Repair fixes variables from candidate, randomly unfixes a fraction ρ of
// them, and re-solves within MaxConflicts (spec.md §4.8). On success it
// returns the repaired placement. An already-feasible candidate is
// returned unchanged when EnableSmartImprovement is off; otherwise Repair
// falls through to the UNSAT/domain-unfixing path exactly as an infeasible
// candidate would.
func (s *Service) Repair(candidate model.Mapping) (model.Mapping, error) {
	solver, vi, err := encoder.Encode(s.inst, s.encOpts)
	if err != nil {
		return candidate, err
	}

	wasFeasible := model.ValidatePlacement(s.inst, candidate) == nil
	if wasFeasible && !s.opts.EnableSmartImprovement {
		return candidate, nil
	}

	fixed := fixedAssumptions(vi, candidate)
	kept := relax(fixed, s.opts.RelaxationRate, s.rng.ForSubsystem(rng.SubsystemSmartMutation))

	status, m, err := solver.Solve(kept, s.opts.MaxConflicts)
	if err != nil && status != pbsolver.StatusBudgetExceeded {
		return candidate, err
	}

	switch status {
	case pbsolver.StatusSat:
		return vi.Decode(m), nil
	case pbsolver.StatusBudgetExceeded:
		s.log.Debug("smart repair: budget exceeded, returning best-effort candidate")
		return candidate, fmt.Errorf("smart repair: %w", vmerr.ErrSolverBudgetExceeded)
	}

	// StatusUnsat under the relaxed fixed set.
	if s.opts.DomainBasedUnfixing {
		status2, m2, err2 := solver.Solve(nil, s.opts.MaxConflicts)
		if err2 != nil && status2 != pbsolver.StatusBudgetExceeded {
			return candidate, err2
		}
		if status2 == pbsolver.StatusSat {
			return vi.Decode(m2), nil
		}
	}

	return candidate, fmt.Errorf("smart repair: %w", vmerr.ErrInstanceInfeasible)
}

// fixedAssumptions returns the literal forcing each assigned VM onto its
// candidate PM, for the VM/PM pairs the fresh encoding still has a
// variable for.
func fixedAssumptions(vi *encoder.VarIndex, candidate model.Mapping) []pbsolver.Lit {
	var out []pbsolver.Lit
	for key, byPM := range vi.X {
		pmID, ok := candidate.Get(key)
		if !ok {
			continue
		}
		if lit, ok := byPM[pmID]; ok {
			out = append(out, lit)
		}
	}
	return out
}

// relax randomly drops a ρ fraction of fixed, leaving the rest as
// assumptions. ρ ≤ 0 keeps everything fixed; ρ ≥ 1 unfixes everything.
func relax(fixed []pbsolver.Lit, rho float64, r interface {
	Shuffle(n int, swap func(i, j int))
}) []pbsolver.Lit {
	if rho <= 0 || len(fixed) == 0 {
		return fixed
	}
	if rho >= 1 {
		return nil
	}
	shuffled := append([]pbsolver.Lit(nil), fixed...)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	keep := int(math.Round(float64(len(shuffled)) * (1 - rho)))
	return shuffled[:keep]
}
