package driver

import (
	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
)

// runGIA implements the Guided Improvement Algorithm (spec.md §4.6): start
// from any feasible model, repeatedly tighten one guide objective strictly
// while capping the others at their current value; when no dimension can
// improve, the model is locally Pareto-optimal — archive it, block its
// dominance cone, and look for a fresh starting point beyond that cone.
func (d *Driver) runGIA() (*archive.Archive, error) {
	for {
		if d.deadlineExpired() {
			return d.arc, nil
		}

		status, m, err := d.facade.Solve(nil, d.cfg.ConflictBudget)
		if err != nil && status != pbsolver.StatusBudgetExceeded {
			return d.arc, err
		}
		if status != pbsolver.StatusSat {
			return d.arc, nil
		}

		m, values := d.climb(m)

		placement := d.vi.Decode(m)
		vec := model.Evaluate(d.inst, placement)
		result := d.arc.Insert(vec, placement)
		d.log.WithFields(logFields(vec, result)).Debug("gia local optimum")

		if err := blockCone(d.facade, d.sets, values); err != nil {
			return d.arc, err
		}
	}
}

// climb repeatedly tries to strictly improve each guide objective in turn
// (holding the others at or below their current value) until a full pass
// finds no improvement anywhere, returning the final model and its guide
// values.
func (d *Driver) climb(m []bool) ([]bool, map[string]int64) {
	values := guideValues(d.sets, m)

	for {
		improved := false
		for _, target := range d.sets {
			ok, next, err := d.tighten(target.name, values)
			if err != nil || !ok {
				continue
			}
			m = next
			values = guideValues(d.sets, m)
			improved = true
		}
		if !improved {
			return m, values
		}
	}
}

// tighten attempts to find a model strictly better than values[target] in
// the target dimension while not regressing the others, via the big-M
// gated-constraint trick in bigm.go.
func (d *Driver) tighten(target string, values map[string]int64) (bool, []bool, error) {
	var assumptions []pbsolver.Lit
	for _, set := range d.sets {
		bound := values[set.name]
		if set.name == target {
			bound--
		}
		indicator, err := addGatedBound(d.facade, set.terms, bound)
		if err != nil {
			return false, nil, err
		}
		assumptions = append(assumptions, indicator)
	}

	status, m, err := d.facade.Solve(assumptions, d.cfg.ConflictBudget)
	if err != nil && status != pbsolver.StatusBudgetExceeded {
		return false, nil, err
	}
	return status == pbsolver.StatusSat, m, nil
}
