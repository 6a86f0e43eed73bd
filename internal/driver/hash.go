package driver

import (
	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/encoder"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
	"github.com/vmcwm/vmcwm/internal/rng"
)

// runHash implements hash-based enumeration (spec.md §4.6): each round
// re-encodes the instance from scratch (the solver has no constraint
// retraction, so "removing the hash constraints" between rounds means
// dropping the solver handle, per spec.md §5), samples a fresh
// density-1/2 XOR parity slice, solves, and harvests whatever model
// surfaces to seed the archive.
func (d *Driver) runHash() (*archive.Archive, error) {
	for round := 0; d.cfg.HashRounds <= 0 || round < d.cfg.HashRounds; round++ {
		if d.deadlineExpired() {
			return d.arc, nil
		}

		s, vi, err := encoder.Encode(d.inst, d.cfg.EncoderOptions)
		if err != nil {
			return d.arc, err
		}

		r := d.rng.ForIndexedSubsystem(rng.SubsystemHash, round)
		var vars []pbsolver.Lit
		for v := 1; v <= s.NumVars(); v++ {
			if r.Intn(2) == 0 {
				vars = append(vars, pbsolver.Lit(v))
			}
		}
		if len(vars) > 0 {
			if err := s.AddXORParity(vars, r.Intn(2) == 1); err != nil {
				return d.arc, err
			}
		}

		status, m, err := s.Solve(nil, d.cfg.ConflictBudget)
		if err != nil && status != pbsolver.StatusBudgetExceeded {
			return d.arc, err
		}
		if status != pbsolver.StatusSat {
			continue
		}

		placement := vi.Decode(m)
		vec := model.Evaluate(d.inst, placement)
		result := d.arc.Insert(vec, placement)
		d.log.WithFields(logFields(vec, result)).Debug("hash enumeration sample")
	}
	return d.arc, nil
}
