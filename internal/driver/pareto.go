package driver

import (
	"errors"

	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/mcs"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
	"github.com/vmcwm/vmcwm/internal/rng"
	"github.com/vmcwm/vmcwm/internal/stratify"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// runParetoMCS implements spec.md §4.6's Pareto-MCS mode: stratify the
// combined guide objective, run CLD or LBX partition-by-partition, decode
// the resulting model, insert its reference objective vector into the
// archive, and block its dominance cone before the next iteration.
func (d *Driver) runParetoMCS() (*archive.Archive, error) {
	terms := d.combinedTerms()
	round := 0

	for {
		if d.deadlineExpired() {
			return d.arc, nil
		}

		partitions := d.cfg.StratifyMode.Apply(terms)
		if d.cfg.PathDiversification && d.cfg.MCSVariant == mcs.CLD {
			rotatePartitions(partitions, d.rng.ForIndexedSubsystem(rng.SubsystemPathDiv, round))
		}

		results, err := mcs.RunPartitions(d.facade, partitions, d.cfg.MCSVariant, d.cfg.ConflictBudget)
		if err != nil {
			if errors.Is(err, vmerr.ErrUnsat) {
				return d.arc, nil
			}
			return d.arc, err
		}
		if len(results) == 0 {
			return d.arc, nil
		}

		last := results[len(results)-1]
		if last.Model == nil {
			// Global hard-constraint UNSAT under no assumptions: the Pareto
			// front under the current encoding is exhausted.
			return d.arc, nil
		}

		placement := d.vi.Decode(last.Model)
		vec := model.Evaluate(d.inst, placement)
		result := d.arc.Insert(vec, placement)
		d.log.WithFields(logFields(vec, result)).Debug("pareto-mcs iteration")

		if err := blockCone(d.facade, d.sets, guideValues(d.sets, last.Model)); err != nil {
			return d.arc, err
		}

		if d.cfg.AugmentWithHash {
			if err := d.sampleHashSlice(round); err != nil {
				return d.arc, err
			}
		}

		round++
	}
}

// rotatePartitions cyclically shifts partitions in place, exploring a
// different face of the feasible region on the next CLD pass (spec.md
// §4.6 step 5, "path diversification").
func rotatePartitions(partitions []stratify.Partition, r interface{ Intn(int) int }) {
	if len(partitions) < 2 {
		return
	}
	k := r.Intn(len(partitions))
	rotated := append(append([]stratify.Partition(nil), partitions[k:]...), partitions[:k]...)
	copy(partitions, rotated)
}

// sampleHashSlice adds one round of temporary-in-spirit XOR parity
// constraints directly to the shared facade to diversify Pareto-MCS
// discovery; unlike runHash's fresh-solver rounds, these accumulate for
// the remainder of this driver's run (they are never the sole exhaustion
// signal, only a diversity aid), matching AugmentWithHash's role as an
// augmentation rather than a standalone enumeration mode.
func (d *Driver) sampleHashSlice(round int) error {
	n := d.facade.NumVars()
	if n == 0 {
		return nil
	}
	r := d.rng.ForIndexedSubsystem(rng.SubsystemHash, round)
	var vars []pbsolver.Lit
	for v := 1; v <= n; v++ {
		if r.Intn(2) == 0 {
			vars = append(vars, pbsolver.Lit(v))
		}
	}
	if len(vars) == 0 {
		return nil
	}
	return d.facade.AddXORParity(vars, r.Intn(2) == 1)
}

func logFields(vec model.ObjectiveVector, result archive.InsertResult) map[string]interface{} {
	status := "inserted"
	switch result {
	case archive.Dominated:
		status = "dominated"
	case archive.Duplicate:
		status = "duplicate"
	}
	return map[string]interface{}{"vector": vec.String(), "result": status}
}
