package encoder

import (
	"fmt"
	"io"

	"github.com/vmcwm/vmcwm/internal/objective"
)

// OPBOptions controls the multi-objective OPB dump (spec.md §6).
type OPBOptions struct {
	// AllowDecimalCoefficients emits rational weights as decimal
	// literals (e.g. "+0.5"); otherwise every objective is cleared of
	// denominators by its own common multiplication before being
	// written (via Objective.Reduce).
	AllowDecimalCoefficients bool
	// IgnoreDenominators, when set, omits the wastage-denominator
	// objective line entirely.
	IgnoreDenominators bool
}

// DumpOPB serialises the encoded problem as a pseudo-Boolean optimization
// file with one "min:" line per objective, in objective name order
// energy, wastage_num, [wastage_den], migration.
func DumpOPB(w io.Writer, mgr *objective.Manager, opts OPBOptions) error {
	names := []string{ObjEnergy, ObjWastageNum, ObjMigration}
	if !opts.IgnoreDenominators {
		if _, ok := mgr.Get(ObjWastageDen); ok {
			names = []string{ObjEnergy, ObjWastageNum, ObjWastageDen, ObjMigration}
		}
	}

	for _, name := range names {
		obj, ok := mgr.Get(name)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "min:"); err != nil {
			return err
		}
		if opts.AllowDecimalCoefficients {
			for _, t := range obj.Terms {
				f, _ := t.Weight.Float64()
				if _, err := fmt.Fprintf(w, " %+g x%d", f, t.Lit.Var()); err != nil {
					return err
				}
			}
		} else {
			terms, err := obj.Reduce()
			if err != nil {
				return err
			}
			for _, t := range terms {
				if _, err := fmt.Fprintf(w, " %+d x%d", t.Weight, t.Lit.Var()); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintf(w, "; // %s\n", name); err != nil {
			return err
		}
	}
	return nil
}
