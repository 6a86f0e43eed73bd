package driver

import (
	"github.com/vmcwm/vmcwm/internal/objective"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
)

// guideSet names one guide objective's reduced integer terms, as produced
// by encoder.BuildObjectives (energy, the merged wastage ratio, migration).
type guideSet struct {
	name  string
	terms []objective.IntTerm
}

func sumTerms(terms []objective.IntTerm, m []bool) int64 {
	var total int64
	for _, t := range terms {
		l := t.Lit
		v := m[l.Var()-1]
		if l.Negative() {
			v = !v
		}
		if v {
			total += t.Weight
		}
	}
	return total
}

func totalWeight(terms []objective.IntTerm) int64 {
	var total int64
	for _, t := range terms {
		total += t.Weight
	}
	return total
}

// addGatedBound adds a big-M-gated hard constraint Σterms ≤ bound that is
// only active when indicator is true: Σterms + M·indicator ≤ bound + M,
// M = total weight of terms + 1. When indicator is false the constraint is
// vacuous (Σterms ≤ maxPossible < bound + M); when true it is exactly
// Σterms ≤ bound. Returns the fresh indicator literal.
func addGatedBound(facade pbsolver.Facade, terms []objective.IntTerm, bound int64) (pbsolver.Lit, error) {
	indicator := facade.NewVar()
	m := totalWeight(terms) + 1
	pbTerms := make([]pbsolver.Term, 0, len(terms)+1)
	for _, t := range terms {
		pbTerms = append(pbTerms, pbsolver.Term{Lit: t.Lit, Weight: t.Weight})
	}
	pbTerms = append(pbTerms, pbsolver.Term{Lit: indicator, Weight: m})
	if err := facade.AddPBConstraint(pbTerms, pbsolver.LE, bound+m); err != nil {
		return 0, err
	}
	return indicator, nil
}

// blockCone adds the Pareto blocking clause spec.md §4.6 step 3 describes:
// for each guide objective, a fresh indicator gates "this objective comes
// in strictly below its value at the reference point"; a hard clause then
// requires at least one indicator true, forbidding any future model whose
// guide values are all ≥ the reference point's (equal to it or dominated
// by it).
func blockCone(facade pbsolver.Facade, sets []guideSet, reference map[string]int64) error {
	var disjunction pbsolver.Clause
	for _, set := range sets {
		indicator, err := addGatedBound(facade, set.terms, reference[set.name]-1)
		if err != nil {
			return err
		}
		disjunction = append(disjunction, indicator)
	}
	return facade.AddClause(disjunction)
}

// guideValues evaluates every guide objective's sum against model m.
func guideValues(sets []guideSet, m []bool) map[string]int64 {
	out := make(map[string]int64, len(sets))
	for _, set := range sets {
		out[set.name] = sumTerms(set.terms, m)
	}
	return out
}
