package pbsolver

// Sense is the comparison operator of a pseudo-Boolean constraint as
// supplied by a caller; internally every constraint is canonicalized to
// GE (see newCanonicalPB).
type Sense int

const (
	// LE: Σ weight_i · lit_i ≤ bound.
	LE Sense = iota
	// GE: Σ weight_i · lit_i ≥ bound.
	GE
)

// Term is one weighted literal of a pseudo-Boolean constraint. Weight
// must be non-negative; the literal's polarity carries the sign.
type Term struct {
	Lit    Lit
	Weight int64
}

// canonicalPB is a constraint in the single internal form
// Σ weight_i · lit_i ≥ bound, weight_i ≥ 0, used by the propagator.
type canonicalPB struct {
	terms []Term
	bound int64
}

// newCanonicalPB rewrites an LE constraint into the GE form by negating
// every literal and adjusting the bound: Σ w·l ≤ b  ⇔  Σ w·(¬l) ≥ ΣW - b.
// GE constraints pass through unchanged.
func newCanonicalPB(terms []Term, sense Sense, bound int64) canonicalPB {
	if sense == GE {
		return canonicalPB{terms: append([]Term(nil), terms...), bound: bound}
	}
	var sumW int64
	out := make([]Term, len(terms))
	for i, t := range terms {
		sumW += t.Weight
		out[i] = Term{Lit: t.Lit.Negate(), Weight: t.Weight}
	}
	return canonicalPB{terms: out, bound: sumW - bound}
}
