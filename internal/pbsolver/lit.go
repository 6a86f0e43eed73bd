package pbsolver

// Lit is a DIMACS-style literal: variable v (1-indexed) appears as +v for
// "v is true" and -v for "v is false". Literal 0 is never valid.
type Lit int

// Var returns the variable underlying l.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Negative reports whether l asserts its variable false.
func (l Lit) Negative() bool { return l < 0 }

// Negate returns ¬l.
func (l Lit) Negate() Lit { return -l }

// Clause is a disjunction of literals. An empty clause is unsatisfiable by
// construction and is used as the encoding of a degenerate (always-false)
// hash constraint.
type Clause []Lit
