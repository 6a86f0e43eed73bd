package pbsolver

// AddXORParity adds a hard constraint that the parity (XOR) of the
// variables in vars equals rhs, used by hash-based enumeration to slice
// the solution space with random density-1/2 parity constraints
// (spec.md §4.6). Implemented as a Tseitin chain of auxiliary variables,
// each linked by the standard 4-clause XOR equivalence encoding, since no
// SAT solver in the retrieval pack exposes native XOR/Gaussian-elimination
// reasoning to import (see DESIGN.md).
func (s *Solver) AddXORParity(vars []Lit, rhs bool) error {
	if len(vars) == 0 {
		if rhs {
			// 0 = 1 is unconditionally false.
			return s.AddClause(Clause{})
		}
		return nil // 0 = 0 is unconditionally true: no-op
	}

	acc := vars[0]
	for i := 1; i < len(vars); i++ {
		next := s.NewVar()
		s.addXorEquiv(next, acc, vars[i])
		acc = next
	}

	lit := acc
	if !rhs {
		lit = acc.Negate()
	}
	return s.AddClause(Clause{lit})
}

// addXorEquiv adds clauses forcing a == (b XOR c).
func (s *Solver) addXorEquiv(a, b, c Lit) {
	_ = s.AddClause(Clause{a.Negate(), b, c})
	_ = s.AddClause(Clause{a.Negate(), b.Negate(), c.Negate()})
	_ = s.AddClause(Clause{a, b.Negate(), c})
	_ = s.AddClause(Clause{a, b, c.Negate()})
}
