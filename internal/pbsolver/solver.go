package pbsolver

import "github.com/vmcwm/vmcwm/internal/vmerr"

// Status is the outcome of a Solve call.
type Status int

const (
	StatusSat Status = iota
	StatusUnsat
	StatusBudgetExceeded
)

// Facade is the capability set spec.md §4.2 requires: add a hard
// constraint, add an assumption (supplied per Solve call), solve under
// assumptions with a conflict budget, query the model, add a blocking
// clause, and add an XOR parity constraint. Hard constraints accumulate
// monotonically across calls; assumptions and the conflict budget are
// local to one Solve call.
type Facade interface {
	NewVar() Lit
	NumVars() int
	AddClause(c Clause) error
	AddPBConstraint(terms []Term, sense Sense, bound int64) error
	AddXORParity(vars []Lit, rhs bool) error
	BlockClause(c Clause) error
	Solve(assumptions []Lit, conflictBudget int) (Status, []bool, error)
}

// Solver is the DPLL core backing Facade. It is single-threaded and holds
// no global state (spec.md §5): every call site owns its own Solver.
type Solver struct {
	numVars int
	clauses []Clause
	pbs     []canonicalPB
}

// NewSolver returns an empty Solver (no variables, no constraints).
func NewSolver() *Solver {
	return &Solver{}
}

// NewVar allocates a fresh Boolean variable and returns it as a positive
// literal.
func (s *Solver) NewVar() Lit {
	s.numVars++
	return Lit(s.numVars)
}

// NumVars reports how many variables have been allocated.
func (s *Solver) NumVars() int { return s.numVars }

// AddClause adds a hard clause. An empty clause makes every future Solve
// call return StatusUnsat.
func (s *Solver) AddClause(c Clause) error {
	s.clauses = append(s.clauses, append(Clause(nil), c...))
	return nil
}

// BlockClause is AddClause under the name spec.md §4.2 uses for Pareto
// dominance / correction-subset blocking clauses. It is the same
// mechanism: hard clauses accumulate for the life of the Solver.
func (s *Solver) BlockClause(c Clause) error {
	return s.AddClause(c)
}

// AddPBConstraint adds a hard pseudo-Boolean constraint Σ weight·lit
// {≤,≥} bound. Weights must be non-negative.
func (s *Solver) AddPBConstraint(terms []Term, sense Sense, bound int64) error {
	s.pbs = append(s.pbs, newCanonicalPB(terms, sense, bound))
	return nil
}

// assign values: 0 = unassigned, 1 = true, -1 = false, indexed by var.
type assignment []int8

func (a assignment) value(l Lit) int8 {
	v := a[l.Var()]
	if v == 0 {
		return 0
	}
	if l.Negative() {
		return -v
	}
	return v
}

func (a assignment) set(l Lit) {
	if l.Negative() {
		a[l.Var()] = -1
	} else {
		a[l.Var()] = 1
	}
}

// Solve searches for a model satisfying every accumulated hard clause and
// PB constraint, together with assumptions (forced-true literals local to
// this call). conflictBudget < 0 means unlimited (spec.md §9 Open
// Question (a): an unset/zero per-partition budget means no cap — callers
// that want "no limit" pass a negative budget here).
func (s *Solver) Solve(assumptions []Lit, conflictBudget int) (Status, []bool, error) {
	assign := make(assignment, s.numVars+1)
	conflicts := 0

	sat, budgetHit := s.dfs(assign, append([]Lit(nil), assumptions...), conflictBudget, &conflicts)
	if budgetHit {
		return StatusBudgetExceeded, nil, vmerr.ErrSolverBudgetExceeded
	}
	if !sat {
		return StatusUnsat, nil, nil
	}

	model := make([]bool, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		model[v-1] = assign[v] == 1
	}
	return StatusSat, model, nil
}

// dfs assigns `forced` and propagates to a fixpoint, then branches on the
// first unassigned variable. It clones the assignment before each branch
// so backtracking is a plain restore; simplicity over speed is deliberate
// (see DESIGN.md) given the research-tool scale this solver targets.
func (s *Solver) dfs(assign assignment, forced []Lit, budget int, conflicts *int) (sat bool, budgetExceeded bool) {
	if !s.propagate(assign, forced) {
		*conflicts++
		if budget >= 0 && *conflicts > budget {
			return false, true
		}
		return false, false
	}

	v := s.pickUnassigned(assign)
	if v == 0 {
		return true, false
	}

	saved := append(assignment(nil), assign...)

	if sat, exceeded := s.dfs(assign, []Lit{Lit(v)}, budget, conflicts); sat || exceeded {
		return sat, exceeded
	}

	copy(assign, saved)
	return s.dfs(assign, []Lit{-Lit(v)}, budget, conflicts)
}

func (s *Solver) pickUnassigned(assign assignment) int {
	for v := 1; v <= s.numVars; v++ {
		if assign[v] == 0 {
			return v
		}
	}
	return 0
}

// propagate assigns every literal in queue and repeatedly derives further
// unit literals from clauses and PB constraints until a fixpoint or a
// conflict. Returns false on conflict.
func (s *Solver) propagate(assign assignment, queue []Lit) bool {
	for _, l := range queue {
		switch assign.value(l) {
		case 1:
			continue // already forced, consistent
		case -1:
			return false // contradicts existing assignment
		}
		assign.set(l)
	}

	for {
		more, conflict := s.derive(assign)
		if conflict {
			return false
		}
		if len(more) == 0 {
			return true
		}
		for _, m := range more {
			switch assign.value(m) {
			case 1:
				continue
			case -1:
				return false
			}
			assign.set(m)
		}
	}
}

// derive scans every clause and PB constraint once and returns literals
// forced by the current assignment, or conflict=true if one is already
// violated.
func (s *Solver) derive(assign assignment) (forced []Lit, conflict bool) {
	for _, c := range s.clauses {
		unit, isConflict, ok := unitOf(c, assign)
		if isConflict {
			return nil, true
		}
		if ok {
			forced = append(forced, unit)
		}
	}
	for i := range s.pbs {
		unit, isConflict, ok := s.pbs[i].propagateOnce(assign)
		if isConflict {
			return nil, true
		}
		if ok {
			forced = append(forced, unit...)
		}
	}
	return forced, false
}

// unitOf inspects one clause: conflict if every literal is false; a unit
// literal if exactly one is unassigned and the rest are false.
func unitOf(c Clause, assign assignment) (unit Lit, conflict bool, ok bool) {
	var unassignedCount int
	var lastUnassigned Lit
	for _, l := range c {
		switch assign.value(l) {
		case 1:
			return 0, false, false // clause already satisfied
		case 0:
			unassignedCount++
			lastUnassigned = l
		}
	}
	if unassignedCount == 0 {
		return 0, true, false // all literals false: conflict
	}
	if unassignedCount == 1 {
		return lastUnassigned, false, true
	}
	return 0, false, false
}

// propagateOnce applies the GE-canonical propagation rule: if the maximum
// achievable sum falls below bound, conflict;
// otherwise any unassigned literal whose weight exceeds
// (maxAchievable - bound) must be forced true.
func (c canonicalPB) propagateOnce(assign assignment) (forced []Lit, conflict bool, ok bool) {
	var trueSum, unassignedSum int64
	type pending struct {
		lit    Lit
		weight int64
	}
	var unassigned []pending

	for _, t := range c.terms {
		switch assign.value(t.Lit) {
		case 1:
			trueSum += t.Weight
		case 0:
			unassignedSum += t.Weight
			unassigned = append(unassigned, pending{t.Lit, t.Weight})
		}
	}

	maxAchievable := trueSum + unassignedSum
	if maxAchievable < c.bound {
		return nil, true, false
	}
	threshold := maxAchievable - c.bound
	for _, p := range unassigned {
		if p.weight > threshold {
			forced = append(forced, p.lit)
		}
	}
	return forced, false, len(forced) > 0
}
