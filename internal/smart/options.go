package smart

import "github.com/vmcwm/vmcwm/internal/stratify"

// Options is the single shared configuration struct for both Repair and
// Improve (spec.md §9 Open Question (b)): one Service, constructed once
// per instance, serves every call an evolutionary algorithm makes.
type Options struct {
	// RelaxationRate ρ ∈ (0,1] is the fraction of the candidate's fixed
	// variables Repair randomly unfixes before solving.
	RelaxationRate float64
	// MaxConflicts bounds each Repair solver call.
	MaxConflicts int
	// DomainBasedUnfixing makes Repair retry once with every variable
	// unfixed (no assumptions) when the relaxed first attempt is UNSAT.
	// It does not single out the variables that contradict a hard
	// constraint; the retry drops all of the candidate's fixings.
	DomainBasedUnfixing bool
	// EnableSmartImprovement, when false, makes Repair return an
	// already-feasible candidate unchanged instead of attempting
	// improvement.
	EnableSmartImprovement bool

	// StratifyMode, PartMaxConflicts, and ImproveMaxConflicts configure
	// Improve's short stratified Pareto-CLD pass.
	StratifyMode        stratify.Mode
	PartMaxConflicts    int
	ImproveMaxConflicts int

	// IgnoreDenEval mirrors internal/driver.Config's field of the same
	// name: it forces Improve's wastage guide term to numerator-only.
	IgnoreDenEval bool
}
