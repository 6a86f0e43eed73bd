package driver

import (
	"time"

	"github.com/vmcwm/vmcwm/internal/encoder"
	"github.com/vmcwm/vmcwm/internal/mcs"
	"github.com/vmcwm/vmcwm/internal/rng"
	"github.com/vmcwm/vmcwm/internal/stratify"
)

// SearchMode selects which of the three state-machine modes Run drives.
type SearchMode int

const (
	ModeParetoMCS SearchMode = iota
	ModeGIA
	ModeHash
)

// Config is the Pareto Search Driver's full configuration surface
// (spec.md §4.6, §6).
type Config struct {
	Mode         SearchMode
	MCSVariant   mcs.Mode
	StratifyMode stratify.Mode

	// ConflictBudget bounds every individual solver call; zero (unset) or
	// negative means unlimited (spec.md §9 Open Question (a)). New turns
	// zero into the solver's negative "no limit" budget.
	ConflictBudget int

	// Deadline is the global wall-clock cutoff; the zero value means no
	// deadline.
	Deadline time.Time

	// PathDiversification rotates the soft-literal ordering between
	// Pareto-MCS iterations; only meaningful with MCSVariant == mcs.CLD.
	PathDiversification bool

	// AugmentWithHash interleaves hash-slice sampling into Pareto-MCS to
	// diversify discovery. Forbidden together with MCSVariant == mcs.LBX
	// (spec.md §9 Open Question (c)): LBX's single-literal-at-a-time
	// extraction order is meaningless once extra hash constraints reshape
	// the feasible region between partitions.
	AugmentWithHash bool

	// HashRounds bounds hash-based enumeration; 0 means unbounded (runs
	// until the deadline).
	HashRounds int

	Seed rng.Seed

	// IgnoreDenEval drops the wastage denominator from the guide objective
	// used for stratification/MCS ordering, independent of whether the
	// encoder included a denominator objective for the OPB dump
	// (EncoderOptions.IgnoreDenominators, spec.md §6's ignoreDenAlloc).
	// The reference objective vector reported for any placement is always
	// model.Evaluate's exact formula regardless of this flag (spec.md §8
	// invariant 2) — this only changes which literal the search steers by.
	IgnoreDenEval bool

	// EncoderOptions is re-supplied so hash-based enumeration can re-run
	// encoder.Encode from scratch each round (the solver has no constraint
	// retraction; spec.md §4.6 "remove the hash constraints" is realised by
	// discarding the whole solver handle, per spec.md §5's cancellation
	// model).
	EncoderOptions encoder.Options
}
