// Package vmerr defines the error kinds shared across the VMCwM core,
// per the error-handling design: infeasibility of a sub-problem is never
// promoted to program failure, only encoding/IO errors abort.
package vmerr

import "errors"

var (
	// ErrInstanceInfeasible is raised at encoding time: a VM has an empty
	// allowed-PM set, or total demand exceeds total capacity.
	ErrInstanceInfeasible = errors.New("vmcwm: instance infeasible")

	// ErrSolverBudgetExceeded means the per-call conflict budget was
	// consumed before a definite SAT/UNSAT answer. Recovered locally by
	// the MCS engine (fold into next partition) or the driver (stop with
	// best-effort archive).
	ErrSolverBudgetExceeded = errors.New("vmcwm: solver conflict budget exceeded")

	// ErrDeadlineReached means the global wall-clock deadline expired.
	// Recovered locally: flush the archive and return.
	ErrDeadlineReached = errors.New("vmcwm: deadline reached")

	// ErrUnsat means the active constraint set is refuted. At the top
	// level this is a terminal, non-error state (archive is complete);
	// inside the MCS engine LBX returns it when no model exists at all.
	ErrUnsat = errors.New("vmcwm: unsatisfiable")

	// ErrEncodingOverflow means integer objective weights exceed the
	// representable range after rational reduction. Fatal: surfaced as a
	// diagnostic, never silently wrapped.
	ErrEncodingOverflow = errors.New("vmcwm: encoding overflow")

	// ErrIO wraps a failure in an external collaborator (instance
	// parsing, OPB/population I/O). Propagated to the user unchanged.
	ErrIO = errors.New("vmcwm: io error")

	// ErrUnsupportedCombination is raised when the caller requests a
	// combination the spec explicitly forbids (e.g. LBX with hash
	// functions) instead of silently accepting it.
	ErrUnsupportedCombination = errors.New("vmcwm: unsupported option combination")
)
