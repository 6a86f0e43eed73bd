// Package driver implements the Pareto Search Driver (spec.md §4.6): the
// shared state machine behind Pareto-MCS (CLD or LBX), the Guided
// Improvement Algorithm, and hash-based model enumeration.
//
// # Reading Guide
//
// New wires a Driver to one encoded instance (a *pbsolver.Solver, its
// encoder.VarIndex, and the objective.Manager built over it); Run
// dispatches to runParetoMCS, runGIA, or runHash per Config.Mode. All three
// share blockCone (bigm.go), which turns a reference guide-objective
// vector into the literal-level disjunction spec.md §4.6 step 3 calls a
// "Pareto blocking clause": at least one guide objective must come in
// strictly below its value at the reference point. Every solver call is
// preceded by a deadline check (spec.md §5); on expiry the driver returns
// whatever the archive already holds.
package driver
