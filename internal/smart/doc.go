// Package smart implements the Smart Mutation / Smart Improvement Service
// (spec.md §4.8): a re-entrant façade evolutionary algorithms call to
// repair an infeasible candidate placement or improve a feasible one.
//
// # Reading Guide
//
// Service holds only instance-scoped configuration (the instance, encoder
// options, and one shared Options struct — spec.md §9 Open Question (b)).
// Repair and Improve each call encoder.Encode fresh per invocation rather
// than sharing a solver, so concurrent calls from independent evolutionary
// individuals never contend over solver state (spec.md §5's single-
// threaded-per-solver model still holds; re-entrancy comes from never
// sharing a solver, not from internal locking). Logging inside both
// methods stays at Debug level or below — deliberately quieter than the
// driver's own logging — since an evolutionary run can call either method
// thousands of times per generation.
package smart
