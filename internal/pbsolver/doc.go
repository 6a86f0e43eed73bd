// Package pbsolver implements the Incremental Constraint Solver Facade
// (spec.md §4.2): a DPLL SAT core (no clause learning) augmented with native
// pseudo-Boolean (weighted linear) constraints and XOR parity
// constraints, exposed behind a small capability-set interface
// (Facade) so the encoder, objective manager, and every search
// algorithm never depend on the solver's internal representation.
//
// # Reading Guide
//
//   - lit.go: literal/variable representation
//   - constraint.go: Clause and canonical (GE) PB constraints
//   - solver.go: the DPLL search core — propagate to a fixpoint, then
//     branch; hard constraints accumulate across calls, assumptions and
//     the conflict budget are supplied fresh per Solve call
//   - xor.go: XOR-parity-to-CNF chain encoding used for hash-based
//     enumeration's density-1/2 diversification constraints
//
// No third-party SAT/PB library exists anywhere in the retrieval pack
// this module was built from (see DESIGN.md); this package is the one
// component grounded purely on the teacher's control-flow idiom
// (sim/simulator.go's explicit, state-holding event loop) rather than on
// an imported library.
package pbsolver
