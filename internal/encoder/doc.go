// Package encoder implements the PB Encoder (spec.md §4.1): it turns a
// model.Instance plus an Options switch set into a pseudo-Boolean
// constraint system over a pbsolver.Solver, together with the variable
// index needed to decode a model back into a model.Mapping.
//
// # Reading Guide
//
//   - options.go: the recognized option flags (§4.1 table)
//   - variables.go: the x[v,p]/y[p] variable index, allocated in a fixed
//     deterministic order for a given instance and option set
//   - encode.go: Encode, producing the hard constraints
//   - objectives.go: BuildObjectives, the linear soft-literal weight
//     guides consumed by the stratifier/MCS engine
//   - opb.go: the multi-objective OPB dump (§6)
package encoder
