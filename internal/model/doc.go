// Package model defines the VMCwM problem as typed numeric data: physical
// machines, virtual machines grouped into jobs, the current placement (if
// any), and the reference objective formulae that every other package is
// checked against.
//
// # Reading Guide
//
//   - pm.go, vm.go, job.go: the immutable problem entities (§3)
//   - instance.go: the Instance bundle and its derived values
//   - mapping.go: VM identity → PM id assignments (current and candidate)
//   - objective.go: the reference (energy, wastage, migration) formulae
//
// Nothing here touches the PB encoding, the solver, or any search
// algorithm — those consume Instance and Mapping values produced here.
package model
