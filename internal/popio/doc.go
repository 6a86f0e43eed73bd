// Package popio dumps and reloads a population for the evolutionary-
// algorithm collaborator (spec.md §6): "objective vectors plus binary-
// integer-encoded placements", as YAML.
//
// Each individual's placement is encoded as one PM-id integer per VM, in
// model.Instance.AllVMs order — the same canonical, deterministic
// enumeration the encoder uses — rather than as raw x[v,p]
// SAT-variable bits, since a population file must outlive any one
// encoder.VarIndex (PB variable numbering is not stable across encode
// calls with different option sets). Objective vectors are stored as
// exact rational strings ("num/den"), not floats, to round-trip without
// precision loss.
package popio
