// Package instio parses the instance text format (spec.md §6): a line-based
// description of physical machines, jobs/VMs, the current mapping, and
// constraint flags, producing a model.Instance for the core to consume.
//
// # Format
//
// One directive per line; blank lines and lines starting with '#' are
// ignored. Fields are whitespace-separated. Directives:
//
//	pm <id> <cpu> <mem> <idle> <full>
//	job <jobID>
//	vm <jobID> <index> <cpu> <mem> [allow=<id>,<id>,...] [anticolocate]
//	current <jobID> <index> <pmID>
//	migration <percentile>
//
// <idle>, <full>, and <percentile> are rational literals: either a bare
// integer ("3"), a decimal ("1.5"), or a fraction ("3/2"). job lines fix
// job enumeration order; vm lines must reference an already-declared job
// and are appended to it in file order, which is also VM order within
// that job (model.Instance.AllVMs' canonical order). A migration line is
// optional; its absence leaves Instance.MigrationPercentile nil.
//
// # Reading Guide
//
//   - parse.go: Parse and the line-directive handlers
//   - rational.go: the rational-literal parser used for the idle, full
//     and migration fields
package instio
