// Package resultio writes the result/placement output format (spec.md §6):
// one line per archived solution plus the terminal success/failure status
// line the CLI driver exits on.
//
// # Format
//
//	e <energy> w <wastage> [m <migration>]
//	[p <jobID>-<vmIndex> -> <pmID>]*
//	...
//	s SUCCESS | s FAILURE
//
// Energy and wastage are formatted to exactly 5 fractional digits via
// floater.FormatDecimalRat; migration is an exact integer and is only
// emitted when its value is queryable (it always is, here, but the field
// stays bracket-optional in the grammar to mirror the OPB dump's optional
// denominator line). Placement lines are written directly after the
// objective line they belong to, one per assigned VM, only when
// WriteResults is called with includePlacements set.
package resultio
