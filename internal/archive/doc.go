// Package archive implements the Non-dominated Archive (spec.md §4.7):
// insertion with dominance pruning, membership, insertion-order iteration,
// and the dominance-cone shape the Pareto Search Driver turns into a
// blocking clause.
//
// # Reading Guide
//
// Archive.Insert is the only mutating operation; it tombstones any
// previously-inserted entry the new vector dominates rather than removing
// it immediately, and compacts the backing slice only once at least
// minRebuildThreshold entries are tombstoned and they make up at least half
// of the slice — an amortized-near-linear insertion (spec.md §4.7) at the
// cost of Iter occasionally walking a few dead slots between compactions.
// Tombstoned indices are pushed onto a container/heap min-heap whose length
// is the tombstone count; a rebuild drops every dead slot in one pass and
// never disturbs the relative order of the entries that remain (spec.md §5
// ordering guarantee (2)).
package archive
