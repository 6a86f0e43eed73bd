// Package stratify partitions a weighted pseudo-Boolean objective into
// ordered buckets for the MCS Engine (spec.md §4.5).
//
// # Reading Guide
//
// Start with Partition and LWR/FixedPartition, the two partitioning modes
// over a single reduced objective. Merged and Split then layer the
// numerator/denominator division handling on top, consuming
// *objective.Manager directly. Partitions are always produced
// highest-weight-first (spec.md §5 ordering guarantee (3)); callers walk
// the returned slice (or drain a *SplitStream) in order.
package stratify
