// Package mcs implements the CLD and LBX correction-subset extraction
// procedures of the MCS Engine (spec.md §4.4).
//
// # Reading Guide
//
// RunCLD and RunLBX each take one partition's soft literals (from
// internal/stratify) and a conflict budget, and return a Result: the model
// found, its cost within the partition, and whether that cost is proven
// optimal. RunPartitions drives a full ordered partition list, locking in
// each partition's satisfied soft literals as hard constraints before
// moving to the next (spec.md §4.6 step 1), folding non-optimal partitions
// into their successor per spec.md §4.5.
package mcs
