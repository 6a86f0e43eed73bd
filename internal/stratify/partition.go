package stratify

import (
	"sort"

	"github.com/vmcwm/vmcwm/internal/objective"
)

// Partition is one ordered bucket of an objective's literals. Optimal is
// true on every partition LWR and FixedPartition produce; Fold returns a
// merged partition with Optimal false. mcs.RunPartitions decides whether
// to fold from its own Result.Optimal, not from this field.
type Partition struct {
	Literals []objective.IntTerm
	Optimal  bool
}

// Weight sums the partition's literal weights.
func (p Partition) Weight() int64 {
	var total int64
	for _, t := range p.Literals {
		total += t.Weight
	}
	return total
}

// sortDescending returns terms ordered by descending weight, ties broken by
// literal for determinism.
func sortDescending(terms []objective.IntTerm) []objective.IntTerm {
	out := append([]objective.IntTerm(nil), terms...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Lit < out[j].Lit
	})
	return out
}

// LWR stratifies terms by the literal-to-distinct-weight ratio rule
// (spec.md §4.5): walking in descending weight order, a new partition opens
// whenever the running count of literals in the current partition divided
// by the count of distinct weights seen in it reaches ratio. A ratio below
// 1 is treated as 1, which puts every literal in a partition of its own.
func LWR(terms []objective.IntTerm, ratio float64) []Partition {
	if ratio < 1 {
		ratio = 1
	}
	sorted := sortDescending(terms)
	if len(sorted) == 0 {
		return nil
	}

	var partitions []Partition
	var current []objective.IntTerm
	distinct := make(map[int64]bool)

	flush := func() {
		if len(current) > 0 {
			partitions = append(partitions, Partition{Literals: current, Optimal: true})
			current = nil
			distinct = make(map[int64]bool)
		}
	}

	for _, t := range sorted {
		current = append(current, t)
		distinct[t.Weight] = true
		if float64(len(current))/float64(len(distinct)) >= ratio {
			flush()
		}
	}
	flush()
	return partitions
}

// FixedPartition quantile-splits terms, sorted by descending weight, into
// exactly n partitions of near-equal cumulative weight (spec.md §4.5 "fixed
// partition mode"). n ≤ 0 is treated as 1 (a single partition); n ≥
// len(terms) gives one literal per partition.
func FixedPartition(terms []objective.IntTerm, n int) []Partition {
	sorted := sortDescending(terms)
	if len(sorted) == 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > len(sorted) {
		n = len(sorted)
	}

	var total int64
	for _, t := range sorted {
		total += t.Weight
	}
	target := total / int64(n)
	if target == 0 {
		target = 1
	}

	partitions := make([]Partition, 0, n)
	var current []objective.IntTerm
	var cum int64
	for i, t := range sorted {
		current = append(current, t)
		cum += t.Weight
		remaining := len(partitions) + 1 // this partition counted
		lastPartition := remaining == n
		literalsLeft := len(sorted) - 1 - i
		if !lastPartition && i < len(sorted)-1 && (cum >= target || literalsLeft == n-remaining) {
			partitions = append(partitions, Partition{Literals: current, Optimal: true})
			current = nil
			cum = 0
		}
	}
	if len(current) > 0 || len(partitions) == 0 {
		partitions = append(partitions, Partition{Literals: current, Optimal: true})
	}
	return partitions
}

// Fold merges a non-optimal partition into its successor and marks the
// result unproved again, per spec.md §4.5's final paragraph.
func Fold(nonOptimal, successor Partition) Partition {
	merged := append(append([]objective.IntTerm(nil), nonOptimal.Literals...), successor.Literals...)
	return Partition{Literals: merged, Optimal: false}
}
