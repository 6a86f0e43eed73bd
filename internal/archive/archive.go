package archive

import (
	"container/heap"

	"github.com/vmcwm/vmcwm/internal/model"
)

// InsertResult reports what Insert did.
type InsertResult int

const (
	Inserted InsertResult = iota
	Dominated
	Duplicate
)

// Entry is one archived (objective vector, placement) pair.
type Entry struct {
	Vector    model.ObjectiveVector
	Placement model.Mapping
}

type record struct {
	Entry
	dead bool
}

// minRebuildThreshold is the number of tombstoned entries that must exist
// before a compaction can fire, so tiny archives never pay a rebuild for a
// single dominated insert.
const minRebuildThreshold = 16

// Archive is the Non-dominated Archive of spec.md §4.7.
type Archive struct {
	entries []record
	dead    tombstoneHeap
}

// New returns an empty Archive.
func New() *Archive {
	return &Archive{}
}

// Len reports the number of live (non-dominated, non-tombstoned) entries.
func (a *Archive) Len() int {
	return len(a.entries) - len(a.dead)
}

// Insert adds (v, w) if no archived entry dominates or equals v, tombstones
// any archived entry v dominates, and reports which happened.
func (a *Archive) Insert(v model.ObjectiveVector, w model.Mapping) InsertResult {
	for i := range a.entries {
		if a.entries[i].dead {
			continue
		}
		ev := a.entries[i].Vector
		if ev.Equal(v) {
			return Duplicate
		}
		if ev.Dominates(v) {
			return Dominated
		}
	}

	for i := range a.entries {
		if a.entries[i].dead {
			continue
		}
		if v.Dominates(a.entries[i].Vector) {
			a.entries[i].dead = true
			heap.Push(&a.dead, i)
		}
	}

	a.entries = append(a.entries, record{Entry: Entry{Vector: v, Placement: w}})

	if len(a.dead) >= minRebuildThreshold && len(a.dead)*2 >= len(a.entries) {
		a.rebuild()
	}
	return Inserted
}

// rebuild compacts away tombstoned entries, preserving the relative order
// of the entries that remain.
func (a *Archive) rebuild() {
	live := make([]record, 0, a.Len())
	for _, e := range a.entries {
		if !e.dead {
			live = append(live, e)
		}
	}
	a.entries = live
	a.dead = a.dead[:0]
}

// Contains reports whether v is archived exactly (not merely dominated).
func (a *Archive) Contains(v model.ObjectiveVector) bool {
	for _, e := range a.entries {
		if !e.dead && e.Vector.Equal(v) {
			return true
		}
	}
	return false
}

// Iter returns the live entries in insertion order.
func (a *Archive) Iter() []Entry {
	out := make([]Entry, 0, a.Len())
	for _, e := range a.entries {
		if !e.dead {
			out = append(out, e.Entry)
		}
	}
	return out
}

// Cone is the dominance-cone shape the driver consumes to build a Pareto
// blocking clause: Forbids reports whether a candidate vector falls within
// the cone dominated by Ref and must therefore be excluded from future
// search (spec.md §4.6 step 3).
type Cone struct {
	Ref model.ObjectiveVector
}

// Forbids reports whether other is Pareto-dominated by the cone's
// reference vector (componentwise ≥, strict in at least one) — the set of
// models the driver's blocking clause must exclude.
func (c Cone) Forbids(other model.ObjectiveVector) bool {
	return c.Ref.Dominates(other)
}

// DominanceCone returns the blocking-clause shape for a newly found vector
// v: future models falling in this cone are Pareto-irrelevant given v is
// already archived.
func (a *Archive) DominanceCone(v model.ObjectiveVector) Cone {
	return Cone{Ref: v}
}
