package objective

import "fmt"

// Manager owns the named objectives produced by the encoder and exposes
// the division-handling operations spec.md §4.3 requires: divisionMerged
// and divisionSplit, both operating on a numerator/denominator pair (used
// for the wastage objective, which the encoder cannot express as a single
// linear PB function because it is a ratio).
type Manager struct {
	objectives map[string]Objective
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{objectives: make(map[string]Objective)}
}

// Set stores (or replaces) a named objective.
func (m *Manager) Set(o Objective) {
	m.objectives[o.Name] = o
}

// Get returns the named objective and whether it exists.
func (m *Manager) Get(name string) (Objective, bool) {
	o, ok := m.objectives[name]
	return o, ok
}

// DivisionMerged combines a numerator and denominator objective into one
// ordered term list (spec.md §4.3: "merges numerator and denominator
// objectives into a single weighted sum by the merged strategy"): every
// term keeps its own weight and Source tag, so the Stratifier can bucket
// numerator and denominator literals together by combined weight
// (spec.md §4.5 "merged" division handling).
func (m *Manager) DivisionMerged(numName, denName string) (Objective, error) {
	num, ok := m.objectives[numName]
	if !ok {
		return Objective{}, fmt.Errorf("objective manager: unknown numerator objective %q", numName)
	}
	den, ok := m.objectives[denName]
	if !ok {
		return Objective{}, fmt.Errorf("objective manager: unknown denominator objective %q", denName)
	}

	merged := New(numName + "+" + denName)
	merged = merged.Add(num.Terms...)
	merged = merged.Add(den.Terms...)
	return merged, nil
}

// DivisionSplit returns the numerator and denominator objectives
// unchanged, for the Stratifier's "split" division-handling mode, which
// stratifies them independently and alternates between the two streams
// by remaining weight potential (spec.md §4.5).
func (m *Manager) DivisionSplit(numName, denName string) (Objective, Objective, error) {
	num, ok := m.objectives[numName]
	if !ok {
		return Objective{}, Objective{}, fmt.Errorf("objective manager: unknown numerator objective %q", numName)
	}
	den, ok := m.objectives[denName]
	if !ok {
		return Objective{}, Objective{}, fmt.Errorf("objective manager: unknown denominator objective %q", denName)
	}
	return num, den, nil
}
