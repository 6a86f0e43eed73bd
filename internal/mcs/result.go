package mcs

import "github.com/vmcwm/vmcwm/internal/pbsolver"

// Mode selects which correction-subset extraction procedure RunPartitions
// uses.
type Mode int

const (
	CLD Mode = iota
	LBX
)

// Result is the outcome of running one MCS procedure over one partition.
type Result struct {
	Model   []bool
	Cost    int64
	Optimal bool
}

func modelSatisfies(model []bool, l pbsolver.Lit) bool {
	if model == nil {
		return false
	}
	v := model[l.Var()-1]
	if l.Negative() {
		return !v
	}
	return v
}
