package objective

import (
	"math/big"

	"github.com/vmcwm/vmcwm/internal/pbsolver"
)

// Source distinguishes which side of a numerator/denominator pair a term
// came from; meaningless outside that context (zero value = Numerator).
type Source int

const (
	Numerator Source = iota
	Denominator
)

// Term is one literal of an objective with a rational weight.
type Term struct {
	Lit    pbsolver.Lit
	Weight *big.Rat
	Source Source
}

// Objective is a named weighted sum over literals, to be minimized.
type Objective struct {
	Name  string
	Terms []Term
}

// New returns an empty, named Objective.
func New(name string) Objective {
	return Objective{Name: name}
}

// Add appends terms and returns the extended Objective (Objective values
// are small and copied by value, matching the teacher's grouped-config
// struct style rather than pointer receivers for simple accumulation).
func (o Objective) Add(terms ...Term) Objective {
	o.Terms = append(append([]Term(nil), o.Terms...), terms...)
	return o
}

// IntTerm is a Term after rational-to-integer reduction.
type IntTerm struct {
	Lit    pbsolver.Lit
	Weight int64
}
