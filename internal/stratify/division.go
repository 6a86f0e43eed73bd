package stratify

import (
	"math/rand"

	"github.com/vmcwm/vmcwm/internal/objective"
)

// Mode selects LWR or fixed-partition stratification.
type Mode struct {
	Fixed bool
	Ratio float64 // used when !Fixed
	N     int     // used when Fixed
}

// Apply stratifies terms under m's selected mode.
func (m Mode) Apply(terms []objective.IntTerm) []Partition {
	if m.Fixed {
		return FixedPartition(terms, m.N)
	}
	return LWR(terms, m.Ratio)
}

// Merged combines a numerator and denominator objective into one weighted
// sum and stratifies it as a single ordered list (spec.md §4.5 "merged"
// division handling).
func Merged(mgr *objective.Manager, numName, denName string, mode Mode) ([]Partition, error) {
	combined, err := mgr.DivisionMerged(numName, denName)
	if err != nil {
		return nil, err
	}
	terms, err := combined.Reduce()
	if err != nil {
		return nil, err
	}
	return mode.Apply(terms), nil
}

// SplitStream holds two independently stratified streams (numerator and
// denominator) and hands out their partitions in an order driven by
// remaining weight potential, per spec.md §4.5 "split" division handling:
// "at each step the driver picks the next partition from whichever stream
// has the greater remaining potential (probability proportional to
// remaining weight sum)".
type SplitStream struct {
	num, den       []Partition
	numIdx, denIdx int
}

// Split stratifies the numerator and denominator objectives independently.
func Split(mgr *objective.Manager, numName, denName string, mode Mode) (*SplitStream, error) {
	num, den, err := mgr.DivisionSplit(numName, denName)
	if err != nil {
		return nil, err
	}
	numTerms, err := num.Reduce()
	if err != nil {
		return nil, err
	}
	denTerms, err := den.Reduce()
	if err != nil {
		return nil, err
	}
	return &SplitStream{num: mode.Apply(numTerms), den: mode.Apply(denTerms)}, nil
}

func remainingWeight(parts []Partition, idx int) int64 {
	var total int64
	for _, p := range parts[idx:] {
		total += p.Weight()
	}
	return total
}

// Next picks the next partition from whichever stream has the greater
// remaining weight potential, breaking ties and distributing proportional
// probability via r. Returns ok=false once both streams are exhausted.
func (s *SplitStream) Next(r *rand.Rand) (p Partition, fromNumerator bool, ok bool) {
	numLeft := len(s.num) - s.numIdx
	denLeft := len(s.den) - s.denIdx
	if numLeft == 0 && denLeft == 0 {
		return Partition{}, false, false
	}
	if numLeft == 0 {
		p = s.den[s.denIdx]
		s.denIdx++
		return p, false, true
	}
	if denLeft == 0 {
		p = s.num[s.numIdx]
		s.numIdx++
		return p, true, true
	}

	numWeight := remainingWeight(s.num, s.numIdx)
	denWeight := remainingWeight(s.den, s.denIdx)
	total := numWeight + denWeight
	pickNum := true
	if total > 0 {
		pickNum = r.Int63n(total) < numWeight
	}
	if pickNum {
		p = s.num[s.numIdx]
		s.numIdx++
		return p, true, true
	}
	p = s.den[s.denIdx]
	s.denIdx++
	return p, false, true
}
