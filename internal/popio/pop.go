package popio

import (
	"fmt"
	"io"
	"math/big"

	"gopkg.in/yaml.v3"

	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// unassigned marks a VM absent from an individual's placement.
const unassigned = -1

// Vector is the YAML-serialisable form of a model.ObjectiveVector.
type Vector struct {
	Energy    string `yaml:"energy"`
	Wastage   string `yaml:"wastage"`
	Migration int64  `yaml:"migration"`
}

// Individual is one archived (objective vector, placement) pair, with the
// placement encoded as one PM id per VM in model.Instance.AllVMs order.
type Individual struct {
	Vector    Vector `yaml:"vector"`
	Placement []int  `yaml:"placement"`
}

// Population is the top-level document written by Dump and read by Load.
type Population struct {
	Individuals []Individual `yaml:"population"`
}

// Encode converts archived entries into a Population relative to inst's VM
// enumeration order.
func Encode(inst model.Instance, entries []archive.Entry) Population {
	vms := inst.AllVMs()
	pop := Population{Individuals: make([]Individual, len(entries))}
	for i, e := range entries {
		placement := make([]int, len(vms))
		for j, vm := range vms {
			pmID, ok := e.Placement.Get(vm.Key)
			if !ok {
				placement[j] = unassigned
				continue
			}
			placement[j] = pmID
		}
		pop.Individuals[i] = Individual{
			Vector: Vector{
				Energy:    e.Vector.Energy.RatString(),
				Wastage:   e.Vector.Wastage.RatString(),
				Migration: e.Vector.Migration,
			},
			Placement: placement,
		}
	}
	return pop
}

// Decode converts a Population back into archive entries relative to
// inst's VM enumeration order.
func Decode(inst model.Instance, pop Population) ([]archive.Entry, error) {
	vms := inst.AllVMs()
	entries := make([]archive.Entry, len(pop.Individuals))
	for i, ind := range pop.Individuals {
		if len(ind.Placement) != len(vms) {
			return nil, fmt.Errorf("%w: individual %d has %d placement entries, want %d",
				vmerr.ErrIO, i, len(ind.Placement), len(vms))
		}

		energy, ok := new(big.Rat).SetString(ind.Vector.Energy)
		if !ok {
			return nil, fmt.Errorf("%w: individual %d: invalid energy %q", vmerr.ErrIO, i, ind.Vector.Energy)
		}
		wastage, ok := new(big.Rat).SetString(ind.Vector.Wastage)
		if !ok {
			return nil, fmt.Errorf("%w: individual %d: invalid wastage %q", vmerr.ErrIO, i, ind.Vector.Wastage)
		}

		placement := make(model.Mapping, len(vms))
		for j, vm := range vms {
			if ind.Placement[j] == unassigned {
				continue
			}
			placement[vm.Key] = ind.Placement[j]
		}

		entries[i] = archive.Entry{
			Vector: model.ObjectiveVector{
				Energy:    energy,
				Wastage:   wastage,
				Migration: ind.Vector.Migration,
			},
			Placement: placement,
		}
	}
	return entries, nil
}

// Dump writes pop as YAML to w.
func Dump(w io.Writer, pop Population) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort on an already-failed encode
	if err := enc.Encode(pop); err != nil {
		return fmt.Errorf("%w: %v", vmerr.ErrIO, err)
	}
	return nil
}

// Load reads a Population as YAML from r.
func Load(r io.Reader) (Population, error) {
	var pop Population
	if err := yaml.NewDecoder(r).Decode(&pop); err != nil {
		return Population{}, fmt.Errorf("%w: %v", vmerr.ErrIO, err)
	}
	return pop, nil
}
