package driver

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/encoder"
	"github.com/vmcwm/vmcwm/internal/mcs"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/objective"
	"github.com/vmcwm/vmcwm/internal/pbsolver"
	"github.com/vmcwm/vmcwm/internal/rng"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// Driver runs one of the three shared-state-machine search modes over an
// already-encoded instance.
type Driver struct {
	facade pbsolver.Facade
	vi     *encoder.VarIndex
	inst   model.Instance
	cfg    Config
	sets   []guideSet

	arc *archive.Archive
	rng *rng.PartitionedRNG
	log *logrus.Logger
}

// New builds a Driver over facade (the already-encoded solver for inst),
// vi (its variable index), and mgr (the guide objectives encoder.
// BuildObjectives populated). Rejects the LBX+hash combination per
// spec.md §9 Open Question (c).
func New(facade pbsolver.Facade, vi *encoder.VarIndex, inst model.Instance, mgr *objective.Manager, cfg Config, log *logrus.Logger) (*Driver, error) {
	if cfg.MCSVariant == mcs.LBX && cfg.AugmentWithHash {
		return nil, fmt.Errorf("%w: LBX correction-subset extraction combined with hash augmentation", vmerr.ErrUnsupportedCombination)
	}

	sets, err := buildGuideSets(mgr, cfg.IgnoreDenEval)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logrus.New()
	}

	if cfg.ConflictBudget == 0 {
		cfg.ConflictBudget = -1
	}

	return &Driver{
		facade: facade,
		vi:     vi,
		inst:   inst,
		cfg:    cfg,
		sets:   sets,
		arc:    archive.New(),
		rng:    rng.NewPartitionedRNG(cfg.Seed),
		log:    log,
	}, nil
}

// buildGuideSets extracts the energy, (merged) wastage, and migration
// guide objectives from mgr as reduced integer term lists. ignoreDenEval
// forces the wastage guide to numerator-only even if mgr carries a
// denominator objective.
func buildGuideSets(mgr *objective.Manager, ignoreDenEval bool) ([]guideSet, error) {
	energyObj, ok := mgr.Get(encoder.ObjEnergy)
	if !ok {
		return nil, fmt.Errorf("driver: objective manager missing %q", encoder.ObjEnergy)
	}
	energyTerms, err := energyObj.Reduce()
	if err != nil {
		return nil, err
	}

	migrationObj, ok := mgr.Get(encoder.ObjMigration)
	if !ok {
		return nil, fmt.Errorf("driver: objective manager missing %q", encoder.ObjMigration)
	}
	migrationTerms, err := migrationObj.Reduce()
	if err != nil {
		return nil, err
	}

	var wastageTerms []objective.IntTerm
	if _, hasDen := mgr.Get(encoder.ObjWastageDen); hasDen && !ignoreDenEval {
		merged, err := mgr.DivisionMerged(encoder.ObjWastageNum, encoder.ObjWastageDen)
		if err != nil {
			return nil, err
		}
		wastageTerms, err = merged.Reduce()
		if err != nil {
			return nil, err
		}
	} else {
		numObj, ok := mgr.Get(encoder.ObjWastageNum)
		if !ok {
			return nil, fmt.Errorf("driver: objective manager missing %q", encoder.ObjWastageNum)
		}
		wastageTerms, err = numObj.Reduce()
		if err != nil {
			return nil, err
		}
	}

	return []guideSet{
		{name: encoder.ObjEnergy, terms: energyTerms},
		{name: "wastage", terms: wastageTerms},
		{name: encoder.ObjMigration, terms: migrationTerms},
	}, nil
}

// Archive returns the archive the driver has accumulated so far.
func (d *Driver) Archive() *archive.Archive {
	return d.arc
}

func (d *Driver) deadlineExpired() bool {
	return !d.cfg.Deadline.IsZero() && !time.Now().Before(d.cfg.Deadline)
}

// Run executes the configured search mode to completion (front exhausted,
// or deadline reached) and returns the accumulated archive.
func (d *Driver) Run() (*archive.Archive, error) {
	switch d.cfg.Mode {
	case ModeGIA:
		return d.runGIA()
	case ModeHash:
		return d.runHash()
	default:
		return d.runParetoMCS()
	}
}

func (d *Driver) combinedTerms() []objective.IntTerm {
	var all []objective.IntTerm
	for _, s := range d.sets {
		all = append(all, s.terms...)
	}
	return all
}
