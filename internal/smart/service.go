package smart

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vmcwm/vmcwm/internal/encoder"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/objective"
	"github.com/vmcwm/vmcwm/internal/rng"
)

// Service is the re-entrant smart mutation/improvement façade over one
// VMCwM instance.
type Service struct {
	inst    model.Instance
	encOpts encoder.Options
	opts    Options
	rng     *rng.PartitionedRNG
	log     *logrus.Logger
}

// New builds a Service over inst. log may be nil (defaults to a
// debug-or-quieter logger, per doc.go).
func New(inst model.Instance, encOpts encoder.Options, opts Options, seed rng.Seed, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{
		inst:    inst,
		encOpts: encOpts,
		opts:    opts,
		rng:     rng.NewPartitionedRNG(seed),
		log:     log,
	}
}

// guideTerms mirrors internal/driver's buildGuideSets: it extracts the
// energy, (merged) wastage, and migration guide objectives from mgr as one
// combined reduced integer term list for stratification. Kept as a small,
// intentional duplication of internal/driver's logic rather than an
// import (smart must not depend on driver, and driver must not depend on
// smart — see DESIGN.md).
func guideTerms(mgr *objective.Manager, ignoreDenEval bool) ([]objective.IntTerm, error) {
	var all []objective.IntTerm

	energyObj, ok := mgr.Get(encoder.ObjEnergy)
	if !ok {
		return nil, fmt.Errorf("smart: objective manager missing %q", encoder.ObjEnergy)
	}
	energyTerms, err := energyObj.Reduce()
	if err != nil {
		return nil, err
	}
	all = append(all, energyTerms...)

	migrationObj, ok := mgr.Get(encoder.ObjMigration)
	if !ok {
		return nil, fmt.Errorf("smart: objective manager missing %q", encoder.ObjMigration)
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
			return nil, fmt.Errorf("smart: objective manager missing %q", encoder.ObjWastageNum)
		}
		wastageTerms, err = numObj.Reduce()
		if err != nil {
			return nil, err
		}
	}
	all = append(all, wastageTerms...)
	all = append(all, migrationTerms...)

	return all, nil
}
