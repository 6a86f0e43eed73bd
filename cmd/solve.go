package cmd

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/driver"
	"github.com/vmcwm/vmcwm/internal/encoder"
	"github.com/vmcwm/vmcwm/internal/instio"
	"github.com/vmcwm/vmcwm/internal/mcs"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/objective"
	"github.com/vmcwm/vmcwm/internal/popio"
	"github.com/vmcwm/vmcwm/internal/resultio"
	"github.com/vmcwm/vmcwm/internal/rng"
	"github.com/vmcwm/vmcwm/internal/stratify"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

func newLogger(level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(level)
	return log
}

func runSolve(cmd *cobra.Command, _ []string) error {
	level, err := parseLogLevel()
	if err != nil {
		return fmt.Errorf("%w: invalid log level %q", vmerr.ErrIO, logLevel)
	}
	log := newLogger(level)

	if instancePath == "" {
		return fmt.Errorf("%w: --instance is required", vmerr.ErrIO)
	}
	f, err := os.Open(instancePath)
	if err != nil {
		return fmt.Errorf("%w: %v", vmerr.ErrIO, err)
	}
	inst, err := instio.Parse(f)
	f.Close()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("migration-percentile") {
		inst.MigrationPercentile = new(big.Rat).SetFloat64(migrationPercentile)
	}

	encOpts := encoder.Options{
		SymmetryBreaking:     symmetryBreaking,
		IgnorePlatform:       ignorePlatform,
		IgnoreAntiColocation: ignoreAntiColocate,
		IgnoreDenominators:   ignoreDenAlloc,
		HashFunctions:        hashFunctions,
	}

	solver, vi, err := encoder.Encode(inst, encOpts)
	if err != nil {
		if errors.Is(err, vmerr.ErrInstanceInfeasible) {
			log.WithError(err).Info("instance infeasible at encoding time")
			return resultio.WriteStatus(os.Stdout, false)
		}
		return err
	}

	mgr := encoder.BuildObjectives(inst, vi, encOpts)

	if opbDumpPath != "" {
		if err := dumpOPB(mgr); err != nil {
			return err
		}
	}

	mode, mcsVariant, err := parseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	cfg := driver.Config{
		Mode:                mode,
		MCSVariant:          mcsVariant,
		StratifyMode:        parseStratifyMode(stratifyMode, litWeightRatio, partitionNumber),
		ConflictBudget:      partMaxConflicts,
		PathDiversification: pathDiversification,
		AugmentWithHash:     hashFunctions && mode == driver.ModeParetoMCS,
		HashRounds:          hashRounds,
		IgnoreDenEval:       ignoreDenEval,
		Seed:                rng.NewSeed(seed),
		EncoderOptions:      encOpts,
	}
	if timeLimit > 0 {
		cfg.Deadline = time.Now().Add(time.Duration(timeLimit * float64(time.Second)))
	}

	d, err := driver.New(solver, vi, inst, mgr, cfg, log)
	if err != nil {
		return err
	}

	arc, err := d.Run()
	if err != nil {
		return err
	}

	entries := arc.Iter()
	if err := resultio.WriteResults(os.Stdout, entries, emitPlacements); err != nil {
		return err
	}
	if err := resultio.WriteStatus(os.Stdout, len(entries) > 0); err != nil {
		return err
	}

	if popOutPath != "" {
		if err := dumpPopulation(inst, entries); err != nil {
			return err
		}
	}

	return nil
}

func dumpOPB(mgr *objective.Manager) error {
	f, err := os.Create(opbDumpPath)
	if err != nil {
		return fmt.Errorf("%w: %v", vmerr.ErrIO, err)
	}
	defer f.Close()
	return encoder.DumpOPB(f, mgr, encoder.OPBOptions{
		AllowDecimalCoefficients: opbDecimal,
		IgnoreDenominators:       ignoreDenAlloc,
	})
}

func dumpPopulation(inst model.Instance, entries []archive.Entry) error {
	f, err := os.Create(popOutPath)
	if err != nil {
		return fmt.Errorf("%w: %v", vmerr.ErrIO, err)
	}
	defer f.Close()
	return popio.Dump(f, popio.Encode(inst, entries))
}

// parseAlgorithm maps the "algorithm" CLI value onto a driver.SearchMode
// and mcs.Mode (spec.md §6). PBO and LS name algorithms out of scope per
// spec.md §1's Non-goals (bin-packing heuristics, pseudo-Boolean
// optimization, genetic/evolutionary search are not this system's
// subject) and are rejected with a clear configuration error rather than
// silently accepted or mapped onto an unrelated mode.
func parseAlgorithm(alg string) (driver.SearchMode, mcs.Mode, error) {
	switch alg {
	case "PCLD", "MCS":
		return driver.ModeParetoMCS, mcs.CLD, nil
	case "PLBX":
		return driver.ModeParetoMCS, mcs.LBX, nil
	case "GIA":
		return driver.ModeGIA, mcs.CLD, nil
	case "HE":
		return driver.ModeHash, mcs.CLD, nil
	case "PBO", "LS":
		return 0, 0, fmt.Errorf("%w: algorithm %q is not implemented by this core", vmerr.ErrUnsupportedCombination, alg)
	default:
		return 0, 0, fmt.Errorf("%w: unrecognized algorithm %q", vmerr.ErrUnsupportedCombination, alg)
	}
}

// parseStratifyMode maps the "stratify" CLI value onto a stratify.Mode.
// "off" degrades to a single fixed partition (FixedPartition with n=1
// always returns exactly one partition holding every term). "split"
// currently falls back to the same merged-stream behavior as "merged" —
// see DESIGN.md's Open Question (f): true independent numerator/
// denominator streams (stratify.Split/SplitStream) are implemented and
// tested but not yet wired into the driver's single combined-term
// partitioning pass.
func parseStratifyMode(flag string, ratio float64, n int) stratify.Mode {
	if flag == "off" {
		return stratify.Mode{Fixed: true, N: 1}
	}
	if n > 0 {
		return stratify.Mode{Fixed: true, N: n}
	}
	return stratify.Mode{Fixed: false, Ratio: ratio}
}
