// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	instancePath string
	logLevel     string

	algorithm           string
	timeLimit           float64
	migrationPercentile float64
	symmetryBreaking    bool
	ignorePlatform      bool
	ignoreAntiColocate  bool
	ignoreDenEval       bool
	ignoreDenAlloc      bool
	hashFunctions       bool
	hashRounds          int
	stratifyMode        string
	partMaxConflicts    int
	litWeightRatio      float64
	partitionNumber     int
	pathDiversification bool
	smartMutationRate   float64
	maxConflicts        int
	disableDomUnfixing  bool
	smartImprovement    bool
	improveRelaxRate    float64
	improveMaxConflicts int
	seed                int64

	emitPlacements bool
	opbDumpPath    string
	opbDecimal     bool
	popOutPath     string
)

var rootCmd = &cobra.Command{
	Use:   "vmcwm",
	Short: "Pareto-optimal VM consolidation with migration",
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search for Pareto-optimal consolidation placements",
	RunE:  runSolve,
}

// Execute runs the root command, exiting the process non-zero only on
// I/O or parse failures (spec.md §6 exit-codes table); domain
// infeasibility and search exhaustion are reported via the "s SUCCESS"/
// "s FAILURE" result line, not the exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	solveCmd.Flags().StringVar(&instancePath, "instance", "", "instance text file path (required)")
	solveCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")

	solveCmd.Flags().StringVar(&algorithm, "algorithm", "PCLD", "one of MCS, PBO, LS, GIA, HE, PCLD, PLBX")
	solveCmd.Flags().Float64Var(&timeLimit, "time-limit", 0, "global deadline in seconds (0 = unbounded)")
	solveCmd.Flags().Float64Var(&migrationPercentile, "migration-percentile", 0, "migration budget fraction, overriding the instance file's value")
	solveCmd.Flags().BoolVar(&symmetryBreaking, "symmetry-breaking", false, "emit lex-order constraints over equivalent PMs")
	solveCmd.Flags().BoolVar(&ignorePlatform, "ignore-platform", false, "drop allowed-PM platform restrictions")
	solveCmd.Flags().BoolVar(&ignoreAntiColocate, "ignore-anti-colocation", false, "drop anti-colocation constraints")
	solveCmd.Flags().BoolVar(&ignoreDenEval, "ignore-den-eval", false, "drop the wastage denominator from the guide objective used to steer search")
	solveCmd.Flags().BoolVar(&ignoreDenAlloc, "ignore-den-alloc", false, "drop the wastage denominator objective from the encoded model/OPB dump")
	solveCmd.Flags().BoolVar(&hashFunctions, "hash-functions", false, "enable XOR-parity diversification")
	solveCmd.Flags().IntVar(&hashRounds, "hash-rounds", 0, "bound on hash-enumeration rounds (0 = unbounded, runs to the deadline)")
	solveCmd.Flags().StringVar(&stratifyMode, "stratify", "merged", "one of merged, split, off")
	solveCmd.Flags().IntVar(&partMaxConflicts, "part-max-conflicts", 0, "per-partition solver conflict budget (0 = unlimited)")
	solveCmd.Flags().Float64Var(&litWeightRatio, "lit-weight-ratio", 0.5, "literal-to-weight-ratio stratifier threshold")
	solveCmd.Flags().IntVar(&partitionNumber, "partition-number", 0, "fixed partition count overriding the ratio-based stratifier (0 = use lit-weight-ratio; ignored when stratify=off)")
	solveCmd.Flags().BoolVar(&pathDiversification, "path-diversification", false, "rotate partition order between CLD iterations")
	solveCmd.Flags().Float64Var(&smartMutationRate, "smart-mutation-rate", 0.3, "fraction of fixed variables Repair randomly unfixes")
	solveCmd.Flags().IntVar(&maxConflicts, "max-conflicts", 0, "Repair's solver conflict budget (0 = unlimited)")
	solveCmd.Flags().BoolVar(&disableDomUnfixing, "disable-domain-unfixing", false, "disable Repair's domain-based unfixing retry")
	solveCmd.Flags().BoolVar(&smartImprovement, "smart-improvement", false, "make Repair re-solve already-feasible candidates instead of returning them unchanged")
	solveCmd.Flags().Float64Var(&improveRelaxRate, "improve-relax-rate", 0, "reserved for future Improve relaxation tuning")
	solveCmd.Flags().IntVar(&improveMaxConflicts, "improve-max-conflicts", 0, "Improve's approximate total conflict budget (0 = unlimited)")
	solveCmd.Flags().Int64Var(&seed, "seed", 1, "deterministic search seed")

	solveCmd.Flags().BoolVar(&emitPlacements, "placements", false, "emit placement lines alongside each result")
	solveCmd.Flags().StringVar(&opbDumpPath, "opb-dump", "", "also write a multi-objective OPB dump to this path")
	solveCmd.Flags().BoolVar(&opbDecimal, "opb-decimal", false, "allow decimal coefficients in the OPB dump instead of integer reduction")
	solveCmd.Flags().StringVar(&popOutPath, "population-out", "", "also write the final archive as a population YAML file")

	rootCmd.AddCommand(solveCmd)
}

func parseLogLevel() (logrus.Level, error) {
	return logrus.ParseLevel(logLevel)
}
