package instio

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// Parse reads the instance text format (doc.go) from r.
func Parse(r io.Reader) (model.Instance, error) {
	var (
		pms          []model.PhysicalMachine
		jobIndex     = map[string]int{}
		jobs         []model.Job
		current      = model.Mapping{}
		migrationRat *big.Rat
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		directive := fields[0]
		args := fields[1:]

		var err error
		switch directive {
		case "pm":
			var pm model.PhysicalMachine
			pm, err = parsePM(args)
			if err == nil {
				pms = append(pms, pm)
			}
		case "job":
			err = func() error {
				if len(args) != 1 {
					return fmt.Errorf("job: want 1 field, got %d", len(args))
				}
				id := args[0]
				if _, dup := jobIndex[id]; dup {
					return fmt.Errorf("job %q declared twice", id)
				}
				jobIndex[id] = len(jobs)
				jobs = append(jobs, model.Job{ID: id})
				return nil
			}()
		case "vm":
			err = parseVM(args, jobIndex, jobs)
		case "current":
			err = parseCurrent(args, current)
		case "migration":
			err = func() error {
				if len(args) != 1 {
					return fmt.Errorf("migration: want 1 field, got %d", len(args))
				}
				rat, perr := parseRat(args[0])
				if perr != nil {
					return perr
				}
				migrationRat = rat
				return nil
			}()
		default:
			err = fmt.Errorf("unrecognized directive %q", directive)
		}
		if err != nil {
			return model.Instance{}, fmt.Errorf("%w: instance line %d: %v", vmerr.ErrIO, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return model.Instance{}, fmt.Errorf("%w: %v", vmerr.ErrIO, err)
	}

	inst := model.Instance{
		PMs:                 pms,
		Jobs:                jobs,
		Current:             current,
		MigrationPercentile: migrationRat,
	}
	return inst, nil
}

func parsePM(args []string) (model.PhysicalMachine, error) {
	if len(args) != 5 {
		return model.PhysicalMachine{}, fmt.Errorf("pm: want 5 fields, got %d", len(args))
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return model.PhysicalMachine{}, fmt.Errorf("pm id: %w", err)
	}
	cpu, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return model.PhysicalMachine{}, fmt.Errorf("pm cpu: %w", err)
	}
	mem, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return model.PhysicalMachine{}, fmt.Errorf("pm mem: %w", err)
	}
	idle, err := parseRat(args[3])
	if err != nil {
		return model.PhysicalMachine{}, fmt.Errorf("pm idle: %w", err)
	}
	full, err := parseRat(args[4])
	if err != nil {
		return model.PhysicalMachine{}, fmt.Errorf("pm full: %w", err)
	}
	return model.PhysicalMachine{ID: id, CPU: cpu, Mem: mem, Idle: idle, Full: full}, nil
}

func parseVM(args []string, jobIndex map[string]int, jobs []model.Job) error {
	if len(args) < 4 {
		return fmt.Errorf("vm: want at least 4 fields, got %d", len(args))
	}
	jobID := args[0]
	idx, ok := jobIndex[jobID]
	if !ok {
		return fmt.Errorf("vm: job %q not declared", jobID)
	}
	vmIndex, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("vm index: %w", err)
	}
	cpu, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("vm cpu: %w", err)
	}
	mem, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("vm mem: %w", err)
	}

	vm := model.VirtualMachine{
		Key: model.VMKey{JobID: jobID, Index: vmIndex},
		CPU: cpu,
		Mem: mem,
	}
	for _, flag := range args[4:] {
		switch {
		case flag == "anticolocate":
			vm.AntiColocate = true
		case strings.HasPrefix(flag, "allow="):
			allowed, err := parseAllowSet(strings.TrimPrefix(flag, "allow="))
			if err != nil {
				return fmt.Errorf("vm allow: %w", err)
			}
			vm.Allowed = allowed
		default:
			return fmt.Errorf("vm: unrecognized flag %q", flag)
		}
	}

	jobs[idx].VMs = append(jobs[idx].VMs, vm)
	return nil
}

func parseAllowSet(csv string) (map[int]bool, error) {
	ids := strings.Split(csv, ",")
	out := make(map[int]bool, len(ids))
	for _, s := range ids {
		id, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("pm id %q: %w", s, err)
		}
		out[id] = true
	}
	return out, nil
}

func parseCurrent(args []string, current model.Mapping) error {
	if len(args) != 3 {
		return fmt.Errorf("current: want 3 fields, got %d", len(args))
	}
	jobID := args[0]
	vmIndex, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("current index: %w", err)
	}
	pmID, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("current pm: %w", err)
	}
	current[model.VMKey{JobID: jobID, Index: vmIndex}] = pmID
	return nil
}
