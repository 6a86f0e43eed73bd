package resultio

import (
	"fmt"
	"io"

	"github.com/joeycumines/floater"
	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/model"
)

// decimalPrec is the fixed fractional-digit count for energy/wastage
// (spec.md §6).
const decimalPrec = 5

// WriteResults writes one objective line per entry in entries, in the
// order given (callers that need deterministic ordering should sort the
// archive's Iter() output first; resultio itself does not reorder). When
// includePlacements is true, each objective line is followed by one "p"
// line per assigned VM.
func WriteResults(w io.Writer, entries []archive.Entry, includePlacements bool) error {
	for _, e := range entries {
		if err := writeObjectiveLine(w, e.Vector); err != nil {
			return err
		}
		if includePlacements {
			if err := writePlacementLines(w, e.Placement); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeObjectiveLine(w io.Writer, v model.ObjectiveVector) error {
	energy := floater.FormatDecimalRat(v.Energy, decimalPrec, 0)
	wastage := floater.FormatDecimalRat(v.Wastage, decimalPrec, 0)
	_, err := fmt.Fprintf(w, "e %s w %s m %d\n", energy, wastage, v.Migration)
	return err
}

func writePlacementLines(w io.Writer, placement model.Mapping) error {
	for key, pmID := range placement {
		if _, err := fmt.Fprintf(w, "p %s-%d -> %d\n", key.JobID, key.Index, pmID); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatus writes the terminal result-status line: "s SUCCESS" when the
// search produced at least one archived solution, "s FAILURE" otherwise
// (spec.md §6 exit-codes table — this line, not the process exit code,
// distinguishes the two; both are exit code 0).
func WriteStatus(w io.Writer, success bool) error {
	status := "FAILURE"
	if success {
		status = "SUCCESS"
	}
	_, err := fmt.Fprintf(w, "s %s\n", status)
	return err
}
