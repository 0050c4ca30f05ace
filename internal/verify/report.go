package verify

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
)

// Print renders the summary as a console report: one line per project, the
// per-artifact tally, and the final verdict.
func Print(w io.Writer, summary *Summary) {
	total := len(summary.Records)

	for _, record := range summary.Records {
		mark := passMark("✓")
		if !record.Complete {
			mark = failMark("✗")
		}
		fmt.Fprintf(w, "%s %s", mark, record.Name)

		var missing []string
		for _, artifact := range AllArtifacts {
			if !record.Artifacts[artifact] {
				missing = append(missing, string(artifact))
			}
		}
		if len(missing) > 0 {
			fmt.Fprint(w, " (missing:")
			for _, m := range missing {
				fmt.Fprintf(w, " %s", m)
			}
			fmt.Fprint(w, ")")
		}
		if record.CompileOK != nil {
			fmt.Fprintf(w, " compile=%s", phaseMark(*record.CompileOK))
		}
		if record.TestOK != nil {
			fmt.Fprintf(w, " test=%s", phaseMark(*record.TestOK))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Artifacts:")
	for _, artifact := range AllArtifacts {
		fmt.Fprintf(w, "  %-16s %d/%d\n", artifact, summary.ArtifactTally[artifact], total)
	}

	fmt.Fprintln(w)
	if summary.AllComplete {
		fmt.Fprintf(w, "%s %d/%d projects complete\n", passMark("✓"), summary.CompleteCount, total)
	} else {
		fmt.Fprintf(w, "%s %d/%d projects complete\n", failMark("✗"), summary.CompleteCount, total)
	}
}

func phaseMark(ok bool) string {
	if ok {
		return passMark("pass")
	}
	return failMark("fail")
}

// WriteJSON serializes the summary for machine consumption.
func WriteJSON(w io.Writer, summary *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}
