package app

import (
	"fmt"
	"io"

	"github.com/rook-computer/tiergen/internal/state"
)

// WriteSummary reports a finished batch. A clean run prints the generated
// count; any other phase prints all three counts and every failure.
func WriteSummary(w io.Writer, snap state.State) {
	if snap.Phase == state.DONE {
		fmt.Fprintf(w, "Generated %d image(s)!\n", snap.Generated)
		if snap.Skipped > 0 {
			fmt.Fprintf(w, "Skipped %d existing image(s).\n", snap.Skipped)
		}
		return
	}

	fmt.Fprintf(w, "Batch %s: generated %d, skipped %d, failed %d\n",
		snap.Phase, snap.Generated, snap.Skipped, len(snap.Failures))
	for _, failure := range snap.Failures {
		fmt.Fprintf(w, "  %s / %s: %v\n", failure.Sinner, failure.Identity, failure.Err)
	}
}
