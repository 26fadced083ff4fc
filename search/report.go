package search

import (
	"fmt"
	"io"
)

// Report writes the path summary to w in three lines:
//
//	Positions: [(0, 0) (0, 1)]
//	Actions: [E]
//	This took 1 steps
//
// A result without a path reports "No path from <start> to <goal>".
func (r *Result) Report(w io.Writer) error {
	if !r.Found {
		_, err := fmt.Fprintf(w, "No path from %v to %v\n", r.Start, r.Goal)
		return err
	}
	_, err := fmt.Fprintf(w, "Positions: %v\nActions: %v\nThis took %d steps\n",
		r.Positions, r.Actions, r.Cost)

	return err
}
