// Package export renders a sampled results histogram into the fixed CSV
// schema the external driver and downstream tooling consume. This is the
// one place the implementation reaches for the standard library over an
// ecosystem dependency: none of the pack's third-party packages offer CSV
// encoding, so encoding/csv is used directly.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/laurie-hedge/fqcsim/sim"
)

// header is the fixed first row of every results export.
var header = []string{"state", "occurrences"}

// WriteResults writes results to w as CSV with a "state,occurrences" header,
// one row per nonzero bucket, in the order results is given (state-ascending,
// as produced by the engine).
func WriteResults(w io.Writer, results []sim.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}
	for _, r := range results {
		row := []string{label(r.State), fmt.Sprintf("%d", r.Count)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: writing row for state %d: %w", r.State, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flushing: %w", err)
	}
	return nil
}

// label renders a state index as the ket-bracketed 8-bit binary string
// described by the results CSV schema: character 0 is qubit 0's bit, which
// is exactly the state index's binary representation since qubit 0 already
// occupies the most significant bit of the index.
func label(state uint8) string {
	return fmt.Sprintf("|%08b>", state)
}
