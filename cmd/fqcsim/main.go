// Command fqcsim is the minimal, non-interactive driver described as the
// external collaborator of the assembler and simulator engine: it loads an
// optional source file, assembles and runs it once, prints a styled
// terminal summary, and writes the results histogram to stdout as CSV.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/laurie-hedge/fqcsim/asm"
	"github.com/laurie-hedge/fqcsim/export"
	"github.com/laurie-hedge/fqcsim/sim"
)

// numShots is the number of samples drawn for the results histogram on a
// single driver invocation.
const numShots = 1024

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run implements the driver end to end and returns the process exit code.
// It is separated from main so it can be exercised without a subprocess.
func run(args []string, stdout, stderr io.Writer) int {
	var source string
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("fqcsim: %v", err)))
			return 1
		}
		source = string(data)
	}

	program := asm.Assemble(source)
	if !program.Valid {
		fmt.Fprintln(stderr, errorStyle.Render(program.ErrorMessage))
		return 1
	}

	engine := sim.NewEngine(time.Now().UnixNano())
	engine.BindProgram(program)
	engine.Run(numShots)

	fmt.Fprintln(stdout, renderSummary(program, engine))

	if err := export.WriteResults(stdout, engine.Results()); err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("fqcsim: %v", err)))
		return 1
	}
	return 0
}

// renderSummary builds a compact, styled report of a completed run: the
// active qubits, the nonzero amplitude snapshot, and the sampled results.
func renderSummary(p *asm.Program, e *sim.Engine) string {
	qubits := make([]string, len(p.ActiveQubits))
	for i, q := range p.ActiveQubits {
		qubits[i] = fmt.Sprintf("q%d", q)
	}
	qubitLine := qubitLabelStyle.Render(strings.Join(qubits, " "))
	if len(qubits) == 0 {
		qubitLine = dimStyle.Render("(no active qubits)")
	}

	amplitudes := e.Amplitudes()
	ampLines := make([]string, len(amplitudes))
	for i, amp := range amplitudes {
		ampLines[i] = amplitudeStyle.Render(fmt.Sprintf("|%08b> %v", amp.Index, amp.Value))
	}
	if len(ampLines) == 0 {
		ampLines = []string{dimStyle.Render("(zero state)")}
	}

	results := e.Results()
	resultLines := make([]string, len(results))
	for i, r := range results {
		resultLines[i] = fmt.Sprintf("|%08b> %s", r.State, countStyle.Render(fmt.Sprintf("%d", r.Count)))
	}
	if len(resultLines) == 0 {
		resultLines = []string{dimStyle.Render("(no samples)")}
	}

	qubitStateLines := make([]string, len(p.ActiveQubits))
	for i, q := range p.ActiveQubits {
		ab := e.QubitState(q)
		qubitStateLines[i] = fmt.Sprintf("q%d %s", q, amplitudeStyle.Render(fmt.Sprintf("a=%v b=%v", ab[0], ab[1])))
	}
	if len(qubitStateLines) == 0 {
		qubitStateLines = []string{dimStyle.Render("(no active qubits)")}
	}

	body := strings.Join([]string{
		titleStyle.Render("active qubits") + "\n" + qubitLine,
		titleStyle.Render("amplitudes") + "\n" + strings.Join(ampLines, "\n"),
		titleStyle.Render("qubit states") + "\n" + strings.Join(qubitStateLines, "\n"),
		titleStyle.Render("results") + "\n" + strings.Join(resultLines, "\n"),
	}, "\n\n")

	return sectionStyle.Render(body)
}
