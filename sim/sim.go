// Package sim implements the simulator engine: it owns a 256-entry complex
// state vector and a program cursor, applies one gate operation at a time by
// composing tensor-product unitaries, and samples measurement outcomes from
// the resulting distribution.
package sim

import (
	"math/cmplx"
	"math/rand"

	"github.com/laurie-hedge/fqcsim/asm"
	"github.com/laurie-hedge/fqcsim/gate"
	"github.com/laurie-hedge/fqcsim/tensor"
)

// stateSize is the dimension of the dense state vector: 2^asm.NumQubits.
const stateSize = 1 << asm.NumQubits

// Amplitude is one nonzero entry of the state vector.
type Amplitude struct {
	Index uint8
	Value complex128
}

// Result is one nonzero bucket of a sampled measurement histogram.
type Result struct {
	State uint8
	Count int
}

// Engine owns the state vector, the cursor into a bound Program, the PRNG
// used for sampling, and the most recently generated results. It borrows its
// bound Program; the caller keeps it alive for the duration of the bind.
type Engine struct {
	state         []complex128
	bound         *asm.Program
	nextGateIndex int
	rng           *rand.Rand
	results       []Result
}

// NewEngine constructs an Engine with its state vector initialised to
// |00000000⟩, seeded from seed for reproducible sampling.
func NewEngine(seed int64) *Engine {
	e := &Engine{
		state: make([]complex128, stateSize),
		rng:   rand.New(rand.NewSource(seed)),
	}
	e.Reset()
	return e
}

// BindProgram rebinds the engine to p and resets engine state. Passing nil
// unbinds the engine.
func (e *Engine) BindProgram(p *asm.Program) {
	e.bound = p
	e.Reset()
}

// Reset zero-fills the state vector, sets the ground state amplitude, and
// rewinds the cursor to 0. Does not clear results.
func (e *Engine) Reset() {
	for i := range e.state {
		e.state[i] = 0
	}
	e.state[0] = 1
	e.nextGateIndex = 0
}

// NextGateIndex reports the index of the next operation Step will execute.
func (e *Engine) NextGateIndex() int {
	return e.nextGateIndex
}

// Step applies the operation at the cursor and advances it, or does nothing
// if no program is bound or the cursor has reached the end. When single is
// true and this step consumes the final operation, a one-shot sample is
// taken and stored in results.
func (e *Engine) Step(single bool) {
	if e.bound == nil || e.nextGateIndex >= len(e.bound.Operations) {
		return
	}
	op := e.bound.Operations[e.nextGateIndex]
	e.applyOperation(op)
	e.nextGateIndex++
	if single && e.nextGateIndex == len(e.bound.Operations) {
		e.results = e.generateResults(1)
	}
}

// Run resets, executes the bound program to completion, and populates
// results by sampling numRuns shots. A no-op when no program is bound.
func (e *Engine) Run(numRuns int) {
	if e.bound == nil {
		return
	}
	e.Reset()
	for e.nextGateIndex < len(e.bound.Operations) {
		e.Step(false)
	}
	e.results = e.generateResults(numRuns)
}

// Results returns the histogram from the most recent run or single-step
// completion.
func (e *Engine) Results() []Result {
	return e.results
}

// Amplitudes returns every (index, amplitude) pair whose amplitude is not
// bit-identical zero, in ascending index order.
func (e *Engine) Amplitudes() []Amplitude {
	var out []Amplitude
	for i, amp := range e.state {
		if amp != 0 {
			out = append(out, Amplitude{Index: uint8(i), Value: amp})
		}
	}
	return out
}

// QubitState returns the (alpha, beta) visualisation pair for qubit k: the
// complex square root of the sum of squared amplitudes (not magnitudes) over
// basis states where qubit k reads 0 and 1 respectively. This is a display
// projection, not a physical Bloch-sphere decomposition.
func (e *Engine) QubitState(k uint8) [2]complex128 {
	pos := 7 - int(k)
	var sum0, sum1 complex128
	for i, amp := range e.state {
		sq := amp * amp
		if (i>>pos)&1 == 0 {
			sum0 += sq
		} else {
			sum1 += sq
		}
	}
	return [2]complex128{cmplx.Sqrt(sum0), cmplx.Sqrt(sum1)}
}

// applyOperation dispatches a single operation to the engine's gate
// construction machinery and replaces the state vector with the result.
func (e *Engine) applyOperation(op asm.Operation) {
	switch op.Gate {
	case gate.CNOT:
		e.applyCNOT(op.Operands[0], op.Operands[1])
	case gate.SWAP:
		a, b := op.Operands[0], op.Operands[1]
		e.applyCNOT(a, b)
		e.applyCNOT(b, a)
		e.applyCNOT(a, b)
	case gate.TOFFOLI:
		e.applyToffoli(op.Operands[0], op.Operands[1], op.Operands[2])
	case gate.R_X:
		e.applySingle(op.Operands[0], gate.RX(op.Immediate))
	case gate.R_Y:
		e.applySingle(op.Operands[0], gate.RY(op.Immediate))
	case gate.R_Z:
		e.applySingle(op.Operands[0], gate.RZ(op.Immediate))
	default:
		e.applySingle(op.Operands[0], fixedMatrix(op.Gate))
	}
}

// fixedMatrix maps every gate.Kind with a constant 2x2 matrix to that
// matrix. CNOT, SWAP, TOFFOLI and the rotations are handled separately and
// never reach here.
func fixedMatrix(k gate.Kind) tensor.Matrix {
	switch k {
	case gate.IDENTITY:
		return gate.Identity
	case gate.HADAMARD:
		return gate.Hadamard
	case gate.PAULI_X:
		return gate.PauliX
	case gate.PAULI_Y:
		return gate.PauliY
	case gate.PAULI_Z:
		return gate.PauliZ
	case gate.S:
		return gate.SGate
	case gate.S_DAG:
		return gate.SDagGate
	case gate.T:
		return gate.TGate
	case gate.T_DAG:
		return gate.TDagGate
	default:
		return gate.Identity
	}
}

// applySingle builds the full 256x256 operator for a single-qubit gate g on
// qubit k by Kronecker composition from qubit 7 down to qubit 0, then
// replaces the state vector with state*operator.
func (e *Engine) applySingle(k uint8, g tensor.Matrix) {
	acc := factorFor(7, k, g)
	for q := 6; q >= 0; q-- {
		acc = tensor.Kron(factorFor(uint8(q), k, g), acc)
	}
	e.state = tensor.VecMatMul(e.state, acc)
}

func factorFor(q, k uint8, g tensor.Matrix) tensor.Matrix {
	if q == k {
		return g
	}
	return gate.Identity
}

// applyCNOT builds the CNOT operator with control c and target t following
// the adjacent-block construction, pads it with identities for any qubits
// outside [min(c,t), max(c,t)], and applies it to the state vector.
func (e *Engine) applyCNOT(c, t uint8) {
	block, l, h := cnotBlock(c, t)
	e.state = tensor.VecMatMul(e.state, padOperator(l, h, block))
}

// cnotBlock builds the CNOT operator restricted to the qubit span
// [l, h] = [min(c,t), max(c,t)], following the two-term construction: one
// term is the control-is-0 branch (target untouched), the other is the
// control-is-1 branch (target flipped), summed together.
func cnotBlock(c, t uint8) (block tensor.Matrix, l, h int) {
	h = int(c)
	l = int(t)
	if l > h {
		l, h = h, l
	}
	u := h - l - 1

	var lhs, rhs tensor.Matrix
	if c < t {
		lhs, rhs = gate.Identity, gate.PauliX
		for i := 0; i < u; i++ {
			lhs = tensor.Kron(gate.Identity, lhs)
			rhs = tensor.Kron(gate.Identity, rhs)
		}
		lhs = tensor.Kron(gate.ZeroProjector, lhs)
		rhs = tensor.Kron(gate.OneProjector, rhs)
	} else {
		lhs, rhs = gate.ZeroProjector, gate.OneProjector
		for i := 0; i < u; i++ {
			lhs = tensor.Kron(gate.Identity, lhs)
			rhs = tensor.Kron(gate.Identity, rhs)
		}
		lhs = tensor.Kron(gate.Identity, lhs)
		rhs = tensor.Kron(gate.PauliX, rhs)
	}
	return tensor.Add(lhs, rhs), l, h
}

// padOperator extends a block spanning qubits [l, h] (l outermost/leftmost,
// h innermost/rightmost, matching cnotBlock's construction) to the full
// 256x256 operator. Qubits above h are less significant than the block, so
// their identity factors are appended to its right; qubits below l are more
// significant, so their identity factors are prepended to its left. These
// two sides are not interchangeable: appending and prepending place the
// padding identities on opposite sides of the block's bit positions.
func padOperator(l, h int, block tensor.Matrix) tensor.Matrix {
	acc := block
	for i := 0; i < 7-h; i++ {
		acc = tensor.Kron(acc, gate.Identity)
	}
	for i := 0; i < l; i++ {
		acc = tensor.Kron(gate.Identity, acc)
	}
	return acc
}

// applyToffoli decomposes TOFFOLI(c1, c2, t) into the standard 15-gate
// Clifford+T sequence over {H, T, T†, CNOT}.
func (e *Engine) applyToffoli(c1, c2, t uint8) {
	e.applySingle(t, gate.Hadamard)
	e.applyCNOT(c2, t)
	e.applySingle(t, gate.TDagGate)
	e.applyCNOT(c1, t)
	e.applySingle(t, gate.TGate)
	e.applyCNOT(c2, t)
	e.applySingle(t, gate.TDagGate)
	e.applyCNOT(c1, t)
	e.applySingle(c2, gate.TGate)
	e.applySingle(t, gate.TGate)
	e.applyCNOT(c1, c2)
	e.applySingle(t, gate.Hadamard)
	e.applySingle(c1, gate.TGate)
	e.applySingle(c2, gate.TDagGate)
	e.applyCNOT(c1, c2)
}

// generateResults draws n shots from the current distribution by building
// cumulative probability intervals over all 256 basis states and selecting,
// for each draw, the first interval containing it.
func (e *Engine) generateResults(n int) []Result {
	counts := make([]int, stateSize)
	for draw := 0; draw < n; draw++ {
		u := e.rng.Float64()
		start := 0.0
		chosen := stateSize - 1
		for i := 0; i < stateSize; i++ {
			sq := e.state[i] * e.state[i]
			end := start + cmplx.Abs(sq)
			if u >= start && u <= end {
				chosen = i
				break
			}
			start = end
		}
		counts[chosen]++
	}

	var results []Result
	for i, c := range counts {
		if c > 0 {
			results = append(results, Result{State: uint8(i), Count: c})
		}
	}
	return results
}
