// Package gate defines the tagged set of quantum gate kinds the assembler
// can emit, and the 2x2 unitary matrices (or matrix builders) the simulator
// engine composes into full 256x256 operators.
package gate

import (
	"math"
	"math/cmplx"

	"github.com/laurie-hedge/fqcsim/tensor"
)

// Kind is a closed, tagged enumeration of the gate set. The gate set never
// grows at runtime, so an exhaustive switch in the engine is preferable to
// any form of open dispatch.
type Kind uint8

const (
	CNOT Kind = iota
	IDENTITY
	HADAMARD
	PAULI_X
	PAULI_Y
	PAULI_Z
	R_X
	R_Y
	R_Z
	S
	S_DAG
	SWAP
	T
	T_DAG
	TOFFOLI
)

// String returns the canonical lowercase mnemonic for a gate kind, the
// inverse of the assembler's mnemonic table. Used for diagnostics; asm.Format
// takes its mnemonics from the assembler's own table instead.
func (k Kind) String() string {
	switch k {
	case CNOT:
		return "cnot"
	case IDENTITY:
		return "i"
	case HADAMARD:
		return "h"
	case PAULI_X:
		return "x"
	case PAULI_Y:
		return "y"
	case PAULI_Z:
		return "z"
	case R_X:
		return "rx"
	case R_Y:
		return "ry"
	case R_Z:
		return "rz"
	case S:
		return "s"
	case S_DAG:
		return "sdag"
	case SWAP:
		return "swap"
	case T:
		return "t"
	case T_DAG:
		return "tdag"
	case TOFFOLI:
		return "toffoli"
	default:
		return "?"
	}
}

// Fixed single-qubit unitaries and projectors. These are package-level vars
// rather than consts, since Go has no const aggregate for a complex matrix;
// none of them is ever mutated in place, so they serve the same role as the
// compile-time constants the spec calls for.
var (
	Identity = tensor.Matrix{
		{1, 0},
		{0, 1},
	}

	Hadamard = tensor.Matrix{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}

	PauliX = tensor.Matrix{
		{0, 1},
		{1, 0},
	}

	PauliY = tensor.Matrix{
		{0, -1i},
		{1i, 0},
	}

	PauliZ = tensor.Matrix{
		{1, 0},
		{0, -1},
	}

	SGate = tensor.Matrix{
		{1, 0},
		{0, 1i},
	}

	SDagGate = tensor.Matrix{
		{1, 0},
		{0, -1i},
	}

	TGate = tensor.Matrix{
		{1, 0},
		{0, cmplx.Exp(complex(0, math.Pi/4))},
	}

	TDagGate = tensor.Matrix{
		{1, 0},
		{0, cmplx.Exp(complex(0, -math.Pi/4))},
	}

	// ZeroProjector is |0⟩⟨0|, OneProjector is |1⟩⟨1|. Used only by the
	// engine's CNOT construction.
	ZeroProjector = tensor.Matrix{
		{1, 0},
		{0, 0},
	}

	OneProjector = tensor.Matrix{
		{0, 0},
		{0, 1},
	}
)

// RX builds the R_X(theta) rotation matrix.
func RX(theta float64) tensor.Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return tensor.Matrix{
		{c, s},
		{s, c},
	}
}

// RY builds the R_Y(theta) rotation matrix.
func RY(theta float64) tensor.Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return tensor.Matrix{
		{c, -s},
		{-s, c},
	}
}

// RZ builds the R_Z(theta) rotation matrix.
func RZ(theta float64) tensor.Matrix {
	return tensor.Matrix{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

// fixedInverses maps every gate whose inverse is itself another fixed gate
// kind. R_X/R_Y/R_Z have no entry here: their inverse is the same builder
// evaluated at -theta, which is a property of the immediate, not the kind.
var fixedInverses = map[Kind]Kind{
	IDENTITY: IDENTITY,
	HADAMARD: HADAMARD,
	PAULI_X:  PAULI_X,
	PAULI_Y:  PAULI_Y,
	PAULI_Z:  PAULI_Z,
	S:        S_DAG,
	S_DAG:    S,
	T:        T_DAG,
	T_DAG:    T,
	CNOT:     CNOT,
	SWAP:     SWAP,
	TOFFOLI:  TOFFOLI,
}

// Inverse returns the gate kind that undoes k, for every kind whose inverse
// is expressible as another fixed kind. It reports false for R_X, R_Y and
// R_Z, whose inverse is the same kind applied with the negated immediate.
func Inverse(k Kind) (Kind, bool) {
	inv, ok := fixedInverses[k]
	return inv, ok
}
