package gate

import (
	"math"
	"math/cmplx"
	"testing"
)

func approxEqual(a, b complex128) bool {
	const tol = 1e-9
	d := a - b
	return cmplx.Abs(d) < tol
}

func TestFixedGatesAreUnitary(t *testing.T) {
	matrices := map[string][][]complex128{
		"identity": Identity,
		"hadamard": Hadamard,
		"pauliX":   PauliX,
		"pauliY":   PauliY,
		"pauliZ":   PauliZ,
		"s":        SGate,
		"sdag":     SDagGate,
		"t":        TGate,
		"tdag":     TDagGate,
	}

	for name, m := range matrices {
		// U * U_dagger == I for a 2x2 unitary.
		for row := 0; row < 2; row++ {
			for col := 0; col < 2; col++ {
				var sum complex128
				for k := 0; k < 2; k++ {
					sum += m[row][k] * cmplx.Conj(m[col][k])
				}
				want := complex128(0)
				if row == col {
					want = 1
				}
				if !approxEqual(sum, want) {
					t.Errorf("%s not unitary at (%d,%d): got %v, want %v", name, row, col, sum, want)
				}
			}
		}
	}
}

func TestInverseTable(t *testing.T) {
	tests := []struct {
		k    Kind
		want Kind
	}{
		{HADAMARD, HADAMARD},
		{PAULI_X, PAULI_X},
		{PAULI_Y, PAULI_Y},
		{PAULI_Z, PAULI_Z},
		{S, S_DAG},
		{S_DAG, S},
		{T, T_DAG},
		{T_DAG, T},
		{CNOT, CNOT},
		{SWAP, SWAP},
	}
	for _, tt := range tests {
		got, ok := Inverse(tt.k)
		if !ok {
			t.Errorf("Inverse(%v): ok=false, want true", tt.k)
			continue
		}
		if got != tt.want {
			t.Errorf("Inverse(%v) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestRotationInverseIsNegatedTheta(t *testing.T) {
	if _, ok := Inverse(R_X); ok {
		t.Fatalf("Inverse(R_X) should report ok=false")
	}

	theta := math.Pi / 3
	fwd := RX(theta)
	back := RX(-theta)

	// fwd * back should be the identity.
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			var sum complex128
			for k := 0; k < 2; k++ {
				sum += fwd[row][k] * back[k][col]
			}
			want := complex128(0)
			if row == col {
				want = 1
			}
			if !approxEqual(sum, want) {
				t.Errorf("RX(theta)*RX(-theta) at (%d,%d) = %v, want %v", row, col, sum, want)
			}
		}
	}
}

func TestMnemonicStrings(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{CNOT, "cnot"}, {IDENTITY, "i"}, {HADAMARD, "h"}, {PAULI_X, "x"},
		{PAULI_Y, "y"}, {PAULI_Z, "z"}, {R_X, "rx"}, {R_Y, "ry"}, {R_Z, "rz"},
		{S, "s"}, {S_DAG, "sdag"}, {SWAP, "swap"}, {T, "t"}, {T_DAG, "tdag"},
		{TOFFOLI, "toffoli"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
