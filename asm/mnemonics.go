package asm

import "github.com/laurie-hedge/fqcsim/gate"

// mnemonicInfo describes the arity and shape of one assembly mnemonic.
type mnemonicInfo struct {
	mnemonic     string
	kind         gate.Kind
	operands     int
	hasImmediate bool
}

// mnemonics is the grammar table: source mnemonic -> gate kind and shape.
var mnemonics = map[string]mnemonicInfo{
	"cnot":    {"cnot", gate.CNOT, 2, false},
	"i":       {"i", gate.IDENTITY, 1, false},
	"h":       {"h", gate.HADAMARD, 1, false},
	"x":       {"x", gate.PAULI_X, 1, false},
	"y":       {"y", gate.PAULI_Y, 1, false},
	"z":       {"z", gate.PAULI_Z, 1, false},
	"rx":      {"rx", gate.R_X, 1, true},
	"ry":      {"ry", gate.R_Y, 1, true},
	"rz":      {"rz", gate.R_Z, 1, true},
	"s":       {"s", gate.S, 1, false},
	"sdag":    {"sdag", gate.S_DAG, 1, false},
	"swap":    {"swap", gate.SWAP, 2, false},
	"t":       {"t", gate.T, 1, false},
	"tdag":    {"tdag", gate.T_DAG, 1, false},
	"toffoli": {"toffoli", gate.TOFFOLI, 3, false},
}

// mnemonicByKind is the reverse index used by Format.
var mnemonicByKind = func() map[gate.Kind]mnemonicInfo {
	byKind := make(map[gate.Kind]mnemonicInfo, len(mnemonics))
	for _, info := range mnemonics {
		byKind[info.kind] = info
	}
	return byKind
}()

func mnemonicFor(k gate.Kind) mnemonicInfo {
	return mnemonicByKind[k]
}
