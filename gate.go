package main

import "strings"

// Kind identifies a gate in the closed source vocabulary. The transpiler
// rewrites everything below into the native set {RX, RZ, CZ, MEASURE}.
type Kind int

const (
	KindI Kind = iota
	KindH
	KindX
	KindY
	KindZ
	KindRX
	KindRY
	KindRZ
	KindCNOT
	KindCZ
	KindMeasure
)

var kindNames = [...]string{
	KindI:       "I",
	KindH:       "H",
	KindX:       "X",
	KindY:       "Y",
	KindZ:       "Z",
	KindRX:      "RX",
	KindRY:      "RY",
	KindRZ:      "RZ",
	KindCNOT:    "CNOT",
	KindCZ:      "CZ",
	KindMeasure: "MEASURE",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Arity returns the number of qubit operands the gate takes.
func (k Kind) Arity() int {
	switch k {
	case KindCNOT, KindCZ:
		return 2
	default:
		return 1
	}
}

// IsRotation reports whether the gate carries an angle parameter.
func (k Kind) IsRotation() bool {
	return k == KindRX || k == KindRY || k == KindRZ
}

// IsNative reports whether the gate belongs to the hardware-native set.
func (k Kind) IsNative() bool {
	switch k {
	case KindRX, KindRZ, KindCZ, KindMeasure:
		return true
	default:
		return false
	}
}

// qasmNames maps QASM 2.0 mnemonics to gate kinds. "id" is the qelib1
// spelling of the identity; "cnot" is accepted as an alias for cx.
var qasmNames = map[string]Kind{
	"i":       KindI,
	"id":      KindI,
	"h":       KindH,
	"x":       KindX,
	"y":       KindY,
	"z":       KindZ,
	"rx":      KindRX,
	"ry":      KindRY,
	"rz":      KindRZ,
	"cx":      KindCNOT,
	"cnot":    KindCNOT,
	"cz":      KindCZ,
	"measure": KindMeasure,
}

func parseKind(name string) (Kind, bool) {
	k, ok := qasmNames[name]
	return k, ok
}

// qasmName returns the lowercase QASM mnemonic for the gate.
func (k Kind) qasmName() string {
	switch k {
	case KindI:
		return "id"
	case KindCNOT:
		return "cx"
	default:
		return strings.ToLower(k.String())
	}
}
