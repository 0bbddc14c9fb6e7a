package main

import "fmt"

// UnsupportedGateError is returned by Decompose when an operation's kind has
// no row in the rewrite table.
type UnsupportedGateError struct {
	Kind Kind
}

func (e *UnsupportedGateError) Error() string {
	return fmt.Sprintf("decompose: no rewrite rule for gate %s", e.Kind)
}

// InvalidInputGateSetError is returned by Optimize when its input contains a
// gate outside the native set {RX, RZ, CZ, MEASURE}.
type InvalidInputGateSetError struct {
	Kind Kind
}

func (e *InvalidInputGateSetError) Error() string {
	return fmt.Sprintf("optimize: gate %s is outside the native set {RX, RZ, CZ, MEASURE}", e.Kind)
}

// MalformedOperationError reports an operation whose qubit or classical-bit
// references fall outside the circuit's registers, or whose operand shape
// does not match its kind's arity.
type MalformedOperationError struct {
	Index  int
	Reason string
}

func (e *MalformedOperationError) Error() string {
	return fmt.Sprintf("operation %d is malformed: %s", e.Index, e.Reason)
}
