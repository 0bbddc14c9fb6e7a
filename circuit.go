package main

import "fmt"

// Operation is a single gate application, immutable once appended. Control
// is -1 for single-qubit gates and Clbit is -1 for everything but MEASURE.
// Angle is in radians and meaningful only for RX/RY/RZ; it carries whatever
// value it was given, with no canonical range enforced.
type Operation struct {
	Kind    Kind
	Target  int
	Control int
	Clbit   int
	Angle   float64
}

// Qubits returns the qubits the operation touches, control first.
func (op Operation) Qubits() []int {
	if op.Control >= 0 {
		return []int{op.Control, op.Target}
	}
	return []int{op.Target}
}

// Touches reports whether the operation references the given qubit.
func (op Operation) Touches(qubit int) bool {
	return op.Target == qubit || op.Control == qubit
}

func (op Operation) String() string {
	switch {
	case op.Kind.IsRotation():
		return fmt.Sprintf("%s(%s) q[%d]", op.Kind, formatParam(op.Angle), op.Target)
	case op.Control >= 0:
		return fmt.Sprintf("%s q[%d], q[%d]", op.Kind, op.Control, op.Target)
	case op.Kind == KindMeasure:
		return fmt.Sprintf("%s q[%d] -> c[%d]", op.Kind, op.Target, op.Clbit)
	default:
		return fmt.Sprintf("%s q[%d]", op.Kind, op.Target)
	}
}

// Circuit owns a fixed-size qubit register, a fixed-size classical-bit
// register and the operation log in authoring order. Program order is the
// authoring order; the dependency graph (dag.go) recovers which operations
// are genuinely concurrent. Transformations return new circuits and never
// mutate their input.
type Circuit struct {
	NumQubits int
	NumClbits int
	Ops       []Operation
}

// NewCircuit creates an empty circuit with the given register sizes.
func NewCircuit(numQubits, numClbits int) *Circuit {
	return &Circuit{NumQubits: numQubits, NumClbits: numClbits}
}

// AddGate appends a parameterless single-qubit gate.
func (c *Circuit) AddGate(kind Kind, target int) {
	c.Ops = append(c.Ops, Operation{Kind: kind, Target: target, Control: -1, Clbit: -1})
}

// AddRotation appends a single-qubit rotation with the given angle in radians.
func (c *Circuit) AddRotation(kind Kind, target int, angle float64) {
	c.Ops = append(c.Ops, Operation{Kind: kind, Target: target, Control: -1, Clbit: -1, Angle: angle})
}

// AddControlled appends a two-qubit controlled gate.
func (c *Circuit) AddControlled(kind Kind, control, target int) {
	c.Ops = append(c.Ops, Operation{Kind: kind, Target: target, Control: control, Clbit: -1})
}

// AddMeasure appends a measurement of qubit into classical bit clbit.
func (c *Circuit) AddMeasure(qubit, clbit int) {
	c.Ops = append(c.Ops, Operation{Kind: KindMeasure, Target: qubit, Control: -1, Clbit: clbit})
}

// Clone returns a deep copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	ops := make([]Operation, len(c.Ops))
	copy(ops, c.Ops)
	return &Circuit{NumQubits: c.NumQubits, NumClbits: c.NumClbits, Ops: ops}
}

// Validate checks every operation against the register bounds and its kind's
// operand shape. It is run at the head of each pipeline pass so that a
// malformed circuit fails the whole pass rather than producing partial
// output.
func (c *Circuit) Validate() error {
	for i, op := range c.Ops {
		if op.Kind < 0 || int(op.Kind) >= len(kindNames) {
			return &MalformedOperationError{Index: i, Reason: fmt.Sprintf("unknown gate kind %d", int(op.Kind))}
		}
		if op.Target < 0 || op.Target >= c.NumQubits {
			return &MalformedOperationError{Index: i, Reason: fmt.Sprintf("target qubit %d outside register of size %d", op.Target, c.NumQubits)}
		}
		switch op.Kind.Arity() {
		case 2:
			if op.Control < 0 || op.Control >= c.NumQubits {
				return &MalformedOperationError{Index: i, Reason: fmt.Sprintf("control qubit %d outside register of size %d", op.Control, c.NumQubits)}
			}
			if op.Control == op.Target {
				return &MalformedOperationError{Index: i, Reason: fmt.Sprintf("%s control and target are both q[%d]", op.Kind, op.Target)}
			}
		default:
			if op.Control != -1 {
				return &MalformedOperationError{Index: i, Reason: fmt.Sprintf("%s takes one qubit but has a control", op.Kind)}
			}
		}
		if op.Kind == KindMeasure {
			if op.Clbit < 0 || op.Clbit >= c.NumClbits {
				return &MalformedOperationError{Index: i, Reason: fmt.Sprintf("classical bit %d outside register of size %d", op.Clbit, c.NumClbits)}
			}
		} else if op.Clbit != -1 {
			return &MalformedOperationError{Index: i, Reason: fmt.Sprintf("%s carries a classical target", op.Kind)}
		}
	}
	return nil
}

// OpsOnQubit returns the authoring-order subsequence of operations touching
// the given qubit.
func (c *Circuit) OpsOnQubit(qubit int) []Operation {
	var ops []Operation
	for _, op := range c.Ops {
		if op.Touches(qubit) {
			ops = append(ops, op)
		}
	}
	return ops
}
