package main

import "math"

// Decompose rewrites every operation of the circuit into the native gate set
// {RX, RZ, CZ, MEASURE}, preserving qubit and classical-bit identity and the
// per-qubit operation order. Each source gate maps to a fixed native
// sequence equal to it up to global phase, so the whole circuit stays
// equivalent by construction. The input is never mutated.
func Decompose(c *Circuit) (*Circuit, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := NewCircuit(c.NumQubits, c.NumClbits)
	for _, op := range c.Ops {
		switch op.Kind {
		case KindI:
			// nothing to emit; absence preserves ordering trivially
		case KindH:
			emitHalfTurnBasisChange(out, op.Target)
		case KindX:
			out.AddRotation(KindRX, op.Target, math.Pi)
		case KindY:
			out.AddRotation(KindRZ, op.Target, -math.Pi/2)
			out.AddRotation(KindRX, op.Target, math.Pi)
			out.AddRotation(KindRZ, op.Target, math.Pi/2)
		case KindZ:
			out.AddRotation(KindRZ, op.Target, math.Pi)
		case KindRX, KindRZ:
			out.AddRotation(op.Kind, op.Target, op.Angle)
		case KindRY:
			out.AddRotation(KindRZ, op.Target, -math.Pi/2)
			out.AddRotation(KindRX, op.Target, op.Angle)
			out.AddRotation(KindRZ, op.Target, math.Pi/2)
		case KindCZ:
			out.AddControlled(KindCZ, op.Control, op.Target)
		case KindCNOT:
			// CZ conjugated by Hadamards on the target
			emitHalfTurnBasisChange(out, op.Target)
			out.AddControlled(KindCZ, op.Control, op.Target)
			emitHalfTurnBasisChange(out, op.Target)
		case KindMeasure:
			out.AddMeasure(op.Target, op.Clbit)
		default:
			return nil, &UnsupportedGateError{Kind: op.Kind}
		}
	}

	log := Logger()
	log.Debug().
		Int("source_ops", len(c.Ops)).
		Int("native_ops", len(out.Ops)).
		Msg("decomposed to native gate set")
	return out, nil
}

// emitHalfTurnBasisChange appends RZ(π/2) RX(π/2) RZ(π/2), the native
// rendering of a Hadamard (up to global phase).
func emitHalfTurnBasisChange(out *Circuit, target int) {
	out.AddRotation(KindRZ, target, math.Pi/2)
	out.AddRotation(KindRX, target, math.Pi/2)
	out.AddRotation(KindRZ, target, math.Pi/2)
}
