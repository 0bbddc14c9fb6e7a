package main

import "math"

// angleEps is the tolerance used when deciding that an accumulated rotation
// angle is a whole number of turns. Floating accumulation almost never lands
// exactly on a multiple of 2π; without a tolerance merge chains survive as
// RX(2π ± 1e-15) noise.
const angleEps = 1e-9

// accumulator is the per-qubit merge state: Empty, or Accumulating a run of
// same-axis rotations.
type accumulator struct {
	axis   Kind // KindRX or KindRZ
	angle  float64
	active bool
}

// Optimize merges consecutive same-axis rotations on each qubit line and
// drops rotations whose angle is a multiple of 2π. The input must already be
// in the native gate set {RX, RZ, CZ, MEASURE}. The pass walks the
// dependency graph's linearization rather than the raw log, so only
// operations genuinely adjacent on a qubit's own dependency line are ever
// merged; it never reorders across a CZ or MEASURE. The input is never
// mutated.
func Optimize(c *Circuit) (*Circuit, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	for _, op := range c.Ops {
		if !op.Kind.IsNative() {
			return nil, &InvalidInputGateSetError{Kind: op.Kind}
		}
	}

	g, err := BuildDepGraph(c)
	if err != nil {
		return nil, err
	}

	out := NewCircuit(c.NumQubits, c.NumClbits)
	pending := make([]accumulator, c.NumQubits)

	flush := func(q int) {
		p := &pending[q]
		if !p.active {
			return
		}
		if !isFullTurn(p.angle) {
			// the summed angle is kept verbatim, not reduced mod 2π
			out.AddRotation(p.axis, q, p.angle)
		}
		p.active = false
	}

	for _, i := range g.Linearize() {
		op := c.Ops[i]
		switch op.Kind {
		case KindRX, KindRZ:
			p := &pending[op.Target]
			if p.active && p.axis == op.Kind {
				p.angle += op.Angle
				continue
			}
			flush(op.Target)
			pending[op.Target] = accumulator{axis: op.Kind, angle: op.Angle, active: true}
		case KindCZ:
			flush(op.Control)
			flush(op.Target)
			out.AddControlled(KindCZ, op.Control, op.Target)
		case KindMeasure:
			flush(op.Target)
			out.AddMeasure(op.Target, op.Clbit)
		}
	}
	for q := range pending {
		flush(q)
	}

	log := Logger()
	log.Debug().
		Int("input_ops", len(c.Ops)).
		Int("output_ops", len(out.Ops)).
		Msg("peephole pass done")
	return out, nil
}

// isFullTurn reports whether the angle is a whole number of turns within
// angleEps, i.e. the rotation is an identity up to global phase.
func isFullTurn(angle float64) bool {
	r := math.Mod(angle, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r < angleEps || 2*math.Pi-r < angleEps
}
