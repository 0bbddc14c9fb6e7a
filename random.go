package main

import (
	"math"
	"math/rand/v2"
)

const piSixth = math.Pi / 6

// RandomCircuit generates an example circuit over the full source
// vocabulary. Rotation angles are random multiples of π/6 so they render as
// pi fractions in the QASM panel. Two-qubit gates only appear when the
// register has room for them.
func RandomCircuit(rng *rand.Rand, numQubits, numOps int) *Circuit {
	c := NewCircuit(numQubits, numQubits)
	kinds := []Kind{KindI, KindH, KindX, KindY, KindZ, KindRX, KindRY, KindRZ}
	if numQubits >= 2 {
		kinds = append(kinds, KindCNOT, KindCZ)
	}

	for range numOps {
		kind := kinds[rng.IntN(len(kinds))]
		target := rng.IntN(numQubits)
		switch {
		case kind.IsRotation():
			c.AddRotation(kind, target, randomAngle(rng))
		case kind.Arity() == 2:
			control := rng.IntN(numQubits - 1)
			if control >= target {
				control++
			}
			c.AddControlled(kind, control, target)
		default:
			c.AddGate(kind, target)
		}
	}
	return c
}

// RandomNativeCircuit generates a circuit restricted to the native gate set,
// with the given measurement count appended at the end. Used by the
// optimizer property tests.
func RandomNativeCircuit(rng *rand.Rand, numQubits, numOps, numMeasures int) *Circuit {
	c := NewCircuit(numQubits, numQubits)
	for range numOps {
		target := rng.IntN(numQubits)
		switch rng.IntN(3) {
		case 0:
			c.AddRotation(KindRX, target, randomAngle(rng))
		case 1:
			c.AddRotation(KindRZ, target, randomAngle(rng))
		default:
			if numQubits < 2 {
				c.AddRotation(KindRX, target, randomAngle(rng))
				continue
			}
			control := rng.IntN(numQubits - 1)
			if control >= target {
				control++
			}
			c.AddControlled(KindCZ, control, target)
		}
	}
	for i := 0; i < numMeasures && i < numQubits; i++ {
		c.AddMeasure(i, i)
	}
	return c
}

func randomAngle(rng *rand.Rand) float64 {
	// multiples of π/6 in (-2π, 2π), excluding zero
	steps := rng.IntN(22) - 11
	if steps >= 0 {
		steps++
	}
	return float64(steps) * piSixth
}
