package main

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeMergesSameAxisRuns(t *testing.T) {
	c := NewCircuit(1, 1)
	c.AddRotation(KindRZ, 0, math.Pi/4)
	c.AddRotation(KindRZ, 0, math.Pi/4)
	c.AddRotation(KindRZ, 0, math.Pi/2)

	opt, err := Optimize(c)
	require.NoError(t, err)
	require.Len(t, opt.Ops, 1)
	assert.Equal(t, KindRZ, opt.Ops[0].Kind)
	assert.InDelta(t, math.Pi, opt.Ops[0].Angle, angleEps)
}

func TestOptimizeDropsFullTurns(t *testing.T) {
	c := NewCircuit(1, 1)
	c.AddRotation(KindRX, 0, math.Pi)
	c.AddRotation(KindRX, 0, math.Pi)

	opt, err := Optimize(c)
	require.NoError(t, err)
	assert.Empty(t, opt.Ops, "a 2π run is an identity")

	c = NewCircuit(1, 1)
	c.AddRotation(KindRZ, 0, 4*math.Pi)
	opt, err = Optimize(c)
	require.NoError(t, err)
	assert.Empty(t, opt.Ops, "any whole number of turns is dropped")
}

func TestOptimizeKeepsAngleVerbatim(t *testing.T) {
	// merged angles are not reduced mod 2π
	c := NewCircuit(1, 1)
	c.AddRotation(KindRX, 0, 3*math.Pi/2)
	c.AddRotation(KindRX, 0, 3*math.Pi/2)

	opt, err := Optimize(c)
	require.NoError(t, err)
	require.Len(t, opt.Ops, 1)
	assert.InDelta(t, 3*math.Pi, opt.Ops[0].Angle, angleEps)
}

func TestOptimizeCZIsABarrier(t *testing.T) {
	c := NewCircuit(2, 2)
	c.AddRotation(KindRZ, 0, math.Pi/4)
	c.AddControlled(KindCZ, 0, 1)
	c.AddRotation(KindRZ, 0, math.Pi/4)

	opt, err := Optimize(c)
	require.NoError(t, err)
	require.Len(t, opt.Ops, 3, "rotations on either side of a CZ must not merge")
	assert.Equal(t, KindRZ, opt.Ops[0].Kind)
	assert.Equal(t, KindCZ, opt.Ops[1].Kind)
	assert.Equal(t, KindRZ, opt.Ops[2].Kind)
}

func TestOptimizeMeasureIsABarrier(t *testing.T) {
	c := NewCircuit(1, 1)
	c.AddRotation(KindRX, 0, math.Pi/2)
	c.AddMeasure(0, 0)
	c.AddRotation(KindRX, 0, math.Pi/2)

	opt, err := Optimize(c)
	require.NoError(t, err)
	require.Len(t, opt.Ops, 3)
	assert.Equal(t, KindMeasure, opt.Ops[1].Kind)
}

func TestOptimizeCZFlushOrder(t *testing.T) {
	// a CZ flushes its control's accumulator before its target's
	c := NewCircuit(2, 2)
	c.AddRotation(KindRZ, 0, math.Pi/4)
	c.AddRotation(KindRX, 1, math.Pi/3)
	c.AddControlled(KindCZ, 1, 0)

	opt, err := Optimize(c)
	require.NoError(t, err)
	require.Len(t, opt.Ops, 3)
	assert.Equal(t, Operation{Kind: KindRX, Target: 1, Control: -1, Clbit: -1, Angle: math.Pi / 3}, opt.Ops[0])
	assert.Equal(t, Operation{Kind: KindRZ, Target: 0, Control: -1, Clbit: -1, Angle: math.Pi / 4}, opt.Ops[1])
	assert.Equal(t, KindCZ, opt.Ops[2].Kind)
}

func TestOptimizeMergesAcrossInterleavedQubits(t *testing.T) {
	// log position does not matter, only adjacency on the qubit's own line
	c := NewCircuit(2, 2)
	c.AddRotation(KindRZ, 0, math.Pi/8)
	c.AddRotation(KindRZ, 1, math.Pi/8)
	c.AddRotation(KindRZ, 0, math.Pi/8)
	c.AddRotation(KindRZ, 1, math.Pi/8)

	opt, err := Optimize(c)
	require.NoError(t, err)

	want := []Operation{
		{Kind: KindRZ, Target: 0, Control: -1, Clbit: -1, Angle: math.Pi / 4},
		{Kind: KindRZ, Target: 1, Control: -1, Clbit: -1, Angle: math.Pi / 4},
	}
	if diff := cmp.Diff(want, opt.Ops); diff != "" {
		t.Errorf("merged ops mismatch (-want +got):\n%s", diff)
	}
}

func TestOptimizeSecondPass(t *testing.T) {
	// A single greedy pass is not a fixpoint: dropping a zero-sum run can
	// leave two same-axis rotations newly adjacent. A second pass may shrink
	// the circuit further but must stay equivalent and never grow it.
	dec, err := Decompose(exampleCircuit())
	require.NoError(t, err)
	once, err := Optimize(dec)
	require.NoError(t, err)
	twice, err := Optimize(once)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(twice.Ops), len(once.Ops))
	assert.True(t, GlobalPhaseEquivalent(UnitaryOf(once), UnitaryOf(twice)))
}

func TestOptimizeRejectsNonNativeGates(t *testing.T) {
	c := NewCircuit(1, 1)
	c.AddGate(KindH, 0)

	_, err := Optimize(c)
	require.Error(t, err)
	var bad *InvalidInputGateSetError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, KindH, bad.Kind)
}

func TestOptimizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60

	properties := gopter.NewProperties(parameters)

	circuitFor := func(seed uint64, numQubits, numOps int) *Circuit {
		rng := rand.New(rand.NewPCG(seed, 0))
		return RandomNativeCircuit(rng, numQubits, numOps, numQubits)
	}

	properties.Property("output is never longer and stays native", prop.ForAll(
		func(seed uint64, numQubits, numOps int) bool {
			c := circuitFor(seed, numQubits, numOps)
			opt, err := Optimize(c)
			if err != nil {
				return false
			}
			if len(opt.Ops) > len(c.Ops) {
				return false
			}
			for _, op := range opt.Ops {
				if !op.Kind.IsNative() {
					return false
				}
			}
			return true
		},
		gen.UInt64(), gen.IntRange(1, 3), gen.IntRange(0, 24),
	))

	properties.Property("output is phase-equivalent to input", prop.ForAll(
		func(seed uint64, numQubits, numOps int) bool {
			c := circuitFor(seed, numQubits, numOps)
			opt, err := Optimize(c)
			if err != nil {
				return false
			}
			return GlobalPhaseEquivalent(UnitaryOf(c), UnitaryOf(opt))
		},
		gen.UInt64(), gen.IntRange(1, 3), gen.IntRange(0, 24),
	))

	properties.Property("a second pass never grows the circuit", prop.ForAll(
		func(seed uint64, numQubits, numOps int) bool {
			c := circuitFor(seed, numQubits, numOps)
			once, err := Optimize(c)
			if err != nil {
				return false
			}
			twice, err := Optimize(once)
			if err != nil {
				return false
			}
			return len(twice.Ops) <= len(once.Ops) &&
				GlobalPhaseEquivalent(UnitaryOf(once), UnitaryOf(twice))
		},
		gen.UInt64(), gen.IntRange(1, 3), gen.IntRange(0, 24),
	))

	properties.TestingRun(t)
}
