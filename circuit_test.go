package main

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRng() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		build  func() *Circuit
		reason string // empty means valid
	}{
		{
			name: "valid mixed circuit",
			build: func() *Circuit {
				c := NewCircuit(2, 2)
				c.AddGate(KindH, 0)
				c.AddControlled(KindCNOT, 0, 1)
				c.AddMeasure(1, 1)
				return c
			},
		},
		{
			name: "target out of range",
			build: func() *Circuit {
				c := NewCircuit(2, 2)
				c.AddGate(KindX, 2)
				return c
			},
			reason: "target",
		},
		{
			name: "control out of range",
			build: func() *Circuit {
				c := NewCircuit(2, 2)
				c.AddControlled(KindCZ, 5, 0)
				return c
			},
			reason: "control",
		},
		{
			name: "control equals target",
			build: func() *Circuit {
				c := NewCircuit(2, 2)
				c.AddControlled(KindCNOT, 1, 1)
				return c
			},
			reason: "control and target",
		},
		{
			name: "clbit out of range",
			build: func() *Circuit {
				c := NewCircuit(2, 1)
				c.AddMeasure(1, 1)
				return c
			},
			reason: "classical bit",
		},
		{
			name: "unknown kind",
			build: func() *Circuit {
				c := NewCircuit(1, 1)
				c.Ops = append(c.Ops, Operation{Kind: Kind(99), Target: 0, Control: -1, Clbit: -1})
				return c
			},
			reason: "unknown gate kind",
		},
		{
			name: "single-qubit gate with a control",
			build: func() *Circuit {
				c := NewCircuit(2, 2)
				c.Ops = append(c.Ops, Operation{Kind: KindH, Target: 0, Control: 1, Clbit: -1})
				return c
			},
			reason: "control",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Validate()
			if tc.reason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var malformed *MalformedOperationError
			require.ErrorAs(t, err, &malformed)
			assert.Contains(t, malformed.Reason, tc.reason)
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := NewCircuit(2, 2)
	c.AddGate(KindH, 0)

	clone := c.Clone()
	clone.AddGate(KindX, 1)
	clone.Ops[0].Target = 1

	assert.Len(t, c.Ops, 1)
	assert.Equal(t, 0, c.Ops[0].Target)
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "H q[0]",
		Operation{Kind: KindH, Target: 0, Control: -1, Clbit: -1}.String())
	assert.Equal(t, "RX(pi/2) q[1]",
		Operation{Kind: KindRX, Target: 1, Control: -1, Clbit: -1, Angle: math.Pi / 2}.String())
	assert.Equal(t, "CZ q[0], q[1]",
		Operation{Kind: KindCZ, Target: 1, Control: 0, Clbit: -1}.String())
	assert.Equal(t, "MEASURE q[1] -> c[0]",
		Operation{Kind: KindMeasure, Target: 1, Control: -1, Clbit: 0}.String())
}

func TestRandomAngleRange(t *testing.T) {
	rng := newTestRng()
	for i := 0; i < 500; i++ {
		angle := randomAngle(rng)
		assert.NotZero(t, angle)
		assert.Greater(t, angle, -2*math.Pi)
		assert.Less(t, angle, 2*math.Pi)

		steps := angle / piSixth
		assert.InDelta(t, math.Round(steps), steps, 1e-12, "angle %v is not a multiple of π/6", angle)
	}
}

func TestRandomCircuitsAreValid(t *testing.T) {
	rng := newTestRng()
	for i := 0; i < 50; i++ {
		require.NoError(t, RandomCircuit(rng, 1+rng.IntN(4), 15).Validate())
		require.NoError(t, RandomNativeCircuit(rng, 1+rng.IntN(4), 15, 2).Validate())
	}
}
