package main

import (
	"math"
	"math/cmplx"
)

type Complex = complex128

// matrixEps is the tolerance for the global-phase equivalence check.
const matrixEps = 1e-9

// maxVerifyQubits caps the register size for dense unitary verification. The
// oracle builds a 2^n by 2^n matrix, which stops being practical past this.
const maxVerifyQubits = 10

// StateVector is a dense 2^n amplitude vector over n qubits.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// ApplyOperation applies one circuit operation to the state. MEASURE is a
// no-op here: the verification oracle is defined on the unitary part of a
// circuit only.
func (s *StateVector) ApplyOperation(op Operation) {
	switch op.Kind {
	case KindI, KindMeasure:
	case KindH:
		s.applyH(op.Target)
	case KindX:
		s.applyX(op.Target)
	case KindY:
		s.applyY(op.Target)
	case KindZ:
		s.applyZ(op.Target)
	case KindRX:
		s.applyRX(op.Target, op.Angle)
	case KindRY:
		s.applyRY(op.Target, op.Angle)
	case KindRZ:
		s.applyRZ(op.Target, op.Angle)
	case KindCNOT:
		s.applyCX(op.Control, op.Target)
	case KindCZ:
		s.applyCZ(op.Control, op.Target)
	}
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = hFactor * (s.Amplitudes[i] + s.Amplitudes[j])
			newAmps[j] = hFactor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyY(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = 1i*s.Amplitudes[j], -1i*s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyZ(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

func (s *StateVector) applyRX(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = c*s.Amplitudes[i] + js*s.Amplitudes[j]
			newAmps[j] = js*s.Amplitudes[i] + c*s.Amplitudes[j]
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyRY(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = c*s.Amplitudes[i] - sn*s.Amplitudes[j]
			newAmps[j] = sn*s.Amplitudes[i] + c*s.Amplitudes[j]
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyRZ(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		} else {
			s.Amplitudes[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCZ(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

// SimulateCircuit runs the circuit on the |0...0⟩ state.
func SimulateCircuit(c *Circuit) *StateVector {
	if c.NumQubits == 0 {
		return NewStateVector(1)
	}
	state := NewStateVector(c.NumQubits)
	for _, op := range c.Ops {
		state.ApplyOperation(op)
	}
	return state
}

type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// GetQubitProbabilities returns the marginal measurement probabilities of
// each qubit.
func (s *StateVector) GetQubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	n := len(s.Amplitudes)

	for i := 0; i < n; i++ {
		prob := real(s.Amplitudes[i] * cmplx.Conj(s.Amplitudes[i]))
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}

	return probs
}

// Matrix is a dense complex matrix in row-major [row][col] layout.
type Matrix [][]Complex

// UnitaryOf returns the circuit's unitary by pushing each computational
// basis state through the simulator; column k of the result is the image of
// basis state |k⟩. MEASURE operations are skipped.
func UnitaryOf(c *Circuit) Matrix {
	dim := 1 << c.NumQubits
	u := make(Matrix, dim)
	for row := range u {
		u[row] = make([]Complex, dim)
	}
	for col := 0; col < dim; col++ {
		s := &StateVector{Amplitudes: make([]Complex, dim), NumQubits: c.NumQubits}
		s.Amplitudes[col] = 1
		for _, op := range c.Ops {
			s.ApplyOperation(op)
		}
		for row := 0; row < dim; row++ {
			u[row][col] = s.Amplitudes[row]
		}
	}
	return u
}

// GlobalPhaseEquivalent reports whether two equal-dimension unitaries differ
// only by a global phase: P = U1·U2† must be phase·Identity. A zero top-left
// entry of P means the matrices cannot be phase multiples of each other.
func GlobalPhaseEquivalent(u1, u2 Matrix) bool {
	dim := len(u1)
	if dim == 0 || len(u2) != dim {
		return false
	}

	p := make(Matrix, dim)
	for r := 0; r < dim; r++ {
		p[r] = make([]Complex, dim)
		for c := 0; c < dim; c++ {
			var sum Complex
			for k := 0; k < dim; k++ {
				sum += u1[r][k] * cmplx.Conj(u2[c][k])
			}
			p[r][c] = sum
		}
	}

	phase := p[0][0]
	if cmplx.Abs(phase) < matrixEps {
		return false
	}

	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			want := Complex(0)
			if r == c {
				want = 1
			}
			if cmplx.Abs(p[r][c]/phase-want) > matrixEps {
				return false
			}
		}
	}
	return true
}
