package simulator

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qugrad-ml/qugrad/internal/circuit"
)

// maxWires bounds statevector allocation (2^30 amplitudes).
const maxWires = 30

// Simulator is a dense statevector execution target for circuits. Wire i
// maps to bit position numWires-1-i, so wire 0 is the most significant bit
// of a basis-state index.
type Simulator struct {
	numWires int
}

// New creates a simulator with the given number of wires, labelled 0..n-1.
func New(numWires int) (*Simulator, error) {
	if numWires < 1 || numWires > maxWires {
		return nil, fmt.Errorf("simulator: wire count %d outside [1, %d]", numWires, maxWires)
	}
	return &Simulator{numWires: numWires}, nil
}

// NumWires returns the simulator's wire count.
func (s *Simulator) NumWires() int { return s.numWires }

// Wires returns the simulator's wire labels.
func (s *Simulator) Wires() []int {
	wires := make([]int, s.numWires)
	for i := range wires {
		wires[i] = i
	}
	return wires
}

// Run executes a circuit and returns one value per measurement.
func (s *Simulator) Run(c *circuit.Circuit) (circuit.Result, error) {
	if c == nil {
		return nil, fmt.Errorf("simulator: nil circuit")
	}
	for _, w := range c.Wires() {
		if w < 0 || w >= s.numWires {
			return nil, fmt.Errorf("simulator: circuit wire %d outside device wires [0, %d)", w, s.numWires)
		}
	}

	st := newState(s.numWires)
	for _, g := range c.Operations() {
		if err := st.apply(g); err != nil {
			return nil, err
		}
	}

	result := make(circuit.Result, c.NumMeasurements())
	for i, m := range c.Measurements() {
		v, err := st.measure(m)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

// state is a dense complex amplitude vector over n wires.
type state struct {
	amps []complex128
	n    int
}

func newState(n int) *state {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &state{amps: amps, n: n}
}

func (st *state) clone() *state {
	amps := make([]complex128, len(st.amps))
	copy(amps, st.amps)
	return &state{amps: amps, n: st.n}
}

// bit returns the index mask for a wire.
func (st *state) bit(wire int) int {
	return 1 << (st.n - 1 - wire)
}

// apply1 applies a 2x2 unitary to one wire.
func (st *state) apply1(m [2][2]complex128, wire int) {
	b := st.bit(wire)
	for i := range st.amps {
		if i&b == 0 {
			j := i | b
			a0, a1 := st.amps[i], st.amps[j]
			st.amps[i] = m[0][0]*a0 + m[0][1]*a1
			st.amps[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
}

// applyControlled1 applies a 2x2 unitary to the target wire on the
// subspace where the control wire is 1.
func (st *state) applyControlled1(m [2][2]complex128, control, target int) {
	cb, tb := st.bit(control), st.bit(target)
	for i := range st.amps {
		if i&cb != 0 && i&tb == 0 {
			j := i | tb
			a0, a1 := st.amps[i], st.amps[j]
			st.amps[i] = m[0][0]*a0 + m[0][1]*a1
			st.amps[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
}

func rxMatrix(theta float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return [2][2]complex128{{c, s}, {s, c}}
}

func ryMatrix(theta float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return [2][2]complex128{{c, -s}, {s, c}}
}

func rzMatrix(theta float64) [2][2]complex128 {
	return [2][2]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

func phaseMatrix(phi float64) [2][2]complex128 {
	return [2][2]complex128{{1, 0}, {0, cmplx.Exp(complex(0, phi))}}
}

func u2Matrix(phi, delta float64) [2][2]complex128 {
	inv := complex(1/math.Sqrt2, 0)
	return [2][2]complex128{
		{inv, -inv * cmplx.Exp(complex(0, delta))},
		{inv * cmplx.Exp(complex(0, phi)), inv * cmplx.Exp(complex(0, phi+delta))},
	}
}

func u3Matrix(theta, phi, delta float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return [2][2]complex128{
		{c, -s * cmplx.Exp(complex(0, delta))},
		{s * cmplx.Exp(complex(0, phi)), c * cmplx.Exp(complex(0, phi+delta))},
	}
}

var (
	xMatrix    = [2][2]complex128{{0, 1}, {1, 0}}
	yMatrix    = [2][2]complex128{{0, -1i}, {1i, 0}}
	zMatrix    = [2][2]complex128{{1, 0}, {0, -1}}
	sMatrix    = [2][2]complex128{{1, 0}, {0, 1i}}
	sDagMatrix = [2][2]complex128{{1, 0}, {0, -1i}}
	hMatrix    = [2][2]complex128{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}
)

func (st *state) apply(g circuit.Gate) error {
	switch g.Kind() {
	case circuit.KindH:
		st.apply1(hMatrix, g.Wire(0))
	case circuit.KindX:
		st.apply1(xMatrix, g.Wire(0))
	case circuit.KindY:
		st.apply1(yMatrix, g.Wire(0))
	case circuit.KindZ:
		st.apply1(zMatrix, g.Wire(0))
	case circuit.KindS:
		st.apply1(sMatrix, g.Wire(0))
	case circuit.KindSDag:
		st.apply1(sDagMatrix, g.Wire(0))
	case circuit.KindCNOT:
		st.applyControlled1(xMatrix, g.Wire(0), g.Wire(1))
	case circuit.KindCY:
		st.applyControlled1(yMatrix, g.Wire(0), g.Wire(1))
	case circuit.KindCZ:
		st.applyControlled1(zMatrix, g.Wire(0), g.Wire(1))
	case circuit.KindRX:
		st.apply1(rxMatrix(g.Param(0)), g.Wire(0))
	case circuit.KindRY:
		st.apply1(ryMatrix(g.Param(0)), g.Wire(0))
	case circuit.KindRZ:
		st.apply1(rzMatrix(g.Param(0)), g.Wire(0))
	case circuit.KindRot:
		// Rot = RZ(omega)·RY(theta)·RZ(phi), phi applied first.
		st.apply1(rzMatrix(g.Param(0)), g.Wire(0))
		st.apply1(ryMatrix(g.Param(1)), g.Wire(0))
		st.apply1(rzMatrix(g.Param(2)), g.Wire(0))
	case circuit.KindPhaseShift, circuit.KindU1:
		st.apply1(phaseMatrix(g.Param(0)), g.Wire(0))
	case circuit.KindCRX:
		st.applyControlled1(rxMatrix(g.Param(0)), g.Wire(0), g.Wire(1))
	case circuit.KindCRY:
		st.applyControlled1(ryMatrix(g.Param(0)), g.Wire(0), g.Wire(1))
	case circuit.KindCRZ:
		st.applyControlled1(rzMatrix(g.Param(0)), g.Wire(0), g.Wire(1))
	case circuit.KindIsingXX:
		st.applyIsingXX(g.Param(0), g.Wire(0), g.Wire(1))
	case circuit.KindIsingYY:
		st.applyIsingYY(g.Param(0), g.Wire(0), g.Wire(1))
	case circuit.KindIsingZZ:
		st.applyIsingZZ(g.Param(0), g.Wire(0), g.Wire(1))
	case circuit.KindU2:
		st.apply1(u2Matrix(g.Param(0), g.Param(1)), g.Wire(0))
	case circuit.KindU3:
		st.apply1(u3Matrix(g.Param(0), g.Param(1), g.Param(2)), g.Wire(0))
	default:
		return fmt.Errorf("simulator: gate %s not supported", g.Name())
	}
	return nil
}

func (st *state) applyIsingXX(phi float64, w0, w1 int) {
	b0, b1 := st.bit(w0), st.bit(w1)
	c := complex(math.Cos(phi/2), 0)
	s := complex(0, -math.Sin(phi/2))
	for i := range st.amps {
		if i&b0 == 0 && i&b1 == 0 {
			// Basis pairs (i, i^b0^b1) and (i^b0, i^b1) mix under X⊗X.
			for _, k := range []int{i, i | b0} {
				j := k ^ b0 ^ b1
				ak, aj := st.amps[k], st.amps[j]
				st.amps[k] = c*ak + s*aj
				st.amps[j] = c*aj + s*ak
			}
		}
	}
}

func (st *state) applyIsingYY(phi float64, w0, w1 int) {
	b0, b1 := st.bit(w0), st.bit(w1)
	c := complex(math.Cos(phi/2), 0)
	s := complex(0, math.Sin(phi/2))
	for i := range st.amps {
		if i&b0 == 0 && i&b1 == 0 {
			for _, k := range []int{i, i | b0} {
				j := k ^ b0 ^ b1
				// Y⊗Y carries a -1 on the even-parity pair.
				sign := complex(1, 0)
				if (k&b0 != 0) == (k&b1 != 0) {
					sign = -1
				}
				ak, aj := st.amps[k], st.amps[j]
				st.amps[k] = c*ak - s*sign*aj
				st.amps[j] = c*aj - s*sign*ak
			}
		}
	}
}

func (st *state) applyIsingZZ(phi float64, w0, w1 int) {
	b0, b1 := st.bit(w0), st.bit(w1)
	plus := cmplx.Exp(complex(0, -phi/2))
	minus := cmplx.Exp(complex(0, phi/2))
	for i := range st.amps {
		if (i&b0 != 0) == (i&b1 != 0) {
			st.amps[i] *= plus
		} else {
			st.amps[i] *= minus
		}
	}
}

// measure evaluates a single measurement on the current state.
func (st *state) measure(m circuit.Measurement) (circuit.Value, error) {
	switch m.Kind() {
	case circuit.Expectation:
		obs, ok := m.Observable()
		if !ok {
			return nil, fmt.Errorf("simulator: expectation measurement without observable")
		}
		return circuit.Value{st.expval(obs)}, nil
	case circuit.Variance:
		obs, ok := m.Observable()
		if !ok {
			return nil, fmt.Errorf("simulator: variance measurement without observable")
		}
		// Pauli strings square to the identity: Var = 1 - <P>^2.
		e := st.expval(obs)
		return circuit.Value{1 - e*e}, nil
	case circuit.Probability:
		if obs, ok := m.Observable(); ok {
			rotated := st.clone()
			for _, g := range obs.DiagonalizingGates() {
				if err := rotated.apply(g); err != nil {
					return nil, err
				}
			}
			return rotated.probs(obs.Wires()), nil
		}
		return st.probs(m.Wires()), nil
	default:
		return nil, fmt.Errorf("simulator: measurement kind %s not supported", m.Kind())
	}
}

// expval computes <P> for a Pauli product by rotating into the
// computational basis and summing Z-parity weights.
func (st *state) expval(obs circuit.Observable) float64 {
	rotated := st.clone()
	for _, g := range obs.DiagonalizingGates() {
		// Diagonalizing gates are all single-qubit kinds; apply cannot fail.
		_ = rotated.apply(g)
	}
	mask := 0
	for _, w := range obs.Wires() {
		mask |= rotated.bit(w)
	}
	var e float64
	for i, a := range rotated.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if parity(i&mask) {
			e -= p
		} else {
			e += p
		}
	}
	return e
}

// probs computes the marginal distribution over the listed wires, first
// wire most significant.
func (st *state) probs(wires []int) circuit.Value {
	out := make(circuit.Value, 1<<len(wires))
	for i, a := range st.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		idx := 0
		for _, w := range wires {
			idx <<= 1
			if i&st.bit(w) != 0 {
				idx |= 1
			}
		}
		out[idx] += p
	}
	return out
}

func parity(bits int) bool {
	count := 0
	for bits != 0 {
		bits &= bits - 1
		count++
	}
	return count%2 == 1
}
