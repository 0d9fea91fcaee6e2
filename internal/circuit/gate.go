package circuit

import "fmt"

// Kind identifies a gate type.
type Kind int

// Supported gate kinds.
const (
	KindH Kind = iota
	KindX
	KindY
	KindZ
	KindS
	KindSDag
	KindCNOT
	KindCY
	KindCZ
	KindRX
	KindRY
	KindRZ
	KindRot
	KindPhaseShift
	KindU1
	KindCRX
	KindCRY
	KindCRZ
	KindIsingXX
	KindIsingYY
	KindIsingZZ
	KindU2
	KindU3
)

// String returns the gate kind's name.
func (k Kind) String() string {
	names := map[Kind]string{
		KindH: "H", KindX: "X", KindY: "Y", KindZ: "Z",
		KindS: "S", KindSDag: "SDag",
		KindCNOT: "CNOT", KindCY: "CY", KindCZ: "CZ",
		KindRX: "RX", KindRY: "RY", KindRZ: "RZ",
		KindRot: "Rot", KindPhaseShift: "PhaseShift", KindU1: "U1",
		KindCRX: "CRX", KindCRY: "CRY", KindCRZ: "CRZ",
		KindIsingXX: "IsingXX", KindIsingYY: "IsingYY", KindIsingZZ: "IsingZZ",
		KindU2: "U2", KindU3: "U3",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "Unknown"
}

// Gate is a single operation placed on the circuit: a kind, the wires it
// acts on, and zero or more real parameters. Gates are immutable values.
type Gate struct {
	kind   Kind
	wires  []int
	params []float64
}

func newGate(kind Kind, wires []int, params []float64) Gate {
	w := make([]int, len(wires))
	copy(w, wires)
	p := make([]float64, len(params))
	copy(p, params)
	return Gate{kind: kind, wires: w, params: p}
}

// H returns a Hadamard gate.
func H(wire int) Gate { return newGate(KindH, []int{wire}, nil) }

// X returns a Pauli-X gate.
func X(wire int) Gate { return newGate(KindX, []int{wire}, nil) }

// Y returns a Pauli-Y gate.
func Y(wire int) Gate { return newGate(KindY, []int{wire}, nil) }

// Z returns a Pauli-Z gate.
func Z(wire int) Gate { return newGate(KindZ, []int{wire}, nil) }

// S returns a phase gate diag(1, i).
func S(wire int) Gate { return newGate(KindS, []int{wire}, nil) }

// SDag returns the adjoint phase gate diag(1, -i).
func SDag(wire int) Gate { return newGate(KindSDag, []int{wire}, nil) }

// CNOT returns a controlled-X gate.
func CNOT(control, target int) Gate { return newGate(KindCNOT, []int{control, target}, nil) }

// CY returns a controlled-Y gate.
func CY(control, target int) Gate { return newGate(KindCY, []int{control, target}, nil) }

// CZ returns a controlled-Z gate.
func CZ(control, target int) Gate { return newGate(KindCZ, []int{control, target}, nil) }

// RX returns a rotation exp(-i theta X/2).
func RX(theta float64, wire int) Gate { return newGate(KindRX, []int{wire}, []float64{theta}) }

// RY returns a rotation exp(-i theta Y/2).
func RY(theta float64, wire int) Gate { return newGate(KindRY, []int{wire}, []float64{theta}) }

// RZ returns a rotation exp(-i theta Z/2).
func RZ(theta float64, wire int) Gate { return newGate(KindRZ, []int{wire}, []float64{theta}) }

// Rot returns the three-parameter Euler rotation RZ(omega)·RY(theta)·RZ(phi).
func Rot(phi, theta, omega float64, wire int) Gate {
	return newGate(KindRot, []int{wire}, []float64{phi, theta, omega})
}

// PhaseShift returns the gate diag(1, exp(i phi)).
func PhaseShift(phi float64, wire int) Gate {
	return newGate(KindPhaseShift, []int{wire}, []float64{phi})
}

// U1 returns the U1 gate, equal to PhaseShift up to naming.
func U1(phi float64, wire int) Gate { return newGate(KindU1, []int{wire}, []float64{phi}) }

// CRX returns a controlled RX rotation.
func CRX(theta float64, control, target int) Gate {
	return newGate(KindCRX, []int{control, target}, []float64{theta})
}

// CRY returns a controlled RY rotation.
func CRY(theta float64, control, target int) Gate {
	return newGate(KindCRY, []int{control, target}, []float64{theta})
}

// CRZ returns a controlled RZ rotation.
func CRZ(theta float64, control, target int) Gate {
	return newGate(KindCRZ, []int{control, target}, []float64{theta})
}

// IsingXX returns the two-qubit rotation exp(-i phi X⊗X/2).
func IsingXX(phi float64, wire0, wire1 int) Gate {
	return newGate(KindIsingXX, []int{wire0, wire1}, []float64{phi})
}

// IsingYY returns the two-qubit rotation exp(-i phi Y⊗Y/2).
func IsingYY(phi float64, wire0, wire1 int) Gate {
	return newGate(KindIsingYY, []int{wire0, wire1}, []float64{phi})
}

// IsingZZ returns the two-qubit rotation exp(-i phi Z⊗Z/2).
func IsingZZ(phi float64, wire0, wire1 int) Gate {
	return newGate(KindIsingZZ, []int{wire0, wire1}, []float64{phi})
}

// U2 returns the two-parameter single-qubit gate
// 1/sqrt2 [[1, -exp(i delta)], [exp(i phi), exp(i(phi+delta))]]. It has no
// generator decomposition; differentiating it requires a prior expansion
// into supported gates.
func U2(phi, delta float64, wire int) Gate {
	return newGate(KindU2, []int{wire}, []float64{phi, delta})
}

// U3 returns the general three-parameter single-qubit gate. Like U2 it has
// no generator decomposition of its own.
func U3(theta, phi, delta float64, wire int) Gate {
	return newGate(KindU3, []int{wire}, []float64{theta, phi, delta})
}

// Kind returns the gate's kind.
func (g Gate) Kind() Kind { return g.kind }

// Name returns the gate kind's name.
func (g Gate) Name() string { return g.kind.String() }

// Wires returns a copy of the gate's wires.
func (g Gate) Wires() []int {
	out := make([]int, len(g.wires))
	copy(out, g.wires)
	return out
}

// Wire returns the i-th wire of the gate.
func (g Gate) Wire(i int) int { return g.wires[i] }

// Params returns a copy of the gate's parameters.
func (g Gate) Params() []float64 {
	out := make([]float64, len(g.params))
	copy(out, g.params)
	return out
}

// NumParams returns the gate's parameter count.
func (g Gate) NumParams() int { return len(g.params) }

// Param returns the i-th parameter of the gate.
func (g Gate) Param(i int) float64 { return g.params[i] }

// WithParam returns a copy of the gate with parameter i replaced by value.
func (g Gate) WithParam(i int, value float64) (Gate, error) {
	if i < 0 || i >= len(g.params) {
		return Gate{}, fmt.Errorf("gate %s: parameter index %d out of range [0, %d)", g.Name(), i, len(g.params))
	}
	out := newGate(g.kind, g.wires, g.params)
	out.params[i] = value
	return out, nil
}

// Generator returns the gate's native generator decomposition as
// (coefficients, observables) such that the gate equals
// exp(i·theta·sum(coeff·obs)). Only single-parameter rotations expose one;
// ok is false for every other kind.
func (g Gate) Generator() (coeffs []float64, obs []Observable, ok bool) {
	switch g.kind {
	case KindRX:
		return []float64{-0.5}, []Observable{PauliX(g.wires[0])}, true
	case KindRY:
		return []float64{-0.5}, []Observable{PauliY(g.wires[0])}, true
	case KindRZ:
		return []float64{-0.5}, []Observable{PauliZ(g.wires[0])}, true
	default:
		return nil, nil, false
	}
}

// String returns a representation such as "RX(0.500)[0]".
func (g Gate) String() string {
	if len(g.params) == 0 {
		return fmt.Sprintf("%s%v", g.Name(), g.wires)
	}
	return fmt.Sprintf("%s(%v)%v", g.Name(), g.params, g.wires)
}
