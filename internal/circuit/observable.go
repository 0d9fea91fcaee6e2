package circuit

import (
	"fmt"
	"strings"
)

// Pauli identifies a single-wire Pauli observable.
type Pauli int

// Supported Pauli operators.
const (
	PX Pauli = iota
	PY
	PZ
)

// String returns a human-readable Pauli name.
func (p Pauli) String() string {
	switch p {
	case PX:
		return "X"
	case PY:
		return "Y"
	case PZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// Term is a single Pauli operator acting on one wire.
type Term struct {
	Op   Pauli
	Wire int
}

// Observable is an ordered tensor product of single-wire Pauli terms.
// Observables are immutable: every method that would change the product
// returns a new value.
type Observable struct {
	terms []Term
}

// NewObservable creates an observable from the given terms, in order.
func NewObservable(terms ...Term) Observable {
	out := make([]Term, len(terms))
	copy(out, terms)
	return Observable{terms: out}
}

// PauliX returns the X observable on the given wire.
func PauliX(wire int) Observable {
	return Observable{terms: []Term{{Op: PX, Wire: wire}}}
}

// PauliY returns the Y observable on the given wire.
func PauliY(wire int) Observable {
	return Observable{terms: []Term{{Op: PY, Wire: wire}}}
}

// PauliZ returns the Z observable on the given wire.
func PauliZ(wire int) Observable {
	return Observable{terms: []Term{{Op: PZ, Wire: wire}}}
}

// Prod returns the tensor product of the given observables, preserving
// factor order. The factors are expected to act on distinct wires.
func Prod(obs ...Observable) Observable {
	var terms []Term
	for _, o := range obs {
		terms = append(terms, o.terms...)
	}
	return Observable{terms: terms}
}

// Terms returns a copy of the product's factors.
func (o Observable) Terms() []Term {
	out := make([]Term, len(o.terms))
	copy(out, o.terms)
	return out
}

// Len returns the number of factors in the product.
func (o Observable) Len() int {
	return len(o.terms)
}

// Wires returns the wires the observable acts on, in factor order.
func (o Observable) Wires() []int {
	wires := make([]int, len(o.terms))
	for i, t := range o.terms {
		wires[i] = t.Wire
	}
	return wires
}

// Append returns a new observable with an extra factor appended.
// The receiver is not modified.
func (o Observable) Append(t Term) Observable {
	terms := make([]Term, 0, len(o.terms)+1)
	terms = append(terms, o.terms...)
	terms = append(terms, t)
	return Observable{terms: terms}
}

// DiagonalizingGates returns the basis-change gates that rotate the
// observable's eigenbasis into the computational basis. After applying
// them, the observable is measured as a product of Z factors on the
// same wires.
func (o Observable) DiagonalizingGates() []Gate {
	var gates []Gate
	for _, t := range o.terms {
		switch t.Op {
		case PX:
			gates = append(gates, H(t.Wire))
		case PY:
			// H·S† maps the Y eigenbasis onto the computational basis.
			gates = append(gates, SDag(t.Wire), H(t.Wire))
		case PZ:
		}
	}
	return gates
}

// String returns a representation such as "Z(0) @ X(1)".
func (o Observable) String() string {
	if len(o.terms) == 0 {
		return "I"
	}
	parts := make([]string, len(o.terms))
	for i, t := range o.terms {
		parts[i] = fmt.Sprintf("%s(%d)", t.Op, t.Wire)
	}
	return strings.Join(parts, " @ ")
}
