package circuit

import "fmt"

// DiagonalizeMeasurements computes the basis rotations needed to measure
// every observable in the list simultaneously in the computational basis,
// together with the diagonal equivalents of the measurements: expectation
// values become Z-product expectations on the same wires, observable
// probabilities become computational-basis probabilities in the
// observable's wire order. Measurements without an observable pass through
// unchanged.
//
// Two observables requesting different bases on the same wire cannot be
// measured together; that is an error.
func DiagonalizeMeasurements(measurements []Measurement) ([]Gate, []Measurement, error) {
	basis := make(map[int]Pauli)
	var order []int

	for _, m := range measurements {
		obs, ok := m.Observable()
		if !ok {
			continue
		}
		for _, t := range obs.Terms() {
			if existing, seen := basis[t.Wire]; seen {
				if existing != t.Op {
					return nil, nil, fmt.Errorf("circuit: wire %d measured in both %s and %s bases", t.Wire, existing, t.Op)
				}
				continue
			}
			basis[t.Wire] = t.Op
			order = append(order, t.Wire)
		}
	}

	var rotations []Gate
	for _, w := range order {
		switch basis[w] {
		case PX:
			rotations = append(rotations, H(w))
		case PY:
			rotations = append(rotations, SDag(w), H(w))
		case PZ:
		}
	}

	diagonal := make([]Measurement, len(measurements))
	for i, m := range measurements {
		obs, ok := m.Observable()
		if !ok {
			diagonal[i] = m
			continue
		}
		switch m.Kind() {
		case Expectation:
			diagonal[i] = Expval(zProduct(obs.Wires()))
		case Variance:
			diagonal[i] = Var(zProduct(obs.Wires()))
		case Probability:
			diagonal[i] = Probs(obs.Wires()...)
		default:
			diagonal[i] = m
		}
	}
	return rotations, diagonal, nil
}

// zProduct builds a Z⊗...⊗Z observable over the given wires.
func zProduct(wires []int) Observable {
	terms := make([]Term, len(wires))
	for i, w := range wires {
		terms[i] = Term{Op: PZ, Wire: w}
	}
	return NewObservable(terms...)
}
