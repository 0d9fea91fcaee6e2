package gradients

import (
	"fmt"
	"math"

	"github.com/qugrad-ml/qugrad/internal/circuit"
)

// Hadamard transforms a circuit into the auxiliary measurement circuits of
// the hadamard-test gradient, one per generator term per differentiated
// parameter, bundled with the bookkeeping needed to post-process their
// results into a gradient.
//
// For a parameterized evolution U the derivative of an observable O
// satisfies df/dtheta = -2·Im[<0|O·G|0>], which the auxiliary circuits
// measure as <Y(aux) ⊗ O> after interfering the generator G on an extra
// wire. The caller executes the emitted circuits in order and feeds the
// results to Batch.PostProcess.
func Hadamard(c *circuit.Circuit, opts ...Option) (*Batch, error) {
	if c == nil {
		return nil, fmt.Errorf("gradients: nil circuit")
	}

	for _, m := range c.Measurements() {
		switch m.Kind() {
		case circuit.Expectation, circuit.Probability:
		default:
			return nil, fmt.Errorf("gradients: %w: %s", ErrUnsupportedMeasurement, m.Kind())
		}
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	trainable := c.TrainableParams()
	selected, err := selectedParams(cfg.argnum, len(trainable))
	if err != nil {
		return nil, err
	}

	batch := &Batch{
		counts:          make([]int, len(trainable)),
		numMeasurements: c.NumMeasurements(),
	}
	for i, m := range c.Measurements() {
		if m.Kind() == circuit.Probability {
			batch.probIndices = append(batch.probIndices, i)
			batch.probWires = append(batch.probWires, len(m.Wires()))
		}
	}
	if len(trainable) == 0 || len(selected) == 0 {
		// Nothing to differentiate: the batch post-processes to a
		// structurally zero gradient without building any circuit.
		return batch, nil
	}

	if cfg.deviceWires != nil && len(cfg.deviceWires) == c.NumWires() {
		return nil, fmt.Errorf("gradients: %w", ErrNoSpareWire)
	}

	aux := cfg.auxWire
	if cfg.haveAuxWire {
		if c.HasWire(aux) {
			return nil, fmt.Errorf("gradients: %w: wire %d", ErrAuxWireInUse, aux)
		}
		if cfg.deviceWires != nil && !containsWire(cfg.deviceWires, aux) {
			return nil, fmt.Errorf("gradients: %w: wire %d", ErrAuxWireNotOnDevice, aux)
		}
	} else {
		aux, err = pickAuxWire(c, cfg.deviceWires)
		if err != nil {
			return nil, err
		}
	}

	ops := c.Operations()
	for i := range trainable {
		if !selected[i] {
			continue
		}
		gate, ref, err := c.Resolve(i)
		if err != nil {
			return nil, err
		}

		coeffs, generators, err := generatorTerms(gate)
		if err != nil {
			return nil, err
		}

		// The owning gate stays at the end of the prefix: the generator
		// acts right after the gate's own action.
		prefix := append([]circuit.Gate{}, ops[:ref.Op+1]...)
		suffix := append([]circuit.Gate{}, ops[ref.Op+1:]...)
		if gate.Kind() == circuit.KindRot {
			prefix, suffix = compensateRot(gate, ref.Param, prefix, suffix)
		}

		for t, gen := range generators {
			gates := buildAuxCircuit(prefix, suffix, gen, aux)
			g, err := finalizeAuxCircuit(gates, c, aux)
			if err != nil {
				return nil, err
			}
			batch.Circuits = append(batch.Circuits, g)
			batch.coeffs = append(batch.coeffs, coeffs[t])
		}
		batch.counts[i] = len(generators)
	}

	return batch, nil
}

// compensateRot adjusts the splice around a three-parameter Euler rotation
// so the reduced Z generator lands in the algebraically correct position
// for the differentiated slot.
func compensateRot(gate circuit.Gate, paramIdx int, prefix, suffix []circuit.Gate) ([]circuit.Gate, []circuit.Gate) {
	wire := gate.Wire(0)
	switch paramIdx {
	case 0:
		// First Euler angle: the gate commutes past the generator, so the
		// generator is applied before the gate instead of after it.
		prefix = prefix[:len(prefix)-1]
		suffix = append([]circuit.Gate{gate}, suffix...)
	case 1:
		// Middle Euler angle: conjugate the Z generator into
		// RZ(omega)·Y·RZ(-omega) position.
		omega := gate.Param(2)
		prefix = append(prefix, circuit.RZ(-omega, wire), circuit.RX(math.Pi/2, wire))
		suffix = append([]circuit.Gate{circuit.RX(-math.Pi/2, wire), circuit.RZ(omega, wire)}, suffix...)
	case 2:
		// Last Euler angle: the generator is already in place.
	}
	return prefix, suffix
}

// buildAuxCircuit assembles the gate sequence of one auxiliary circuit:
// prefix, hadamard, auxiliary-controlled generator, hadamard, suffix.
func buildAuxCircuit(prefix, suffix []circuit.Gate, gen circuit.Observable, aux int) []circuit.Gate {
	gates := make([]circuit.Gate, 0, len(prefix)+len(suffix)+2+gen.Len())
	gates = append(gates, prefix...)
	gates = append(gates, circuit.H(aux))
	for _, t := range gen.Terms() {
		switch t.Op {
		case circuit.PX:
			gates = append(gates, circuit.CNOT(aux, t.Wire))
		case circuit.PY:
			gates = append(gates, circuit.CY(aux, t.Wire))
		case circuit.PZ:
			gates = append(gates, circuit.CZ(aux, t.Wire))
		}
	}
	gates = append(gates, circuit.H(aux))
	gates = append(gates, suffix...)
	return gates
}

// finalizeAuxCircuit extends every original measurement with a Y factor on
// the auxiliary wire, appends the rotations that diagonalize the extended
// observables and builds the immutable auxiliary circuit.
func finalizeAuxCircuit(gates []circuit.Gate, original *circuit.Circuit, aux int) (*circuit.Circuit, error) {
	extended := make([]circuit.Measurement, 0, original.NumMeasurements())
	for _, m := range original.Measurements() {
		var base circuit.Observable
		if obs, ok := m.Observable(); ok {
			base = obs
		} else {
			terms := make([]circuit.Term, 0, len(m.Wires()))
			for _, w := range m.Wires() {
				terms = append(terms, circuit.Term{Op: circuit.PZ, Wire: w})
			}
			base = circuit.NewObservable(terms...)
		}
		ext := base.Append(circuit.Term{Op: circuit.PY, Wire: aux})

		switch m.Kind() {
		case circuit.Expectation:
			extended = append(extended, circuit.Expval(ext))
		case circuit.Probability:
			// The auxiliary projection happens in post-processing, so the
			// measurement kind is preserved.
			extended = append(extended, circuit.ProbsObs(ext))
		}
	}

	rotations, diagonal, err := circuit.DiagonalizeMeasurements(extended)
	if err != nil {
		return nil, fmt.Errorf("gradients: %w", err)
	}
	return circuit.New(append(gates, rotations...), diagonal), nil
}

// selectedParams expands an optional argnum list into a per-parameter
// selection mask covering all trainable parameters.
func selectedParams(argnum []int, numTrainable int) (map[int]bool, error) {
	selected := make(map[int]bool, numTrainable)
	if argnum == nil {
		for i := 0; i < numTrainable; i++ {
			selected[i] = true
		}
		return selected, nil
	}
	for _, idx := range argnum {
		if idx < 0 || idx >= numTrainable {
			return nil, fmt.Errorf("gradients: argnum %d out of range [0, %d)", idx, numTrainable)
		}
		selected[idx] = true
	}
	return selected, nil
}

func containsWire(wires []int, w int) bool {
	for _, x := range wires {
		if x == w {
			return true
		}
	}
	return false
}
