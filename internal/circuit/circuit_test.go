package circuit_test

import (
	"testing"

	"github.com/qugrad-ml/qugrad/internal/circuit"
)

func TestTrainableParams_DefaultOrdering(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{
			circuit.H(0),
			circuit.Rot(0.1, 0.2, 0.3, 0),
			circuit.CRX(0.4, 0, 1),
		},
		[]circuit.Measurement{circuit.Expval(circuit.PauliZ(1))},
	)

	refs := c.TrainableParams()
	want := []circuit.ParamRef{
		{Op: 1, Param: 0},
		{Op: 1, Param: 1},
		{Op: 1, Param: 2},
		{Op: 2, Param: 0},
	}
	if len(refs) != len(want) {
		t.Fatalf("NumTrainable = %d, want %d", len(refs), len(want))
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("trainable[%d] = %v, want %v", i, refs[i], want[i])
		}
	}

	v, err := c.Parameter(3)
	if err != nil {
		t.Fatalf("Parameter(3) failed: %v", err)
	}
	if v != 0.4 {
		t.Errorf("Parameter(3) = %v, want 0.4", v)
	}
}

func TestWithTrainable_RestrictsSelection(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{circuit.RX(0.1, 0), circuit.RY(0.2, 0)},
		[]circuit.Measurement{circuit.Expval(circuit.PauliZ(0))},
		circuit.WithTrainable(circuit.ParamRef{Op: 1, Param: 0}),
	)
	if c.NumTrainable() != 1 {
		t.Fatalf("NumTrainable = %d, want 1", c.NumTrainable())
	}
	g, ref, err := c.Resolve(0)
	if err != nil {
		t.Fatalf("Resolve(0) failed: %v", err)
	}
	if g.Kind() != circuit.KindRY || ref.Op != 1 {
		t.Errorf("Resolve(0) = %v at %v, want RY at op 1", g, ref)
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{circuit.RX(0.1, 0)},
		[]circuit.Measurement{circuit.Expval(circuit.PauliZ(0))},
	)
	if _, _, err := c.Resolve(1); err == nil {
		t.Error("Resolve(1) succeeded, want out-of-range error")
	}
	if _, _, err := c.Resolve(-1); err == nil {
		t.Error("Resolve(-1) succeeded, want out-of-range error")
	}
}

func TestWires_FirstSeenOrder(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{circuit.CNOT(2, 0), circuit.RX(0.3, 1)},
		[]circuit.Measurement{circuit.Probs(3)},
	)
	wires := c.Wires()
	want := []int{2, 0, 1, 3}
	if len(wires) != len(want) {
		t.Fatalf("Wires() = %v, want %v", wires, want)
	}
	for i := range want {
		if wires[i] != want[i] {
			t.Fatalf("Wires() = %v, want %v", wires, want)
		}
	}
	if !c.HasWire(3) {
		t.Error("HasWire(3) = false, want true")
	}
	if c.HasWire(4) {
		t.Error("HasWire(4) = true, want false")
	}
}

func TestShiftParameter_BuildsNewCircuit(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{circuit.RX(0.1, 0), circuit.RY(0.2, 0)},
		[]circuit.Measurement{circuit.Expval(circuit.PauliZ(0))},
	)
	shifted, err := c.ShiftParameter(1, 0.05)
	if err != nil {
		t.Fatalf("ShiftParameter failed: %v", err)
	}

	v, _ := shifted.Parameter(1)
	if v != 0.25 {
		t.Errorf("shifted Parameter(1) = %v, want 0.25", v)
	}

	// The original circuit is untouched.
	orig, _ := c.Parameter(1)
	if orig != 0.2 {
		t.Errorf("original Parameter(1) = %v, want 0.2", orig)
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{circuit.RX(0.1, 0)},
		[]circuit.Measurement{circuit.Expval(circuit.PauliZ(0))},
	)

	ops := c.Operations()
	ops[0] = circuit.H(5)
	if c.Operation(0).Kind() != circuit.KindRX {
		t.Error("mutating Operations() copy affected the circuit")
	}

	refs := c.TrainableParams()
	refs[0] = circuit.ParamRef{Op: 9, Param: 9}
	if c.TrainableParams()[0].Op != 0 {
		t.Error("mutating TrainableParams() copy affected the circuit")
	}
}
