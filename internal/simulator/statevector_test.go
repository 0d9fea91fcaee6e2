package simulator_test

import (
	"math"
	"testing"

	"github.com/qugrad-ml/qugrad/internal/circuit"
	"github.com/qugrad-ml/qugrad/internal/simulator"
)

const eps = 1e-12

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func runSingle(t *testing.T, numWires int, ops []circuit.Gate, m circuit.Measurement) circuit.Value {
	t.Helper()
	dev, err := simulator.New(numWires)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", numWires, err)
	}
	res, err := dev.Run(circuit.New(ops, []circuit.Measurement{m}))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return res[0]
}

func TestExpval_SingleQubitRotations(t *testing.T) {
	theta := 0.7

	z := runSingle(t, 1, []circuit.Gate{circuit.RX(theta, 0)}, circuit.Expval(circuit.PauliZ(0)))
	if !almost(z[0], math.Cos(theta)) {
		t.Errorf("<Z> after RX = %v, want %v", z[0], math.Cos(theta))
	}

	y := runSingle(t, 1, []circuit.Gate{circuit.RX(theta, 0)}, circuit.Expval(circuit.PauliY(0)))
	if !almost(y[0], -math.Sin(theta)) {
		t.Errorf("<Y> after RX = %v, want %v", y[0], -math.Sin(theta))
	}

	x := runSingle(t, 1, []circuit.Gate{circuit.RY(theta, 0)}, circuit.Expval(circuit.PauliX(0)))
	if !almost(x[0], math.Sin(theta)) {
		t.Errorf("<X> after RY = %v, want %v", x[0], math.Sin(theta))
	}
}

func TestExpval_PhaseShift(t *testing.T) {
	phi := 1.1
	ops := []circuit.Gate{circuit.H(0), circuit.PhaseShift(phi, 0)}

	x := runSingle(t, 1, ops, circuit.Expval(circuit.PauliX(0)))
	if !almost(x[0], math.Cos(phi)) {
		t.Errorf("<X> = %v, want %v", x[0], math.Cos(phi))
	}
	y := runSingle(t, 1, ops, circuit.Expval(circuit.PauliY(0)))
	if !almost(y[0], math.Sin(phi)) {
		t.Errorf("<Y> = %v, want %v", y[0], math.Sin(phi))
	}
}

func TestProbs_BellState(t *testing.T) {
	p := runSingle(t, 2,
		[]circuit.Gate{circuit.H(0), circuit.CNOT(0, 1)},
		circuit.Probs(0, 1),
	)
	want := circuit.Value{0.5, 0, 0, 0.5}
	for i := range want {
		if !almost(p[i], want[i]) {
			t.Fatalf("probs = %v, want %v", p, want)
		}
	}
}

func TestProbs_WireOrdering(t *testing.T) {
	// |01> with wire order (1, 0) has outcome index 0b10.
	p := runSingle(t, 2, []circuit.Gate{circuit.X(1)}, circuit.Probs(1, 0))
	want := circuit.Value{0, 0, 1, 0}
	for i := range want {
		if !almost(p[i], want[i]) {
			t.Fatalf("probs = %v, want %v", p, want)
		}
	}
}

func TestIsingGates(t *testing.T) {
	phi := 0.9

	pXX := runSingle(t, 2, []circuit.Gate{circuit.IsingXX(phi, 0, 1)}, circuit.Probs(0, 1))
	c2 := math.Cos(phi / 2) * math.Cos(phi/2)
	s2 := math.Sin(phi / 2) * math.Sin(phi/2)
	if !almost(pXX[0], c2) || !almost(pXX[3], s2) || !almost(pXX[1], 0) || !almost(pXX[2], 0) {
		t.Errorf("IsingXX probs = %v, want [%v 0 0 %v]", pXX, c2, s2)
	}

	pYY := runSingle(t, 2, []circuit.Gate{circuit.IsingYY(phi, 0, 1)}, circuit.Probs(0, 1))
	if !almost(pYY[0], c2) || !almost(pYY[3], s2) {
		t.Errorf("IsingYY probs = %v, want [%v 0 0 %v]", pYY, c2, s2)
	}

	xZZ := runSingle(t, 2,
		[]circuit.Gate{circuit.H(0), circuit.IsingZZ(phi, 0, 1)},
		circuit.Expval(circuit.PauliX(0)),
	)
	if !almost(xZZ[0], math.Cos(phi)) {
		t.Errorf("<X> after IsingZZ = %v, want %v", xZZ[0], math.Cos(phi))
	}
}

func TestVariance_PauliString(t *testing.T) {
	theta := 0.6
	v := runSingle(t, 1, []circuit.Gate{circuit.RX(theta, 0)}, circuit.Var(circuit.PauliZ(0)))
	want := math.Sin(theta) * math.Sin(theta)
	if !almost(v[0], want) {
		t.Errorf("Var(Z) = %v, want %v", v[0], want)
	}
}

func TestRun_RejectsStateMeasurement(t *testing.T) {
	dev, _ := simulator.New(1)
	c := circuit.New([]circuit.Gate{circuit.H(0)}, []circuit.Measurement{circuit.State()})
	if _, err := dev.Run(c); err == nil {
		t.Error("state measurement executed, want error")
	}
}

func TestRun_RejectsOutOfRangeWire(t *testing.T) {
	dev, _ := simulator.New(1)
	c := circuit.New([]circuit.Gate{circuit.H(1)}, []circuit.Measurement{circuit.Probs(1)})
	if _, err := dev.Run(c); err == nil {
		t.Error("wire outside the device executed, want error")
	}
}

func TestRunAll_PreservesOrder(t *testing.T) {
	dev, _ := simulator.New(1)
	thetas := []float64{0.1, 0.4, 0.8, 1.3, 2.1, 2.9}
	circuits := make([]*circuit.Circuit, len(thetas))
	for i, theta := range thetas {
		circuits[i] = circuit.New(
			[]circuit.Gate{circuit.RX(theta, 0)},
			[]circuit.Measurement{circuit.Expval(circuit.PauliZ(0))},
		)
	}

	results, err := dev.RunAll(circuits)
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	for i, theta := range thetas {
		if !almost(results[i][0][0], math.Cos(theta)) {
			t.Errorf("result %d = %v, want %v", i, results[i][0][0], math.Cos(theta))
		}
	}
}

func TestNew_RejectsBadWireCount(t *testing.T) {
	if _, err := simulator.New(0); err == nil {
		t.Error("New(0) succeeded, want error")
	}
	if _, err := simulator.New(64); err == nil {
		t.Error("New(64) succeeded, want error")
	}
}

func TestNormalization_Preserved(t *testing.T) {
	ops := []circuit.Gate{
		circuit.Rot(0.3, 1.2, -0.7, 0),
		circuit.CRY(0.8, 0, 1),
		circuit.IsingYY(0.5, 0, 1),
		circuit.CZ(0, 1),
	}
	p := runSingle(t, 2, ops, circuit.Probs(0, 1))
	sum := 0.0
	for _, x := range p {
		sum += x
	}
	if math.Abs(sum-1) > eps {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}
}
