package gradients

import (
	"errors"
	"testing"

	"github.com/qugrad-ml/qugrad/internal/circuit"
)

func TestGeneratorTerms_SingleQubitRotations(t *testing.T) {
	tests := []struct {
		gate circuit.Gate
		obs  string
	}{
		{circuit.RX(0.1, 3), "X(3)"},
		{circuit.RY(0.1, 3), "Y(3)"},
		{circuit.RZ(0.1, 3), "Z(3)"},
		{circuit.PhaseShift(0.1, 3), "Z(3)"},
		{circuit.U1(0.1, 3), "Z(3)"},
		{circuit.Rot(0.1, 0.2, 0.3, 3), "Z(3)"},
	}
	for _, tt := range tests {
		t.Run(tt.gate.Name(), func(t *testing.T) {
			coeffs, gens, err := generatorTerms(tt.gate)
			if err != nil {
				t.Fatalf("generatorTerms failed: %v", err)
			}
			if len(coeffs) != 1 || len(gens) != 1 {
				t.Fatalf("got %d terms, want 1", len(coeffs))
			}
			if coeffs[0] != -0.5 {
				t.Errorf("coefficient = %v, want -0.5", coeffs[0])
			}
			if gens[0].String() != tt.obs {
				t.Errorf("generator = %s, want %s", gens[0], tt.obs)
			}
		})
	}
}

func TestGeneratorTerms_ControlledRotations(t *testing.T) {
	tests := []struct {
		gate circuit.Gate
		obs0 string
		obs1 string
	}{
		{circuit.CRX(0.1, 0, 1), "X(1)", "Z(0) @ X(1)"},
		{circuit.CRY(0.1, 0, 1), "Y(1)", "Z(0) @ Y(1)"},
		{circuit.CRZ(0.1, 0, 1), "Z(1)", "Z(0) @ Z(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.gate.Name(), func(t *testing.T) {
			coeffs, gens, err := generatorTerms(tt.gate)
			if err != nil {
				t.Fatalf("generatorTerms failed: %v", err)
			}
			if len(coeffs) != 2 {
				t.Fatalf("got %d terms, want 2", len(coeffs))
			}
			if coeffs[0] != -0.25 || coeffs[1] != 0.25 {
				t.Errorf("coefficients = %v, want [-0.25 0.25]", coeffs)
			}
			if gens[0].String() != tt.obs0 || gens[1].String() != tt.obs1 {
				t.Errorf("generators = [%s %s], want [%s %s]", gens[0], gens[1], tt.obs0, tt.obs1)
			}
		})
	}
}

func TestGeneratorTerms_IsingGates(t *testing.T) {
	tests := []struct {
		gate circuit.Gate
		obs  string
	}{
		{circuit.IsingXX(0.1, 0, 1), "X(0) @ X(1)"},
		{circuit.IsingYY(0.1, 0, 1), "Y(0) @ Y(1)"},
		{circuit.IsingZZ(0.1, 0, 1), "Z(0) @ Z(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.gate.Name(), func(t *testing.T) {
			coeffs, gens, err := generatorTerms(tt.gate)
			if err != nil {
				t.Fatalf("generatorTerms failed: %v", err)
			}
			if len(coeffs) != 1 {
				t.Fatalf("got %d terms, want 1", len(coeffs))
			}
			if coeffs[0] != -0.5 {
				t.Errorf("coefficient = %v, want -0.5", coeffs[0])
			}
			if gens[0].String() != tt.obs {
				t.Errorf("generator = %s, want %s", gens[0], tt.obs)
			}
		})
	}
}

func TestGeneratorTerms_Unsupported(t *testing.T) {
	_, _, err := generatorTerms(circuit.U2(0.1, 0.2, 0))
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("U2 error = %v, want ErrUnsupportedOperation", err)
	}
}
