package gradients

import (
	"fmt"

	"github.com/qugrad-ml/qugrad/internal/circuit"
)

// generatorTerms returns the (coefficient, generator) decomposition of a
// gate's derivative: dU/dtheta = U · sum_k (i · coeff_k · gen_k). Gates with
// several terms emit one hadamard-test circuit per term.
//
// Rot deliberately maps to a single Z generator; that reduced form is only
// correct at specific circuit positions, and the transform compensates for
// the first and second Euler angle.
func generatorTerms(g circuit.Gate) ([]float64, []circuit.Observable, error) {
	switch g.Kind() {
	case circuit.KindPhaseShift, circuit.KindU1:
		// The |1><1| generator splits as (I - Z)/2; the identity part has
		// no measurable derivative.
		return []float64{-0.5}, []circuit.Observable{circuit.PauliZ(g.Wire(0))}, nil

	case circuit.KindCRX:
		return []float64{-0.25, 0.25}, []circuit.Observable{
			circuit.PauliX(g.Wire(1)),
			circuit.Prod(circuit.PauliZ(g.Wire(0)), circuit.PauliX(g.Wire(1))),
		}, nil
	case circuit.KindCRY:
		return []float64{-0.25, 0.25}, []circuit.Observable{
			circuit.PauliY(g.Wire(1)),
			circuit.Prod(circuit.PauliZ(g.Wire(0)), circuit.PauliY(g.Wire(1))),
		}, nil
	case circuit.KindCRZ:
		return []float64{-0.25, 0.25}, []circuit.Observable{
			circuit.PauliZ(g.Wire(1)),
			circuit.Prod(circuit.PauliZ(g.Wire(0)), circuit.PauliZ(g.Wire(1))),
		}, nil

	case circuit.KindIsingXX:
		return []float64{-0.5}, []circuit.Observable{
			circuit.Prod(circuit.PauliX(g.Wire(0)), circuit.PauliX(g.Wire(1))),
		}, nil
	case circuit.KindIsingYY:
		return []float64{-0.5}, []circuit.Observable{
			circuit.Prod(circuit.PauliY(g.Wire(0)), circuit.PauliY(g.Wire(1))),
		}, nil
	case circuit.KindIsingZZ:
		return []float64{-0.5}, []circuit.Observable{
			circuit.Prod(circuit.PauliZ(g.Wire(0)), circuit.PauliZ(g.Wire(1))),
		}, nil

	case circuit.KindRot:
		return []float64{-0.5}, []circuit.Observable{circuit.PauliZ(g.Wire(0))}, nil

	default:
		if coeffs, obs, ok := g.Generator(); ok {
			return coeffs, obs, nil
		}
		return nil, nil, fmt.Errorf("gradients: %w: %s", ErrUnsupportedOperation, g.Name())
	}
}
