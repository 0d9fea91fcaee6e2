// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gradients_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qugrad-ml/qugrad/circuit"
	"github.com/qugrad-ml/qugrad/gradients"
	"github.com/qugrad-ml/qugrad/simulator"
)

func TestHadamardEndToEnd(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{
			circuit.RX(0.1, 0),
			circuit.RY(0.2, 0),
			circuit.RX(0.3, 0),
		},
		[]circuit.Measurement{circuit.Expval(circuit.PauliZ(0))},
	)

	dev, err := simulator.New(2)
	require.NoError(t, err)

	batch, err := gradients.Hadamard(c, gradients.WithDeviceWires(dev.Wires()...))
	require.NoError(t, err)
	require.Len(t, batch.Circuits, 3)

	results, err := dev.RunAll(batch.Circuits)
	require.NoError(t, err)

	grad, err := batch.PostProcess(results)
	require.NoError(t, err)

	want := []float64{-0.3875172, -0.18884787, -0.38355704}
	byParam := grad.ByParameter()
	require.Len(t, byParam, len(want))
	for i, w := range want {
		assert.InDelta(t, w, byParam[i][0], 1e-6)
	}
}

func TestHadamardProbabilities(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{circuit.RY(0.6, 0), circuit.CNOT(0, 1)},
		[]circuit.Measurement{circuit.Probs(0, 1)},
	)

	dev, err := simulator.New(3)
	require.NoError(t, err)

	batch, err := gradients.Hadamard(c, gradients.WithDeviceWires(dev.Wires()...))
	require.NoError(t, err)

	results, err := dev.RunAll(batch.Circuits)
	require.NoError(t, err)

	grad, err := batch.PostProcess(results)
	require.NoError(t, err)

	// d/dθ of [cos²(θ/2), 0, 0, sin²(θ/2)] at θ = 0.6.
	got := grad.Scalar()
	require.Len(t, got, 4)
	assert.InDelta(t, -0.5*sin06, got[0], 1e-9)
	assert.InDelta(t, 0.0, got[1], 1e-9)
	assert.InDelta(t, 0.0, got[2], 1e-9)
	assert.InDelta(t, 0.5*sin06, got[3], 1e-9)
}

// sin(0.6), kept as a constant so the expectations above read directly
// against the analytic derivative.
const sin06 = 0.5646424733950354

func TestHadamardRejectsVariance(t *testing.T) {
	c := circuit.New(
		[]circuit.Gate{circuit.RX(0.4, 0)},
		[]circuit.Measurement{circuit.Var(circuit.PauliZ(0))},
	)
	_, err := gradients.Hadamard(c)
	assert.ErrorIs(t, err, gradients.ErrUnsupportedMeasurement)
}
